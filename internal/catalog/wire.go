package catalog

import (
	"context"

	"forkflow/internal/catalog/repository"
	"forkflow/internal/catalog/service"

	"go.uber.org/zap"
)

func NewModule(ctx context.Context, logger *zap.Logger) (*Controller, error) {
	repo := repository.NewMemoryCatalogRepository()
	if err := repository.SeedDemoData(ctx, repo); err != nil {
		return nil, err
	}
	logger.Info("sample catalog data seeded", zap.String("tenantId", repository.DemoTenant))

	svc := service.NewCatalogService(repo)
	return NewController(svc, logger), nil
}
