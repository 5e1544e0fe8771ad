package order

import (
	"forkflow/internal/config"
	"forkflow/internal/order/controller"
	"forkflow/internal/order/repository"
	"forkflow/internal/order/usecase"
	"forkflow/internal/order/validation"

	"go.uber.org/zap"
)

func NewModule(cfg config.OrderConfig, logger *zap.Logger) *controller.OrdersController {
	repo := repository.NewMemoryOrderRepository()
	validator := validation.NewClient(cfg.CatalogURL, cfg.ValidationTimeout, logger)

	createUC := usecase.NewCreateOrderUseCase(validator, repo, logger)
	statusUC := usecase.NewUpdateStatusUseCase(repo, logger)
	queryUC := usecase.NewOrderQueryUseCase(repo)

	return controller.NewOrdersController(createUC, statusUC, queryUC, logger)
}
