package catalog

import (
	"context"

	"forkflow/internal/domain"
)

type Service interface {
	GetMenu(ctx context.Context, tenantID string) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, tenantID, itemID string) (*domain.MenuItem, error)
	GetInventory(ctx context.Context, tenantID string) (map[string]domain.InventoryLevel, []string, error)
	GetItemInventory(ctx context.Context, tenantID, itemID string) (*domain.InventoryLevel, error)
}
