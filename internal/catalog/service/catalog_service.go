package service

import (
	"context"
	"sort"

	"forkflow/internal/domain"
)

type Repository interface {
	ListMenuItems(ctx context.Context, tenantID string) ([]domain.MenuItem, error)
	FindMenuItem(ctx context.Context, tenantID, itemID string) (*domain.MenuItem, error)
	InventoryByTenant(ctx context.Context, tenantID string) (map[string]domain.InventoryLevel, error)
	FindItemInventory(ctx context.Context, tenantID, itemID string) (*domain.InventoryLevel, error)
}

type CatalogService struct {
	repo Repository
}

func NewCatalogService(repo Repository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) GetMenu(ctx context.Context, tenantID string) ([]domain.MenuItem, error) {
	return s.repo.ListMenuItems(ctx, tenantID)
}

func (s *CatalogService) GetMenuItem(ctx context.Context, tenantID, itemID string) (*domain.MenuItem, error) {
	return s.repo.FindMenuItem(ctx, tenantID, itemID)
}

// GetInventory returns all levels for the tenant plus the ids currently at
// or below their low-stock threshold. The low-stock list is sorted so
// repeated reads of the same state are identical.
func (s *CatalogService) GetInventory(ctx context.Context, tenantID string) (map[string]domain.InventoryLevel, []string, error) {
	levels, err := s.repo.InventoryByTenant(ctx, tenantID)
	if err != nil {
		return nil, nil, err
	}

	lowStock := []string{}
	for itemID, level := range levels {
		if level.IsLowStock() {
			lowStock = append(lowStock, itemID)
		}
	}
	sort.Strings(lowStock)

	return levels, lowStock, nil
}

func (s *CatalogService) GetItemInventory(ctx context.Context, tenantID, itemID string) (*domain.InventoryLevel, error) {
	return s.repo.FindItemInventory(ctx, tenantID, itemID)
}
