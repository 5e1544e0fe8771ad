package repository

import (
	"context"
	"fmt"
	"sync"

	"forkflow/internal/domain"
	"forkflow/internal/errors"
)

// MemoryCatalogRepository holds per-tenant menus and inventory levels behind
// a single RWMutex. Reads vastly outnumber writes; writes happen only at
// seed time.
type MemoryCatalogRepository struct {
	mu        sync.RWMutex
	menus     map[string][]domain.MenuItem
	inventory map[string]map[string]domain.InventoryLevel
}

func NewMemoryCatalogRepository() *MemoryCatalogRepository {
	return &MemoryCatalogRepository{
		menus:     make(map[string][]domain.MenuItem),
		inventory: make(map[string]map[string]domain.InventoryLevel),
	}
}

func (r *MemoryCatalogRepository) AddMenuItem(ctx context.Context, item domain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.menus[item.TenantID] {
		if existing.ID == item.ID {
			return errors.NewInternalError(
				fmt.Sprintf("menu item %s already exists for tenant %s", item.ID, item.TenantID), nil)
		}
	}

	r.menus[item.TenantID] = append(r.menus[item.TenantID], item)
	return nil
}

func (r *MemoryCatalogRepository) SetInventory(ctx context.Context, tenantID, itemID string, level domain.InventoryLevel) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.inventory[tenantID] == nil {
		r.inventory[tenantID] = make(map[string]domain.InventoryLevel)
	}
	r.inventory[tenantID][itemID] = level
}

// ListMenuItems returns the tenant's menu in insertion order.
func (r *MemoryCatalogRepository) ListMenuItems(ctx context.Context, tenantID string) ([]domain.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items, ok := r.menus[tenantID]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("no menu for tenant: %s", tenantID))
	}

	out := make([]domain.MenuItem, len(items))
	copy(out, items)
	return out, nil
}

func (r *MemoryCatalogRepository) FindMenuItem(ctx context.Context, tenantID, itemID string) (*domain.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items, ok := r.menus[tenantID]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("no menu for tenant: %s", tenantID))
	}

	for _, item := range items {
		if item.ID == itemID {
			found := item
			return &found, nil
		}
	}

	return nil, errors.NewNotFoundError(fmt.Sprintf("item %s not found", itemID))
}

func (r *MemoryCatalogRepository) InventoryByTenant(ctx context.Context, tenantID string) (map[string]domain.InventoryLevel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	levels, ok := r.inventory[tenantID]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("no inventory for tenant: %s", tenantID))
	}

	out := make(map[string]domain.InventoryLevel, len(levels))
	for itemID, level := range levels {
		out[itemID] = level
	}
	return out, nil
}

func (r *MemoryCatalogRepository) FindItemInventory(ctx context.Context, tenantID, itemID string) (*domain.InventoryLevel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	levels, ok := r.inventory[tenantID]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("no inventory for item: %s", itemID))
	}

	level, ok := levels[itemID]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("no inventory for item: %s", itemID))
	}

	return &level, nil
}
