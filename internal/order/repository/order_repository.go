package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"forkflow/internal/domain"
	"forkflow/internal/errors"
)

// MemoryOrderRepository is the authoritative order store. All mutations on a
// tenant's order set serialize on the single mutex; the repository is the
// only place in the order service where shared mutable state lives.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]map[string]domain.Order
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		orders: make(map[string]map[string]domain.Order),
	}
}

// Insert commits a new order. A duplicate (tenant, id) pair cannot happen
// under uuid generation; if it does, the store invariant is violated and the
// insert fails loudly instead of overwriting.
func (r *MemoryOrderRepository) Insert(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tenantOrders, ok := r.orders[order.TenantID]
	if !ok {
		tenantOrders = make(map[string]domain.Order)
		r.orders[order.TenantID] = tenantOrders
	}

	if _, exists := tenantOrders[order.ID]; exists {
		return errors.NewInternalError(
			fmt.Sprintf("order store invariant violated: duplicate order id %s for tenant %s", order.ID, order.TenantID), nil)
	}

	tenantOrders[order.ID] = cloneOrder(*order)
	return nil
}

func (r *MemoryOrderRepository) FindByID(ctx context.Context, tenantID, orderID string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[tenantID][orderID]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found", orderID))
	}

	found := cloneOrder(order)
	return &found, nil
}

// ListByTenant returns the tenant's orders sorted by creation time, then id,
// so repeated listings of an unchanged store are identical. An unknown
// tenant simply has no orders yet.
func (r *MemoryOrderRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tenantOrders := r.orders[tenantID]
	out := make([]domain.Order, 0, len(tenantOrders))
	for _, order := range tenantOrders {
		out = append(out, cloneOrder(order))
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

// UpdateStatus replaces the order's status and refreshes UpdatedAt under the
// write lock, so the update always observes the latest snapshot. Transition
// legality is not checked here.
func (r *MemoryOrderRepository) UpdateStatus(ctx context.Context, tenantID, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[tenantID][orderID]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found", orderID))
	}

	order.Status = status
	order.UpdatedAt = time.Now().UTC()
	r.orders[tenantID][orderID] = order

	updated := cloneOrder(order)
	return &updated, nil
}

// cloneOrder deep-copies so callers never alias store-owned state.
func cloneOrder(order domain.Order) domain.Order {
	lines := make([]domain.OrderLine, len(order.Lines))
	copy(lines, order.Lines)
	order.Lines = lines

	if order.TableNumber != nil {
		tableNumber := *order.TableNumber
		order.TableNumber = &tableNumber
	}
	if order.Notes != nil {
		notes := *order.Notes
		order.Notes = &notes
	}

	return order
}
