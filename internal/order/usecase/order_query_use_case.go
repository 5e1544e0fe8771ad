package usecase

import (
	"context"

	"forkflow/internal/domain"
)

type OrderQueryUseCase struct {
	orderRepo OrderRepository
}

func NewOrderQueryUseCase(orderRepo OrderRepository) *OrderQueryUseCase {
	return &OrderQueryUseCase{orderRepo: orderRepo}
}

func (uc *OrderQueryUseCase) GetOrder(ctx context.Context, tenantID, orderID string) (*domain.Order, error) {
	return uc.orderRepo.FindByID(ctx, tenantID, orderID)
}

func (uc *OrderQueryUseCase) ListOrders(ctx context.Context, tenantID string) ([]domain.Order, error) {
	return uc.orderRepo.ListByTenant(ctx, tenantID)
}
