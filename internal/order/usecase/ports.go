package usecase

import (
	"context"

	"forkflow/internal/domain"
)

type LineValidator interface {
	ValidateLines(ctx context.Context, tenantID string, lines []domain.OrderLine) error
}

type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, tenantID, orderID string) (*domain.Order, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, tenantID, orderID string, status domain.OrderStatus) (*domain.Order, error)
}
