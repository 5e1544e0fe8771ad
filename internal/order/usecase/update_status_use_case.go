package usecase

import (
	"context"

	"forkflow/internal/domain"

	"go.uber.org/zap"
)

type UpdateStatusUseCase struct {
	orderRepo OrderRepository
	logger    *zap.Logger
}

func NewUpdateStatusUseCase(orderRepo OrderRepository, logger *zap.Logger) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// UpdateStatus applies the requested status regardless of the transition
// table; unusual transitions are logged, not rejected. Tightening this to
// forward-only transitions would change the observable contract.
func (uc *UpdateStatusUseCase) UpdateStatus(ctx context.Context, tenantID, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	current, err := uc.orderRepo.FindByID(ctx, tenantID, orderID)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransition(current.Status, status) && current.Status != status {
		uc.logger.Warn("status transition outside the intended pipeline",
			zap.String("tenantId", tenantID),
			zap.String("orderId", orderID),
			zap.String("from", string(current.Status)),
			zap.String("to", string(status)))
	}

	updated, err := uc.orderRepo.UpdateStatus(ctx, tenantID, orderID, status)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order status updated",
		zap.String("tenantId", tenantID),
		zap.String("orderId", orderID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(updated.Status)))
	return updated, nil
}
