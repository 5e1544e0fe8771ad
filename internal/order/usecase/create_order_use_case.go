package usecase

import (
	"context"
	"time"

	"forkflow/internal/domain"
	apperrors "forkflow/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CreateOrderInput struct {
	CustomerName string
	TableNumber  *int
	Lines        []domain.OrderLine
	Notes        *string
}

type CreateOrderUseCase struct {
	validator LineValidator
	orderRepo OrderRepository
	logger    *zap.Logger
}

func NewCreateOrderUseCase(validator LineValidator, orderRepo OrderRepository, logger *zap.Logger) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		validator: validator,
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// CreateOrder validates every line against the catalog, then commits the
// order in pending status. All-or-nothing: any rejected or undeterminable
// line means no order is created, and validation errors propagate to the
// caller unchanged.
func (uc *CreateOrderUseCase) CreateOrder(ctx context.Context, tenantID string, input CreateOrderInput) (*domain.Order, error) {
	if len(input.Lines) == 0 {
		return nil, apperrors.NewValidationError("order must contain at least one item",
			apperrors.ValidationDetail{Field: "items", Message: "items must not be empty"})
	}

	uc.logger.Info("creating order",
		zap.String("tenantId", tenantID),
		zap.String("customerName", input.CustomerName),
		zap.Int("itemCount", len(input.Lines)))

	if err := uc.validator.ValidateLines(ctx, tenantID, input.Lines); err != nil {
		if rejected, ok := apperrors.IsItemRejectedError(err); ok {
			uc.logger.Warn("order rejected by catalog validation",
				zap.String("tenantId", tenantID),
				zap.String("itemId", rejected.ItemID),
				zap.String("reason", string(rejected.Reason)))
		}
		return nil, err
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:           uuid.New().String(),
		TenantID:     tenantID,
		CustomerName: input.CustomerName,
		TableNumber:  input.TableNumber,
		Lines:        input.Lines,
		Total:        domain.ComputeTotal(input.Lines),
		Status:       domain.OrderStatusPending,
		Notes:        input.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.orderRepo.Insert(ctx, order); err != nil {
		uc.logger.Error("order commit failed", zap.String("orderId", order.ID), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("order created",
		zap.String("tenantId", tenantID),
		zap.String("orderId", order.ID),
		zap.Float64("total", order.Total))
	return order, nil
}
