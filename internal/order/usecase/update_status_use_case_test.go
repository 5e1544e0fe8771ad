package usecase

import (
	"context"
	"testing"
	"time"

	"forkflow/internal/domain"
	apperrors "forkflow/internal/errors"

	"go.uber.org/zap"
)

func TestUpdateStatus_Success(t *testing.T) {
	createdAt := time.Now().UTC().Add(-time.Minute)
	repo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, tenantID, orderID string) (*domain.Order, error) {
			return &domain.Order{
				ID:        orderID,
				TenantID:  tenantID,
				Status:    domain.OrderStatusPending,
				CreatedAt: createdAt,
				UpdatedAt: createdAt,
			}, nil
		},
		UpdateStatusFunc: func(ctx context.Context, tenantID, orderID string, status domain.OrderStatus) (*domain.Order, error) {
			return &domain.Order{
				ID:        orderID,
				TenantID:  tenantID,
				Status:    status,
				CreatedAt: createdAt,
				UpdatedAt: time.Now().UTC(),
			}, nil
		},
	}

	uc := NewUpdateStatusUseCase(repo, zap.NewNop())
	order, err := uc.UpdateStatus(context.Background(), "t1", "o1", domain.OrderStatusConfirmed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.Status != domain.OrderStatusConfirmed {
		t.Errorf("expected confirmed, got %s", order.Status)
	}
	if !order.UpdatedAt.After(createdAt) {
		t.Error("expected UpdatedAt to advance on status update")
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	updateCalled := false
	repo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, tenantID, orderID string) (*domain.Order, error) {
			return nil, apperrors.NewNotFoundError("order o1 not found")
		},
		UpdateStatusFunc: func(ctx context.Context, tenantID, orderID string, status domain.OrderStatus) (*domain.Order, error) {
			updateCalled = true
			return nil, nil
		},
	}

	uc := NewUpdateStatusUseCase(repo, zap.NewNop())
	_, err := uc.UpdateStatus(context.Background(), "t1", "o1", domain.OrderStatusConfirmed)

	if _, ok := apperrors.IsNotFoundError(err); !ok {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if updateCalled {
		t.Error("an unknown order must not be mutated")
	}
}

func TestUpdateStatus_OffPipelineTransitionStillApplied(t *testing.T) {
	// completed -> pending is outside the pipeline, but the observed
	// contract applies it anyway.
	repo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, tenantID, orderID string) (*domain.Order, error) {
			return &domain.Order{ID: orderID, TenantID: tenantID, Status: domain.OrderStatusCompleted}, nil
		},
		UpdateStatusFunc: func(ctx context.Context, tenantID, orderID string, status domain.OrderStatus) (*domain.Order, error) {
			return &domain.Order{ID: orderID, TenantID: tenantID, Status: status}, nil
		},
	}

	uc := NewUpdateStatusUseCase(repo, zap.NewNop())
	order, err := uc.UpdateStatus(context.Background(), "t1", "o1", domain.OrderStatusPending)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != domain.OrderStatusPending {
		t.Errorf("expected pending, got %s", order.Status)
	}
}
