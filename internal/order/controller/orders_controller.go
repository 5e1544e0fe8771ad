package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"forkflow/internal/domain"
	apperrors "forkflow/internal/errors"
	"forkflow/internal/order/usecase"
	"forkflow/internal/tenant"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CreateOrderUseCase interface {
	CreateOrder(ctx context.Context, tenantID string, input usecase.CreateOrderInput) (*domain.Order, error)
}

type UpdateStatusUseCase interface {
	UpdateStatus(ctx context.Context, tenantID, orderID string, status domain.OrderStatus) (*domain.Order, error)
}

type OrderQueryUseCase interface {
	GetOrder(ctx context.Context, tenantID, orderID string) (*domain.Order, error)
	ListOrders(ctx context.Context, tenantID string) ([]domain.Order, error)
}

type OrdersController struct {
	createUC CreateOrderUseCase
	statusUC UpdateStatusUseCase
	queryUC  OrderQueryUseCase
	logger   *zap.Logger
}

func NewOrdersController(createUC CreateOrderUseCase, statusUC UpdateStatusUseCase, queryUC OrderQueryUseCase, logger *zap.Logger) *OrdersController {
	return &OrdersController{
		createUC: createUC,
		statusUC: statusUC,
		queryUC:  queryUC,
		logger:   logger,
	}
}

func (c *OrdersController) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))
	tenantID, _ := tenant.FromContext(r.Context())

	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if validationErr := c.validateCreateOrderRequest(req); validationErr != nil {
		ve, _ := apperrors.IsValidationError(validationErr)
		c.writeValidationError(w, traceID, ve.Message, ve.Details...)
		return
	}

	lines := make([]domain.OrderLine, len(req.Items))
	for i, item := range req.Items {
		lines[i] = domain.OrderLine{
			ItemID:    item.ItemID,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
		}
	}

	order, err := c.createUC.CreateOrder(r.Context(), tenantID, usecase.CreateOrderInput{
		CustomerName: req.CustomerName,
		TableNumber:  req.TableNumber,
		Lines:        lines,
		Notes:        req.Notes,
	})
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, toOrderDTO(order))
}

func (c *OrdersController) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := tenant.FromContext(r.Context())

	orders, err := c.queryUC.ListOrders(r.Context(), tenantID)
	if err != nil {
		c.handleUseCaseError(w, "", err, c.logger)
		return
	}

	dtos := make([]OrderDTO, len(orders))
	for i := range orders {
		dtos[i] = toOrderDTO(&orders[i])
	}

	c.logger.Info("orders listed", zap.String("tenantId", tenantID), zap.Int("orderCount", len(dtos)))
	c.writeJSON(w, http.StatusOK, dtos)
}

func (c *OrdersController) HandleGetOrder(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := tenant.FromContext(r.Context())
	orderID := chi.URLParam(r, "orderID")

	order, err := c.queryUC.GetOrder(r.Context(), tenantID, orderID)
	if err != nil {
		c.handleUseCaseError(w, "", err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, toOrderDTO(order))
}

func (c *OrdersController) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))
	tenantID, _ := tenant.FromContext(r.Context())
	orderID := chi.URLParam(r, "orderID")

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	status, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		c.writeValidationError(w, traceID, "invalid status", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be one of pending, confirmed, preparing, ready, completed, cancelled",
		})
		return
	}

	order, err := c.statusUC.UpdateStatus(r.Context(), tenantID, orderID, status)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, toOrderDTO(order))
}

func (c *OrdersController) validateCreateOrderRequest(req CreateOrderRequest) error {
	var details []apperrors.ValidationDetail

	if req.CustomerName == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "customer_name",
			Message: "customer_name is required",
		})
	}

	if len(req.Items) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "items must not be empty",
		})
	}

	if req.TableNumber != nil && *req.TableNumber < 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "table_number",
			Message: "table_number must not be negative",
		})
	}

	for idx, item := range req.Items {
		if item.ItemID == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].item_id",
				Message: "item_id is required",
			})
		}

		if item.Quantity < 1 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].quantity",
				Message: "quantity must be a positive integer",
			})
		}

		if item.Price < 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].price",
				Message: "price must be non-negative",
			})
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func (c *OrdersController) handleUseCaseError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, traceID, ve.Message, ve.Details...)
		return
	}

	if rejected, ok := apperrors.IsItemRejectedError(err); ok {
		c.writeError(w, traceID, http.StatusBadRequest, "VALIDATION_FAILED", rejected.Error())
		return
	}

	if unavailable, ok := apperrors.IsCatalogUnavailableError(err); ok {
		c.writeError(w, traceID, http.StatusServiceUnavailable, "CATALOG_UNAVAILABLE", unavailable.Error())
		return
	}

	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeError(w, traceID, http.StatusNotFound, "NOT_FOUND", nfe.Message)
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeError(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

func toOrderDTO(order *domain.Order) OrderDTO {
	items := make([]OrderLineDTO, len(order.Lines))
	for i, line := range order.Lines {
		items[i] = OrderLineDTO{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
			Price:    line.UnitPrice,
		}
	}

	return OrderDTO{
		ID:           order.ID,
		TenantID:     order.TenantID,
		CustomerName: order.CustomerName,
		TableNumber:  order.TableNumber,
		Items:        items,
		Total:        order.Total,
		Status:       string(order.Status),
		Notes:        order.Notes,
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}
}

type validationErrorResponse struct {
	TraceID string                       `json:"traceId"`
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *OrdersController) writeValidationError(w http.ResponseWriter, traceID, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		TraceID: traceID,
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *OrdersController) writeError(w http.ResponseWriter, traceID string, status int, code, message string) {
	c.writeJSON(w, status, errorResponse{
		TraceID: traceID,
		Error:   code,
		Message: message,
	})
}

func (c *OrdersController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
