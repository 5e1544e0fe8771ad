package catalog

import (
	"encoding/json"
	"net/http"

	apperrors "forkflow/internal/errors"
	"forkflow/internal/tenant"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Controller struct {
	service Service
	logger  *zap.Logger
}

func NewController(service Service, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) HandleGetMenu(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := tenant.FromContext(r.Context())

	items, err := c.service.GetMenu(r.Context(), tenantID)
	if err != nil {
		c.handleError(w, err)
		return
	}

	dtos := make([]MenuItemDTO, len(items))
	for i, item := range items {
		dtos[i] = MenuItemDTO{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Category:    item.Category,
			Price:       item.Price,
			Available:   item.Available,
			TenantID:    item.TenantID,
		}
	}

	c.logger.Info("menu retrieved", zap.String("tenantId", tenantID), zap.Int("itemCount", len(dtos)))
	c.writeJSON(w, http.StatusOK, MenuResponse{
		TenantID: tenantID,
		Items:    dtos,
		Total:    len(dtos),
	})
}

func (c *Controller) HandleGetMenuItem(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := tenant.FromContext(r.Context())
	itemID := chi.URLParam(r, "itemID")

	item, err := c.service.GetMenuItem(r.Context(), tenantID, itemID)
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, MenuItemDTO{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Category:    item.Category,
		Price:       item.Price,
		Available:   item.Available,
		TenantID:    item.TenantID,
	})
}

func (c *Controller) HandleGetInventory(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := tenant.FromContext(r.Context())

	levels, lowStock, err := c.service.GetInventory(r.Context(), tenantID)
	if err != nil {
		c.handleError(w, err)
		return
	}

	dtos := make(map[string]InventoryLevelDTO, len(levels))
	for itemID, level := range levels {
		dtos[itemID] = InventoryLevelDTO{
			Quantity:          level.Quantity,
			LowStockThreshold: level.LowStockThreshold,
		}
	}

	c.logger.Info("inventory retrieved",
		zap.String("tenantId", tenantID),
		zap.Int("lowStockCount", len(lowStock)))
	c.writeJSON(w, http.StatusOK, InventoryResponse{
		TenantID:      tenantID,
		Inventory:     dtos,
		LowStockItems: lowStock,
	})
}

func (c *Controller) HandleGetItemInventory(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := tenant.FromContext(r.Context())
	itemID := chi.URLParam(r, "itemID")

	level, err := c.service.GetItemInventory(r.Context(), tenantID, itemID)
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, ItemInventoryResponse{
		ItemID:            itemID,
		TenantID:          tenantID,
		Quantity:          level.Quantity,
		LowStockThreshold: level.LowStockThreshold,
		IsLowStock:        level.IsLowStock(),
	})
}

func (c *Controller) handleError(w http.ResponseWriter, err error) {
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": nfe.Message,
		})
		return
	}

	c.logger.Error("catalog request failed", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
