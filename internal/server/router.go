package server

import (
	"encoding/json"
	"net/http"
	"time"

	"forkflow/internal/catalog"
	ordercontroller "forkflow/internal/order/controller"
	"forkflow/internal/tenant"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const Version = "0.1.0"

func NewCatalogRouter(ctrl *catalog.Controller, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler("catalog-service", logger))
	r.Get("/", infoHandler("catalog-service", "Menu, Inventory, and Pricing Management", map[string]string{
		"health":    "/health",
		"menu":      "/menu",
		"inventory": "/inventory",
	}, logger))

	r.Group(func(r chi.Router) {
		r.Use(tenant.Require)
		r.Get("/menu", ctrl.HandleGetMenu)
		r.Get("/menu/{itemID}", ctrl.HandleGetMenuItem)
		r.Get("/inventory", ctrl.HandleGetInventory)
		r.Get("/inventory/{itemID}", ctrl.HandleGetItemInventory)
	})

	return r
}

func NewOrderRouter(ctrl *ordercontroller.OrdersController, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler("order-service", logger))
	r.Get("/", infoHandler("order-service", "Order Lifecycle Management", map[string]string{
		"health":       "/health",
		"orders":       "/orders",
		"create_order": "POST /orders",
	}, logger))

	r.Group(func(r chi.Router) {
		r.Use(tenant.Require)
		r.Post("/orders", ctrl.HandleCreateOrder)
		r.Get("/orders", ctrl.HandleListOrders)
		r.Get("/orders/{orderID}", ctrl.HandleGetOrder)
		r.Patch("/orders/{orderID}/status", ctrl.HandleUpdateStatus)
	})

	return r
}

func healthHandler(service string, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, logger, map[string]string{
			"status":    "healthy",
			"service":   service,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   Version,
		})
	}
}

func infoHandler(service, description string, endpoints map[string]string, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, logger, map[string]interface{}{
			"service":     service,
			"version":     Version,
			"description": description,
			"endpoints":   endpoints,
		})
	}
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}
