package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"forkflow/internal/domain"
	apperrors "forkflow/internal/errors"
	"forkflow/internal/tenant"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type mockService struct {
	GetMenuFunc          func(ctx context.Context, tenantID string) ([]domain.MenuItem, error)
	GetMenuItemFunc      func(ctx context.Context, tenantID, itemID string) (*domain.MenuItem, error)
	GetInventoryFunc     func(ctx context.Context, tenantID string) (map[string]domain.InventoryLevel, []string, error)
	GetItemInventoryFunc func(ctx context.Context, tenantID, itemID string) (*domain.InventoryLevel, error)
}

func (m *mockService) GetMenu(ctx context.Context, tenantID string) ([]domain.MenuItem, error) {
	return m.GetMenuFunc(ctx, tenantID)
}

func (m *mockService) GetMenuItem(ctx context.Context, tenantID, itemID string) (*domain.MenuItem, error) {
	return m.GetMenuItemFunc(ctx, tenantID, itemID)
}

func (m *mockService) GetInventory(ctx context.Context, tenantID string) (map[string]domain.InventoryLevel, []string, error) {
	return m.GetInventoryFunc(ctx, tenantID)
}

func (m *mockService) GetItemInventory(ctx context.Context, tenantID, itemID string) (*domain.InventoryLevel, error) {
	return m.GetItemInventoryFunc(ctx, tenantID, itemID)
}

func newTestRouter(svc Service) http.Handler {
	ctrl := NewController(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Use(tenant.Require)
	r.Get("/menu", ctrl.HandleGetMenu)
	r.Get("/menu/{itemID}", ctrl.HandleGetMenuItem)
	r.Get("/inventory", ctrl.HandleGetInventory)
	r.Get("/inventory/{itemID}", ctrl.HandleGetItemInventory)
	return r
}

func doGet(handler http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(tenant.Header, "forkflow-demo")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleGetMenu(t *testing.T) {
	svc := &mockService{
		GetMenuFunc: func(ctx context.Context, tenantID string) ([]domain.MenuItem, error) {
			return []domain.MenuItem{
				{ID: "burger-001", TenantID: tenantID, Name: "Classic Burger", Price: 12.99, Available: true},
			}, nil
		},
	}

	rec := doGet(newTestRouter(svc), "/menu")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp MenuResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Total != 1 || resp.Items[0].ID != "burger-001" || resp.TenantID != "forkflow-demo" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestHandleGetMenuItem_NotFoundIs404(t *testing.T) {
	svc := &mockService{
		GetMenuItemFunc: func(ctx context.Context, tenantID, itemID string) (*domain.MenuItem, error) {
			return nil, apperrors.NewNotFoundError("item " + itemID + " not found")
		},
	}

	rec := doGet(newTestRouter(svc), "/menu/ghost-999")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandleGetInventory(t *testing.T) {
	svc := &mockService{
		GetInventoryFunc: func(ctx context.Context, tenantID string) (map[string]domain.InventoryLevel, []string, error) {
			return map[string]domain.InventoryLevel{
				"salad-001": {Quantity: 2, LowStockThreshold: 5},
			}, []string{"salad-001"}, nil
		},
	}

	rec := doGet(newTestRouter(svc), "/inventory")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp InventoryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.LowStockItems) != 1 || resp.LowStockItems[0] != "salad-001" {
		t.Errorf("unexpected low stock list: %v", resp.LowStockItems)
	}
}

func TestHandleGetItemInventory(t *testing.T) {
	svc := &mockService{
		GetItemInventoryFunc: func(ctx context.Context, tenantID, itemID string) (*domain.InventoryLevel, error) {
			return &domain.InventoryLevel{Quantity: 5, LowStockThreshold: 5}, nil
		},
	}

	rec := doGet(newTestRouter(svc), "/inventory/pizza-001")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp ItemInventoryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.IsLowStock || resp.ItemID != "pizza-001" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestCatalogRoutes_TenantHeaderRequired(t *testing.T) {
	svc := &mockService{
		GetMenuFunc: func(ctx context.Context, tenantID string) ([]domain.MenuItem, error) {
			t.Fatal("handler must not run without a tenant")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/menu", nil)
	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing tenant header, got %d", rec.Code)
	}
}
