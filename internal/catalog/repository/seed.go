package repository

import (
	"context"

	"forkflow/internal/domain"
)

// DemoTenant is the tenant seeded at startup so the platform is usable
// out of the box.
const DemoTenant = "forkflow-demo"

func SeedDemoData(ctx context.Context, repo *MemoryCatalogRepository) error {
	items := []domain.MenuItem{
		{
			ID:          "burger-001",
			TenantID:    DemoTenant,
			Name:        "Classic Burger",
			Description: "Beef patty with lettuce, tomato, onion",
			Category:    "burgers",
			Price:       12.99,
			Available:   true,
		},
		{
			ID:          "pizza-001",
			TenantID:    DemoTenant,
			Name:        "Margherita Pizza",
			Description: "Fresh mozzarella, basil, tomato sauce",
			Category:    "pizza",
			Price:       14.99,
			Available:   true,
		},
		{
			ID:          "salad-001",
			TenantID:    DemoTenant,
			Name:        "Caesar Salad",
			Description: "Romaine, parmesan, croutons, caesar dressing",
			Category:    "salads",
			Price:       9.99,
			Available:   true,
		},
	}

	for _, item := range items {
		if err := repo.AddMenuItem(ctx, item); err != nil {
			return err
		}
	}

	repo.SetInventory(ctx, DemoTenant, "burger-001", domain.InventoryLevel{Quantity: 50, LowStockThreshold: 10})
	repo.SetInventory(ctx, DemoTenant, "pizza-001", domain.InventoryLevel{Quantity: 30, LowStockThreshold: 5})
	repo.SetInventory(ctx, DemoTenant, "salad-001", domain.InventoryLevel{Quantity: 25, LowStockThreshold: 5})

	return nil
}
