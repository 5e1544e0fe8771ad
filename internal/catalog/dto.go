package catalog

type MenuItemDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Available   bool    `json:"available"`
	TenantID    string  `json:"tenant_id"`
}

type MenuResponse struct {
	TenantID string        `json:"tenant_id"`
	Items    []MenuItemDTO `json:"items"`
	Total    int           `json:"total"`
}

type InventoryLevelDTO struct {
	Quantity          int `json:"quantity"`
	LowStockThreshold int `json:"low_stock_threshold"`
}

type InventoryResponse struct {
	TenantID      string                       `json:"tenant_id"`
	Inventory     map[string]InventoryLevelDTO `json:"inventory"`
	LowStockItems []string                     `json:"low_stock_items"`
}

type ItemInventoryResponse struct {
	ItemID            string `json:"item_id"`
	TenantID          string `json:"tenant_id"`
	Quantity          int    `json:"quantity"`
	LowStockThreshold int    `json:"low_stock_threshold"`
	IsLowStock        bool   `json:"is_low_stock"`
}
