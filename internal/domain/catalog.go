package domain

type MenuItem struct {
	ID          string
	TenantID    string
	Name        string
	Description string
	Category    string
	Price       float64
	Available   bool
}

type InventoryLevel struct {
	Quantity          int
	LowStockThreshold int
}

func (l InventoryLevel) IsLowStock() bool {
	return l.Quantity <= l.LowStockThreshold
}
