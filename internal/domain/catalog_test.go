package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInventoryLevel_IsLowStock(t *testing.T) {
	assert.False(t, InventoryLevel{Quantity: 50, LowStockThreshold: 10}.IsLowStock())
	assert.True(t, InventoryLevel{Quantity: 10, LowStockThreshold: 10}.IsLowStock())
	assert.True(t, InventoryLevel{Quantity: 0, LowStockThreshold: 5}.IsLowStock())
}
