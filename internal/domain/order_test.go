package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotal_SingleLine(t *testing.T) {
	lines := []OrderLine{
		{ItemID: "burger-001", Quantity: 2, UnitPrice: 12.99},
	}

	assert.InDelta(t, 25.98, ComputeTotal(lines), 0.0001)
}

func TestComputeTotal_MultipleLines(t *testing.T) {
	lines := []OrderLine{
		{ItemID: "burger-001", Quantity: 2, UnitPrice: 12.99},
		{ItemID: "salad-001", Quantity: 1, UnitPrice: 9.99},
		{ItemID: "pizza-001", Quantity: 3, UnitPrice: 14.99},
	}

	assert.InDelta(t, 80.94, ComputeTotal(lines), 0.0001)
}

func TestComputeTotal_EmptyLines(t *testing.T) {
	assert.Equal(t, 0.0, ComputeTotal(nil))
}

func TestParseOrderStatus_KnownValues(t *testing.T) {
	for _, raw := range []string{"pending", "confirmed", "preparing", "ready", "completed", "cancelled"} {
		status, err := ParseOrderStatus(raw)
		assert.NoError(t, err)
		assert.Equal(t, OrderStatus(raw), status)
	}
}

func TestParseOrderStatus_UnknownValue(t *testing.T) {
	_, err := ParseOrderStatus("shipped")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "shipped")
}

func TestCanTransition_ForwardPipeline(t *testing.T) {
	assert.True(t, CanTransition(OrderStatusPending, OrderStatusConfirmed))
	assert.True(t, CanTransition(OrderStatusConfirmed, OrderStatusPreparing))
	assert.True(t, CanTransition(OrderStatusPreparing, OrderStatusReady))
	assert.True(t, CanTransition(OrderStatusReady, OrderStatusCompleted))
}

func TestCanTransition_CancelFromAnyNonTerminal(t *testing.T) {
	for _, from := range []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing, OrderStatusReady} {
		assert.True(t, CanTransition(from, OrderStatusCancelled), "expected %s -> cancelled", from)
	}
}

func TestCanTransition_TerminalStatesAbsorb(t *testing.T) {
	assert.False(t, CanTransition(OrderStatusCompleted, OrderStatusPending))
	assert.False(t, CanTransition(OrderStatusCancelled, OrderStatusConfirmed))
	assert.True(t, OrderStatusCompleted.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatusReady.IsTerminal())
}

func TestCanTransition_NoSkippingForward(t *testing.T) {
	assert.False(t, CanTransition(OrderStatusPending, OrderStatusReady))
	assert.False(t, CanTransition(OrderStatusConfirmed, OrderStatusCompleted))
}
