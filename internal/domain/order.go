package domain

import (
	"fmt"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// validNext encodes the intended pipeline pending → confirmed → preparing →
// ready → completed, with cancelled absorbing from any non-terminal status.
// Status updates are not rejected based on this table; it is advisory and
// callers log when an update falls outside it.
var validNext = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPending:   {OrderStatusConfirmed: true, OrderStatusCancelled: true},
	OrderStatusConfirmed: {OrderStatusPreparing: true, OrderStatusCancelled: true},
	OrderStatusPreparing: {OrderStatusReady: true, OrderStatusCancelled: true},
	OrderStatusReady:     {OrderStatusCompleted: true, OrderStatusCancelled: true},
	OrderStatusCompleted: {},
	OrderStatusCancelled: {},
}

func CanTransition(from, to OrderStatus) bool {
	return validNext[from][to]
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

func ParseOrderStatus(raw string) (OrderStatus, error) {
	status := OrderStatus(raw)
	switch status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled:
		return status, nil
	}
	return "", fmt.Errorf("unknown order status: %q", raw)
}

type OrderLine struct {
	ItemID    string
	Quantity  int
	UnitPrice float64
}

type Order struct {
	ID           string
	TenantID     string
	CustomerName string
	TableNumber  *int
	Lines        []OrderLine
	Total        float64
	Status       OrderStatus
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ComputeTotal sums over the lines as submitted; prices are taken from the
// request, not re-derived from the catalog.
func ComputeTotal(lines []OrderLine) float64 {
	total := 0.0
	for _, line := range lines {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}
