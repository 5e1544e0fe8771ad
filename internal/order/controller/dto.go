package controller

import "time"

type OrderLineRequest struct {
	ItemID   string  `json:"item_id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type CreateOrderRequest struct {
	Items        []OrderLineRequest `json:"items"`
	CustomerName string             `json:"customer_name"`
	TableNumber  *int               `json:"table_number,omitempty"`
	Notes        *string            `json:"notes,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type OrderLineDTO struct {
	ItemID   string  `json:"item_id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type OrderDTO struct {
	ID           string         `json:"id"`
	TenantID     string         `json:"tenant_id"`
	CustomerName string         `json:"customer_name"`
	TableNumber  *int           `json:"table_number"`
	Items        []OrderLineDTO `json:"items"`
	Total        float64        `json:"total"`
	Status       string         `json:"status"`
	Notes        *string        `json:"notes"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type errorResponse struct {
	TraceID string `json:"traceId"`
	Error   string `json:"error"`
	Message string `json:"message"`
}
