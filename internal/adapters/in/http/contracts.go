package http

import (
	"time"

	"tableside/internal/core/application/usecases/queries"
)

// Envelope is the response shape of every endpoint: a human-readable message
// plus an operation-specific payload.
type Envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ItemRequest is one requested order line in a request body.
type ItemRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	AddedBy    string `json:"added_by,omitempty"`
}

// CreateOrderRequest is the body of POST .../orders.
type CreateOrderRequest struct {
	TableID    string        `json:"table_id"`
	CustomerID string        `json:"customer_id,omitempty"`
	EmployeeID string        `json:"employee_id,omitempty"`
	Items      []ItemRequest `json:"items"`
}

// UpdateOrderRequest is the body of PUT .../orders/:order_id. Absent fields
// leave the order unchanged.
type UpdateOrderRequest struct {
	Status *string       `json:"status,omitempty"`
	Paid   *bool         `json:"paid,omitempty"`
	Items  []ItemRequest `json:"items,omitempty"`
}

// UpsertTableOrderRequest is the body of POST .../tables/:table_id/orders.
// Status and paid are optional and merged into the resolved order.
type UpsertTableOrderRequest struct {
	CustomerID string        `json:"customer_id,omitempty"`
	EmployeeID string        `json:"employee_id,omitempty"`
	Status     *string       `json:"status,omitempty"`
	Paid       *bool         `json:"paid,omitempty"`
	Items      []ItemRequest `json:"items"`
}

// SetPaidRequest is the body of PATCH .../tables/:table_id/orders/latest/paid.
type SetPaidRequest struct {
	Paid bool `json:"paid"`
}

// OrderItemResponse is one priced order line in a response.
type OrderItemResponse struct {
	ID         string  `json:"id"`
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	PriceCents int64   `json:"price_cents"`
	Quantity   int     `json:"quantity"`
	AddedBy    *string `json:"added_by"`
}

// HistoryEntryResponse is one status history row in a response.
type HistoryEntryResponse struct {
	Status     string    `json:"status"`
	RecordedAt time.Time `json:"recorded_at"`
}

// OrderSummaryResponse is the list view of an order.
type OrderSummaryResponse struct {
	ID         string    `json:"id"`
	TableID    string    `json:"table_id"`
	CustomerID *string   `json:"customer_id"`
	EmployeeID *string   `json:"employee_id"`
	PlacedAt   time.Time `json:"placed_at"`
	Status     string    `json:"status"`
	Paid       bool      `json:"paid"`
}

// OrderListEntryResponse is one row of the order list view: the order header
// plus its priced total.
type OrderListEntryResponse struct {
	OrderSummaryResponse
	TotalCents int64 `json:"total_cents"`
}

// OrderDetailResponse is the full view of an order.
type OrderDetailResponse struct {
	OrderSummaryResponse
	Items      []OrderItemResponse    `json:"items"`
	TotalCents int64                  `json:"total_cents"`
	History    []HistoryEntryResponse `json:"history"`
}

// OrderRefResponse carries just an order identifier, for write operations.
type OrderRefResponse struct {
	OrderID string `json:"order_id"`
}

func summaryFromQuery(summary queries.OrderSummaryResponse) OrderSummaryResponse {
	resp := OrderSummaryResponse{
		ID:       summary.ID.String(),
		TableID:  summary.TableID.String(),
		PlacedAt: summary.PlacedAt,
		Status:   summary.Status,
		Paid:     summary.Paid,
	}
	if summary.CustomerID != nil {
		customerID := summary.CustomerID.String()
		resp.CustomerID = &customerID
	}
	if summary.EmployeeID != nil {
		employeeID := summary.EmployeeID.String()
		resp.EmployeeID = &employeeID
	}
	return resp
}

func listEntryFromQuery(entry queries.OrderListEntryResponse) OrderListEntryResponse {
	return OrderListEntryResponse{
		OrderSummaryResponse: summaryFromQuery(entry.OrderSummaryResponse),
		TotalCents:           entry.TotalCents,
	}
}

func detailFromQuery(detail queries.OrderDetailResponse) OrderDetailResponse {
	items := make([]OrderItemResponse, 0, len(detail.Items))
	for _, item := range detail.Items {
		itemResponse := OrderItemResponse{
			ID:         item.ID.String(),
			MenuItemID: item.MenuItemID.String(),
			Name:       item.Name,
			PriceCents: item.PriceCents,
			Quantity:   item.Quantity,
		}
		if item.AddedBy != nil {
			addedBy := item.AddedBy.String()
			itemResponse.AddedBy = &addedBy
		}
		items = append(items, itemResponse)
	}

	history := make([]HistoryEntryResponse, 0, len(detail.History))
	for _, entry := range detail.History {
		history = append(history, HistoryEntryResponse{
			Status:     entry.Status,
			RecordedAt: entry.RecordedAt,
		})
	}

	return OrderDetailResponse{
		OrderSummaryResponse: summaryFromQuery(detail.OrderSummaryResponse),
		Items:                items,
		TotalCents:           detail.TotalCents,
		History:              history,
	}
}
