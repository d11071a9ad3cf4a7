package http

import (
	"time"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the inbound body for order creation.
type CreateOrderRequest struct {
	CustomerID   *string                  `json:"customerId,omitempty"`
	CustomerName string                   `json:"customerName,omitempty"`
	Items        []CreateOrderItemRequest `json:"items"`
}

// CreateOrderItemRequest is one requested order line.
type CreateOrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CancelOrderRequest is the inbound body for order cancellation.
type CancelOrderRequest struct {
	Reason string `json:"reason,omitempty"`
}

// OrderItemResponse is one order line in API responses.
type OrderItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

// OrderResponse is the full order representation in API responses.
type OrderResponse struct {
	ID           string              `json:"id"`
	CustomerID   *string             `json:"customerId,omitempty"`
	CustomerName string              `json:"customerName,omitempty"`
	Status       string              `json:"status"`
	Items        []OrderItemResponse `json:"items"`
	TotalAmount  decimal.Decimal     `json:"totalAmount"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// OrderSummaryResponse is the list representation: one row per order.
type OrderSummaryResponse struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customerName,omitempty"`
	Status       string          `json:"status"`
	ItemCount    int             `json:"itemCount"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func toOrderResponse(aggregate *order.Order) OrderResponse {
	var customerID *string
	if id := aggregate.CustomerID(); id != nil {
		s := id.String()
		customerID = &s
	}

	items := aggregate.Items()
	itemResponses := make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		itemResponses = append(itemResponses, OrderItemResponse{
			ID:          item.ID().String(),
			ProductID:   item.ProductID().String(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Amount(),
			TotalPrice:  item.TotalPrice().Amount(),
		})
	}

	return OrderResponse{
		ID:           aggregate.ID().String(),
		CustomerID:   customerID,
		CustomerName: aggregate.CustomerName(),
		Status:       aggregate.Status().String(),
		Items:        itemResponses,
		TotalAmount:  aggregate.TotalAmount().Amount(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

func toOrderResponseFromRead(read queries.OrderResponse) OrderResponse {
	var customerID *string
	if read.CustomerID != nil {
		s := read.CustomerID.String()
		customerID = &s
	}

	items := make([]OrderItemResponse, 0, len(read.Items))
	for _, item := range read.Items {
		items = append(items, OrderItemResponse{
			ID:          item.ID.String(),
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}

	return OrderResponse{
		ID:           read.ID.String(),
		CustomerID:   customerID,
		CustomerName: read.CustomerName,
		Status:       read.Status,
		Items:        items,
		TotalAmount:  read.TotalAmount,
		CreatedAt:    read.CreatedAt,
		UpdatedAt:    read.UpdatedAt,
	}
}

func toOrderSummaryResponse(summary queries.OrderSummaryResponse) OrderSummaryResponse {
	return OrderSummaryResponse{
		ID:           summary.ID.String(),
		CustomerName: summary.CustomerName,
		Status:       summary.Status,
		ItemCount:    summary.ItemCount,
		TotalAmount:  summary.TotalAmount,
		CreatedAt:    summary.CreatedAt,
	}
}
