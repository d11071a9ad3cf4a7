package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Outbound topic names. The event publisher resolves each to a transport
// destination through its configured topic table.
const (
	TopicOrderCreated    = "OrderCreated"
	TopicOrderCancelled  = "OrderCancelled"
	TopicOrderCompleted  = "OrderCompleted"
	TopicPaymentApproved = "PaymentApproved"
)

// OrderItemEvent is the line-item snapshot carried by order events.
type OrderItemEvent struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

// OrderCreatedEvent announces a new order with a full snapshot of its
// customer, items, and total.
type OrderCreatedEvent struct {
	OrderID      string           `json:"orderId"`
	CustomerID   *string          `json:"customerId,omitempty"`
	CustomerName string           `json:"customerName,omitempty"`
	Items        []OrderItemEvent `json:"items"`
	TotalAmount  decimal.Decimal  `json:"totalAmount"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// PaymentApprovedEvent notifies the production context that an order's
// payment cleared. It carries the full item snapshot so production does
// not have to look the order up.
type PaymentApprovedEvent struct {
	OrderID      string           `json:"orderId"`
	CustomerID   *string          `json:"customerId,omitempty"`
	CustomerName string           `json:"customerName,omitempty"`
	Items        []OrderItemEvent `json:"items"`
	TotalAmount  decimal.Decimal  `json:"totalAmount"`
	ApprovedAt   time.Time        `json:"approvedAt"`
}

// OrderCancelledEvent announces a cancellation with its reason.
type OrderCancelledEvent struct {
	OrderID     string    `json:"orderId"`
	Reason      string    `json:"reason"`
	CancelledAt time.Time `json:"cancelledAt"`
}

// OrderCompletedEvent announces a delivered order.
type OrderCompletedEvent struct {
	OrderID      string          `json:"orderId"`
	CustomerID   *string         `json:"customerId,omitempty"`
	CustomerName string          `json:"customerName,omitempty"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	CompletedAt  time.Time       `json:"completedAt"`
}

// NewOrderCreatedEvent builds the creation snapshot from the aggregate.
func NewOrderCreatedEvent(o *Order) OrderCreatedEvent {
	return OrderCreatedEvent{
		OrderID:      o.ID().String(),
		CustomerID:   customerIDString(o),
		CustomerName: o.CustomerName(),
		Items:        itemEvents(o),
		TotalAmount:  o.TotalAmount().Amount(),
		CreatedAt:    o.CreatedAt(),
	}
}

// NewPaymentApprovedEvent builds the approval snapshot with a fresh
// timestamp. A duplicate approval republishes with a new ApprovedAt.
func NewPaymentApprovedEvent(o *Order) PaymentApprovedEvent {
	return PaymentApprovedEvent{
		OrderID:      o.ID().String(),
		CustomerID:   customerIDString(o),
		CustomerName: o.CustomerName(),
		Items:        itemEvents(o),
		TotalAmount:  o.TotalAmount().Amount(),
		ApprovedAt:   time.Now().UTC(),
	}
}

// NewOrderCancelledEvent builds the cancellation event.
func NewOrderCancelledEvent(o *Order, reason string) OrderCancelledEvent {
	return OrderCancelledEvent{
		OrderID:     o.ID().String(),
		Reason:      reason,
		CancelledAt: time.Now().UTC(),
	}
}

// NewOrderCompletedEvent builds the completion event.
func NewOrderCompletedEvent(o *Order) OrderCompletedEvent {
	return OrderCompletedEvent{
		OrderID:      o.ID().String(),
		CustomerID:   customerIDString(o),
		CustomerName: o.CustomerName(),
		TotalAmount:  o.TotalAmount().Amount(),
		CompletedAt:  time.Now().UTC(),
	}
}

func customerIDString(o *Order) *string {
	if o.CustomerID() == nil {
		return nil
	}
	s := o.CustomerID().String()
	return &s
}

func itemEvents(o *Order) []OrderItemEvent {
	items := o.Items()
	events := make([]OrderItemEvent, 0, len(items))
	for _, item := range items {
		events = append(events, OrderItemEvent{
			ProductID:   item.ProductID().String(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Amount(),
			TotalPrice:  item.TotalPrice().Amount(),
		})
	}
	return events
}
