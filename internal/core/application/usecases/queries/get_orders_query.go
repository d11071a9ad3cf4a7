package queries

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery lists orders, optionally filtered by status.
//
// Example:
//
//	all := NewGetOrdersQuery()
//	pending, err := NewGetOrdersQueryWithStatus(order.Pending)
type GetOrdersQuery struct {
	status *order.Status

	guard kernel.ConstructorGuard
}

// NewGetOrdersQuery creates a query listing every order.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: kernel.NewConstructorGuard()}
}

// NewGetOrdersQueryWithStatus creates a query listing orders in one status.
func NewGetOrdersQueryWithStatus(status order.Status) (GetOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		status: &status,
		guard:  kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// OrderSummaryResponse is the list read model: one row per order,
// without line-item detail.
type OrderSummaryResponse struct {
	ID           kernel.UUID
	CustomerName string
	Status       string
	ItemCount    int
	TotalAmount  decimal.Decimal
	CreatedAt    time.Time
}
