package order

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned by the checkout gate when the item
	// collection is empty.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("order must have at least one item")
)

// Order is the aggregate root of the order lifecycle. It exclusively owns
// its OrderItem collection and is mutated only through its own methods,
// each of which applies the status machine guard before changing state.
//
// Invariants:
//   - totalAmount always equals the sum of the current item totals
//   - items can be added or removed only while the status is Pending
//   - status changes follow the transition table in status.go
//   - updatedAt advances on every mutation
type Order struct {
	id           kernel.UUID
	customerID   *kernel.UUID
	customerName string
	status       Status
	items        []*OrderItem
	totalAmount  kernel.Money
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewOrder creates an empty Pending order. Customer identity is optional:
// customerID may be nil and customerName empty for anonymous walk-in
// orders, but a non-nil customerID must be valid.
func NewOrder(id kernel.UUID, customerID *kernel.UUID, customerName string) (*Order, error) {
	now := time.Now().UTC()

	order := &Order{
		status:        Pending,
		totalAmount:   kernel.ZeroMoney(),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customerID, customerName),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence. The status must be
// a valid lifecycle state and the total amount is recomputed from the
// restored items so the sum invariant holds regardless of stored data.
func RestoreOrder(
	id kernel.UUID,
	customerID *kernel.UUID,
	customerName string,
	status Status,
	items []*OrderItem,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	order := &Order{
		status:        status,
		totalAmount:   kernel.ZeroMoney(),
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customerID, customerName),
	); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		order.items = append(order.items, item)
	}

	if err := order.recalculateTotal(); err != nil {
		return nil, err
	}

	order.updatedAt = updatedAt
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the customer's ID, or nil for anonymous orders.
func (o *Order) CustomerID() *kernel.UUID {
	return o.customerID
}

// CustomerName returns the customer's name, possibly empty.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the line items in insertion order.
// The returned slice is a copy; the aggregate keeps ownership of the items.
func (o *Order) Items() []*OrderItem {
	items := make([]*OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the sum of the current item totals.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// CreatedAt returns the creation timestamp (UTC).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation (UTC).
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// AddItem appends a line item for the given product snapshot and
// recalculates the total. Allowed only while the order is Pending.
func (o *Order) AddItem(productID kernel.UUID, productName string, quantity int, unitPrice kernel.Money) error {
	if _, err := o.status.Apply(ActionAddItem); err != nil {
		return err
	}

	item, err := NewOrderItem(productID, productName, quantity, unitPrice)
	if err != nil {
		return err
	}

	o.items = append(o.items, item)
	return o.recalculateTotal()
}

// RemoveItem removes the line item with the given ID and recalculates the
// total. Allowed only while the order is Pending; removing an unknown
// item ID is a no-op.
func (o *Order) RemoveItem(itemID kernel.UUID) error {
	if _, err := o.status.Apply(ActionRemoveItem); err != nil {
		return err
	}

	for idx, item := range o.items {
		if item.id.IsEqual(itemID) {
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			return o.recalculateTotal()
		}
	}

	return nil
}

// ApprovePayment transitions the order from Pending to PaymentApproved.
func (o *Order) ApprovePayment() error {
	return o.applyTransition(ActionApprovePayment)
}

// StartProduction transitions the order from PaymentApproved to InProduction.
func (o *Order) StartProduction() error {
	return o.applyTransition(ActionStartProduction)
}

// MarkReady transitions the order from InProduction to Ready.
func (o *Order) MarkReady() error {
	return o.applyTransition(ActionMarkReady)
}

// Complete transitions the order from Ready to Completed.
// Completed is terminal; not even cancellation is allowed afterwards.
func (o *Order) Complete() error {
	return o.applyTransition(ActionComplete)
}

// Cancel transitions the order to Cancelled from any status except
// Completed. Cancelling an already-cancelled order succeeds and advances
// updatedAt, which lets a retried cancellation republish its event.
func (o *Order) Cancel() error {
	return o.applyTransition(ActionCancel)
}

// EnsureHasItems is the checkout gate: it fails with ErrOrderHasNoItems
// when the item collection is empty. It is a validation, not a transition.
func (o *Order) EnsureHasItems() error {
	if len(o.items) == 0 {
		return ErrOrderHasNoItems
	}
	return nil
}

func (o *Order) applyTransition(action Action) error {
	newStatus, err := o.status.Apply(action)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) recalculateTotal() error {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		sum, err := total.Add(item.TotalPrice())
		if err != nil {
			return err
		}
		total = sum
	}

	o.totalAmount = total
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customerID *kernel.UUID, customerName string) error {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return err
		}
	}

	o.customerID = customerID
	o.customerName = customerName
	return nil
}
