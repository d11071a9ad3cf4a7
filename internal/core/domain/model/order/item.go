package order

import (
	"errors"
	"fmt"
	"strings"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem instance was
// not created through NewOrderItem or RestoreOrderItem.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// OrderItem is a line item owned by an Order. It holds the product
// snapshot taken at ordering time and keeps totalPrice equal to
// unitPrice multiplied by quantity at all times.
//
// Items have no lifecycle outside their order: they are created through
// Order.AddItem and mutated only while the owning order is Pending.
type OrderItem struct {
	id          kernel.UUID
	productID   kernel.UUID
	productName string
	quantity    int
	unitPrice   kernel.Money
	totalPrice  kernel.Money

	isConstructed bool
}

// NewOrderItem creates a line item with a fresh identity.
//
// Fails if the product ID is invalid, the product name is empty or
// whitespace, the unit price was not constructed, or the quantity is not
// positive. The quantity check is authoritative; Money.Mul rejecting a
// negative factor backs it up for free.
func NewOrderItem(productID kernel.UUID, productName string, quantity int, unitPrice kernel.Money) (*OrderItem, error) {
	item := &OrderItem{
		id:            kernel.NewUUID(),
		isConstructed: true,
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setProductName(productName),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	if err := item.setQuantity(quantity); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreOrderItem reconstructs a line item from persistence with its
// original identity. It runs the same validation as NewOrderItem.
func RestoreOrderItem(
	id kernel.UUID,
	productID kernel.UUID,
	productName string,
	quantity int,
	unitPrice kernel.Money,
) (*OrderItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	item, err := NewOrderItem(productID, productName, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	item.id = id
	return item, nil
}

// Validate ensures the item was created through a constructor.
func (i *OrderItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrOrderItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *OrderItem) ID() kernel.UUID {
	return i.id
}

// ProductID returns the identifier of the ordered product.
func (i *OrderItem) ProductID() kernel.UUID {
	return i.productID
}

// ProductName returns the product name snapshot taken at ordering time.
func (i *OrderItem) ProductName() string {
	return i.productName
}

// Quantity returns the ordered quantity.
func (i *OrderItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price snapshot.
func (i *OrderItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// TotalPrice returns unitPrice multiplied by quantity.
func (i *OrderItem) TotalPrice() kernel.Money {
	return i.totalPrice
}

// UpdateQuantity re-validates and re-multiplies the line total.
// The owning order must only call this while it is mutable.
func (i *OrderItem) UpdateQuantity(quantity int) error {
	return i.setQuantity(quantity)
}

func (i *OrderItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *OrderItem) setProductName(productName string) error {
	if strings.TrimSpace(productName) == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = productName
	return nil
}

func (i *OrderItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	totalPrice, err := i.unitPrice.Mul(quantity)
	if err != nil {
		return err
	}

	i.quantity = quantity
	i.totalPrice = totalPrice
	return nil
}
