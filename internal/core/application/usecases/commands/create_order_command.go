package commands

import (
	"errors"
	"strings"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderItem is a single requested line in a new order: which product
// and how many. Price and name are resolved from the product catalog by the
// handler, never trusted from the caller.
type CreateOrderItem struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a request to create a new customer order.
// Customer identity is optional: anonymous counter orders carry neither
// a customer ID nor a name.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(nil, "Jane", []CreateOrderItem{
//	    {ProductID: productID, Quantity: 2},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, products, publisher)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID   *kernel.UUID
	customerName string
	items        []CreateOrderItem

	guard kernel.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that each requested item references a valid product ID with a
// positive quantity. An empty item list is accepted here; the handler's
// validation gate rejects it after product resolution.
func NewCreateOrderCommand(
	customerID *kernel.UUID,
	customerName string,
	items []CreateOrderItem,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomer(customerID, customerName),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the optional customer identifier.
func (c CreateOrderCommand) CustomerID() *kernel.UUID {
	return c.customerID
}

// CustomerName returns the optional customer display name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []CreateOrderItem {
	return c.items
}

func (c *CreateOrderCommand) setCustomer(customerID *kernel.UUID, customerName string) error {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return err
		}
	}

	c.customerID = customerID
	c.customerName = strings.TrimSpace(customerName)
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItem) error {
	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidError("quantity")
		}
	}

	c.items = items
	return nil
}
