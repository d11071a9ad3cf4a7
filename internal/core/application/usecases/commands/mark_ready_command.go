package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
)

var (
	ErrMarkReadyCommandIsNotConstructed = errors.New(
		"MarkReadyCommand must be created via NewMarkReadyCommand constructor",
	)
)

// MarkReadyCommand represents a notification that an order finished
// production and is ready for pickup or delivery.
type MarkReadyCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewMarkReadyCommand creates a command to mark an order as ready.
func NewMarkReadyCommand(orderID kernel.UUID) (MarkReadyCommand, error) {
	readyCommand := MarkReadyCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := readyCommand.setOrderID(orderID); err != nil {
		return MarkReadyCommand{}, err
	}

	return readyCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkReadyCommandIsNotConstructed)
}

// OrderID returns the identifier of the order that became ready.
func (c MarkReadyCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkReadyCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
