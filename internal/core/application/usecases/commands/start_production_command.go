package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
)

var (
	ErrStartProductionCommandIsNotConstructed = errors.New(
		"StartProductionCommand must be created via NewStartProductionCommand constructor",
	)
)

// StartProductionCommand represents a notification that the kitchen began
// preparing an order.
type StartProductionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewStartProductionCommand creates a command to move an order into production.
func NewStartProductionCommand(orderID kernel.UUID) (StartProductionCommand, error) {
	startCommand := StartProductionCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := startCommand.setOrderID(orderID); err != nil {
		return StartProductionCommand{}, err
	}

	return startCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c StartProductionCommand) Validate() error {
	return c.guard.Validate(ErrStartProductionCommandIsNotConstructed)
}

// OrderID returns the identifier of the order entering production.
func (c StartProductionCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *StartProductionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
