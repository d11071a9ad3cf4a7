package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
)

var (
	ErrApprovePaymentCommandIsNotConstructed = errors.New(
		"ApprovePaymentCommand must be created via NewApprovePaymentCommand constructor",
	)
)

// ApprovePaymentCommand represents a payment approval notification for one
// order. Typically issued by the payment events consumer.
type ApprovePaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewApprovePaymentCommand creates a command to record an approved payment.
func NewApprovePaymentCommand(orderID kernel.UUID) (ApprovePaymentCommand, error) {
	approveCommand := ApprovePaymentCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := approveCommand.setOrderID(orderID); err != nil {
		return ApprovePaymentCommand{}, err
	}

	return approveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ApprovePaymentCommand) Validate() error {
	return c.guard.Validate(ErrApprovePaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the paid order.
func (c ApprovePaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ApprovePaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
