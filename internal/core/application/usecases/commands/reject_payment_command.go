package commands

import (
	"errors"
	"strings"

	"orders/internal/core/domain/model/kernel"
)

var (
	ErrRejectPaymentCommandIsNotConstructed = errors.New(
		"RejectPaymentCommand must be created via NewRejectPaymentCommand constructor",
	)
)

// RejectPaymentCommand represents a payment rejection notification for one
// order. A rejected payment cancels the order.
type RejectPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  string

	guard kernel.ConstructorGuard
}

// NewRejectPaymentCommand creates a command to record a rejected payment.
func NewRejectPaymentCommand(orderID kernel.UUID, reason string) (RejectPaymentCommand, error) {
	rejectCommand := RejectPaymentCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := rejectCommand.setOrderID(orderID); err != nil {
		return RejectPaymentCommand{}, err
	}
	rejectCommand.setReason(reason)

	return rejectCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRejectPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose payment was rejected.
func (c RejectPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the rejection reason.
func (c RejectPaymentCommand) Reason() string {
	return c.reason
}

func (c *RejectPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RejectPaymentCommand) setReason(reason string) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "payment rejected"
	}

	c.reason = reason
}
