package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// ApprovePaymentCommandHandler handles payment approval notifications.
// The upstream payment system delivers at-least-once, so a duplicate
// approval for an order already in PaymentApproved skips the transition
// and the persistence write but still re-publishes PaymentApproved with a
// fresh timestamp. Downstream consumers stay informed without the state
// being applied twice.
type ApprovePaymentCommandHandler struct {
	uowFactory     OrderUoWFactory
	eventPublisher ports.EventPublisher
}

// NewApprovePaymentCommandHandler creates a handler for payment approvals.
func NewApprovePaymentCommandHandler(
	uowFactory OrderUoWFactory,
	eventPublisher ports.EventPublisher,
) ApprovePaymentCommandHandler {
	return ApprovePaymentCommandHandler{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

// Handle processes the payment approval command.
func (h *ApprovePaymentCommandHandler) Handle(ctx context.Context, cmd ApprovePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if aggregate.Status() != order.PaymentApproved {
		if err = aggregate.ApprovePayment(); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	event := order.NewPaymentApprovedEvent(aggregate)
	return h.eventPublisher.Publish(ctx, order.TopicPaymentApproved, event)
}
