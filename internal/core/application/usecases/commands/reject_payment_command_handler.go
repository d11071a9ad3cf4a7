package commands

import (
	"context"
	"log/slog"
)

// RejectPaymentCommandHandler handles payment rejection notifications.
// A rejection maps to the generic cancel transition. Unlike CancelOrder
// no event is published: the payment context already broadcast the
// rejection, this side only records the resulting cancellation.
type RejectPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewRejectPaymentCommandHandler creates a handler for payment rejections.
func NewRejectPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	logger *slog.Logger,
) RejectPaymentCommandHandler {
	return RejectPaymentCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "reject_payment_handler"),
	}
}

// Handle processes the payment rejection command.
func (h *RejectPaymentCommandHandler) Handle(ctx context.Context, cmd RejectPaymentCommand) error {
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

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order cancelled after payment rejection",
		"order_id", cmd.OrderID().String(),
		"reason", cmd.Reason(),
	)

	return nil
}
