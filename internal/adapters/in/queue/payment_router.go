package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
)

// statusEvent is the inbound payload shared by the payment and production
// queues. Producers disagree on the discriminator field: some send
// eventType, others send status, so both are read and eventType wins.
type statusEvent struct {
	EventType string `json:"eventType"`
	Status    string `json:"status"`
	OrderID   string `json:"orderId"`
	Reason    string `json:"reason"`
}

// discriminator returns the lowercased event selector.
func (e statusEvent) discriminator() string {
	if e.EventType != "" {
		return strings.ToLower(e.EventType)
	}
	return strings.ToLower(e.Status)
}

// PaymentEventRouter dispatches payment-outcome events to the approve and
// reject payment use cases.
type PaymentEventRouter struct {
	approveHandler commands.ApprovePaymentCommandHandler
	rejectHandler  commands.RejectPaymentCommandHandler
	logger         *slog.Logger
}

// NewPaymentEventRouter creates the router for the payment events queue.
func NewPaymentEventRouter(
	approveHandler commands.ApprovePaymentCommandHandler,
	rejectHandler commands.RejectPaymentCommandHandler,
	logger *slog.Logger,
) *PaymentEventRouter {
	return &PaymentEventRouter{
		approveHandler: approveHandler,
		rejectHandler:  rejectHandler,
		logger:         logger.With("component", "payment_event_router"),
	}
}

// Name identifies the router in the consumer's log output.
func (r *PaymentEventRouter) Name() string {
	return "payment_events"
}

// Route decodes one payment event and invokes the matching use case.
// Undecodable payloads and unrecognized discriminators are logged and
// return nil so the message is acknowledged instead of looping forever.
func (r *PaymentEventRouter) Route(ctx context.Context, body []byte) error {
	payload := unwrap(body)

	var event statusEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		r.logger.WarnContext(ctx, "dropping undecodable message", "error", err)
		return nil
	}

	orderID, err := kernel.UUIDFromString(event.OrderID)
	if err != nil {
		r.logger.WarnContext(ctx, "dropping message with invalid order id",
			"order_id", event.OrderID, "error", err)
		return nil
	}

	switch event.discriminator() {
	case "paymentapproved", "approved":
		cmd, cmdErr := commands.NewApprovePaymentCommand(orderID)
		if cmdErr != nil {
			return cmdErr
		}
		return r.approveHandler.Handle(ctx, cmd)

	case "paymentrejected", "paymentcancelled", "rejected", "cancelled":
		cmd, cmdErr := commands.NewRejectPaymentCommand(orderID, event.Reason)
		if cmdErr != nil {
			return cmdErr
		}
		return r.rejectHandler.Handle(ctx, cmd)

	default:
		r.logger.WarnContext(ctx, "ignoring unrecognized payment event",
			"discriminator", event.discriminator(), "order_id", event.OrderID)
		return nil
	}
}
