package queue

import (
	"context"
	"encoding/json"
	"log/slog"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
)

// ProductionEventRouter dispatches kitchen progress events to the
// start-production, mark-ready and complete-order use cases.
type ProductionEventRouter struct {
	startHandler    commands.StartProductionCommandHandler
	readyHandler    commands.MarkReadyCommandHandler
	completeHandler commands.CompleteOrderCommandHandler
	logger          *slog.Logger
}

// NewProductionEventRouter creates the router for the production events queue.
func NewProductionEventRouter(
	startHandler commands.StartProductionCommandHandler,
	readyHandler commands.MarkReadyCommandHandler,
	completeHandler commands.CompleteOrderCommandHandler,
	logger *slog.Logger,
) *ProductionEventRouter {
	return &ProductionEventRouter{
		startHandler:    startHandler,
		readyHandler:    readyHandler,
		completeHandler: completeHandler,
		logger:          logger.With("component", "production_event_router"),
	}
}

// Name identifies the router in the consumer's log output.
func (r *ProductionEventRouter) Name() string {
	return "production_events"
}

// Route decodes one production event and invokes the matching use case.
// The drop policy matches PaymentEventRouter: only use-case failures
// propagate, everything else is logged and acknowledged.
func (r *ProductionEventRouter) Route(ctx context.Context, body []byte) error {
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
	case "productionstarted":
		cmd, cmdErr := commands.NewStartProductionCommand(orderID)
		if cmdErr != nil {
			return cmdErr
		}
		return r.startHandler.Handle(ctx, cmd)

	case "productionready":
		cmd, cmdErr := commands.NewMarkReadyCommand(orderID)
		if cmdErr != nil {
			return cmdErr
		}
		return r.readyHandler.Handle(ctx, cmd)

	case "productiondelivered":
		cmd, cmdErr := commands.NewCompleteOrderCommand(orderID)
		if cmdErr != nil {
			return cmdErr
		}
		return r.completeHandler.Handle(ctx, cmd)

	default:
		r.logger.WarnContext(ctx, "ignoring unrecognized production event",
			"discriminator", event.discriminator(), "order_id", event.OrderID)
		return nil
	}
}
