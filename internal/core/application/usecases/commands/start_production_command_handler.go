package commands

import (
	"context"
)

// StartProductionCommandHandler moves a paid order into production.
// No event is published: the production context is the producer of this
// notification, not a consumer of it.
type StartProductionCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartProductionCommandHandler creates a handler for production starts.
func NewStartProductionCommandHandler(uowFactory OrderUoWFactory) StartProductionCommandHandler {
	return StartProductionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start production command.
func (h *StartProductionCommandHandler) Handle(ctx context.Context, cmd StartProductionCommand) error {
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

	if err = aggregate.StartProduction(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
