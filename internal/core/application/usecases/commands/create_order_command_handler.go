package commands

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves each requested product through the product catalog, builds the
// order in "pending" status, persists it and publishes OrderCreated.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, products, publisher)
//	cmd, _ := NewCreateOrderCommand(nil, "Jane", items)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("Order %s created and awaiting payment", created.ID())
type CreateOrderCommandHandler struct {
	uowFactory     OrderUoWFactory
	productClient  ports.ProductClient
	eventPublisher ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence, a ProductClient
// for catalog lookups and an EventPublisher for the OrderCreated event.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	productClient ports.ProductClient,
	eventPublisher ports.EventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:     uowFactory,
		productClient:  productClient,
		eventPublisher: eventPublisher,
	}
}

// Handle processes the order creation command.
// Each requested product must exist and be available for sale; name and
// price always come from the catalog, never from the caller. The order is
// persisted in a transaction and OrderCreated is published after commit,
// so a publish failure surfaces as the operation's error.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(kernel.NewUUID(), cmd.CustomerID(), cmd.CustomerName())
	if err != nil {
		return nil, err
	}

	for _, item := range cmd.Items() {
		product, err := h.productClient.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}

		if !product.IsAvailable {
			return nil, errs.NewObjectUnavailableError("product", product.ID.String())
		}

		if err = aggregate.AddItem(product.ID, product.Name, item.Quantity, product.Price); err != nil {
			return nil, err
		}
	}

	if err = aggregate.EnsureHasItems(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	event := order.NewOrderCreatedEvent(aggregate)
	if err = h.eventPublisher.Publish(ctx, order.TopicOrderCreated, event); err != nil {
		return nil, err
	}

	return aggregate, nil
}
