package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
)

// Product is the catalog snapshot the order context needs: identity,
// display name, current price, and whether the product can be sold.
type Product struct {
	ID          kernel.UUID
	Name        string
	Price       kernel.Money
	IsAvailable bool
}

// ProductClient resolves products against the external catalog service.
type ProductClient interface {
	// GetByID fetches a product by its identifier.
	// Returns an errs.ObjectNotFoundError when the catalog has no such product.
	GetByID(ctx context.Context, productID kernel.UUID) (*Product, error)
}
