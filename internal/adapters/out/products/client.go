// Package products adapts the ProductClient port to the product catalog
// service over HTTP, with an optional Redis read-through cache.
package products

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// productResponse mirrors the catalog service's wire format.
type productResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	IsAvailable bool            `json:"isAvailable"`
}

// HTTPClient implements the ProductClient port against the product
// catalog's REST API.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a catalog client for the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// GetByID fetches one product. A 404 from the catalog maps to an
// ObjectNotFoundError so callers can distinguish a missing product from
// a catalog outage.
func (c *HTTPClient) GetByID(ctx context.Context, productID kernel.UUID) (*ports.Product, error) {
	url := fmt.Sprintf("%s/api/products/%s", c.baseURL, productID.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errs.NewObjectNotFoundError("product", productID.String())
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("product catalog returned status %d", resp.StatusCode)
	}

	var body productResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	return toProduct(body)
}

func toProduct(body productResponse) (*ports.Product, error) {
	id, err := kernel.UUIDFromString(body.ID)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(body.Price)
	if err != nil {
		return nil, err
	}

	return &ports.Product{
		ID:          id,
		Name:        body.Name,
		Price:       price,
		IsAvailable: body.IsAvailable,
	}, nil
}
