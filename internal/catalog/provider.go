package catalog

import (
	"context"
	"strings"
	"time"
)

const (
	featuredRatingFloor = 4.5
	featuredLimit       = 6
)

// Provider is the read-only catalog contract consumed by the HTTP layer.
// GetByID returns (nil, nil) when no product has the given identity; absence
// is an expected outcome, not an error.
type Provider interface {
	ListAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	FilterByCategory(ctx context.Context, category Category) ([]Product, error)
	FilterByPriceRange(ctx context.Context, min, max float64) ([]Product, error)
	Search(ctx context.Context, query string) ([]Product, error)
	Featured(ctx context.Context) ([]Product, error)
}

// MemoryProvider serves a fixed product list. Each operation waits the
// configured delay before answering, standing in for a real backend's
// network round trip. A zero delay disables the wait, which is what tests
// use.
type MemoryProvider struct {
	products []Product
	delay    time.Duration
}

// NewMemoryProvider builds a provider over the given products.
func NewMemoryProvider(products []Product, delay time.Duration) *MemoryProvider {
	return &MemoryProvider{
		products: append([]Product(nil), products...),
		delay:    delay,
	}
}

func (p *MemoryProvider) wait(ctx context.Context) error {
	if p.delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(p.delay):
		return nil
	}
}

// ListAll returns the full catalog in storage order.
func (p *MemoryProvider) ListAll(ctx context.Context) ([]Product, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return append([]Product(nil), p.products...), nil
}

// GetByID returns the product with the given identity, or (nil, nil) when
// the catalog holds no such product.
func (p *MemoryProvider) GetByID(ctx context.Context, id string) (*Product, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	for i := range p.products {
		if p.products[i].ID == id {
			prod := p.products[i]
			return &prod, nil
		}
	}
	return nil, nil
}

// FilterByCategory returns the products in the given family. Callers resolve
// CategoryAll to ListAll before reaching here.
func (p *MemoryProvider) FilterByCategory(ctx context.Context, category Category) ([]Product, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	matched := []Product{}
	for _, prod := range p.products {
		if prod.Category == category {
			matched = append(matched, prod)
		}
	}
	return matched, nil
}

// FilterByPriceRange returns products with min <= price <= max, both bounds
// inclusive.
func (p *MemoryProvider) FilterByPriceRange(ctx context.Context, min, max float64) ([]Product, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	matched := []Product{}
	for _, prod := range p.products {
		if prod.Price >= min && prod.Price <= max {
			matched = append(matched, prod)
		}
	}
	return matched, nil
}

// Search matches the query case-insensitively against name, brand, model and
// description. An empty query matches everything.
func (p *MemoryProvider) Search(ctx context.Context, query string) ([]Product, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	matched := []Product{}
	for _, prod := range p.products {
		if strings.Contains(strings.ToLower(prod.Name), q) ||
			strings.Contains(strings.ToLower(prod.Brand), q) ||
			strings.Contains(strings.ToLower(prod.Model), q) ||
			strings.Contains(strings.ToLower(prod.Description), q) {
			matched = append(matched, prod)
		}
	}
	return matched, nil
}

// Featured returns the first products in storage order with a rating of 4.5
// or better, capped at 6.
func (p *MemoryProvider) Featured(ctx context.Context) ([]Product, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	matched := []Product{}
	for _, prod := range p.products {
		if prod.Rating >= featuredRatingFloor {
			matched = append(matched, prod)
			if len(matched) == featuredLimit {
				break
			}
		}
	}
	return matched, nil
}
