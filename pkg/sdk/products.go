package storefront

import (
	"context"
	"time"

	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/product"
)

// ProductService manages the catalog.
type ProductService struct {
	svc catalogUseCase
	obs *observer
}

// List returns catalog products in insertion order. limit 0 returns all.
func (s *ProductService) List(ctx context.Context, limit int) (_ []Product, err error) {
	start := time.Now()
	defer func() { s.obs.observe("products.list", start, statusOf(err), err) }()

	ps, err := s.svc.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]Product, len(ps))
	for i, p := range ps {
		out[i] = fromDomainProduct(p)
	}
	return out, nil
}

// Add validates and stores p, returning it with its assigned ID.
// p.ID is ignored. A blank name or a negative price yields ErrInvalidProduct.
func (s *ProductService) Add(ctx context.Context, p Product) (_ Product, err error) {
	start := time.Now()
	defer func() { s.obs.observe("products.add", start, statusOf(err), err) }()

	stored, err := s.svc.Create(ctx, p.Name, p.Price, p.Category, p.Specs, p.ImageURL)
	if err != nil {
		return Product{}, err
	}
	return fromDomainProduct(stored), nil
}

// Delete removes a product and reports whether it existed.
func (s *ProductService) Delete(ctx context.Context, id int64) (_ bool, err error) {
	start := time.Now()
	defer func() { s.obs.observe("products.delete", start, statusOf(err), err) }()

	n, err := s.svc.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func fromDomainProduct(p product.Product) Product {
	return Product{
		ID:       p.ID(),
		Name:     p.Name(),
		Price:    p.Price(),
		Category: p.Category(),
		Specs:    p.Specs(),
		ImageURL: p.ImageURL(),
	}
}
