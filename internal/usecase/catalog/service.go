package catalog

import (
	"context"
	"fmt"

	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/product"
)

// MaxListLimit caps a single product listing.
const MaxListLimit = 1000

// Service handles product CRUD operations.
type Service struct {
	repo Repository
}

// New creates a catalog service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns products in store order. limit <= 0 returns everything.
func (s *Service) List(ctx context.Context, limit int) ([]product.Product, error) {
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	ps, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return ps, nil
}

// Create validates and stores a new product, returning it with its assigned ID.
func (s *Service) Create(
	ctx context.Context, name string, price float64, category, specs, imageURL string,
) (product.Product, error) {
	p, err := product.New(name, price, category, specs, imageURL)
	if err != nil {
		return product.Product{}, fmt.Errorf("validate product: %w: %w", domain.ErrInvalidProduct, err)
	}

	stored, err := s.repo.Create(ctx, p)
	if err != nil {
		return product.Product{}, fmt.Errorf("create product: %w", err)
	}
	return stored, nil
}

// Delete removes a product and reports how many rows were removed (0 or 1).
func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, fmt.Errorf("%w: product id must be positive", domain.ErrInvalidProduct)
	}
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete product: %w", err)
	}
	return n, nil
}
