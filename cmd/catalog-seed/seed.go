package main

import (
	"context"
	"fmt"

	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/product"
)

type demoProduct struct {
	name     string
	price    float64
	category string
	specs    string
	imageURL string
}

var demoProducts = []demoProduct{
	{"MacBook Pro M2", 1299.99, "Laptops", "Apple M2 chip, 8GB RAM, 256GB SSD, 13-inch Retina display", "macbook-pro.jpg"},
	{"Dell XPS 15", 1599.99, "Laptops", "Intel i7, 16GB RAM, 512GB SSD, NVIDIA RTX 3050", "dell-xps.jpg"},
	{"iPhone 15 Pro", 999.99, "Smartphones", "A17 Pro chip, 256GB storage, Triple camera system", "iphone-15.jpg"},
}

// catalog is the subset of the product repository the seeder needs.
type catalog interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, p product.Product) (product.Product, error)
}

// seed inserts demoProducts and returns how many were inserted.
// A non-empty catalog is skipped unless force is set.
func seed(ctx context.Context, c catalog, force bool) (int, error) {
	if !force {
		n, err := c.Count(ctx)
		if err != nil {
			return 0, fmt.Errorf("count products: %w", err)
		}
		if n > 0 {
			return 0, nil
		}
	}

	for i, d := range demoProducts {
		p, err := product.New(d.name, d.price, d.category, d.specs, d.imageURL)
		if err != nil {
			return i, fmt.Errorf("demo product %q: %w", d.name, err)
		}
		if _, err := c.Create(ctx, p); err != nil {
			return i, fmt.Errorf("insert %q: %w", d.name, err)
		}
	}
	return len(demoProducts), nil
}
