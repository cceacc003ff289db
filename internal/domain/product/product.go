package product

import (
	"fmt"
	"math"
	"strings"
)

// MaxNameLength is the maximum allowed product name length.
const MaxNameLength = 256

// Product is a catalog entry (immutable value object).
type Product struct {
	id       int64
	name     string
	price    float64
	category string
	specs    string
	imageURL string
}

// New validates and creates a Product that has not been stored yet (ID is zero).
func New(name string, price float64, category, specs, imageURL string) (Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Product{}, fmt.Errorf("product name is required")
	}
	if len(name) > MaxNameLength {
		return Product{}, fmt.Errorf("product name too long (max %d chars)", MaxNameLength)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return Product{}, fmt.Errorf("product price must be a finite number")
	}
	if price < 0 {
		return Product{}, fmt.Errorf("product price must be non-negative")
	}
	return Product{
		name:     name,
		price:    price,
		category: strings.TrimSpace(category),
		specs:    specs,
		imageURL: strings.TrimSpace(imageURL),
	}, nil
}

// Reconstruct restores a Product from storage without validation.
func Reconstruct(id int64, name string, price float64, category, specs, imageURL string) Product {
	return Product{
		id:       id,
		name:     name,
		price:    price,
		category: category,
		specs:    specs,
		imageURL: imageURL,
	}
}

// WithID returns a copy carrying the store-assigned identifier.
func (p Product) WithID(id int64) Product {
	p.id = id
	return p
}

// ID returns the store-assigned identifier (zero before creation).
func (p Product) ID() int64 { return p.id }

// Name returns the product name.
func (p Product) Name() string { return p.name }

// Price returns the product price.
func (p Product) Price() float64 { return p.price }

// Category returns the product category, possibly empty.
func (p Product) Category() string { return p.category }

// Specs returns the free-text specifications.
func (p Product) Specs() string { return p.specs }

// ImageURL returns the optional image location.
func (p Product) ImageURL() string { return p.imageURL }

// FormattedPrice renders the price with two decimals, the way it is shown everywhere.
func (p Product) FormattedPrice() string {
	return fmt.Sprintf("%.2f", p.price)
}
