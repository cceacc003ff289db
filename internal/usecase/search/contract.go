package search

import (
	"context"

	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/product"
)

// CatalogReader returns a consistent snapshot of the catalog in store order.
type CatalogReader interface {
	ListAll(ctx context.Context) ([]product.Product, error)
}
