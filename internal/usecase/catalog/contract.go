package catalog

import (
	"context"

	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/product"
)

// Repository defines the storage contract for catalog administration.
type Repository interface {
	List(ctx context.Context, limit int) ([]product.Product, error)
	Create(ctx context.Context, p product.Product) (product.Product, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
