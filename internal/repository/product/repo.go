package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain"
	domprod "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/product"
)

// Repo implements the catalog reader and the catalog admin repository on SQLite.
type Repo struct {
	db *sql.DB
}

// New creates a product repository.
func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// ListAll returns the whole catalog in id order, read in a single statement.
func (r *Repo) ListAll(ctx context.Context) ([]domprod.Product, error) {
	return r.List(ctx, 0)
}

// List returns up to limit products in id order. limit <= 0 means no limit.
func (r *Repo) List(ctx context.Context, limit int) ([]domprod.Product, error) {
	q := "SELECT " + productColumns + " FROM products ORDER BY id"
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var out []domprod.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return out, nil
}

// Get returns one product or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, id int64) (domprod.Product, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+productColumns+" FROM products WHERE id = ?", id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domprod.Product{}, domain.ErrNotFound
		}
		return domprod.Product{}, fmt.Errorf("get product %d: %w", id, err)
	}
	return p, nil
}

// Create inserts the product and returns it with the assigned id.
func (r *Repo) Create(ctx context.Context, p domprod.Product) (domprod.Product, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO products (name, price, category, specs, image_url) VALUES (?, ?, ?, ?, ?)",
		p.Name(), p.Price(), nullIfEmpty(p.Category()), nullIfEmpty(p.Specs()), nullIfEmpty(p.ImageURL()),
	)
	if err != nil {
		return domprod.Product{}, fmt.Errorf("insert product: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domprod.Product{}, fmt.Errorf("insert product id: %w", err)
	}
	return p.WithID(id), nil
}

// Delete removes a product and returns the number of deleted rows.
func (r *Repo) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return 0, fmt.Errorf("delete product %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete product %d rows: %w", id, err)
	}
	return n, nil
}

// Count returns the catalog size.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}
