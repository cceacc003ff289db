package product

import (
	"database/sql"

	domprod "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/product"
)

const productColumns = "id, name, price, category, specs, image_url"

// productRow mirrors a products table row. Optional columns may be NULL.
type productRow struct {
	ID       int64
	Name     string
	Price    float64
	Category sql.NullString
	Specs    sql.NullString
	ImageURL sql.NullString
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(s scanner) (domprod.Product, error) {
	var r productRow
	if err := s.Scan(&r.ID, &r.Name, &r.Price, &r.Category, &r.Specs, &r.ImageURL); err != nil {
		return domprod.Product{}, err
	}
	return domprod.Reconstruct(r.ID, r.Name, r.Price, r.Category.String, r.Specs.String, r.ImageURL.String), nil
}

// nullIfEmpty keeps absent optional columns NULL.
func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
