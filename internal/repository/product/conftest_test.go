package product

import (
	"context"
	"testing"

	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/db/sqlite"
	domprod "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/product"
)

func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	d, err := sqlite.Open(context.Background(), sqlite.MemoryPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return New(d.SQL())
}

func mustProduct(t *testing.T, name string, price float64, category, specs string) domprod.Product {
	t.Helper()
	p, err := domprod.New(name, price, category, specs, "")
	if err != nil {
		t.Fatalf("new product: %v", err)
	}
	return p
}
