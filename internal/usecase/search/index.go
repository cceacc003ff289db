package search

import (
	"strings"

	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/pricerange"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/product"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/query"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/search/match"
)

// Index selects the candidate products of a query from a catalog snapshot.
type Index struct {
	mode match.Mode
}

// NewIndex creates an index with the given combination policy.
// An invalid mode falls back to match.Default.
func NewIndex(m match.Mode) Index {
	if !m.IsValid() {
		m = match.Default
	}
	return Index{mode: m}
}

// Mode returns the combination policy in use.
func (ix Index) Mode() match.Mode { return ix.mode }

// Candidates returns the products admitted by the terms and the optional price range,
// in catalog order. A term matches when name, category or specs contain it
// case-insensitively.
func (ix Index) Candidates(
	products []product.Product, terms query.Terms, rng *pricerange.Range,
) []product.Product {
	hasTerms := !terms.IsEmpty()
	hasRange := rng != nil
	if !hasTerms && !hasRange {
		return nil
	}

	out := make([]product.Product, 0, len(products))
	for _, p := range products {
		textMatch := hasTerms && matchesAnyTerm(p, terms.All())
		inRange := hasRange && rng.Contains(p.Price())
		if ix.mode.Combine(hasTerms, textMatch, hasRange, inRange) {
			out = append(out, p)
		}
	}
	return out
}

func matchesAnyTerm(p product.Product, terms []string) bool {
	name := strings.ToLower(p.Name())
	category := strings.ToLower(p.Category())
	specs := strings.ToLower(p.Specs())
	for _, t := range terms {
		if strings.Contains(name, t) || strings.Contains(category, t) || strings.Contains(specs, t) {
			return true
		}
	}
	return false
}
