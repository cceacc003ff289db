package ranked

import "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/product"

// Tier is the relevance class of a candidate. Lower is more relevant.
type Tier int

// Relevance tiers.
const (
	// TierName means the primary term occurs in the product name.
	TierName Tier = 1
	// TierCategory means the primary term occurs in the category but not the name.
	TierCategory Tier = 2
	// TierOther covers every other candidate.
	TierOther Tier = 3
)

// String returns a short label used in logs and API previews.
func (t Tier) String() string {
	switch t {
	case TierName:
		return "name"
	case TierCategory:
		return "category"
	default:
		return "other"
	}
}

// Result is a product annotated with its relevance tier.
type Result struct {
	product product.Product
	tier    Tier
}

// New creates a ranked result.
func New(p product.Product, tier Tier) Result {
	return Result{product: p, tier: tier}
}

// Product returns the ranked product.
func (r Result) Product() product.Product { return r.product }

// Tier returns the relevance tier.
func (r Result) Tier() Tier { return r.tier }
