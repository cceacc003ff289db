package storefront

import "time"

// MatchMode controls how term matches and a price range combine.
type MatchMode string

// Match mode constants.
const (
	MatchUnion     MatchMode = "union"
	MatchIntersect MatchMode = "intersect"
)

// Product is a catalog entry. ID is assigned by the catalog on Add.
type Product struct {
	ID       int64
	Name     string
	Price    float64
	Category string
	Specs    string
	ImageURL string
}

// PriceRange is a price constraint read from a request. A nil bound is open.
type PriceRange struct {
	Min *float64
	Max *float64
}

// Match is a ranked catalog candidate.
type Match struct {
	Product Product
	// Tier is "name", "category" or "other".
	Tier string
}

// Preview is the interpreted request without a language-model call.
type Preview struct {
	Terms      []string
	Primary    string
	PriceRange *PriceRange
	Matches    []Match
	// Context is the catalog excerpt the language model would be shown.
	Context string
}

// Recommendation is the answer to one shopping request.
type Recommendation struct {
	Response string
	// Degraded is set when the language model failed and Response is the apology.
	Degraded bool
	Preview  Preview
}

// Exchange is one stored chat turn.
type Exchange struct {
	ID        string
	UserID    string
	Message   string
	Response  string
	CreatedAt time.Time
}
