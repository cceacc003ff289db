// Package match holds the policy that combines text and price predicates
// when the catalog index selects candidates.
package match

// Mode decides how term matches and the price range combine.
type Mode string

const (
	// Union admits a product when any term matches OR the price range is satisfied.
	// A product inside the price range is a candidate even if no term matches it.
	Union Mode = "union"
	// Intersect admits a product when any term matches AND the price range (if present)
	// is satisfied. With no terms it degrades to the price range alone.
	Intersect Mode = "intersect"
)

// Default is the combination policy used when none is configured.
const Default = Union

// IsValid checks if the mode is one of the supported values.
func (m Mode) IsValid() bool {
	return m == Union || m == Intersect
}

// Combine applies the policy to the outcome of the two predicates.
// hasTerms and hasRange tell which predicates were present in the query at all.
func (m Mode) Combine(hasTerms, textMatch, hasRange, inRange bool) bool {
	switch {
	case !hasTerms && !hasRange:
		return false
	case !hasTerms:
		return inRange
	case !hasRange:
		return textMatch
	}
	if m == Intersect {
		return textMatch && inRange
	}
	return textMatch || inRange
}
