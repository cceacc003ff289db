// Package pricerange models the optional price constraint of a shopping query.
package pricerange

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Range is a price constraint with optional inclusive bounds.
// Min <= Max is not enforced; an inverted range contains no price.
type Range struct {
	min *float64
	max *float64
}

// New creates a Range. Returns false when both bounds are absent.
func New(minPrice, maxPrice *float64) (Range, bool) {
	if minPrice == nil && maxPrice == nil {
		return Range{}, false
	}
	return Range{min: copyBound(minPrice), max: copyBound(maxPrice)}, true
}

// AtLeast creates a Range with only a lower bound.
func AtLeast(v float64) Range { return Range{min: &v} }

// AtMost creates a Range with only an upper bound.
func AtMost(v float64) Range { return Range{max: &v} }

// Between creates a Range with both bounds, in the given order.
func Between(lo, hi float64) Range { return Range{min: &lo, max: &hi} }

// Min returns the lower bound, if present.
func (r Range) Min() (float64, bool) {
	if r.min == nil {
		return 0, false
	}
	return *r.min, true
}

// Max returns the upper bound, if present.
func (r Range) Max() (float64, bool) {
	if r.max == nil {
		return 0, false
	}
	return *r.max, true
}

// Contains reports whether price satisfies every present bound.
func (r Range) Contains(price float64) bool {
	if r.min != nil && price < *r.min {
		return false
	}
	if r.max != nil && price > *r.max {
		return false
	}
	return true
}

// Annotation renders the bounds for humans: "Over $500", "Under $1000" or both.
func (r Range) Annotation() string {
	parts := make([]string, 0, 2)
	if r.min != nil {
		parts = append(parts, "Over $"+formatAmount(*r.min))
	}
	if r.max != nil {
		parts = append(parts, "Under $"+formatAmount(*r.max))
	}
	return strings.Join(parts, " ")
}

// MarshalJSON encodes present bounds only, e.g. {"max":500}.
func (r Range) MarshalJSON() ([]byte, error) {
	out := struct {
		Min *float64 `json:"min,omitempty"`
		Max *float64 `json:"max,omitempty"`
	}{Min: r.min, Max: r.max}
	return json.Marshal(out)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func copyBound(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
