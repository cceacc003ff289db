// Package query turns raw shopping text into normalized search terms.
package query

import "strings"

// Terms is the ordered, lowercase, stopword-free term sequence of one query.
type Terms struct {
	terms []string
}

// NewTerms wraps an already normalized term sequence.
func NewTerms(terms ...string) Terms {
	return Terms{terms: terms}
}

// Tokenize lowercases raw, splits it on whitespace and drops stopwords.
// Punctuation is kept. An empty result is valid.
func Tokenize(raw string, stopwords Stopwords) Terms {
	fields := strings.Fields(strings.ToLower(raw))
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if stopwords.Contains(f) {
			continue
		}
		terms = append(terms, f)
	}
	return Terms{terms: terms}
}

// All returns the terms in query order.
func (t Terms) All() []string { return t.terms }

// Len returns the number of terms.
func (t Terms) Len() int { return len(t.terms) }

// IsEmpty reports whether every word was filtered out.
func (t Terms) IsEmpty() bool { return len(t.terms) == 0 }

// Primary returns the first surviving term, used to assign ranking tiers.
func (t Terms) Primary() (string, bool) {
	if len(t.terms) == 0 {
		return "", false
	}
	return t.terms[0], true
}
