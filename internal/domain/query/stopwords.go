package query

import "strings"

// Stopwords is a set of lowercase words dropped from queries.
type Stopwords map[string]struct{}

// DefaultStopwordList is the stopword list, version 2. Changing it changes ranking.
// Version 2 adds "i", which otherwise becomes the primary term of first-person requests.
var DefaultStopwordList = []string{"a", "an", "the", "with", "for", "in", "on", "at", "to", "i"}

// DefaultStopwords is DefaultStopwordList as a set.
var DefaultStopwords = NewStopwords(DefaultStopwordList)

// NewStopwords builds a set from words. Matching is case-insensitive.
func NewStopwords(words []string) Stopwords {
	s := make(Stopwords, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			s[w] = struct{}{}
		}
	}
	return s
}

// Contains reports whether term (already lowercase) is a stopword.
func (s Stopwords) Contains(term string) bool {
	_, ok := s[term]
	return ok
}
