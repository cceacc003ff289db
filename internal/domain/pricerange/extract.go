package pricerange

import (
	"regexp"
	"strconv"
)

// pattern is one price phrase. Named groups "min" and "max" carry the bounds.
type pattern struct {
	name string
	re   *regexp.Regexp
}

// patterns are tried in precedence order; the first one that matches wins.
// The currency sign and the whitespace between words are optional.
var patterns = []pattern{
	{"between", regexp.MustCompile(`(?i)between\s*\$?(?P<min>\d+)\s*and\s*\$?(?P<max>\d+)`)},
	{"under", regexp.MustCompile(`(?i)under\s*\$?(?P<max>\d+)`)},
	{"over", regexp.MustCompile(`(?i)over\s*\$?(?P<min>\d+)`)},
}

// Extract finds the price constraint in raw query text.
// Returns false when no pattern matches, which means "no constraint", not an error.
func Extract(raw string) (Range, bool) {
	for _, p := range patterns {
		m := p.re.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		r, ok := rangeFromMatch(p.re, m)
		if ok {
			return r, true
		}
	}
	return Range{}, false
}

// PatternName reports which pattern Extract would use, or "" when none matches.
func PatternName(raw string) string {
	for _, p := range patterns {
		if m := p.re.FindStringSubmatch(raw); m != nil {
			if _, ok := rangeFromMatch(p.re, m); ok {
				return p.name
			}
		}
	}
	return ""
}

func rangeFromMatch(re *regexp.Regexp, m []string) (Range, bool) {
	var minPrice, maxPrice *float64
	for i, group := range re.SubexpNames() {
		if group == "" || m[i] == "" {
			continue
		}
		v, err := strconv.ParseFloat(m[i], 64)
		if err != nil {
			return Range{}, false
		}
		switch group {
		case "min":
			minPrice = &v
		case "max":
			maxPrice = &v
		}
	}
	return New(minPrice, maxPrice)
}
