package search

import (
	"sort"
	"strings"

	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/product"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/search/ranked"
)

// Rank assigns tiers against the primary term and orders candidates by
// tier, then price, then their original position.
// Without a primary term every candidate is ranked ranked.TierOther.
func Rank(candidates []product.Product, primary string, hasPrimary bool) []ranked.Result {
	results := make([]ranked.Result, len(candidates))
	for i, p := range candidates {
		results[i] = ranked.New(p, tierOf(p, primary, hasPrimary))
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Tier() != results[j].Tier() {
			return results[i].Tier() < results[j].Tier()
		}
		return results[i].Product().Price() < results[j].Product().Price()
	})

	return results
}

func tierOf(p product.Product, primary string, hasPrimary bool) ranked.Tier {
	if !hasPrimary {
		return ranked.TierOther
	}
	primary = strings.ToLower(primary)
	switch {
	case strings.Contains(strings.ToLower(p.Name()), primary):
		return ranked.TierName
	case strings.Contains(strings.ToLower(p.Category()), primary):
		return ranked.TierCategory
	default:
		return ranked.TierOther
	}
}
