package search

import (
	"strings"

	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/pricerange"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/search/ranked"
)

// Rendered context constants.
const (
	// NoProductsText replaces the whole context when nothing was found.
	NoProductsText = "No products found matching the search criteria."
	// ContextHeader opens a non-empty context.
	ContextHeader = "Available products in our database:"
	// UncategorizedHeading labels products without a category.
	UncategorizedHeading = "Uncategorized"
	// PriceRangeLabel prefixes the detected price constraint.
	PriceRangeLabel = "Price Range Requested:"
)

// Render groups ranked results by category in first-seen order and formats them
// for prompt injection. The price annotation is appended only for non-empty results.
func Render(results []ranked.Result, rng *pricerange.Range) string {
	if len(results) == 0 {
		return NoProductsText
	}

	// Grouped by the stored category; only the heading of an empty one is substituted.
	var order []string
	groups := make(map[string][]ranked.Result)
	for _, r := range results {
		category := r.Product().Category()
		if _, seen := groups[category]; !seen {
			order = append(order, category)
		}
		groups[category] = append(groups[category], r)
	}

	var sb strings.Builder
	sb.WriteString(ContextHeader)
	sb.WriteString("\n\n")

	for _, category := range order {
		heading := category
		if heading == "" {
			heading = UncategorizedHeading
		}
		sb.WriteString(heading)
		sb.WriteString(":\n")
		for _, r := range groups[category] {
			p := r.Product()
			sb.WriteString("- ")
			sb.WriteString(p.Name())
			sb.WriteString("\n  Price: $")
			sb.WriteString(p.FormattedPrice())
			sb.WriteString("\n  Specifications: ")
			sb.WriteString(p.Specs())
			sb.WriteString("\n\n")
		}
	}

	if rng != nil {
		sb.WriteString("\n")
		sb.WriteString(PriceRangeLabel)
		sb.WriteString(" ")
		sb.WriteString(rng.Annotation())
		sb.WriteString("\n")
	}

	return sb.String()
}
