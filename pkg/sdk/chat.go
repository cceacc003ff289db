package storefront

import (
	"context"
	"time"

	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/pricerange"
	searchuc "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/usecase/search"
)

// Recommend answers a shopping request for userID (may be empty).
// A language-model failure is not an error: Response holds the apology and Degraded is set.
// A catalog read failure returns an error wrapping ErrCatalogUnavailable.
func (c *Client) Recommend(ctx context.Context, userID, message string) (out Recommendation, err error) {
	start := time.Now()
	defer func() { c.obs.observeRecommend(start, out, err) }()

	rec, err := c.chatSvc.Recommend(ctx, userID, message)
	if err != nil {
		return Recommendation{}, err
	}
	return Recommendation{
		Response: rec.Response,
		Degraded: rec.Degraded,
		Preview:  fromInterpretation(rec.Interpretation),
	}, nil
}

// Preview interprets a shopping request without calling the language model.
func (c *Client) Preview(ctx context.Context, message string) (_ Preview, err error) {
	start := time.Now()
	defer func() { c.obs.observe("preview", start, statusOf(err), err) }()

	in, err := c.chatSvc.Preview(ctx, message)
	if err != nil {
		return Preview{}, err
	}
	return fromInterpretation(in), nil
}

// History returns the user's latest exchanges, newest first.
// limit outside 1..100 falls back to 20.
func (c *Client) History(ctx context.Context, userID string, limit int) (_ []Exchange, err error) {
	start := time.Now()
	defer func() { c.obs.observe("history", start, statusOf(err), err) }()

	items, err := c.chatSvc.History(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]Exchange, len(items))
	for i, e := range items {
		out[i] = Exchange{
			ID:        e.ID(),
			UserID:    e.UserID(),
			Message:   e.Message(),
			Response:  e.Response(),
			CreatedAt: e.CreatedAt().UTC(),
		}
	}
	return out, nil
}

func fromInterpretation(in searchuc.Interpretation) Preview {
	primary, _ := in.Terms.Primary()
	matches := make([]Match, len(in.Results))
	for i, r := range in.Results {
		matches[i] = Match{Product: fromDomainProduct(r.Product()), Tier: r.Tier().String()}
	}
	return Preview{
		Terms:      in.Terms.All(),
		Primary:    primary,
		PriceRange: fromDomainRange(in.PriceRange),
		Matches:    matches,
		Context:    in.Context,
	}
}

func fromDomainRange(r *pricerange.Range) *PriceRange {
	if r == nil {
		return nil
	}
	var out PriceRange
	if v, ok := r.Min(); ok {
		out.Min = &v
	}
	if v, ok := r.Max(); ok {
		out.Max = &v
	}
	return &out
}
