package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/pricerange"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/query"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/search/match"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/search/ranked"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/logger"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/metrics"
)

// Interpretation is the outcome of running a raw query through the pipeline.
type Interpretation struct {
	Terms      query.Terms
	PriceRange *pricerange.Range
	Results    []ranked.Result
	Context    string
}

// Service turns a raw shopping request into ranked catalog matches and a prompt context.
type Service struct {
	catalog   CatalogReader
	index     Index
	stopwords query.Stopwords
}

// New creates a search service with the default stopwords and match mode.
func New(catalog CatalogReader) *Service {
	return &Service{
		catalog:   catalog,
		index:     NewIndex(match.Default),
		stopwords: query.DefaultStopwords,
	}
}

// WithMatchMode sets how term matches and the price range are combined.
func (s *Service) WithMatchMode(m match.Mode) *Service {
	s.index = NewIndex(m)
	return s
}

// WithStopwords replaces the stopword set. An empty set keeps the defaults.
func (s *Service) WithStopwords(sw query.Stopwords) *Service {
	if len(sw) > 0 {
		s.stopwords = sw
	}
	return s
}

// Interpret tokenizes the query, extracts the price constraint, selects and ranks
// candidates from a single catalog snapshot, and renders the prompt context.
// A catalog read failure is reported as domain.ErrCatalogUnavailable.
func (s *Service) Interpret(ctx context.Context, raw string) (Interpretation, error) {
	terms := query.Tokenize(raw, s.stopwords)

	var rng *pricerange.Range
	if r, ok := pricerange.Extract(raw); ok {
		rng = &r
	}
	pattern := pricerange.PatternName(raw)
	if pattern == "" {
		pattern = "none"
	}
	metrics.SearchPriceRangeTotal.WithLabelValues(pattern).Inc()

	out := Interpretation{Terms: terms, PriceRange: rng}

	if terms.IsEmpty() && rng == nil {
		metrics.SearchEmptyTotal.WithLabelValues("no_terms").Inc()
		out.Context = Render(nil, nil)
		return out, nil
	}

	products, err := s.catalog.ListAll(ctx)
	if err != nil {
		return Interpretation{}, fmt.Errorf("read catalog: %w: %w", domain.ErrCatalogUnavailable, err)
	}

	candidates := s.index.Candidates(products, terms, rng)
	metrics.SearchCandidates.WithLabelValues(string(s.index.Mode())).Observe(float64(len(candidates)))
	if len(candidates) == 0 {
		metrics.SearchEmptyTotal.WithLabelValues("no_match").Inc()
	}

	primary, hasPrimary := terms.Primary()
	out.Results = Rank(candidates, primary, hasPrimary)
	out.Context = Render(out.Results, rng)

	logger.FromContext(ctx).Debug("query interpreted",
		zap.Strings("terms", terms.All()),
		zap.Bool("price_range", rng != nil),
		zap.Int("catalog_size", len(products)),
		zap.Int("candidates", len(candidates)),
		zap.String("match_mode", string(s.index.Mode())),
	)

	return out, nil
}
