package storefront

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	dbRedis "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/db/redis"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/db/sqlite"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/exchange"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/product"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/query"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/search/match"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/metrics"
	budgetrepo "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/repository/budget"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/repository/completion"
	historyrepo "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/repository/history"
	productrepo "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/repository/product"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/transport/ollama"
	openaiGen "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/transport/openai"
	cataloguc "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/usecase/catalog"
	chatuc "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/usecase/chat"
	generationuc "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/usecase/generation"
	healthuc "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/usecase/health"
	searchuc "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/usecase/search"
	usageuc "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/usecase/usage"
)

const (
	defaultCatalogPath      = sqlite.MemoryPath
	defaultLLMTimeout       = 60 * time.Second
	defaultReadinessTimeout = 10 * time.Second
)

// Internal interfaces, swapped for mocks in tests.
type chatUseCase interface {
	Recommend(ctx context.Context, userID, message string) (chatuc.Recommendation, error)
	Preview(ctx context.Context, message string) (searchuc.Interpretation, error)
	History(ctx context.Context, userID string, limit int) ([]exchange.Exchange, error)
}

type catalogUseCase interface {
	List(ctx context.Context, limit int) ([]product.Product, error)
	Create(ctx context.Context, name string, price float64, category, specs, imageURL string) (product.Product, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// Client is the storefront SDK entry point.
type Client struct {
	catalog    *sqlite.DB
	cache      *dbRedis.Store
	chatSvc    chatUseCase
	catalogSvc catalogUseCase
	healthSvc  healthUseCase
	usageSvc   usageUseCase
	obs        *observer
}

// New opens the catalog, connects the optional cache and wires the assistant.
// The provided context is used for the catalog migrations and the cache readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		catalogPath: defaultCatalogPath,
		timeout:     defaultLLMTimeout,
		matchMode:   MatchUnion,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.provider == "" {
		return nil, errors.New("storefront: language model required (use WithOllama, WithOpenAI or WithGenerator)")
	}
	switch cfg.provider {
	case "custom":
		if cfg.generator == nil {
			return nil, errors.New("storefront: WithGenerator needs a non-nil generator")
		}
	case "openai":
		if cfg.model == "" {
			return nil, errors.New("storefront: WithOpenAI needs a model")
		}
	case "ollama":
		if cfg.model == "" {
			cfg.model = ollama.DefaultModel
		}
	}
	if !match.Mode(cfg.matchMode).IsValid() {
		return nil, fmt.Errorf("storefront: unknown match mode %q", cfg.matchMode)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	catalogDB, err := sqlite.Open(ctx, cfg.catalogPath)
	if err != nil {
		return nil, fmt.Errorf("storefront: open catalog: %w", err)
	}

	var cache *dbRedis.Store
	if len(cfg.cacheAddrs) > 0 {
		cache, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.cacheAddrs,
			Password: cfg.cachePassword,
		})
		if err != nil {
			_ = catalogDB.Close()
			return nil, fmt.Errorf("storefront: create cache store: %w", err)
		}
		if err := cache.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
			cache.Close()
			_ = catalogDB.Close()
			return nil, fmt.Errorf("storefront: cache not ready: %w", err)
		}
	}

	return wireClient(ctx, catalogDB, cache, cfg, obs)
}

func wireClient(
	ctx context.Context, catalogDB *sqlite.DB, cache *dbRedis.Store,
	cfg *clientConfig, obs *observer,
) (*Client, error) {
	base := newBaseGenerator(cfg)

	action := generationuc.BudgetActionWarn
	if cfg.rejectOnLimit {
		action = generationuc.BudgetActionReject
	}
	tracker := generationuc.NewBudgetTracker(cfg.provider, cfg.dailyTokens, cfg.monthlyTokens, action, zap.NewNop())
	if cache != nil {
		tracker.WithStore(ctx, budgetrepo.New(cache, budgetrepo.DefaultDailyTTL, budgetrepo.DefaultMonthlyTTL))
	}

	instrumented := generationuc.NewInstrumentedGenerator(base, cfg.provider, cfg.model, tracker, zap.NewNop())
	var generator domain.Generator = instrumented
	if cache != nil {
		generator = completion.New(generator, cache, cfg.model, cfg.cacheTTL, metrics.LLMCacheTotal, zap.NewNop())
	}

	products := productrepo.New(catalogDB.SQL())
	history := historyrepo.New(catalogDB.SQL())

	searchSvc := searchuc.New(products).
		WithMatchMode(match.Mode(cfg.matchMode)).
		WithStopwords(query.NewStopwords(cfg.stopwords))

	prompts, err := chatuc.NewPromptBuilder("")
	if err != nil {
		return nil, fmt.Errorf("storefront: prompt template: %w", err)
	}

	// Pass nil interface (not typed nil pointer!) when the cache is disabled.
	var cachePinger healthuc.Pinger
	if cache != nil {
		cachePinger = cache
	}

	return &Client{
		catalog: catalogDB,
		cache:   cache,
		chatSvc: chatuc.New(searchSvc, generator, prompts, cfg.timeout).
			WithHistory(history).
			WithPreferences(history),
		catalogSvc: cataloguc.New(products),
		healthSvc:  healthuc.New(catalogDB, instrumented, cachePinger),
		usageSvc:   usageuc.New(tracker),
		obs:        obs,
	}, nil
}

func newBaseGenerator(cfg *clientConfig) domain.Generator {
	switch cfg.provider {
	case "openai":
		return openaiGen.NewGenerator(&openaiGen.Config{
			APIKey:  cfg.apiKey,
			BaseURL: cfg.baseURL,
			Model:   cfg.model,
		})
	case "ollama":
		return ollama.NewGenerator(&ollama.Config{
			BaseURL: cfg.baseURL,
			Model:   cfg.model,
		})
	default:
		return &generatorAdapter{inner: cfg.generator}
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.cache != nil {
		c.cache.Close()
	}
	if c.catalog != nil {
		_ = c.catalog.Close()
	}
}

// Products returns the catalog management service.
func (c *Client) Products() *ProductService {
	return &ProductService{svc: c.catalogSvc, obs: c.obs}
}

// generatorAdapter wraps a public Generator to satisfy domain.Generator.
type generatorAdapter struct {
	inner Generator
}

func (a *generatorAdapter) Generate(ctx context.Context, prompt string) (domain.Completion, error) {
	r, err := a.inner.Generate(ctx, prompt)
	if err != nil {
		return domain.Completion{}, fmt.Errorf("generate: %w", err)
	}
	return domain.Completion{
		Text:             r.Text,
		PromptTokens:     r.PromptTokens,
		CompletionTokens: r.CompletionTokens,
		TotalTokens:      r.TotalTokens,
	}, nil
}

// HealthCheck delegates to the wrapped generator when it exposes one.
func (a *generatorAdapter) HealthCheck(ctx context.Context) error {
	if hc, ok := a.inner.(domain.HealthChecker); ok {
		return hc.HealthCheck(ctx)
	}
	return nil
}
