package storefront

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	catalogPath string

	provider  string // "ollama", "openai" or "custom"
	baseURL   string
	apiKey    string
	model     string
	generator Generator
	timeout   time.Duration

	dailyTokens   int64
	monthlyTokens int64
	rejectOnLimit bool

	matchMode MatchMode
	stopwords []string

	cacheAddrs    []string
	cachePassword string
	cacheTTL      time.Duration

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithCatalogPath sets the SQLite catalog file. Defaults to an in-memory catalog.
func WithCatalogPath(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.catalogPath = path
	})
}

// WithOllama uses an Ollama server for recommendations.
// Empty arguments fall back to http://localhost:11434 and llama3.2.
func WithOllama(baseURL, model string) Option {
	return optionFunc(func(c *clientConfig) {
		c.provider = "ollama"
		c.baseURL = baseURL
		c.model = model
	})
}

// WithOpenAI uses the OpenAI chat completions API.
// Set baseURL to target a compatible server; empty uses api.openai.com.
func WithOpenAI(apiKey, baseURL, model string) Option {
	return optionFunc(func(c *clientConfig) {
		c.provider = "openai"
		c.apiKey = apiKey
		c.baseURL = baseURL
		c.model = model
	})
}

// WithGenerator uses a caller-provided language model.
func WithGenerator(g Generator) Option {
	return optionFunc(func(c *clientConfig) {
		c.provider = "custom"
		c.generator = g
	})
}

// WithLLMTimeout bounds each language-model call. Default: 60s.
func WithLLMTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.timeout = d
	})
}

// WithTokenBudget caps daily and monthly token use. 0 leaves a period uncapped.
// When reject is false an exhausted budget is only logged.
func WithTokenBudget(daily, monthly int64, reject bool) Option {
	return optionFunc(func(c *clientConfig) {
		c.dailyTokens = daily
		c.monthlyTokens = monthly
		c.rejectOnLimit = reject
	})
}

// WithMatchMode sets how term matches and a price range combine. Default: MatchUnion.
func WithMatchMode(m MatchMode) Option {
	return optionFunc(func(c *clientConfig) {
		c.matchMode = m
	})
}

// WithStopwords replaces the default stopword list.
func WithStopwords(words ...string) Option {
	return optionFunc(func(c *clientConfig) {
		c.stopwords = words
	})
}

// WithRedisCache caches completions and persists token counters in Redis.
// ttl 0 keeps cached completions until evicted.
func WithRedisCache(addr, password string, ttl time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.cacheAddrs = []string{addr}
		c.cachePassword = password
		c.cacheTTL = ttl
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
