package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/config"
	dbRedis "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/db/redis"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/db/sqlite"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/query"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/search/match"
	logpkg "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/logger"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/metrics"
	budgetrepo "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/repository/budget"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/repository/completion"
	historyrepo "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/repository/history"
	productrepo "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/repository/product"
	chiTransport "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/transport/chi"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/transport/ollama"
	openaiGen "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/transport/openai"
	cataloguc "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/usecase/catalog"
	chatuc "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/usecase/chat"
	generationuc "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/usecase/generation"
	healthuc "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/usecase/health"
	searchuc "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/usecase/search"
	usageuc "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/usecase/usage"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, "api", cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting storefront assistant",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("catalog", cfg.Catalog.Path),
		zap.String("llm_provider", cfg.LLM.Provider),
		zap.String("llm_model", cfg.LLM.Model),
		zap.Bool("cache", cfg.Cache.Enabled),
	)

	ctx := context.Background()

	catalogDB, err := sqlite.Open(ctx, cfg.Catalog.Path)
	if err != nil {
		logger.Fatal("Failed to open catalog database", zap.Error(err))
	}
	defer func() { _ = catalogDB.Close() }()
	logger.Info("Catalog database ready", zap.String("path", catalogDB.Path()))

	// Optional Redis: completion cache and budget persistence.
	var cache *dbRedis.Store
	if cfg.Cache.Enabled {
		cache, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer cache.Close()

		if err := cache.WaitForReady(ctx, time.Duration(cfg.Cache.ReadinessTimeout)*time.Second); err != nil {
			logger.Fatal("Cache not ready", zap.Error(err))
		}
		logger.Info("Connected to cache", zap.Strings("addrs", cfg.Cache.Addrs))
	}

	// Register metrics explicitly (no init())
	metrics.RegisterHTTPMetrics()
	metrics.RegisterLLMMetrics()
	metrics.RegisterSearchMetrics()

	cacheTTL := time.Duration(cfg.Cache.TTLSec) * time.Second
	generator, budget := buildGenerator(ctx, cfg.LLM, cache, cacheTTL, logger)

	// Repositories
	products := productrepo.New(catalogDB.SQL())
	history := historyrepo.New(catalogDB.SQL())

	// Use cases
	searchSvc := searchuc.New(products).
		WithMatchMode(match.Mode(cfg.Search.MatchMode)).
		WithStopwords(query.NewStopwords(cfg.Search.Stopwords))

	prompts, err := chatuc.NewPromptBuilder(cfg.LLM.PromptTemplate)
	if err != nil {
		logger.Fatal("Invalid prompt template", zap.Error(err))
	}
	chatSvc := chatuc.New(searchSvc, generator, prompts, time.Duration(cfg.LLM.TimeoutSec)*time.Second).
		WithHistory(history).
		WithPreferences(history)
	catalogSvc := cataloguc.New(products)

	// Pass nil interface (not typed nil pointer!) when the cache is disabled.
	var cachePinger healthuc.Pinger
	if cache != nil {
		cachePinger = cache
	}
	healthSvc := healthuc.New(catalogDB, newProviderHealthChecker(generator), cachePinger)

	server := chiTransport.NewServer(chatSvc, catalogSvc, healthSvc, logger).
		WithUsage(usageuc.New(budget)).
		WithStaticDir(cfg.Static.Dir)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      server.Handler(),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// buildGenerator assembles the decorator chain: provider -> Instrumented -> Cached.
// Cache hits skip the budget and the provider metrics.
// The tracker always counts tokens; limits of 0 leave a period uncapped.
func buildGenerator(
	ctx context.Context,
	cfg config.LLMConfig,
	cache *dbRedis.Store,
	cacheTTL time.Duration,
	logger *zap.Logger,
) (domain.Generator, *generationuc.BudgetTracker) {
	var base domain.Generator
	switch cfg.Provider {
	case config.ProviderOpenAI:
		base = openaiGen.NewGenerator(&openaiGen.Config{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
		})
	default:
		base = ollama.NewGenerator(&ollama.Config{
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
		})
	}

	action := generationuc.BudgetActionWarn
	if cfg.Budget.Action == "reject" {
		action = generationuc.BudgetActionReject
	}
	tracker := generationuc.NewBudgetTracker(
		cfg.Provider, cfg.Budget.DailyTokens, cfg.Budget.MonthlyTokens, action, logger,
	)
	if cache != nil {
		tracker.WithStore(ctx, budgetrepo.New(cache, budgetrepo.DefaultDailyTTL, budgetrepo.DefaultMonthlyTTL))
	}
	if cfg.Budget.Enabled() {
		logger.Info("LLM token budget enabled",
			zap.Int64("daily_tokens", cfg.Budget.DailyTokens),
			zap.Int64("monthly_tokens", cfg.Budget.MonthlyTokens),
			zap.String("action", string(action)),
		)
	}

	var generator domain.Generator = generationuc.NewInstrumentedGenerator(
		base, cfg.Provider, cfg.Model, tracker, logger,
	)

	if cache != nil {
		generator = completion.New(generator, cache, cfg.Model, cacheTTL, metrics.LLMCacheTotal, logger)
	}

	return generator, tracker
}

// providerHealthChecker adapts domain.Generator to health.ProviderChecker.
type providerHealthChecker struct {
	generator domain.Generator
}

func newProviderHealthChecker(generator domain.Generator) *providerHealthChecker {
	return &providerHealthChecker{generator: generator}
}

func (h *providerHealthChecker) HealthCheck(ctx context.Context) error {
	if hc, ok := h.generator.(domain.HealthChecker); ok {
		if err := hc.HealthCheck(ctx); err != nil {
			return fmt.Errorf("llm health check: %w", err)
		}
	}
	return nil
}
