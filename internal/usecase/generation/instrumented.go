package generation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/metrics"
)

// BudgetChecker is the local interface for budget enforcement.
type BudgetChecker interface {
	Check(ctx context.Context) error
	Record(tokens int64)
	RemainingDaily() int64
	RemainingMonthly() int64
}

// InstrumentedGenerator wraps a Generator with budget enforcement, request metrics and logging.
// It is the single place LLM request metrics are recorded, whichever provider sits inside.
type InstrumentedGenerator struct {
	inner    domain.Generator
	provider string
	model    string
	budget   BudgetChecker
	logger   *zap.Logger
}

// NewInstrumentedGenerator wraps a generator. budget may be nil.
func NewInstrumentedGenerator(
	inner domain.Generator, provider, model string,
	budget BudgetChecker, logger *zap.Logger,
) *InstrumentedGenerator {
	return &InstrumentedGenerator{
		inner:    inner,
		provider: provider,
		model:    model,
		budget:   budget,
		logger:   logger,
	}
}

// Generate checks the budget, delegates to the inner generator and records usage.
func (g *InstrumentedGenerator) Generate(ctx context.Context, prompt string) (domain.Completion, error) {
	if g.budget != nil {
		if err := g.budget.Check(ctx); err != nil {
			g.fail("quota")
			g.logger.Error("Token budget exceeded",
				zap.String("provider", g.provider),
				zap.String("model", g.model),
				zap.Error(err),
			)
			return domain.Completion{}, fmt.Errorf("budget check: %w", err)
		}
	}

	start := time.Now()
	res, err := g.inner.Generate(ctx, prompt)
	duration := time.Since(start)

	metrics.LLMRequestDuration.WithLabelValues(g.provider, g.model).Observe(duration.Seconds())

	if err != nil {
		g.fail(errorType(err))
		g.logger.Error("Completion request failed",
			zap.String("provider", g.provider),
			zap.String("model", g.model),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return domain.Completion{}, fmt.Errorf("generate: %w", err)
	}

	metrics.LLMRequestsTotal.WithLabelValues(g.provider, g.model, "ok").Inc()
	if res.PromptTokens > 0 {
		metrics.LLMTokensTotal.WithLabelValues(g.provider, g.model, "prompt").Add(float64(res.PromptTokens))
	}
	if res.CompletionTokens > 0 {
		metrics.LLMTokensTotal.WithLabelValues(g.provider, g.model, "completion").Add(float64(res.CompletionTokens))
	}

	if g.budget != nil && res.TotalTokens > 0 {
		g.budget.Record(int64(res.TotalTokens))
		remaining := metrics.LLMBudgetTokensRemaining
		remaining.WithLabelValues(g.provider, PeriodDaily).Set(float64(g.budget.RemainingDaily()))
		remaining.WithLabelValues(g.provider, PeriodMonthly).Set(float64(g.budget.RemainingMonthly()))
	}

	g.logger.Debug("Completion request completed",
		zap.String("provider", g.provider),
		zap.String("model", g.model),
		zap.Duration("duration", duration),
		zap.Int("prompt_tokens", res.PromptTokens),
		zap.Int("completion_tokens", res.CompletionTokens),
		zap.Int("response_chars", len(res.Text)),
	)

	return res, nil
}

// HealthCheck delegates to the inner generator when it supports health checks.
func (g *InstrumentedGenerator) HealthCheck(ctx context.Context) error {
	hc, ok := g.inner.(domain.HealthChecker)
	if !ok {
		return nil
	}
	if err := hc.HealthCheck(ctx); err != nil {
		return fmt.Errorf("llm health: %w", err)
	}
	return nil
}

func (g *InstrumentedGenerator) fail(errType string) {
	metrics.LLMRequestsTotal.WithLabelValues(g.provider, g.model, "error").Inc()
	metrics.LLMErrorsTotal.WithLabelValues(g.provider, g.model, errType).Inc()
}

func errorType(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, domain.ErrLLMQuotaExceeded):
		return "quota"
	default:
		return "provider"
	}
}
