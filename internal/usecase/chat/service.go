package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/exchange"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/logger"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/usecase/search"
)

// History listing limits.
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// ApologyText replaces the recommendation when the language model fails.
const ApologyText = "Sorry, I encountered an error while processing your request."

// Recommendation is the outcome of one chat exchange.
type Recommendation struct {
	Response       string
	Interpretation search.Interpretation
	// Degraded is set when Response is ApologyText.
	Degraded bool
}

// Service answers shopping requests with catalog-grounded recommendations.
type Service struct {
	interpreter Interpreter
	generator   domain.Generator
	prompts     *PromptBuilder
	timeout     time.Duration
	history     HistoryStore
	prefs       PreferenceRecorder
}

// New creates a chat service. timeout bounds the language-model call; 0 disables it.
func New(
	interpreter Interpreter, generator domain.Generator,
	prompts *PromptBuilder, timeout time.Duration,
) *Service {
	return &Service{
		interpreter: interpreter,
		generator:   generator,
		prompts:     prompts,
		timeout:     timeout,
	}
}

// WithHistory attaches a chat history store.
func (s *Service) WithHistory(h HistoryStore) *Service {
	s.history = h
	return s
}

// WithPreferences attaches a budget preference recorder.
func (s *Service) WithPreferences(p PreferenceRecorder) *Service {
	s.prefs = p
	return s
}

// Recommend interprets the message, asks the language model for a recommendation and
// records the exchange. A language-model failure yields ApologyText, not an error;
// a catalog failure is returned wrapped in domain.ErrCatalogUnavailable.
func (s *Service) Recommend(ctx context.Context, userID, message string) (Recommendation, error) {
	if strings.TrimSpace(message) == "" {
		return Recommendation{}, fmt.Errorf("%w: message is required", domain.ErrInvalidQuery)
	}
	ctx = logger.WithShopper(ctx, userID)

	interp, err := s.interpreter.Interpret(ctx, message)
	if err != nil {
		return Recommendation{}, fmt.Errorf("interpret query: %w", err)
	}

	prompt, err := s.prompts.Build(interp.Context, message)
	if err != nil {
		return Recommendation{}, err
	}

	rec := Recommendation{Interpretation: interp}
	text, err := s.generate(ctx, prompt)
	if err != nil {
		logger.FromContext(ctx).Warn("recommendation failed, answering with apology",
			zap.Error(err),
			zap.Bool("quota", errors.Is(err, domain.ErrLLMQuotaExceeded)),
		)
		rec.Response = ApologyText
		rec.Degraded = true
	} else {
		rec.Response = text
	}

	s.record(ctx, userID, message, rec)
	return rec, nil
}

// Preview runs the pipeline without calling the language model.
func (s *Service) Preview(ctx context.Context, message string) (search.Interpretation, error) {
	if strings.TrimSpace(message) == "" {
		return search.Interpretation{}, fmt.Errorf("%w: message is required", domain.ErrInvalidQuery)
	}
	interp, err := s.interpreter.Interpret(ctx, message)
	if err != nil {
		return search.Interpretation{}, fmt.Errorf("interpret query: %w", err)
	}
	return interp, nil
}

// History returns the user's latest exchanges, newest first.
// Without a history store it returns an empty list.
func (s *Service) History(ctx context.Context, userID string, limit int) ([]exchange.Exchange, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: userId is required", domain.ErrInvalidQuery)
	}
	if limit <= 0 || limit > MaxHistoryLimit {
		limit = DefaultHistoryLimit
	}
	if s.history == nil {
		return nil, nil
	}
	items, err := s.history.Recent(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("read chat history: %w", err)
	}
	return items, nil
}

func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	res, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// record stores history and budget preference. Failures are logged only.
func (s *Service) record(ctx context.Context, userID, message string, rec Recommendation) {
	log := logger.FromContext(ctx)

	if s.history != nil {
		if err := s.history.Record(ctx, userID, message, rec.Response); err != nil {
			log.Warn("failed to store chat history", zap.Error(err))
		}
	}

	if s.prefs != nil && userID != "" && rec.Interpretation.PriceRange != nil {
		if err := s.prefs.SaveLastBudget(ctx, userID, *rec.Interpretation.PriceRange); err != nil {
			log.Warn("failed to store budget preference", zap.Error(err))
		}
	}
}
