package domain

import "context"

// Generator is the shared text completion contract between layers.
type Generator interface {
	Generate(ctx context.Context, prompt string) (Completion, error)
}

// HealthChecker verifies language-model provider availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Completion carries the generated text and token usage through the decorator chain.
// Providers that do not report usage leave the token counts at zero.
type Completion struct {
	Text             string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}
