package storefront

import "context"

// Generator produces text completions for recommendation prompts.
// Implement it to plug in a provider other than Ollama or OpenAI.
type Generator interface {
	Generate(ctx context.Context, prompt string) (Completion, error)
}

// Completion carries the generated text and token counts.
// Providers that do not report usage leave the counts at zero.
type Completion struct {
	Text             string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}
