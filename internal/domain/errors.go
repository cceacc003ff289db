package domain

import "errors"

var (
	// ErrNotFound signals a missing product.
	ErrNotFound = errors.New("not found")
	// ErrInvalidProduct signals a product that fails validation.
	ErrInvalidProduct = errors.New("invalid product")
	// ErrInvalidQuery signals a chat message the pipeline cannot accept.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrCatalogUnavailable signals a failed catalog read. It is never used for "no matches".
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrLLMProviderError signals a language-model provider failure.
	ErrLLMProviderError = errors.New("llm provider error")
	// ErrLLMQuotaExceeded signals that the token budget rejected a completion.
	ErrLLMQuotaExceeded = errors.New("llm token budget exceeded")
)
