package storefront

import "github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound           = domain.ErrNotFound
	ErrInvalidProduct     = domain.ErrInvalidProduct
	ErrInvalidQuery       = domain.ErrInvalidQuery
	ErrCatalogUnavailable = domain.ErrCatalogUnavailable
	ErrLLMProviderError   = domain.ErrLLMProviderError
	ErrLLMQuotaExceeded   = domain.ErrLLMQuotaExceeded
)
