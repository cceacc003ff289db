package chi

import (
	"time"

	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/exchange"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/pricerange"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/product"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/search/ranked"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/usage"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/usecase/search"
)

type chatResponse struct {
	Response string `json:"response"`
	Success  bool   `json:"success"`
}

type matchResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Tier     string  `json:"tier"`
}

type chatContextResponse struct {
	Terms      []string          `json:"terms"`
	Primary    string            `json:"primary,omitempty"`
	PriceRange *pricerange.Range `json:"price_range"`
	Matches    []matchResponse   `json:"matches"`
	Context    string            `json:"context"`
	Success    bool              `json:"success"`
}

type exchangeResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

type historyResponse struct {
	Items   []exchangeResponse `json:"items"`
	Success bool               `json:"success"`
}

type productResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Specs    string  `json:"specs"`
	ImageURL string  `json:"image_url"`
}

// createProductRequest keeps Price a pointer so a missing price is told apart from 0.
type createProductRequest struct {
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	Category string   `json:"category"`
	Specs    string   `json:"specs"`
	ImageURL string   `json:"image_url"`
}

type createProductResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type deleteProductResponse struct {
	Message string `json:"message"`
	Changes int64  `json:"changes"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func productToResponse(p product.Product) productResponse {
	return productResponse{
		ID:       p.ID(),
		Name:     p.Name(),
		Price:    p.Price(),
		Category: p.Category(),
		Specs:    p.Specs(),
		ImageURL: p.ImageURL(),
	}
}

func matchToResponse(r ranked.Result) matchResponse {
	p := r.Product()
	return matchResponse{
		ID:       p.ID(),
		Name:     p.Name(),
		Price:    p.Price(),
		Category: p.Category(),
		Tier:     r.Tier().String(),
	}
}

func exchangeToResponse(e exchange.Exchange) exchangeResponse {
	return exchangeResponse{
		ID:        e.ID(),
		UserID:    e.UserID(),
		Message:   e.Message(),
		Response:  e.Response(),
		CreatedAt: e.CreatedAt().UTC(),
	}
}

func interpretationToResponse(in search.Interpretation) chatContextResponse {
	terms := in.Terms.All()
	if terms == nil {
		terms = []string{}
	}
	primary, _ := in.Terms.Primary()

	matches := make([]matchResponse, len(in.Results))
	for i, r := range in.Results {
		matches[i] = matchToResponse(r)
	}

	return chatContextResponse{
		Terms:      terms,
		Primary:    primary,
		PriceRange: in.PriceRange,
		Matches:    matches,
		Context:    in.Context,
		Success:    true,
	}
}

type usageResponse struct {
	Period          string    `json:"period"`
	PeriodStart     time.Time `json:"period_start"`
	PeriodEnd       time.Time `json:"period_end"`
	TokensUsed      int64     `json:"tokens_used"`
	TokensLimit     *int64    `json:"tokens_limit"`
	TokensRemaining *int64    `json:"tokens_remaining"`
	Exhausted       bool      `json:"exhausted"`
	Success         bool      `json:"success"`
}

func usageToResponse(r usage.Report) usageResponse {
	resp := usageResponse{
		Period:      string(r.Period()),
		PeriodStart: r.PeriodStart(),
		PeriodEnd:   r.PeriodEnd(),
		TokensUsed:  r.TokensUsed(),
		Exhausted:   r.Exhausted(),
		Success:     true,
	}
	if r.Capped() {
		limit, remaining := r.TokensLimit(), r.TokensRemaining()
		resp.TokensLimit = &limit
		resp.TokensRemaining = &remaining
	}
	return resp
}
