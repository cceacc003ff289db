package chat

import (
	"context"

	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/exchange"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/pricerange"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/usecase/search"
)

// Interpreter runs the query pipeline.
type Interpreter interface {
	Interpret(ctx context.Context, raw string) (search.Interpretation, error)
}

// HistoryStore stores and reads back chat exchanges.
type HistoryStore interface {
	Record(ctx context.Context, userID, message, response string) error
	Recent(ctx context.Context, userID string, limit int) ([]exchange.Exchange, error)
}

// PreferenceRecorder stores the last budget a user asked for.
type PreferenceRecorder interface {
	SaveLastBudget(ctx context.Context, userID string, budget pricerange.Range) error
}
