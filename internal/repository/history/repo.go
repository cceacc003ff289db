package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/exchange"
	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/domain/pricerange"
)

// timeLayout sorts lexicographically in chronological order.
const timeLayout = "2006-01-02T15:04:05.000000Z"

// Repo stores chat exchanges and user preferences on SQLite.
type Repo struct {
	db  *sql.DB
	now func() time.Time
}

// New creates a history repository.
func New(db *sql.DB) *Repo {
	return &Repo{db: db, now: time.Now}
}

// Record stores one chat exchange under a fresh UUID. An empty userID is stored as NULL.
func (r *Repo) Record(ctx context.Context, userID, message, response string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO chat_history (id, user_id, message, response, created_at) VALUES (?, ?, ?, ?, ?)",
		uuid.NewString(), sql.NullString{String: userID, Valid: userID != ""},
		message, response, r.now().UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert chat history: %w", err)
	}
	return nil
}

// Recent returns the user's latest exchanges, newest first.
func (r *Repo) Recent(ctx context.Context, userID string, limit int) ([]exchange.Exchange, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, COALESCE(user_id, ''), message, response, created_at
		FROM chat_history
		WHERE user_id = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query chat history: %w", err)
	}
	defer rows.Close()

	var out []exchange.Exchange
	for rows.Next() {
		var id, uid, msg, resp, created string
		if err := rows.Scan(&id, &uid, &msg, &resp, &created); err != nil {
			return nil, fmt.Errorf("scan chat history: %w", err)
		}
		out = append(out, exchange.Reconstruct(id, uid, msg, resp, parseTime(created)))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chat history: %w", err)
	}
	return out, nil
}

// SaveLastBudget upserts preferences.last_budget for the user, keeping other preference keys.
func (r *Repo) SaveLastBudget(ctx context.Context, userID string, budget pricerange.Range) error {
	data, err := json.Marshal(budget)
	if err != nil {
		return fmt.Errorf("marshal budget: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO users (id, preferences)
		VALUES (?, json_set('{}', '$.last_budget', json(?)))
		ON CONFLICT(id) DO UPDATE SET
			preferences = json_set(COALESCE(users.preferences, '{}'), '$.last_budget', json(?))`,
		userID, string(data), string(data),
	)
	if err != nil {
		return fmt.Errorf("upsert user preferences: %w", err)
	}
	return nil
}

// Preferences returns the raw preferences JSON of a user, or "{}" when none is stored.
func (r *Repo) Preferences(ctx context.Context, userID string) (json.RawMessage, error) {
	var prefs sql.NullString
	err := r.db.QueryRowContext(ctx, "SELECT preferences FROM users WHERE id = ?", userID).Scan(&prefs)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user preferences: %w", err)
	}
	if !prefs.Valid || prefs.String == "" {
		return json.RawMessage("{}"), nil
	}
	return json.RawMessage(prefs.String), nil
}

func parseTime(s string) time.Time {
	for _, layout := range []string{timeLayout, time.RFC3339Nano, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
