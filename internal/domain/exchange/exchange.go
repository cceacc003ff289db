// Package exchange holds one stored chat turn.
package exchange

import "time"

// Exchange is a recorded chat message and the answer it received.
type Exchange struct {
	id        string
	userID    string
	message   string
	response  string
	createdAt time.Time
}

// Reconstruct restores an Exchange from storage.
func Reconstruct(id, userID, message, response string, createdAt time.Time) Exchange {
	return Exchange{id: id, userID: userID, message: message, response: response, createdAt: createdAt}
}

// ID returns the exchange identifier (UUID).
func (e Exchange) ID() string { return e.id }

// UserID returns the user the exchange belongs to; empty for anonymous chats.
func (e Exchange) UserID() string { return e.userID }

// Message returns the user's message.
func (e Exchange) Message() string { return e.message }

// Response returns the recommendation sent back.
func (e Exchange) Response() string { return e.response }

// CreatedAt returns when the exchange was stored (UTC).
func (e Exchange) CreatedAt() time.Time { return e.createdAt }
