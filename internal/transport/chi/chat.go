package chi

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/oapi-codegen/runtime"
)

var errInvalidUserID = errors.New("invalid userId")

// chatRequest defers decoding so a non-string message is rejected instead of coerced.
type chatRequest struct {
	Message json.RawMessage `json:"message"`
	UserID  json.RawMessage `json:"userId"`
}

// Chat handles POST /api/chat.
func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	message, userID, ok := decodeChatRequest(w, r)
	if !ok {
		return
	}

	rec, err := s.chat.Recommend(r.Context(), userID, message)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Response: rec.Response, Success: true})
}

// ChatContext handles POST /api/chat/context: the interpreted query and the context the
// language model would see, without calling it.
func (s *Server) ChatContext(w http.ResponseWriter, r *http.Request) {
	message, _, ok := decodeChatRequest(w, r)
	if !ok {
		return
	}

	interp, err := s.chat.Preview(r.Context(), message)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, interpretationToResponse(interp))
}

// ChatHistory handles GET /api/chat/history?userId=&limit=.
func (s *Server) ChatHistory(w http.ResponseWriter, r *http.Request) {
	var userID string
	if err := runtime.BindQueryParameter("form", true, true, "userId", r.URL.Query(), &userID); err != nil {
		writeError(w, http.StatusBadRequest, msgUserIDRequired)
		return
	}

	limit, ok := bindLimit(w, r)
	if !ok {
		return
	}

	items, err := s.chat.History(r.Context(), userID, limit)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	resp := historyResponse{Items: make([]exchangeResponse, len(items)), Success: true}
	for i, e := range items {
		resp.Items[i] = exchangeToResponse(e)
	}
	writeJSON(w, http.StatusOK, resp)
}

// decodeChatRequest writes a 400 and returns ok=false when the body is not a chat request
// with a non-blank string message.
func decodeChatRequest(w http.ResponseWriter, r *http.Request) (message, userID string, ok bool) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return "", "", false
	}

	if err := json.Unmarshal(req.Message, &message); err != nil || strings.TrimSpace(message) == "" {
		writeError(w, http.StatusBadRequest, msgMessageRequired)
		return "", "", false
	}

	userID, err := parseUserID(req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, msgUserIDInvalid)
		return "", "", false
	}

	return message, userID, true
}

// parseUserID accepts a JSON string or number. Absent or null yields "".
func parseUserID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&n); err == nil {
		return n.String(), nil
	}

	return "", errInvalidUserID
}
