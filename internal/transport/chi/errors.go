package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/wasiqbarat/Personal-Shopping-Assistant/internal/logger"
)

// Client-facing error messages. Internals never reach the response body.
const (
	msgInternal          = "Internal server error"
	msgInvalidBody       = "Invalid request body"
	msgInvalidRequest    = "Invalid request"
	msgInvalidProduct    = "Invalid product"
	msgMessageRequired   = "Message is required"
	msgUserIDInvalid     = "userId must be a string or a number"
	msgUserIDRequired    = "userId is required"
	msgInvalidLimit      = "limit must be a positive integer"
	msgNameAndPrice      = "Name and price are required"
	msgProductIDRequired = "Product ID is required"
	msgNotFound          = "Not found"
	msgMethodNotAllowed  = "Method not allowed"
	msgProductAdded      = "Product added successfully"
	msgProductDeleted    = "Product deleted successfully"
	msgNegativePrice     = "Price must be non-negative"
	msgInvalidPeriod     = "period must be day or month"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

type errorResponse struct {
	Error   string `json:"error"`
	Success bool   `json:"success"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, message string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, message)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())
	for _, h := range s.errorHandlers {
		if h(w, err) {
			log.Warn("domain error", zap.Error(err))
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, msgInternal)
}
