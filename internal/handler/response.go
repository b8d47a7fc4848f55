package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/leadsite/backend/internal/repository"
	"github.com/leadsite/backend/internal/service"
	"github.com/leadsite/backend/internal/validate"
	"github.com/leadsite/backend/pkg/auth"
)

// MaxBodyBytes caps every JSON request body.
const MaxBodyBytes = 1 << 20

// envelope is the shape of every JSON response.
type envelope struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message,omitempty"`
	Data      any      `json:"data,omitempty"`
	Errors    []string `json:"errors,omitempty"`
	Error     string   `json:"error,omitempty"`
	RequestID string   `json:"requestId,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, envelope{Success: true, Message: message, Data: data})
}

func writeFailure(w http.ResponseWriter, status int, message string, errs ...string) {
	writeJSON(w, status, envelope{Success: false, Message: message, Errors: errs})
}

// errInvalidJSON is returned by decodeJSON for a body that is not a JSON object.
var errInvalidJSON = errors.New("invalid JSON body")

// decodeJSON reads a size-limited JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return errInvalidJSON
	}
	return nil
}

// responder turns service errors into responses. Internal error details are
// echoed to clients only outside production.
type responder struct {
	production bool
}

func requestID(r *http.Request) string {
	if id := middleware.GetReqID(r.Context()); id != "" {
		return id
	}
	return uuid.NewString()
}

func (rs responder) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs *validate.Errors
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &verrs):
		writeFailure(w, http.StatusBadRequest, "Validation failed", verrs.Messages()...)
	case errors.Is(err, errInvalidJSON):
		writeFailure(w, http.StatusBadRequest, "Invalid JSON body")
	case errors.As(err, &tooLarge):
		writeFailure(w, http.StatusRequestEntityTooLarge, "Request body too large")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeFailure(w, http.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, auth.ErrMissingToken), errors.Is(err, auth.ErrInvalidToken):
		writeFailure(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, service.ErrAccountInactive):
		writeFailure(w, http.StatusForbidden, "Account is inactive")
	case errors.Is(err, repository.ErrNotFound):
		writeFailure(w, http.StatusNotFound, "Record not found")
	default:
		id := requestID(r)
		slog.Error("request failed",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		body := envelope{Success: false, Message: "Internal server error", RequestID: id}
		if !rs.production {
			body.Error = err.Error()
		}
		writeJSON(w, http.StatusInternalServerError, body)
	}
}
