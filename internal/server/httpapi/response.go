package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/itemkeeper/internal/common"
	"github.com/dmitrijs2005/itemkeeper/internal/server/validation"
)

type errorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Field   string            `json:"field,omitempty"`
	Details validation.Errors `json:"details,omitempty"`
}

// messageResponse is the envelope of successful mutations.
type messageResponse struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
	User    any    `json:"user,omitempty"`
	Item    any    `json:"item,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// failureMessages names the resource-specific texts for NotFound and
// Forbidden outcomes.
type failureMessages struct {
	notFound  string
	forbidden string
}

// writeFailure maps a service error to a status code and a client-safe body.
// Unexpected errors are logged and reported as a bare 500.
func (s *HTTPServer) writeFailure(w http.ResponseWriter, r *http.Request, err error, msgs failureMessages) {
	var verr validation.Errors
	var cerr *common.ConflictError

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Validation failed", Details: verr})
	case errors.Is(err, common.ErrorPayloadTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "request entity too large")
	case errors.As(err, &cerr):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "User already exists", Field: cerr.Field})
	case errors.Is(err, common.ErrorInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, common.ErrorForbidden) && msgs.forbidden != "":
		writeError(w, http.StatusForbidden, msgs.forbidden)
	case errors.Is(err, common.ErrorNotFound) && msgs.notFound != "":
		writeError(w, http.StatusNotFound, msgs.notFound)
	default:
		s.logger.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (s *HTTPServer) notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{
		Error:   "Not Found",
		Message: "Cannot " + r.Method + " " + r.URL.Path,
	})
}

func (s *HTTPServer) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{
		Error:   "Method Not Allowed",
		Message: "Cannot " + r.Method + " " + r.URL.Path,
	})
}
