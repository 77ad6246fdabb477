// Package shared holds the response helpers and context plumbing used
// by every handler and middleware.
package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// DataResponse is the envelope for every successful read:
// a `data` array that holds zero or more entities.
type DataResponse struct {
	Data any `json:"data"`
}

// ErrorsResponse is the envelope for every client-facing failure:
// the accumulated validation/lookup messages of one request.
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// TokenResponse is the login success body.
type TokenResponse struct {
	Token string `json:"token"`
}

// RespondWithJSON writes a JSON response with the given status code.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithData writes a 200 response wrapping data in the `data`
// envelope.
func RespondWithData(w http.ResponseWriter, r *http.Request, data any) {
	RespondWithJSON(w, r, http.StatusOK, DataResponse{Data: data})
}

// RespondWithErrors writes the accumulated error list under `errors`.
// Validation failures, missing rows and slug collisions all use the
// same 400 envelope; they are not distinguished by status code.
func RespondWithErrors(w http.ResponseWriter, r *http.Request, status int, errs []string) {
	slog.Debug("sending error response",
		"status_code", status,
		"errors", errs,
		"trace_id", GetTraceID(r.Context()),
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorsResponse{Errors: errs})
}

// RespondInternalError logs the unexpected error with the trace ID and
// sends a generic 500 body, leaking no internal detail to the client.
func RespondInternalError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("internal server error",
		"error", err,
		"trace_id", GetTraceID(r.Context()),
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithErrors(w, r, http.StatusInternalServerError, []string{"Internal server error."})
}
