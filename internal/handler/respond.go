// Package handler holds the shared JSON response plumbing used by every
// HTTP handler package.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/agromarket-cm/agromarket/internal/domain"
	"github.com/agromarket-cm/agromarket/internal/middleware"
)

// RespondJSON writes v as a JSON response with the given status.
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// ErrorBody is the JSON envelope for every error response.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the machine-readable code, the user-facing message,
// and per-field messages for validation failures.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// RespondError maps err onto an HTTP status and writes the JSON error
// envelope. Validation errors carry their field map; internal errors are
// logged with detail but answered with a generic message.
func RespondError(w http.ResponseWriter, r *http.Request, err error) {
	if fields := domain.GetValidationFields(err); fields != nil {
		RespondJSON(w, http.StatusBadRequest, ErrorBody{Error: ErrorDetail{
			Code:    domain.EINVALID,
			Message: "Validation failed",
			Fields:  fields,
		}})
		return
	}

	code := domain.ErrorCode(err)
	status := statusForCode(code)

	logger := middleware.GetLogger(r.Context())
	attrs := []any{
		slog.String("error", err.Error()),
		slog.String("code", code),
		slog.Int("status", status),
	}
	if op := domain.ErrorOp(err); op != "" {
		attrs = append(attrs, slog.String("op", op))
	}
	if status >= 500 {
		logger.Error("request failed", attrs...)
	} else {
		logger.Info("request rejected", attrs...)
	}

	RespondJSON(w, status, ErrorBody{Error: ErrorDetail{
		Code:    code,
		Message: domain.ErrorMessage(err),
	}})
}

// statusForCode maps domain error codes to HTTP status codes.
func statusForCode(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest
	case domain.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case domain.EFORBIDDEN:
		return http.StatusForbidden
	case domain.ENOTFOUND:
		return http.StatusNotFound
	case domain.ECONFLICT:
		return http.StatusConflict
	case domain.ENOTIMPL:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// DecodeJSON parses the request body into dst, rejecting unknown fields so
// client typos surface as errors instead of silent defaults.
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.Invalid("", "Invalid JSON request body")
	}
	return nil
}
