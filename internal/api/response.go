package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/rutkit/pkg/binder"
	"github.com/dmitrymomot/rutkit/pkg/logger"
	"github.com/dmitrymomot/rutkit/pkg/registry"
	"github.com/dmitrymomot/rutkit/pkg/rut"
	"github.com/dmitrymomot/rutkit/pkg/validator"
)

// Envelope is the body of every API response.
type Envelope struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// errorToDetail maps err to a status code and an ErrorDetail. Error messages
// are never echoed for malformed or rejected RUTs since they contain the input.
func errorToDetail(err error) (int, *ErrorDetail) {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		detail := &ErrorDetail{Code: "validation_error", Message: "request validation failed", Details: map[string][]string{}}
		for _, e := range verrs {
			msg := e.Message
			if reason, ok := e.TranslationValues["reason"].(string); ok {
				msg += ": " + reason
			}
			detail.Details[e.Field] = append(detail.Details[e.Field], msg)
		}
		return http.StatusUnprocessableEntity, detail
	case errors.Is(err, rut.ErrMalformedInput):
		return http.StatusUnprocessableEntity, &ErrorDetail{Code: "malformed_rut", Message: "value is not a RUT"}
	case errors.Is(err, rut.ErrUnknownMode):
		return http.StatusBadRequest, &ErrorDetail{Code: "unknown_mode", Message: "mode must be clear, readable, hyphened or hidden"}
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return http.StatusUnsupportedMediaType, &ErrorDetail{Code: "unsupported_media_type", Message: err.Error()}
	case errors.Is(err, binder.ErrFailedToParseForm), errors.Is(err, binder.ErrFailedToParseQuery):
		return http.StatusBadRequest, &ErrorDetail{Code: "bad_request", Message: err.Error()}
	case errors.Is(err, registry.ErrRegistryUnavailable):
		return http.StatusServiceUnavailable, &ErrorDetail{Code: "registry_unavailable", Message: "registry is unavailable, retry later"}
	}
	return http.StatusInternalServerError, &ErrorDetail{Code: "internal_error", Message: http.StatusText(http.StatusInternalServerError)}
}

func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status, detail := errorToDetail(err)
	if status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			logger.Error(err),
		)
	}
	writeJSON(w, status, Envelope{Error: detail})
}
