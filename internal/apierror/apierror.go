// Package apierror provides standardized error response structures for the API
// and the typed errors the services return to the HTTP boundary.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import "errors"

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
	Kind   string `json:"kind,omitempty"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// Validation wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// FromError builds the envelope for a service error. Persistence failures get a
// fixed message so driver text never reaches the client.
func FromError(err error) *APIError {
	var e *Error
	if !errors.As(err, &e) {
		return &APIError{Detail: "Error interno del servidor"}
	}
	out := &APIError{Detail: e.Msg, Kind: string(e.Kind)}
	if e.Kind == KindPersistencia {
		out.Detail = e.publicMessage()
	}
	return out
}
