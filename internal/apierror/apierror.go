// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import "packingapp/internal/validation"

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors. Fields keeps the first failed
// rule per field; Errors lists every failure with its description.
type ValidationError struct {
	Detail string                  `json:"detail"`
	Fields map[string]string       `json:"fields"`
	Errors []validation.FieldError `json:"errors,omitempty"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// FromValidation renders a structured failure, keeping its display message.
func FromValidation(verr *validation.Errors) *ValidationError {
	return &ValidationError{
		Detail: verr.Error(),
		Fields: verr.Map(),
		Errors: verr.Fields,
	}
}
