// Package validation carries per-field validation failures from the services
// and the identity provider up to the HTTP boundary.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single failed rule.
type FieldError struct {
	Field       string `json:"field"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Errors is a structured list of field failures. Error() collapses it to one
// line for display only.
type Errors struct {
	Prefix string
	Fields []FieldError
}

func (e *Errors) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Description
	}
	msg := strings.Join(parts, ", ")
	if e.Prefix != "" {
		return e.Prefix + ": " + msg
	}
	return msg
}

// Add appends a failure.
func (e *Errors) Add(field, code, description string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Code: code, Description: description})
}

// Empty reports whether no failure was recorded.
func (e *Errors) Empty() bool { return len(e.Fields) == 0 }

// Map flattens the list into field -> code, the shape of apierror.ValidationError.
// When a field failed several rules the first one wins.
func (e *Errors) Map() map[string]string {
	m := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		if _, ok := m[f.Field]; !ok {
			m[f.Field] = f.Code
		}
	}
	return m
}

// As extracts *Errors from an error chain.
func As(err error) (*Errors, bool) {
	var verr *Errors
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

var validate = validator.New()

// Struct runs the validate tags of v. It returns nil or *Errors.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	out := &Errors{Prefix: "Error de validacion"}
	for _, fe := range ves {
		out.Add(fe.Field(), fe.Tag(), describe(fe))
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es obligatorio", fe.Field())
	case "max":
		return fmt.Sprintf("%s supera el largo maximo de %s", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("%s debe tener largo %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s debe ser al menos %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s no cumple la regla %s", fe.Field(), fe.Tag())
	}
}
