package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/anilkumarravuri/portfolio-api/internal/store"
)

// FieldError is one field-level problem in an inbound request body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrValidation indicates an inbound body failed schema conformance.
type ErrValidation struct {
	Fields []FieldError
}

func (e *ErrValidation) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// newValidationError converts a validator.ValidationErrors into the
// field-level shape returned to the caller.
func newValidationError(err error) *ErrValidation {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{
				Field:   strings.ToLower(fe.Field()),
				Message: fmt.Sprintf("failed %q constraint", fe.Tag()),
			})
		}
		return &ErrValidation{Fields: fields}
	}
	return &ErrValidation{Fields: []FieldError{{Field: "(body)", Message: err.Error()}}}
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var verr *ErrValidation
	switch {
	case errors.Is(err, store.ErrPostNotFound):
		return http.StatusNotFound
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
