package types

import (
	"github.com/go-playground/validator/v10"
)

// ContactMessage is an inbound contact-form submission. It exists only for
// the duration of one request and is never persisted. Email is validated as
// a required string only; RFC address syntax is intentionally not enforced.
type ContactMessage struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// ContactResponse is the acknowledgment returned for a contact submission.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Validate validates the ContactMessage using the validator.
func (m *ContactMessage) Validate() error {
	validate := validator.New()
	return validate.Struct(m)
}
