package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/anilkumarravuri/portfolio-api/internal/types"
	"github.com/anilkumarravuri/portfolio-api/schemas"
)

// handleContact validates a contact-form submission, records it through the
// notifier, and returns a fixed acknowledgment. The message is never stored;
// the only side effect is the notifier write.
func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var msg types.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		verr := &ErrValidation{Fields: []FieldError{{Field: "(body)", Message: "invalid JSON"}}}
		s.detailResponse(w, HTTPStatus(verr), verr.Fields)
		return
	}

	if err := msg.Validate(); err != nil {
		verr := newValidationError(err)
		s.detailResponse(w, HTTPStatus(verr), verr.Fields)
		return
	}

	if err := s.notifier.Notify(r.Context(), msg); err != nil {
		log.Printf("Contact form error: %v", err)
		s.detailResponse(w, http.StatusInternalServerError, "Failed to send message. Please try again.")
		return
	}

	s.jsonResponse(w, http.StatusOK, schemas.ContactResponse, types.ContactResponse{
		Success: true,
		Message: fmt.Sprintf("Thanks %s! Your message has been received. I'll get back to you soon.", msg.Name),
	})
}
