package server

import (
	"context"
	"log"

	"github.com/anilkumarravuri/portfolio-api/internal/types"
)

// Notifier records a contact-form submission. The production wiring is
// log-only; a real mail integration (SendGrid, SMTP) would implement this
// interface as an external collaborator.
type Notifier interface {
	Notify(ctx context.Context, msg types.ContactMessage) error
}

// LogNotifier writes the submission to the process log. The log facility is
// append-only, so concurrent submissions need no extra coordination.
type LogNotifier struct {
	Recipient string
}

// Notify logs the submission for the configured recipient.
func (n *LogNotifier) Notify(_ context.Context, msg types.ContactMessage) error {
	log.Printf("Contact for %s from %s <%s>: %s", n.Recipient, msg.Name, msg.Email, msg.Subject)
	return nil
}
