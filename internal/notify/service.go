// Package notify sends studio-facing notifications about new enquiries.
package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/laxportraits/studio-leads/internal/leads"
	"github.com/laxportraits/studio-leads/pkg/logging"
)

// Service emails the studio when a new lead arrives. It implements
// leads.Notifier; failures never affect the visitor-facing response.
type Service struct {
	email      EmailSender
	recipients []string
	logger     *logging.Logger
}

// NewService creates a notification service delivering to the given
// recipients.
func NewService(email EmailSender, recipients []string, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		email:      email,
		recipients: recipients,
		logger:     logger,
	}
}

// NotifyNewLead emails each recipient a summary of the enquiry.
func (s *Service) NotifyNewLead(ctx context.Context, rec leads.Record) error {
	if s.email == nil || len(s.recipients) == 0 {
		s.logger.Debug("notify: email not configured, skipping new lead notification")
		return nil
	}

	subject := fmt.Sprintf("New enquiry - %s", rec.Name)
	body := buildLeadBody(rec)

	var errs []error
	for _, recipient := range s.recipients {
		msg := EmailMessage{
			To:      recipient,
			Subject: subject,
			Body:    body,
		}
		if err := s.email.Send(ctx, msg); err != nil {
			s.logger.Error("notify: failed to send new lead email", "error", err, "to", recipient)
			errs = append(errs, err)
			continue
		}
		s.logger.Info("notify: new lead email sent", "to", recipient)
	}

	if len(errs) > 0 {
		return fmt.Errorf("notify: %d notification(s) failed", len(errs))
	}
	return nil
}

func buildLeadBody(rec leads.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "A new enquiry has come in.\n\n")
	fmt.Fprintf(&b, "Name: %s\n", rec.Name)
	fmt.Fprintf(&b, "Email: %s\n", rec.Email)
	if rec.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", rec.Phone)
	}
	fmt.Fprintf(&b, "Service: %s\n", rec.Service)
	fmt.Fprintf(&b, "Location: %s\n", rec.Location)
	if rec.EventDate != "" {
		fmt.Fprintf(&b, "Event date: %s\n", rec.EventDate)
	}
	if rec.Budget != "" {
		fmt.Fprintf(&b, "Budget: %s\n", rec.Budget)
	}
	if rec.HearAbout != "" {
		fmt.Fprintf(&b, "Heard about us: %s\n", rec.HearAbout)
	}
	fmt.Fprintf(&b, "Preferred contact: %s\n", rec.ContactPreference)
	fmt.Fprintf(&b, "Newsletter: %s\n", rec.Newsletter)
	fmt.Fprintf(&b, "Received: %s\n", rec.Timestamp)
	if rec.PageURL != "" {
		fmt.Fprintf(&b, "Page: %s\n", rec.PageURL)
	}
	fmt.Fprintf(&b, "\nMessage:\n%s\n", rec.Message)
	return b.String()
}

var _ leads.Notifier = (*Service)(nil)
