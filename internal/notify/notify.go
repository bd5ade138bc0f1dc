// Package notify defines the outbound notification boundary for form
// submissions. A real deployment plugs in an email or chat dispatcher; the
// default implementation writes a structured log line and nothing else.
package notify

import (
	"context"
	"log/slog"

	"github.com/JBlizzard-sketch/Munuvetech/internal/models"
)

// Notifier receives successful submissions after they are stored. Failures
// are the notifier's problem to report; they never affect the API response.
type Notifier interface {
	ContactSubmitted(ctx context.Context, sub *models.ContactSubmission) error
	NewsletterSubscribed(ctx context.Context, sub *models.NewsletterSubscription) error
}

// LogNotifier logs submissions. It stands in for the email channel a
// production deployment would wire here.
type LogNotifier struct{}

// NewLogNotifier returns a notifier that only logs.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// ContactSubmitted logs the stored contact submission.
func (n *LogNotifier) ContactSubmitted(_ context.Context, sub *models.ContactSubmission) error {
	slog.Info("contact form submission",
		"id", sub.ID,
		"name", sub.Name,
		"email", sub.Email,
		"submitted_at", sub.SubmittedAt,
	)
	return nil
}

// NewsletterSubscribed logs the stored subscription.
func (n *LogNotifier) NewsletterSubscribed(_ context.Context, sub *models.NewsletterSubscription) error {
	slog.Info("newsletter subscription",
		"id", sub.ID,
		"email", sub.Email,
		"subscribed_at", sub.SubscribedAt,
	)
	return nil
}
