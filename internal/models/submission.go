package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactSubmission is a recorded contact form entry. Company and Service
// are explicitly nullable rather than empty strings, matching the published
// JSON contract. There is no workflow state — a submission is fire-and-forget.
type ContactSubmission struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Company     *string   `json:"company"`
	Message     string    `json:"message"`
	Service     *string   `json:"service"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// InsertContactSubmission carries validated contact form input.
type InsertContactSubmission struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Company *string `json:"company"`
	Message string  `json:"message"`
	Service *string `json:"service"`
}

// NewsletterSubscription is a recorded newsletter signup. The store does not
// deduplicate addresses; repeat signups produce independent records.
type NewsletterSubscription struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

// InsertNewsletterSubscription carries validated newsletter signup input.
type InsertNewsletterSubscription struct {
	Email string `json:"email"`
}
