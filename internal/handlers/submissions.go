package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/JBlizzard-sketch/Munuvetech/internal/models"
	"github.com/JBlizzard-sketch/Munuvetech/internal/notify"
	"github.com/JBlizzard-sketch/Munuvetech/internal/store"
)

// Submissions groups the POST handlers for the contact form and newsletter
// signup. Validation short-circuits before the store; the notifier runs
// after a successful append and its failures never reach the client.
type Submissions struct {
	store    store.Storage
	notifier notify.Notifier
}

// NewSubmissions creates a Submissions handler group.
func NewSubmissions(st store.Storage, notifier notify.Notifier) *Submissions {
	return &Submissions{store: st, notifier: notifier}
}

// SubmitContact handles POST /api/contact.
func (h *Submissions) SubmitContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in models.InsertContactSubmission
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondValidation(w, map[string]string{"body": "request body must be valid JSON"})
		return
	}

	if details := validateContact(in); len(details) > 0 {
		respondValidation(w, details)
		return
	}

	sub, err := h.store.SubmitContactForm(ctx, in)
	if err != nil {
		slog.Error("submit contact form failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to submit contact form")
		return
	}

	if err := h.notifier.ContactSubmitted(ctx, sub); err != nil {
		slog.Error("contact notification failed", "error", err, "id", sub.ID)
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"message": "Contact form submitted successfully",
		"id":      sub.ID.String(),
	})
}

// SubscribeNewsletter handles POST /api/newsletter.
func (h *Submissions) SubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in models.InsertNewsletterSubscription
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondValidation(w, map[string]string{"body": "request body must be valid JSON"})
		return
	}

	if details := validateNewsletter(in); len(details) > 0 {
		respondValidation(w, details)
		return
	}

	sub, err := h.store.SubscribeNewsletter(ctx, in)
	if err != nil {
		slog.Error("subscribe newsletter failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to subscribe to newsletter")
		return
	}

	if err := h.notifier.NewsletterSubscribed(ctx, sub); err != nil {
		slog.Error("newsletter notification failed", "error", err, "id", sub.ID)
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"message": "Successfully subscribed to newsletter",
		"id":      sub.ID.String(),
	})
}
