package handlers

import (
	"net/mail"
	"strings"

	"github.com/JBlizzard-sketch/Munuvetech/internal/models"
)

// Validation runs before any store interaction. Checks are presence and
// format only; field values are stored exactly as submitted, with no
// trimming or case normalization.

// validEmail reports whether addr is a bare, syntactically valid address.
func validEmail(addr string) bool {
	parsed, err := mail.ParseAddress(addr)
	if err != nil {
		return false
	}
	// Reject display-name forms like "Jane <jane@example.com>".
	return parsed.Address == addr
}

// validateContact checks a contact form submission and returns per-field
// failure details, empty when the input is valid.
func validateContact(in models.InsertContactSubmission) map[string]string {
	details := make(map[string]string)
	if strings.TrimSpace(in.Name) == "" {
		details["name"] = "name is required"
	}
	if strings.TrimSpace(in.Email) == "" {
		details["email"] = "email is required"
	} else if !validEmail(in.Email) {
		details["email"] = "email must be a valid email address"
	}
	if strings.TrimSpace(in.Message) == "" {
		details["message"] = "message is required"
	}
	return details
}

// validateNewsletter checks a newsletter signup.
func validateNewsletter(in models.InsertNewsletterSubscription) map[string]string {
	details := make(map[string]string)
	if strings.TrimSpace(in.Email) == "" {
		details["email"] = "email is required"
	} else if !validEmail(in.Email) {
		details["email"] = "email must be a valid email address"
	}
	return details
}
