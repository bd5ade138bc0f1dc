// Package handlers implements the HTTP handlers for the Munuvetech content
// API: blog posts, case studies, contact form, and newsletter signup.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// respondJSON serializes v and writes it with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		slog.Error("response marshal failed", "error", err)
		http.Error(w, `{"error":"Internal server error"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, status, body)
}

// writeJSON writes a pre-serialized JSON body.
func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

// respondError writes the uniform {"error": msg} envelope. Used for 404s and
// for 500s, where msg stays generic and the cause is logged server-side.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// respondValidation writes a 400 with per-field failure details. The details
// map is keyed by field name; "body" is used for request-level failures such
// as malformed JSON.
func respondValidation(w http.ResponseWriter, details map[string]string) {
	respondJSON(w, http.StatusBadRequest, map[string]any{
		"error":   "Validation failed",
		"details": details,
	})
}
