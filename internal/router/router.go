// Package router sets up the HTTP routes and middleware chain for the
// Munuvetech content API.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/JBlizzard-sketch/Munuvetech/internal/handlers"
	"github.com/JBlizzard-sketch/Munuvetech/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up. allowedOrigins configures CORS for the SPA frontend.
func New(content *handlers.Content, submissions *handlers.Submissions, allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health check.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/blog", content.ListBlogPosts)
		r.Get("/blog/{slug}", content.GetBlogPost)
		r.Get("/case-studies", content.ListCaseStudies)
		r.Get("/case-studies/{slug}", content.GetCaseStudy)

		r.Post("/contact", submissions.SubmitContact)
		r.Post("/newsletter", submissions.SubscribeNewsletter)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
