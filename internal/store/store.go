// Package store provides the storage layer behind the content API. The
// default implementation is an in-memory catalog seeded at startup; a
// Postgres-backed implementation sits behind the same interface for
// deployments that want durable submissions.
package store

import (
	"context"

	"github.com/JBlizzard-sketch/Munuvetech/internal/models"
)

// CategoryAll is the filter sentinel that disables case-study category
// filtering, as sent by the frontend's "All" tab.
const CategoryAll = "all"

// Storage is the contract shared by the in-memory and Postgres stores.
// Lookup methods return (nil, nil) when no record matches.
type Storage interface {
	// Blog posts, newest first.
	GetAllBlogPosts(ctx context.Context) ([]models.BlogPost, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	CreateBlogPost(ctx context.Context, in models.InsertBlogPost) (*models.BlogPost, error)

	// Case studies, newest first. An empty or "all" category returns the
	// full set; any other value filters case-insensitively.
	GetAllCaseStudies(ctx context.Context, category string) ([]models.CaseStudy, error)
	GetCaseStudyBySlug(ctx context.Context, slug string) (*models.CaseStudy, error)
	CreateCaseStudy(ctx context.Context, in models.InsertCaseStudy) (*models.CaseStudy, error)

	// Submissions are append-only; there is no read-back endpoint.
	SubmitContactForm(ctx context.Context, in models.InsertContactSubmission) (*models.ContactSubmission, error)
	SubscribeNewsletter(ctx context.Context, in models.InsertNewsletterSubscription) (*models.NewsletterSubscription, error)
}
