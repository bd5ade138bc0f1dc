// Package models defines the content and submission entities served by the
// Munuvetech API: blog posts, case studies, contact form submissions, and
// newsletter subscriptions.
package models

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost is a published article on the agency blog. A post is addressed
// publicly by its slug; the UUID is the storage identity.
type BlogPost struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	ReadTime    int       `json:"readTime"`
	Author      string    `json:"author"`
	CoverImage  *string   `json:"coverImage"`
	PublishedAt time.Time `json:"publishedAt"`
}

// InsertBlogPost carries the caller-supplied fields for a new blog post.
// ID and PublishedAt are assigned by the store at creation time.
type InsertBlogPost struct {
	Slug       string   `json:"slug"`
	Title      string   `json:"title"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	ReadTime   int      `json:"readTime"`
	Author     string   `json:"author"`
	CoverImage *string  `json:"coverImage"`
}
