package models

import (
	"time"

	"github.com/google/uuid"
)

// CaseStudy is a portfolio entry describing a completed client project.
// Metrics are short pre-formatted display strings ("+127% conversion");
// nothing parses them numerically. Featured is kept as a string flag to
// match the published JSON contract.
type CaseStudy struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Client      string    `json:"client"`
	Industry    string    `json:"industry"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Description string    `json:"description"`
	Challenge   string    `json:"challenge"`
	Solution    string    `json:"solution"`
	Results     []string  `json:"results"`
	Metrics     []string  `json:"metrics"`
	CoverImage  *string   `json:"coverImage"`
	Featured    string    `json:"featured"`
	CompletedAt time.Time `json:"completedAt"`
}

// InsertCaseStudy carries the caller-supplied fields for a new case study.
type InsertCaseStudy struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Client      string   `json:"client"`
	Industry    string   `json:"industry"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	Challenge   string   `json:"challenge"`
	Solution    string   `json:"solution"`
	Results     []string `json:"results"`
	Metrics     []string `json:"metrics"`
	CoverImage  *string  `json:"coverImage"`
	Featured    string   `json:"featured"`
}
