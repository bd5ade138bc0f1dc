package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/JBlizzard-sketch/Munuvetech/internal/models"
)

// PostgresStore implements Storage over PostgreSQL. It serves the same
// contract as MemStore; deployments opt in via STORAGE_DRIVER=postgres when
// submissions need to survive restarts. String sequences (tags, results,
// metrics) are stored as JSONB.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a PostgresStore with the given database connection.
// The schema must already be migrated.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Seed inserts the fixed content catalog when the blog table is empty.
// Safe to run on every startup.
func (s *PostgresStore) Seed(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blog_posts`).Scan(&count); err != nil {
		return fmt.Errorf("seed check blog posts: %w", err)
	}
	if count > 0 {
		slog.Info("content catalog already seeded, skipping")
		return nil
	}

	for _, p := range seedBlogPosts() {
		tags, err := json.Marshal(p.Tags)
		if err != nil {
			return fmt.Errorf("seed marshal tags: %w", err)
		}
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO blog_posts (id, slug, title, excerpt, content, category,
			                        tags, read_time, author, cover_image, published_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, uuid.New(), p.Slug, p.Title, p.Excerpt, p.Content, p.Category,
			tags, p.ReadTime, p.Author, p.CoverImage, p.PublishedAt)
		if err != nil {
			return fmt.Errorf("seed insert blog post %q: %w", p.Slug, err)
		}
	}

	for _, cs := range seedCaseStudies() {
		tags, results, metrics, err := marshalStudyLists(cs.Tags, cs.Results, cs.Metrics)
		if err != nil {
			return fmt.Errorf("seed marshal case study %q: %w", cs.Slug, err)
		}
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO case_studies (id, slug, title, client, industry, category, tags,
			                          description, challenge, solution, results, metrics,
			                          cover_image, featured, completed_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		`, uuid.New(), cs.Slug, cs.Title, cs.Client, cs.Industry, cs.Category, tags,
			cs.Description, cs.Challenge, cs.Solution, results, metrics,
			cs.CoverImage, cs.Featured, cs.CompletedAt)
		if err != nil {
			return fmt.Errorf("seed insert case study %q: %w", cs.Slug, err)
		}
	}

	slog.Info("content catalog seeded",
		"blog_posts", len(seedBlogPosts()),
		"case_studies", len(seedCaseStudies()),
	)
	return nil
}

const blogPostColumns = `id, slug, title, excerpt, content, category, tags,
	read_time, author, cover_image, published_at`

func scanBlogPost(row interface{ Scan(...any) error }) (*models.BlogPost, error) {
	var p models.BlogPost
	var tags []byte
	err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.Content, &p.Category,
		&tags, &p.ReadTime, &p.Author, &p.CoverImage, &p.PublishedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tags, &p.Tags); err != nil {
		return nil, fmt.Errorf("unmarshal tags: %w", err)
	}
	return &p, nil
}

// GetAllBlogPosts returns every post ordered by publish date, newest first.
func (s *PostgresStore) GetAllBlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+blogPostColumns+`
		FROM blog_posts
		ORDER BY published_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()

	posts := []models.BlogPost{}
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan blog post: %w", err)
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

// GetBlogPostBySlug retrieves a post by its slug. Returns nil if not found.
func (s *PostgresStore) GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	p, err := scanBlogPost(s.db.QueryRowContext(ctx, `
		SELECT `+blogPostColumns+`
		FROM blog_posts WHERE slug = $1
	`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find blog post by slug: %w", err)
	}
	return p, nil
}

// CreateBlogPost inserts a new post and returns it with the generated id and
// publish timestamp.
func (s *PostgresStore) CreateBlogPost(ctx context.Context, in models.InsertBlogPost) (*models.BlogPost, error) {
	if in.Tags == nil {
		in.Tags = []string{}
	}
	tags, err := json.Marshal(in.Tags)
	if err != nil {
		return nil, fmt.Errorf("marshal tags: %w", err)
	}

	post := models.BlogPost{
		ID:          uuid.New(),
		Slug:        in.Slug,
		Title:       in.Title,
		Excerpt:     in.Excerpt,
		Content:     in.Content,
		Category:    in.Category,
		Tags:        in.Tags,
		ReadTime:    in.ReadTime,
		Author:      in.Author,
		CoverImage:  in.CoverImage,
		PublishedAt: time.Now().UTC(),
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO blog_posts (id, slug, title, excerpt, content, category,
		                        tags, read_time, author, cover_image, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, post.ID, post.Slug, post.Title, post.Excerpt, post.Content, post.Category,
		tags, post.ReadTime, post.Author, post.CoverImage, post.PublishedAt)
	if err != nil {
		return nil, fmt.Errorf("create blog post: %w", err)
	}
	return &post, nil
}

const caseStudyColumns = `id, slug, title, client, industry, category, tags,
	description, challenge, solution, results, metrics, cover_image, featured, completed_at`

func scanCaseStudy(row interface{ Scan(...any) error }) (*models.CaseStudy, error) {
	var cs models.CaseStudy
	var tags, results, metrics []byte
	err := row.Scan(&cs.ID, &cs.Slug, &cs.Title, &cs.Client, &cs.Industry, &cs.Category,
		&tags, &cs.Description, &cs.Challenge, &cs.Solution, &results, &metrics,
		&cs.CoverImage, &cs.Featured, &cs.CompletedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tags, &cs.Tags); err != nil {
		return nil, fmt.Errorf("unmarshal tags: %w", err)
	}
	if err := json.Unmarshal(results, &cs.Results); err != nil {
		return nil, fmt.Errorf("unmarshal results: %w", err)
	}
	if err := json.Unmarshal(metrics, &cs.Metrics); err != nil {
		return nil, fmt.Errorf("unmarshal metrics: %w", err)
	}
	return &cs, nil
}

// GetAllCaseStudies returns case studies ordered by completion date, newest
// first, optionally filtered by category (case-insensitive, "all" disables).
func (s *PostgresStore) GetAllCaseStudies(ctx context.Context, category string) ([]models.CaseStudy, error) {
	query := `
		SELECT ` + caseStudyColumns + `
		FROM case_studies`
	var args []any
	if category != "" && category != CategoryAll {
		query += ` WHERE lower(category) = lower($1)`
		args = append(args, category)
	}
	query += ` ORDER BY completed_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list case studies: %w", err)
	}
	defer rows.Close()

	studies := []models.CaseStudy{}
	for rows.Next() {
		cs, err := scanCaseStudy(rows)
		if err != nil {
			return nil, fmt.Errorf("scan case study: %w", err)
		}
		studies = append(studies, *cs)
	}
	return studies, rows.Err()
}

// GetCaseStudyBySlug retrieves a case study by its slug. Returns nil if not found.
func (s *PostgresStore) GetCaseStudyBySlug(ctx context.Context, slug string) (*models.CaseStudy, error) {
	cs, err := scanCaseStudy(s.db.QueryRowContext(ctx, `
		SELECT `+caseStudyColumns+`
		FROM case_studies WHERE slug = $1
	`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find case study by slug: %w", err)
	}
	return cs, nil
}

// CreateCaseStudy inserts a new case study and returns it with the generated
// id and completion timestamp.
func (s *PostgresStore) CreateCaseStudy(ctx context.Context, in models.InsertCaseStudy) (*models.CaseStudy, error) {
	if in.Tags == nil {
		in.Tags = []string{}
	}
	if in.Featured == "" {
		in.Featured = "false"
	}
	tags, results, metrics, err := marshalStudyLists(in.Tags, in.Results, in.Metrics)
	if err != nil {
		return nil, err
	}

	cs := models.CaseStudy{
		ID:          uuid.New(),
		Slug:        in.Slug,
		Title:       in.Title,
		Client:      in.Client,
		Industry:    in.Industry,
		Category:    in.Category,
		Tags:        in.Tags,
		Description: in.Description,
		Challenge:   in.Challenge,
		Solution:    in.Solution,
		Results:     in.Results,
		Metrics:     in.Metrics,
		CoverImage:  in.CoverImage,
		Featured:    in.Featured,
		CompletedAt: time.Now().UTC(),
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO case_studies (id, slug, title, client, industry, category, tags,
		                          description, challenge, solution, results, metrics,
		                          cover_image, featured, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`, cs.ID, cs.Slug, cs.Title, cs.Client, cs.Industry, cs.Category, tags,
		cs.Description, cs.Challenge, cs.Solution, results, metrics,
		cs.CoverImage, cs.Featured, cs.CompletedAt)
	if err != nil {
		return nil, fmt.Errorf("create case study: %w", err)
	}
	return &cs, nil
}

// SubmitContactForm records a contact form submission.
func (s *PostgresStore) SubmitContactForm(ctx context.Context, in models.InsertContactSubmission) (*models.ContactSubmission, error) {
	sub := models.ContactSubmission{
		ID:          uuid.New(),
		Name:        in.Name,
		Email:       in.Email,
		Company:     in.Company,
		Message:     in.Message,
		Service:     in.Service,
		SubmittedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_submissions (id, name, email, company, message, service, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, sub.ID, sub.Name, sub.Email, sub.Company, sub.Message, sub.Service, sub.SubmittedAt)
	if err != nil {
		return nil, fmt.Errorf("submit contact form: %w", err)
	}
	return &sub, nil
}

// SubscribeNewsletter records a newsletter signup. No duplicate check, to
// match the in-memory store.
func (s *PostgresStore) SubscribeNewsletter(ctx context.Context, in models.InsertNewsletterSubscription) (*models.NewsletterSubscription, error) {
	sub := models.NewsletterSubscription{
		ID:           uuid.New(),
		Email:        in.Email,
		SubscribedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO newsletter_subscriptions (id, email, subscribed_at)
		VALUES ($1, $2, $3)
	`, sub.ID, sub.Email, sub.SubscribedAt)
	if err != nil {
		return nil, fmt.Errorf("subscribe newsletter: %w", err)
	}
	return &sub, nil
}

func marshalStudyLists(tags, results, metrics []string) ([]byte, []byte, []byte, error) {
	if tags == nil {
		tags = []string{}
	}
	if results == nil {
		results = []string{}
	}
	if metrics == nil {
		metrics = []string{}
	}
	t, err := json.Marshal(tags)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("marshal tags: %w", err)
	}
	r, err := json.Marshal(results)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("marshal results: %w", err)
	}
	m, err := json.Marshal(metrics)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("marshal metrics: %w", err)
	}
	return t, r, m, nil
}
