package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JBlizzard-sketch/Munuvetech/internal/models"
)

// MemStore holds all four entity collections in process memory, keyed by id.
// Content collections are read-only after seeding; submission logs only grow.
// Sorted views are materialized per call rather than maintained as indexes —
// the catalog is small and static.
type MemStore struct {
	mu sync.RWMutex

	blogPosts     map[uuid.UUID]models.BlogPost
	caseStudies   map[uuid.UUID]models.CaseStudy
	contacts      map[uuid.UUID]models.ContactSubmission
	subscriptions map[uuid.UUID]models.NewsletterSubscription

	// Seed insertion order, so listings are deterministic when timestamps tie.
	blogOrder  []uuid.UUID
	studyOrder []uuid.UUID
}

// NewMemStore creates an in-memory store seeded with the fixed content catalog.
func NewMemStore() *MemStore {
	s := &MemStore{
		blogPosts:     make(map[uuid.UUID]models.BlogPost),
		caseStudies:   make(map[uuid.UUID]models.CaseStudy),
		contacts:      make(map[uuid.UUID]models.ContactSubmission),
		subscriptions: make(map[uuid.UUID]models.NewsletterSubscription),
	}
	for _, p := range seedBlogPosts() {
		p.ID = uuid.New()
		s.blogPosts[p.ID] = p
		s.blogOrder = append(s.blogOrder, p.ID)
	}
	for _, cs := range seedCaseStudies() {
		cs.ID = uuid.New()
		s.caseStudies[cs.ID] = cs
		s.studyOrder = append(s.studyOrder, cs.ID)
	}
	return s
}

// GetAllBlogPosts returns every post ordered by publish date, newest first.
func (s *MemStore) GetAllBlogPosts(_ context.Context) ([]models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]models.BlogPost, 0, len(s.blogOrder))
	for _, id := range s.blogOrder {
		posts = append(posts, s.blogPosts[id])
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedAt.After(posts[j].PublishedAt)
	})
	return posts, nil
}

// GetBlogPostBySlug returns the post with the given slug, or nil if none
// matches. Slug comparison is a case-sensitive exact match.
func (s *MemStore) GetBlogPostBySlug(_ context.Context, slug string) (*models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.blogOrder {
		if p := s.blogPosts[id]; p.Slug == slug {
			return &p, nil
		}
	}
	return nil, nil
}

// CreateBlogPost inserts a new post with a fresh id and the current time as
// publish date. Not reachable from any HTTP route; kept for seeding and
// future admin use.
func (s *MemStore) CreateBlogPost(_ context.Context, in models.InsertBlogPost) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	post := models.BlogPost{
		ID:          uuid.New(),
		Slug:        in.Slug,
		Title:       in.Title,
		Excerpt:     in.Excerpt,
		Content:     in.Content,
		Category:    in.Category,
		Tags:        tags,
		ReadTime:    in.ReadTime,
		Author:      in.Author,
		CoverImage:  in.CoverImage,
		PublishedAt: time.Now().UTC(),
	}
	s.blogPosts[post.ID] = post
	s.blogOrder = append(s.blogOrder, post.ID)
	return &post, nil
}

// GetAllCaseStudies returns case studies ordered by completion date, newest
// first. A non-empty category other than "all" restricts the result to
// studies whose category matches case-insensitively.
func (s *MemStore) GetAllCaseStudies(_ context.Context, category string) ([]models.CaseStudy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	studies := make([]models.CaseStudy, 0, len(s.studyOrder))
	for _, id := range s.studyOrder {
		cs := s.caseStudies[id]
		if category != "" && category != CategoryAll && !strings.EqualFold(cs.Category, category) {
			continue
		}
		studies = append(studies, cs)
	}
	sort.SliceStable(studies, func(i, j int) bool {
		return studies[i].CompletedAt.After(studies[j].CompletedAt)
	})
	return studies, nil
}

// GetCaseStudyBySlug returns the case study with the given slug, or nil if
// none matches.
func (s *MemStore) GetCaseStudyBySlug(_ context.Context, slug string) (*models.CaseStudy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.studyOrder {
		if cs := s.caseStudies[id]; cs.Slug == slug {
			return &cs, nil
		}
	}
	return nil, nil
}

// CreateCaseStudy inserts a new case study with a fresh id and the current
// time as completion date.
func (s *MemStore) CreateCaseStudy(_ context.Context, in models.InsertCaseStudy) (*models.CaseStudy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	featured := in.Featured
	if featured == "" {
		featured = "false"
	}
	cs := models.CaseStudy{
		ID:          uuid.New(),
		Slug:        in.Slug,
		Title:       in.Title,
		Client:      in.Client,
		Industry:    in.Industry,
		Category:    in.Category,
		Tags:        tags,
		Description: in.Description,
		Challenge:   in.Challenge,
		Solution:    in.Solution,
		Results:     in.Results,
		Metrics:     in.Metrics,
		CoverImage:  in.CoverImage,
		Featured:    featured,
		CompletedAt: time.Now().UTC(),
	}
	s.caseStudies[cs.ID] = cs
	s.studyOrder = append(s.studyOrder, cs.ID)
	return &cs, nil
}

// SubmitContactForm records a contact form submission and returns the stored
// record. Input is validated upstream; the store only stamps identity and time.
func (s *MemStore) SubmitContactForm(_ context.Context, in models.InsertContactSubmission) (*models.ContactSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := models.ContactSubmission{
		ID:          uuid.New(),
		Name:        in.Name,
		Email:       in.Email,
		Company:     in.Company,
		Message:     in.Message,
		Service:     in.Service,
		SubmittedAt: time.Now().UTC(),
	}
	s.contacts[sub.ID] = sub
	return &sub, nil
}

// SubscribeNewsletter records a newsletter signup. Duplicate addresses are
// not rejected; each signup is an independent record.
func (s *MemStore) SubscribeNewsletter(_ context.Context, in models.InsertNewsletterSubscription) (*models.NewsletterSubscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := models.NewsletterSubscription{
		ID:           uuid.New(),
		Email:        in.Email,
		SubscribedAt: time.Now().UTC(),
	}
	s.subscriptions[sub.ID] = sub
	return &sub, nil
}

// ContactSubmissions returns a snapshot of the contact log, newest last by
// submission time. There is no HTTP route for this; it exists for the
// notifier boundary and tests.
func (s *MemStore) ContactSubmissions() []models.ContactSubmission {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ContactSubmission, 0, len(s.contacts))
	for _, sub := range s.contacts {
		out = append(out, sub)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SubmittedAt.Before(out[j].SubmittedAt)
	})
	return out
}

// NewsletterSubscriptions returns a snapshot of the subscription log.
func (s *MemStore) NewsletterSubscriptions() []models.NewsletterSubscription {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.NewsletterSubscription, 0, len(s.subscriptions))
	for _, sub := range s.subscriptions {
		out = append(out, sub)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SubscribedAt.Before(out[j].SubscribedAt)
	})
	return out
}
