package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JBlizzard-sketch/Munuvetech/internal/cache"
	"github.com/JBlizzard-sketch/Munuvetech/internal/store"
)

// Content groups the read handlers for blog posts and case studies. It
// checks the Valkey response cache before hitting the store; respCache may
// be nil when Valkey is not configured.
type Content struct {
	store     store.Storage
	respCache *cache.ResponseCache
}

// NewContent creates a Content handler group.
func NewContent(st store.Storage, respCache *cache.ResponseCache) *Content {
	return &Content{store: st, respCache: respCache}
}

// ListBlogPosts handles GET /api/blog: all posts, newest first.
func (h *Content) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if body, ok := h.respCache.Get(ctx, cache.BlogListKey()); ok {
		writeJSON(w, http.StatusOK, body)
		return
	}

	posts, err := h.store.GetAllBlogPosts(ctx)
	if err != nil {
		slog.Error("list blog posts failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch blog posts")
		return
	}

	body, err := json.Marshal(posts)
	if err != nil {
		slog.Error("marshal blog posts failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch blog posts")
		return
	}
	h.respCache.Set(ctx, cache.BlogListKey(), body)
	writeJSON(w, http.StatusOK, body)
}

// GetBlogPost handles GET /api/blog/{slug}: a single post or 404.
func (h *Content) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	if body, ok := h.respCache.Get(ctx, cache.BlogPostKey(slug)); ok {
		writeJSON(w, http.StatusOK, body)
		return
	}

	post, err := h.store.GetBlogPostBySlug(ctx, slug)
	if err != nil {
		slog.Error("find blog post failed", "error", err, "slug", slug)
		respondError(w, http.StatusInternalServerError, "Failed to fetch blog post")
		return
	}
	if post == nil {
		respondError(w, http.StatusNotFound, "Blog post not found")
		return
	}

	body, err := json.Marshal(post)
	if err != nil {
		slog.Error("marshal blog post failed", "error", err, "slug", slug)
		respondError(w, http.StatusInternalServerError, "Failed to fetch blog post")
		return
	}
	h.respCache.Set(ctx, cache.BlogPostKey(slug), body)
	writeJSON(w, http.StatusOK, body)
}

// ListCaseStudies handles GET /api/case-studies with an optional ?category=
// filter. "all" or an absent value returns the full set.
func (h *Content) ListCaseStudies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category := r.URL.Query().Get("category")

	if body, ok := h.respCache.Get(ctx, cache.CaseStudyListKey(category)); ok {
		writeJSON(w, http.StatusOK, body)
		return
	}

	studies, err := h.store.GetAllCaseStudies(ctx, category)
	if err != nil {
		slog.Error("list case studies failed", "error", err, "category", category)
		respondError(w, http.StatusInternalServerError, "Failed to fetch case studies")
		return
	}

	body, err := json.Marshal(studies)
	if err != nil {
		slog.Error("marshal case studies failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch case studies")
		return
	}
	h.respCache.Set(ctx, cache.CaseStudyListKey(category), body)
	writeJSON(w, http.StatusOK, body)
}

// GetCaseStudy handles GET /api/case-studies/{slug}: a single study or 404.
func (h *Content) GetCaseStudy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	if body, ok := h.respCache.Get(ctx, cache.CaseStudyKey(slug)); ok {
		writeJSON(w, http.StatusOK, body)
		return
	}

	cs, err := h.store.GetCaseStudyBySlug(ctx, slug)
	if err != nil {
		slog.Error("find case study failed", "error", err, "slug", slug)
		respondError(w, http.StatusInternalServerError, "Failed to fetch case study")
		return
	}
	if cs == nil {
		respondError(w, http.StatusNotFound, "Case study not found")
		return
	}

	body, err := json.Marshal(cs)
	if err != nil {
		slog.Error("marshal case study failed", "error", err, "slug", slug)
		respondError(w, http.StatusInternalServerError, "Failed to fetch case study")
		return
	}
	h.respCache.Set(ctx, cache.CaseStudyKey(slug), body)
	writeJSON(w, http.StatusOK, body)
}
