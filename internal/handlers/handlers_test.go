// handlers_test.go exercises the API surface end to end over httptest with
// the in-memory store. No external services are required.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/JBlizzard-sketch/Munuvetech/internal/models"
	"github.com/JBlizzard-sketch/Munuvetech/internal/store"
)

// captureNotifier records notifications for assertions.
type captureNotifier struct {
	contacts    []*models.ContactSubmission
	newsletters []*models.NewsletterSubscription
}

func (n *captureNotifier) ContactSubmitted(_ context.Context, sub *models.ContactSubmission) error {
	n.contacts = append(n.contacts, sub)
	return nil
}

func (n *captureNotifier) NewsletterSubscribed(_ context.Context, sub *models.NewsletterSubscription) error {
	n.newsletters = append(n.newsletters, sub)
	return nil
}

// testRouter builds a router over a fresh seeded MemStore, without the
// response cache (nil cache is the no-op path).
func testRouter(t *testing.T) (chi.Router, *store.MemStore, *captureNotifier) {
	t.Helper()

	st := store.NewMemStore()
	notifier := &captureNotifier{}

	r := chi.NewRouter()
	content := NewContent(st, nil)
	submissions := NewSubmissions(st, notifier)
	r.Route("/api", func(r chi.Router) {
		r.Get("/blog", content.ListBlogPosts)
		r.Get("/blog/{slug}", content.GetBlogPost)
		r.Get("/case-studies", content.ListCaseStudies)
		r.Get("/case-studies/{slug}", content.GetCaseStudy)
		r.Post("/contact", submissions.SubmitContact)
		r.Post("/newsletter", submissions.SubscribeNewsletter)
	})
	return r, st, notifier
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListBlogPosts(t *testing.T) {
	r, _, _ := testRouter(t)

	w := doJSON(t, r, "GET", "/api/blog", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content-type: got %q", ct)
	}

	var posts []models.BlogPost
	if err := json.NewDecoder(w.Body).Decode(&posts); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(posts) != 10 {
		t.Errorf("posts: got %d, want 10", len(posts))
	}
	for i := 1; i < len(posts); i++ {
		if posts[i-1].PublishedAt.Before(posts[i].PublishedAt) {
			t.Errorf("posts out of order at %d", i)
		}
	}
}

func TestGetBlogPost(t *testing.T) {
	r, _, _ := testRouter(t)

	t.Run("existing slug", func(t *testing.T) {
		w := doJSON(t, r, "GET", "/api/blog/automation-roi-guide", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status: got %d, want 200", w.Code)
		}
		var post models.BlogPost
		if err := json.NewDecoder(w.Body).Decode(&post); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if post.Slug != "automation-roi-guide" {
			t.Errorf("slug: got %q", post.Slug)
		}
		if post.Author != "Sarah Chen" {
			t.Errorf("author: got %q", post.Author)
		}
	})

	t.Run("unknown slug", func(t *testing.T) {
		w := doJSON(t, r, "GET", "/api/blog/no-such-post", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("status: got %d, want 404", w.Code)
		}
		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["error"] != "Blog post not found" {
			t.Errorf("error: got %q", body["error"])
		}
	})
}

func TestListCaseStudies(t *testing.T) {
	r, _, _ := testRouter(t)

	countFor := func(t *testing.T, path string) int {
		t.Helper()
		w := doJSON(t, r, "GET", path, "")
		if w.Code != http.StatusOK {
			t.Fatalf("%s status: got %d, want 200", path, w.Code)
		}
		var studies []models.CaseStudy
		if err := json.NewDecoder(w.Body).Decode(&studies); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		return len(studies)
	}

	total := countFor(t, "/api/case-studies")
	if total != 7 {
		t.Errorf("unfiltered: got %d, want 7", total)
	}
	if got := countFor(t, "/api/case-studies?category=all"); got != total {
		t.Errorf("category=all: got %d, want %d", got, total)
	}
	if got := countFor(t, "/api/case-studies?category=web"); got != 4 {
		t.Errorf("category=web: got %d, want 4", got)
	}
	if got := countFor(t, "/api/case-studies?category=Analytics"); got != 1 {
		t.Errorf("category=Analytics: got %d, want 1", got)
	}
	if got := countFor(t, "/api/case-studies?category=nonexistent"); got != 0 {
		t.Errorf("unknown category: got %d, want 0", got)
	}
}

func TestGetCaseStudy(t *testing.T) {
	r, _, _ := testRouter(t)

	t.Run("existing slug", func(t *testing.T) {
		w := doJSON(t, r, "GET", "/api/case-studies/ecommerce-platform-modernization", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status: got %d, want 200", w.Code)
		}
		var cs models.CaseStudy
		if err := json.NewDecoder(w.Body).Decode(&cs); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if cs.Slug != "ecommerce-platform-modernization" {
			t.Errorf("slug: got %q", cs.Slug)
		}
		if len(cs.Metrics) == 0 || cs.Metrics[0] != "+127% conversion" {
			t.Errorf("metrics: got %v", cs.Metrics)
		}
	})

	t.Run("unknown slug", func(t *testing.T) {
		w := doJSON(t, r, "GET", "/api/case-studies/unknown-slug", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("status: got %d, want 404", w.Code)
		}
		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["error"] != "Case study not found" {
			t.Errorf("error: got %q", body["error"])
		}
	})
}

func TestSubmitContact(t *testing.T) {
	t.Run("valid submission", func(t *testing.T) {
		r, st, notifier := testRouter(t)
		before := time.Now().UTC()

		w := doJSON(t, r, "POST", "/api/contact",
			`{"name":"Jane Doe","email":"jane@example.com","message":"Interested in services"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("status: got %d, want 201; body %s", w.Code, w.Body.String())
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["id"] == "" {
			t.Error("expected non-empty id")
		}
		if body["message"] != "Contact form submitted successfully" {
			t.Errorf("message: got %q", body["message"])
		}

		log := st.ContactSubmissions()
		if len(log) != 1 {
			t.Fatalf("submission log: got %d records, want 1", len(log))
		}
		if log[0].SubmittedAt.Before(before) {
			t.Errorf("submitted at %v predates request", log[0].SubmittedAt)
		}
		if log[0].Company != nil || log[0].Service != nil {
			t.Error("optional fields should stay null when absent")
		}
		if len(notifier.contacts) != 1 {
			t.Errorf("notifier calls: got %d, want 1", len(notifier.contacts))
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		r, st, _ := testRouter(t)

		w := doJSON(t, r, "POST", "/api/contact",
			`{"name":"A","email":"not-an-email","message":"hi"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status: got %d, want 400", w.Code)
		}

		var body struct {
			Error   string            `json:"error"`
			Details map[string]string `json:"details"`
		}
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Error != "Validation failed" {
			t.Errorf("error: got %q", body.Error)
		}
		if body.Details["email"] == "" {
			t.Errorf("expected email detail, got %v", body.Details)
		}
		if len(st.ContactSubmissions()) != 0 {
			t.Error("validation failure must not reach the store")
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		r, _, _ := testRouter(t)

		w := doJSON(t, r, "POST", "/api/contact", `{"company":"Acme"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status: got %d, want 400", w.Code)
		}
		var body struct {
			Details map[string]string `json:"details"`
		}
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		for _, field := range []string{"name", "email", "message"} {
			if body.Details[field] == "" {
				t.Errorf("expected %s detail, got %v", field, body.Details)
			}
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		r, _, _ := testRouter(t)

		w := doJSON(t, r, "POST", "/api/contact", `{"name":`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status: got %d, want 400", w.Code)
		}
	})
}

func TestSubscribeNewsletter(t *testing.T) {
	t.Run("valid subscription", func(t *testing.T) {
		r, st, notifier := testRouter(t)

		email := "Reader.Weekly@Example.COM"
		w := doJSON(t, r, "POST", "/api/newsletter", `{"email":"`+email+`"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("status: got %d, want 201; body %s", w.Code, w.Body.String())
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["message"] != "Successfully subscribed to newsletter" {
			t.Errorf("message: got %q", body["message"])
		}
		if body["id"] == "" {
			t.Error("expected non-empty id")
		}

		// Stored email matches the submitted value byte-for-byte.
		log := st.NewsletterSubscriptions()
		if len(log) != 1 {
			t.Fatalf("subscription log: got %d records, want 1", len(log))
		}
		if log[0].Email != email {
			t.Errorf("stored email: got %q, want %q", log[0].Email, email)
		}
		if len(notifier.newsletters) != 1 {
			t.Errorf("notifier calls: got %d, want 1", len(notifier.newsletters))
		}
	})

	t.Run("missing email", func(t *testing.T) {
		r, _, _ := testRouter(t)

		w := doJSON(t, r, "POST", "/api/newsletter", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status: got %d, want 400", w.Code)
		}
		var body struct {
			Details map[string]string `json:"details"`
		}
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Details["email"] == "" {
			t.Errorf("expected email detail, got %v", body.Details)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		r, st, _ := testRouter(t)

		w := doJSON(t, r, "POST", "/api/newsletter", `{"email":"not valid"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status: got %d, want 400", w.Code)
		}
		if len(st.NewsletterSubscriptions()) != 0 {
			t.Error("validation failure must not reach the store")
		}
	})
}
