package cache

import (
	"context"
	"testing"
)

func TestNilResponseCacheIsNoOp(t *testing.T) {
	// Handlers hold a nil *ResponseCache when Valkey is not configured;
	// every method must be safe to call.
	var rc *ResponseCache
	ctx := context.Background()

	if _, ok := rc.Get(ctx, BlogListKey()); ok {
		t.Error("nil cache Get should always miss")
	}
	rc.Set(ctx, BlogListKey(), []byte(`[]`))
	rc.Invalidate(ctx, BlogListKey())
}

func TestCacheKeys(t *testing.T) {
	cases := []struct{ got, want string }{
		{BlogListKey(), "blog"},
		{BlogPostKey("my-post"), "blog:my-post"},
		{CaseStudyListKey("web"), "case-studies:web"},
		{CaseStudyListKey(""), "case-studies:"},
		{CaseStudyKey("study-slug"), "case-study:study-slug"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("key: got %q, want %q", tc.got, tc.want)
		}
	}

	// List keys for distinct categories must not collide with each other or
	// with detail keys.
	if CaseStudyListKey("web") == CaseStudyListKey("mobile") {
		t.Error("category keys collide")
	}
	if BlogListKey() == BlogPostKey("") {
		t.Error("list and detail keys collide")
	}
}

func TestNewResponseCacheDefaultTTL(t *testing.T) {
	rc := NewResponseCache(nil, 0)
	if rc.ttl != DefaultResponseTTL {
		t.Errorf("ttl: got %v, want %v", rc.ttl, DefaultResponseTTL)
	}
}
