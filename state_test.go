package blogpilot

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/eringen/blogpilot/backend"
)

func TestRefreshSwapsSnapshot(t *testing.T) {
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			http.Error(w, "down", http.StatusBadGateway)
			return
		}
		switch r.URL.Path {
		case "/api/websites":
			io.WriteString(w, `{"websites": [{"id": 1, "name": "Eco Blog"}]}`)
		case "/api/posts":
			io.WriteString(w, `{"posts": [{"id": 7, "title": "Draft"}]}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	s := NewState(backend.New(srv.URL))
	ctx := context.Background()

	if got := s.Websites(); len(got) != 0 {
		t.Fatalf("initial websites = %d, want 0", len(got))
	}

	if err := s.RefreshWebsites(ctx); err != nil {
		t.Fatalf("RefreshWebsites: %v", err)
	}
	if err := s.RefreshPosts(ctx); err != nil {
		t.Fatalf("RefreshPosts: %v", err)
	}

	websites, posts := s.Snapshot()
	if len(websites) != 1 || websites[0].Name != "Eco Blog" {
		t.Errorf("websites = %+v", websites)
	}
	if len(posts) != 1 || posts[0].ID != 7 {
		t.Errorf("posts = %+v", posts)
	}

	// A failed refresh must leave the previous snapshot untouched.
	fail.Store(true)
	if err := s.RefreshWebsites(ctx); err == nil {
		t.Fatal("expected refresh error while backend is down")
	}
	if err := s.RefreshPosts(ctx); err == nil {
		t.Fatal("expected refresh error while backend is down")
	}
	websites, posts = s.Snapshot()
	if len(websites) != 1 || len(posts) != 1 {
		t.Errorf("stale snapshot lost after failed refresh: %d websites, %d posts", len(websites), len(posts))
	}
}
