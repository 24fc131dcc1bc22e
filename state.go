package blogpilot

import (
	"context"
	"sync"

	"github.com/eringen/blogpilot/backend"
	"github.com/eringen/blogpilot/views"
)

// State holds the dashboard's in-memory snapshots of the backend's websites
// and posts. Each collection is only ever replaced wholesale after a
// successful fetch; a failed refresh leaves the previous snapshot in place,
// so readers always see a consistent (possibly stale) view.
type State struct {
	mu       sync.RWMutex
	websites []views.Website
	posts    []views.Post
	backend  *backend.Client
}

// NewState creates a State backed by the given client. Both snapshots start
// empty until the first refresh.
func NewState(client *backend.Client) *State {
	return &State{backend: client}
}

// Websites returns the current website snapshot.
func (s *State) Websites() []views.Website {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.websites
}

// Posts returns the current post snapshot.
func (s *State) Posts() []views.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.posts
}

// Snapshot returns both collections from the same locked read, for renders
// that need a mutually consistent pair.
func (s *State) Snapshot() ([]views.Website, []views.Post) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.websites, s.posts
}

// RefreshWebsites reloads the website snapshot from the backend.
func (s *State) RefreshWebsites(ctx context.Context) error {
	websites, err := s.backend.ListWebsites(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.websites = websites
	s.mu.Unlock()
	return nil
}

// RefreshPosts reloads the post snapshot from the backend.
func (s *State) RefreshPosts(ctx context.Context) error {
	posts, err := s.backend.ListPosts(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.posts = posts
	s.mu.Unlock()
	return nil
}
