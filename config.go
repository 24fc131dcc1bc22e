package blogpilot

import (
	"log"
	"net/http"
	"os"
	"time"
)

// Config holds all configuration for a blogpilot dashboard.
type Config struct {
	Name       string // Dashboard title (default "Blogpilot")
	Addr       string // Listen address (default ":4000")
	BackendURL string // Automation backend base URL (default "http://localhost:8000")

	DatabasePath string // Activity log SQLite path (default "data/dashboard.db")

	SessionSecret string // Required: session encryption secret (flash toasts)
	CookieSecure  bool   // Set true for HTTPS

	RequestTimeout    time.Duration // Per-backend-call timeout (default 30s)
	ActivityRetention int           // Days of activity history to keep (default 90)
}

func (c *Config) setDefaults() {
	if c.Name == "" {
		c.Name = "Blogpilot"
	}
	if c.Addr == "" {
		c.Addr = ":4000"
	}
	if c.BackendURL == "" {
		c.BackendURL = "http://localhost:8000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/dashboard.db"
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = 30 * time.Second
	}
	if c.ActivityRetention == 0 {
		c.ActivityRetention = 90
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithHTTPClient sets the http.Client used for backend calls and thumbnail
// fetches. Mainly a test seam.
func WithHTTPClient(h *http.Client) Option {
	return func(a *App) {
		a.httpClient = h
	}
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("blogpilot: required environment variable %s is not set", key)
	}
	return v
}
