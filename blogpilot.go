// Package blogpilot is a server-rendered dashboard for an AI blog automation
// backend. It lists the backend's websites and posts, triggers article
// generation, publishes posts to a chosen CMS target, and deletes either.
// Every action is proxied to the backend's REST API and followed by a full
// snapshot reload, never a local state edit.
package blogpilot

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/eringen/blogpilot/activity"
	"github.com/eringen/blogpilot/backend"
	"github.com/eringen/blogpilot/views"
	"github.com/labstack/echo/v4"
)

// App wires together the Echo server, the backend client, the in-memory
// state snapshots, and the local activity journal.
type App struct {
	Config   Config
	Echo     *echo.Echo
	Backend  *backend.Client
	State    *State
	Activity *activity.Store

	siteCfg      views.SiteConfig
	generateGate Gate
	staticDir    string
	httpClient   *http.Client
	stopCleanup  func()
}

// New creates a blogpilot App with the given configuration.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// setup initializes everything short of listening: backend client, state,
// activity store, middleware, and routes. Split from Start so tests can
// drive the router directly.
func (a *App) setup() error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("blogpilot: SessionSecret is required")
	}

	clientOpts := []backend.Option{backend.WithTimeout(a.Config.RequestTimeout)}
	if a.httpClient != nil {
		clientOpts = append(clientOpts, backend.WithHTTPClient(a.httpClient))
	}
	a.Backend = backend.New(a.Config.BackendURL, clientOpts...)
	a.State = NewState(a.Backend)

	store, err := activity.NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("blogpilot: init activity store: %w", err)
	}
	a.Activity = store
	a.stopCleanup = store.StartCleanupScheduler(a.Config.ActivityRetention, 24*time.Hour)

	a.siteCfg = views.SiteConfig{
		Name:       a.Config.Name,
		BackendURL: a.Config.BackendURL,
	}

	a.setupMiddleware()
	a.setupRoutes()
	return nil
}

// Start initializes the app and serves until the listener stops.
func (a *App) Start() error {
	if err := a.setup(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Shipped assets are served from the embedded set under /public/, with
	// the user's static dir as the fallthrough for everything else and for
	// any shipped asset missing from a source build.
	for _, name := range registerEmbeddedAssets(e) {
		if _, err := os.Stat(filepath.Join(a.staticDir, name)); err != nil {
			e.Logger.Warnf("asset %s is not embedded and not in %s; the dashboard cannot work without it", name, a.staticDir)
		}
	}
	e.Static("/public", a.staticDir)
	e.GET("/robots.txt", handleRobots)

	e.GET("/", a.handleDashboard)
	e.GET("/posts/:id", a.handlePostDetail)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/thumbs", a.handleThumb)

	// htmx list partials
	e.GET("/partials/websites", a.handleWebsitesPartial)
	e.GET("/partials/posts", a.handlePostsPartial)
	e.GET("/partials/activity", a.handleActivityPartial)

	// Actions. Each proxies the backend, then reloads the affected snapshots.
	e.POST("/generate", a.handleGenerate)
	e.POST("/publish", a.handlePublish)
	e.POST("/websites", a.handleCreateWebsite)
	e.DELETE("/websites/:id", a.handleDeleteWebsite)
	e.DELETE("/posts/:id", a.handleDeletePost)
}

// Close cleans up resources. Call when the app is shutting down.
func (a *App) Close() error {
	if a.stopCleanup != nil {
		a.stopCleanup()
	}
	if a.Activity != nil {
		return a.Activity.Close()
	}
	return nil
}

func handleRobots(c echo.Context) error {
	return c.String(http.StatusOK, "User-agent: *\nDisallow: /\n")
}
