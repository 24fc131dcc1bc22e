package blogpilot

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"
)

// EmbeddedAssets contains static assets shipped with the dashboard:
// htmx.min.js, dashboard.js, styles.css. htmx is vendored into embedded/ via
// go generate before release builds.
//
//go:generate curl -fsSL https://unpkg.com/htmx.org@1.9.12/dist/htmx.min.js -o embedded/htmx.min.js
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

// shippedAssets are the files the dashboard pages load from /public/ and
// cannot function without.
var shippedAssets = []string{"htmx.min.js", "dashboard.js", "styles.css"}

// registerEmbeddedAssets serves the shipped assets under /public/ ahead of
// the static-dir fallthrough. Any shipped asset absent from the embedded set
// is returned so the caller can verify the static dir covers it instead.
func registerEmbeddedAssets(e *echo.Echo) []string {
	sub, _ := fs.Sub(EmbeddedAssets, "embedded")
	handler := echo.WrapHandler(http.StripPrefix("/public/", http.FileServer(http.FS(sub))))

	var missing []string
	for _, name := range shippedAssets {
		if _, err := fs.Stat(sub, name); err != nil {
			missing = append(missing, name)
			continue
		}
		e.GET("/public/"+name, handler)
	}
	return missing
}
