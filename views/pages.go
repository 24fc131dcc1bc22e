package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// SiteConfig holds the handful of site-wide values pages need.
type SiteConfig struct {
	Name       string // dashboard title
	BackendURL string // automation backend base URL, shown in the footer
}

// ActivityEntry is the view model for one row of the recent-activity panel.
// Handlers map journal records into this so the renderer stays free of
// storage concerns.
type ActivityEntry struct {
	Action  string
	Message string
	OK      bool
	When    string
}

func writeHead(b *strings.Builder, cfg SiteConfig, title, csrfToken string) {
	b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>`)
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
	fmt.Fprintf(b, `<meta name="csrf-token" content="%s"/>`, esc(csrfToken))
	fmt.Fprintf(b, `<title>%s</title>`, esc(title))
	b.WriteString(`<link rel="stylesheet" href="/public/styles.css"/>`)
	b.WriteString(`<script src="/public/htmx.min.js" defer></script>`)
	b.WriteString(`<script src="/public/dashboard.js" defer></script>`)
	b.WriteString(`</head>`)
}

func writeFooter(b *strings.Builder, cfg SiteConfig) {
	fmt.Fprintf(b, `<footer class="footer">Backend: %s</footer>`, esc(cfg.BackendURL))
}

// Dashboard renders the full dashboard page. Both list regions are rendered
// from the snapshots passed in; flashes seed the toast stack (used when an
// action fell back to a full-page redirect).
func Dashboard(cfg SiteConfig, websites []Website, posts []Post, activity []ActivityEntry, flashes []ToastMessage, csrfToken string) templ.Component {
	return component(func(b *strings.Builder) {
		writeHead(b, cfg, cfg.Name, csrfToken)
		b.WriteString(`<body class="dashboard">`)

		fmt.Fprintf(b, `<header class="header"><h1>%s</h1></header>`, esc(cfg.Name))

		b.WriteString(`<section class="panel panel-generate"><h2>Generate Post</h2>`)
		mustRender(b, GenerateForm(false))
		b.WriteString(`</section>`)

		b.WriteString(`<section class="panel panel-websites"><div class="panel-head"><h2>Websites</h2>`)
		fmt.Fprintf(b, `<button class="btn" data-open-modal="#%s">Add Website</button></div>`, WebsiteModalID)
		fmt.Fprintf(b, `<div id="%s" hx-get="/partials/websites" hx-trigger="refresh-websites from:body">`, WebsiteListID)
		writeWebsiteList(b, websites)
		b.WriteString(`</div></section>`)

		b.WriteString(`<section class="panel panel-posts"><h2>Posts</h2>`)
		fmt.Fprintf(b, `<div id="%s" hx-get="/partials/posts" hx-trigger="refresh-posts from:body">`, PostListID)
		writePostList(b, posts, websites)
		b.WriteString(`</div></section>`)

		b.WriteString(`<section class="panel panel-activity"><h2>Recent Activity</h2>`)
		fmt.Fprintf(b, `<div id="%s">`, ActivityListID)
		writeActivityList(b, activity)
		b.WriteString(`</div></section>`)

		mustRender(b, WebsiteModal(false))
		mustRender(b, ToastStack(flashes))
		writeFooter(b, cfg)
		b.WriteString(`</body></html>`)
	})
}

// PostDetail renders the preview page for a single post.
func PostDetail(cfg SiteConfig, p Post, csrfToken string) templ.Component {
	return component(func(b *strings.Builder) {
		writeHead(b, cfg, p.Title+" - "+cfg.Name, csrfToken)
		b.WriteString(`<body class="post-detail">`)
		b.WriteString(`<a class="btn" href="/">&larr; Back to dashboard</a>`)
		b.WriteString(`<article class="post-preview">`)
		fmt.Fprintf(b, `<h1>%s</h1>`, esc(p.Title))
		if p.Published {
			b.WriteString(`<span class="status-badge status-published">Published</span>`)
			if p.PublishedURL != "" {
				fmt.Fprintf(b, ` <a href="%s" target="_blank" rel="noopener">View Live</a>`, esc(p.PublishedURL))
			}
		} else {
			b.WriteString(`<span class="status-badge status-draft">Draft</span>`)
		}
		b.WriteString(`<div class="post-meta">`)
		if p.Category != "" {
			fmt.Fprintf(b, `<span>%s</span>`, esc(p.Category))
		}
		fmt.Fprintf(b, `<span>%d words</span>`, WordCount(p.Content))
		fmt.Fprintf(b, `<span>SEO %d</span>`, DisplayScore(p.SEOScore))
		fmt.Fprintf(b, `<span>%s</span>`, esc(FormatDate(p.CreatedAt)))
		b.WriteString(`</div>`)
		if p.FocusKeyphrase != "" {
			fmt.Fprintf(b, `<p class="post-keyphrase">Focus: %s</p>`, esc(p.FocusKeyphrase))
		}
		b.WriteString(`<div class="post-content">`)
		mustRender(b, Markdown(p.Content))
		b.WriteString(`</div>`)
		b.WriteString(`</article>`)
		mustRender(b, ToastStack(nil))
		b.WriteString(`</body></html>`)
	})
}

// NotFound renders the styled 404 page.
func NotFound(cfg SiteConfig) templ.Component {
	return statusPage(cfg, "404", "Page not found")
}

// ServerError renders the styled 500 page.
func ServerError(cfg SiteConfig) templ.Component {
	return statusPage(cfg, "500", "Something went wrong")
}

func statusPage(cfg SiteConfig, code, msg string) templ.Component {
	return component(func(b *strings.Builder) {
		writeHead(b, cfg, code+" - "+cfg.Name, "")
		b.WriteString(`<body class="status-page">`)
		fmt.Fprintf(b, `<h1>%s</h1><p>%s</p>`, esc(code), esc(msg))
		b.WriteString(`<a class="btn" href="/">Back to dashboard</a>`)
		b.WriteString(`</body></html>`)
	})
}

// mustRender inlines a child component into the buffer. Writes to a
// strings.Builder cannot fail.
func mustRender(b *strings.Builder, cmp templ.Component) {
	_ = cmp.Render(context.Background(), b)
}
