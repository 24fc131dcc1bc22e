package views

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/a-h/templ"
)

const metaDescriptionLimit = 150

// PostList renders the contents of the posts region. Unpublished posts get a
// publish-target select populated from the websites argument, which is why
// the post renderer depends on the website snapshot as well.
func PostList(posts []Post, websites []Website) templ.Component {
	return component(func(b *strings.Builder) {
		writePostList(b, posts, websites)
	})
}

// PostListOOB renders the posts region as an htmx out-of-band swap.
func PostListOOB(posts []Post, websites []Website) templ.Component {
	return component(func(b *strings.Builder) {
		fmt.Fprintf(b, `<div id="%s" hx-swap-oob="innerHTML">`, PostListID)
		writePostList(b, posts, websites)
		b.WriteString(`</div>`)
	})
}

func writePostList(b *strings.Builder, posts []Post, websites []Website) {
	if len(posts) == 0 {
		b.WriteString(`<p class="empty-state">No posts yet. Generate your first article above.</p>`)
		return
	}
	for _, p := range posts {
		writePostCard(b, p, websites)
	}
}

func writePostCard(b *strings.Builder, p Post, websites []Website) {
	fmt.Fprintf(b, `<div class="post-card" id="%s">`, PostCardID(p.ID))

	// Thumbnail goes through the /thumbs proxy, which also serves the
	// placeholder when the post has no image or the source fails to load.
	thumbSrc := "/thumbs"
	if p.ImageURL != "" {
		thumbSrc = "/thumbs?src=" + url.QueryEscape(p.ImageURL)
	}
	fmt.Fprintf(b, `<div class="post-thumb"><img src="%s" alt="%s" loading="lazy"/></div>`, esc(thumbSrc), esc(p.Title))

	b.WriteString(`<div class="post-body">`)
	fmt.Fprintf(b, `<h3 class="post-title"><a href="/posts/%d">%s</a></h3>`, p.ID, esc(p.Title))
	if p.Published {
		b.WriteString(`<span class="status-badge status-published">Published</span>`)
	} else {
		b.WriteString(`<span class="status-badge status-draft">Draft</span>`)
	}
	if p.FocusKeyphrase != "" {
		fmt.Fprintf(b, `<p class="post-keyphrase">Focus: %s</p>`, esc(p.FocusKeyphrase))
	}
	if p.MetaDescription != "" {
		fmt.Fprintf(b, `<p class="post-description">%s</p>`, esc(Truncate(p.MetaDescription, metaDescriptionLimit)))
	}

	b.WriteString(`<div class="post-meta">`)
	if p.Category != "" {
		fmt.Fprintf(b, `<span class="post-category">%s</span>`, esc(p.Category))
	}
	fmt.Fprintf(b, `<span class="post-words">%d words</span>`, WordCount(p.Content))
	fmt.Fprintf(b, `<span class="post-date">%s</span>`, esc(FormatDate(p.CreatedAt)))
	if p.WebsiteName != "" {
		fmt.Fprintf(b, `<span class="post-website">%s</span>`, esc(p.WebsiteName))
	}
	b.WriteString(`</div>`)

	score := DisplayScore(p.SEOScore)
	fmt.Fprintf(b, `<div class="seo-bar"><div class="seo-bar-fill" style="width: %d%%"></div><span class="seo-bar-label">SEO %d</span></div>`, score, score)

	b.WriteString(`<div class="post-actions">`)
	fmt.Fprintf(b, `<a class="btn" href="/posts/%d">Preview</a>`, p.ID)
	if p.Published {
		fmt.Fprintf(b, `<a class="btn" href="%s" target="_blank" rel="noopener">View Live</a>`, esc(p.PublishedURL))
	} else {
		writePublishControls(b, p, websites)
	}
	confirm := fmt.Sprintf(`Delete post "%s"?`, p.Title)
	fmt.Fprintf(b,
		`<button class="btn btn-danger" hx-delete="/posts/%d" hx-target="#%s" data-confirm="%s">Delete</button>`,
		p.ID, PostListID, esc(confirm))
	b.WriteString(`</div>`)

	b.WriteString(`</div></div>`)
}

// writePublishControls renders the website select plus the Publish button.
// dashboard.js shows the confirmation prompt naming the selected website
// before the request is issued; an empty selection is rejected server-side
// with a transient error highlight on the select.
func writePublishControls(b *strings.Builder, p Post, websites []Website) {
	selectID := WebsiteSelectID(p.ID)
	fmt.Fprintf(b, `<select id="%s" name="website_id" class="website-select">`, selectID)
	b.WriteString(`<option value="">Select website...</option>`)
	for _, w := range websites {
		fmt.Fprintf(b, `<option value="%d">%s (%s)</option>`, w.ID, esc(w.Name), esc(w.CMSType))
	}
	b.WriteString(`</select>`)
	fmt.Fprintf(b,
		`<button class="btn btn-primary" hx-post="/publish" hx-target="#%s" hx-include="#%s" hx-vals='{"post_id": %d}' data-confirm-publish="#%s">Publish</button>`,
		PostListID, selectID, p.ID, selectID)
}
