package views

import (
	"fmt"
	"strings"
	"testing"
)

var testWebsites = []Website{
	{ID: 3, Name: "Eco Blog", CMSType: "wordpress"},
	{ID: 4, Name: "Tech Site", CMSType: "ghost"},
}

func TestPostListEmpty(t *testing.T) {
	html := renderToString(t, PostList(nil, testWebsites))
	if !strings.Contains(html, "No posts yet") {
		t.Errorf("empty list should render empty state, got %q", html)
	}
}

func TestPostCardScoreFloor(t *testing.T) {
	tests := []struct {
		raw  float64
		want string
	}{
		{95, "width: 95%"},
		{0, "width: 80%"},
		{-5, "width: 80%"},
		{92, "width: 92%"},
	}
	for _, tt := range tests {
		html := renderToString(t, PostList([]Post{{ID: 1, Title: "T", SEOScore: tt.raw}}, nil))
		if !strings.Contains(html, tt.want) {
			t.Errorf("score %v: markup missing %q", tt.raw, tt.want)
		}
	}
	// The label shows the floored value too.
	html := renderToString(t, PostList([]Post{{ID: 1, Title: "T", SEOScore: 12}}, nil))
	if !strings.Contains(html, "SEO 80") {
		t.Error("score label should show the floored score")
	}
}

func TestPostCardWordCount(t *testing.T) {
	html := renderToString(t, PostList([]Post{{ID: 1, Title: "T", Content: "a b  c"}}, nil))
	if !strings.Contains(html, ">3 words<") {
		t.Errorf("irregular spacing should count 3 words: %q", html)
	}
	html = renderToString(t, PostList([]Post{{ID: 2, Title: "T"}}, nil))
	if !strings.Contains(html, ">0 words<") {
		t.Errorf("empty content should count 0 words: %q", html)
	}
}

func TestUnpublishedPostControls(t *testing.T) {
	post := Post{ID: 7, Title: "Draft Post", SEOScore: 85}
	html := renderToString(t, PostList([]Post{post}, testWebsites))

	if !strings.Contains(html, `id="website-select-7"`) {
		t.Error("missing website select for post 7")
	}
	// Options are exactly the current websites, labeled "name (cms_type)".
	if !strings.Contains(html, `<option value="3">Eco Blog (wordpress)</option>`) {
		t.Error("missing Eco Blog option")
	}
	if !strings.Contains(html, `<option value="4">Tech Site (ghost)</option>`) {
		t.Error("missing Tech Site option")
	}
	if got := strings.Count(html, "<option"); got != 3 { // 2 websites + placeholder
		t.Errorf("option count = %d, want 3", got)
	}
	if !strings.Contains(html, `hx-post="/publish"`) {
		t.Error("missing publish button")
	}
	if !strings.Contains(html, "status-draft") {
		t.Error("missing draft badge")
	}
	if strings.Contains(html, "View Live") {
		t.Error("draft should not render a View Live link")
	}
}

func TestPublishedPostControls(t *testing.T) {
	post := Post{ID: 8, Title: "Live Post", Published: true, PublishedURL: "https://eco.example.com/live-post", WebsiteName: "Eco Blog"}
	html := renderToString(t, PostList([]Post{post}, testWebsites))

	if !strings.Contains(html, `href="https://eco.example.com/live-post"`) || !strings.Contains(html, "View Live") {
		t.Error("published post should link to its live URL")
	}
	if strings.Contains(html, "website-select-8") {
		t.Error("published post should not render a website select")
	}
	if !strings.Contains(html, "status-published") {
		t.Error("missing published badge")
	}
	if !strings.Contains(html, "Eco Blog") {
		t.Error("missing website name in metadata row")
	}
}

func TestPostCardAlwaysHasDeleteAndPreview(t *testing.T) {
	posts := []Post{
		{ID: 1, Title: "Draft"},
		{ID: 2, Title: "Live", Published: true, PublishedURL: "https://x.com/p"},
	}
	html := renderToString(t, PostList(posts, testWebsites))
	for _, id := range []int{1, 2} {
		if !strings.Contains(html, fmt.Sprintf(`hx-delete="/posts/%d"`, id)) {
			t.Errorf("missing delete button for post %d", id)
		}
		if !strings.Contains(html, fmt.Sprintf(`href="/posts/%d"`, id)) {
			t.Errorf("missing preview link for post %d", id)
		}
	}
}

func TestPostThumbnail(t *testing.T) {
	html := renderToString(t, PostList([]Post{
		{ID: 1, Title: "With", ImageURL: "https://img.example.com/a.png"},
		{ID: 2, Title: "Without"},
	}, nil))
	if !strings.Contains(html, `src="/thumbs?src=https%3A%2F%2Fimg.example.com%2Fa.png"`) {
		t.Errorf("image URL should route through the thumb proxy: %q", html)
	}
	if !strings.Contains(html, `src="/thumbs"`) {
		t.Error("missing placeholder thumb for post without image")
	}
}

func TestPostMetaDescriptionTruncated(t *testing.T) {
	long := strings.Repeat("word ", 60) // 300 chars
	html := renderToString(t, PostList([]Post{{ID: 1, Title: "T", MetaDescription: long}}, nil))
	if strings.Contains(html, long) {
		t.Error("meta description should be truncated")
	}
	if !strings.Contains(html, "...") {
		t.Error("truncated description should end with an ellipsis")
	}
}
