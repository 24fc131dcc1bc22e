package views

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func renderToString(t *testing.T, cmp templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := cmp.Render(context.Background(), &b); err != nil {
		t.Fatalf("render: %v", err)
	}
	return b.String()
}

func TestWebsiteListEmpty(t *testing.T) {
	html := renderToString(t, WebsiteList(nil))
	if !strings.Contains(html, "No websites yet") {
		t.Errorf("empty list should render empty state, got %q", html)
	}
}

func TestWebsiteListCards(t *testing.T) {
	websites := []Website{
		{ID: 1, Name: "eco blog", Domain: "eco.example.com", CMSType: "wordpress"},
		{ID: 2, Name: "tech site", Domain: "tech.example.com", CMSType: "Ghost"},
	}
	html := renderToString(t, WebsiteList(websites))

	if got := strings.Count(html, `class="website-card"`); got != 2 {
		t.Errorf("card count = %d, want 2", got)
	}
	// Avatar glyph is the uppercased first letter of the name.
	if !strings.Contains(html, `<div class="website-avatar">E</div>`) {
		t.Error("missing avatar glyph E")
	}
	if !strings.Contains(html, `<div class="website-avatar">T</div>`) {
		t.Error("missing avatar glyph T")
	}
	if !strings.Contains(html, "eco.example.com") {
		t.Error("missing domain")
	}
	// CMS type is lowercased into the style class but labeled as-is.
	if !strings.Contains(html, `class="cms-badge cms-ghost"`) {
		t.Error("missing lowercased cms badge class")
	}
	if !strings.Contains(html, ">Ghost</span>") {
		t.Error("badge label should keep original casing")
	}
	// Delete button is bound to the website id.
	if !strings.Contains(html, `hx-delete="/websites/1"`) {
		t.Error("missing delete binding for website 1")
	}
}

func TestWebsiteListEscapesNames(t *testing.T) {
	html := renderToString(t, WebsiteList([]Website{
		{ID: 1, Name: "<script>alert(1)</script>", Domain: "x.com", CMSType: "custom"},
	}))
	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Error("website name was not escaped")
	}
}

func TestToastLevels(t *testing.T) {
	for _, level := range []ToastLevel{ToastSuccess, ToastError, ToastInfo} {
		html := renderToString(t, Toast(ToastMessage{Level: level, Message: "hello"}))
		if !strings.Contains(html, "toast-"+string(level)) {
			t.Errorf("toast missing level class %s: %q", level, html)
		}
		if !strings.Contains(html, "hello") {
			t.Errorf("toast missing message: %q", html)
		}
	}
}

func TestToastOOBTargetsStack(t *testing.T) {
	html := renderToString(t, ToastOOB(ToastMessage{Level: ToastError, Message: "boom"}))
	if !strings.Contains(html, `id="`+ToastStackID+`"`) || !strings.Contains(html, `hx-swap-oob="beforeend"`) {
		t.Errorf("toast OOB should append to the stack: %q", html)
	}
}
