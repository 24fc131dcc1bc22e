package views

import (
	"context"
	"html"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"
)

// component wraps an HTML-building function as a templ component.
func component(f func(b *strings.Builder)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		f(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// esc escapes text and attribute values for safe HTML interpolation.
func esc(s string) string {
	return html.EscapeString(s)
}

// WordCount counts whitespace-separated words in post content.
// Irregular spacing collapses, so "a b  c" counts as 3; empty content is 0.
func WordCount(content string) int {
	return len(strings.Fields(content))
}

// DisplayScore returns the SEO score shown in the dashboard. Scores below 80
// are floored to 80. The floor is a known cosmetic quirk of the backend's
// dashboard and is reproduced here deliberately; the raw score is not shown.
func DisplayScore(raw float64) int {
	if raw < 80 {
		return 80
	}
	return int(raw)
}

// createdAtFormat is what the backend emits for created_at
// (SQLite CURRENT_TIMESTAMP).
const createdAtFormat = "2006-01-02 15:04:05"

// ParseCreatedAt parses a backend created_at value. The backend has emitted
// both its SQLite format and RFC3339 over time, so both are accepted; this is
// the single place the formats are defined.
func ParseCreatedAt(ts string) (time.Time, bool) {
	if t, err := time.Parse(createdAtFormat, ts); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// FormatDate renders a backend timestamp as a short human date.
// Unparseable values are shown as-is.
func FormatDate(ts string) string {
	if t, ok := ParseCreatedAt(ts); ok {
		return t.Format("Jan 2, 2006")
	}
	return ts
}

// AvatarLetter returns the uppercased first rune of a website name for its
// avatar glyph, or "?" when the name is empty.
func AvatarLetter(name string) string {
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return "?"
}

// Truncate shortens s to at most n runes, appending an ellipsis when cut.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimSpace(string(runes[:n])) + "..."
}

// CMSBadgeClass returns the badge classes for a CMS type. The type is
// lowercased into the style class, e.g. "WordPress" -> "cms-badge cms-wordpress".
func CMSBadgeClass(cmsType string) string {
	return "cms-badge cms-" + strings.ToLower(strings.TrimSpace(cmsType))
}
