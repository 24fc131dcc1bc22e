package views

import (
	"html"
	"regexp"
	"strings"

	"github.com/a-h/templ"
)

var (
	reBold    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reItalic  = regexp.MustCompile(`\*([^*]+)\*`)
	reLink    = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
	reOrdered = regexp.MustCompile(`^\d+\.\s+`)
)

// Markdown renders generated article content for the preview page. The
// generator emits a narrow markdown subset (headings, bold/italic, links,
// bullet and numbered lists, code fences), so this covers exactly that.
func Markdown(content string) templ.Component {
	return component(func(b *strings.Builder) {
		renderMarkdown(b, content)
	})
}

func renderMarkdown(b *strings.Builder, md string) {
	inPara := false
	inUL := false
	inOL := false
	inCode := false

	flushPara := func() {
		if inPara {
			b.WriteString("</p>")
			inPara = false
		}
	}
	flushLists := func() {
		if inUL {
			b.WriteString("</ul>")
			inUL = false
		}
		if inOL {
			b.WriteString("</ol>")
			inOL = false
		}
	}

	for _, raw := range strings.Split(md, "\n") {
		line := strings.TrimRight(raw, "\r")

		if strings.HasPrefix(line, "```") {
			if inCode {
				b.WriteString("</code></pre>")
				inCode = false
			} else {
				flushPara()
				flushLists()
				b.WriteString(`<pre class="code-block"><code>`)
				inCode = true
			}
			continue
		}
		if inCode {
			b.WriteString(html.EscapeString(line))
			b.WriteString("\n")
			continue
		}

		if strings.TrimSpace(line) == "" {
			flushPara()
			flushLists()
			continue
		}

		switch {
		case strings.HasPrefix(line, "### "):
			flushPara()
			flushLists()
			b.WriteString("<h3>" + inline(strings.TrimPrefix(line, "### ")) + "</h3>")
		case strings.HasPrefix(line, "## "):
			flushPara()
			flushLists()
			b.WriteString("<h2>" + inline(strings.TrimPrefix(line, "## ")) + "</h2>")
		case strings.HasPrefix(line, "# "):
			flushPara()
			flushLists()
			b.WriteString("<h1>" + inline(strings.TrimPrefix(line, "# ")) + "</h1>")
		case strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* "):
			flushPara()
			if inOL {
				b.WriteString("</ol>")
				inOL = false
			}
			if !inUL {
				b.WriteString("<ul>")
				inUL = true
			}
			b.WriteString("<li>" + inline(line[2:]) + "</li>")
		case reOrdered.MatchString(line):
			flushPara()
			if inUL {
				b.WriteString("</ul>")
				inUL = false
			}
			if !inOL {
				b.WriteString("<ol>")
				inOL = true
			}
			b.WriteString("<li>" + inline(reOrdered.ReplaceAllString(line, "")) + "</li>")
		default:
			flushLists()
			if !inPara {
				b.WriteString("<p>")
				inPara = true
			} else {
				b.WriteString(" ")
			}
			b.WriteString(inline(line))
		}
	}

	if inCode {
		b.WriteString("</code></pre>")
	}
	flushPara()
	flushLists()
}

// inline escapes a line of text and applies bold, italic, and link spans.
func inline(s string) string {
	s = html.EscapeString(s)
	s = reBold.ReplaceAllString(s, "<strong>$1</strong>")
	s = reItalic.ReplaceAllString(s, "<em>$1</em>")
	s = reLink.ReplaceAllString(s, `<a href="$2" target="_blank" rel="noopener">$1</a>`)
	return s
}
