package views

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// WebsiteList renders the contents of the websites region. It is a pure
// function of its argument so it can be tested against fixture slices.
func WebsiteList(websites []Website) templ.Component {
	return component(func(b *strings.Builder) {
		writeWebsiteList(b, websites)
	})
}

// WebsiteListOOB renders the websites region as an htmx out-of-band swap,
// used when a response's primary target is another region.
func WebsiteListOOB(websites []Website) templ.Component {
	return component(func(b *strings.Builder) {
		fmt.Fprintf(b, `<div id="%s" hx-swap-oob="innerHTML">`, WebsiteListID)
		writeWebsiteList(b, websites)
		b.WriteString(`</div>`)
	})
}

func writeWebsiteList(b *strings.Builder, websites []Website) {
	if len(websites) == 0 {
		b.WriteString(`<p class="empty-state">No websites yet. Add one to start publishing.</p>`)
		return
	}
	for _, w := range websites {
		writeWebsiteCard(b, w)
	}
}

func writeWebsiteCard(b *strings.Builder, w Website) {
	fmt.Fprintf(b, `<div class="website-card" id="%s">`, WebsiteCardID(w.ID))
	fmt.Fprintf(b, `<div class="website-avatar">%s</div>`, esc(AvatarLetter(w.Name)))
	b.WriteString(`<div class="website-info">`)
	fmt.Fprintf(b, `<h3 class="website-name">%s</h3>`, esc(w.Name))
	fmt.Fprintf(b, `<p class="website-domain">%s</p>`, esc(w.Domain))
	b.WriteString(`</div>`)
	fmt.Fprintf(b, `<span class="%s">%s</span>`, esc(CMSBadgeClass(w.CMSType)), esc(w.CMSType))
	confirm := fmt.Sprintf(`Delete website "%s"? Posts already published there stay live.`, w.Name)
	fmt.Fprintf(b,
		`<button class="btn btn-danger" hx-delete="/websites/%d" hx-target="#%s" data-confirm="%s">Delete</button>`,
		w.ID, WebsiteListID, esc(confirm))
	b.WriteString(`</div>`)
}
