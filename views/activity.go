package views

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// ActivityList renders the recent-activity panel contents.
func ActivityList(entries []ActivityEntry) templ.Component {
	return component(func(b *strings.Builder) {
		writeActivityList(b, entries)
	})
}

// ActivityListOOB refreshes the activity panel from an htmx response.
func ActivityListOOB(entries []ActivityEntry) templ.Component {
	return component(func(b *strings.Builder) {
		fmt.Fprintf(b, `<div id="%s" hx-swap-oob="innerHTML">`, ActivityListID)
		writeActivityList(b, entries)
		b.WriteString(`</div>`)
	})
}

func writeActivityList(b *strings.Builder, entries []ActivityEntry) {
	if len(entries) == 0 {
		b.WriteString(`<p class="empty-state">No activity yet.</p>`)
		return
	}
	b.WriteString(`<ul class="activity">`)
	for _, e := range entries {
		outcome := "activity-ok"
		if !e.OK {
			outcome = "activity-failed"
		}
		fmt.Fprintf(b, `<li class="%s"><span class="activity-action">%s</span> %s <time>%s</time></li>`,
			outcome, esc(e.Action), esc(e.Message), esc(e.When))
	}
	b.WriteString(`</ul>`)
}
