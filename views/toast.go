package views

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// ToastMessage is a transient notification shown in the top-right stack.
type ToastMessage struct {
	Level   ToastLevel
	Message string
}

// Toast renders a single toast element. dashboard.js animates it in and
// removes it after five seconds; concurrent toasts stack as independent
// elements with no queueing or deduplication.
func Toast(t ToastMessage) templ.Component {
	return component(func(b *strings.Builder) {
		writeToast(b, t)
	})
}

// ToastOOB appends a toast to the stack from any htmx response.
func ToastOOB(t ToastMessage) templ.Component {
	return component(func(b *strings.Builder) {
		fmt.Fprintf(b, `<div id="%s" hx-swap-oob="beforeend">`, ToastStackID)
		writeToast(b, t)
		b.WriteString(`</div>`)
	})
}

// ToastStack renders the fixed stack container with any initial toasts,
// e.g. flash messages carried across a full-page redirect.
func ToastStack(toasts []ToastMessage) templ.Component {
	return component(func(b *strings.Builder) {
		fmt.Fprintf(b, `<div id="%s" class="toast-stack">`, ToastStackID)
		for _, t := range toasts {
			writeToast(b, t)
		}
		b.WriteString(`</div>`)
	})
}

func writeToast(b *strings.Builder, t ToastMessage) {
	fmt.Fprintf(b, `<div class="toast toast-%s" role="status">%s</div>`, esc(string(t.Level)), esc(t.Message))
}
