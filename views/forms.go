package views

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// cmsTypes lists the publishing platforms the backend supports.
var cmsTypes = []string{"wordpress", "ghost", "custom"}

// GenerateForm renders the article generation form. The trigger button is
// disabled and the spinner shown for the duration of the request via htmx
// attributes, so cleanup happens regardless of how the request ends.
// When oob is true the form replaces itself out-of-band, which is how a
// successful generation clears the three input fields.
func GenerateForm(oob bool) templ.Component {
	return component(func(b *strings.Builder) {
		fmt.Fprintf(b, `<form id="%s"`, GenerateFormID)
		if oob {
			b.WriteString(` hx-swap-oob="outerHTML"`)
		}
		fmt.Fprintf(b, ` hx-post="/generate" hx-target="#%s" hx-disabled-elt="#%s" hx-indicator="#generate-spinner">`,
			PostListID, GenerateBtnID)
		b.WriteString(`<input type="text" name="category" placeholder="Category (e.g. AI Automation)"/>`)
		b.WriteString(`<input type="text" name="focus_keyword" placeholder="Focus keyword (optional)"/>`)
		b.WriteString(`<input type="text" name="custom_topic" placeholder="Custom topic (optional)"/>`)
		fmt.Fprintf(b, `<button id="%s" class="btn btn-primary" type="submit">Generate Post</button>`, GenerateBtnID)
		b.WriteString(`<span id="generate-spinner" class="spinner htmx-indicator">Generating...</span>`)
		b.WriteString(`</form>`)
	})
}

// WebsiteModal renders the add-website dialog with its creation form.
// A successful creation swaps in a fresh (closed, empty) modal out-of-band.
func WebsiteModal(oob bool) templ.Component {
	return component(func(b *strings.Builder) {
		fmt.Fprintf(b, `<dialog id="%s" class="modal"`, WebsiteModalID)
		if oob {
			b.WriteString(` hx-swap-oob="outerHTML"`)
		}
		b.WriteString(`>`)
		b.WriteString(`<h2>Add Website</h2>`)
		fmt.Fprintf(b, `<form id="%s" hx-post="/websites" hx-target="#%s">`, WebsiteFormID, WebsiteListID)
		b.WriteString(`<input type="text" name="name" placeholder="Site name" required/>`)
		b.WriteString(`<input type="text" name="domain" placeholder="example.com" required/>`)
		b.WriteString(`<select name="cms_type">`)
		for _, t := range cmsTypes {
			fmt.Fprintf(b, `<option value="%s">%s</option>`, esc(t), esc(t))
		}
		b.WriteString(`</select>`)
		b.WriteString(`<input type="url" name="api_url" placeholder="API URL" required/>`)
		b.WriteString(`<input type="password" name="api_key" placeholder="API key (optional)"/>`)
		b.WriteString(`<div class="modal-actions">`)
		b.WriteString(`<button class="btn btn-primary" type="submit">Add Website</button>`)
		fmt.Fprintf(b, `<button class="btn" type="button" data-close-modal="#%s">Cancel</button>`, WebsiteModalID)
		b.WriteString(`</div>`)
		b.WriteString(`</form>`)
		b.WriteString(`</dialog>`)
	})
}
