// Package formutil provides helpers for form re-rendering with validation errors.
//
// When a form submission fails validation, the form should be re-rendered with:
// - The user's previously entered values (echoed back)
// - An error message explaining what went wrong
//
// Embed Base in the form's view model:
//
//	type contactData struct {
//		formutil.Base
//		Name    string
//		Email   string
//		Message string
//	}
//
//	data := contactData{Name: name, Email: email, Message: body}
//	formutil.SetBase(&data.Base, r, "Contact Us", "/")
//	data.SetError(res.First())
//	templates.Render(w, r, "contact", data)
package formutil

import (
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// Base contains common fields for form pages that can be embedded in form data structs.
type Base struct {
	Title       string
	BackURL     string
	CurrentPath string
	CSRFToken   string
	Error       template.HTML
}

// SetBase populates the common Base fields from the request.
//
// Parameters:
//   - b: pointer to the Base struct to populate
//   - r: the HTTP request
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func SetBase(b *Base, r *http.Request, title, backDefault string) {
	b.Title = title
	b.BackURL = httpnav.ResolveBackURL(r, backDefault)
	b.CurrentPath = httpnav.CurrentPath(r)
	b.CSRFToken = csrf.Token(r)
}

// SetError sets the error message on a Base struct. msg is plain text and
// is escaped.
func (b *Base) SetError(msg string) {
	b.Error = template.HTML(template.HTMLEscapeString(msg))
}

// SetErrors joins several plain-text messages with line breaks.
func (b *Base) SetErrors(msgs []string) {
	var out string
	for i, m := range msgs {
		if i > 0 {
			out += "<br>"
		}
		out += template.HTMLEscapeString(m)
	}
	b.Error = template.HTML(out)
}
