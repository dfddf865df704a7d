// Package htmlsanitize cleans user-submitted text before it reaches a page.
//
// Descriptions and contact messages come straight from form posts, so row
// previews strip all markup and the message view renders Markdown through a
// UGC allow-list.
package htmlsanitize

import (
	"bytes"
	"html"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	ugcPolicy    = bluemonday.UGCPolicy()
	strictPolicy = bluemonday.StrictPolicy()
	markdown     = goldmark.New()
)

// Sanitize removes anything outside the user-generated-content allow-list
// (scripts, event handlers, javascript: links) and keeps basic formatting.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return ugcPolicy.Sanitize(s)
}

// StripTags returns s as plain text with every tag removed. Entities are
// decoded so the caller's template escaping is applied exactly once.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	return html.UnescapeString(strictPolicy.Sanitize(s))
}

// Markdown renders src as Markdown and sanitizes the result. Raw HTML in the
// source is dropped by the renderer before sanitizing.
func Markdown(src string) template.HTML {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(Sanitize(buf.String()))
}
