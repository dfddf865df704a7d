package errors_test

import (
	"bytes"
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	errorsfeature "github.com/dalemusser/stemboard/internal/app/features/errors"
	"github.com/dalemusser/stemboard/internal/app/resources"
)

// call runs fn and swallows template panics from the unbooted engine.
func call(fn func()) {
	defer func() { _ = recover() }()
	fn()
}

func TestRenderStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		fn   func(http.ResponseWriter, *http.Request)
		want int
	}{
		{"not found", func(w http.ResponseWriter, r *http.Request) {
			errorsfeature.RenderNotFound(w, r, "No such table.", "/")
		}, http.StatusNotFound},
		{"bad request", func(w http.ResponseWriter, r *http.Request) {
			errorsfeature.RenderBadRequest(w, r, "Invalid id.", "")
		}, http.StatusBadRequest},
		{"router not found", errorsfeature.NewHandler().NotFound, http.StatusNotFound},
		{"method not allowed", errorsfeature.NewHandler().MethodNotAllowed, http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/x", nil)
			call(func() { tt.fn(rec, req) })
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestErrorTemplate(t *testing.T) {
	tmpl, err := template.ParseFS(resources.FS, "templates/*.gohtml")
	if err == nil {
		tmpl, err = tmpl.ParseFS(errorsfeature.FS, "templates/*.gohtml")
	}
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var buf bytes.Buffer
	data := struct {
		Title   string
		Status  int
		Message string
		BackURL string
	}{"Not found", 404, "No such table.", "/?section=schools"}
	if err := tmpl.ExecuteTemplate(&buf, "error_page", data); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(buf.String(), "404 Not found") || !strings.Contains(buf.String(), "No such table.") {
		t.Errorf("output:\n%s", buf.String())
	}
}
