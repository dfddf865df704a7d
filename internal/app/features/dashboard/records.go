// internal/app/features/dashboard/records.go
package dashboard

import (
	"net/http"

	errorsfeature "github.com/dalemusser/stemboard/internal/app/features/errors"
	"github.com/dalemusser/stemboard/internal/app/system/navigation"
	"github.com/dalemusser/stemboard/internal/app/system/viewdata"
	"github.com/dalemusser/stemboard/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// addHandler returns the POST handler for kind's creation form. A rejected
// form re-renders the page with the modal open and the values echoed.
func (h *Handler) addHandler(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := parseForm(w, r)
		if !ok {
			return
		}

		if res := validateForm(kind, form); res.HasErrors() {
			h.Log.Debug("add rejected",
				zap.String("kind", string(kind)),
				zap.Strings("errors", res.Messages()))
			spec := formSpecs[kind]
			h.Screen.OpenDialog(spec.Modal)
			w.WriteHeader(http.StatusUnprocessableEntity)
			h.renderPage(w, r, kind.Section(), spec.Modal, form, res.Messages())
			return
		}

		if _, ok := h.Ctrl.Add(kind, form); !ok {
			errorsfeature.RenderNotFound(w, r, "Records of this kind cannot be added.", sectionURL(kind.Section()))
			return
		}
		redirectTo(w, r, sectionURL(kind.Section()))
	}
}

// editHandler returns the POST /{kind}/{id}/edit handler. Editing only
// announces the record.
func (h *Handler) editHandler(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r)
		if !ok {
			return
		}
		if !h.Ctrl.Edit(kind, id) {
			errorsfeature.RenderNotFound(w, r, "Records of this kind cannot be edited.", sectionURL(kind.Section()))
			return
		}
		redirectTo(w, r, sectionURL(kind.Section()))
	}
}

type confirmData struct {
	viewdata.BaseVM
	Prompt    string
	Kind      models.Kind
	ID        int
	Action    string
	CancelURL string
}

// confirmDeleteHandler returns the GET /{kind}/{id}/delete handler: it
// shows the controller's confirmation question with a form that posts the
// answer back.
func (h *Handler) confirmDeleteHandler(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r)
		if !ok {
			return
		}
		h.confirmDelete(w, r, kind, id)
	}
}

func (h *Handler) confirmDelete(w http.ResponseWriter, r *http.Request, kind models.Kind, id int) {
	// Declining captures the question without touching the collection.
	dlg := &requestDialogs{confirmed: false}
	h.Ctrl.Delete(kind, id, dlg)

	data := confirmData{
		BaseVM:    viewdata.NewBaseVM(r, "Confirm delete", sectionURL(kind.Section())),
		Prompt:    dlg.prompt(),
		Kind:      kind,
		ID:        id,
		Action:    r.URL.Path,
		CancelURL: sectionURL(kind.Section()),
	}
	templates.Render(w, r, "dashboard_confirm", data)
}

// deleteHandler returns the POST /{kind}/{id}/delete handler. The record is
// removed only when the form carries confirm=yes. A local return path is
// honored unless it points at the removed record.
func (h *Handler) deleteHandler(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r)
		if !ok {
			return
		}
		form, ok := parseForm(w, r)
		if !ok {
			return
		}

		dlg := &requestDialogs{confirmed: form.Get("confirm") == "yes"}
		h.Ctrl.Delete(kind, id, dlg)
		redirectTo(w, r, navigation.SafeBackURL(r, navigation.DashboardBackURL(string(kind.Section()), chi.URLParam(r, "id"))))
	}
}
