// internal/app/features/dashboard/messages.go
package dashboard

import (
	"html/template"
	"net/http"

	"github.com/dalemusser/stemboard/internal/app/admin"
	"github.com/dalemusser/stemboard/internal/app/system/htmlsanitize"
	"github.com/dalemusser/stemboard/internal/app/system/viewdata"
	"github.com/dalemusser/stemboard/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

type messageData struct {
	viewdata.BaseVM
	ID    int
	Alert string
	Name  string
	Email string
	Date  string
	Body  template.HTML
	Read  bool
}

// ViewMessage handles GET /messages/{id}. Viewing marks the message read.
// An unknown id goes back to the message list.
func (h *Handler) ViewMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	dlg := &requestDialogs{}
	m, found := h.Ctrl.ViewMessage(id, dlg)
	if !found {
		redirectTo(w, r, sectionURL(models.SectionMessages))
		return
	}

	data := messageData{
		BaseVM: viewdata.NewBaseVM(r, "Message from "+m.Name, sectionURL(models.SectionMessages)),
		ID:     m.ID,
		Alert:  dlg.alert(),
		Name:   m.Name,
		Email:  m.Email,
		Date:   admin.FormatDate(m.Date),
		Body:   htmlsanitize.Markdown(m.Message),
		Read:   m.Read,
	}
	templates.Render(w, r, "dashboard_message", data)
}

// markHandler returns the POST handler that sets a message's read flag.
func (h *Handler) markHandler(read bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r)
		if !ok {
			return
		}
		h.Ctrl.MarkMessageRead(id, read)
		redirectTo(w, r, sectionURL(models.SectionMessages))
	}
}

// Dismiss handles POST /notifications/{id}/dismiss. Dismissing a banner
// that already expired is fine.
func (h *Handler) Dismiss(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.Ctrl.Notifier().Dismiss(id)
	if isHTMX(r) {
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
