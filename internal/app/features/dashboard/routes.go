// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/dalemusser/stemboard/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Routes wires the dashboard under the mount point the top-level router
// chooses (normally "/").
//
// Every kind gets /{kind}/{id}/delete (GET asks, POST acts). Schools,
// events and team members also get POST /{kind} (add) and
// POST /{kind}/{id}/edit; messages get view and read/unread instead.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServePage)
	r.Get("/tables/{kind}", h.ServeTable)

	for _, kind := range models.Kinds {
		base := "/" + string(kind)
		r.Get(base+"/{id}/delete", h.confirmDeleteHandler(kind))
		r.Post(base+"/{id}/delete", h.deleteHandler(kind))
		if _, ok := formSpecs[kind]; ok {
			r.Post(base, h.addHandler(kind))
			r.Post(base+"/{id}/edit", h.editHandler(kind))
		}
	}

	r.Get("/messages/{id}", h.ViewMessage)
	r.Post("/messages/{id}/read", h.markHandler(true))
	r.Post("/messages/{id}/unread", h.markHandler(false))

	r.Post("/notifications/{id}/dismiss", h.Dismiss)

	return r
}
