// internal/app/features/dashboard/tables.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/gorilla/csrf"
)

// ServeTable handles GET /tables/{kind}: it reloads the kind's table and
// returns just its body, for partial refreshes.
func (h *Handler) ServeTable(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindParam(w, r)
	if !ok {
		return
	}
	h.Ctrl.Load(kind)
	templates.RenderSnippet(w, "dashboard_table", newTable(kind, h.Screen.Rows(kind), csrf.Token(r)))
}
