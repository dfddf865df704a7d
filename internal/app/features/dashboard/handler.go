// internal/app/features/dashboard/handler.go
package dashboard

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/dalemusser/stemboard/internal/app/admin"
	errorsfeature "github.com/dalemusser/stemboard/internal/app/features/errors"
	"github.com/dalemusser/stemboard/internal/app/system/screen"
	"github.com/dalemusser/stemboard/internal/app/system/websession"
	"github.com/dalemusser/stemboard/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the admin dashboard. Every action goes through the shared
// controller; pages are drawn from the screen the controller renders into.
type Handler struct {
	Ctrl     *admin.Controller
	Screen   *screen.Screen
	Sessions *websession.Manager
	Log      *zap.Logger
}

func NewHandler(ctrl *admin.Controller, scr *screen.Screen, sm *websession.Manager, logger *zap.Logger) *Handler {
	return &Handler{
		Ctrl:     ctrl,
		Screen:   scr,
		Sessions: sm,
		Log:      logger,
	}
}

// kindParam parses the {kind} URL parameter. It renders 404 and returns
// false for anything that is not a record kind.
func kindParam(w http.ResponseWriter, r *http.Request) (models.Kind, bool) {
	k, ok := models.ParseKind(chi.URLParam(r, "kind"))
	if !ok {
		errorsfeature.RenderNotFound(w, r, "There is no such table.", "/")
		return "", false
	}
	return k, true
}

// idParam parses the {id} URL parameter. It renders 400 and returns false
// when the id is not an integer.
func idParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		errorsfeature.RenderBadRequest(w, r, "Record ids are whole numbers.", "/")
		return 0, false
	}
	return id, true
}

// sectionURL is the dashboard page showing sec.
func sectionURL(sec models.Section) string {
	return "/?" + url.Values{"section": {string(sec)}}.Encode()
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// redirectTo sends the browser to target. HTMX requests get an HX-Redirect
// so the whole page swaps.
func redirectTo(w http.ResponseWriter, r *http.Request, target string) {
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", target)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
