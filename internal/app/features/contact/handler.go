// internal/app/features/contact/handler.go
package contact

import (
	"net/http"
	"strings"

	"github.com/dalemusser/stemboard/internal/app/admin"
	"github.com/dalemusser/stemboard/internal/app/system/formutil"
	"github.com/dalemusser/stemboard/internal/app/system/inputval"
	"github.com/dalemusser/stemboard/internal/app/system/limits"
	"github.com/dalemusser/stemboard/internal/app/system/normalize"
	"github.com/dalemusser/stemboard/internal/app/system/ratelimit"
	"github.com/dalemusser/stemboard/internal/app/system/websession"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// SentMessage is flashed to the visitor after a successful submission.
const SentMessage = "Your message has been sent successfully! We will get back to you soon."

// contactInput defines validation rules for the public contact form.
type contactInput struct {
	Name    string `validate:"required,max=100" label:"Name"`
	Email   string `validate:"required,max=254,contact_email" label:"Email"`
	Message string `validate:"required,max=5000" label:"Message"`
}

type contactData struct {
	formutil.Base
	Name    string
	Email   string
	Message string
	Flashes []string
}

// Handler serves the public contact page. Submissions land in the admin's
// message list.
type Handler struct {
	Ctrl     *admin.Controller
	Limiter  *ratelimit.ContactLimiter
	Sessions *websession.Manager
	Log      *zap.Logger

	// Render draws a named page template.
	Render func(w http.ResponseWriter, r *http.Request, name string, data any)
}

// NewHandler builds a contact Handler. limiter and sm may be nil: without a
// limiter submissions are not throttled, without sessions no flash is shown.
func NewHandler(ctrl *admin.Controller, limiter *ratelimit.ContactLimiter, sm *websession.Manager, logger *zap.Logger) *Handler {
	return &Handler{
		Ctrl:     ctrl,
		Limiter:  limiter,
		Sessions: sm,
		Log:      logger,
		Render:   renderTemplate,
	}
}

func renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	templates.Render(w, r, name, data)
}

// ServeContact renders the contact form.
func (h *Handler) ServeContact(w http.ResponseWriter, r *http.Request) {
	data := contactData{}
	formutil.SetBase(&data.Base, r, "Contact Us", "/contact")
	if h.Sessions != nil {
		data.Flashes = h.Sessions.Flashes(w, r)
	}
	h.Render(w, r, "contact", data)
}

// HandleSubmit processes a contact form submission.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxContactFormSize)
	if err := r.ParseForm(); err != nil {
		h.Log.Debug("contact: parse form failed", zap.Error(err))
		http.Error(w, "Invalid form submission.", http.StatusBadRequest)
		return
	}

	name := normalize.Name(r.FormValue("name"))
	email := normalize.Email(r.FormValue("email"))
	body := strings.TrimSpace(r.FormValue("message"))

	renderWithError := func(status int, msg string) {
		data := contactData{Name: name, Email: email, Message: body}
		formutil.SetBase(&data.Base, r, "Contact Us", "/contact")
		data.SetError(msg)
		w.WriteHeader(status)
		h.Render(w, r, "contact", data)
	}

	if result := inputval.Validate(contactInput{Name: name, Email: email, Message: body}); result.HasErrors() {
		renderWithError(http.StatusUnprocessableEntity, result.First())
		return
	}

	if h.Limiter != nil {
		if ok, reason := h.Limiter.Check(r, email); !ok {
			h.Log.Info("contact: rate limited", zap.String("ip", ratelimit.ClientIP(r)))
			renderWithError(http.StatusTooManyRequests, reason)
			return
		}
	}

	h.Ctrl.SubmitMessage(name, email, body)

	if h.Sessions != nil {
		if err := h.Sessions.AddFlash(w, r, SentMessage); err != nil {
			h.Log.Warn("contact: flash not saved", zap.Error(err))
		}
	}
	http.Redirect(w, r, "/contact", http.StatusSeeOther)
}
