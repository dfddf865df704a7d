// internal/app/features/dashboard/forms.go
package dashboard

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/dalemusser/stemboard/internal/app/admin"
	"github.com/dalemusser/stemboard/internal/app/system/inputval"
	"github.com/dalemusser/stemboard/internal/app/system/limits"
	"github.com/dalemusser/stemboard/internal/domain/models"
)

// The creation forms mirror the constraints their HTML inputs declare, so a
// post that skips the browser gets the same checks.

type schoolInput struct {
	Name         string `validate:"required,max=200" label:"School name"`
	Description  string `validate:"required,max=2000" label:"Description"`
	StudentCount string `validate:"omitempty,max=12" label:"Student count"`
	ClubCount    string `validate:"omitempty,max=12" label:"Club count"`
	Icon         string `validate:"omitempty,max=64" label:"Icon"`
}

type eventInput struct {
	Title            string `validate:"required,max=200" label:"Title"`
	Description      string `validate:"required,max=2000" label:"Description"`
	EventDate        string `validate:"required,datetime=2006-01-02" label:"Event date"`
	EventType        string `validate:"required,max=64" label:"Event type"`
	Status           string `validate:"omitempty,oneof=upcoming completed" label:"Status"`
	RegistrationLink string `validate:"omitempty,max=500" label:"Registration link"`
	GalleryLink      string `validate:"omitempty,max=500" label:"Gallery link"`
}

type teamInput struct {
	Name        string `validate:"required,max=200" label:"Name"`
	Role        string `validate:"required,max=200" label:"Role"`
	Description string `validate:"required,max=2000" label:"Description"`
	Image       string `validate:"omitempty,max=500" label:"Image"`
}

// formSpec ties a kind to its creation modal and form.
type formSpec struct {
	Modal string
	Form  string
}

var formSpecs = map[models.Kind]formSpec{
	models.KindSchool:     {Modal: admin.AddSchoolModal, Form: admin.AddSchoolForm},
	models.KindEvent:      {Modal: admin.AddEventModal, Form: admin.AddEventForm},
	models.KindTeamMember: {Modal: admin.AddTeamModal, Form: admin.AddTeamForm},
}

// modalKind maps a modal element id back to its kind.
func modalKind(id string) (models.Kind, bool) {
	for k, spec := range formSpecs {
		if spec.Modal == id {
			return k, true
		}
	}
	return "", false
}

// validateForm checks the posted fields for kind.
func validateForm(kind models.Kind, f url.Values) inputval.Result {
	get := func(k string) string { return strings.TrimSpace(f.Get(k)) }
	switch kind {
	case models.KindSchool:
		return inputval.Validate(schoolInput{
			Name:         get("name"),
			Description:  get("description"),
			StudentCount: get("student_count"),
			ClubCount:    get("club_count"),
			Icon:         get("icon"),
		})
	case models.KindEvent:
		return inputval.Validate(eventInput{
			Title:            get("title"),
			Description:      get("description"),
			EventDate:        get("event_date"),
			EventType:        get("event_type"),
			Status:           get("status"),
			RegistrationLink: get("registration_link"),
			GalleryLink:      get("gallery_link"),
		})
	case models.KindTeamMember:
		return inputval.Validate(teamInput{
			Name:        get("name"),
			Role:        get("role"),
			Description: get("description"),
			Image:       get("image"),
		})
	}
	return inputval.Result{}
}

// parseForm reads the posted fields, limited to limits.MaxDashboardFormSize.
func parseForm(w http.ResponseWriter, r *http.Request) (url.Values, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxDashboardFormSize)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return nil, false
	}
	return r.PostForm, true
}
