// internal/app/admin/ports.go
package admin

import (
	metricsstore "github.com/dalemusser/stemboard/internal/app/store/metrics"
	"github.com/dalemusser/stemboard/internal/domain/models"
)

// Element ids of the creation dialogs and their forms.
const (
	AddSchoolModal = "addSchoolModal"
	AddSchoolForm  = "addSchoolForm"
	AddEventModal  = "addEventModal"
	AddEventForm   = "addEventForm"
	AddTeamModal   = "addTeamModal"
	AddTeamForm    = "addTeamForm"
)

// Renderer is the page the controller draws on. The controller never
// touches HTML; it hands the renderer row views, counters and visibility
// changes.
type Renderer interface {
	// RenderTable replaces the table body for kind with rows, in order.
	RenderTable(kind models.Kind, rows []RowView)
	// RenderCounters writes the four summary counters.
	RenderCounters(c metricsstore.Counts)
	// ShowSection makes s the only visible section. An unknown or empty
	// section leaves every section hidden.
	ShowSection(s models.Section)
	// SetActiveLink marks the navigation link for s active and clears the rest.
	SetActiveLink(s models.Section)
	// CloseDialog hides the modal with the given element id.
	CloseDialog(id string)
	// ResetForm clears the fields of the form with the given element id.
	ResetForm(id string)
}

// CounterReader is implemented by renderers that can report the counters
// they last drew.
type CounterReader interface {
	Counters() metricsstore.Counts
}

// Dialogs answers blocking prompts. Confirm returns the user's answer;
// Alert shows a message and returns once it has been acknowledged.
type Dialogs interface {
	Confirm(message string) bool
	Alert(message string)
}

// Form reads a submitted field by name. url.Values satisfies it.
type Form interface {
	Get(key string) string
}
