// internal/domain/models/event.go
package models

// Event status values.
const (
	EventUpcoming  = "upcoming"
	EventCompleted = "completed"
)

// Event is a fair, competition or workshop run by the society.
// EventDate is kept as the ISO date string the form submitted.
type Event struct {
	ID               int    `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	EventDate        string `json:"event_date"`
	EventType        string `json:"event_type"`
	Status           string `json:"status"`
	RegistrationLink string `json:"registration_link"`
	GalleryLink      string `json:"gallery_link"`
}

func (e Event) RecordID() int { return e.ID }
