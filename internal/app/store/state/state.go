// internal/app/store/state/state.go
package state

import (
	"github.com/dalemusser/stemboard/internal/app/store/mockdata"
	"github.com/dalemusser/stemboard/internal/app/store/records"
	"github.com/dalemusser/stemboard/internal/domain/models"
)

// State owns the four record collections for one dashboard.
// It is not safe for concurrent use; the admin controller serializes access.
type State struct {
	Schools  *records.Collection[models.School]
	Events   *records.Collection[models.Event]
	Team     *records.Collection[models.TeamMember]
	Messages *records.Collection[models.Message]
}

// New builds a State from ds. The dataset is copied.
func New(ds mockdata.Dataset) *State {
	return &State{
		Schools:  records.New(ds.Schools),
		Events:   records.New(ds.Events),
		Team:     records.New(ds.Team),
		Messages: records.New(ds.Messages),
	}
}

// Len returns the size of the collection for kind k, or 0 for an unknown kind.
func (s *State) Len(k models.Kind) int {
	switch k {
	case models.KindSchool:
		return s.Schools.Len()
	case models.KindEvent:
		return s.Events.Len()
	case models.KindTeamMember:
		return s.Team.Len()
	case models.KindMessage:
		return s.Messages.Len()
	}
	return 0
}
