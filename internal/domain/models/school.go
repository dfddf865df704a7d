// internal/domain/models/school.go
package models

// School status values. Inactive exists in the data model but nothing sets it.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// School is a member school of the society.
type School struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	StudentCount LooseInt `json:"student_count"`
	ClubCount    LooseInt `json:"club_count"`
	Icon         string   `json:"icon"`
	Status       string   `json:"status"`
}

func (s School) RecordID() int { return s.ID }
