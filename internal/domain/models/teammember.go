// internal/domain/models/teammember.go
package models

// TeamMember is a person on the society's leadership team.
type TeamMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Status      string `json:"status"`
}

func (m TeamMember) RecordID() int { return m.ID }
