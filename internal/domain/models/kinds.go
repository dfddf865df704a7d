// internal/domain/models/kinds.go
package models

// Kind identifies one of the four record collections shown on the dashboard.
type Kind string

const (
	KindSchool     Kind = "schools"
	KindEvent      Kind = "events"
	KindTeamMember Kind = "team"
	KindMessage    Kind = "messages"
)

// Kinds lists every record kind in dashboard display order.
var Kinds = []Kind{KindSchool, KindEvent, KindTeamMember, KindMessage}

// ParseKind maps a path segment ("schools", "events", "team", "messages")
// to its Kind.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Label is the singular, human-readable name used in notifications.
func (k Kind) Label() string {
	switch k {
	case KindSchool:
		return "school"
	case KindEvent:
		return "event"
	case KindTeamMember:
		return "team member"
	case KindMessage:
		return "message"
	}
	return string(k)
}

// Section is the dashboard panel that lists records of kind k.
func (k Kind) Section() Section {
	return Section(k)
}

// Section names a mutually exclusive dashboard panel.
// The zero value means no section is visible.
type Section string

const (
	SectionDashboard Section = "dashboard"
	SectionSchools   Section = "schools"
	SectionEvents    Section = "events"
	SectionTeam      Section = "team"
	SectionMessages  Section = "messages"
)

// DefaultSection is the panel visible before any navigation happens.
const DefaultSection = SectionDashboard

// Sections lists every known panel in navigation order.
var Sections = []Section{SectionDashboard, SectionSchools, SectionEvents, SectionTeam, SectionMessages}

// Known reports whether s names an existing panel.
func (s Section) Known() bool {
	for _, v := range Sections {
		if v == s {
			return true
		}
	}
	return false
}

// Record is implemented by every dashboard record type.
type Record interface {
	RecordID() int
}
