// internal/app/admin/rows.go
package admin

import (
	"time"

	"github.com/dalemusser/stemboard/internal/app/system/htmlsanitize"
	"github.com/dalemusser/stemboard/internal/domain/models"
)

// Preview lengths, in characters, for the table's description column.
const (
	previewLen        = 60
	messagePreviewLen = 80
)

// Action is a button in a row's last cell.
type Action struct {
	Verb    string // edit, delete, view
	Icon    string // bootstrap-icons class
	Variant string // primary, danger
}

var (
	editAction   = Action{Verb: "edit", Icon: "bi-pencil", Variant: "primary"}
	deleteAction = Action{Verb: "delete", Icon: "bi-trash", Variant: "danger"}
	viewAction   = Action{Verb: "view", Icon: "bi-eye", Variant: "primary"}
)

// RowView is one rendered table row. Every field is plain text; escaping is
// the renderer's job.
type RowView struct {
	ID       int
	Title    string
	Subtitle string
	Columns  []string
	Status   string
	Unread   bool
	Actions  []Action
}

// SchoolRow renders s as: name with description preview, students, clubs,
// status badge.
func SchoolRow(s models.School) RowView {
	return RowView{
		ID:       s.ID,
		Title:    s.Name,
		Subtitle: preview(s.Description, previewLen),
		Columns:  []string{s.StudentCount.String() + "+", s.ClubCount.String()},
		Status:   s.Status,
		Actions:  []Action{editAction, deleteAction},
	}
}

// EventRow renders e as: title with description preview, date, type,
// status badge.
func EventRow(e models.Event) RowView {
	return RowView{
		ID:       e.ID,
		Title:    e.Title,
		Subtitle: preview(e.Description, previewLen),
		Columns:  []string{FormatDate(e.EventDate), e.EventType},
		Status:   e.Status,
		Actions:  []Action{editAction, deleteAction},
	}
}

// TeamRow renders m as: name with description preview, role, status badge.
func TeamRow(m models.TeamMember) RowView {
	return RowView{
		ID:       m.ID,
		Title:    m.Name,
		Subtitle: preview(m.Description, previewLen),
		Columns:  []string{m.Role},
		Status:   m.Status,
		Actions:  []Action{editAction, deleteAction},
	}
}

// MessageRow renders m as: sender, email, message preview, date. Messages
// carry no status badge.
func MessageRow(m models.Message) RowView {
	return RowView{
		ID:      m.ID,
		Title:   m.Name,
		Columns: []string{m.Email, preview(m.Message, messagePreviewLen), FormatDate(m.Date)},
		Unread:  !m.Read,
		Actions: []Action{viewAction, deleteAction},
	}
}

// FormatDate renders an ISO date (or RFC 3339 timestamp) as "Jan 2, 2006".
// Anything else renders as "Invalid Date".
func FormatDate(s string) string {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return "Invalid Date"
}

// preview strips markup, keeps the first n characters and always appends
// an ellipsis, even when nothing was cut.
func preview(s string, n int) string {
	r := []rune(htmlsanitize.StripTags(s))
	if len(r) > n {
		r = r[:n]
	}
	return string(r) + "..."
}
