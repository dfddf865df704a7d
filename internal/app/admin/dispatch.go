// internal/app/admin/dispatch.go
package admin

import "github.com/dalemusser/stemboard/internal/domain/models"

// Edit runs the edit stub for kind. Messages cannot be edited; ok is false
// for them and for unknown kinds.
func (c *Controller) Edit(kind models.Kind, id int) (ok bool) {
	switch kind {
	case models.KindSchool:
		c.EditSchool(id)
	case models.KindEvent:
		c.EditEvent(id)
	case models.KindTeamMember:
		c.EditTeamMember(id)
	default:
		return false
	}
	return true
}

// Delete runs Delete<Kind> for kind and reports whether a record was removed.
func (c *Controller) Delete(kind models.Kind, id int, dlg Dialogs) bool {
	switch kind {
	case models.KindSchool:
		return c.DeleteSchool(id, dlg)
	case models.KindEvent:
		return c.DeleteEvent(id, dlg)
	case models.KindTeamMember:
		return c.DeleteTeamMember(id, dlg)
	case models.KindMessage:
		return c.DeleteMessage(id, dlg)
	}
	return false
}

// Add runs Add<Kind> for the kinds that have a creation form and returns
// the new record's id.
func (c *Controller) Add(kind models.Kind, form Form) (id int, ok bool) {
	switch kind {
	case models.KindSchool:
		return c.AddSchool(form).ID, true
	case models.KindEvent:
		return c.AddEvent(form).ID, true
	case models.KindTeamMember:
		return c.AddTeamMember(form).ID, true
	}
	return 0, false
}
