// internal/app/admin/schools.go
package admin

import (
	"github.com/dalemusser/stemboard/internal/app/system/notify"
	"github.com/dalemusser/stemboard/internal/domain/models"
	"go.uber.org/zap"
)

// LoadSchools redraws the schools table in collection order.
func (c *Controller) LoadSchools() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadSchools()
}

func (c *Controller) loadSchools() {
	all := c.st.Schools.All()
	rows := make([]RowView, 0, len(all))
	for _, s := range all {
		rows = append(rows, SchoolRow(s))
	}
	c.ui.RenderTable(models.KindSchool, rows)
}

// AddSchool appends a school built from the addSchoolForm fields. The new
// school is always active; counts that do not parse are kept as NaN.
func (c *Controller) AddSchool(form Form) models.School {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.st.Schools.NextID()
	c.checkNextID(models.KindSchool, id, c.st.Schools.Has(id))

	s := models.School{
		ID:           id,
		Name:         form.Get("name"),
		Description:  form.Get("description"),
		StudentCount: models.ParseLooseInt(form.Get("student_count")),
		ClubCount:    models.ParseLooseInt(form.Get("club_count")),
		Icon:         form.Get("icon"),
		Status:       models.StatusActive,
	}
	c.st.Schools.Append(s)
	c.loadSchools()
	c.updateStats()

	c.ui.CloseDialog(AddSchoolModal)
	c.ui.ResetForm(AddSchoolForm)
	c.notes.Show("School added successfully!", notify.Success)
	c.log.Info("school added", zap.Int("id", s.ID), zap.String("name", s.Name))
	return s
}

// EditSchool announces the school being edited. It changes nothing.
func (c *Controller) EditSchool(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.st.Schools.Find(id)
	if !ok {
		c.notFound("edit", models.KindSchool, id)
		return
	}
	c.notes.Show("Editing school: "+s.Name, notify.Info)
}

// DeleteSchool removes the school with id once dlg confirms. It reports
// whether anything was removed.
func (c *Controller) DeleteSchool(id int, dlg Dialogs) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !dlg.Confirm("Are you sure you want to delete this school?") {
		return false
	}
	if c.st.Schools.Remove(id) == 0 {
		c.notFound("delete", models.KindSchool, id)
		return false
	}
	c.loadSchools()
	c.updateStats()
	c.notes.Show("School deleted successfully!", notify.Success)
	c.log.Info("school deleted", zap.Int("id", id))
	return true
}

// Schools returns a copy of the school collection.
func (c *Controller) Schools() []models.School {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.Schools.All()
}
