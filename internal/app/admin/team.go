// internal/app/admin/team.go
package admin

import (
	"github.com/dalemusser/stemboard/internal/app/system/notify"
	"github.com/dalemusser/stemboard/internal/domain/models"
	"go.uber.org/zap"
)

// LoadTeam redraws the team table in collection order.
func (c *Controller) LoadTeam() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadTeam()
}

func (c *Controller) loadTeam() {
	all := c.st.Team.All()
	rows := make([]RowView, 0, len(all))
	for _, m := range all {
		rows = append(rows, TeamRow(m))
	}
	c.ui.RenderTable(models.KindTeamMember, rows)
}

// AddTeamMember appends an active team member built from the addTeamForm
// fields.
func (c *Controller) AddTeamMember(form Form) models.TeamMember {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.st.Team.NextID()
	c.checkNextID(models.KindTeamMember, id, c.st.Team.Has(id))

	m := models.TeamMember{
		ID:          id,
		Name:        form.Get("name"),
		Role:        form.Get("role"),
		Description: form.Get("description"),
		Image:       form.Get("image"),
		Status:      models.StatusActive,
	}
	c.st.Team.Append(m)
	c.loadTeam()
	c.updateStats()

	c.ui.CloseDialog(AddTeamModal)
	c.ui.ResetForm(AddTeamForm)
	c.notes.Show("Team member added successfully!", notify.Success)
	c.log.Info("team member added", zap.Int("id", m.ID), zap.String("name", m.Name))
	return m
}

// EditTeamMember announces the member being edited. It changes nothing.
func (c *Controller) EditTeamMember(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.st.Team.Find(id)
	if !ok {
		c.notFound("edit", models.KindTeamMember, id)
		return
	}
	c.notes.Show("Editing team member: "+m.Name, notify.Info)
}

// DeleteTeamMember removes the member with id once dlg confirms.
func (c *Controller) DeleteTeamMember(id int, dlg Dialogs) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !dlg.Confirm("Are you sure you want to delete this team member?") {
		return false
	}
	if c.st.Team.Remove(id) == 0 {
		c.notFound("delete", models.KindTeamMember, id)
		return false
	}
	c.loadTeam()
	c.updateStats()
	c.notes.Show("Team member deleted successfully!", notify.Success)
	c.log.Info("team member deleted", zap.Int("id", id))
	return true
}

// Team returns a copy of the team collection.
func (c *Controller) Team() []models.TeamMember {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.Team.All()
}
