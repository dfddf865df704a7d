// internal/app/admin/events.go
package admin

import (
	"strings"

	"github.com/dalemusser/stemboard/internal/app/system/notify"
	"github.com/dalemusser/stemboard/internal/domain/models"
	"go.uber.org/zap"
)

// LoadEvents redraws the events table in collection order.
func (c *Controller) LoadEvents() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadEvents()
}

func (c *Controller) loadEvents() {
	all := c.st.Events.All()
	rows := make([]RowView, 0, len(all))
	for _, e := range all {
		rows = append(rows, EventRow(e))
	}
	c.ui.RenderTable(models.KindEvent, rows)
}

// AddEvent appends an event built from the addEventForm fields. The status
// comes from the form; a blank one means upcoming.
func (c *Controller) AddEvent(form Form) models.Event {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.st.Events.NextID()
	c.checkNextID(models.KindEvent, id, c.st.Events.Has(id))

	status := strings.TrimSpace(form.Get("status"))
	if status == "" {
		status = models.EventUpcoming
	}
	e := models.Event{
		ID:               id,
		Title:            form.Get("title"),
		Description:      form.Get("description"),
		EventDate:        form.Get("event_date"),
		EventType:        form.Get("event_type"),
		Status:           status,
		RegistrationLink: form.Get("registration_link"),
		GalleryLink:      form.Get("gallery_link"),
	}
	c.st.Events.Append(e)
	c.loadEvents()
	c.updateStats()

	c.ui.CloseDialog(AddEventModal)
	c.ui.ResetForm(AddEventForm)
	c.notes.Show("Event added successfully!", notify.Success)
	c.log.Info("event added", zap.Int("id", e.ID), zap.String("title", e.Title))
	return e
}

// EditEvent announces the event being edited. It changes nothing.
func (c *Controller) EditEvent(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.st.Events.Find(id)
	if !ok {
		c.notFound("edit", models.KindEvent, id)
		return
	}
	c.notes.Show("Editing event: "+e.Title, notify.Info)
}

// DeleteEvent removes the event with id once dlg confirms.
func (c *Controller) DeleteEvent(id int, dlg Dialogs) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !dlg.Confirm("Are you sure you want to delete this event?") {
		return false
	}
	if c.st.Events.Remove(id) == 0 {
		c.notFound("delete", models.KindEvent, id)
		return false
	}
	c.loadEvents()
	c.updateStats()
	c.notes.Show("Event deleted successfully!", notify.Success)
	c.log.Info("event deleted", zap.Int("id", id))
	return true
}

// Events returns a copy of the event collection.
func (c *Controller) Events() []models.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.Events.All()
}
