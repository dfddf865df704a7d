// internal/app/admin/messages.go
package admin

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dalemusser/stemboard/internal/app/system/notify"
	"github.com/dalemusser/stemboard/internal/domain/models"
	"go.uber.org/zap"
)

// RecentLimit is how many messages the dashboard overview lists.
const RecentLimit = 5

// MessageStats summarizes the inbox.
type MessageStats struct {
	Total  int
	Unread int
	Read   int
	Today  int
}

// LoadMessages redraws the messages table in collection order.
func (c *Controller) LoadMessages() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadMessages()
}

func (c *Controller) loadMessages() {
	all := c.st.Messages.All()
	rows := make([]RowView, 0, len(all))
	for _, m := range all {
		rows = append(rows, MessageRow(m))
	}
	c.ui.RenderTable(models.KindMessage, rows)
}

// ViewMessage shows the full message through dlg and marks it read.
func (c *Controller) ViewMessage(id int, dlg Dialogs) (models.Message, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.st.Messages.Find(id)
	if !ok {
		c.notFound("view", models.KindMessage, id)
		return m, false
	}
	if !m.Read {
		m.Read = true
		c.st.Messages.Replace(m)
		c.loadMessages()
	}
	dlg.Alert(MessageText(m))
	return m, true
}

// MessageText is the body of the view-message dialog.
func MessageText(m models.Message) string {
	return fmt.Sprintf("Message from %s (%s):\n\n%s", m.Name, m.Email, m.Message)
}

// MarkMessageRead sets the read flag on the message with id.
func (c *Controller) MarkMessageRead(id int, read bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.st.Messages.Find(id)
	if !ok {
		c.notFound("mark read", models.KindMessage, id)
		return false
	}
	m.Read = read
	c.st.Messages.Replace(m)
	c.loadMessages()

	if read {
		c.notes.Show("Message marked as read!", notify.Success)
	} else {
		c.notes.Show("Message marked as unread!", notify.Success)
	}
	return true
}

// DeleteMessage removes the message with id once dlg confirms.
func (c *Controller) DeleteMessage(id int, dlg Dialogs) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !dlg.Confirm("Are you sure you want to delete this message?") {
		return false
	}
	if c.st.Messages.Remove(id) == 0 {
		c.notFound("delete", models.KindMessage, id)
		return false
	}
	c.loadMessages()
	c.updateStats()
	c.notes.Show("Message deleted successfully!", notify.Success)
	c.log.Info("message deleted", zap.Int("id", id))
	return true
}

// SubmitMessage records a contact-form submission dated today.
func (c *Controller) SubmitMessage(name, email, body string) models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.st.Messages.NextID()
	c.checkNextID(models.KindMessage, id, c.st.Messages.Has(id))

	m := models.Message{
		ID:      id,
		Name:    strings.TrimSpace(name),
		Email:   strings.TrimSpace(email),
		Message: strings.TrimSpace(body),
		Date:    c.today(),
	}
	c.st.Messages.Append(m)
	c.loadMessages()
	c.updateStats()
	c.notes.Show("New message from "+m.Name, notify.Success)
	c.log.Info("message received", zap.Int("id", m.ID))
	return m
}

// Stats counts total, unread, read and today's messages.
func (c *Controller) Stats() MessageStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	today := c.today()
	var st MessageStats
	for _, m := range c.st.Messages.All() {
		st.Total++
		if m.Read {
			st.Read++
		} else {
			st.Unread++
		}
		if strings.HasPrefix(m.Date, today) {
			st.Today++
		}
	}
	return st
}

// RecentMessages returns up to n messages, newest date first. Messages with
// the same date keep their collection order.
func (c *Controller) RecentMessages(n int) []models.Message {
	c.mu.Lock()
	all := c.st.Messages.All()
	c.mu.Unlock()

	slices.SortStableFunc(all, func(a, b models.Message) int {
		return strings.Compare(b.Date, a.Date)
	})
	if n >= 0 && len(all) > n {
		all = all[:n]
	}
	return all
}

// Message returns the message with id without marking it read.
func (c *Controller) Message(id int) (models.Message, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.Messages.Find(id)
}

// Messages returns a copy of the message collection.
func (c *Controller) Messages() []models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.Messages.All()
}
