// internal/domain/models/message.go
package models

// Message is a contact-form submission. Messages have no status; they stay
// until deleted. Read is flipped when an admin opens the message.
type Message struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Date    string `json:"date"`
	Read    bool   `json:"read"`
}

func (m Message) RecordID() int { return m.ID }
