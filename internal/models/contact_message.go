package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContactStatus represents the delivery status of a contact message
type ContactStatus string

const (
	ContactStatusPending ContactStatus = "pending"
	ContactStatusSent    ContactStatus = "sent"
	ContactStatusFailed  ContactStatus = "failed"
)

// ContactForm is the payload submitted from the contact section
type ContactForm struct {
	FromName  string `form:"from_name" json:"from_name" binding:"required,max=100"`
	FromEmail string `form:"from_email" json:"from_email" binding:"required,email,max=254"`
	Message   string `form:"message" json:"message" binding:"required,max=5000"`
}

// ContactMessage is a stored contact form submission
type ContactMessage struct {
	ID         string        `json:"id"`
	FromName   string        `json:"from_name"`
	FromEmail  string        `json:"from_email"`
	Message    string        `json:"message"`
	Status     ContactStatus `json:"status"`
	RelayError *string       `json:"relay_error"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// HasBlankField reports whether a field holds nothing but whitespace.
// Binding's required check passes such values, but they are stored trimmed.
func (f ContactForm) HasBlankField() bool {
	return strings.TrimSpace(f.FromName) == "" ||
		strings.TrimSpace(f.FromEmail) == "" ||
		strings.TrimSpace(f.Message) == ""
}

// NewContactMessage creates a pending ContactMessage with a generated UUID
func NewContactMessage(form ContactForm) *ContactMessage {
	now := time.Now()
	return &ContactMessage{
		ID:        uuid.New().String(),
		FromName:  strings.TrimSpace(form.FromName),
		FromEmail: strings.TrimSpace(form.FromEmail),
		Message:   strings.TrimSpace(form.Message),
		Status:    ContactStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MarkSent marks the message as delivered to the relay
func (m *ContactMessage) MarkSent() {
	m.Status = ContactStatusSent
	m.RelayError = nil
	m.UpdatedAt = time.Now()
}

// MarkFailed marks the message as rejected by the relay
func (m *ContactMessage) MarkFailed(reason string) {
	m.Status = ContactStatusFailed
	m.RelayError = &reason
	m.UpdatedAt = time.Now()
}

// IsSent checks if the message was delivered
func (m *ContactMessage) IsSent() bool {
	return m.Status == ContactStatusSent
}

// EmailPayload is the template parameter set forwarded to the email relay
type EmailPayload struct {
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	Message   string `json:"message"`
	ToName    string `json:"to_name"`
	ToEmail   string `json:"to_email"`
}
