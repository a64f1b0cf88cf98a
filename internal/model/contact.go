package model

import (
	"strings"
	"time"
)

// ContactStatus is the outcome of a contact form submission.
type ContactStatus string

const (
	// ContactStatusAccepted means the request was accepted locally; nothing is sent anywhere.
	ContactStatusAccepted ContactStatus = "accepted"
)

// ContactRequest is what a visitor types into the contact form.
// Only presence is checked; content is taken as is.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email,omitempty"`
	Message string `json:"message,omitempty"`
}

// Normalize trims surrounding whitespace from every field.
func (c ContactRequest) Normalize() ContactRequest {
	return ContactRequest{
		Name:    strings.TrimSpace(c.Name),
		Phone:   strings.TrimSpace(c.Phone),
		Email:   strings.TrimSpace(c.Email),
		Message: strings.TrimSpace(c.Message),
	}
}

// ContactReceipt acknowledges a simulated submission.
type ContactReceipt struct {
	Reference   string        `json:"reference"` // ULID
	Status      ContactStatus `json:"status"`
	SubmittedAt time.Time     `json:"submitted_at"`
}
