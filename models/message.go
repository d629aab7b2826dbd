package models

import "time"

// ContactMessage is one submission of the public contact form.
type ContactMessage struct {
	// ID is the unique identifier of the record in the database.
	ID string `json:"id"`

	// FullName is the sender's name as typed into the form.
	FullName string `json:"fullName"`

	// Phone is the sender's phone number.
	Phone string `json:"phone,omitempty"`

	// Email is the sender's email address.
	Email string `json:"email,omitempty"`

	// Message is the free-form message body.
	Message string `json:"message"`

	// CreatedAt is the submission timestamp.
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}
