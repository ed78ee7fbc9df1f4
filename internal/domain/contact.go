package domain

import "time"

// ContactSubmission is one submitted contact-form message. Submissions
// are created through the public API and only ever listed afterwards;
// they are never updated or deleted through it. Read starts out false
// and is reserved for out-of-band triage.
type ContactSubmission struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Subject   string    `bson:"subject" json:"subject"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	Read      bool      `bson:"read" json:"read"`
}

type ContactCreate struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

func (c ContactCreate) Record(id string, createdAt time.Time) ContactSubmission {
	return ContactSubmission{
		ID:        id,
		Name:      c.Name,
		Email:     c.Email,
		Subject:   c.Subject,
		Message:   c.Message,
		CreatedAt: createdAt,
		Read:      false,
	}
}
