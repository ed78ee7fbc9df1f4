package domain

import "time"

type Certification struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Issuer      string    `bson:"issuer" json:"issuer"`
	Date        string    `bson:"date" json:"date"`
	Description string    `bson:"description" json:"description"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

type CertificationCreate struct {
	Title       string `json:"title" validate:"required"`
	Issuer      string `json:"issuer" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Description string `json:"description" validate:"required"`
}

func (c CertificationCreate) Record(id string, createdAt time.Time) Certification {
	return Certification{
		ID:          id,
		Title:       c.Title,
		Issuer:      c.Issuer,
		Date:        c.Date,
		Description: c.Description,
		CreatedAt:   createdAt,
	}
}

type CertificationPatch struct {
	Title       *string `json:"title"`
	Issuer      *string `json:"issuer"`
	Date        *string `json:"date"`
	Description *string `json:"description"`
}

func (p CertificationPatch) Fields() map[string]any {
	fields := map[string]any{}
	setField(fields, "title", p.Title)
	setField(fields, "issuer", p.Issuer)
	setField(fields, "date", p.Date)
	setField(fields, "description", p.Description)
	return fields
}
