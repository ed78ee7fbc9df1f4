package domain

import "time"

// Education is one education record. ID and CreatedAt are assigned by
// the store at insertion time and are never client-supplied.
type Education struct {
	ID          string    `bson:"id" json:"id"`
	Institution string    `bson:"institution" json:"institution"`
	Degree      string    `bson:"degree" json:"degree"`
	Location    string    `bson:"location" json:"location"`
	Duration    string    `bson:"duration" json:"duration"`
	CGPA        string    `bson:"cgpa" json:"cgpa"`
	Status      *string   `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

type EducationCreate struct {
	Institution string  `json:"institution" validate:"required"`
	Degree      string  `json:"degree" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	Duration    string  `json:"duration" validate:"required"`
	CGPA        string  `json:"cgpa" validate:"required"`
	Status      *string `json:"status"`
}

// Record builds the stored document from a create payload.
func (c EducationCreate) Record(id string, createdAt time.Time) Education {
	return Education{
		ID:          id,
		Institution: c.Institution,
		Degree:      c.Degree,
		Location:    c.Location,
		Duration:    c.Duration,
		CGPA:        c.CGPA,
		Status:      c.Status,
		CreatedAt:   createdAt,
	}
}

type EducationPatch struct {
	Institution *string `json:"institution"`
	Degree      *string `json:"degree"`
	Location    *string `json:"location"`
	Duration    *string `json:"duration"`
	CGPA        *string `json:"cgpa"`
	Status      *string `json:"status"`
}

func (p EducationPatch) Fields() map[string]any {
	fields := map[string]any{}
	setField(fields, "institution", p.Institution)
	setField(fields, "degree", p.Degree)
	setField(fields, "location", p.Location)
	setField(fields, "duration", p.Duration)
	setField(fields, "cgpa", p.CGPA)
	setField(fields, "status", p.Status)
	return fields
}
