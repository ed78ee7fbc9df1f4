package domain

import "time"

// Experience is one professional experience record.
// Type is free text such as "Internship" or "Leadership".
type Experience struct {
	ID           string    `bson:"id" json:"id"`
	Position     string    `bson:"position" json:"position"`
	Company      string    `bson:"company" json:"company"`
	Location     string    `bson:"location" json:"location"`
	Duration     string    `bson:"duration" json:"duration"`
	Type         string    `bson:"type" json:"type"`
	Achievements []string  `bson:"achievements" json:"achievements"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

type ExperienceCreate struct {
	Position     string   `json:"position" validate:"required"`
	Company      string   `json:"company" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	Duration     string   `json:"duration" validate:"required"`
	Type         string   `json:"type" validate:"required"`
	Achievements []string `json:"achievements" validate:"required"`
}

func (c ExperienceCreate) Record(id string, createdAt time.Time) Experience {
	return Experience{
		ID:           id,
		Position:     c.Position,
		Company:      c.Company,
		Location:     c.Location,
		Duration:     c.Duration,
		Type:         c.Type,
		Achievements: c.Achievements,
		CreatedAt:    createdAt,
	}
}

type ExperiencePatch struct {
	Position     *string   `json:"position"`
	Company      *string   `json:"company"`
	Location     *string   `json:"location"`
	Duration     *string   `json:"duration"`
	Type         *string   `json:"type"`
	Achievements *[]string `json:"achievements"`
}

func (p ExperiencePatch) Fields() map[string]any {
	fields := map[string]any{}
	setField(fields, "position", p.Position)
	setField(fields, "company", p.Company)
	setField(fields, "location", p.Location)
	setField(fields, "duration", p.Duration)
	setField(fields, "type", p.Type)
	setField(fields, "achievements", p.Achievements)
	return fields
}
