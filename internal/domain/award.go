package domain

import "time"

type Award struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Year        string    `bson:"year" json:"year"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

type AwardCreate struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Year        string `json:"year" validate:"required"`
}

func (c AwardCreate) Record(id string, createdAt time.Time) Award {
	return Award{
		ID:          id,
		Title:       c.Title,
		Description: c.Description,
		Year:        c.Year,
		CreatedAt:   createdAt,
	}
}

type AwardPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Year        *string `json:"year"`
}

func (p AwardPatch) Fields() map[string]any {
	fields := map[string]any{}
	setField(fields, "title", p.Title)
	setField(fields, "description", p.Description)
	setField(fields, "year", p.Year)
	return fields
}
