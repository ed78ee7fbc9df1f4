package domain

import "time"

type Patent struct {
	ID           string    `bson:"id" json:"id"`
	Title        string    `bson:"title" json:"title"`
	PatentNumber string    `bson:"patent_number" json:"patent_number"`
	PublishDate  string    `bson:"publish_date" json:"publish_date"`
	Description  string    `bson:"description" json:"description"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

type PatentCreate struct {
	Title        string `json:"title" validate:"required"`
	PatentNumber string `json:"patent_number" validate:"required"`
	PublishDate  string `json:"publish_date" validate:"required"`
	Description  string `json:"description" validate:"required"`
}

func (c PatentCreate) Record(id string, createdAt time.Time) Patent {
	return Patent{
		ID:           id,
		Title:        c.Title,
		PatentNumber: c.PatentNumber,
		PublishDate:  c.PublishDate,
		Description:  c.Description,
		CreatedAt:    createdAt,
	}
}

type PatentPatch struct {
	Title        *string `json:"title"`
	PatentNumber *string `json:"patent_number"`
	PublishDate  *string `json:"publish_date"`
	Description  *string `json:"description"`
}

func (p PatentPatch) Fields() map[string]any {
	fields := map[string]any{}
	setField(fields, "title", p.Title)
	setField(fields, "patent_number", p.PatentNumber)
	setField(fields, "publish_date", p.PublishDate)
	setField(fields, "description", p.Description)
	return fields
}
