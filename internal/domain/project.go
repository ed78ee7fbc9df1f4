package domain

import "time"

// Project is one project record. Category is free text and is filterable
// on listing with an exact match.
type Project struct {
	ID           string    `bson:"id" json:"id"`
	Title        string    `bson:"title" json:"title"`
	Duration     string    `bson:"duration" json:"duration"`
	Technologies []string  `bson:"technologies" json:"technologies"`
	Description  string    `bson:"description" json:"description"`
	Achievements []string  `bson:"achievements" json:"achievements"`
	Category     string    `bson:"category" json:"category"`
	GitHubURL    *string   `bson:"github_url" json:"github_url"`
	DemoURL      *string   `bson:"demo_url" json:"demo_url"`
	Featured     bool      `bson:"featured" json:"featured"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

type ProjectCreate struct {
	Title        string   `json:"title" validate:"required"`
	Duration     string   `json:"duration" validate:"required"`
	Technologies []string `json:"technologies" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Achievements []string `json:"achievements" validate:"required"`
	Category     string   `json:"category" validate:"required"`
	GitHubURL    *string  `json:"github_url"`
	DemoURL      *string  `json:"demo_url"`
	Featured     bool     `json:"featured"`
}

func (c ProjectCreate) Record(id string, createdAt time.Time) Project {
	return Project{
		ID:           id,
		Title:        c.Title,
		Duration:     c.Duration,
		Technologies: c.Technologies,
		Description:  c.Description,
		Achievements: c.Achievements,
		Category:     c.Category,
		GitHubURL:    c.GitHubURL,
		DemoURL:      c.DemoURL,
		Featured:     c.Featured,
		CreatedAt:    createdAt,
	}
}

type ProjectPatch struct {
	Title        *string   `json:"title"`
	Duration     *string   `json:"duration"`
	Technologies *[]string `json:"technologies"`
	Description  *string   `json:"description"`
	Achievements *[]string `json:"achievements"`
	Category     *string   `json:"category"`
	GitHubURL    *string   `json:"github_url"`
	DemoURL      *string   `json:"demo_url"`
	Featured     *bool     `json:"featured"`
}

func (p ProjectPatch) Fields() map[string]any {
	fields := map[string]any{}
	setField(fields, "title", p.Title)
	setField(fields, "duration", p.Duration)
	setField(fields, "technologies", p.Technologies)
	setField(fields, "description", p.Description)
	setField(fields, "achievements", p.Achievements)
	setField(fields, "category", p.Category)
	setField(fields, "github_url", p.GitHubURL)
	setField(fields, "demo_url", p.DemoURL)
	setField(fields, "featured", p.Featured)
	return fields
}
