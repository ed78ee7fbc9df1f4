// Package store defines the contract between the HTTP handlers and the
// backing document store. Any backend that implements Store can serve
// the API; the MongoDB implementation lives in store/mongo and an
// in-memory implementation used by tests lives in store/memory.
package store

import (
	"context"
	"errors"

	"github.com/likith1908/portfolio-api/internal/domain"
)

// MaxListResults caps every listing, regardless of collection size.
const MaxListResults = 100

var (
	// ErrNotFound means no document matched the requested id, or a
	// singleton document does not exist yet.
	ErrNotFound = errors.New("document not found")

	// ErrNotModified means the document exists but the update changed
	// nothing (every supplied field already held the requested value).
	ErrNotModified = errors.New("document not modified")
)

// Store is the record access layer. Listings return records ordered by
// descending creation timestamp, capped at MaxListResults. Create
// operations assign the application id and the creation timestamp
// server-side and return the new id. Update applies only the supplied
// fields. Singleton resources (profile, skills) are replaced as a
// whole, upserting when absent.
type Store interface {
	GetProfile(ctx context.Context) (domain.Profile, error)
	ReplaceProfile(ctx context.Context, fields map[string]any) error

	GetSkills(ctx context.Context) (domain.Skills, error)
	ReplaceSkills(ctx context.Context, fields map[string]any) error

	ListEducation(ctx context.Context) ([]domain.Education, error)
	CreateEducation(ctx context.Context, c domain.EducationCreate) (string, error)
	UpdateEducation(ctx context.Context, id string, fields map[string]any) error
	DeleteEducation(ctx context.Context, id string) error

	ListExperience(ctx context.Context) ([]domain.Experience, error)
	CreateExperience(ctx context.Context, c domain.ExperienceCreate) (string, error)
	UpdateExperience(ctx context.Context, id string, fields map[string]any) error
	DeleteExperience(ctx context.Context, id string) error

	// ListProjects filters by exact category match when category is
	// non-empty.
	ListProjects(ctx context.Context, category string) ([]domain.Project, error)
	CreateProject(ctx context.Context, c domain.ProjectCreate) (string, error)
	UpdateProject(ctx context.Context, id string, fields map[string]any) error
	DeleteProject(ctx context.Context, id string) error

	ListCertifications(ctx context.Context) ([]domain.Certification, error)
	CreateCertification(ctx context.Context, c domain.CertificationCreate) (string, error)
	UpdateCertification(ctx context.Context, id string, fields map[string]any) error
	DeleteCertification(ctx context.Context, id string) error

	ListAwards(ctx context.Context) ([]domain.Award, error)
	CreateAward(ctx context.Context, c domain.AwardCreate) (string, error)
	UpdateAward(ctx context.Context, id string, fields map[string]any) error
	DeleteAward(ctx context.Context, id string) error

	ListPatents(ctx context.Context) ([]domain.Patent, error)
	CreatePatent(ctx context.Context, c domain.PatentCreate) (string, error)
	UpdatePatent(ctx context.Context, id string, fields map[string]any) error
	DeletePatent(ctx context.Context, id string) error

	CreateContactSubmission(ctx context.Context, c domain.ContactCreate) (string, error)
	ListContactSubmissions(ctx context.Context) ([]domain.ContactSubmission, error)

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
