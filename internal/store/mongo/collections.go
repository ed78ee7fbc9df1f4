package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/likith1908/portfolio-api/internal/domain"
)

// Each collection resource gets the same four operations. Identity and
// creation timestamp are assigned here, at the storage boundary, so no
// caller can smuggle them in.

func (s *Store) ListEducation(ctx context.Context) ([]domain.Education, error) {
	return listNewest[domain.Education](ctx, s.coll(collEducation), nil)
}

func (s *Store) CreateEducation(ctx context.Context, c domain.EducationCreate) (string, error) {
	rec := c.Record(uuid.NewString(), time.Now().UTC())
	if err := insertRecord(ctx, s.coll(collEducation), rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (s *Store) UpdateEducation(ctx context.Context, id string, fields map[string]any) error {
	return updateByID(ctx, s.coll(collEducation), id, fields)
}

func (s *Store) DeleteEducation(ctx context.Context, id string) error {
	return deleteByID(ctx, s.coll(collEducation), id)
}

func (s *Store) ListExperience(ctx context.Context) ([]domain.Experience, error) {
	return listNewest[domain.Experience](ctx, s.coll(collExperience), nil)
}

func (s *Store) CreateExperience(ctx context.Context, c domain.ExperienceCreate) (string, error) {
	rec := c.Record(uuid.NewString(), time.Now().UTC())
	if err := insertRecord(ctx, s.coll(collExperience), rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (s *Store) UpdateExperience(ctx context.Context, id string, fields map[string]any) error {
	return updateByID(ctx, s.coll(collExperience), id, fields)
}

func (s *Store) DeleteExperience(ctx context.Context, id string) error {
	return deleteByID(ctx, s.coll(collExperience), id)
}

func (s *Store) ListProjects(ctx context.Context, category string) ([]domain.Project, error) {
	var filter bson.M
	if category != "" {
		filter = bson.M{"category": category}
	}
	return listNewest[domain.Project](ctx, s.coll(collProjects), filter)
}

func (s *Store) CreateProject(ctx context.Context, c domain.ProjectCreate) (string, error) {
	rec := c.Record(uuid.NewString(), time.Now().UTC())
	if err := insertRecord(ctx, s.coll(collProjects), rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (s *Store) UpdateProject(ctx context.Context, id string, fields map[string]any) error {
	return updateByID(ctx, s.coll(collProjects), id, fields)
}

func (s *Store) DeleteProject(ctx context.Context, id string) error {
	return deleteByID(ctx, s.coll(collProjects), id)
}

func (s *Store) ListCertifications(ctx context.Context) ([]domain.Certification, error) {
	return listNewest[domain.Certification](ctx, s.coll(collCertifications), nil)
}

func (s *Store) CreateCertification(ctx context.Context, c domain.CertificationCreate) (string, error) {
	rec := c.Record(uuid.NewString(), time.Now().UTC())
	if err := insertRecord(ctx, s.coll(collCertifications), rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (s *Store) UpdateCertification(ctx context.Context, id string, fields map[string]any) error {
	return updateByID(ctx, s.coll(collCertifications), id, fields)
}

func (s *Store) DeleteCertification(ctx context.Context, id string) error {
	return deleteByID(ctx, s.coll(collCertifications), id)
}

func (s *Store) ListAwards(ctx context.Context) ([]domain.Award, error) {
	return listNewest[domain.Award](ctx, s.coll(collAwards), nil)
}

func (s *Store) CreateAward(ctx context.Context, c domain.AwardCreate) (string, error) {
	rec := c.Record(uuid.NewString(), time.Now().UTC())
	if err := insertRecord(ctx, s.coll(collAwards), rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (s *Store) UpdateAward(ctx context.Context, id string, fields map[string]any) error {
	return updateByID(ctx, s.coll(collAwards), id, fields)
}

func (s *Store) DeleteAward(ctx context.Context, id string) error {
	return deleteByID(ctx, s.coll(collAwards), id)
}

func (s *Store) ListPatents(ctx context.Context) ([]domain.Patent, error) {
	return listNewest[domain.Patent](ctx, s.coll(collPatents), nil)
}

func (s *Store) CreatePatent(ctx context.Context, c domain.PatentCreate) (string, error) {
	rec := c.Record(uuid.NewString(), time.Now().UTC())
	if err := insertRecord(ctx, s.coll(collPatents), rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (s *Store) UpdatePatent(ctx context.Context, id string, fields map[string]any) error {
	return updateByID(ctx, s.coll(collPatents), id, fields)
}

func (s *Store) DeletePatent(ctx context.Context, id string) error {
	return deleteByID(ctx, s.coll(collPatents), id)
}

func (s *Store) CreateContactSubmission(ctx context.Context, c domain.ContactCreate) (string, error) {
	rec := c.Record(uuid.NewString(), time.Now().UTC())
	if err := insertRecord(ctx, s.coll(collContacts), rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (s *Store) ListContactSubmissions(ctx context.Context) ([]domain.ContactSubmission, error) {
	return listNewest[domain.ContactSubmission](ctx, s.coll(collContacts), nil)
}
