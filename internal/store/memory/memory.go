// Package memory implements store.Store entirely in process memory.
// It mirrors the MongoDB implementation's semantics (id and timestamp
// assignment, newest-first capped listings, field-level patches,
// singleton replace) and backs the handler and lifecycle tests.
package memory

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/likith1908/portfolio-api/internal/domain"
	"github.com/likith1908/portfolio-api/internal/store"
)

type Store struct {
	mu sync.RWMutex

	profile bson.M
	skills  bson.M

	education      []domain.Education
	experience     []domain.Experience
	projects       []domain.Project
	certifications []domain.Certification
	awards         []domain.Award
	patents        []domain.Patent
	contacts       []domain.ContactSubmission
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Ping(context.Context) error  { return nil }
func (s *Store) Close(context.Context) error { return nil }

// newStamp truncates to milliseconds to match BSON datetime precision,
// so records survive a marshal round trip unchanged.
func newStamp() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func listNewest[T any](recs []T, createdAt func(T) time.Time, keep func(T) bool) []T {
	out := make([]T, 0, len(recs))
	for _, r := range recs {
		if keep == nil || keep(r) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return createdAt(out[i]).After(createdAt(out[j]))
	})
	if len(out) > store.MaxListResults {
		out = out[:store.MaxListResults]
	}
	return out
}

// patchRecord applies fields to rec through a BSON round trip, the same
// document-level merge a $set performs.
func patchRecord[T any](rec T, fields map[string]any) (updated T, changed bool, err error) {
	raw, err := bson.Marshal(rec)
	if err != nil {
		return rec, false, fmt.Errorf("marshaling record: %w", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return rec, false, fmt.Errorf("unmarshaling record: %w", err)
	}
	// Compare against a round-tripped copy of the original so both sides
	// share the same BSON representation of times and slices.
	var base T
	if err := bson.Unmarshal(raw, &base); err != nil {
		return rec, false, fmt.Errorf("unmarshaling record: %w", err)
	}
	for k, v := range fields {
		doc[k] = v
	}
	merged, err := bson.Marshal(doc)
	if err != nil {
		return rec, false, fmt.Errorf("marshaling patched record: %w", err)
	}
	if err := bson.Unmarshal(merged, &updated); err != nil {
		return rec, false, fmt.Errorf("unmarshaling patched record: %w", err)
	}
	return updated, !reflect.DeepEqual(updated, base), nil
}

func updateByID[T any](recs []T, id func(T) string, target string, fields map[string]any) error {
	for i, r := range recs {
		if id(r) != target {
			continue
		}
		updated, changed, err := patchRecord(r, fields)
		if err != nil {
			return err
		}
		if !changed {
			return store.ErrNotModified
		}
		recs[i] = updated
		return nil
	}
	return store.ErrNotFound
}

func deleteByID[T any](recs []T, id func(T) string, target string) ([]T, error) {
	for i, r := range recs {
		if id(r) == target {
			return append(recs[:i], recs[i+1:]...), nil
		}
	}
	return recs, store.ErrNotFound
}

func getSingleton[T any](doc bson.M) (T, error) {
	var rec T
	if doc == nil {
		return rec, store.ErrNotFound
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return rec, fmt.Errorf("marshaling singleton document: %w", err)
	}
	if err := bson.Unmarshal(raw, &rec); err != nil {
		return rec, fmt.Errorf("decoding singleton document: %w", err)
	}
	return rec, nil
}

func (s *Store) GetProfile(ctx context.Context) (domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return getSingleton[domain.Profile](s.profile)
}

func (s *Store) ReplaceProfile(ctx context.Context, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = bson.M{}
	for k, v := range fields {
		s.profile[k] = v
	}
	return nil
}

func (s *Store) GetSkills(ctx context.Context) (domain.Skills, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return getSingleton[domain.Skills](s.skills)
}

func (s *Store) ReplaceSkills(ctx context.Context, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skills = bson.M{}
	for k, v := range fields {
		s.skills[k] = v
	}
	return nil
}

func (s *Store) ListEducation(ctx context.Context) ([]domain.Education, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listNewest(s.education, func(r domain.Education) time.Time { return r.CreatedAt }, nil), nil
}

func (s *Store) CreateEducation(ctx context.Context, c domain.EducationCreate) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := c.Record(uuid.NewString(), newStamp())
	s.education = append(s.education, rec)
	return rec.ID, nil
}

func (s *Store) UpdateEducation(ctx context.Context, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return updateByID(s.education, func(r domain.Education) string { return r.ID }, id, fields)
}

func (s *Store) DeleteEducation(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs, err := deleteByID(s.education, func(r domain.Education) string { return r.ID }, id)
	s.education = recs
	return err
}

func (s *Store) ListExperience(ctx context.Context) ([]domain.Experience, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listNewest(s.experience, func(r domain.Experience) time.Time { return r.CreatedAt }, nil), nil
}

func (s *Store) CreateExperience(ctx context.Context, c domain.ExperienceCreate) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := c.Record(uuid.NewString(), newStamp())
	s.experience = append(s.experience, rec)
	return rec.ID, nil
}

func (s *Store) UpdateExperience(ctx context.Context, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return updateByID(s.experience, func(r domain.Experience) string { return r.ID }, id, fields)
}

func (s *Store) DeleteExperience(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs, err := deleteByID(s.experience, func(r domain.Experience) string { return r.ID }, id)
	s.experience = recs
	return err
}

func (s *Store) ListProjects(ctx context.Context, category string) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var keep func(domain.Project) bool
	if category != "" {
		keep = func(r domain.Project) bool { return r.Category == category }
	}
	return listNewest(s.projects, func(r domain.Project) time.Time { return r.CreatedAt }, keep), nil
}

func (s *Store) CreateProject(ctx context.Context, c domain.ProjectCreate) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := c.Record(uuid.NewString(), newStamp())
	s.projects = append(s.projects, rec)
	return rec.ID, nil
}

func (s *Store) UpdateProject(ctx context.Context, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return updateByID(s.projects, func(r domain.Project) string { return r.ID }, id, fields)
}

func (s *Store) DeleteProject(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs, err := deleteByID(s.projects, func(r domain.Project) string { return r.ID }, id)
	s.projects = recs
	return err
}

func (s *Store) ListCertifications(ctx context.Context) ([]domain.Certification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listNewest(s.certifications, func(r domain.Certification) time.Time { return r.CreatedAt }, nil), nil
}

func (s *Store) CreateCertification(ctx context.Context, c domain.CertificationCreate) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := c.Record(uuid.NewString(), newStamp())
	s.certifications = append(s.certifications, rec)
	return rec.ID, nil
}

func (s *Store) UpdateCertification(ctx context.Context, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return updateByID(s.certifications, func(r domain.Certification) string { return r.ID }, id, fields)
}

func (s *Store) DeleteCertification(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs, err := deleteByID(s.certifications, func(r domain.Certification) string { return r.ID }, id)
	s.certifications = recs
	return err
}

func (s *Store) ListAwards(ctx context.Context) ([]domain.Award, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listNewest(s.awards, func(r domain.Award) time.Time { return r.CreatedAt }, nil), nil
}

func (s *Store) CreateAward(ctx context.Context, c domain.AwardCreate) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := c.Record(uuid.NewString(), newStamp())
	s.awards = append(s.awards, rec)
	return rec.ID, nil
}

func (s *Store) UpdateAward(ctx context.Context, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return updateByID(s.awards, func(r domain.Award) string { return r.ID }, id, fields)
}

func (s *Store) DeleteAward(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs, err := deleteByID(s.awards, func(r domain.Award) string { return r.ID }, id)
	s.awards = recs
	return err
}

func (s *Store) ListPatents(ctx context.Context) ([]domain.Patent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listNewest(s.patents, func(r domain.Patent) time.Time { return r.CreatedAt }, nil), nil
}

func (s *Store) CreatePatent(ctx context.Context, c domain.PatentCreate) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := c.Record(uuid.NewString(), newStamp())
	s.patents = append(s.patents, rec)
	return rec.ID, nil
}

func (s *Store) UpdatePatent(ctx context.Context, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return updateByID(s.patents, func(r domain.Patent) string { return r.ID }, id, fields)
}

func (s *Store) DeletePatent(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs, err := deleteByID(s.patents, func(r domain.Patent) string { return r.ID }, id)
	s.patents = recs
	return err
}

func (s *Store) CreateContactSubmission(ctx context.Context, c domain.ContactCreate) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := c.Record(uuid.NewString(), newStamp())
	s.contacts = append(s.contacts, rec)
	return rec.ID, nil
}

func (s *Store) ListContactSubmissions(ctx context.Context) ([]domain.ContactSubmission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listNewest(s.contacts, func(r domain.ContactSubmission) time.Time { return r.CreatedAt }, nil), nil
}
