package seed

import (
	"context"
	"fmt"

	"github.com/likith1908/portfolio-api/internal/logger"
	"github.com/likith1908/portfolio-api/internal/store"
)

// Seeder writes a loaded seed file into the store. Collection records
// are appended, not reconciled: running the seeder twice duplicates
// them. Singletons are replaced, so those stay idempotent.
type Seeder struct {
	store store.Store
	log   logger.Logger
}

func NewSeeder(st store.Store, log logger.Logger) *Seeder {
	return &Seeder{store: st, log: log}
}

func (s *Seeder) Run(ctx context.Context, f File) error {
	if f.Profile != nil {
		if err := s.store.ReplaceProfile(ctx, f.Profile.Fields()); err != nil {
			return fmt.Errorf("seeding profile: %w", err)
		}
		s.log.Info("profile seeded")
	}

	if f.Skills != nil {
		if err := s.store.ReplaceSkills(ctx, f.Skills.Fields()); err != nil {
			return fmt.Errorf("seeding skills: %w", err)
		}
		s.log.Info("skills seeded")
	}

	for _, e := range f.Education {
		if _, err := s.store.CreateEducation(ctx, e.Create()); err != nil {
			return fmt.Errorf("seeding education %q: %w", e.Institution, err)
		}
	}
	for _, e := range f.Experience {
		if _, err := s.store.CreateExperience(ctx, e.Create()); err != nil {
			return fmt.Errorf("seeding experience %q: %w", e.Position, err)
		}
	}
	for _, p := range f.Projects {
		if _, err := s.store.CreateProject(ctx, p.Create()); err != nil {
			return fmt.Errorf("seeding project %q: %w", p.Title, err)
		}
	}
	for _, c := range f.Certifications {
		if _, err := s.store.CreateCertification(ctx, c.Create()); err != nil {
			return fmt.Errorf("seeding certification %q: %w", c.Title, err)
		}
	}
	for _, a := range f.Awards {
		if _, err := s.store.CreateAward(ctx, a.Create()); err != nil {
			return fmt.Errorf("seeding award %q: %w", a.Title, err)
		}
	}
	for _, p := range f.Patents {
		if _, err := s.store.CreatePatent(ctx, p.Create()); err != nil {
			return fmt.Errorf("seeding patent %q: %w", p.Title, err)
		}
	}

	s.log.Info("seed complete",
		logger.Int("education", len(f.Education)),
		logger.Int("experience", len(f.Experience)),
		logger.Int("projects", len(f.Projects)),
		logger.Int("certifications", len(f.Certifications)),
		logger.Int("awards", len(f.Awards)),
		logger.Int("patents", len(f.Patents)))
	return nil
}
