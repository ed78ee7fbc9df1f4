package mongo

import (
	"context"

	"github.com/likith1908/portfolio-api/internal/domain"
)

func (s *Store) GetProfile(ctx context.Context) (domain.Profile, error) {
	return findSingleton[domain.Profile](ctx, s.coll(collProfiles))
}

func (s *Store) ReplaceProfile(ctx context.Context, fields map[string]any) error {
	return replaceSingleton(ctx, s.coll(collProfiles), fields)
}

func (s *Store) GetSkills(ctx context.Context) (domain.Skills, error) {
	return findSingleton[domain.Skills](ctx, s.coll(collSkills))
}

func (s *Store) ReplaceSkills(ctx context.Context, fields map[string]any) error {
	return replaceSingleton(ctx, s.coll(collSkills), fields)
}
