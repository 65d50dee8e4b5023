// Package weakness maintains the per-concept weakness profile. Each
// taxonomy path carries a single counter: classified mistakes raise it,
// mastered concepts lower it, and the floor is zero. The profile is a
// projection of the record store and can be rebuilt from it.
package weakness

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pvaidya/recheck/internal/store"
	"github.com/pvaidya/recheck/internal/taxonomy"
)

// Service applies classification outcomes to the weakness profile.
type Service struct {
	repo store.WeaknessRepo
	log  *zap.Logger
}

// NewService creates a weakness service over the given repository.
func NewService(repo store.WeaknessRepo, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, log: log}
}

// RecordMistake bumps the counter for a classified mistake, creating the
// entry on first sight. The path must already be taxonomy-resolved.
func (s *Service) RecordMistake(ctx context.Context, p taxonomy.Path, at time.Time) (*store.WeaknessEntry, error) {
	if !taxonomy.IsValid(p) {
		return nil, fmt.Errorf("record mistake: path %q is not taxonomy-resolved", p.Key())
	}

	e, err := s.repo.Increment(ctx, p, at)
	if err != nil {
		return nil, err
	}
	s.log.Debug("weakness incremented",
		zap.String("key", e.Key),
		zap.Int("count", e.Count))
	return e, nil
}

// RecordMastery lowers the counter for a concept answered correctly. A
// concept with no recorded mistakes is left alone: mastery evidence never
// creates an entry, and an existing counter never drops below zero.
func (s *Service) RecordMastery(ctx context.Context, p taxonomy.Path, at time.Time) (*store.WeaknessEntry, error) {
	if !taxonomy.IsValid(p) {
		return nil, fmt.Errorf("record mastery: path %q is not taxonomy-resolved", p.Key())
	}

	e, err := s.repo.Decrement(ctx, p, at)
	if err != nil {
		return nil, err
	}
	if e == nil {
		s.log.Debug("mastery for unseen concept ignored", zap.String("key", p.Key()))
		return nil, nil
	}
	s.log.Debug("weakness decremented",
		zap.String("key", e.Key),
		zap.Int("count", e.Count))
	return e, nil
}

// Top returns the strongest weaknesses for a subject, optionally narrowed
// to one base branch. Entries whose counter has returned to zero are
// excluded; ties on count break toward the most recently seen.
func (s *Service) Top(ctx context.Context, subject, baseBranch string, limit int) ([]*store.WeaknessEntry, error) {
	// Unknown subjects accumulate entries under their trimmed raw name.
	canonical, _ := taxonomy.CanonicalSubject(subject)
	return s.repo.Top(ctx, canonical, baseBranch, limit)
}
