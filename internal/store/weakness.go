package store

import (
	"context"
	"fmt"
	"time"

	"github.com/pvaidya/recheck/ent"
	"github.com/pvaidya/recheck/ent/weaknessentry"
	"github.com/pvaidya/recheck/internal/taxonomy"
)

// WeaknessEntry is the aggregated mistake/mastery count for one taxonomy
// path, keyed by "<Subject>/<BaseBranch>/<DetailedBranch>".
type WeaknessEntry struct {
	Key            string
	Subject        string
	BaseBranch     string
	DetailedBranch string
	Count          int
	LastSeen       time.Time
}

// WeaknessRepo persists weakness entries. Counts never go below zero and
// entries are never deleted.
type WeaknessRepo interface {
	// Increment bumps the count for the path, creating the entry lazily.
	Increment(ctx context.Context, p taxonomy.Path, at time.Time) (*WeaknessEntry, error)

	// Decrement lowers the count with a floor of zero. Decrementing a path
	// that has no entry is a no-op and returns nil.
	Decrement(ctx context.Context, p taxonomy.Path, at time.Time) (*WeaknessEntry, error)

	// Get returns the entry for a key, or nil if it doesn't exist.
	Get(ctx context.Context, key string) (*WeaknessEntry, error)

	// Top returns entries with a positive count for the subject (optionally
	// narrowed to one base branch), sorted by count descending with ties
	// broken by most recent last_seen.
	Top(ctx context.Context, subject, baseBranch string, limit int) ([]*WeaknessEntry, error)
}

// weaknessRepo implements WeaknessRepo using the ent client.
type weaknessRepo struct {
	client *ent.Client
}

func (r *weaknessRepo) Increment(ctx context.Context, p taxonomy.Path, at time.Time) (*WeaknessEntry, error) {
	e, err := r.find(ctx, p.Key())
	if err != nil {
		return nil, err
	}

	if e == nil {
		created, err := r.client.WeaknessEntry.Create().
			SetKey(p.Key()).
			SetSubject(p.Subject).
			SetBaseBranch(p.BaseBranch).
			SetDetailedBranch(p.DetailedBranch).
			SetCount(1).
			SetLastSeen(at).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create weakness entry: %w", err)
		}
		return entToWeakness(created), nil
	}

	updated, err := e.Update().
		AddCount(1).
		SetLastSeen(at).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("increment weakness: %w", err)
	}
	return entToWeakness(updated), nil
}

func (r *weaknessRepo) Decrement(ctx context.Context, p taxonomy.Path, at time.Time) (*WeaknessEntry, error) {
	e, err := r.find(ctx, p.Key())
	if err != nil {
		return nil, err
	}
	if e == nil {
		// Entries are created on first mistake only.
		return nil, nil
	}

	update := e.Update().SetLastSeen(at)
	if e.Count > 0 {
		update = update.AddCount(-1)
	}
	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("decrement weakness: %w", err)
	}
	return entToWeakness(updated), nil
}

func (r *weaknessRepo) Get(ctx context.Context, key string) (*WeaknessEntry, error) {
	e, err := r.find(ctx, key)
	if err != nil || e == nil {
		return nil, err
	}
	return entToWeakness(e), nil
}

func (r *weaknessRepo) Top(ctx context.Context, subject, baseBranch string, limit int) ([]*WeaknessEntry, error) {
	q := r.client.WeaknessEntry.Query().
		Where(
			weaknessentry.Subject(subject),
			weaknessentry.CountGT(0),
		)
	if baseBranch != "" {
		q = q.Where(weaknessentry.BaseBranch(baseBranch))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	entries, err := q.Order(
		ent.Desc(weaknessentry.FieldCount),
		ent.Desc(weaknessentry.FieldLastSeen),
	).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query top weaknesses: %w", err)
	}

	out := make([]*WeaknessEntry, len(entries))
	for i, e := range entries {
		out[i] = entToWeakness(e)
	}
	return out, nil
}

func (r *weaknessRepo) find(ctx context.Context, key string) (*ent.WeaknessEntry, error) {
	e, err := r.client.WeaknessEntry.Query().
		Where(weaknessentry.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find weakness entry: %w", err)
	}
	return e, nil
}

func entToWeakness(e *ent.WeaknessEntry) *WeaknessEntry {
	return &WeaknessEntry{
		Key:            e.Key,
		Subject:        e.Subject,
		BaseBranch:     e.BaseBranch,
		DetailedBranch: e.DetailedBranch,
		Count:          e.Count,
		LastSeen:       e.LastSeen,
	}
}
