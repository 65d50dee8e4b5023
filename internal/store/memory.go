package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/pvaidya/recheck/internal/taxonomy"
)

// In-memory repository implementations. The workers and readers take the
// repo interfaces rather than the sqlite store directly, so tests (and any
// embedding without a database) run against these.

// MemoryRecordRepo is an in-memory RecordRepo guarded by a mutex.
type MemoryRecordRepo struct {
	mu    sync.Mutex
	items map[string]*Record
}

// NewMemoryRecordRepo creates an empty in-memory record repo.
func NewMemoryRecordRepo() *MemoryRecordRepo {
	return &MemoryRecordRepo{items: make(map[string]*Record)}
}

func (m *MemoryRecordRepo) Upsert(_ context.Context, rec *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := cloneRecord(rec)
	if cp.GradedAt.IsZero() {
		cp.GradedAt = time.Now()
	}
	m.items[rec.ItemID] = cp
	return nil
}

func (m *MemoryRecordRepo) Get(_ context.Context, itemID string) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.items[itemID]
	if !ok {
		return nil, nil
	}
	return cloneRecord(rec), nil
}

func (m *MemoryRecordRepo) Query(_ context.Context, f Filter) ([]*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*Record
	for _, rec := range m.items {
		if !matchesFilter(rec, f) {
			continue
		}
		out = append(out, cloneRecord(rec))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GradedAt.Before(out[j].GradedAt) })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (m *MemoryRecordRepo) MarkProcessing(_ context.Context, itemID string) (*Record, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.items[itemID]
	if !ok {
		return nil, false, nil
	}
	switch rec.AnalysisStatus {
	case StatusPending:
		rec.AnalysisStatus = StatusProcessing
		return cloneRecord(rec), true, nil
	case StatusProcessing:
		return cloneRecord(rec), true, nil
	default:
		return cloneRecord(rec), false, nil
	}
}

func (m *MemoryRecordRepo) CompleteAnalysis(_ context.Context, itemID string, a Analysis) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.items[itemID]
	if !ok || rec.AnalysisStatus != StatusProcessing {
		return false, nil
	}
	rec.AnalysisStatus = StatusCompleted
	cp := a
	rec.Analysis = &cp
	return true, nil
}

func (m *MemoryRecordRepo) IncrementAttempt(_ context.Context, itemID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.items[itemID]
	if !ok {
		// The sqlite repo errors here too; a silent zero would let a worker
		// retry a vanished item forever.
		return 0, fmt.Errorf("increment attempt: item %s not found", itemID)
	}
	rec.AttemptCount++
	return rec.AttemptCount, nil
}

func (m *MemoryRecordRepo) MarkFailed(_ context.Context, itemID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.items[itemID]
	if ok && rec.AnalysisStatus != StatusCompleted {
		rec.AnalysisStatus = StatusFailed
	}
	return nil
}

func (m *MemoryRecordRepo) Requeue(_ context.Context, itemID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.items[itemID]
	if !ok || rec.AnalysisStatus != StatusFailed {
		return false, nil
	}
	rec.AnalysisStatus = StatusPending
	rec.AttemptCount = 0
	return true, nil
}

func (m *MemoryRecordRepo) UnsyncedCompleted(_ context.Context, limit int) ([]*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*Record
	for _, rec := range m.items {
		if rec.AnalysisStatus == StatusCompleted && !rec.Synced {
			out = append(out, cloneRecord(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GradedAt.Before(out[j].GradedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryRecordRepo) MarkSynced(_ context.Context, itemIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range itemIDs {
		if rec, ok := m.items[id]; ok {
			rec.Synced = true
		}
	}
	return nil
}

func matchesFilter(rec *Record, f Filter) bool {
	if f.Subject != "" && rec.Subject != f.Subject {
		return false
	}
	if f.Status != "" && rec.AnalysisStatus != f.Status {
		return false
	}
	if f.IsCorrect != nil && rec.IsCorrect != *f.IsCorrect {
		return false
	}
	if f.BaseBranch != "" && (rec.Analysis == nil || rec.Analysis.BaseBranch != f.BaseBranch) {
		return false
	}
	if f.DetailedBranch != "" && (rec.Analysis == nil || rec.Analysis.DetailedBranch != f.DetailedBranch) {
		return false
	}
	if f.ErrorType != "" && (rec.Analysis == nil || rec.Analysis.ErrorType != f.ErrorType) {
		return false
	}
	if !f.From.IsZero() && rec.GradedAt.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && rec.GradedAt.After(f.To) {
		return false
	}
	return true
}

func cloneRecord(rec *Record) *Record {
	cp := *rec
	if rec.Analysis != nil {
		a := *rec.Analysis
		cp.Analysis = &a
	}
	return &cp
}

// MemoryWeaknessRepo is an in-memory WeaknessRepo guarded by a mutex.
type MemoryWeaknessRepo struct {
	mu      sync.Mutex
	entries map[string]*WeaknessEntry
}

// NewMemoryWeaknessRepo creates an empty in-memory weakness repo.
func NewMemoryWeaknessRepo() *MemoryWeaknessRepo {
	return &MemoryWeaknessRepo{entries: make(map[string]*WeaknessEntry)}
}

func (m *MemoryWeaknessRepo) Increment(_ context.Context, p taxonomy.Path, at time.Time) (*WeaknessEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[p.Key()]
	if !ok {
		e = &WeaknessEntry{
			Key:            p.Key(),
			Subject:        p.Subject,
			BaseBranch:     p.BaseBranch,
			DetailedBranch: p.DetailedBranch,
		}
		m.entries[p.Key()] = e
	}
	e.Count++
	e.LastSeen = at
	cp := *e
	return &cp, nil
}

func (m *MemoryWeaknessRepo) Decrement(_ context.Context, p taxonomy.Path, at time.Time) (*WeaknessEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[p.Key()]
	if !ok {
		return nil, nil
	}
	if e.Count > 0 {
		e.Count--
	}
	e.LastSeen = at
	cp := *e
	return &cp, nil
}

func (m *MemoryWeaknessRepo) Get(_ context.Context, key string) (*WeaknessEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (m *MemoryWeaknessRepo) Top(_ context.Context, subject, baseBranch string, limit int) ([]*WeaknessEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*WeaknessEntry
	for _, e := range m.entries {
		if e.Subject != subject || e.Count <= 0 {
			continue
		}
		if baseBranch != "" && e.BaseBranch != baseBranch {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].LastSeen.After(out[j].LastSeen)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// MemoryEventRepo collects events in memory.
type MemoryEventRepo struct {
	mu     sync.Mutex
	events []LLMRequestEventData
}

// NewMemoryEventRepo creates an empty in-memory event repo.
func NewMemoryEventRepo() *MemoryEventRepo {
	return &MemoryEventRepo{}
}

func (m *MemoryEventRepo) AppendLLMRequest(_ context.Context, data LLMRequestEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, data)
	return nil
}

// Events returns a copy of the recorded events.
func (m *MemoryEventRepo) Events() []LLMRequestEventData {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]LLMRequestEventData, len(m.events))
	copy(out, m.events)
	return out
}
