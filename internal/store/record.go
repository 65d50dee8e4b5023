package store

import (
	"context"
	"time"
)

// Analysis status values for a graded item. The lifecycle is
// pending → processing → completed | failed; failed is terminal until an
// explicit requeue moves it back to pending.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Record is one graded answer, exclusively owned by the local store.
// The reporting-store copy is never authoritative.
type Record struct {
	ItemID         string
	Subject        string
	QuestionText   string
	StudentAnswer  string
	CorrectAnswer  string
	IsCorrect      bool
	AnalysisStatus string

	// Analysis is nil until the item completes classification. Base and
	// detailed branch are therefore always both present or both absent.
	Analysis *Analysis

	AttemptCount int
	Synced       bool
	GradedAt     time.Time
}

// Analysis is the Pass-2 classification result attached to a completed record.
type Analysis struct {
	BaseBranch     string
	DetailedBranch string
	ErrorType      string // empty for concept-only classification
	SpecificIssue  string
	Evidence       string
	Suggestion     string
	Confidence     float64
	AnalyzedAt     time.Time
	WeaknessKey    string
}

// Filter selects records for Query. Zero values mean "no constraint".
type Filter struct {
	Subject        string
	BaseBranch     string
	DetailedBranch string
	ErrorType      string
	Status         string
	IsCorrect      *bool
	From           time.Time
	To             time.Time
	Limit          int
}

// RecordRepo is the single-writer key-value interface over graded items.
// Per-item writes are atomic: concurrent readers never observe a record
// with only some fields of a transition applied.
type RecordRepo interface {
	// Upsert creates or replaces the record keyed by its item ID.
	Upsert(ctx context.Context, rec *Record) error

	// Get returns the record for an item ID, or nil if it doesn't exist.
	Get(ctx context.Context, itemID string) (*Record, error)

	// Query returns records matching the filter, oldest first.
	Query(ctx context.Context, f Filter) ([]*Record, error)

	// MarkProcessing claims an item for the worker. Pending items move to
	// processing; items already processing (crash leftovers) stay claimed.
	// Returns the record and whether the worker now owns it. Completed and
	// failed items are never claimed.
	MarkProcessing(ctx context.Context, itemID string) (*Record, bool, error)

	// CompleteAnalysis transitions processing → completed and attaches the
	// analysis in one atomic write. Returns false when the item was not in
	// processing, so a crash-and-resume replay applies no second transition.
	CompleteAnalysis(ctx context.Context, itemID string, a Analysis) (bool, error)

	// IncrementAttempt bumps the persisted attempt counter and returns the
	// new value.
	IncrementAttempt(ctx context.Context, itemID string) (int, error)

	// MarkFailed transitions a non-completed item to failed.
	MarkFailed(ctx context.Context, itemID string) error

	// Requeue moves a failed item back to pending with a fresh attempt
	// budget. Returns false if the item was not failed.
	Requeue(ctx context.Context, itemID string) (bool, error)

	// UnsyncedCompleted returns completed records not yet copied to the
	// reporting store, oldest first, up to limit (0 = all).
	UnsyncedCompleted(ctx context.Context, limit int) ([]*Record, error)

	// MarkSynced flags the given items as copied to the reporting store.
	MarkSynced(ctx context.Context, itemIDs []string) error
}
