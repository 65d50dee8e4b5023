package reconcile

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/pvaidya/recheck/internal/store"
)

type fakeReporting struct {
	batches [][]Row
	rows    map[string]Row
	fail    bool
}

func newFakeReporting() *fakeReporting {
	return &fakeReporting{rows: make(map[string]Row)}
}

func (f *fakeReporting) UpsertBatch(_ context.Context, rows []Row) error {
	if f.fail {
		return errors.New("reporting store unavailable")
	}
	f.batches = append(f.batches, rows)
	for _, r := range rows {
		f.rows[r.ItemID] = r
	}
	return nil
}

func completedRecord(t *testing.T, repo store.RecordRepo, itemID string) {
	t.Helper()
	ctx := context.Background()
	err := repo.Upsert(ctx, &store.Record{
		ItemID:         itemID,
		Subject:        "Math",
		QuestionText:   "q",
		StudentAnswer:  "a",
		IsCorrect:      false,
		AnalysisStatus: store.StatusPending,
		GradedAt:       time.Now(),
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := repo.MarkProcessing(ctx, itemID); err != nil {
		t.Fatal(err)
	}
	done, err := repo.CompleteAnalysis(ctx, itemID, store.Analysis{
		BaseBranch:     "Algebra - Foundations",
		DetailedBranch: "Inequalities",
		ErrorType:      "conceptual_gap",
		Confidence:     0.8,
		AnalyzedAt:     time.Now(),
		WeaknessKey:    "Math/Algebra - Foundations/Inequalities",
	})
	if err != nil || !done {
		t.Fatalf("complete analysis: done=%v err=%v", done, err)
	}
}

func TestSyncCopiesCompletedRows(t *testing.T) {
	ctx := context.Background()
	records := store.NewMemoryRecordRepo()
	reporting := newFakeReporting()
	svc := NewService(records, reporting, 100, zap.NewNop())

	completedRecord(t, records, "item-1")
	completedRecord(t, records, "item-2")

	n, err := svc.Sync(ctx)
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 rows synced, got %d", n)
	}

	row, ok := reporting.rows["item-1"]
	if !ok {
		t.Fatal("item-1 missing from reporting store")
	}
	if row.BaseBranch != "Algebra - Foundations" || row.ErrorType != "conceptual_gap" {
		t.Fatalf("unexpected row: %+v", row)
	}

	rec, err := records.Get(ctx, "item-1")
	if err != nil {
		t.Fatal(err)
	}
	if !rec.Synced {
		t.Fatal("record not marked synced")
	}
}

func TestSyncIsIdempotent(t *testing.T) {
	ctx := context.Background()
	records := store.NewMemoryRecordRepo()
	reporting := newFakeReporting()
	svc := NewService(records, reporting, 100, zap.NewNop())

	completedRecord(t, records, "item-1")

	if _, err := svc.Sync(ctx); err != nil {
		t.Fatal(err)
	}
	n, err := svc.Sync(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("second sync should copy nothing, got %d rows", n)
	}
	if len(reporting.batches) != 1 {
		t.Fatalf("expected 1 batch sent, got %d", len(reporting.batches))
	}
}

func TestSyncSkipsUnfinishedRecords(t *testing.T) {
	ctx := context.Background()
	records := store.NewMemoryRecordRepo()
	reporting := newFakeReporting()
	svc := NewService(records, reporting, 100, zap.NewNop())

	if err := records.Upsert(ctx, &store.Record{
		ItemID:         "pending-1",
		Subject:        "Math",
		AnalysisStatus: store.StatusPending,
		GradedAt:       time.Now(),
	}); err != nil {
		t.Fatal(err)
	}

	n, err := svc.Sync(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("pending records must not sync, got %d", n)
	}
}

func TestSyncFailureLeavesRecordsUnsynced(t *testing.T) {
	ctx := context.Background()
	records := store.NewMemoryRecordRepo()
	reporting := newFakeReporting()
	reporting.fail = true
	svc := NewService(records, reporting, 100, zap.NewNop())

	completedRecord(t, records, "item-1")

	if _, err := svc.Sync(ctx); err == nil {
		t.Fatal("expected sync error")
	}

	rec, err := records.Get(ctx, "item-1")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Synced {
		t.Fatal("record must stay unsynced after a failed batch")
	}

	// Recovery: the store comes back and the same row goes through.
	reporting.fail = false
	n, err := svc.Sync(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("expected 1 row on retry, got %d", n)
	}
}

func TestSyncBatchesLargeBacklogs(t *testing.T) {
	ctx := context.Background()
	records := store.NewMemoryRecordRepo()
	reporting := newFakeReporting()
	svc := NewService(records, reporting, 2, zap.NewNop())

	for _, id := range []string{"a", "b", "c", "d", "e"} {
		completedRecord(t, records, id)
	}

	n, err := svc.Sync(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 {
		t.Fatalf("expected 5 rows synced, got %d", n)
	}
	if len(reporting.batches) != 3 {
		t.Fatalf("expected 3 batches of <=2, got %d", len(reporting.batches))
	}
}

func TestRunScheduledRejectsBadSchedule(t *testing.T) {
	svc := NewService(store.NewMemoryRecordRepo(), newFakeReporting(), 10, zap.NewNop())
	if err := svc.RunScheduled(context.Background(), "not a cron line"); err == nil {
		t.Fatal("expected error for invalid schedule")
	}
}
