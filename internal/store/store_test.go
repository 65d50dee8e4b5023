package store

import (
	"context"
	"testing"
	"time"

	"github.com/pvaidya/recheck/internal/taxonomy"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func pendingRecord(id string) *Record {
	return &Record{
		ItemID:         id,
		Subject:        "Math",
		QuestionText:   "Solve 2x + 3 = 7",
		StudentAnswer:  "x = 5",
		CorrectAnswer:  "x = 2",
		IsCorrect:      false,
		AnalysisStatus: StatusPending,
		GradedAt:       time.Now(),
	}
}

func TestRecordLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.Records()
	ctx := context.Background()

	if err := repo.Upsert(ctx, pendingRecord("item-1")); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	rec, err := repo.Get(ctx, "item-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil || rec.AnalysisStatus != StatusPending {
		t.Fatalf("got %+v, want pending record", rec)
	}
	if rec.Analysis != nil {
		t.Error("pending record should carry no analysis")
	}

	rec, claimed, err := repo.MarkProcessing(ctx, "item-1")
	if err != nil || !claimed {
		t.Fatalf("mark processing: claimed=%v err=%v", claimed, err)
	}
	if rec.AnalysisStatus != StatusProcessing {
		t.Errorf("got status %q, want processing", rec.AnalysisStatus)
	}

	// Claiming again (crash-resume) still owns the item.
	_, claimed, err = repo.MarkProcessing(ctx, "item-1")
	if err != nil || !claimed {
		t.Fatalf("re-claim processing: claimed=%v err=%v", claimed, err)
	}

	a := Analysis{
		BaseBranch:     "Algebra - Foundations",
		DetailedBranch: "Linear Equations - One Variable",
		ErrorType:      "execution_error",
		SpecificIssue:  "subtracted 3 from the wrong side",
		Confidence:     0.9,
		AnalyzedAt:     time.Now(),
		WeaknessKey:    "Math/Algebra - Foundations/Linear Equations - One Variable",
	}
	done, err := repo.CompleteAnalysis(ctx, "item-1", a)
	if err != nil || !done {
		t.Fatalf("complete: done=%v err=%v", done, err)
	}

	// Replay after the transition is a no-op.
	done, err = repo.CompleteAnalysis(ctx, "item-1", a)
	if err != nil {
		t.Fatalf("replay complete: %v", err)
	}
	if done {
		t.Error("second CompleteAnalysis should not transition again")
	}

	rec, err = repo.Get(ctx, "item-1")
	if err != nil {
		t.Fatalf("get completed: %v", err)
	}
	if rec.AnalysisStatus != StatusCompleted {
		t.Errorf("got status %q, want completed", rec.AnalysisStatus)
	}
	if rec.Analysis == nil || rec.Analysis.DetailedBranch != a.DetailedBranch {
		t.Errorf("analysis not persisted: %+v", rec.Analysis)
	}
}

func TestMarkFailedAndRequeue(t *testing.T) {
	s := openTestStore(t)
	repo := s.Records()
	ctx := context.Background()

	if err := repo.Upsert(ctx, pendingRecord("item-2")); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, _, err := repo.MarkProcessing(ctx, "item-2"); err != nil {
		t.Fatalf("mark processing: %v", err)
	}

	for i := 1; i <= 3; i++ {
		n, err := repo.IncrementAttempt(ctx, "item-2")
		if err != nil {
			t.Fatalf("increment attempt: %v", err)
		}
		if n != i {
			t.Errorf("attempt %d: got count %d", i, n)
		}
	}

	if err := repo.MarkFailed(ctx, "item-2"); err != nil {
		t.Fatalf("mark failed: %v", err)
	}

	rec, _ := repo.Get(ctx, "item-2")
	if rec.AnalysisStatus != StatusFailed {
		t.Fatalf("got status %q, want failed", rec.AnalysisStatus)
	}

	// Failed items show up in a needs-attention query.
	failed, err := repo.Query(ctx, Filter{Status: StatusFailed})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(failed) != 1 || failed[0].ItemID != "item-2" {
		t.Errorf("needs-attention query returned %v", failed)
	}

	ok, err := repo.Requeue(ctx, "item-2")
	if err != nil || !ok {
		t.Fatalf("requeue: ok=%v err=%v", ok, err)
	}
	rec, _ = repo.Get(ctx, "item-2")
	if rec.AnalysisStatus != StatusPending || rec.AttemptCount != 0 {
		t.Errorf("after requeue got %+v", rec)
	}

	// Requeue of a non-failed item is a no-op.
	ok, err = repo.Requeue(ctx, "item-2")
	if err != nil {
		t.Fatalf("requeue pending: %v", err)
	}
	if ok {
		t.Error("requeue of pending item should return false")
	}
}

func TestUnsyncedCompletedAndMarkSynced(t *testing.T) {
	s := openTestStore(t)
	repo := s.Records()
	ctx := context.Background()

	for _, id := range []string{"a", "b"} {
		rec := pendingRecord(id)
		if err := repo.Upsert(ctx, rec); err != nil {
			t.Fatalf("upsert: %v", err)
		}
		if _, _, err := repo.MarkProcessing(ctx, id); err != nil {
			t.Fatalf("processing: %v", err)
		}
		if _, err := repo.CompleteAnalysis(ctx, id, Analysis{
			BaseBranch:     "Algebra - Foundations",
			DetailedBranch: "Inequalities",
			AnalyzedAt:     time.Now(),
		}); err != nil {
			t.Fatalf("complete: %v", err)
		}
	}

	unsynced, err := repo.UnsyncedCompleted(ctx, 0)
	if err != nil {
		t.Fatalf("unsynced: %v", err)
	}
	if len(unsynced) != 2 {
		t.Fatalf("got %d unsynced, want 2", len(unsynced))
	}

	if err := repo.MarkSynced(ctx, []string{"a", "b"}); err != nil {
		t.Fatalf("mark synced: %v", err)
	}
	unsynced, err = repo.UnsyncedCompleted(ctx, 0)
	if err != nil {
		t.Fatalf("unsynced after sync: %v", err)
	}
	if len(unsynced) != 0 {
		t.Errorf("got %d unsynced after sync, want 0", len(unsynced))
	}
}

func TestWeaknessRepoFloorsAtZero(t *testing.T) {
	s := openTestStore(t)
	repo := s.Weaknesses()
	ctx := context.Background()
	path := taxonomy.Resolve("Math", "Algebra - Foundations", "Inequalities")

	e, err := repo.Increment(ctx, path, time.Now())
	if err != nil {
		t.Fatalf("increment: %v", err)
	}
	if e.Count != 1 {
		t.Errorf("got count %d, want 1", e.Count)
	}

	e, err = repo.Decrement(ctx, path, time.Now())
	if err != nil {
		t.Fatalf("decrement: %v", err)
	}
	if e.Count != 0 {
		t.Errorf("got count %d, want 0", e.Count)
	}

	// Floor: a second decrement stays at zero.
	e, err = repo.Decrement(ctx, path, time.Now())
	if err != nil {
		t.Fatalf("decrement at floor: %v", err)
	}
	if e.Count != 0 {
		t.Errorf("got count %d after floor decrement, want 0", e.Count)
	}

	// Decrement of an unknown key creates nothing.
	other := taxonomy.Resolve("Physics", "Mechanics", "Momentum")
	e, err = repo.Decrement(ctx, other, time.Now())
	if err != nil {
		t.Fatalf("decrement unknown: %v", err)
	}
	if e != nil {
		t.Errorf("decrement of unknown key created entry %+v", e)
	}
}

func TestWeaknessTopOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.Weaknesses()
	ctx := context.Background()

	linear := taxonomy.Resolve("Math", "Algebra - Foundations", "Linear Equations - One Variable")
	circles := taxonomy.Resolve("Math", "Geometry - Plane", "Circles")

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		if _, err := repo.Increment(ctx, linear, base.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatalf("increment: %v", err)
		}
	}
	if _, err := repo.Increment(ctx, circles, base.Add(time.Hour)); err != nil {
		t.Fatalf("increment: %v", err)
	}

	top, err := repo.Top(ctx, "Math", "", 10)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("got %d entries, want 2", len(top))
	}
	if top[0].Key != linear.Key() || top[0].Count != 3 {
		t.Errorf("top[0] = %+v", top[0])
	}

	// Narrowed to one base branch.
	top, err = repo.Top(ctx, "Math", "Geometry - Plane", 10)
	if err != nil {
		t.Fatalf("top by base: %v", err)
	}
	if len(top) != 1 || top[0].Key != circles.Key() {
		t.Errorf("base-filtered top = %v", top)
	}
}
