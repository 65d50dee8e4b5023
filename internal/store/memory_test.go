package store

import (
	"context"
	"testing"
	"time"

	"github.com/pvaidya/recheck/internal/taxonomy"
)

func TestMemoryRecordRepoTransitions(t *testing.T) {
	repo := NewMemoryRecordRepo()
	ctx := context.Background()

	if err := repo.Upsert(ctx, pendingRecord("m-1")); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	_, claimed, err := repo.MarkProcessing(ctx, "m-1")
	if err != nil || !claimed {
		t.Fatalf("claim: claimed=%v err=%v", claimed, err)
	}

	done, err := repo.CompleteAnalysis(ctx, "m-1", Analysis{
		BaseBranch:     "Algebra - Foundations",
		DetailedBranch: "Inequalities",
	})
	if err != nil || !done {
		t.Fatalf("complete: done=%v err=%v", done, err)
	}

	// A completed item cannot be claimed again.
	_, claimed, err = repo.MarkProcessing(ctx, "m-1")
	if err != nil {
		t.Fatalf("claim completed: %v", err)
	}
	if claimed {
		t.Error("completed item was claimed")
	}

	// And a replayed completion is a no-op.
	done, _ = repo.CompleteAnalysis(ctx, "m-1", Analysis{BaseBranch: "x", DetailedBranch: "y"})
	if done {
		t.Error("replayed completion transitioned again")
	}
}

func TestMemoryRecordRepoIsolation(t *testing.T) {
	repo := NewMemoryRecordRepo()
	ctx := context.Background()

	if err := repo.Upsert(ctx, pendingRecord("m-2")); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	rec, _ := repo.Get(ctx, "m-2")
	rec.Subject = "mutated"
	rec.AnalysisStatus = StatusFailed

	again, _ := repo.Get(ctx, "m-2")
	if again.Subject != "Math" || again.AnalysisStatus != StatusPending {
		t.Errorf("stored record mutated through returned copy: %+v", again)
	}
}

func TestMemoryWeaknessRepoMatchesSQLBehavior(t *testing.T) {
	repo := NewMemoryWeaknessRepo()
	ctx := context.Background()
	path := taxonomy.Resolve("Math", "Algebra - Foundations", "Inequalities")
	now := time.Now()

	for i := 0; i < 3; i++ {
		if _, err := repo.Increment(ctx, path, now); err != nil {
			t.Fatalf("increment: %v", err)
		}
	}
	e, err := repo.Decrement(ctx, path, now)
	if err != nil {
		t.Fatalf("decrement: %v", err)
	}
	if e.Count != 2 {
		t.Errorf("got count %d, want 2", e.Count)
	}

	if e, _ := repo.Decrement(ctx, taxonomy.Resolve("Physics", "Mechanics", "Momentum"), now); e != nil {
		t.Errorf("decrement of missing entry created %+v", e)
	}

	top, err := repo.Top(ctx, "Math", "", 5)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 1 || top[0].Count != 2 {
		t.Errorf("top = %v", top)
	}
}

func TestMemoryIncrementAttemptUnknownItem(t *testing.T) {
	repo := NewMemoryRecordRepo()
	ctx := context.Background()

	if _, err := repo.IncrementAttempt(ctx, "vanished"); err == nil {
		t.Fatal("incrementing an unknown item must error")
	}

	if err := repo.Upsert(ctx, pendingRecord("m-3")); err != nil {
		t.Fatal(err)
	}
	n, err := repo.IncrementAttempt(ctx, "m-3")
	if err != nil || n != 1 {
		t.Fatalf("got n=%d err=%v, want 1", n, err)
	}
}

func TestMemoryQueryFilter(t *testing.T) {
	repo := NewMemoryRecordRepo()
	ctx := context.Background()

	wrong := pendingRecord("w-1")
	correct := pendingRecord("c-1")
	correct.IsCorrect = true
	correct.Subject = "Physics"
	if err := repo.Upsert(ctx, wrong); err != nil {
		t.Fatal(err)
	}
	if err := repo.Upsert(ctx, correct); err != nil {
		t.Fatal(err)
	}

	isCorrect := true
	got, err := repo.Query(ctx, Filter{IsCorrect: &isCorrect})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 1 || got[0].ItemID != "c-1" {
		t.Errorf("got %v", got)
	}

	got, _ = repo.Query(ctx, Filter{Subject: "Math"})
	if len(got) != 1 || got[0].ItemID != "w-1" {
		t.Errorf("subject filter returned %v", got)
	}
}
