package weakness

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/pvaidya/recheck/internal/store"
	"github.com/pvaidya/recheck/internal/taxonomy"
)

func newTestService() *Service {
	return NewService(store.NewMemoryWeaknessRepo(), zap.NewNop())
}

func algebraPath() taxonomy.Path {
	return taxonomy.Resolve("Math", "Algebra - Foundations", "Linear Equations - One Variable")
}

func TestMistakesThenMastery(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	p := algebraPath()
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	for i := range 3 {
		e, err := svc.RecordMistake(ctx, p, at.Add(time.Duration(i)*time.Minute))
		if err != nil {
			t.Fatalf("mistake %d: %v", i, err)
		}
		if e.Count != i+1 {
			t.Fatalf("mistake %d: expected count %d, got %d", i, i+1, e.Count)
		}
	}

	e, err := svc.RecordMastery(ctx, p, at.Add(time.Hour))
	if err != nil {
		t.Fatalf("mastery: %v", err)
	}
	if e.Count != 2 {
		t.Fatalf("expected count 2 after one mastery, got %d", e.Count)
	}
}

func TestMasteryNeverGoesNegative(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	p := algebraPath()
	at := time.Now()

	if _, err := svc.RecordMistake(ctx, p, at); err != nil {
		t.Fatal(err)
	}
	for i := range 5 {
		e, err := svc.RecordMastery(ctx, p, at.Add(time.Duration(i)*time.Minute))
		if err != nil {
			t.Fatalf("mastery %d: %v", i, err)
		}
		if e.Count < 0 {
			t.Fatalf("count went negative: %d", e.Count)
		}
	}

	e, err := svc.RecordMastery(ctx, p, at.Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if e.Count != 0 {
		t.Fatalf("expected floor at 0, got %d", e.Count)
	}
}

func TestInterleavedMistakesAndMasteries(t *testing.T) {
	ctx := context.Background()
	p := algebraPath()

	// m = mistake, k = mastery; final count must be the running
	// zero-floored balance of the sequence.
	sequences := map[string]int{
		"mmmk":     2,
		"mkmkmk":   0,
		"kkmm":     2, // leading masteries are no-ops
		"mkkkm":    1,
		"mmkkkkmm": 2,
	}

	for seq, want := range sequences {
		svc := newTestService()
		at := time.Now()
		for i, ev := range seq {
			var err error
			if ev == 'm' {
				_, err = svc.RecordMistake(ctx, p, at.Add(time.Duration(i)*time.Second))
			} else {
				_, err = svc.RecordMastery(ctx, p, at.Add(time.Duration(i)*time.Second))
			}
			if err != nil {
				t.Fatalf("%s[%d]: %v", seq, i, err)
			}
		}

		e, err := svc.Top(ctx, "Math", "", 10)
		if err != nil {
			t.Fatal(err)
		}
		got := 0
		if len(e) > 0 {
			got = e[0].Count
		}
		if got != want {
			t.Errorf("sequence %s: expected count %d, got %d", seq, want, got)
		}
	}
}

func TestMasteryForUnseenConceptIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	p := algebraPath()

	e, err := svc.RecordMastery(ctx, p, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e != nil {
		t.Fatalf("mastery must not create an entry, got %+v", e)
	}

	top, err := svc.Top(ctx, "Math", "", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 0 {
		t.Fatalf("expected empty profile, got %d entries", len(top))
	}
}

func TestUnresolvedPathRejected(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	bogus := taxonomy.Path{Subject: "Math", BaseBranch: "Algebra - Foundations", DetailedBranch: "Quantum Algebra"}

	if _, err := svc.RecordMistake(ctx, bogus, time.Now()); err == nil {
		t.Fatal("expected error for unresolved path")
	}
	if _, err := svc.RecordMastery(ctx, bogus, time.Now()); err == nil {
		t.Fatal("expected error for unresolved path")
	}
}

func TestTopOrderingAndZeroExclusion(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	linear := taxonomy.Resolve("Math", "Algebra - Foundations", "Linear Equations - One Variable")
	inequalities := taxonomy.Resolve("Math", "Algebra - Foundations", "Inequalities")
	polynomials := taxonomy.Resolve("Math", "Algebra - Foundations", "Polynomials & Factoring")

	// linear: 3 mistakes, inequalities: 1 mistake (seen later), polynomials:
	// 1 mistake fully mastered back to zero.
	for i := range 3 {
		if _, err := svc.RecordMistake(ctx, linear, base.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := svc.RecordMistake(ctx, inequalities, base.Add(time.Hour)); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RecordMistake(ctx, polynomials, base); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RecordMastery(ctx, polynomials, base.Add(2*time.Hour)); err != nil {
		t.Fatal(err)
	}

	top, err := svc.Top(ctx, "math", "", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 entries (zero-count excluded), got %d", len(top))
	}
	if top[0].Key != linear.Key() {
		t.Errorf("expected %q first, got %q", linear.Key(), top[0].Key)
	}
	if top[1].Key != inequalities.Key() {
		t.Errorf("expected %q second, got %q", inequalities.Key(), top[1].Key)
	}
}

func TestTopNarrowedByBaseBranch(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	at := time.Now()

	algebra := taxonomy.Resolve("Math", "Algebra - Foundations", "Inequalities")
	geometry := taxonomy.Resolve("Math", "Geometry - Plane", "")

	if _, err := svc.RecordMistake(ctx, algebra, at); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RecordMistake(ctx, geometry, at); err != nil {
		t.Fatal(err)
	}

	top, err := svc.Top(ctx, "Math", "Algebra - Foundations", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 1 || top[0].BaseBranch != "Algebra - Foundations" {
		t.Fatalf("unexpected narrowed result: %+v", top)
	}
}
