package queue

import (
	"context"
	"testing"
	"time"

	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/pvaidya/recheck/internal/store"
	"github.com/pvaidya/recheck/internal/taxonomy"
)

func newDispatcherFixture(c *fakeClassifier) (*Dispatcher, *fixture) {
	f := newFixture()
	d := NewDispatcher(f.records, f.weakSvc, c, testConfig(), zap.NewNop())
	return d, f
}

func TestDispatcherRoutesByCorrectness(t *testing.T) {
	d, f := newDispatcherFixture(algebraClassifier())
	f.addRecord(t, "wrong-1", false)
	f.addRecord(t, "right-1", true)

	wrong, _ := f.records.Get(context.Background(), "wrong-1")
	right, _ := f.records.Get(context.Background(), "right-1")
	d.Enqueue(wrong)
	d.Enqueue(right)

	if n := len(d.full.tasks); n != 1 {
		t.Errorf("expected 1 full-analysis task, got %d", n)
	}
	if n := len(d.concept.tasks); n != 1 {
		t.Errorf("expected 1 concept-only task, got %d", n)
	}
}

func TestDispatcherIgnoresTerminalStatuses(t *testing.T) {
	d, _ := newDispatcherFixture(algebraClassifier())

	d.Enqueue(&store.Record{ItemID: "done", AnalysisStatus: store.StatusCompleted})
	d.Enqueue(&store.Record{ItemID: "dead", AnalysisStatus: store.StatusFailed})

	if n := len(d.full.tasks) + len(d.concept.tasks); n != 0 {
		t.Fatalf("terminal items must not be queued, got %d tasks", n)
	}
}

func TestRecoverEnqueuesUnfinishedItems(t *testing.T) {
	ctx := context.Background()
	d, f := newDispatcherFixture(algebraClassifier())

	f.addRecord(t, "pending-1", false)
	f.addRecord(t, "stuck-1", true)
	if _, _, err := f.records.MarkProcessing(ctx, "stuck-1"); err != nil {
		t.Fatal(err)
	}
	f.addRecord(t, "done-1", false)
	if _, _, err := f.records.MarkProcessing(ctx, "done-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := f.records.CompleteAnalysis(ctx, "done-1", store.Analysis{
		BaseBranch:     "Algebra - Foundations",
		DetailedBranch: "Inequalities",
		ErrorType:      "conceptual_gap",
		AnalyzedAt:     time.Now(),
		WeaknessKey:    "Math/Algebra - Foundations/Inequalities",
	}); err != nil {
		t.Fatal(err)
	}

	if err := d.Recover(ctx); err != nil {
		t.Fatal(err)
	}

	if n := len(d.full.tasks); n != 1 {
		t.Errorf("expected pending wrong answer recovered, got %d", n)
	}
	if n := len(d.concept.tasks); n != 1 {
		t.Errorf("expected stuck processing item recovered, got %d", n)
	}
}

func TestDispatcherRunEndToEnd(t *testing.T) {
	// go.opencensus.io starts a global worker goroutine in package init;
	// it is a transitive dependency, not something the dispatcher spawned.
	defer goleak.VerifyNone(t, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))

	d, f := newDispatcherFixture(algebraClassifier())
	f.addRecord(t, "item-1", false)
	f.addRecord(t, "item-2", true)

	// Seed one prior mistake so the mistake/mastery pair nets out the same
	// regardless of which worker finishes first.
	p := taxonomy.Resolve("Math", "Algebra - Foundations", "Linear Equations - One Variable")
	if _, err := f.weaknesses.Increment(context.Background(), p, time.Now()); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	deadline := time.After(5 * time.Second)
	for {
		r1, err := f.records.Get(ctx, "item-1")
		if err != nil {
			t.Fatal(err)
		}
		r2, err := f.records.Get(ctx, "item-2")
		if err != nil {
			t.Fatal(err)
		}
		if r1.AnalysisStatus == store.StatusCompleted && r2.AnalysisStatus == store.StatusCompleted {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("analysis did not complete: item-1=%s item-2=%s", r1.AnalysisStatus, r2.AnalysisStatus)
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	// One new mistake and one mastery cancel out against the seed.
	e, err := f.weaknesses.Get(context.Background(), p.Key())
	if err != nil {
		t.Fatal(err)
	}
	if e == nil || e.Count != 1 {
		t.Fatalf("expected net weakness count 1, got %+v", e)
	}
}
