package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/pvaidya/recheck/internal/gateway"
	"github.com/pvaidya/recheck/internal/store"
	"github.com/pvaidya/recheck/internal/taxonomy"
	"github.com/pvaidya/recheck/internal/weakness"
)

type fakeClassifier struct {
	mu      sync.Mutex
	calls   [][]gateway.Request
	respond func(items []gateway.Request) ([]gateway.Result, error)
}

func (f *fakeClassifier) Classify(_ context.Context, items []gateway.Request) ([]gateway.Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, items)
	f.mu.Unlock()
	return f.respond(items)
}

func (f *fakeClassifier) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func algebraClassifier() *fakeClassifier {
	return &fakeClassifier{respond: func(items []gateway.Request) ([]gateway.Result, error) {
		results := make([]gateway.Result, len(items))
		for i := range items {
			results[i] = gateway.Result{
				BaseBranch:     "Algebra - Foundations",
				DetailedBranch: "Linear Equations - One Variable",
				ErrorType:      "execution_error",
				SpecificIssue:  "sign error",
				Confidence:     0.9,
			}
		}
		return results, nil
	}}
}

func testConfig() Config {
	return Config{
		BatchSize:        8,
		MaxAttempts:      3,
		RetryInitialWait: time.Millisecond,
		RetryMaxWait:     4 * time.Millisecond,
		Capacity:         16,
		SweepInterval:    time.Hour,
	}
}

type fixture struct {
	records    *store.MemoryRecordRepo
	weaknesses *store.MemoryWeaknessRepo
	weakSvc    *weakness.Service
}

func newFixture() *fixture {
	wr := store.NewMemoryWeaknessRepo()
	return &fixture{
		records:    store.NewMemoryRecordRepo(),
		weaknesses: wr,
		weakSvc:    weakness.NewService(wr, zap.NewNop()),
	}
}

func (f *fixture) worker(kind Kind, c gateway.Classifier) *Worker {
	return NewWorker(kind, f.records, f.weakSvc, c, testConfig(), zap.NewNop())
}

func (f *fixture) addRecord(t *testing.T, itemID string, correct bool) {
	t.Helper()
	err := f.records.Upsert(context.Background(), &store.Record{
		ItemID:         itemID,
		Subject:        "Math",
		QuestionText:   "Solve 2x + 3 = 11",
		StudentAnswer:  "x = 7",
		CorrectAnswer:  "x = 4",
		IsCorrect:      correct,
		AnalysisStatus: store.StatusPending,
		GradedAt:       time.Now(),
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestFullAnalysisCompletesAndCountsWeakness(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.addRecord(t, "item-1", false)
	w := f.worker(KindFullAnalysis, algebraClassifier())

	w.processBatch(ctx, []string{"item-1"})

	rec, err := f.records.Get(ctx, "item-1")
	if err != nil {
		t.Fatal(err)
	}
	if rec.AnalysisStatus != store.StatusCompleted {
		t.Fatalf("expected completed, got %q", rec.AnalysisStatus)
	}
	if rec.Analysis == nil {
		t.Fatal("expected analysis attached")
	}
	if rec.Analysis.ErrorType != string(taxonomy.ErrorExecution) {
		t.Errorf("unexpected error type: %q", rec.Analysis.ErrorType)
	}
	wantKey := "Math/Algebra - Foundations/Linear Equations - One Variable"
	if rec.Analysis.WeaknessKey != wantKey {
		t.Errorf("unexpected weakness key: %q", rec.Analysis.WeaknessKey)
	}

	e, err := f.weaknesses.Get(ctx, wantKey)
	if err != nil {
		t.Fatal(err)
	}
	if e == nil || e.Count != 1 {
		t.Fatalf("expected weakness count 1, got %+v", e)
	}
}

func TestOutOfSetErrorTypeCoerced(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.addRecord(t, "item-1", false)

	c := &fakeClassifier{respond: func(items []gateway.Request) ([]gateway.Result, error) {
		return []gateway.Result{{
			BaseBranch:     "Algebra - Foundations",
			DetailedBranch: "Inequalities",
			ErrorType:      "careless",
		}}, nil
	}}
	w := f.worker(KindFullAnalysis, c)

	w.processBatch(ctx, []string{"item-1"})

	rec, _ := f.records.Get(ctx, "item-1")
	if rec.Analysis.ErrorType != string(taxonomy.DefaultErrorType) {
		t.Fatalf("expected coerced default error type, got %q", rec.Analysis.ErrorType)
	}
}

func TestUnlistedBranchesResolvedBeforeWrite(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.addRecord(t, "item-1", false)

	c := &fakeClassifier{respond: func(items []gateway.Request) ([]gateway.Result, error) {
		return []gateway.Result{{
			BaseBranch:     "Algebra - Foundations",
			DetailedBranch: "Quadratic Systems",
			ErrorType:      "conceptual_gap",
		}}, nil
	}}
	f.worker(KindFullAnalysis, c).processBatch(ctx, []string{"item-1"})

	rec, _ := f.records.Get(ctx, "item-1")
	if rec.Analysis.DetailedBranch != "Linear Equations - One Variable" {
		t.Fatalf("expected unlisted detailed branch substituted, got %q", rec.Analysis.DetailedBranch)
	}
	e, _ := f.weaknesses.Get(ctx, rec.Analysis.WeaknessKey)
	if e == nil || e.Count != 1 {
		t.Fatalf("weakness not counted under resolved key: %+v", e)
	}
}

func TestConceptOnlyDecrementsWeakness(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	p := taxonomy.Resolve("Math", "Algebra - Foundations", "Linear Equations - One Variable")
	for range 2 {
		if _, err := f.weaknesses.Increment(ctx, p, time.Now()); err != nil {
			t.Fatal(err)
		}
	}

	f.addRecord(t, "item-1", true)
	f.worker(KindConceptOnly, algebraClassifier()).processBatch(ctx, []string{"item-1"})

	rec, _ := f.records.Get(ctx, "item-1")
	if rec.AnalysisStatus != store.StatusCompleted {
		t.Fatalf("expected completed, got %q", rec.AnalysisStatus)
	}
	if rec.Analysis.ErrorType != "" {
		t.Errorf("concept-only analysis must not carry an error type, got %q", rec.Analysis.ErrorType)
	}

	e, _ := f.weaknesses.Get(ctx, p.Key())
	if e.Count != 1 {
		t.Fatalf("expected count decremented to 1, got %d", e.Count)
	}
}

func TestBatchFailureExhaustsAttempts(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.addRecord(t, "item-1", false)

	c := &fakeClassifier{respond: func([]gateway.Request) ([]gateway.Result, error) {
		return nil, errors.New("gateway timeout")
	}}
	f.worker(KindFullAnalysis, c).processBatch(ctx, []string{"item-1"})

	if c.callCount() != 3 {
		t.Fatalf("expected 3 attempts, got %d", c.callCount())
	}
	rec, _ := f.records.Get(ctx, "item-1")
	if rec.AnalysisStatus != store.StatusFailed {
		t.Fatalf("expected failed, got %q", rec.AnalysisStatus)
	}
	if rec.AttemptCount != 3 {
		t.Fatalf("expected attempt count 3, got %d", rec.AttemptCount)
	}
}

func TestRequeueAfterFailureRunsAgain(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.addRecord(t, "item-1", false)

	failing := &fakeClassifier{respond: func([]gateway.Request) ([]gateway.Result, error) {
		return nil, errors.New("down")
	}}
	f.worker(KindFullAnalysis, failing).processBatch(ctx, []string{"item-1"})

	ok, err := f.records.Requeue(ctx, "item-1")
	if err != nil || !ok {
		t.Fatalf("requeue: ok=%v err=%v", ok, err)
	}

	f.worker(KindFullAnalysis, algebraClassifier()).processBatch(ctx, []string{"item-1"})

	rec, _ := f.records.Get(ctx, "item-1")
	if rec.AnalysisStatus != store.StatusCompleted {
		t.Fatalf("expected completed after requeue, got %q", rec.AnalysisStatus)
	}
}

func TestCompletedItemNotReprocessed(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.addRecord(t, "item-1", false)

	c := algebraClassifier()
	w := f.worker(KindFullAnalysis, c)
	w.processBatch(ctx, []string{"item-1"})
	w.processBatch(ctx, []string{"item-1"})

	if c.callCount() != 1 {
		t.Fatalf("completed item must not be classified again, got %d calls", c.callCount())
	}
	e, _ := f.weaknesses.Get(ctx, "Math/Algebra - Foundations/Linear Equations - One Variable")
	if e.Count != 1 {
		t.Fatalf("weakness double-counted: %d", e.Count)
	}
}

func TestPerItemFailureChargedAgainstBudget(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.addRecord(t, "good", false)
	f.addRecord(t, "bad", false)

	c := &fakeClassifier{respond: func(items []gateway.Request) ([]gateway.Result, error) {
		results := make([]gateway.Result, len(items))
		for i, it := range items {
			if it.QuestionText == "poison" {
				results[i] = gateway.Result{AnalysisFailed: true}
				continue
			}
			results[i] = gateway.Result{
				BaseBranch:     "Algebra - Foundations",
				DetailedBranch: "Inequalities",
				ErrorType:      "conceptual_gap",
			}
		}
		return results, nil
	}}

	bad, _ := f.records.Get(ctx, "bad")
	bad.QuestionText = "poison"
	if err := f.records.Upsert(ctx, bad); err != nil {
		t.Fatal(err)
	}

	w := f.worker(KindFullAnalysis, c)
	w.processBatch(ctx, []string{"good", "bad"})

	good, _ := f.records.Get(ctx, "good")
	if good.AnalysisStatus != store.StatusCompleted {
		t.Fatalf("good item should complete, got %q", good.AnalysisStatus)
	}

	bad, _ = f.records.Get(ctx, "bad")
	if bad.AnalysisStatus != store.StatusProcessing {
		t.Fatalf("failed item should stay processing for the sweep, got %q", bad.AnalysisStatus)
	}
	if bad.AttemptCount != 1 {
		t.Fatalf("expected 1 attempt charged, got %d", bad.AttemptCount)
	}

	// Two more sweeps exhaust the budget.
	w.processBatch(ctx, []string{"bad"})
	w.processBatch(ctx, []string{"bad"})
	bad, _ = f.records.Get(ctx, "bad")
	if bad.AnalysisStatus != store.StatusFailed {
		t.Fatalf("expected failed after budget exhausted, got %q", bad.AnalysisStatus)
	}
}

func TestEnqueueIdempotent(t *testing.T) {
	f := newFixture()
	w := f.worker(KindFullAnalysis, algebraClassifier())

	w.Enqueue("item-1")
	w.Enqueue("item-1")
	w.Enqueue("item-1")

	if n := len(w.tasks); n != 1 {
		t.Fatalf("expected 1 queued task, got %d", n)
	}
}

func TestEnqueueFullChannelDropsTask(t *testing.T) {
	f := newFixture()
	cfg := testConfig()
	cfg.Capacity = 2
	w := NewWorker(KindFullAnalysis, f.records, f.weakSvc, algebraClassifier(), cfg, zap.NewNop())

	w.Enqueue("a")
	w.Enqueue("b")
	w.Enqueue("c")

	if n := len(w.tasks); n != 2 {
		t.Fatalf("expected channel capped at 2, got %d", n)
	}
	// The dropped task was not marked inflight, so it can come back later.
	w.mu.Lock()
	_, held := w.inflight["c"]
	w.mu.Unlock()
	if held {
		t.Fatal("dropped task must not stay inflight")
	}
}
