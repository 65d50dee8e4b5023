// Package queue drives the asynchronous second pass. Grading enqueues items
// for classification without waiting; workers batch them, call the
// classification gateway, and apply the results to the record store and the
// weakness profile. The queue itself is a volatile accelerator: the durable
// source of truth is the analysis_status marker on each record, so a crash
// at any point is recovered by re-enqueuing pending and processing items.
package queue

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pvaidya/recheck/internal/gateway"
	"github.com/pvaidya/recheck/internal/store"
	"github.com/pvaidya/recheck/internal/taxonomy"
	"github.com/pvaidya/recheck/internal/weakness"
)

// Kind identifies which of the two analysis queues an item belongs to.
// Wrong answers get a full mistake analysis; correct answers get the
// cheaper concept-only extraction.
type Kind string

const (
	KindFullAnalysis Kind = "full_analysis"
	KindConceptOnly  Kind = "concept_only"
)

func (k Kind) mode() gateway.Mode {
	if k == KindConceptOnly {
		return gateway.ModeConceptOnly
	}
	return gateway.ModeFull
}

// Config holds worker tuning knobs.
type Config struct {
	// BatchSize caps how many items go into one gateway call.
	BatchSize int
	// MaxAttempts is the per-item attempt budget before the item is parked
	// as failed. The counter is persisted on the record, so it survives
	// restarts.
	MaxAttempts int
	// RetryInitialWait and RetryMaxWait bound the exponential backoff
	// between failed batch rounds.
	RetryInitialWait time.Duration
	RetryMaxWait     time.Duration
	// Capacity is the task channel buffer. A full channel drops the enqueue;
	// the recovery sweep picks the item up later.
	Capacity int
	// SweepInterval is how often the dispatcher re-enqueues pending and
	// processing leftovers. An item whose own analysis failed under budget
	// waits in processing for the next sweep, so this is also the per-item
	// retry cadence.
	SweepInterval time.Duration
}

// DefaultConfig returns the standard worker tuning.
func DefaultConfig() Config {
	return Config{
		BatchSize:        8,
		MaxAttempts:      3,
		RetryInitialWait: 1 * time.Second,
		RetryMaxWait:     30 * time.Second,
		Capacity:         256,
		SweepInterval:    time.Minute,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.BatchSize <= 0 {
		c.BatchSize = d.BatchSize
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = d.MaxAttempts
	}
	if c.RetryInitialWait <= 0 {
		c.RetryInitialWait = d.RetryInitialWait
	}
	if c.RetryMaxWait <= 0 {
		c.RetryMaxWait = d.RetryMaxWait
	}
	if c.Capacity <= 0 {
		c.Capacity = d.Capacity
	}
	if c.SweepInterval <= 0 {
		c.SweepInterval = d.SweepInterval
	}
	return c
}

// Worker consumes one queue kind serially. Within a worker there is no
// concurrency, so per-item transitions never race with themselves.
type Worker struct {
	kind       Kind
	records    store.RecordRepo
	weaknesses *weakness.Service
	classifier gateway.Classifier
	cfg        Config
	log        *zap.Logger

	tasks chan string

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewWorker creates a worker for one queue kind.
func NewWorker(kind Kind, records store.RecordRepo, weaknesses *weakness.Service, classifier gateway.Classifier, cfg Config, log *zap.Logger) *Worker {
	if log == nil {
		log = zap.NewNop()
	}
	cfg = cfg.withDefaults()
	return &Worker{
		kind:       kind,
		records:    records,
		weaknesses: weaknesses,
		classifier: classifier,
		cfg:        cfg,
		log:        log.With(zap.String("queue", string(kind))),
		tasks:      make(chan string, cfg.Capacity),
		inflight:   make(map[string]struct{}),
	}
}

// Enqueue hands an item to the worker without blocking the caller. Items
// already queued or being processed are ignored, so repeated enqueues of
// the same item are harmless. A full channel drops the task; the recovery
// sweep re-enqueues it later.
func (w *Worker) Enqueue(itemID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.inflight[itemID]; ok {
		return
	}

	select {
	case w.tasks <- itemID:
		w.inflight[itemID] = struct{}{}
	default:
		w.log.Warn("queue full, deferring to recovery sweep", zap.String("item_id", itemID))
	}
}

// Run processes tasks until the context is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case first := <-w.tasks:
			w.processBatch(ctx, w.collect(first))
		}
	}
}

// collect drains up to BatchSize queued items without blocking.
func (w *Worker) collect(first string) []string {
	ids := []string{first}
	for len(ids) < w.cfg.BatchSize {
		select {
		case id := <-w.tasks:
			ids = append(ids, id)
		default:
			return ids
		}
	}
	return ids
}

func (w *Worker) markDone(ids ...string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, id := range ids {
		delete(w.inflight, id)
	}
}

// processBatch claims the items, classifies them in rounds with backoff,
// and applies results. Items that exhaust their attempt budget are parked
// as failed; items that stay unresolved remain in processing for the
// recovery sweep.
func (w *Worker) processBatch(ctx context.Context, ids []string) {
	defer w.markDone(ids...)

	var recs []*store.Record
	for _, id := range ids {
		rec, claimed, err := w.records.MarkProcessing(ctx, id)
		if err != nil {
			w.log.Error("claim item", zap.String("item_id", id), zap.Error(err))
			continue
		}
		if !claimed {
			// Already completed, failed, or gone.
			continue
		}
		recs = append(recs, rec)
	}

	wait := w.cfg.RetryInitialWait
	for len(recs) > 0 {
		results, err := w.classifier.Classify(ctx, w.buildRequests(recs))
		if err == nil {
			w.applyResults(ctx, recs, results)
			return
		}

		w.log.Warn("classification batch failed",
			zap.Int("items", len(recs)),
			zap.Error(err))

		recs = w.chargeAttempt(ctx, recs)
		if len(recs) == 0 {
			return
		}

		select {
		case <-ctx.Done():
			// Items stay in processing; the next recovery sweep reclaims them.
			return
		case <-time.After(wait):
		}
		wait = min(wait*2, w.cfg.RetryMaxWait)
	}
}

// chargeAttempt bumps each item's persisted attempt counter, parks items
// over budget as failed, and returns the survivors.
func (w *Worker) chargeAttempt(ctx context.Context, recs []*store.Record) []*store.Record {
	survivors := recs[:0]
	for _, rec := range recs {
		attempts, err := w.records.IncrementAttempt(ctx, rec.ItemID)
		if err != nil {
			w.log.Error("increment attempt", zap.String("item_id", rec.ItemID), zap.Error(err))
			continue
		}
		if attempts < w.cfg.MaxAttempts {
			survivors = append(survivors, rec)
			continue
		}
		if err := w.records.MarkFailed(ctx, rec.ItemID); err != nil {
			w.log.Error("mark failed", zap.String("item_id", rec.ItemID), zap.Error(err))
			continue
		}
		w.log.Error("analysis failed permanently",
			zap.String("item_id", rec.ItemID),
			zap.Int("attempts", attempts))
	}
	return survivors
}

func (w *Worker) buildRequests(recs []*store.Record) []gateway.Request {
	reqs := make([]gateway.Request, len(recs))
	for i, rec := range recs {
		reqs[i] = gateway.Request{
			QuestionText:  rec.QuestionText,
			StudentAnswer: rec.StudentAnswer,
			CorrectAnswer: rec.CorrectAnswer,
			Subject:       rec.Subject,
			Mode:          w.kind.mode(),
		}
	}
	return reqs
}

// applyResults writes each item's analysis and updates the weakness
// profile. The record transition is written first; the weakness side effect
// only fires when this call actually performed the transition, so a
// crash-and-resume replay cannot double-count.
func (w *Worker) applyResults(ctx context.Context, recs []*store.Record, results []gateway.Result) {
	now := time.Now().UTC()
	for i, rec := range recs {
		res := results[i]
		if res.AnalysisFailed {
			w.handleItemFailure(ctx, rec)
			continue
		}

		path := taxonomy.Resolve(rec.Subject, res.BaseBranch, res.DetailedBranch)

		a := store.Analysis{
			BaseBranch:     path.BaseBranch,
			DetailedBranch: path.DetailedBranch,
			SpecificIssue:  res.SpecificIssue,
			Evidence:       res.Evidence,
			Suggestion:     res.LearningSuggestion,
			Confidence:     res.Confidence,
			AnalyzedAt:     now,
			WeaknessKey:    path.Key(),
		}
		if w.kind == KindFullAnalysis {
			a.ErrorType = string(taxonomy.ParseErrorType(res.ErrorType))
		}

		transitioned, err := w.records.CompleteAnalysis(ctx, rec.ItemID, a)
		if err != nil {
			w.log.Error("complete analysis", zap.String("item_id", rec.ItemID), zap.Error(err))
			continue
		}
		if !transitioned {
			continue
		}

		if w.kind == KindFullAnalysis {
			_, err = w.weaknesses.RecordMistake(ctx, path, now)
		} else {
			_, err = w.weaknesses.RecordMastery(ctx, path, now)
		}
		if err != nil {
			w.log.Error("update weakness profile",
				zap.String("item_id", rec.ItemID),
				zap.String("key", path.Key()),
				zap.Error(err))
		}
	}
}

// handleItemFailure charges a per-item failure marker against the attempt
// budget. Under budget, the item stays in processing and the recovery sweep
// retries it.
func (w *Worker) handleItemFailure(ctx context.Context, rec *store.Record) {
	attempts, err := w.records.IncrementAttempt(ctx, rec.ItemID)
	if err != nil {
		w.log.Error("increment attempt", zap.String("item_id", rec.ItemID), zap.Error(err))
		return
	}
	if attempts < w.cfg.MaxAttempts {
		w.log.Warn("item classification failed, will retry",
			zap.String("item_id", rec.ItemID),
			zap.Int("attempts", attempts))
		return
	}
	if err := w.records.MarkFailed(ctx, rec.ItemID); err != nil {
		w.log.Error("mark failed", zap.String("item_id", rec.ItemID), zap.Error(err))
		return
	}
	w.log.Error("analysis failed permanently",
		zap.String("item_id", rec.ItemID),
		zap.Int("attempts", attempts))
}
