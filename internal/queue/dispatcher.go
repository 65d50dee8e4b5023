package queue

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pvaidya/recheck/internal/gateway"
	"github.com/pvaidya/recheck/internal/store"
	"github.com/pvaidya/recheck/internal/weakness"
)

// Dispatcher routes graded items to the right queue and owns the recovery
// sweep. Wrong answers go to the full-analysis worker, correct answers to
// the concept-only worker.
type Dispatcher struct {
	full    *Worker
	concept *Worker
	records store.RecordRepo
	cfg     Config
	log     *zap.Logger
}

// NewDispatcher wires both workers over shared stores and a classifier.
func NewDispatcher(records store.RecordRepo, weaknesses *weakness.Service, classifier gateway.Classifier, cfg Config, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	cfg = cfg.withDefaults()
	return &Dispatcher{
		full:    NewWorker(KindFullAnalysis, records, weaknesses, classifier, cfg, log),
		concept: NewWorker(KindConceptOnly, records, weaknesses, classifier, cfg, log),
		records: records,
		cfg:     cfg,
		log:     log,
	}
}

// Enqueue submits a record for analysis. Only pending and processing items
// are accepted; completed and failed ones are ignored, so callers can
// re-submit freely.
func (d *Dispatcher) Enqueue(rec *store.Record) {
	switch rec.AnalysisStatus {
	case store.StatusPending, store.StatusProcessing:
	default:
		return
	}
	if rec.IsCorrect {
		d.concept.Enqueue(rec.ItemID)
	} else {
		d.full.Enqueue(rec.ItemID)
	}
}

// Recover re-enqueues every pending and processing record. Called at
// startup to resume work interrupted by a crash, and periodically to pick
// up items dropped by a full channel.
func (d *Dispatcher) Recover(ctx context.Context) error {
	n := 0
	for _, status := range []string{store.StatusPending, store.StatusProcessing} {
		recs, err := d.records.Query(ctx, store.Filter{Status: status})
		if err != nil {
			return fmt.Errorf("recover %s items: %w", status, err)
		}
		for _, rec := range recs {
			d.Enqueue(rec)
			n++
		}
	}
	if n > 0 {
		d.log.Info("recovered unfinished analysis items", zap.Int("count", n))
	}
	return nil
}

// Run starts both workers and the periodic recovery sweep, blocking until
// the context is cancelled.
func (d *Dispatcher) Run(ctx context.Context) error {
	if err := d.Recover(ctx); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return d.full.Run(ctx) })
	g.Go(func() error { return d.concept.Run(ctx) })
	g.Go(func() error {
		ticker := time.NewTicker(d.cfg.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				if err := d.Recover(ctx); err != nil {
					d.log.Error("recovery sweep", zap.Error(err))
				}
			}
		}
	})
	return g.Wait()
}
