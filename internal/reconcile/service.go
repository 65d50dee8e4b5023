package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/pvaidya/recheck/internal/store"
)

// Service drains unsynced completed records into the reporting store.
type Service struct {
	records   store.RecordRepo
	reporting ReportingStore
	batchSize int
	log       *zap.Logger
}

// NewService creates a reconciliation service. batchSize caps rows per
// reporting call; <= 0 uses 100.
func NewService(records store.RecordRepo, reporting ReportingStore, batchSize int, log *zap.Logger) *Service {
	if batchSize <= 0 {
		batchSize = 100
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{records: records, reporting: reporting, batchSize: batchSize, log: log}
}

// Sync pushes all unsynced completed records in batches and returns how
// many rows were copied. A record is marked synced only after its batch was
// acknowledged, so an interrupted sync re-sends rather than loses rows.
func (s *Service) Sync(ctx context.Context) (int, error) {
	total := 0
	for {
		recs, err := s.records.UnsyncedCompleted(ctx, s.batchSize)
		if err != nil {
			return total, fmt.Errorf("load unsynced records: %w", err)
		}
		if len(recs) == 0 {
			return total, nil
		}

		rows := make([]Row, len(recs))
		ids := make([]string, len(recs))
		for i, rec := range recs {
			rows[i] = recordToRow(rec)
			ids[i] = rec.ItemID
		}

		if err := s.reporting.UpsertBatch(ctx, rows); err != nil {
			return total, fmt.Errorf("push reporting batch: %w", err)
		}
		if err := s.records.MarkSynced(ctx, ids); err != nil {
			// The batch landed remotely; the next sync re-sends it and the
			// item_id key makes the replay an overwrite.
			return total, fmt.Errorf("mark records synced: %w", err)
		}

		total += len(recs)
		s.log.Info("reporting batch synced", zap.Int("rows", len(recs)))
	}
}

func recordToRow(rec *store.Record) Row {
	row := Row{
		ItemID:    rec.ItemID,
		Subject:   rec.Subject,
		IsCorrect: rec.IsCorrect,
		GradedAt:  rec.GradedAt,
	}
	if rec.Analysis != nil {
		row.BaseBranch = rec.Analysis.BaseBranch
		row.DetailedBranch = rec.Analysis.DetailedBranch
		row.ErrorType = rec.Analysis.ErrorType
		row.SpecificIssue = rec.Analysis.SpecificIssue
		row.Suggestion = rec.Analysis.Suggestion
		row.Confidence = rec.Analysis.Confidence
		row.WeaknessKey = rec.Analysis.WeaknessKey
		row.AnalyzedAt = rec.Analysis.AnalyzedAt
	}
	return row
}

// RunScheduled syncs on a 5-field cron schedule until the context is
// cancelled. An invalid schedule is reported immediately; a failed sync is
// logged and retried at the next tick.
func (s *Service) RunScheduled(ctx context.Context, schedule string) error {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	sched, err := parser.Parse(schedule)
	if err != nil {
		return fmt.Errorf("invalid sync schedule %q: %w", schedule, err)
	}

	s.log.Info("reporting sync scheduled", zap.String("cron", schedule))
	for {
		now := time.Now()
		wait := sched.Next(now).Sub(now)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}

		if n, err := s.Sync(ctx); err != nil {
			s.log.Error("scheduled sync failed", zap.Error(err))
		} else if n > 0 {
			s.log.Info("scheduled sync complete", zap.Int("rows", n))
		}
	}
}
