package store

import (
	"context"
	"fmt"

	"github.com/pvaidya/recheck/ent"
	"github.com/pvaidya/recheck/ent/gradeditem"
)

// recordRepo implements RecordRepo using the ent client.
type recordRepo struct {
	client *ent.Client
}

func (r *recordRepo) Upsert(ctx context.Context, rec *Record) error {
	existing, err := r.find(ctx, rec.ItemID)
	if err != nil {
		return err
	}

	if existing == nil {
		builder := r.client.GradedItem.Create().
			SetItemID(rec.ItemID).
			SetSubject(rec.Subject).
			SetQuestionText(rec.QuestionText).
			SetStudentAnswer(rec.StudentAnswer).
			SetCorrectAnswer(rec.CorrectAnswer).
			SetIsCorrect(rec.IsCorrect).
			SetAnalysisStatus(rec.AnalysisStatus).
			SetAttemptCount(rec.AttemptCount).
			SetSynced(rec.Synced)
		if !rec.GradedAt.IsZero() {
			builder = builder.SetGradedAt(rec.GradedAt)
		}
		if rec.Analysis != nil {
			builder = applyAnalysisCreate(builder, rec.Analysis)
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("create graded item: %w", err)
		}
		return nil
	}

	update := existing.Update().
		SetSubject(rec.Subject).
		SetQuestionText(rec.QuestionText).
		SetStudentAnswer(rec.StudentAnswer).
		SetCorrectAnswer(rec.CorrectAnswer).
		SetIsCorrect(rec.IsCorrect).
		SetAnalysisStatus(rec.AnalysisStatus).
		SetAttemptCount(rec.AttemptCount).
		SetSynced(rec.Synced)
	if rec.Analysis != nil {
		update = applyAnalysisUpdateOne(update, rec.Analysis)
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("update graded item: %w", err)
	}
	return nil
}

func (r *recordRepo) Get(ctx context.Context, itemID string) (*Record, error) {
	e, err := r.find(ctx, itemID)
	if err != nil || e == nil {
		return nil, err
	}
	return entToRecord(e), nil
}

func (r *recordRepo) Query(ctx context.Context, f Filter) ([]*Record, error) {
	q := r.client.GradedItem.Query()

	if f.Subject != "" {
		q = q.Where(gradeditem.Subject(f.Subject))
	}
	if f.BaseBranch != "" {
		q = q.Where(gradeditem.BaseBranch(f.BaseBranch))
	}
	if f.DetailedBranch != "" {
		q = q.Where(gradeditem.DetailedBranch(f.DetailedBranch))
	}
	if f.ErrorType != "" {
		q = q.Where(gradeditem.ErrorType(f.ErrorType))
	}
	if f.Status != "" {
		q = q.Where(gradeditem.AnalysisStatus(f.Status))
	}
	if f.IsCorrect != nil {
		q = q.Where(gradeditem.IsCorrect(*f.IsCorrect))
	}
	if !f.From.IsZero() {
		q = q.Where(gradeditem.GradedAtGTE(f.From))
	}
	if !f.To.IsZero() {
		q = q.Where(gradeditem.GradedAtLTE(f.To))
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	items, err := q.Order(ent.Asc(gradeditem.FieldGradedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query graded items: %w", err)
	}

	out := make([]*Record, len(items))
	for i, e := range items {
		out[i] = entToRecord(e)
	}
	return out, nil
}

func (r *recordRepo) MarkProcessing(ctx context.Context, itemID string) (*Record, bool, error) {
	n, err := r.client.GradedItem.Update().
		Where(
			gradeditem.ItemID(itemID),
			gradeditem.AnalysisStatus(StatusPending),
		).
		SetAnalysisStatus(StatusProcessing).
		Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("mark processing: %w", err)
	}

	e, err := r.find(ctx, itemID)
	if err != nil {
		return nil, false, err
	}
	if e == nil {
		return nil, false, nil
	}

	rec := entToRecord(e)
	// Claimed if we just transitioned it, or it was already processing
	// (a crash leftover this worker is resuming).
	claimed := n > 0 || rec.AnalysisStatus == StatusProcessing
	return rec, claimed, nil
}

func (r *recordRepo) CompleteAnalysis(ctx context.Context, itemID string, a Analysis) (bool, error) {
	update := r.client.GradedItem.Update().
		Where(
			gradeditem.ItemID(itemID),
			gradeditem.AnalysisStatus(StatusProcessing),
		).
		SetAnalysisStatus(StatusCompleted)
	update = applyAnalysisUpdate(update, &a)

	n, err := update.Save(ctx)
	if err != nil {
		return false, fmt.Errorf("complete analysis: %w", err)
	}
	return n > 0, nil
}

func (r *recordRepo) IncrementAttempt(ctx context.Context, itemID string) (int, error) {
	_, err := r.client.GradedItem.Update().
		Where(gradeditem.ItemID(itemID)).
		AddAttemptCount(1).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("increment attempt: %w", err)
	}

	e, err := r.find(ctx, itemID)
	if err != nil {
		return 0, err
	}
	if e == nil {
		return 0, fmt.Errorf("increment attempt: item %s not found", itemID)
	}
	return e.AttemptCount, nil
}

func (r *recordRepo) MarkFailed(ctx context.Context, itemID string) error {
	_, err := r.client.GradedItem.Update().
		Where(
			gradeditem.ItemID(itemID),
			gradeditem.AnalysisStatusNEQ(StatusCompleted),
		).
		SetAnalysisStatus(StatusFailed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark failed: %w", err)
	}
	return nil
}

func (r *recordRepo) Requeue(ctx context.Context, itemID string) (bool, error) {
	n, err := r.client.GradedItem.Update().
		Where(
			gradeditem.ItemID(itemID),
			gradeditem.AnalysisStatus(StatusFailed),
		).
		SetAnalysisStatus(StatusPending).
		SetAttemptCount(0).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("requeue: %w", err)
	}
	return n > 0, nil
}

func (r *recordRepo) UnsyncedCompleted(ctx context.Context, limit int) ([]*Record, error) {
	q := r.client.GradedItem.Query().
		Where(
			gradeditem.AnalysisStatus(StatusCompleted),
			gradeditem.Synced(false),
		).
		Order(ent.Asc(gradeditem.FieldGradedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	items, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query unsynced: %w", err)
	}

	out := make([]*Record, len(items))
	for i, e := range items {
		out[i] = entToRecord(e)
	}
	return out, nil
}

func (r *recordRepo) MarkSynced(ctx context.Context, itemIDs []string) error {
	if len(itemIDs) == 0 {
		return nil
	}
	_, err := r.client.GradedItem.Update().
		Where(gradeditem.ItemIDIn(itemIDs...)).
		SetSynced(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark synced: %w", err)
	}
	return nil
}

func (r *recordRepo) find(ctx context.Context, itemID string) (*ent.GradedItem, error) {
	e, err := r.client.GradedItem.Query().
		Where(gradeditem.ItemID(itemID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find graded item: %w", err)
	}
	return e, nil
}

func applyAnalysisCreate(b *ent.GradedItemCreate, a *Analysis) *ent.GradedItemCreate {
	b = b.SetBaseBranch(a.BaseBranch).
		SetDetailedBranch(a.DetailedBranch).
		SetErrorType(a.ErrorType).
		SetSpecificIssue(a.SpecificIssue).
		SetEvidence(a.Evidence).
		SetSuggestion(a.Suggestion).
		SetConfidence(a.Confidence).
		SetWeaknessKey(a.WeaknessKey)
	if !a.AnalyzedAt.IsZero() {
		b = b.SetAnalyzedAt(a.AnalyzedAt)
	}
	return b
}

func applyAnalysisUpdate(u *ent.GradedItemUpdate, a *Analysis) *ent.GradedItemUpdate {
	u = u.SetBaseBranch(a.BaseBranch).
		SetDetailedBranch(a.DetailedBranch).
		SetErrorType(a.ErrorType).
		SetSpecificIssue(a.SpecificIssue).
		SetEvidence(a.Evidence).
		SetSuggestion(a.Suggestion).
		SetConfidence(a.Confidence).
		SetWeaknessKey(a.WeaknessKey)
	if !a.AnalyzedAt.IsZero() {
		u = u.SetAnalyzedAt(a.AnalyzedAt)
	}
	return u
}

func applyAnalysisUpdateOne(u *ent.GradedItemUpdateOne, a *Analysis) *ent.GradedItemUpdateOne {
	u = u.SetBaseBranch(a.BaseBranch).
		SetDetailedBranch(a.DetailedBranch).
		SetErrorType(a.ErrorType).
		SetSpecificIssue(a.SpecificIssue).
		SetEvidence(a.Evidence).
		SetSuggestion(a.Suggestion).
		SetConfidence(a.Confidence).
		SetWeaknessKey(a.WeaknessKey)
	if !a.AnalyzedAt.IsZero() {
		u = u.SetAnalyzedAt(a.AnalyzedAt)
	}
	return u
}

// entToRecord converts an ent GradedItem to a store Record. The analysis
// block is attached only when a base branch is present, preserving the
// both-or-neither invariant for the branch pair.
func entToRecord(e *ent.GradedItem) *Record {
	rec := &Record{
		ItemID:         e.ItemID,
		Subject:        e.Subject,
		QuestionText:   e.QuestionText,
		StudentAnswer:  e.StudentAnswer,
		CorrectAnswer:  e.CorrectAnswer,
		IsCorrect:      e.IsCorrect,
		AnalysisStatus: e.AnalysisStatus,
		AttemptCount:   e.AttemptCount,
		Synced:         e.Synced,
		GradedAt:       e.GradedAt,
	}
	if e.BaseBranch != "" {
		rec.Analysis = &Analysis{
			BaseBranch:     e.BaseBranch,
			DetailedBranch: e.DetailedBranch,
			ErrorType:      e.ErrorType,
			SpecificIssue:  e.SpecificIssue,
			Evidence:       e.Evidence,
			Suggestion:     e.Suggestion,
			Confidence:     e.Confidence,
			WeaknessKey:    e.WeaknessKey,
		}
		if e.AnalyzedAt != nil {
			rec.Analysis.AnalyzedAt = *e.AnalyzedAt
		}
	}
	return rec
}
