// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pvaidya/recheck/ent/gradeditem"
	"github.com/pvaidya/recheck/ent/predicate"
)

// GradedItemUpdate is the builder for updating GradedItem entities.
type GradedItemUpdate struct {
	config
	hooks    []Hook
	mutation *GradedItemMutation
}

// Where appends a list predicates to the GradedItemUpdate builder.
func (_u *GradedItemUpdate) Where(ps ...predicate.GradedItem) *GradedItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *GradedItemUpdate) SetSubject(v string) *GradedItemUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *GradedItemUpdate) SetNillableSubject(v *string) *GradedItemUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *GradedItemUpdate) SetQuestionText(v string) *GradedItemUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *GradedItemUpdate) SetNillableQuestionText(v *string) *GradedItemUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetStudentAnswer sets the "student_answer" field.
func (_u *GradedItemUpdate) SetStudentAnswer(v string) *GradedItemUpdate {
	_u.mutation.SetStudentAnswer(v)
	return _u
}

// SetNillableStudentAnswer sets the "student_answer" field if the given value is not nil.
func (_u *GradedItemUpdate) SetNillableStudentAnswer(v *string) *GradedItemUpdate {
	if v != nil {
		_u.SetStudentAnswer(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *GradedItemUpdate) SetCorrectAnswer(v string) *GradedItemUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *GradedItemUpdate) SetNillableCorrectAnswer(v *string) *GradedItemUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *GradedItemUpdate) SetIsCorrect(v bool) *GradedItemUpdate {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *GradedItemUpdate) SetNillableIsCorrect(v *bool) *GradedItemUpdate {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetAnalysisStatus sets the "analysis_status" field.
func (_u *GradedItemUpdate) SetAnalysisStatus(v string) *GradedItemUpdate {
	_u.mutation.SetAnalysisStatus(v)
	return _u
}

// SetNillableAnalysisStatus sets the "analysis_status" field if the given value is not nil.
func (_u *GradedItemUpdate) SetNillableAnalysisStatus(v *string) *GradedItemUpdate {
	if v != nil {
		_u.SetAnalysisStatus(*v)
	}
	return _u
}

// SetBaseBranch sets the "base_branch" field.
func (_u *GradedItemUpdate) SetBaseBranch(v string) *GradedItemUpdate {
	_u.mutation.SetBaseBranch(v)
	return _u
}

// SetNillableBaseBranch sets the "base_branch" field if the given value is not nil.
func (_u *GradedItemUpdate) SetNillableBaseBranch(v *string) *GradedItemUpdate {
	if v != nil {
		_u.SetBaseBranch(*v)
	}
	return _u
}

// ClearBaseBranch clears the value of the "base_branch" field.
func (_u *GradedItemUpdate) ClearBaseBranch() *GradedItemUpdate {
	_u.mutation.ClearBaseBranch()
	return _u
}

// SetDetailedBranch sets the "detailed_branch" field.
func (_u *GradedItemUpdate) SetDetailedBranch(v string) *GradedItemUpdate {
	_u.mutation.SetDetailedBranch(v)
	return _u
}

// SetNillableDetailedBranch sets the "detailed_branch" field if the given value is not nil.
func (_u *GradedItemUpdate) SetNillableDetailedBranch(v *string) *GradedItemUpdate {
	if v != nil {
		_u.SetDetailedBranch(*v)
	}
	return _u
}

// ClearDetailedBranch clears the value of the "detailed_branch" field.
func (_u *GradedItemUpdate) ClearDetailedBranch() *GradedItemUpdate {
	_u.mutation.ClearDetailedBranch()
	return _u
}

// SetErrorType sets the "error_type" field.
func (_u *GradedItemUpdate) SetErrorType(v string) *GradedItemUpdate {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *GradedItemUpdate) SetNillableErrorType(v *string) *GradedItemUpdate {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// ClearErrorType clears the value of the "error_type" field.
func (_u *GradedItemUpdate) ClearErrorType() *GradedItemUpdate {
	_u.mutation.ClearErrorType()
	return _u
}

// SetSpecificIssue sets the "specific_issue" field.
func (_u *GradedItemUpdate) SetSpecificIssue(v string) *GradedItemUpdate {
	_u.mutation.SetSpecificIssue(v)
	return _u
}

// SetNillableSpecificIssue sets the "specific_issue" field if the given value is not nil.
func (_u *GradedItemUpdate) SetNillableSpecificIssue(v *string) *GradedItemUpdate {
	if v != nil {
		_u.SetSpecificIssue(*v)
	}
	return _u
}

// ClearSpecificIssue clears the value of the "specific_issue" field.
func (_u *GradedItemUpdate) ClearSpecificIssue() *GradedItemUpdate {
	_u.mutation.ClearSpecificIssue()
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *GradedItemUpdate) SetEvidence(v string) *GradedItemUpdate {
	_u.mutation.SetEvidence(v)
	return _u
}

// SetNillableEvidence sets the "evidence" field if the given value is not nil.
func (_u *GradedItemUpdate) SetNillableEvidence(v *string) *GradedItemUpdate {
	if v != nil {
		_u.SetEvidence(*v)
	}
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *GradedItemUpdate) ClearEvidence() *GradedItemUpdate {
	_u.mutation.ClearEvidence()
	return _u
}

// SetSuggestion sets the "suggestion" field.
func (_u *GradedItemUpdate) SetSuggestion(v string) *GradedItemUpdate {
	_u.mutation.SetSuggestion(v)
	return _u
}

// SetNillableSuggestion sets the "suggestion" field if the given value is not nil.
func (_u *GradedItemUpdate) SetNillableSuggestion(v *string) *GradedItemUpdate {
	if v != nil {
		_u.SetSuggestion(*v)
	}
	return _u
}

// ClearSuggestion clears the value of the "suggestion" field.
func (_u *GradedItemUpdate) ClearSuggestion() *GradedItemUpdate {
	_u.mutation.ClearSuggestion()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *GradedItemUpdate) SetConfidence(v float64) *GradedItemUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *GradedItemUpdate) SetNillableConfidence(v *float64) *GradedItemUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *GradedItemUpdate) AddConfidence(v float64) *GradedItemUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *GradedItemUpdate) ClearConfidence() *GradedItemUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetAnalyzedAt sets the "analyzed_at" field.
func (_u *GradedItemUpdate) SetAnalyzedAt(v time.Time) *GradedItemUpdate {
	_u.mutation.SetAnalyzedAt(v)
	return _u
}

// SetNillableAnalyzedAt sets the "analyzed_at" field if the given value is not nil.
func (_u *GradedItemUpdate) SetNillableAnalyzedAt(v *time.Time) *GradedItemUpdate {
	if v != nil {
		_u.SetAnalyzedAt(*v)
	}
	return _u
}

// ClearAnalyzedAt clears the value of the "analyzed_at" field.
func (_u *GradedItemUpdate) ClearAnalyzedAt() *GradedItemUpdate {
	_u.mutation.ClearAnalyzedAt()
	return _u
}

// SetWeaknessKey sets the "weakness_key" field.
func (_u *GradedItemUpdate) SetWeaknessKey(v string) *GradedItemUpdate {
	_u.mutation.SetWeaknessKey(v)
	return _u
}

// SetNillableWeaknessKey sets the "weakness_key" field if the given value is not nil.
func (_u *GradedItemUpdate) SetNillableWeaknessKey(v *string) *GradedItemUpdate {
	if v != nil {
		_u.SetWeaknessKey(*v)
	}
	return _u
}

// ClearWeaknessKey clears the value of the "weakness_key" field.
func (_u *GradedItemUpdate) ClearWeaknessKey() *GradedItemUpdate {
	_u.mutation.ClearWeaknessKey()
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *GradedItemUpdate) SetAttemptCount(v int) *GradedItemUpdate {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *GradedItemUpdate) SetNillableAttemptCount(v *int) *GradedItemUpdate {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *GradedItemUpdate) AddAttemptCount(v int) *GradedItemUpdate {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetSynced sets the "synced" field.
func (_u *GradedItemUpdate) SetSynced(v bool) *GradedItemUpdate {
	_u.mutation.SetSynced(v)
	return _u
}

// SetNillableSynced sets the "synced" field if the given value is not nil.
func (_u *GradedItemUpdate) SetNillableSynced(v *bool) *GradedItemUpdate {
	if v != nil {
		_u.SetSynced(*v)
	}
	return _u
}

// Mutation returns the GradedItemMutation object of the builder.
func (_u *GradedItemUpdate) Mutation() *GradedItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GradedItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradedItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GradedItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradedItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GradedItemUpdate) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := gradeditem.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "GradedItem.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := gradeditem.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "GradedItem.question_text": %w`, err)}
		}
	}
	return nil
}

func (_u *GradedItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gradeditem.Table, gradeditem.Columns, sqlgraph.NewFieldSpec(gradeditem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(gradeditem.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(gradeditem.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentAnswer(); ok {
		_spec.SetField(gradeditem.FieldStudentAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(gradeditem.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(gradeditem.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AnalysisStatus(); ok {
		_spec.SetField(gradeditem.FieldAnalysisStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.BaseBranch(); ok {
		_spec.SetField(gradeditem.FieldBaseBranch, field.TypeString, value)
	}
	if _u.mutation.BaseBranchCleared() {
		_spec.ClearField(gradeditem.FieldBaseBranch, field.TypeString)
	}
	if value, ok := _u.mutation.DetailedBranch(); ok {
		_spec.SetField(gradeditem.FieldDetailedBranch, field.TypeString, value)
	}
	if _u.mutation.DetailedBranchCleared() {
		_spec.ClearField(gradeditem.FieldDetailedBranch, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(gradeditem.FieldErrorType, field.TypeString, value)
	}
	if _u.mutation.ErrorTypeCleared() {
		_spec.ClearField(gradeditem.FieldErrorType, field.TypeString)
	}
	if value, ok := _u.mutation.SpecificIssue(); ok {
		_spec.SetField(gradeditem.FieldSpecificIssue, field.TypeString, value)
	}
	if _u.mutation.SpecificIssueCleared() {
		_spec.ClearField(gradeditem.FieldSpecificIssue, field.TypeString)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(gradeditem.FieldEvidence, field.TypeString, value)
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(gradeditem.FieldEvidence, field.TypeString)
	}
	if value, ok := _u.mutation.Suggestion(); ok {
		_spec.SetField(gradeditem.FieldSuggestion, field.TypeString, value)
	}
	if _u.mutation.SuggestionCleared() {
		_spec.ClearField(gradeditem.FieldSuggestion, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(gradeditem.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(gradeditem.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(gradeditem.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AnalyzedAt(); ok {
		_spec.SetField(gradeditem.FieldAnalyzedAt, field.TypeTime, value)
	}
	if _u.mutation.AnalyzedAtCleared() {
		_spec.ClearField(gradeditem.FieldAnalyzedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.WeaknessKey(); ok {
		_spec.SetField(gradeditem.FieldWeaknessKey, field.TypeString, value)
	}
	if _u.mutation.WeaknessKeyCleared() {
		_spec.ClearField(gradeditem.FieldWeaknessKey, field.TypeString)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(gradeditem.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(gradeditem.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Synced(); ok {
		_spec.SetField(gradeditem.FieldSynced, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gradeditem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GradedItemUpdateOne is the builder for updating a single GradedItem entity.
type GradedItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GradedItemMutation
}

// SetSubject sets the "subject" field.
func (_u *GradedItemUpdateOne) SetSubject(v string) *GradedItemUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *GradedItemUpdateOne) SetNillableSubject(v *string) *GradedItemUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *GradedItemUpdateOne) SetQuestionText(v string) *GradedItemUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *GradedItemUpdateOne) SetNillableQuestionText(v *string) *GradedItemUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetStudentAnswer sets the "student_answer" field.
func (_u *GradedItemUpdateOne) SetStudentAnswer(v string) *GradedItemUpdateOne {
	_u.mutation.SetStudentAnswer(v)
	return _u
}

// SetNillableStudentAnswer sets the "student_answer" field if the given value is not nil.
func (_u *GradedItemUpdateOne) SetNillableStudentAnswer(v *string) *GradedItemUpdateOne {
	if v != nil {
		_u.SetStudentAnswer(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *GradedItemUpdateOne) SetCorrectAnswer(v string) *GradedItemUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *GradedItemUpdateOne) SetNillableCorrectAnswer(v *string) *GradedItemUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *GradedItemUpdateOne) SetIsCorrect(v bool) *GradedItemUpdateOne {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *GradedItemUpdateOne) SetNillableIsCorrect(v *bool) *GradedItemUpdateOne {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetAnalysisStatus sets the "analysis_status" field.
func (_u *GradedItemUpdateOne) SetAnalysisStatus(v string) *GradedItemUpdateOne {
	_u.mutation.SetAnalysisStatus(v)
	return _u
}

// SetNillableAnalysisStatus sets the "analysis_status" field if the given value is not nil.
func (_u *GradedItemUpdateOne) SetNillableAnalysisStatus(v *string) *GradedItemUpdateOne {
	if v != nil {
		_u.SetAnalysisStatus(*v)
	}
	return _u
}

// SetBaseBranch sets the "base_branch" field.
func (_u *GradedItemUpdateOne) SetBaseBranch(v string) *GradedItemUpdateOne {
	_u.mutation.SetBaseBranch(v)
	return _u
}

// SetNillableBaseBranch sets the "base_branch" field if the given value is not nil.
func (_u *GradedItemUpdateOne) SetNillableBaseBranch(v *string) *GradedItemUpdateOne {
	if v != nil {
		_u.SetBaseBranch(*v)
	}
	return _u
}

// ClearBaseBranch clears the value of the "base_branch" field.
func (_u *GradedItemUpdateOne) ClearBaseBranch() *GradedItemUpdateOne {
	_u.mutation.ClearBaseBranch()
	return _u
}

// SetDetailedBranch sets the "detailed_branch" field.
func (_u *GradedItemUpdateOne) SetDetailedBranch(v string) *GradedItemUpdateOne {
	_u.mutation.SetDetailedBranch(v)
	return _u
}

// SetNillableDetailedBranch sets the "detailed_branch" field if the given value is not nil.
func (_u *GradedItemUpdateOne) SetNillableDetailedBranch(v *string) *GradedItemUpdateOne {
	if v != nil {
		_u.SetDetailedBranch(*v)
	}
	return _u
}

// ClearDetailedBranch clears the value of the "detailed_branch" field.
func (_u *GradedItemUpdateOne) ClearDetailedBranch() *GradedItemUpdateOne {
	_u.mutation.ClearDetailedBranch()
	return _u
}

// SetErrorType sets the "error_type" field.
func (_u *GradedItemUpdateOne) SetErrorType(v string) *GradedItemUpdateOne {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *GradedItemUpdateOne) SetNillableErrorType(v *string) *GradedItemUpdateOne {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// ClearErrorType clears the value of the "error_type" field.
func (_u *GradedItemUpdateOne) ClearErrorType() *GradedItemUpdateOne {
	_u.mutation.ClearErrorType()
	return _u
}

// SetSpecificIssue sets the "specific_issue" field.
func (_u *GradedItemUpdateOne) SetSpecificIssue(v string) *GradedItemUpdateOne {
	_u.mutation.SetSpecificIssue(v)
	return _u
}

// SetNillableSpecificIssue sets the "specific_issue" field if the given value is not nil.
func (_u *GradedItemUpdateOne) SetNillableSpecificIssue(v *string) *GradedItemUpdateOne {
	if v != nil {
		_u.SetSpecificIssue(*v)
	}
	return _u
}

// ClearSpecificIssue clears the value of the "specific_issue" field.
func (_u *GradedItemUpdateOne) ClearSpecificIssue() *GradedItemUpdateOne {
	_u.mutation.ClearSpecificIssue()
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *GradedItemUpdateOne) SetEvidence(v string) *GradedItemUpdateOne {
	_u.mutation.SetEvidence(v)
	return _u
}

// SetNillableEvidence sets the "evidence" field if the given value is not nil.
func (_u *GradedItemUpdateOne) SetNillableEvidence(v *string) *GradedItemUpdateOne {
	if v != nil {
		_u.SetEvidence(*v)
	}
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *GradedItemUpdateOne) ClearEvidence() *GradedItemUpdateOne {
	_u.mutation.ClearEvidence()
	return _u
}

// SetSuggestion sets the "suggestion" field.
func (_u *GradedItemUpdateOne) SetSuggestion(v string) *GradedItemUpdateOne {
	_u.mutation.SetSuggestion(v)
	return _u
}

// SetNillableSuggestion sets the "suggestion" field if the given value is not nil.
func (_u *GradedItemUpdateOne) SetNillableSuggestion(v *string) *GradedItemUpdateOne {
	if v != nil {
		_u.SetSuggestion(*v)
	}
	return _u
}

// ClearSuggestion clears the value of the "suggestion" field.
func (_u *GradedItemUpdateOne) ClearSuggestion() *GradedItemUpdateOne {
	_u.mutation.ClearSuggestion()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *GradedItemUpdateOne) SetConfidence(v float64) *GradedItemUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *GradedItemUpdateOne) SetNillableConfidence(v *float64) *GradedItemUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *GradedItemUpdateOne) AddConfidence(v float64) *GradedItemUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *GradedItemUpdateOne) ClearConfidence() *GradedItemUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetAnalyzedAt sets the "analyzed_at" field.
func (_u *GradedItemUpdateOne) SetAnalyzedAt(v time.Time) *GradedItemUpdateOne {
	_u.mutation.SetAnalyzedAt(v)
	return _u
}

// SetNillableAnalyzedAt sets the "analyzed_at" field if the given value is not nil.
func (_u *GradedItemUpdateOne) SetNillableAnalyzedAt(v *time.Time) *GradedItemUpdateOne {
	if v != nil {
		_u.SetAnalyzedAt(*v)
	}
	return _u
}

// ClearAnalyzedAt clears the value of the "analyzed_at" field.
func (_u *GradedItemUpdateOne) ClearAnalyzedAt() *GradedItemUpdateOne {
	_u.mutation.ClearAnalyzedAt()
	return _u
}

// SetWeaknessKey sets the "weakness_key" field.
func (_u *GradedItemUpdateOne) SetWeaknessKey(v string) *GradedItemUpdateOne {
	_u.mutation.SetWeaknessKey(v)
	return _u
}

// SetNillableWeaknessKey sets the "weakness_key" field if the given value is not nil.
func (_u *GradedItemUpdateOne) SetNillableWeaknessKey(v *string) *GradedItemUpdateOne {
	if v != nil {
		_u.SetWeaknessKey(*v)
	}
	return _u
}

// ClearWeaknessKey clears the value of the "weakness_key" field.
func (_u *GradedItemUpdateOne) ClearWeaknessKey() *GradedItemUpdateOne {
	_u.mutation.ClearWeaknessKey()
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *GradedItemUpdateOne) SetAttemptCount(v int) *GradedItemUpdateOne {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *GradedItemUpdateOne) SetNillableAttemptCount(v *int) *GradedItemUpdateOne {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *GradedItemUpdateOne) AddAttemptCount(v int) *GradedItemUpdateOne {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetSynced sets the "synced" field.
func (_u *GradedItemUpdateOne) SetSynced(v bool) *GradedItemUpdateOne {
	_u.mutation.SetSynced(v)
	return _u
}

// SetNillableSynced sets the "synced" field if the given value is not nil.
func (_u *GradedItemUpdateOne) SetNillableSynced(v *bool) *GradedItemUpdateOne {
	if v != nil {
		_u.SetSynced(*v)
	}
	return _u
}

// Mutation returns the GradedItemMutation object of the builder.
func (_u *GradedItemUpdateOne) Mutation() *GradedItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the GradedItemUpdate builder.
func (_u *GradedItemUpdateOne) Where(ps ...predicate.GradedItem) *GradedItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GradedItemUpdateOne) Select(field string, fields ...string) *GradedItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GradedItem entity.
func (_u *GradedItemUpdateOne) Save(ctx context.Context) (*GradedItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradedItemUpdateOne) SaveX(ctx context.Context) *GradedItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GradedItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradedItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GradedItemUpdateOne) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := gradeditem.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "GradedItem.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := gradeditem.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "GradedItem.question_text": %w`, err)}
		}
	}
	return nil
}

func (_u *GradedItemUpdateOne) sqlSave(ctx context.Context) (_node *GradedItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gradeditem.Table, gradeditem.Columns, sqlgraph.NewFieldSpec(gradeditem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GradedItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gradeditem.FieldID)
		for _, f := range fields {
			if !gradeditem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gradeditem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(gradeditem.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(gradeditem.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentAnswer(); ok {
		_spec.SetField(gradeditem.FieldStudentAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(gradeditem.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(gradeditem.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AnalysisStatus(); ok {
		_spec.SetField(gradeditem.FieldAnalysisStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.BaseBranch(); ok {
		_spec.SetField(gradeditem.FieldBaseBranch, field.TypeString, value)
	}
	if _u.mutation.BaseBranchCleared() {
		_spec.ClearField(gradeditem.FieldBaseBranch, field.TypeString)
	}
	if value, ok := _u.mutation.DetailedBranch(); ok {
		_spec.SetField(gradeditem.FieldDetailedBranch, field.TypeString, value)
	}
	if _u.mutation.DetailedBranchCleared() {
		_spec.ClearField(gradeditem.FieldDetailedBranch, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(gradeditem.FieldErrorType, field.TypeString, value)
	}
	if _u.mutation.ErrorTypeCleared() {
		_spec.ClearField(gradeditem.FieldErrorType, field.TypeString)
	}
	if value, ok := _u.mutation.SpecificIssue(); ok {
		_spec.SetField(gradeditem.FieldSpecificIssue, field.TypeString, value)
	}
	if _u.mutation.SpecificIssueCleared() {
		_spec.ClearField(gradeditem.FieldSpecificIssue, field.TypeString)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(gradeditem.FieldEvidence, field.TypeString, value)
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(gradeditem.FieldEvidence, field.TypeString)
	}
	if value, ok := _u.mutation.Suggestion(); ok {
		_spec.SetField(gradeditem.FieldSuggestion, field.TypeString, value)
	}
	if _u.mutation.SuggestionCleared() {
		_spec.ClearField(gradeditem.FieldSuggestion, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(gradeditem.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(gradeditem.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(gradeditem.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AnalyzedAt(); ok {
		_spec.SetField(gradeditem.FieldAnalyzedAt, field.TypeTime, value)
	}
	if _u.mutation.AnalyzedAtCleared() {
		_spec.ClearField(gradeditem.FieldAnalyzedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.WeaknessKey(); ok {
		_spec.SetField(gradeditem.FieldWeaknessKey, field.TypeString, value)
	}
	if _u.mutation.WeaknessKeyCleared() {
		_spec.ClearField(gradeditem.FieldWeaknessKey, field.TypeString)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(gradeditem.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(gradeditem.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Synced(); ok {
		_spec.SetField(gradeditem.FieldSynced, field.TypeBool, value)
	}
	_node = &GradedItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gradeditem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
