// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pvaidya/recheck/ent/gradeditem"
)

// GradedItemCreate is the builder for creating a GradedItem entity.
type GradedItemCreate struct {
	config
	mutation *GradedItemMutation
	hooks    []Hook
}

// SetItemID sets the "item_id" field.
func (_c *GradedItemCreate) SetItemID(v string) *GradedItemCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *GradedItemCreate) SetSubject(v string) *GradedItemCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *GradedItemCreate) SetQuestionText(v string) *GradedItemCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetStudentAnswer sets the "student_answer" field.
func (_c *GradedItemCreate) SetStudentAnswer(v string) *GradedItemCreate {
	_c.mutation.SetStudentAnswer(v)
	return _c
}

// SetNillableStudentAnswer sets the "student_answer" field if the given value is not nil.
func (_c *GradedItemCreate) SetNillableStudentAnswer(v *string) *GradedItemCreate {
	if v != nil {
		_c.SetStudentAnswer(*v)
	}
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *GradedItemCreate) SetCorrectAnswer(v string) *GradedItemCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_c *GradedItemCreate) SetNillableCorrectAnswer(v *string) *GradedItemCreate {
	if v != nil {
		_c.SetCorrectAnswer(*v)
	}
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *GradedItemCreate) SetIsCorrect(v bool) *GradedItemCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetAnalysisStatus sets the "analysis_status" field.
func (_c *GradedItemCreate) SetAnalysisStatus(v string) *GradedItemCreate {
	_c.mutation.SetAnalysisStatus(v)
	return _c
}

// SetNillableAnalysisStatus sets the "analysis_status" field if the given value is not nil.
func (_c *GradedItemCreate) SetNillableAnalysisStatus(v *string) *GradedItemCreate {
	if v != nil {
		_c.SetAnalysisStatus(*v)
	}
	return _c
}

// SetBaseBranch sets the "base_branch" field.
func (_c *GradedItemCreate) SetBaseBranch(v string) *GradedItemCreate {
	_c.mutation.SetBaseBranch(v)
	return _c
}

// SetNillableBaseBranch sets the "base_branch" field if the given value is not nil.
func (_c *GradedItemCreate) SetNillableBaseBranch(v *string) *GradedItemCreate {
	if v != nil {
		_c.SetBaseBranch(*v)
	}
	return _c
}

// SetDetailedBranch sets the "detailed_branch" field.
func (_c *GradedItemCreate) SetDetailedBranch(v string) *GradedItemCreate {
	_c.mutation.SetDetailedBranch(v)
	return _c
}

// SetNillableDetailedBranch sets the "detailed_branch" field if the given value is not nil.
func (_c *GradedItemCreate) SetNillableDetailedBranch(v *string) *GradedItemCreate {
	if v != nil {
		_c.SetDetailedBranch(*v)
	}
	return _c
}

// SetErrorType sets the "error_type" field.
func (_c *GradedItemCreate) SetErrorType(v string) *GradedItemCreate {
	_c.mutation.SetErrorType(v)
	return _c
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_c *GradedItemCreate) SetNillableErrorType(v *string) *GradedItemCreate {
	if v != nil {
		_c.SetErrorType(*v)
	}
	return _c
}

// SetSpecificIssue sets the "specific_issue" field.
func (_c *GradedItemCreate) SetSpecificIssue(v string) *GradedItemCreate {
	_c.mutation.SetSpecificIssue(v)
	return _c
}

// SetNillableSpecificIssue sets the "specific_issue" field if the given value is not nil.
func (_c *GradedItemCreate) SetNillableSpecificIssue(v *string) *GradedItemCreate {
	if v != nil {
		_c.SetSpecificIssue(*v)
	}
	return _c
}

// SetEvidence sets the "evidence" field.
func (_c *GradedItemCreate) SetEvidence(v string) *GradedItemCreate {
	_c.mutation.SetEvidence(v)
	return _c
}

// SetNillableEvidence sets the "evidence" field if the given value is not nil.
func (_c *GradedItemCreate) SetNillableEvidence(v *string) *GradedItemCreate {
	if v != nil {
		_c.SetEvidence(*v)
	}
	return _c
}

// SetSuggestion sets the "suggestion" field.
func (_c *GradedItemCreate) SetSuggestion(v string) *GradedItemCreate {
	_c.mutation.SetSuggestion(v)
	return _c
}

// SetNillableSuggestion sets the "suggestion" field if the given value is not nil.
func (_c *GradedItemCreate) SetNillableSuggestion(v *string) *GradedItemCreate {
	if v != nil {
		_c.SetSuggestion(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *GradedItemCreate) SetConfidence(v float64) *GradedItemCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *GradedItemCreate) SetNillableConfidence(v *float64) *GradedItemCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetAnalyzedAt sets the "analyzed_at" field.
func (_c *GradedItemCreate) SetAnalyzedAt(v time.Time) *GradedItemCreate {
	_c.mutation.SetAnalyzedAt(v)
	return _c
}

// SetNillableAnalyzedAt sets the "analyzed_at" field if the given value is not nil.
func (_c *GradedItemCreate) SetNillableAnalyzedAt(v *time.Time) *GradedItemCreate {
	if v != nil {
		_c.SetAnalyzedAt(*v)
	}
	return _c
}

// SetWeaknessKey sets the "weakness_key" field.
func (_c *GradedItemCreate) SetWeaknessKey(v string) *GradedItemCreate {
	_c.mutation.SetWeaknessKey(v)
	return _c
}

// SetNillableWeaknessKey sets the "weakness_key" field if the given value is not nil.
func (_c *GradedItemCreate) SetNillableWeaknessKey(v *string) *GradedItemCreate {
	if v != nil {
		_c.SetWeaknessKey(*v)
	}
	return _c
}

// SetAttemptCount sets the "attempt_count" field.
func (_c *GradedItemCreate) SetAttemptCount(v int) *GradedItemCreate {
	_c.mutation.SetAttemptCount(v)
	return _c
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_c *GradedItemCreate) SetNillableAttemptCount(v *int) *GradedItemCreate {
	if v != nil {
		_c.SetAttemptCount(*v)
	}
	return _c
}

// SetSynced sets the "synced" field.
func (_c *GradedItemCreate) SetSynced(v bool) *GradedItemCreate {
	_c.mutation.SetSynced(v)
	return _c
}

// SetNillableSynced sets the "synced" field if the given value is not nil.
func (_c *GradedItemCreate) SetNillableSynced(v *bool) *GradedItemCreate {
	if v != nil {
		_c.SetSynced(*v)
	}
	return _c
}

// SetGradedAt sets the "graded_at" field.
func (_c *GradedItemCreate) SetGradedAt(v time.Time) *GradedItemCreate {
	_c.mutation.SetGradedAt(v)
	return _c
}

// SetNillableGradedAt sets the "graded_at" field if the given value is not nil.
func (_c *GradedItemCreate) SetNillableGradedAt(v *time.Time) *GradedItemCreate {
	if v != nil {
		_c.SetGradedAt(*v)
	}
	return _c
}

// Mutation returns the GradedItemMutation object of the builder.
func (_c *GradedItemCreate) Mutation() *GradedItemMutation {
	return _c.mutation
}

// Save creates the GradedItem in the database.
func (_c *GradedItemCreate) Save(ctx context.Context) (*GradedItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GradedItemCreate) SaveX(ctx context.Context) *GradedItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradedItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradedItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GradedItemCreate) defaults() {
	if _, ok := _c.mutation.StudentAnswer(); !ok {
		v := gradeditem.DefaultStudentAnswer
		_c.mutation.SetStudentAnswer(v)
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		v := gradeditem.DefaultCorrectAnswer
		_c.mutation.SetCorrectAnswer(v)
	}
	if _, ok := _c.mutation.AnalysisStatus(); !ok {
		v := gradeditem.DefaultAnalysisStatus
		_c.mutation.SetAnalysisStatus(v)
	}
	if _, ok := _c.mutation.BaseBranch(); !ok {
		v := gradeditem.DefaultBaseBranch
		_c.mutation.SetBaseBranch(v)
	}
	if _, ok := _c.mutation.DetailedBranch(); !ok {
		v := gradeditem.DefaultDetailedBranch
		_c.mutation.SetDetailedBranch(v)
	}
	if _, ok := _c.mutation.ErrorType(); !ok {
		v := gradeditem.DefaultErrorType
		_c.mutation.SetErrorType(v)
	}
	if _, ok := _c.mutation.SpecificIssue(); !ok {
		v := gradeditem.DefaultSpecificIssue
		_c.mutation.SetSpecificIssue(v)
	}
	if _, ok := _c.mutation.Evidence(); !ok {
		v := gradeditem.DefaultEvidence
		_c.mutation.SetEvidence(v)
	}
	if _, ok := _c.mutation.Suggestion(); !ok {
		v := gradeditem.DefaultSuggestion
		_c.mutation.SetSuggestion(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := gradeditem.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.WeaknessKey(); !ok {
		v := gradeditem.DefaultWeaknessKey
		_c.mutation.SetWeaknessKey(v)
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		v := gradeditem.DefaultAttemptCount
		_c.mutation.SetAttemptCount(v)
	}
	if _, ok := _c.mutation.Synced(); !ok {
		v := gradeditem.DefaultSynced
		_c.mutation.SetSynced(v)
	}
	if _, ok := _c.mutation.GradedAt(); !ok {
		v := gradeditem.DefaultGradedAt()
		_c.mutation.SetGradedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GradedItemCreate) check() error {
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "GradedItem.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := gradeditem.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "GradedItem.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "GradedItem.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := gradeditem.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "GradedItem.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "GradedItem.question_text"`)}
	}
	if v, ok := _c.mutation.QuestionText(); ok {
		if err := gradeditem.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "GradedItem.question_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentAnswer(); !ok {
		return &ValidationError{Name: "student_answer", err: errors.New(`ent: missing required field "GradedItem.student_answer"`)}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "GradedItem.correct_answer"`)}
	}
	if _, ok := _c.mutation.IsCorrect(); !ok {
		return &ValidationError{Name: "is_correct", err: errors.New(`ent: missing required field "GradedItem.is_correct"`)}
	}
	if _, ok := _c.mutation.AnalysisStatus(); !ok {
		return &ValidationError{Name: "analysis_status", err: errors.New(`ent: missing required field "GradedItem.analysis_status"`)}
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		return &ValidationError{Name: "attempt_count", err: errors.New(`ent: missing required field "GradedItem.attempt_count"`)}
	}
	if _, ok := _c.mutation.Synced(); !ok {
		return &ValidationError{Name: "synced", err: errors.New(`ent: missing required field "GradedItem.synced"`)}
	}
	if _, ok := _c.mutation.GradedAt(); !ok {
		return &ValidationError{Name: "graded_at", err: errors.New(`ent: missing required field "GradedItem.graded_at"`)}
	}
	return nil
}

func (_c *GradedItemCreate) sqlSave(ctx context.Context) (*GradedItem, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GradedItemCreate) createSpec() (*GradedItem, *sqlgraph.CreateSpec) {
	var (
		_node = &GradedItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gradeditem.Table, sqlgraph.NewFieldSpec(gradeditem.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(gradeditem.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(gradeditem.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(gradeditem.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.StudentAnswer(); ok {
		_spec.SetField(gradeditem.FieldStudentAnswer, field.TypeString, value)
		_node.StudentAnswer = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(gradeditem.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(gradeditem.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = value
	}
	if value, ok := _c.mutation.AnalysisStatus(); ok {
		_spec.SetField(gradeditem.FieldAnalysisStatus, field.TypeString, value)
		_node.AnalysisStatus = value
	}
	if value, ok := _c.mutation.BaseBranch(); ok {
		_spec.SetField(gradeditem.FieldBaseBranch, field.TypeString, value)
		_node.BaseBranch = value
	}
	if value, ok := _c.mutation.DetailedBranch(); ok {
		_spec.SetField(gradeditem.FieldDetailedBranch, field.TypeString, value)
		_node.DetailedBranch = value
	}
	if value, ok := _c.mutation.ErrorType(); ok {
		_spec.SetField(gradeditem.FieldErrorType, field.TypeString, value)
		_node.ErrorType = value
	}
	if value, ok := _c.mutation.SpecificIssue(); ok {
		_spec.SetField(gradeditem.FieldSpecificIssue, field.TypeString, value)
		_node.SpecificIssue = value
	}
	if value, ok := _c.mutation.Evidence(); ok {
		_spec.SetField(gradeditem.FieldEvidence, field.TypeString, value)
		_node.Evidence = value
	}
	if value, ok := _c.mutation.Suggestion(); ok {
		_spec.SetField(gradeditem.FieldSuggestion, field.TypeString, value)
		_node.Suggestion = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(gradeditem.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.AnalyzedAt(); ok {
		_spec.SetField(gradeditem.FieldAnalyzedAt, field.TypeTime, value)
		_node.AnalyzedAt = &value
	}
	if value, ok := _c.mutation.WeaknessKey(); ok {
		_spec.SetField(gradeditem.FieldWeaknessKey, field.TypeString, value)
		_node.WeaknessKey = value
	}
	if value, ok := _c.mutation.AttemptCount(); ok {
		_spec.SetField(gradeditem.FieldAttemptCount, field.TypeInt, value)
		_node.AttemptCount = value
	}
	if value, ok := _c.mutation.Synced(); ok {
		_spec.SetField(gradeditem.FieldSynced, field.TypeBool, value)
		_node.Synced = value
	}
	if value, ok := _c.mutation.GradedAt(); ok {
		_spec.SetField(gradeditem.FieldGradedAt, field.TypeTime, value)
		_node.GradedAt = value
	}
	return _node, _spec
}

// GradedItemCreateBulk is the builder for creating many GradedItem entities in bulk.
type GradedItemCreateBulk struct {
	config
	err      error
	builders []*GradedItemCreate
}

// Save creates the GradedItem entities in the database.
func (_c *GradedItemCreateBulk) Save(ctx context.Context) ([]*GradedItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GradedItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GradedItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GradedItemCreateBulk) SaveX(ctx context.Context) []*GradedItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradedItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradedItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
