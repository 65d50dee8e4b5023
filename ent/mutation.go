// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/pvaidya/recheck/ent/gradeditem"
	"github.com/pvaidya/recheck/ent/llmrequestevent"
	"github.com/pvaidya/recheck/ent/predicate"
	"github.com/pvaidya/recheck/ent/weaknessentry"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeGradedItem      = "GradedItem"
	TypeLLMRequestEvent = "LLMRequestEvent"
	TypeWeaknessEntry   = "WeaknessEntry"
)

// GradedItemMutation represents an operation that mutates the GradedItem nodes in the graph.
type GradedItemMutation struct {
	config
	op               Op
	typ              string
	id               *int
	item_id          *string
	subject          *string
	question_text    *string
	student_answer   *string
	correct_answer   *string
	is_correct       *bool
	analysis_status  *string
	base_branch      *string
	detailed_branch  *string
	error_type       *string
	specific_issue   *string
	evidence         *string
	suggestion       *string
	confidence       *float64
	addconfidence    *float64
	analyzed_at      *time.Time
	weakness_key     *string
	attempt_count    *int
	addattempt_count *int
	synced           *bool
	graded_at        *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*GradedItem, error)
	predicates       []predicate.GradedItem
}

var _ ent.Mutation = (*GradedItemMutation)(nil)

// gradeditemOption allows management of the mutation configuration using functional options.
type gradeditemOption func(*GradedItemMutation)

// newGradedItemMutation creates new mutation for the GradedItem entity.
func newGradedItemMutation(c config, op Op, opts ...gradeditemOption) *GradedItemMutation {
	m := &GradedItemMutation{
		config:        c,
		op:            op,
		typ:           TypeGradedItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGradedItemID sets the ID field of the mutation.
func withGradedItemID(id int) gradeditemOption {
	return func(m *GradedItemMutation) {
		var (
			err   error
			once  sync.Once
			value *GradedItem
		)
		m.oldValue = func(ctx context.Context) (*GradedItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GradedItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGradedItem sets the old GradedItem of the mutation.
func withGradedItem(node *GradedItem) gradeditemOption {
	return func(m *GradedItemMutation) {
		m.oldValue = func(context.Context) (*GradedItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GradedItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GradedItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GradedItemMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GradedItemMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GradedItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetItemID sets the "item_id" field.
func (m *GradedItemMutation) SetItemID(s string) {
	m.item_id = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *GradedItemMutation) ItemID() (r string, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the GradedItem entity.
// If the GradedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradedItemMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *GradedItemMutation) ResetItemID() {
	m.item_id = nil
}

// SetSubject sets the "subject" field.
func (m *GradedItemMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *GradedItemMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the GradedItem entity.
// If the GradedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradedItemMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *GradedItemMutation) ResetSubject() {
	m.subject = nil
}

// SetQuestionText sets the "question_text" field.
func (m *GradedItemMutation) SetQuestionText(s string) {
	m.question_text = &s
}

// QuestionText returns the value of the "question_text" field in the mutation.
func (m *GradedItemMutation) QuestionText() (r string, exists bool) {
	v := m.question_text
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionText returns the old "question_text" field's value of the GradedItem entity.
// If the GradedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradedItemMutation) OldQuestionText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionText: %w", err)
	}
	return oldValue.QuestionText, nil
}

// ResetQuestionText resets all changes to the "question_text" field.
func (m *GradedItemMutation) ResetQuestionText() {
	m.question_text = nil
}

// SetStudentAnswer sets the "student_answer" field.
func (m *GradedItemMutation) SetStudentAnswer(s string) {
	m.student_answer = &s
}

// StudentAnswer returns the value of the "student_answer" field in the mutation.
func (m *GradedItemMutation) StudentAnswer() (r string, exists bool) {
	v := m.student_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentAnswer returns the old "student_answer" field's value of the GradedItem entity.
// If the GradedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradedItemMutation) OldStudentAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentAnswer: %w", err)
	}
	return oldValue.StudentAnswer, nil
}

// ResetStudentAnswer resets all changes to the "student_answer" field.
func (m *GradedItemMutation) ResetStudentAnswer() {
	m.student_answer = nil
}

// SetCorrectAnswer sets the "correct_answer" field.
func (m *GradedItemMutation) SetCorrectAnswer(s string) {
	m.correct_answer = &s
}

// CorrectAnswer returns the value of the "correct_answer" field in the mutation.
func (m *GradedItemMutation) CorrectAnswer() (r string, exists bool) {
	v := m.correct_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswer returns the old "correct_answer" field's value of the GradedItem entity.
// If the GradedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradedItemMutation) OldCorrectAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswer: %w", err)
	}
	return oldValue.CorrectAnswer, nil
}

// ResetCorrectAnswer resets all changes to the "correct_answer" field.
func (m *GradedItemMutation) ResetCorrectAnswer() {
	m.correct_answer = nil
}

// SetIsCorrect sets the "is_correct" field.
func (m *GradedItemMutation) SetIsCorrect(b bool) {
	m.is_correct = &b
}

// IsCorrect returns the value of the "is_correct" field in the mutation.
func (m *GradedItemMutation) IsCorrect() (r bool, exists bool) {
	v := m.is_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCorrect returns the old "is_correct" field's value of the GradedItem entity.
// If the GradedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradedItemMutation) OldIsCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCorrect: %w", err)
	}
	return oldValue.IsCorrect, nil
}

// ResetIsCorrect resets all changes to the "is_correct" field.
func (m *GradedItemMutation) ResetIsCorrect() {
	m.is_correct = nil
}

// SetAnalysisStatus sets the "analysis_status" field.
func (m *GradedItemMutation) SetAnalysisStatus(s string) {
	m.analysis_status = &s
}

// AnalysisStatus returns the value of the "analysis_status" field in the mutation.
func (m *GradedItemMutation) AnalysisStatus() (r string, exists bool) {
	v := m.analysis_status
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisStatus returns the old "analysis_status" field's value of the GradedItem entity.
// If the GradedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradedItemMutation) OldAnalysisStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisStatus: %w", err)
	}
	return oldValue.AnalysisStatus, nil
}

// ResetAnalysisStatus resets all changes to the "analysis_status" field.
func (m *GradedItemMutation) ResetAnalysisStatus() {
	m.analysis_status = nil
}

// SetBaseBranch sets the "base_branch" field.
func (m *GradedItemMutation) SetBaseBranch(s string) {
	m.base_branch = &s
}

// BaseBranch returns the value of the "base_branch" field in the mutation.
func (m *GradedItemMutation) BaseBranch() (r string, exists bool) {
	v := m.base_branch
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseBranch returns the old "base_branch" field's value of the GradedItem entity.
// If the GradedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradedItemMutation) OldBaseBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseBranch: %w", err)
	}
	return oldValue.BaseBranch, nil
}

// ClearBaseBranch clears the value of the "base_branch" field.
func (m *GradedItemMutation) ClearBaseBranch() {
	m.base_branch = nil
	m.clearedFields[gradeditem.FieldBaseBranch] = struct{}{}
}

// BaseBranchCleared returns if the "base_branch" field was cleared in this mutation.
func (m *GradedItemMutation) BaseBranchCleared() bool {
	_, ok := m.clearedFields[gradeditem.FieldBaseBranch]
	return ok
}

// ResetBaseBranch resets all changes to the "base_branch" field.
func (m *GradedItemMutation) ResetBaseBranch() {
	m.base_branch = nil
	delete(m.clearedFields, gradeditem.FieldBaseBranch)
}

// SetDetailedBranch sets the "detailed_branch" field.
func (m *GradedItemMutation) SetDetailedBranch(s string) {
	m.detailed_branch = &s
}

// DetailedBranch returns the value of the "detailed_branch" field in the mutation.
func (m *GradedItemMutation) DetailedBranch() (r string, exists bool) {
	v := m.detailed_branch
	if v == nil {
		return
	}
	return *v, true
}

// OldDetailedBranch returns the old "detailed_branch" field's value of the GradedItem entity.
// If the GradedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradedItemMutation) OldDetailedBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetailedBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetailedBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetailedBranch: %w", err)
	}
	return oldValue.DetailedBranch, nil
}

// ClearDetailedBranch clears the value of the "detailed_branch" field.
func (m *GradedItemMutation) ClearDetailedBranch() {
	m.detailed_branch = nil
	m.clearedFields[gradeditem.FieldDetailedBranch] = struct{}{}
}

// DetailedBranchCleared returns if the "detailed_branch" field was cleared in this mutation.
func (m *GradedItemMutation) DetailedBranchCleared() bool {
	_, ok := m.clearedFields[gradeditem.FieldDetailedBranch]
	return ok
}

// ResetDetailedBranch resets all changes to the "detailed_branch" field.
func (m *GradedItemMutation) ResetDetailedBranch() {
	m.detailed_branch = nil
	delete(m.clearedFields, gradeditem.FieldDetailedBranch)
}

// SetErrorType sets the "error_type" field.
func (m *GradedItemMutation) SetErrorType(s string) {
	m.error_type = &s
}

// ErrorType returns the value of the "error_type" field in the mutation.
func (m *GradedItemMutation) ErrorType() (r string, exists bool) {
	v := m.error_type
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorType returns the old "error_type" field's value of the GradedItem entity.
// If the GradedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradedItemMutation) OldErrorType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorType: %w", err)
	}
	return oldValue.ErrorType, nil
}

// ClearErrorType clears the value of the "error_type" field.
func (m *GradedItemMutation) ClearErrorType() {
	m.error_type = nil
	m.clearedFields[gradeditem.FieldErrorType] = struct{}{}
}

// ErrorTypeCleared returns if the "error_type" field was cleared in this mutation.
func (m *GradedItemMutation) ErrorTypeCleared() bool {
	_, ok := m.clearedFields[gradeditem.FieldErrorType]
	return ok
}

// ResetErrorType resets all changes to the "error_type" field.
func (m *GradedItemMutation) ResetErrorType() {
	m.error_type = nil
	delete(m.clearedFields, gradeditem.FieldErrorType)
}

// SetSpecificIssue sets the "specific_issue" field.
func (m *GradedItemMutation) SetSpecificIssue(s string) {
	m.specific_issue = &s
}

// SpecificIssue returns the value of the "specific_issue" field in the mutation.
func (m *GradedItemMutation) SpecificIssue() (r string, exists bool) {
	v := m.specific_issue
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecificIssue returns the old "specific_issue" field's value of the GradedItem entity.
// If the GradedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradedItemMutation) OldSpecificIssue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecificIssue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecificIssue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecificIssue: %w", err)
	}
	return oldValue.SpecificIssue, nil
}

// ClearSpecificIssue clears the value of the "specific_issue" field.
func (m *GradedItemMutation) ClearSpecificIssue() {
	m.specific_issue = nil
	m.clearedFields[gradeditem.FieldSpecificIssue] = struct{}{}
}

// SpecificIssueCleared returns if the "specific_issue" field was cleared in this mutation.
func (m *GradedItemMutation) SpecificIssueCleared() bool {
	_, ok := m.clearedFields[gradeditem.FieldSpecificIssue]
	return ok
}

// ResetSpecificIssue resets all changes to the "specific_issue" field.
func (m *GradedItemMutation) ResetSpecificIssue() {
	m.specific_issue = nil
	delete(m.clearedFields, gradeditem.FieldSpecificIssue)
}

// SetEvidence sets the "evidence" field.
func (m *GradedItemMutation) SetEvidence(s string) {
	m.evidence = &s
}

// Evidence returns the value of the "evidence" field in the mutation.
func (m *GradedItemMutation) Evidence() (r string, exists bool) {
	v := m.evidence
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidence returns the old "evidence" field's value of the GradedItem entity.
// If the GradedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradedItemMutation) OldEvidence(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidence: %w", err)
	}
	return oldValue.Evidence, nil
}

// ClearEvidence clears the value of the "evidence" field.
func (m *GradedItemMutation) ClearEvidence() {
	m.evidence = nil
	m.clearedFields[gradeditem.FieldEvidence] = struct{}{}
}

// EvidenceCleared returns if the "evidence" field was cleared in this mutation.
func (m *GradedItemMutation) EvidenceCleared() bool {
	_, ok := m.clearedFields[gradeditem.FieldEvidence]
	return ok
}

// ResetEvidence resets all changes to the "evidence" field.
func (m *GradedItemMutation) ResetEvidence() {
	m.evidence = nil
	delete(m.clearedFields, gradeditem.FieldEvidence)
}

// SetSuggestion sets the "suggestion" field.
func (m *GradedItemMutation) SetSuggestion(s string) {
	m.suggestion = &s
}

// Suggestion returns the value of the "suggestion" field in the mutation.
func (m *GradedItemMutation) Suggestion() (r string, exists bool) {
	v := m.suggestion
	if v == nil {
		return
	}
	return *v, true
}

// OldSuggestion returns the old "suggestion" field's value of the GradedItem entity.
// If the GradedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradedItemMutation) OldSuggestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuggestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuggestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuggestion: %w", err)
	}
	return oldValue.Suggestion, nil
}

// ClearSuggestion clears the value of the "suggestion" field.
func (m *GradedItemMutation) ClearSuggestion() {
	m.suggestion = nil
	m.clearedFields[gradeditem.FieldSuggestion] = struct{}{}
}

// SuggestionCleared returns if the "suggestion" field was cleared in this mutation.
func (m *GradedItemMutation) SuggestionCleared() bool {
	_, ok := m.clearedFields[gradeditem.FieldSuggestion]
	return ok
}

// ResetSuggestion resets all changes to the "suggestion" field.
func (m *GradedItemMutation) ResetSuggestion() {
	m.suggestion = nil
	delete(m.clearedFields, gradeditem.FieldSuggestion)
}

// SetConfidence sets the "confidence" field.
func (m *GradedItemMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *GradedItemMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the GradedItem entity.
// If the GradedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradedItemMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *GradedItemMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *GradedItemMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *GradedItemMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[gradeditem.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *GradedItemMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[gradeditem.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *GradedItemMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, gradeditem.FieldConfidence)
}

// SetAnalyzedAt sets the "analyzed_at" field.
func (m *GradedItemMutation) SetAnalyzedAt(t time.Time) {
	m.analyzed_at = &t
}

// AnalyzedAt returns the value of the "analyzed_at" field in the mutation.
func (m *GradedItemMutation) AnalyzedAt() (r time.Time, exists bool) {
	v := m.analyzed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalyzedAt returns the old "analyzed_at" field's value of the GradedItem entity.
// If the GradedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradedItemMutation) OldAnalyzedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalyzedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalyzedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalyzedAt: %w", err)
	}
	return oldValue.AnalyzedAt, nil
}

// ClearAnalyzedAt clears the value of the "analyzed_at" field.
func (m *GradedItemMutation) ClearAnalyzedAt() {
	m.analyzed_at = nil
	m.clearedFields[gradeditem.FieldAnalyzedAt] = struct{}{}
}

// AnalyzedAtCleared returns if the "analyzed_at" field was cleared in this mutation.
func (m *GradedItemMutation) AnalyzedAtCleared() bool {
	_, ok := m.clearedFields[gradeditem.FieldAnalyzedAt]
	return ok
}

// ResetAnalyzedAt resets all changes to the "analyzed_at" field.
func (m *GradedItemMutation) ResetAnalyzedAt() {
	m.analyzed_at = nil
	delete(m.clearedFields, gradeditem.FieldAnalyzedAt)
}

// SetWeaknessKey sets the "weakness_key" field.
func (m *GradedItemMutation) SetWeaknessKey(s string) {
	m.weakness_key = &s
}

// WeaknessKey returns the value of the "weakness_key" field in the mutation.
func (m *GradedItemMutation) WeaknessKey() (r string, exists bool) {
	v := m.weakness_key
	if v == nil {
		return
	}
	return *v, true
}

// OldWeaknessKey returns the old "weakness_key" field's value of the GradedItem entity.
// If the GradedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradedItemMutation) OldWeaknessKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeaknessKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeaknessKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeaknessKey: %w", err)
	}
	return oldValue.WeaknessKey, nil
}

// ClearWeaknessKey clears the value of the "weakness_key" field.
func (m *GradedItemMutation) ClearWeaknessKey() {
	m.weakness_key = nil
	m.clearedFields[gradeditem.FieldWeaknessKey] = struct{}{}
}

// WeaknessKeyCleared returns if the "weakness_key" field was cleared in this mutation.
func (m *GradedItemMutation) WeaknessKeyCleared() bool {
	_, ok := m.clearedFields[gradeditem.FieldWeaknessKey]
	return ok
}

// ResetWeaknessKey resets all changes to the "weakness_key" field.
func (m *GradedItemMutation) ResetWeaknessKey() {
	m.weakness_key = nil
	delete(m.clearedFields, gradeditem.FieldWeaknessKey)
}

// SetAttemptCount sets the "attempt_count" field.
func (m *GradedItemMutation) SetAttemptCount(i int) {
	m.attempt_count = &i
	m.addattempt_count = nil
}

// AttemptCount returns the value of the "attempt_count" field in the mutation.
func (m *GradedItemMutation) AttemptCount() (r int, exists bool) {
	v := m.attempt_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptCount returns the old "attempt_count" field's value of the GradedItem entity.
// If the GradedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradedItemMutation) OldAttemptCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptCount: %w", err)
	}
	return oldValue.AttemptCount, nil
}

// AddAttemptCount adds i to the "attempt_count" field.
func (m *GradedItemMutation) AddAttemptCount(i int) {
	if m.addattempt_count != nil {
		*m.addattempt_count += i
	} else {
		m.addattempt_count = &i
	}
}

// AddedAttemptCount returns the value that was added to the "attempt_count" field in this mutation.
func (m *GradedItemMutation) AddedAttemptCount() (r int, exists bool) {
	v := m.addattempt_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptCount resets all changes to the "attempt_count" field.
func (m *GradedItemMutation) ResetAttemptCount() {
	m.attempt_count = nil
	m.addattempt_count = nil
}

// SetSynced sets the "synced" field.
func (m *GradedItemMutation) SetSynced(b bool) {
	m.synced = &b
}

// Synced returns the value of the "synced" field in the mutation.
func (m *GradedItemMutation) Synced() (r bool, exists bool) {
	v := m.synced
	if v == nil {
		return
	}
	return *v, true
}

// OldSynced returns the old "synced" field's value of the GradedItem entity.
// If the GradedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradedItemMutation) OldSynced(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSynced is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSynced requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSynced: %w", err)
	}
	return oldValue.Synced, nil
}

// ResetSynced resets all changes to the "synced" field.
func (m *GradedItemMutation) ResetSynced() {
	m.synced = nil
}

// SetGradedAt sets the "graded_at" field.
func (m *GradedItemMutation) SetGradedAt(t time.Time) {
	m.graded_at = &t
}

// GradedAt returns the value of the "graded_at" field in the mutation.
func (m *GradedItemMutation) GradedAt() (r time.Time, exists bool) {
	v := m.graded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldGradedAt returns the old "graded_at" field's value of the GradedItem entity.
// If the GradedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradedItemMutation) OldGradedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGradedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGradedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGradedAt: %w", err)
	}
	return oldValue.GradedAt, nil
}

// ResetGradedAt resets all changes to the "graded_at" field.
func (m *GradedItemMutation) ResetGradedAt() {
	m.graded_at = nil
}

// Where appends a list predicates to the GradedItemMutation builder.
func (m *GradedItemMutation) Where(ps ...predicate.GradedItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GradedItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GradedItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GradedItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GradedItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GradedItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GradedItem).
func (m *GradedItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GradedItemMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.item_id != nil {
		fields = append(fields, gradeditem.FieldItemID)
	}
	if m.subject != nil {
		fields = append(fields, gradeditem.FieldSubject)
	}
	if m.question_text != nil {
		fields = append(fields, gradeditem.FieldQuestionText)
	}
	if m.student_answer != nil {
		fields = append(fields, gradeditem.FieldStudentAnswer)
	}
	if m.correct_answer != nil {
		fields = append(fields, gradeditem.FieldCorrectAnswer)
	}
	if m.is_correct != nil {
		fields = append(fields, gradeditem.FieldIsCorrect)
	}
	if m.analysis_status != nil {
		fields = append(fields, gradeditem.FieldAnalysisStatus)
	}
	if m.base_branch != nil {
		fields = append(fields, gradeditem.FieldBaseBranch)
	}
	if m.detailed_branch != nil {
		fields = append(fields, gradeditem.FieldDetailedBranch)
	}
	if m.error_type != nil {
		fields = append(fields, gradeditem.FieldErrorType)
	}
	if m.specific_issue != nil {
		fields = append(fields, gradeditem.FieldSpecificIssue)
	}
	if m.evidence != nil {
		fields = append(fields, gradeditem.FieldEvidence)
	}
	if m.suggestion != nil {
		fields = append(fields, gradeditem.FieldSuggestion)
	}
	if m.confidence != nil {
		fields = append(fields, gradeditem.FieldConfidence)
	}
	if m.analyzed_at != nil {
		fields = append(fields, gradeditem.FieldAnalyzedAt)
	}
	if m.weakness_key != nil {
		fields = append(fields, gradeditem.FieldWeaknessKey)
	}
	if m.attempt_count != nil {
		fields = append(fields, gradeditem.FieldAttemptCount)
	}
	if m.synced != nil {
		fields = append(fields, gradeditem.FieldSynced)
	}
	if m.graded_at != nil {
		fields = append(fields, gradeditem.FieldGradedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GradedItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case gradeditem.FieldItemID:
		return m.ItemID()
	case gradeditem.FieldSubject:
		return m.Subject()
	case gradeditem.FieldQuestionText:
		return m.QuestionText()
	case gradeditem.FieldStudentAnswer:
		return m.StudentAnswer()
	case gradeditem.FieldCorrectAnswer:
		return m.CorrectAnswer()
	case gradeditem.FieldIsCorrect:
		return m.IsCorrect()
	case gradeditem.FieldAnalysisStatus:
		return m.AnalysisStatus()
	case gradeditem.FieldBaseBranch:
		return m.BaseBranch()
	case gradeditem.FieldDetailedBranch:
		return m.DetailedBranch()
	case gradeditem.FieldErrorType:
		return m.ErrorType()
	case gradeditem.FieldSpecificIssue:
		return m.SpecificIssue()
	case gradeditem.FieldEvidence:
		return m.Evidence()
	case gradeditem.FieldSuggestion:
		return m.Suggestion()
	case gradeditem.FieldConfidence:
		return m.Confidence()
	case gradeditem.FieldAnalyzedAt:
		return m.AnalyzedAt()
	case gradeditem.FieldWeaknessKey:
		return m.WeaknessKey()
	case gradeditem.FieldAttemptCount:
		return m.AttemptCount()
	case gradeditem.FieldSynced:
		return m.Synced()
	case gradeditem.FieldGradedAt:
		return m.GradedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GradedItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case gradeditem.FieldItemID:
		return m.OldItemID(ctx)
	case gradeditem.FieldSubject:
		return m.OldSubject(ctx)
	case gradeditem.FieldQuestionText:
		return m.OldQuestionText(ctx)
	case gradeditem.FieldStudentAnswer:
		return m.OldStudentAnswer(ctx)
	case gradeditem.FieldCorrectAnswer:
		return m.OldCorrectAnswer(ctx)
	case gradeditem.FieldIsCorrect:
		return m.OldIsCorrect(ctx)
	case gradeditem.FieldAnalysisStatus:
		return m.OldAnalysisStatus(ctx)
	case gradeditem.FieldBaseBranch:
		return m.OldBaseBranch(ctx)
	case gradeditem.FieldDetailedBranch:
		return m.OldDetailedBranch(ctx)
	case gradeditem.FieldErrorType:
		return m.OldErrorType(ctx)
	case gradeditem.FieldSpecificIssue:
		return m.OldSpecificIssue(ctx)
	case gradeditem.FieldEvidence:
		return m.OldEvidence(ctx)
	case gradeditem.FieldSuggestion:
		return m.OldSuggestion(ctx)
	case gradeditem.FieldConfidence:
		return m.OldConfidence(ctx)
	case gradeditem.FieldAnalyzedAt:
		return m.OldAnalyzedAt(ctx)
	case gradeditem.FieldWeaknessKey:
		return m.OldWeaknessKey(ctx)
	case gradeditem.FieldAttemptCount:
		return m.OldAttemptCount(ctx)
	case gradeditem.FieldSynced:
		return m.OldSynced(ctx)
	case gradeditem.FieldGradedAt:
		return m.OldGradedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GradedItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GradedItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case gradeditem.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case gradeditem.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case gradeditem.FieldQuestionText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionText(v)
		return nil
	case gradeditem.FieldStudentAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentAnswer(v)
		return nil
	case gradeditem.FieldCorrectAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswer(v)
		return nil
	case gradeditem.FieldIsCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCorrect(v)
		return nil
	case gradeditem.FieldAnalysisStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisStatus(v)
		return nil
	case gradeditem.FieldBaseBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseBranch(v)
		return nil
	case gradeditem.FieldDetailedBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetailedBranch(v)
		return nil
	case gradeditem.FieldErrorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorType(v)
		return nil
	case gradeditem.FieldSpecificIssue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecificIssue(v)
		return nil
	case gradeditem.FieldEvidence:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidence(v)
		return nil
	case gradeditem.FieldSuggestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuggestion(v)
		return nil
	case gradeditem.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case gradeditem.FieldAnalyzedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalyzedAt(v)
		return nil
	case gradeditem.FieldWeaknessKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeaknessKey(v)
		return nil
	case gradeditem.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptCount(v)
		return nil
	case gradeditem.FieldSynced:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSynced(v)
		return nil
	case gradeditem.FieldGradedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGradedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GradedItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GradedItemMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, gradeditem.FieldConfidence)
	}
	if m.addattempt_count != nil {
		fields = append(fields, gradeditem.FieldAttemptCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GradedItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case gradeditem.FieldConfidence:
		return m.AddedConfidence()
	case gradeditem.FieldAttemptCount:
		return m.AddedAttemptCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GradedItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case gradeditem.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case gradeditem.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptCount(v)
		return nil
	}
	return fmt.Errorf("unknown GradedItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GradedItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(gradeditem.FieldBaseBranch) {
		fields = append(fields, gradeditem.FieldBaseBranch)
	}
	if m.FieldCleared(gradeditem.FieldDetailedBranch) {
		fields = append(fields, gradeditem.FieldDetailedBranch)
	}
	if m.FieldCleared(gradeditem.FieldErrorType) {
		fields = append(fields, gradeditem.FieldErrorType)
	}
	if m.FieldCleared(gradeditem.FieldSpecificIssue) {
		fields = append(fields, gradeditem.FieldSpecificIssue)
	}
	if m.FieldCleared(gradeditem.FieldEvidence) {
		fields = append(fields, gradeditem.FieldEvidence)
	}
	if m.FieldCleared(gradeditem.FieldSuggestion) {
		fields = append(fields, gradeditem.FieldSuggestion)
	}
	if m.FieldCleared(gradeditem.FieldConfidence) {
		fields = append(fields, gradeditem.FieldConfidence)
	}
	if m.FieldCleared(gradeditem.FieldAnalyzedAt) {
		fields = append(fields, gradeditem.FieldAnalyzedAt)
	}
	if m.FieldCleared(gradeditem.FieldWeaknessKey) {
		fields = append(fields, gradeditem.FieldWeaknessKey)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GradedItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GradedItemMutation) ClearField(name string) error {
	switch name {
	case gradeditem.FieldBaseBranch:
		m.ClearBaseBranch()
		return nil
	case gradeditem.FieldDetailedBranch:
		m.ClearDetailedBranch()
		return nil
	case gradeditem.FieldErrorType:
		m.ClearErrorType()
		return nil
	case gradeditem.FieldSpecificIssue:
		m.ClearSpecificIssue()
		return nil
	case gradeditem.FieldEvidence:
		m.ClearEvidence()
		return nil
	case gradeditem.FieldSuggestion:
		m.ClearSuggestion()
		return nil
	case gradeditem.FieldConfidence:
		m.ClearConfidence()
		return nil
	case gradeditem.FieldAnalyzedAt:
		m.ClearAnalyzedAt()
		return nil
	case gradeditem.FieldWeaknessKey:
		m.ClearWeaknessKey()
		return nil
	}
	return fmt.Errorf("unknown GradedItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GradedItemMutation) ResetField(name string) error {
	switch name {
	case gradeditem.FieldItemID:
		m.ResetItemID()
		return nil
	case gradeditem.FieldSubject:
		m.ResetSubject()
		return nil
	case gradeditem.FieldQuestionText:
		m.ResetQuestionText()
		return nil
	case gradeditem.FieldStudentAnswer:
		m.ResetStudentAnswer()
		return nil
	case gradeditem.FieldCorrectAnswer:
		m.ResetCorrectAnswer()
		return nil
	case gradeditem.FieldIsCorrect:
		m.ResetIsCorrect()
		return nil
	case gradeditem.FieldAnalysisStatus:
		m.ResetAnalysisStatus()
		return nil
	case gradeditem.FieldBaseBranch:
		m.ResetBaseBranch()
		return nil
	case gradeditem.FieldDetailedBranch:
		m.ResetDetailedBranch()
		return nil
	case gradeditem.FieldErrorType:
		m.ResetErrorType()
		return nil
	case gradeditem.FieldSpecificIssue:
		m.ResetSpecificIssue()
		return nil
	case gradeditem.FieldEvidence:
		m.ResetEvidence()
		return nil
	case gradeditem.FieldSuggestion:
		m.ResetSuggestion()
		return nil
	case gradeditem.FieldConfidence:
		m.ResetConfidence()
		return nil
	case gradeditem.FieldAnalyzedAt:
		m.ResetAnalyzedAt()
		return nil
	case gradeditem.FieldWeaknessKey:
		m.ResetWeaknessKey()
		return nil
	case gradeditem.FieldAttemptCount:
		m.ResetAttemptCount()
		return nil
	case gradeditem.FieldSynced:
		m.ResetSynced()
		return nil
	case gradeditem.FieldGradedAt:
		m.ResetGradedAt()
		return nil
	}
	return fmt.Errorf("unknown GradedItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GradedItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GradedItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GradedItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GradedItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GradedItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GradedItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GradedItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GradedItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GradedItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GradedItem edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// WeaknessEntryMutation represents an operation that mutates the WeaknessEntry nodes in the graph.
type WeaknessEntryMutation struct {
	config
	op              Op
	typ             string
	id              *int
	key             *string
	subject         *string
	base_branch     *string
	detailed_branch *string
	count           *int
	addcount        *int
	last_seen       *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*WeaknessEntry, error)
	predicates      []predicate.WeaknessEntry
}

var _ ent.Mutation = (*WeaknessEntryMutation)(nil)

// weaknessentryOption allows management of the mutation configuration using functional options.
type weaknessentryOption func(*WeaknessEntryMutation)

// newWeaknessEntryMutation creates new mutation for the WeaknessEntry entity.
func newWeaknessEntryMutation(c config, op Op, opts ...weaknessentryOption) *WeaknessEntryMutation {
	m := &WeaknessEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeWeaknessEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWeaknessEntryID sets the ID field of the mutation.
func withWeaknessEntryID(id int) weaknessentryOption {
	return func(m *WeaknessEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *WeaknessEntry
		)
		m.oldValue = func(ctx context.Context) (*WeaknessEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WeaknessEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWeaknessEntry sets the old WeaknessEntry of the mutation.
func withWeaknessEntry(node *WeaknessEntry) weaknessentryOption {
	return func(m *WeaknessEntryMutation) {
		m.oldValue = func(context.Context) (*WeaknessEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WeaknessEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WeaknessEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WeaknessEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WeaknessEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WeaknessEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *WeaknessEntryMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *WeaknessEntryMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the WeaknessEntry entity.
// If the WeaknessEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeaknessEntryMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *WeaknessEntryMutation) ResetKey() {
	m.key = nil
}

// SetSubject sets the "subject" field.
func (m *WeaknessEntryMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *WeaknessEntryMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the WeaknessEntry entity.
// If the WeaknessEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeaknessEntryMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *WeaknessEntryMutation) ResetSubject() {
	m.subject = nil
}

// SetBaseBranch sets the "base_branch" field.
func (m *WeaknessEntryMutation) SetBaseBranch(s string) {
	m.base_branch = &s
}

// BaseBranch returns the value of the "base_branch" field in the mutation.
func (m *WeaknessEntryMutation) BaseBranch() (r string, exists bool) {
	v := m.base_branch
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseBranch returns the old "base_branch" field's value of the WeaknessEntry entity.
// If the WeaknessEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeaknessEntryMutation) OldBaseBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseBranch: %w", err)
	}
	return oldValue.BaseBranch, nil
}

// ResetBaseBranch resets all changes to the "base_branch" field.
func (m *WeaknessEntryMutation) ResetBaseBranch() {
	m.base_branch = nil
}

// SetDetailedBranch sets the "detailed_branch" field.
func (m *WeaknessEntryMutation) SetDetailedBranch(s string) {
	m.detailed_branch = &s
}

// DetailedBranch returns the value of the "detailed_branch" field in the mutation.
func (m *WeaknessEntryMutation) DetailedBranch() (r string, exists bool) {
	v := m.detailed_branch
	if v == nil {
		return
	}
	return *v, true
}

// OldDetailedBranch returns the old "detailed_branch" field's value of the WeaknessEntry entity.
// If the WeaknessEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeaknessEntryMutation) OldDetailedBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetailedBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetailedBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetailedBranch: %w", err)
	}
	return oldValue.DetailedBranch, nil
}

// ResetDetailedBranch resets all changes to the "detailed_branch" field.
func (m *WeaknessEntryMutation) ResetDetailedBranch() {
	m.detailed_branch = nil
}

// SetCount sets the "count" field.
func (m *WeaknessEntryMutation) SetCount(i int) {
	m.count = &i
	m.addcount = nil
}

// Count returns the value of the "count" field in the mutation.
func (m *WeaknessEntryMutation) Count() (r int, exists bool) {
	v := m.count
	if v == nil {
		return
	}
	return *v, true
}

// OldCount returns the old "count" field's value of the WeaknessEntry entity.
// If the WeaknessEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeaknessEntryMutation) OldCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCount: %w", err)
	}
	return oldValue.Count, nil
}

// AddCount adds i to the "count" field.
func (m *WeaknessEntryMutation) AddCount(i int) {
	if m.addcount != nil {
		*m.addcount += i
	} else {
		m.addcount = &i
	}
}

// AddedCount returns the value that was added to the "count" field in this mutation.
func (m *WeaknessEntryMutation) AddedCount() (r int, exists bool) {
	v := m.addcount
	if v == nil {
		return
	}
	return *v, true
}

// ResetCount resets all changes to the "count" field.
func (m *WeaknessEntryMutation) ResetCount() {
	m.count = nil
	m.addcount = nil
}

// SetLastSeen sets the "last_seen" field.
func (m *WeaknessEntryMutation) SetLastSeen(t time.Time) {
	m.last_seen = &t
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *WeaknessEntryMutation) LastSeen() (r time.Time, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the WeaknessEntry entity.
// If the WeaknessEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeaknessEntryMutation) OldLastSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *WeaknessEntryMutation) ResetLastSeen() {
	m.last_seen = nil
}

// Where appends a list predicates to the WeaknessEntryMutation builder.
func (m *WeaknessEntryMutation) Where(ps ...predicate.WeaknessEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WeaknessEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WeaknessEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WeaknessEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WeaknessEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WeaknessEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WeaknessEntry).
func (m *WeaknessEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WeaknessEntryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.key != nil {
		fields = append(fields, weaknessentry.FieldKey)
	}
	if m.subject != nil {
		fields = append(fields, weaknessentry.FieldSubject)
	}
	if m.base_branch != nil {
		fields = append(fields, weaknessentry.FieldBaseBranch)
	}
	if m.detailed_branch != nil {
		fields = append(fields, weaknessentry.FieldDetailedBranch)
	}
	if m.count != nil {
		fields = append(fields, weaknessentry.FieldCount)
	}
	if m.last_seen != nil {
		fields = append(fields, weaknessentry.FieldLastSeen)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WeaknessEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case weaknessentry.FieldKey:
		return m.Key()
	case weaknessentry.FieldSubject:
		return m.Subject()
	case weaknessentry.FieldBaseBranch:
		return m.BaseBranch()
	case weaknessentry.FieldDetailedBranch:
		return m.DetailedBranch()
	case weaknessentry.FieldCount:
		return m.Count()
	case weaknessentry.FieldLastSeen:
		return m.LastSeen()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WeaknessEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case weaknessentry.FieldKey:
		return m.OldKey(ctx)
	case weaknessentry.FieldSubject:
		return m.OldSubject(ctx)
	case weaknessentry.FieldBaseBranch:
		return m.OldBaseBranch(ctx)
	case weaknessentry.FieldDetailedBranch:
		return m.OldDetailedBranch(ctx)
	case weaknessentry.FieldCount:
		return m.OldCount(ctx)
	case weaknessentry.FieldLastSeen:
		return m.OldLastSeen(ctx)
	}
	return nil, fmt.Errorf("unknown WeaknessEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WeaknessEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case weaknessentry.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case weaknessentry.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case weaknessentry.FieldBaseBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseBranch(v)
		return nil
	case weaknessentry.FieldDetailedBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetailedBranch(v)
		return nil
	case weaknessentry.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCount(v)
		return nil
	case weaknessentry.FieldLastSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	}
	return fmt.Errorf("unknown WeaknessEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WeaknessEntryMutation) AddedFields() []string {
	var fields []string
	if m.addcount != nil {
		fields = append(fields, weaknessentry.FieldCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WeaknessEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case weaknessentry.FieldCount:
		return m.AddedCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WeaknessEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case weaknessentry.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCount(v)
		return nil
	}
	return fmt.Errorf("unknown WeaknessEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WeaknessEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WeaknessEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WeaknessEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown WeaknessEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WeaknessEntryMutation) ResetField(name string) error {
	switch name {
	case weaknessentry.FieldKey:
		m.ResetKey()
		return nil
	case weaknessentry.FieldSubject:
		m.ResetSubject()
		return nil
	case weaknessentry.FieldBaseBranch:
		m.ResetBaseBranch()
		return nil
	case weaknessentry.FieldDetailedBranch:
		m.ResetDetailedBranch()
		return nil
	case weaknessentry.FieldCount:
		m.ResetCount()
		return nil
	case weaknessentry.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	}
	return fmt.Errorf("unknown WeaknessEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WeaknessEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WeaknessEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WeaknessEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WeaknessEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WeaknessEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WeaknessEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WeaknessEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WeaknessEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WeaknessEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WeaknessEntry edge %s", name)
}
