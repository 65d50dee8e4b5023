// Code generated by ent, DO NOT EDIT.

package gradeditem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/pvaidya/recheck/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLTE(FieldID, id))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldItemID, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldSubject, v))
}

// QuestionText applies equality check predicate on the "question_text" field. It's identical to QuestionTextEQ.
func QuestionText(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldQuestionText, v))
}

// StudentAnswer applies equality check predicate on the "student_answer" field. It's identical to StudentAnswerEQ.
func StudentAnswer(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldStudentAnswer, v))
}

// CorrectAnswer applies equality check predicate on the "correct_answer" field. It's identical to CorrectAnswerEQ.
func CorrectAnswer(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldCorrectAnswer, v))
}

// IsCorrect applies equality check predicate on the "is_correct" field. It's identical to IsCorrectEQ.
func IsCorrect(v bool) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldIsCorrect, v))
}

// AnalysisStatus applies equality check predicate on the "analysis_status" field. It's identical to AnalysisStatusEQ.
func AnalysisStatus(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldAnalysisStatus, v))
}

// BaseBranch applies equality check predicate on the "base_branch" field. It's identical to BaseBranchEQ.
func BaseBranch(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldBaseBranch, v))
}

// DetailedBranch applies equality check predicate on the "detailed_branch" field. It's identical to DetailedBranchEQ.
func DetailedBranch(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldDetailedBranch, v))
}

// ErrorType applies equality check predicate on the "error_type" field. It's identical to ErrorTypeEQ.
func ErrorType(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldErrorType, v))
}

// SpecificIssue applies equality check predicate on the "specific_issue" field. It's identical to SpecificIssueEQ.
func SpecificIssue(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldSpecificIssue, v))
}

// Evidence applies equality check predicate on the "evidence" field. It's identical to EvidenceEQ.
func Evidence(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldEvidence, v))
}

// Suggestion applies equality check predicate on the "suggestion" field. It's identical to SuggestionEQ.
func Suggestion(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldSuggestion, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldConfidence, v))
}

// AnalyzedAt applies equality check predicate on the "analyzed_at" field. It's identical to AnalyzedAtEQ.
func AnalyzedAt(v time.Time) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldAnalyzedAt, v))
}

// WeaknessKey applies equality check predicate on the "weakness_key" field. It's identical to WeaknessKeyEQ.
func WeaknessKey(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldWeaknessKey, v))
}

// AttemptCount applies equality check predicate on the "attempt_count" field. It's identical to AttemptCountEQ.
func AttemptCount(v int) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldAttemptCount, v))
}

// Synced applies equality check predicate on the "synced" field. It's identical to SyncedEQ.
func Synced(v bool) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldSynced, v))
}

// GradedAt applies equality check predicate on the "graded_at" field. It's identical to GradedAtEQ.
func GradedAt(v time.Time) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldGradedAt, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldContainsFold(FieldItemID, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldContainsFold(FieldSubject, v))
}

// QuestionTextEQ applies the EQ predicate on the "question_text" field.
func QuestionTextEQ(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldQuestionText, v))
}

// QuestionTextNEQ applies the NEQ predicate on the "question_text" field.
func QuestionTextNEQ(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNEQ(FieldQuestionText, v))
}

// QuestionTextIn applies the In predicate on the "question_text" field.
func QuestionTextIn(vs ...string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldIn(FieldQuestionText, vs...))
}

// QuestionTextNotIn applies the NotIn predicate on the "question_text" field.
func QuestionTextNotIn(vs ...string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNotIn(FieldQuestionText, vs...))
}

// QuestionTextGT applies the GT predicate on the "question_text" field.
func QuestionTextGT(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGT(FieldQuestionText, v))
}

// QuestionTextGTE applies the GTE predicate on the "question_text" field.
func QuestionTextGTE(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGTE(FieldQuestionText, v))
}

// QuestionTextLT applies the LT predicate on the "question_text" field.
func QuestionTextLT(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLT(FieldQuestionText, v))
}

// QuestionTextLTE applies the LTE predicate on the "question_text" field.
func QuestionTextLTE(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLTE(FieldQuestionText, v))
}

// QuestionTextContains applies the Contains predicate on the "question_text" field.
func QuestionTextContains(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldContains(FieldQuestionText, v))
}

// QuestionTextHasPrefix applies the HasPrefix predicate on the "question_text" field.
func QuestionTextHasPrefix(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldHasPrefix(FieldQuestionText, v))
}

// QuestionTextHasSuffix applies the HasSuffix predicate on the "question_text" field.
func QuestionTextHasSuffix(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldHasSuffix(FieldQuestionText, v))
}

// QuestionTextEqualFold applies the EqualFold predicate on the "question_text" field.
func QuestionTextEqualFold(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEqualFold(FieldQuestionText, v))
}

// QuestionTextContainsFold applies the ContainsFold predicate on the "question_text" field.
func QuestionTextContainsFold(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldContainsFold(FieldQuestionText, v))
}

// StudentAnswerEQ applies the EQ predicate on the "student_answer" field.
func StudentAnswerEQ(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldStudentAnswer, v))
}

// StudentAnswerNEQ applies the NEQ predicate on the "student_answer" field.
func StudentAnswerNEQ(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNEQ(FieldStudentAnswer, v))
}

// StudentAnswerIn applies the In predicate on the "student_answer" field.
func StudentAnswerIn(vs ...string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldIn(FieldStudentAnswer, vs...))
}

// StudentAnswerNotIn applies the NotIn predicate on the "student_answer" field.
func StudentAnswerNotIn(vs ...string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNotIn(FieldStudentAnswer, vs...))
}

// StudentAnswerGT applies the GT predicate on the "student_answer" field.
func StudentAnswerGT(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGT(FieldStudentAnswer, v))
}

// StudentAnswerGTE applies the GTE predicate on the "student_answer" field.
func StudentAnswerGTE(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGTE(FieldStudentAnswer, v))
}

// StudentAnswerLT applies the LT predicate on the "student_answer" field.
func StudentAnswerLT(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLT(FieldStudentAnswer, v))
}

// StudentAnswerLTE applies the LTE predicate on the "student_answer" field.
func StudentAnswerLTE(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLTE(FieldStudentAnswer, v))
}

// StudentAnswerContains applies the Contains predicate on the "student_answer" field.
func StudentAnswerContains(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldContains(FieldStudentAnswer, v))
}

// StudentAnswerHasPrefix applies the HasPrefix predicate on the "student_answer" field.
func StudentAnswerHasPrefix(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldHasPrefix(FieldStudentAnswer, v))
}

// StudentAnswerHasSuffix applies the HasSuffix predicate on the "student_answer" field.
func StudentAnswerHasSuffix(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldHasSuffix(FieldStudentAnswer, v))
}

// StudentAnswerEqualFold applies the EqualFold predicate on the "student_answer" field.
func StudentAnswerEqualFold(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEqualFold(FieldStudentAnswer, v))
}

// StudentAnswerContainsFold applies the ContainsFold predicate on the "student_answer" field.
func StudentAnswerContainsFold(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldContainsFold(FieldStudentAnswer, v))
}

// CorrectAnswerEQ applies the EQ predicate on the "correct_answer" field.
func CorrectAnswerEQ(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerNEQ applies the NEQ predicate on the "correct_answer" field.
func CorrectAnswerNEQ(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerIn applies the In predicate on the "correct_answer" field.
func CorrectAnswerIn(vs ...string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerNotIn applies the NotIn predicate on the "correct_answer" field.
func CorrectAnswerNotIn(vs ...string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNotIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerGT applies the GT predicate on the "correct_answer" field.
func CorrectAnswerGT(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGT(FieldCorrectAnswer, v))
}

// CorrectAnswerGTE applies the GTE predicate on the "correct_answer" field.
func CorrectAnswerGTE(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGTE(FieldCorrectAnswer, v))
}

// CorrectAnswerLT applies the LT predicate on the "correct_answer" field.
func CorrectAnswerLT(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLT(FieldCorrectAnswer, v))
}

// CorrectAnswerLTE applies the LTE predicate on the "correct_answer" field.
func CorrectAnswerLTE(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLTE(FieldCorrectAnswer, v))
}

// CorrectAnswerContains applies the Contains predicate on the "correct_answer" field.
func CorrectAnswerContains(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldContains(FieldCorrectAnswer, v))
}

// CorrectAnswerHasPrefix applies the HasPrefix predicate on the "correct_answer" field.
func CorrectAnswerHasPrefix(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldHasPrefix(FieldCorrectAnswer, v))
}

// CorrectAnswerHasSuffix applies the HasSuffix predicate on the "correct_answer" field.
func CorrectAnswerHasSuffix(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldHasSuffix(FieldCorrectAnswer, v))
}

// CorrectAnswerEqualFold applies the EqualFold predicate on the "correct_answer" field.
func CorrectAnswerEqualFold(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEqualFold(FieldCorrectAnswer, v))
}

// CorrectAnswerContainsFold applies the ContainsFold predicate on the "correct_answer" field.
func CorrectAnswerContainsFold(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldContainsFold(FieldCorrectAnswer, v))
}

// IsCorrectEQ applies the EQ predicate on the "is_correct" field.
func IsCorrectEQ(v bool) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldIsCorrect, v))
}

// IsCorrectNEQ applies the NEQ predicate on the "is_correct" field.
func IsCorrectNEQ(v bool) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNEQ(FieldIsCorrect, v))
}

// AnalysisStatusEQ applies the EQ predicate on the "analysis_status" field.
func AnalysisStatusEQ(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldAnalysisStatus, v))
}

// AnalysisStatusNEQ applies the NEQ predicate on the "analysis_status" field.
func AnalysisStatusNEQ(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNEQ(FieldAnalysisStatus, v))
}

// AnalysisStatusIn applies the In predicate on the "analysis_status" field.
func AnalysisStatusIn(vs ...string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldIn(FieldAnalysisStatus, vs...))
}

// AnalysisStatusNotIn applies the NotIn predicate on the "analysis_status" field.
func AnalysisStatusNotIn(vs ...string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNotIn(FieldAnalysisStatus, vs...))
}

// AnalysisStatusGT applies the GT predicate on the "analysis_status" field.
func AnalysisStatusGT(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGT(FieldAnalysisStatus, v))
}

// AnalysisStatusGTE applies the GTE predicate on the "analysis_status" field.
func AnalysisStatusGTE(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGTE(FieldAnalysisStatus, v))
}

// AnalysisStatusLT applies the LT predicate on the "analysis_status" field.
func AnalysisStatusLT(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLT(FieldAnalysisStatus, v))
}

// AnalysisStatusLTE applies the LTE predicate on the "analysis_status" field.
func AnalysisStatusLTE(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLTE(FieldAnalysisStatus, v))
}

// AnalysisStatusContains applies the Contains predicate on the "analysis_status" field.
func AnalysisStatusContains(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldContains(FieldAnalysisStatus, v))
}

// AnalysisStatusHasPrefix applies the HasPrefix predicate on the "analysis_status" field.
func AnalysisStatusHasPrefix(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldHasPrefix(FieldAnalysisStatus, v))
}

// AnalysisStatusHasSuffix applies the HasSuffix predicate on the "analysis_status" field.
func AnalysisStatusHasSuffix(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldHasSuffix(FieldAnalysisStatus, v))
}

// AnalysisStatusEqualFold applies the EqualFold predicate on the "analysis_status" field.
func AnalysisStatusEqualFold(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEqualFold(FieldAnalysisStatus, v))
}

// AnalysisStatusContainsFold applies the ContainsFold predicate on the "analysis_status" field.
func AnalysisStatusContainsFold(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldContainsFold(FieldAnalysisStatus, v))
}

// BaseBranchEQ applies the EQ predicate on the "base_branch" field.
func BaseBranchEQ(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldBaseBranch, v))
}

// BaseBranchNEQ applies the NEQ predicate on the "base_branch" field.
func BaseBranchNEQ(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNEQ(FieldBaseBranch, v))
}

// BaseBranchIn applies the In predicate on the "base_branch" field.
func BaseBranchIn(vs ...string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldIn(FieldBaseBranch, vs...))
}

// BaseBranchNotIn applies the NotIn predicate on the "base_branch" field.
func BaseBranchNotIn(vs ...string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNotIn(FieldBaseBranch, vs...))
}

// BaseBranchGT applies the GT predicate on the "base_branch" field.
func BaseBranchGT(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGT(FieldBaseBranch, v))
}

// BaseBranchGTE applies the GTE predicate on the "base_branch" field.
func BaseBranchGTE(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGTE(FieldBaseBranch, v))
}

// BaseBranchLT applies the LT predicate on the "base_branch" field.
func BaseBranchLT(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLT(FieldBaseBranch, v))
}

// BaseBranchLTE applies the LTE predicate on the "base_branch" field.
func BaseBranchLTE(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLTE(FieldBaseBranch, v))
}

// BaseBranchContains applies the Contains predicate on the "base_branch" field.
func BaseBranchContains(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldContains(FieldBaseBranch, v))
}

// BaseBranchHasPrefix applies the HasPrefix predicate on the "base_branch" field.
func BaseBranchHasPrefix(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldHasPrefix(FieldBaseBranch, v))
}

// BaseBranchHasSuffix applies the HasSuffix predicate on the "base_branch" field.
func BaseBranchHasSuffix(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldHasSuffix(FieldBaseBranch, v))
}

// BaseBranchIsNil applies the IsNil predicate on the "base_branch" field.
func BaseBranchIsNil() predicate.GradedItem {
	return predicate.GradedItem(sql.FieldIsNull(FieldBaseBranch))
}

// BaseBranchNotNil applies the NotNil predicate on the "base_branch" field.
func BaseBranchNotNil() predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNotNull(FieldBaseBranch))
}

// BaseBranchEqualFold applies the EqualFold predicate on the "base_branch" field.
func BaseBranchEqualFold(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEqualFold(FieldBaseBranch, v))
}

// BaseBranchContainsFold applies the ContainsFold predicate on the "base_branch" field.
func BaseBranchContainsFold(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldContainsFold(FieldBaseBranch, v))
}

// DetailedBranchEQ applies the EQ predicate on the "detailed_branch" field.
func DetailedBranchEQ(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldDetailedBranch, v))
}

// DetailedBranchNEQ applies the NEQ predicate on the "detailed_branch" field.
func DetailedBranchNEQ(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNEQ(FieldDetailedBranch, v))
}

// DetailedBranchIn applies the In predicate on the "detailed_branch" field.
func DetailedBranchIn(vs ...string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldIn(FieldDetailedBranch, vs...))
}

// DetailedBranchNotIn applies the NotIn predicate on the "detailed_branch" field.
func DetailedBranchNotIn(vs ...string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNotIn(FieldDetailedBranch, vs...))
}

// DetailedBranchGT applies the GT predicate on the "detailed_branch" field.
func DetailedBranchGT(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGT(FieldDetailedBranch, v))
}

// DetailedBranchGTE applies the GTE predicate on the "detailed_branch" field.
func DetailedBranchGTE(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGTE(FieldDetailedBranch, v))
}

// DetailedBranchLT applies the LT predicate on the "detailed_branch" field.
func DetailedBranchLT(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLT(FieldDetailedBranch, v))
}

// DetailedBranchLTE applies the LTE predicate on the "detailed_branch" field.
func DetailedBranchLTE(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLTE(FieldDetailedBranch, v))
}

// DetailedBranchContains applies the Contains predicate on the "detailed_branch" field.
func DetailedBranchContains(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldContains(FieldDetailedBranch, v))
}

// DetailedBranchHasPrefix applies the HasPrefix predicate on the "detailed_branch" field.
func DetailedBranchHasPrefix(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldHasPrefix(FieldDetailedBranch, v))
}

// DetailedBranchHasSuffix applies the HasSuffix predicate on the "detailed_branch" field.
func DetailedBranchHasSuffix(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldHasSuffix(FieldDetailedBranch, v))
}

// DetailedBranchIsNil applies the IsNil predicate on the "detailed_branch" field.
func DetailedBranchIsNil() predicate.GradedItem {
	return predicate.GradedItem(sql.FieldIsNull(FieldDetailedBranch))
}

// DetailedBranchNotNil applies the NotNil predicate on the "detailed_branch" field.
func DetailedBranchNotNil() predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNotNull(FieldDetailedBranch))
}

// DetailedBranchEqualFold applies the EqualFold predicate on the "detailed_branch" field.
func DetailedBranchEqualFold(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEqualFold(FieldDetailedBranch, v))
}

// DetailedBranchContainsFold applies the ContainsFold predicate on the "detailed_branch" field.
func DetailedBranchContainsFold(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldContainsFold(FieldDetailedBranch, v))
}

// ErrorTypeEQ applies the EQ predicate on the "error_type" field.
func ErrorTypeEQ(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldErrorType, v))
}

// ErrorTypeNEQ applies the NEQ predicate on the "error_type" field.
func ErrorTypeNEQ(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNEQ(FieldErrorType, v))
}

// ErrorTypeIn applies the In predicate on the "error_type" field.
func ErrorTypeIn(vs ...string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldIn(FieldErrorType, vs...))
}

// ErrorTypeNotIn applies the NotIn predicate on the "error_type" field.
func ErrorTypeNotIn(vs ...string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNotIn(FieldErrorType, vs...))
}

// ErrorTypeGT applies the GT predicate on the "error_type" field.
func ErrorTypeGT(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGT(FieldErrorType, v))
}

// ErrorTypeGTE applies the GTE predicate on the "error_type" field.
func ErrorTypeGTE(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGTE(FieldErrorType, v))
}

// ErrorTypeLT applies the LT predicate on the "error_type" field.
func ErrorTypeLT(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLT(FieldErrorType, v))
}

// ErrorTypeLTE applies the LTE predicate on the "error_type" field.
func ErrorTypeLTE(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLTE(FieldErrorType, v))
}

// ErrorTypeContains applies the Contains predicate on the "error_type" field.
func ErrorTypeContains(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldContains(FieldErrorType, v))
}

// ErrorTypeHasPrefix applies the HasPrefix predicate on the "error_type" field.
func ErrorTypeHasPrefix(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldHasPrefix(FieldErrorType, v))
}

// ErrorTypeHasSuffix applies the HasSuffix predicate on the "error_type" field.
func ErrorTypeHasSuffix(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldHasSuffix(FieldErrorType, v))
}

// ErrorTypeIsNil applies the IsNil predicate on the "error_type" field.
func ErrorTypeIsNil() predicate.GradedItem {
	return predicate.GradedItem(sql.FieldIsNull(FieldErrorType))
}

// ErrorTypeNotNil applies the NotNil predicate on the "error_type" field.
func ErrorTypeNotNil() predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNotNull(FieldErrorType))
}

// ErrorTypeEqualFold applies the EqualFold predicate on the "error_type" field.
func ErrorTypeEqualFold(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEqualFold(FieldErrorType, v))
}

// ErrorTypeContainsFold applies the ContainsFold predicate on the "error_type" field.
func ErrorTypeContainsFold(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldContainsFold(FieldErrorType, v))
}

// SpecificIssueEQ applies the EQ predicate on the "specific_issue" field.
func SpecificIssueEQ(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldSpecificIssue, v))
}

// SpecificIssueNEQ applies the NEQ predicate on the "specific_issue" field.
func SpecificIssueNEQ(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNEQ(FieldSpecificIssue, v))
}

// SpecificIssueIn applies the In predicate on the "specific_issue" field.
func SpecificIssueIn(vs ...string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldIn(FieldSpecificIssue, vs...))
}

// SpecificIssueNotIn applies the NotIn predicate on the "specific_issue" field.
func SpecificIssueNotIn(vs ...string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNotIn(FieldSpecificIssue, vs...))
}

// SpecificIssueGT applies the GT predicate on the "specific_issue" field.
func SpecificIssueGT(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGT(FieldSpecificIssue, v))
}

// SpecificIssueGTE applies the GTE predicate on the "specific_issue" field.
func SpecificIssueGTE(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGTE(FieldSpecificIssue, v))
}

// SpecificIssueLT applies the LT predicate on the "specific_issue" field.
func SpecificIssueLT(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLT(FieldSpecificIssue, v))
}

// SpecificIssueLTE applies the LTE predicate on the "specific_issue" field.
func SpecificIssueLTE(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLTE(FieldSpecificIssue, v))
}

// SpecificIssueContains applies the Contains predicate on the "specific_issue" field.
func SpecificIssueContains(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldContains(FieldSpecificIssue, v))
}

// SpecificIssueHasPrefix applies the HasPrefix predicate on the "specific_issue" field.
func SpecificIssueHasPrefix(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldHasPrefix(FieldSpecificIssue, v))
}

// SpecificIssueHasSuffix applies the HasSuffix predicate on the "specific_issue" field.
func SpecificIssueHasSuffix(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldHasSuffix(FieldSpecificIssue, v))
}

// SpecificIssueIsNil applies the IsNil predicate on the "specific_issue" field.
func SpecificIssueIsNil() predicate.GradedItem {
	return predicate.GradedItem(sql.FieldIsNull(FieldSpecificIssue))
}

// SpecificIssueNotNil applies the NotNil predicate on the "specific_issue" field.
func SpecificIssueNotNil() predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNotNull(FieldSpecificIssue))
}

// SpecificIssueEqualFold applies the EqualFold predicate on the "specific_issue" field.
func SpecificIssueEqualFold(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEqualFold(FieldSpecificIssue, v))
}

// SpecificIssueContainsFold applies the ContainsFold predicate on the "specific_issue" field.
func SpecificIssueContainsFold(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldContainsFold(FieldSpecificIssue, v))
}

// EvidenceEQ applies the EQ predicate on the "evidence" field.
func EvidenceEQ(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldEvidence, v))
}

// EvidenceNEQ applies the NEQ predicate on the "evidence" field.
func EvidenceNEQ(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNEQ(FieldEvidence, v))
}

// EvidenceIn applies the In predicate on the "evidence" field.
func EvidenceIn(vs ...string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldIn(FieldEvidence, vs...))
}

// EvidenceNotIn applies the NotIn predicate on the "evidence" field.
func EvidenceNotIn(vs ...string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNotIn(FieldEvidence, vs...))
}

// EvidenceGT applies the GT predicate on the "evidence" field.
func EvidenceGT(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGT(FieldEvidence, v))
}

// EvidenceGTE applies the GTE predicate on the "evidence" field.
func EvidenceGTE(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGTE(FieldEvidence, v))
}

// EvidenceLT applies the LT predicate on the "evidence" field.
func EvidenceLT(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLT(FieldEvidence, v))
}

// EvidenceLTE applies the LTE predicate on the "evidence" field.
func EvidenceLTE(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLTE(FieldEvidence, v))
}

// EvidenceContains applies the Contains predicate on the "evidence" field.
func EvidenceContains(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldContains(FieldEvidence, v))
}

// EvidenceHasPrefix applies the HasPrefix predicate on the "evidence" field.
func EvidenceHasPrefix(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldHasPrefix(FieldEvidence, v))
}

// EvidenceHasSuffix applies the HasSuffix predicate on the "evidence" field.
func EvidenceHasSuffix(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldHasSuffix(FieldEvidence, v))
}

// EvidenceIsNil applies the IsNil predicate on the "evidence" field.
func EvidenceIsNil() predicate.GradedItem {
	return predicate.GradedItem(sql.FieldIsNull(FieldEvidence))
}

// EvidenceNotNil applies the NotNil predicate on the "evidence" field.
func EvidenceNotNil() predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNotNull(FieldEvidence))
}

// EvidenceEqualFold applies the EqualFold predicate on the "evidence" field.
func EvidenceEqualFold(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEqualFold(FieldEvidence, v))
}

// EvidenceContainsFold applies the ContainsFold predicate on the "evidence" field.
func EvidenceContainsFold(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldContainsFold(FieldEvidence, v))
}

// SuggestionEQ applies the EQ predicate on the "suggestion" field.
func SuggestionEQ(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldSuggestion, v))
}

// SuggestionNEQ applies the NEQ predicate on the "suggestion" field.
func SuggestionNEQ(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNEQ(FieldSuggestion, v))
}

// SuggestionIn applies the In predicate on the "suggestion" field.
func SuggestionIn(vs ...string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldIn(FieldSuggestion, vs...))
}

// SuggestionNotIn applies the NotIn predicate on the "suggestion" field.
func SuggestionNotIn(vs ...string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNotIn(FieldSuggestion, vs...))
}

// SuggestionGT applies the GT predicate on the "suggestion" field.
func SuggestionGT(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGT(FieldSuggestion, v))
}

// SuggestionGTE applies the GTE predicate on the "suggestion" field.
func SuggestionGTE(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGTE(FieldSuggestion, v))
}

// SuggestionLT applies the LT predicate on the "suggestion" field.
func SuggestionLT(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLT(FieldSuggestion, v))
}

// SuggestionLTE applies the LTE predicate on the "suggestion" field.
func SuggestionLTE(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLTE(FieldSuggestion, v))
}

// SuggestionContains applies the Contains predicate on the "suggestion" field.
func SuggestionContains(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldContains(FieldSuggestion, v))
}

// SuggestionHasPrefix applies the HasPrefix predicate on the "suggestion" field.
func SuggestionHasPrefix(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldHasPrefix(FieldSuggestion, v))
}

// SuggestionHasSuffix applies the HasSuffix predicate on the "suggestion" field.
func SuggestionHasSuffix(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldHasSuffix(FieldSuggestion, v))
}

// SuggestionIsNil applies the IsNil predicate on the "suggestion" field.
func SuggestionIsNil() predicate.GradedItem {
	return predicate.GradedItem(sql.FieldIsNull(FieldSuggestion))
}

// SuggestionNotNil applies the NotNil predicate on the "suggestion" field.
func SuggestionNotNil() predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNotNull(FieldSuggestion))
}

// SuggestionEqualFold applies the EqualFold predicate on the "suggestion" field.
func SuggestionEqualFold(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEqualFold(FieldSuggestion, v))
}

// SuggestionContainsFold applies the ContainsFold predicate on the "suggestion" field.
func SuggestionContainsFold(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldContainsFold(FieldSuggestion, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.GradedItem {
	return predicate.GradedItem(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNotNull(FieldConfidence))
}

// AnalyzedAtEQ applies the EQ predicate on the "analyzed_at" field.
func AnalyzedAtEQ(v time.Time) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldAnalyzedAt, v))
}

// AnalyzedAtNEQ applies the NEQ predicate on the "analyzed_at" field.
func AnalyzedAtNEQ(v time.Time) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNEQ(FieldAnalyzedAt, v))
}

// AnalyzedAtIn applies the In predicate on the "analyzed_at" field.
func AnalyzedAtIn(vs ...time.Time) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldIn(FieldAnalyzedAt, vs...))
}

// AnalyzedAtNotIn applies the NotIn predicate on the "analyzed_at" field.
func AnalyzedAtNotIn(vs ...time.Time) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNotIn(FieldAnalyzedAt, vs...))
}

// AnalyzedAtGT applies the GT predicate on the "analyzed_at" field.
func AnalyzedAtGT(v time.Time) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGT(FieldAnalyzedAt, v))
}

// AnalyzedAtGTE applies the GTE predicate on the "analyzed_at" field.
func AnalyzedAtGTE(v time.Time) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGTE(FieldAnalyzedAt, v))
}

// AnalyzedAtLT applies the LT predicate on the "analyzed_at" field.
func AnalyzedAtLT(v time.Time) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLT(FieldAnalyzedAt, v))
}

// AnalyzedAtLTE applies the LTE predicate on the "analyzed_at" field.
func AnalyzedAtLTE(v time.Time) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLTE(FieldAnalyzedAt, v))
}

// AnalyzedAtIsNil applies the IsNil predicate on the "analyzed_at" field.
func AnalyzedAtIsNil() predicate.GradedItem {
	return predicate.GradedItem(sql.FieldIsNull(FieldAnalyzedAt))
}

// AnalyzedAtNotNil applies the NotNil predicate on the "analyzed_at" field.
func AnalyzedAtNotNil() predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNotNull(FieldAnalyzedAt))
}

// WeaknessKeyEQ applies the EQ predicate on the "weakness_key" field.
func WeaknessKeyEQ(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldWeaknessKey, v))
}

// WeaknessKeyNEQ applies the NEQ predicate on the "weakness_key" field.
func WeaknessKeyNEQ(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNEQ(FieldWeaknessKey, v))
}

// WeaknessKeyIn applies the In predicate on the "weakness_key" field.
func WeaknessKeyIn(vs ...string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldIn(FieldWeaknessKey, vs...))
}

// WeaknessKeyNotIn applies the NotIn predicate on the "weakness_key" field.
func WeaknessKeyNotIn(vs ...string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNotIn(FieldWeaknessKey, vs...))
}

// WeaknessKeyGT applies the GT predicate on the "weakness_key" field.
func WeaknessKeyGT(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGT(FieldWeaknessKey, v))
}

// WeaknessKeyGTE applies the GTE predicate on the "weakness_key" field.
func WeaknessKeyGTE(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGTE(FieldWeaknessKey, v))
}

// WeaknessKeyLT applies the LT predicate on the "weakness_key" field.
func WeaknessKeyLT(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLT(FieldWeaknessKey, v))
}

// WeaknessKeyLTE applies the LTE predicate on the "weakness_key" field.
func WeaknessKeyLTE(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLTE(FieldWeaknessKey, v))
}

// WeaknessKeyContains applies the Contains predicate on the "weakness_key" field.
func WeaknessKeyContains(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldContains(FieldWeaknessKey, v))
}

// WeaknessKeyHasPrefix applies the HasPrefix predicate on the "weakness_key" field.
func WeaknessKeyHasPrefix(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldHasPrefix(FieldWeaknessKey, v))
}

// WeaknessKeyHasSuffix applies the HasSuffix predicate on the "weakness_key" field.
func WeaknessKeyHasSuffix(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldHasSuffix(FieldWeaknessKey, v))
}

// WeaknessKeyIsNil applies the IsNil predicate on the "weakness_key" field.
func WeaknessKeyIsNil() predicate.GradedItem {
	return predicate.GradedItem(sql.FieldIsNull(FieldWeaknessKey))
}

// WeaknessKeyNotNil applies the NotNil predicate on the "weakness_key" field.
func WeaknessKeyNotNil() predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNotNull(FieldWeaknessKey))
}

// WeaknessKeyEqualFold applies the EqualFold predicate on the "weakness_key" field.
func WeaknessKeyEqualFold(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEqualFold(FieldWeaknessKey, v))
}

// WeaknessKeyContainsFold applies the ContainsFold predicate on the "weakness_key" field.
func WeaknessKeyContainsFold(v string) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldContainsFold(FieldWeaknessKey, v))
}

// AttemptCountEQ applies the EQ predicate on the "attempt_count" field.
func AttemptCountEQ(v int) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldAttemptCount, v))
}

// AttemptCountNEQ applies the NEQ predicate on the "attempt_count" field.
func AttemptCountNEQ(v int) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNEQ(FieldAttemptCount, v))
}

// AttemptCountIn applies the In predicate on the "attempt_count" field.
func AttemptCountIn(vs ...int) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldIn(FieldAttemptCount, vs...))
}

// AttemptCountNotIn applies the NotIn predicate on the "attempt_count" field.
func AttemptCountNotIn(vs ...int) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNotIn(FieldAttemptCount, vs...))
}

// AttemptCountGT applies the GT predicate on the "attempt_count" field.
func AttemptCountGT(v int) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGT(FieldAttemptCount, v))
}

// AttemptCountGTE applies the GTE predicate on the "attempt_count" field.
func AttemptCountGTE(v int) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGTE(FieldAttemptCount, v))
}

// AttemptCountLT applies the LT predicate on the "attempt_count" field.
func AttemptCountLT(v int) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLT(FieldAttemptCount, v))
}

// AttemptCountLTE applies the LTE predicate on the "attempt_count" field.
func AttemptCountLTE(v int) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLTE(FieldAttemptCount, v))
}

// SyncedEQ applies the EQ predicate on the "synced" field.
func SyncedEQ(v bool) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldSynced, v))
}

// SyncedNEQ applies the NEQ predicate on the "synced" field.
func SyncedNEQ(v bool) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNEQ(FieldSynced, v))
}

// GradedAtEQ applies the EQ predicate on the "graded_at" field.
func GradedAtEQ(v time.Time) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldEQ(FieldGradedAt, v))
}

// GradedAtNEQ applies the NEQ predicate on the "graded_at" field.
func GradedAtNEQ(v time.Time) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNEQ(FieldGradedAt, v))
}

// GradedAtIn applies the In predicate on the "graded_at" field.
func GradedAtIn(vs ...time.Time) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldIn(FieldGradedAt, vs...))
}

// GradedAtNotIn applies the NotIn predicate on the "graded_at" field.
func GradedAtNotIn(vs ...time.Time) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldNotIn(FieldGradedAt, vs...))
}

// GradedAtGT applies the GT predicate on the "graded_at" field.
func GradedAtGT(v time.Time) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGT(FieldGradedAt, v))
}

// GradedAtGTE applies the GTE predicate on the "graded_at" field.
func GradedAtGTE(v time.Time) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldGTE(FieldGradedAt, v))
}

// GradedAtLT applies the LT predicate on the "graded_at" field.
func GradedAtLT(v time.Time) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLT(FieldGradedAt, v))
}

// GradedAtLTE applies the LTE predicate on the "graded_at" field.
func GradedAtLTE(v time.Time) predicate.GradedItem {
	return predicate.GradedItem(sql.FieldLTE(FieldGradedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GradedItem) predicate.GradedItem {
	return predicate.GradedItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GradedItem) predicate.GradedItem {
	return predicate.GradedItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GradedItem) predicate.GradedItem {
	return predicate.GradedItem(sql.NotPredicates(p))
}
