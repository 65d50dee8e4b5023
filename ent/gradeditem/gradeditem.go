// Code generated by ent, DO NOT EDIT.

package gradeditem

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the gradeditem type in the database.
	Label = "graded_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldItemID holds the string denoting the item_id field in the database.
	FieldItemID = "item_id"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldQuestionText holds the string denoting the question_text field in the database.
	FieldQuestionText = "question_text"
	// FieldStudentAnswer holds the string denoting the student_answer field in the database.
	FieldStudentAnswer = "student_answer"
	// FieldCorrectAnswer holds the string denoting the correct_answer field in the database.
	FieldCorrectAnswer = "correct_answer"
	// FieldIsCorrect holds the string denoting the is_correct field in the database.
	FieldIsCorrect = "is_correct"
	// FieldAnalysisStatus holds the string denoting the analysis_status field in the database.
	FieldAnalysisStatus = "analysis_status"
	// FieldBaseBranch holds the string denoting the base_branch field in the database.
	FieldBaseBranch = "base_branch"
	// FieldDetailedBranch holds the string denoting the detailed_branch field in the database.
	FieldDetailedBranch = "detailed_branch"
	// FieldErrorType holds the string denoting the error_type field in the database.
	FieldErrorType = "error_type"
	// FieldSpecificIssue holds the string denoting the specific_issue field in the database.
	FieldSpecificIssue = "specific_issue"
	// FieldEvidence holds the string denoting the evidence field in the database.
	FieldEvidence = "evidence"
	// FieldSuggestion holds the string denoting the suggestion field in the database.
	FieldSuggestion = "suggestion"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldAnalyzedAt holds the string denoting the analyzed_at field in the database.
	FieldAnalyzedAt = "analyzed_at"
	// FieldWeaknessKey holds the string denoting the weakness_key field in the database.
	FieldWeaknessKey = "weakness_key"
	// FieldAttemptCount holds the string denoting the attempt_count field in the database.
	FieldAttemptCount = "attempt_count"
	// FieldSynced holds the string denoting the synced field in the database.
	FieldSynced = "synced"
	// FieldGradedAt holds the string denoting the graded_at field in the database.
	FieldGradedAt = "graded_at"
	// Table holds the table name of the gradeditem in the database.
	Table = "graded_items"
)

// Columns holds all SQL columns for gradeditem fields.
var Columns = []string{
	FieldID,
	FieldItemID,
	FieldSubject,
	FieldQuestionText,
	FieldStudentAnswer,
	FieldCorrectAnswer,
	FieldIsCorrect,
	FieldAnalysisStatus,
	FieldBaseBranch,
	FieldDetailedBranch,
	FieldErrorType,
	FieldSpecificIssue,
	FieldEvidence,
	FieldSuggestion,
	FieldConfidence,
	FieldAnalyzedAt,
	FieldWeaknessKey,
	FieldAttemptCount,
	FieldSynced,
	FieldGradedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	ItemIDValidator func(string) error
	// SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	SubjectValidator func(string) error
	// QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	QuestionTextValidator func(string) error
	// DefaultStudentAnswer holds the default value on creation for the "student_answer" field.
	DefaultStudentAnswer string
	// DefaultCorrectAnswer holds the default value on creation for the "correct_answer" field.
	DefaultCorrectAnswer string
	// DefaultAnalysisStatus holds the default value on creation for the "analysis_status" field.
	DefaultAnalysisStatus string
	// DefaultBaseBranch holds the default value on creation for the "base_branch" field.
	DefaultBaseBranch string
	// DefaultDetailedBranch holds the default value on creation for the "detailed_branch" field.
	DefaultDetailedBranch string
	// DefaultErrorType holds the default value on creation for the "error_type" field.
	DefaultErrorType string
	// DefaultSpecificIssue holds the default value on creation for the "specific_issue" field.
	DefaultSpecificIssue string
	// DefaultEvidence holds the default value on creation for the "evidence" field.
	DefaultEvidence string
	// DefaultSuggestion holds the default value on creation for the "suggestion" field.
	DefaultSuggestion string
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultWeaknessKey holds the default value on creation for the "weakness_key" field.
	DefaultWeaknessKey string
	// DefaultAttemptCount holds the default value on creation for the "attempt_count" field.
	DefaultAttemptCount int
	// DefaultSynced holds the default value on creation for the "synced" field.
	DefaultSynced bool
	// DefaultGradedAt holds the default value on creation for the "graded_at" field.
	DefaultGradedAt func() time.Time
)

// OrderOption defines the ordering options for the GradedItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByItemID orders the results by the item_id field.
func ByItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemID, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByQuestionText orders the results by the question_text field.
func ByQuestionText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionText, opts...).ToFunc()
}

// ByStudentAnswer orders the results by the student_answer field.
func ByStudentAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentAnswer, opts...).ToFunc()
}

// ByCorrectAnswer orders the results by the correct_answer field.
func ByCorrectAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswer, opts...).ToFunc()
}

// ByIsCorrect orders the results by the is_correct field.
func ByIsCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsCorrect, opts...).ToFunc()
}

// ByAnalysisStatus orders the results by the analysis_status field.
func ByAnalysisStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisStatus, opts...).ToFunc()
}

// ByBaseBranch orders the results by the base_branch field.
func ByBaseBranch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaseBranch, opts...).ToFunc()
}

// ByDetailedBranch orders the results by the detailed_branch field.
func ByDetailedBranch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetailedBranch, opts...).ToFunc()
}

// ByErrorType orders the results by the error_type field.
func ByErrorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorType, opts...).ToFunc()
}

// BySpecificIssue orders the results by the specific_issue field.
func BySpecificIssue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpecificIssue, opts...).ToFunc()
}

// ByEvidence orders the results by the evidence field.
func ByEvidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvidence, opts...).ToFunc()
}

// BySuggestion orders the results by the suggestion field.
func BySuggestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuggestion, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByAnalyzedAt orders the results by the analyzed_at field.
func ByAnalyzedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalyzedAt, opts...).ToFunc()
}

// ByWeaknessKey orders the results by the weakness_key field.
func ByWeaknessKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeaknessKey, opts...).ToFunc()
}

// ByAttemptCount orders the results by the attempt_count field.
func ByAttemptCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptCount, opts...).ToFunc()
}

// BySynced orders the results by the synced field.
func BySynced(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSynced, opts...).ToFunc()
}

// ByGradedAt orders the results by the graded_at field.
func ByGradedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGradedAt, opts...).ToFunc()
}
