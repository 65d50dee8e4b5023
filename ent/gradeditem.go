// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/pvaidya/recheck/ent/gradeditem"
)

// GradedItem is the model entity for the GradedItem schema.
type GradedItem struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Stable item identifier, also the idempotent reporting-store key
	ItemID string `json:"item_id,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// QuestionText holds the value of the "question_text" field.
	QuestionText string `json:"question_text,omitempty"`
	// StudentAnswer holds the value of the "student_answer" field.
	StudentAnswer string `json:"student_answer,omitempty"`
	// CorrectAnswer holds the value of the "correct_answer" field.
	CorrectAnswer string `json:"correct_answer,omitempty"`
	// IsCorrect holds the value of the "is_correct" field.
	IsCorrect bool `json:"is_correct,omitempty"`
	// pending, processing, completed, failed
	AnalysisStatus string `json:"analysis_status,omitempty"`
	// BaseBranch holds the value of the "base_branch" field.
	BaseBranch string `json:"base_branch,omitempty"`
	// DetailedBranch holds the value of the "detailed_branch" field.
	DetailedBranch string `json:"detailed_branch,omitempty"`
	// ErrorType holds the value of the "error_type" field.
	ErrorType string `json:"error_type,omitempty"`
	// SpecificIssue holds the value of the "specific_issue" field.
	SpecificIssue string `json:"specific_issue,omitempty"`
	// Evidence holds the value of the "evidence" field.
	Evidence string `json:"evidence,omitempty"`
	// Suggestion holds the value of the "suggestion" field.
	Suggestion string `json:"suggestion,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// AnalyzedAt holds the value of the "analyzed_at" field.
	AnalyzedAt *time.Time `json:"analyzed_at,omitempty"`
	// WeaknessKey holds the value of the "weakness_key" field.
	WeaknessKey string `json:"weakness_key,omitempty"`
	// Remote classification attempts consumed so far
	AttemptCount int `json:"attempt_count,omitempty"`
	// Whether this record has been copied to the reporting store
	Synced bool `json:"synced,omitempty"`
	// GradedAt holds the value of the "graded_at" field.
	GradedAt     time.Time `json:"graded_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GradedItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gradeditem.FieldIsCorrect, gradeditem.FieldSynced:
			values[i] = new(sql.NullBool)
		case gradeditem.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case gradeditem.FieldID, gradeditem.FieldAttemptCount:
			values[i] = new(sql.NullInt64)
		case gradeditem.FieldItemID, gradeditem.FieldSubject, gradeditem.FieldQuestionText, gradeditem.FieldStudentAnswer, gradeditem.FieldCorrectAnswer, gradeditem.FieldAnalysisStatus, gradeditem.FieldBaseBranch, gradeditem.FieldDetailedBranch, gradeditem.FieldErrorType, gradeditem.FieldSpecificIssue, gradeditem.FieldEvidence, gradeditem.FieldSuggestion, gradeditem.FieldWeaknessKey:
			values[i] = new(sql.NullString)
		case gradeditem.FieldAnalyzedAt, gradeditem.FieldGradedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GradedItem fields.
func (_m *GradedItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gradeditem.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case gradeditem.FieldItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value.Valid {
				_m.ItemID = value.String
			}
		case gradeditem.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case gradeditem.FieldQuestionText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_text", values[i])
			} else if value.Valid {
				_m.QuestionText = value.String
			}
		case gradeditem.FieldStudentAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_answer", values[i])
			} else if value.Valid {
				_m.StudentAnswer = value.String
			}
		case gradeditem.FieldCorrectAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answer", values[i])
			} else if value.Valid {
				_m.CorrectAnswer = value.String
			}
		case gradeditem.FieldIsCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_correct", values[i])
			} else if value.Valid {
				_m.IsCorrect = value.Bool
			}
		case gradeditem.FieldAnalysisStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_status", values[i])
			} else if value.Valid {
				_m.AnalysisStatus = value.String
			}
		case gradeditem.FieldBaseBranch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field base_branch", values[i])
			} else if value.Valid {
				_m.BaseBranch = value.String
			}
		case gradeditem.FieldDetailedBranch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detailed_branch", values[i])
			} else if value.Valid {
				_m.DetailedBranch = value.String
			}
		case gradeditem.FieldErrorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_type", values[i])
			} else if value.Valid {
				_m.ErrorType = value.String
			}
		case gradeditem.FieldSpecificIssue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field specific_issue", values[i])
			} else if value.Valid {
				_m.SpecificIssue = value.String
			}
		case gradeditem.FieldEvidence:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field evidence", values[i])
			} else if value.Valid {
				_m.Evidence = value.String
			}
		case gradeditem.FieldSuggestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field suggestion", values[i])
			} else if value.Valid {
				_m.Suggestion = value.String
			}
		case gradeditem.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case gradeditem.FieldAnalyzedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field analyzed_at", values[i])
			} else if value.Valid {
				_m.AnalyzedAt = new(time.Time)
				*_m.AnalyzedAt = value.Time
			}
		case gradeditem.FieldWeaknessKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field weakness_key", values[i])
			} else if value.Valid {
				_m.WeaknessKey = value.String
			}
		case gradeditem.FieldAttemptCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_count", values[i])
			} else if value.Valid {
				_m.AttemptCount = int(value.Int64)
			}
		case gradeditem.FieldSynced:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field synced", values[i])
			} else if value.Valid {
				_m.Synced = value.Bool
			}
		case gradeditem.FieldGradedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field graded_at", values[i])
			} else if value.Valid {
				_m.GradedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GradedItem.
// This includes values selected through modifiers, order, etc.
func (_m *GradedItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GradedItem.
// Note that you need to call GradedItem.Unwrap() before calling this method if this GradedItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GradedItem) Update() *GradedItemUpdateOne {
	return NewGradedItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GradedItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GradedItem) Unwrap() *GradedItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GradedItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GradedItem) String() string {
	var builder strings.Builder
	builder.WriteString("GradedItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("item_id=")
	builder.WriteString(_m.ItemID)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("question_text=")
	builder.WriteString(_m.QuestionText)
	builder.WriteString(", ")
	builder.WriteString("student_answer=")
	builder.WriteString(_m.StudentAnswer)
	builder.WriteString(", ")
	builder.WriteString("correct_answer=")
	builder.WriteString(_m.CorrectAnswer)
	builder.WriteString(", ")
	builder.WriteString("is_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsCorrect))
	builder.WriteString(", ")
	builder.WriteString("analysis_status=")
	builder.WriteString(_m.AnalysisStatus)
	builder.WriteString(", ")
	builder.WriteString("base_branch=")
	builder.WriteString(_m.BaseBranch)
	builder.WriteString(", ")
	builder.WriteString("detailed_branch=")
	builder.WriteString(_m.DetailedBranch)
	builder.WriteString(", ")
	builder.WriteString("error_type=")
	builder.WriteString(_m.ErrorType)
	builder.WriteString(", ")
	builder.WriteString("specific_issue=")
	builder.WriteString(_m.SpecificIssue)
	builder.WriteString(", ")
	builder.WriteString("evidence=")
	builder.WriteString(_m.Evidence)
	builder.WriteString(", ")
	builder.WriteString("suggestion=")
	builder.WriteString(_m.Suggestion)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	if v := _m.AnalyzedAt; v != nil {
		builder.WriteString("analyzed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("weakness_key=")
	builder.WriteString(_m.WeaknessKey)
	builder.WriteString(", ")
	builder.WriteString("attempt_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptCount))
	builder.WriteString(", ")
	builder.WriteString("synced=")
	builder.WriteString(fmt.Sprintf("%v", _m.Synced))
	builder.WriteString(", ")
	builder.WriteString("graded_at=")
	builder.WriteString(_m.GradedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GradedItems is a parsable slice of GradedItem.
type GradedItems []*GradedItem
