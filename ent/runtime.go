// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/pvaidya/recheck/ent/gradeditem"
	"github.com/pvaidya/recheck/ent/llmrequestevent"
	"github.com/pvaidya/recheck/ent/schema"
	"github.com/pvaidya/recheck/ent/weaknessentry"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	gradeditemFields := schema.GradedItem{}.Fields()
	_ = gradeditemFields
	// gradeditemDescItemID is the schema descriptor for item_id field.
	gradeditemDescItemID := gradeditemFields[0].Descriptor()
	// gradeditem.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	gradeditem.ItemIDValidator = gradeditemDescItemID.Validators[0].(func(string) error)
	// gradeditemDescSubject is the schema descriptor for subject field.
	gradeditemDescSubject := gradeditemFields[1].Descriptor()
	// gradeditem.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	gradeditem.SubjectValidator = gradeditemDescSubject.Validators[0].(func(string) error)
	// gradeditemDescQuestionText is the schema descriptor for question_text field.
	gradeditemDescQuestionText := gradeditemFields[2].Descriptor()
	// gradeditem.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	gradeditem.QuestionTextValidator = gradeditemDescQuestionText.Validators[0].(func(string) error)
	// gradeditemDescStudentAnswer is the schema descriptor for student_answer field.
	gradeditemDescStudentAnswer := gradeditemFields[3].Descriptor()
	// gradeditem.DefaultStudentAnswer holds the default value on creation for the student_answer field.
	gradeditem.DefaultStudentAnswer = gradeditemDescStudentAnswer.Default.(string)
	// gradeditemDescCorrectAnswer is the schema descriptor for correct_answer field.
	gradeditemDescCorrectAnswer := gradeditemFields[4].Descriptor()
	// gradeditem.DefaultCorrectAnswer holds the default value on creation for the correct_answer field.
	gradeditem.DefaultCorrectAnswer = gradeditemDescCorrectAnswer.Default.(string)
	// gradeditemDescAnalysisStatus is the schema descriptor for analysis_status field.
	gradeditemDescAnalysisStatus := gradeditemFields[6].Descriptor()
	// gradeditem.DefaultAnalysisStatus holds the default value on creation for the analysis_status field.
	gradeditem.DefaultAnalysisStatus = gradeditemDescAnalysisStatus.Default.(string)
	// gradeditemDescBaseBranch is the schema descriptor for base_branch field.
	gradeditemDescBaseBranch := gradeditemFields[7].Descriptor()
	// gradeditem.DefaultBaseBranch holds the default value on creation for the base_branch field.
	gradeditem.DefaultBaseBranch = gradeditemDescBaseBranch.Default.(string)
	// gradeditemDescDetailedBranch is the schema descriptor for detailed_branch field.
	gradeditemDescDetailedBranch := gradeditemFields[8].Descriptor()
	// gradeditem.DefaultDetailedBranch holds the default value on creation for the detailed_branch field.
	gradeditem.DefaultDetailedBranch = gradeditemDescDetailedBranch.Default.(string)
	// gradeditemDescErrorType is the schema descriptor for error_type field.
	gradeditemDescErrorType := gradeditemFields[9].Descriptor()
	// gradeditem.DefaultErrorType holds the default value on creation for the error_type field.
	gradeditem.DefaultErrorType = gradeditemDescErrorType.Default.(string)
	// gradeditemDescSpecificIssue is the schema descriptor for specific_issue field.
	gradeditemDescSpecificIssue := gradeditemFields[10].Descriptor()
	// gradeditem.DefaultSpecificIssue holds the default value on creation for the specific_issue field.
	gradeditem.DefaultSpecificIssue = gradeditemDescSpecificIssue.Default.(string)
	// gradeditemDescEvidence is the schema descriptor for evidence field.
	gradeditemDescEvidence := gradeditemFields[11].Descriptor()
	// gradeditem.DefaultEvidence holds the default value on creation for the evidence field.
	gradeditem.DefaultEvidence = gradeditemDescEvidence.Default.(string)
	// gradeditemDescSuggestion is the schema descriptor for suggestion field.
	gradeditemDescSuggestion := gradeditemFields[12].Descriptor()
	// gradeditem.DefaultSuggestion holds the default value on creation for the suggestion field.
	gradeditem.DefaultSuggestion = gradeditemDescSuggestion.Default.(string)
	// gradeditemDescConfidence is the schema descriptor for confidence field.
	gradeditemDescConfidence := gradeditemFields[13].Descriptor()
	// gradeditem.DefaultConfidence holds the default value on creation for the confidence field.
	gradeditem.DefaultConfidence = gradeditemDescConfidence.Default.(float64)
	// gradeditemDescWeaknessKey is the schema descriptor for weakness_key field.
	gradeditemDescWeaknessKey := gradeditemFields[15].Descriptor()
	// gradeditem.DefaultWeaknessKey holds the default value on creation for the weakness_key field.
	gradeditem.DefaultWeaknessKey = gradeditemDescWeaknessKey.Default.(string)
	// gradeditemDescAttemptCount is the schema descriptor for attempt_count field.
	gradeditemDescAttemptCount := gradeditemFields[16].Descriptor()
	// gradeditem.DefaultAttemptCount holds the default value on creation for the attempt_count field.
	gradeditem.DefaultAttemptCount = gradeditemDescAttemptCount.Default.(int)
	// gradeditemDescSynced is the schema descriptor for synced field.
	gradeditemDescSynced := gradeditemFields[17].Descriptor()
	// gradeditem.DefaultSynced holds the default value on creation for the synced field.
	gradeditem.DefaultSynced = gradeditemDescSynced.Default.(bool)
	// gradeditemDescGradedAt is the schema descriptor for graded_at field.
	gradeditemDescGradedAt := gradeditemFields[18].Descriptor()
	// gradeditem.DefaultGradedAt holds the default value on creation for the graded_at field.
	gradeditem.DefaultGradedAt = gradeditemDescGradedAt.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	weaknessentryFields := schema.WeaknessEntry{}.Fields()
	_ = weaknessentryFields
	// weaknessentryDescKey is the schema descriptor for key field.
	weaknessentryDescKey := weaknessentryFields[0].Descriptor()
	// weaknessentry.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	weaknessentry.KeyValidator = weaknessentryDescKey.Validators[0].(func(string) error)
	// weaknessentryDescSubject is the schema descriptor for subject field.
	weaknessentryDescSubject := weaknessentryFields[1].Descriptor()
	// weaknessentry.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	weaknessentry.SubjectValidator = weaknessentryDescSubject.Validators[0].(func(string) error)
	// weaknessentryDescBaseBranch is the schema descriptor for base_branch field.
	weaknessentryDescBaseBranch := weaknessentryFields[2].Descriptor()
	// weaknessentry.BaseBranchValidator is a validator for the "base_branch" field. It is called by the builders before save.
	weaknessentry.BaseBranchValidator = weaknessentryDescBaseBranch.Validators[0].(func(string) error)
	// weaknessentryDescDetailedBranch is the schema descriptor for detailed_branch field.
	weaknessentryDescDetailedBranch := weaknessentryFields[3].Descriptor()
	// weaknessentry.DetailedBranchValidator is a validator for the "detailed_branch" field. It is called by the builders before save.
	weaknessentry.DetailedBranchValidator = weaknessentryDescDetailedBranch.Validators[0].(func(string) error)
	// weaknessentryDescCount is the schema descriptor for count field.
	weaknessentryDescCount := weaknessentryFields[4].Descriptor()
	// weaknessentry.DefaultCount holds the default value on creation for the count field.
	weaknessentry.DefaultCount = weaknessentryDescCount.Default.(int)
	// weaknessentry.CountValidator is a validator for the "count" field. It is called by the builders before save.
	weaknessentry.CountValidator = weaknessentryDescCount.Validators[0].(func(int) error)
	// weaknessentryDescLastSeen is the schema descriptor for last_seen field.
	weaknessentryDescLastSeen := weaknessentryFields[5].Descriptor()
	// weaknessentry.DefaultLastSeen holds the default value on creation for the last_seen field.
	weaknessentry.DefaultLastSeen = weaknessentryDescLastSeen.Default.(func() time.Time)
}
