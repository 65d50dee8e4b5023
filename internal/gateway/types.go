// Package gateway implements the stateless classification gateway: it
// forwards batches of graded answers to the remote language-model classifier
// and returns structured per-item results. It holds no durable state; a
// restart loses nothing because unacknowledged items are re-submitted by the
// queue. Taxonomy membership is validated by the taxonomy package on the
// consuming side, not here, so client and server cannot drift.
package gateway

import "context"

// Mode selects the classification depth. Full analysis is reserved for
// wrong answers; correct answers use the cheaper concept-only mode that
// returns just a taxonomy path.
type Mode string

const (
	ModeFull        Mode = "full"
	ModeConceptOnly Mode = "concept_only"
)

// Request is one item of a classification batch.
type Request struct {
	QuestionText  string `json:"question_text" binding:"required"`
	StudentAnswer string `json:"student_answer"`
	CorrectAnswer string `json:"correct_answer,omitempty"`
	Subject       string `json:"subject" binding:"required"`
	Mode          Mode   `json:"mode" binding:"required,oneof=full concept_only"`
}

// Result is one element of the batch response, parallel to the request
// batch. AnalysisFailed marks a per-item failure without failing the batch.
type Result struct {
	AnalysisFailed     bool    `json:"analysis_failed,omitempty"`
	BaseBranch         string  `json:"base_branch,omitempty"`
	DetailedBranch     string  `json:"detailed_branch,omitempty"`
	ErrorType          string  `json:"error_type,omitempty"`
	SpecificIssue      string  `json:"specific_issue,omitempty"`
	Evidence           string  `json:"evidence,omitempty"`
	LearningSuggestion string  `json:"learning_suggestion,omitempty"`
	Confidence         float64 `json:"confidence,omitempty"`
}

// Classifier is what the queue workers depend on: either the in-process
// Service or the HTTP Client for a remote gateway.
type Classifier interface {
	// Classify returns one Result per Request, in order. An error means the
	// whole batch failed (transport, timeout, unusable response) and should
	// be retried by the caller.
	Classify(ctx context.Context, items []Request) ([]Result, error)
}
