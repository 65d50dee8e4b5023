// Package llm is the transport under the classification gateway. Every call
// this codebase makes to a language model has the same shape: one system
// role, one user prompt carrying a batch of graded answers, and a JSON
// schema the reply must conform to. The package exposes exactly that shape
// and nothing wider.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

// Provider executes one classification call against a remote model.
type Provider interface {
	// Classify sends the prompt and returns the schema conforming JSON.
	Classify(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Purpose labels a request for event accounting.
type Purpose string

const (
	// PurposeClassifyFull is the mistake analysis of wrong answers.
	PurposeClassifyFull Purpose = "classification-full"

	// PurposeClassifyConcept is the concept extraction from correct answers.
	PurposeClassifyConcept Purpose = "classification-concept"
)

// Request is a single-turn, schema-bound classification call.
type Request struct {
	// Purpose tags the request in the event log.
	Purpose Purpose

	// System sets the model's role and constraints.
	System string

	// Prompt is the one user turn: the taxonomy catalog plus the batch of
	// graded answers to classify.
	Prompt string

	// Schema the reply must conform to. Required: there is no free-text
	// path through this package.
	Schema *Schema

	// MaxTokens caps the reply length.
	MaxTokens int

	// Temperature in 0.0 to 1.0; zero value means deterministic.
	Temperature float64
}

// check rejects requests the backends cannot serve.
func (r Request) check() error {
	if r.Prompt == "" {
		return fmt.Errorf("classification request has no prompt")
	}
	if r.Schema == nil {
		return fmt.Errorf("classification request has no schema")
	}
	return nil
}

// Response is the model's reply to one classification call.
type Response struct {
	// Content is the schema validated JSON.
	Content json.RawMessage

	// Usage reports token consumption for this call.
	Usage Usage

	// Model is the actual model that served the call.
	Model string
}

// Usage tracks token consumption for a single call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
