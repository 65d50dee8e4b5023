package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func classificationSchema() *Schema {
	return &Schema{
		Name:        "test-classification",
		Description: "A single classification result",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"base_branch":     map[string]any{"type": "string"},
				"detailed_branch": map[string]any{"type": "string"},
				"confidence":      map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
			},
			"required": []any{"base_branch", "detailed_branch"},
		},
	}
}

func TestSchemaCheckValid(t *testing.T) {
	raw := json.RawMessage(`{"base_branch":"Mechanics","detailed_branch":"Kinematics","confidence":0.8}`)
	if err := classificationSchema().check(raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestSchemaCheckMissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"base_branch":"Mechanics"}`)
	err := classificationSchema().check(raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestSchemaCheckOutOfRange(t *testing.T) {
	raw := json.RawMessage(`{"base_branch":"a","detailed_branch":"b","confidence":1.5}`)
	if err := classificationSchema().check(raw); err == nil {
		t.Fatal("expected error for confidence above maximum")
	}
}

func TestSchemaCheckMalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"base_branch":`)
	err := classificationSchema().check(raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestSchemaCompiledOnce(t *testing.T) {
	s := classificationSchema()
	raw := json.RawMessage(`{"base_branch":"a","detailed_branch":"b"}`)
	for range 3 {
		if err := s.check(raw); err != nil {
			t.Fatalf("repeated validation failed: %v", err)
		}
	}
}

func TestRequestCheckRejectsIncomplete(t *testing.T) {
	if err := (Request{Schema: classificationSchema()}).check(); err == nil {
		t.Error("request without prompt accepted")
	}
	if err := (Request{Prompt: "p"}).check(); err == nil {
		t.Error("request without schema accepted")
	}
	if err := (Request{Prompt: "p", Schema: classificationSchema()}).check(); err != nil {
		t.Errorf("complete request rejected: %v", err)
	}
}
