package gateway

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/pvaidya/recheck/internal/llm"
)

func testService(scripted *llm.ScriptedProvider) *Service {
	return NewService(scripted, DefaultServiceConfig(), zap.NewNop())
}

func batchItems() []Request {
	return []Request{
		{
			QuestionText:  "Solve 2x + 3 = 11",
			StudentAnswer: "x = 7",
			CorrectAnswer: "x = 4",
			Subject:       "Math",
			Mode:          ModeFull,
		},
		{
			QuestionText:  "Simplify 3(x + 2)",
			StudentAnswer: "3x + 6",
			Subject:       "Math",
			Mode:          ModeConceptOnly,
		},
	}
}

func TestClassifyBatch(t *testing.T) {
	scripted := llm.NewScriptedProvider(llm.Outcome{
		JSON: `{"results":[
			{"base_branch":"Algebra - Foundations","detailed_branch":"Linear Equations - One Variable","error_type":"execution_error","specific_issue":"Added instead of subtracting 3","evidence":"x = 7","learning_suggestion":"Undo addition with subtraction on both sides","confidence":0.9},
			{"base_branch":"Algebra - Foundations","detailed_branch":"Polynomials & Factoring","confidence":0.8}
		]}`,
	})
	svc := testService(scripted)

	results, err := svc.Classify(context.Background(), batchItems())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	if results[0].ErrorType != "execution_error" {
		t.Errorf("unexpected error_type: %q", results[0].ErrorType)
	}
	if results[0].Evidence != "x = 7" {
		t.Errorf("unexpected evidence: %q", results[0].Evidence)
	}
	if results[1].ErrorType != "" {
		t.Errorf("concept-only result should have no error_type, got %q", results[1].ErrorType)
	}
	if results[1].AnalysisFailed {
		t.Error("concept-only result unexpectedly marked failed")
	}
}

func TestClassifyEmptyBatch(t *testing.T) {
	scripted := llm.NewScriptedProvider()
	svc := testService(scripted)

	results, err := svc.Classify(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected empty results, got %d", len(results))
	}
	if scripted.CallCount() != 0 {
		t.Fatalf("empty batch must not call the provider, got %d calls", scripted.CallCount())
	}
}

func TestClassifyLengthMismatchFailsBatch(t *testing.T) {
	scripted := llm.NewScriptedProvider(llm.Outcome{
		JSON: `{"results":[{"base_branch":"a","detailed_branch":"b"}]}`,
	})
	svc := testService(scripted)

	if _, err := svc.Classify(context.Background(), batchItems()); err == nil {
		t.Fatal("expected error for result count mismatch")
	}
}

func TestClassifyUnusableItemMarkedFailed(t *testing.T) {
	scripted := llm.NewScriptedProvider(llm.Outcome{
		JSON: `{"results":[
			{"base_branch":"","detailed_branch":"","confidence":0.1},
			{"base_branch":"Algebra - Foundations","detailed_branch":"Inequalities","confidence":0.7}
		]}`,
	})
	svc := testService(scripted)

	results, err := svc.Classify(context.Background(), batchItems())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !results[0].AnalysisFailed {
		t.Error("item without branches should be marked failed")
	}
	if results[1].AnalysisFailed {
		t.Error("usable item should not be marked failed")
	}
}

func TestClassifyProviderErrorFailsBatch(t *testing.T) {
	scripted := llm.NewScriptedProvider(llm.Outcome{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := testService(scripted)

	if _, err := svc.Classify(context.Background(), batchItems()); err == nil {
		t.Fatal("expected error when provider fails")
	}
}

func TestClassifyRequestShape(t *testing.T) {
	scripted := llm.NewScriptedProvider(llm.Outcome{
		JSON: `{"results":[
			{"base_branch":"a","detailed_branch":"b"},
			{"base_branch":"a","detailed_branch":"b"}
		]}`,
	})
	svc := testService(scripted)

	if _, err := svc.Classify(context.Background(), batchItems()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scripted.Calls) != 1 {
		t.Fatalf("expected 1 provider call, got %d", len(scripted.Calls))
	}

	req := scripted.Calls[0]
	if !strings.Contains(req.Prompt, "Subject: Math") {
		t.Errorf("prompt missing subject catalog:\n%s", req.Prompt)
	}
	if !strings.Contains(req.Prompt, "Algebra - Foundations") {
		t.Errorf("prompt missing base branch guidance:\n%s", req.Prompt)
	}
	if !strings.Contains(req.Prompt, "mode=concept_only") {
		t.Errorf("prompt missing item mode:\n%s", req.Prompt)
	}
	if req.Schema != BatchSchema {
		t.Error("request should carry the batch schema")
	}
	// A batch with any wrong answer is tagged as full analysis.
	if req.Purpose != llm.PurposeClassifyFull {
		t.Errorf("unexpected purpose: %q", req.Purpose)
	}
}

func TestClassifyConceptOnlyBatchPurpose(t *testing.T) {
	scripted := llm.NewScriptedProvider(llm.Outcome{
		JSON: `{"results":[{"base_branch":"a","detailed_branch":"b"}]}`,
	})
	svc := testService(scripted)

	items := batchItems()[1:]
	if _, err := svc.Classify(context.Background(), items); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := scripted.Calls[0].Purpose; got != llm.PurposeClassifyConcept {
		t.Errorf("unexpected purpose: %q", got)
	}
}
