package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

type stubClassifier struct {
	results []Result
	err     error
	got     []Request
}

func (s *stubClassifier) Classify(_ context.Context, items []Request) ([]Result, error) {
	s.got = items
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

func TestClassifyEndpointRoundTrip(t *testing.T) {
	stub := &stubClassifier{
		results: []Result{
			{BaseBranch: "Mechanics", DetailedBranch: "Kinematics", ErrorType: "conceptual_gap", Confidence: 0.85},
		},
	}
	srv := httptest.NewServer(NewRouter(stub, zap.NewNop()))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	results, err := client.Classify(context.Background(), []Request{
		{
			QuestionText:  "A ball is dropped from 20m. How long until it lands?",
			StudentAnswer: "4 seconds",
			CorrectAnswer: "2 seconds",
			Subject:       "Physics",
			Mode:          ModeFull,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].BaseBranch != "Mechanics" || results[0].ErrorType != "conceptual_gap" {
		t.Fatalf("unexpected result: %+v", results[0])
	}
	if len(stub.got) != 1 || stub.got[0].Subject != "Physics" {
		t.Fatalf("service received unexpected items: %+v", stub.got)
	}
}

func TestClassifyEndpointRejectsBadBody(t *testing.T) {
	srv := httptest.NewServer(NewRouter(&stubClassifier{}, zap.NewNop()))
	defer srv.Close()

	for name, body := range map[string]string{
		"not json":     `{{{`,
		"empty items":  `{"items":[]}`,
		"missing mode": `{"items":[{"question_text":"q","subject":"Math"}]}`,
		"bad mode":     `{"items":[{"question_text":"q","subject":"Math","mode":"deep"}]}`,
	} {
		resp, err := http.Post(srv.URL+"/v1/classify", "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", name, resp.StatusCode)
		}
	}
}

func TestClassifyEndpointServiceFailure(t *testing.T) {
	stub := &stubClassifier{err: errors.New("provider down")}
	srv := httptest.NewServer(NewRouter(stub, zap.NewNop()))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.Classify(context.Background(), []Request{
		{QuestionText: "q", Subject: "Math", Mode: ModeConceptOnly},
	})
	if err == nil {
		t.Fatal("expected error from failed batch")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Fatalf("expected gateway status in error, got: %v", err)
	}
}

func TestClientResultCountMismatch(t *testing.T) {
	stub := &stubClassifier{results: []Result{}}
	srv := httptest.NewServer(NewRouter(stub, zap.NewNop()))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.Classify(context.Background(), []Request{
		{QuestionText: "q", Subject: "Math", Mode: ModeConceptOnly},
	})
	if err == nil {
		t.Fatal("expected error for result count mismatch")
	}
}

func TestHealthz(t *testing.T) {
	srv := httptest.NewServer(NewRouter(&stubClassifier{}, zap.NewNop()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
