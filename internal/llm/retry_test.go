package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func classifyReq() Request {
	return Request{
		Purpose:   PurposeClassifyFull,
		Prompt:    "classify this",
		Schema:    &Schema{Name: "t", Definition: map[string]any{"type": "object"}},
		MaxTokens: 100,
	}
}

func TestRetrySucceedsFirstAttempt(t *testing.T) {
	scripted := NewScriptedProvider(
		Outcome{JSON: `{"ok":true}`},
	)
	p := WithRetry(scripted, retryConfig())

	resp, err := p.Classify(context.Background(), classifyReq())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if scripted.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", scripted.CallCount())
	}
}

func TestRetryTransientThenSuccess(t *testing.T) {
	scripted := NewScriptedProvider(
		Outcome{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		Outcome{JSON: `{"ok":true}`},
	)
	p := WithRetry(scripted, retryConfig())

	resp, err := p.Classify(context.Background(), classifyReq())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if scripted.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", scripted.CallCount())
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	scripted := NewScriptedProvider(
		Outcome{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		Outcome{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		Outcome{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	p := WithRetry(scripted, retryConfig())

	_, err := p.Classify(context.Background(), classifyReq())
	if err == nil {
		t.Fatal("expected error")
	}
	if scripted.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", scripted.CallCount())
	}
}

func TestRetryTruncationNotRetried(t *testing.T) {
	scripted := NewScriptedProvider(
		Outcome{Err: &ErrTruncated{}},
	)
	p := WithRetry(scripted, retryConfig())

	_, err := p.Classify(context.Background(), classifyReq())
	var trunc *ErrTruncated
	if !errors.As(err, &trunc) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	if scripted.CallCount() != 1 {
		t.Fatalf("truncation should not retry, got %d calls", scripted.CallCount())
	}
}

func TestRetryMalformedReplyRetriedOnce(t *testing.T) {
	scripted := NewScriptedProvider(
		Outcome{Err: &ErrInvalidResponse{Err: errors.New("bad json")}},
		Outcome{Err: &ErrInvalidResponse{Err: errors.New("bad json")}},
		Outcome{JSON: `{"ok":true}`},
	)
	p := WithRetry(scripted, retryConfig())

	_, err := p.Classify(context.Background(), classifyReq())
	if err == nil {
		t.Fatal("expected error after second malformed reply")
	}
	if scripted.CallCount() != 2 {
		t.Fatalf("malformed reply should retry exactly once, got %d calls", scripted.CallCount())
	}
}

func TestRetryRateLimitHintWins(t *testing.T) {
	p := &retryProvider{cfg: retryConfig()}
	wait := p.wait(0, &ErrRateLimit{RetryAfter: 42 * time.Millisecond})
	if wait != 42*time.Millisecond {
		t.Fatalf("RetryAfter hint ignored, got %s", wait)
	}
}

func TestRetryContextCancelledNotRetried(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scripted := NewScriptedProvider(
		Outcome{Err: ctx.Err()},
	)
	p := WithRetry(scripted, retryConfig())

	_, err := p.Classify(ctx, classifyReq())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if scripted.CallCount() != 1 {
		t.Fatalf("cancelled context should not retry, got %d calls", scripted.CallCount())
	}
}
