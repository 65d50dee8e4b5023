// Package reconcile copies completed analyses from the local record store
// into the central reporting store. Sync is one-directional and idempotent:
// rows are keyed by item ID, the local store stays authoritative, and a row
// is only marked synced after the reporting store acknowledged the batch.
package reconcile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Row is one completed analysis as the reporting store receives it.
// ItemID is the upsert key, so replaying a batch overwrites rather than
// duplicates.
type Row struct {
	ItemID         string    `json:"item_id"`
	Subject        string    `json:"subject"`
	IsCorrect      bool      `json:"is_correct"`
	BaseBranch     string    `json:"base_branch"`
	DetailedBranch string    `json:"detailed_branch"`
	ErrorType      string    `json:"error_type,omitempty"`
	SpecificIssue  string    `json:"specific_issue,omitempty"`
	Suggestion     string    `json:"suggestion,omitempty"`
	Confidence     float64   `json:"confidence"`
	WeaknessKey    string    `json:"weakness_key"`
	GradedAt       time.Time `json:"graded_at"`
	AnalyzedAt     time.Time `json:"analyzed_at"`
}

// ReportingStore receives batches of completed analyses. An error fails the
// whole batch; partial acceptance is not part of the contract.
type ReportingStore interface {
	UpsertBatch(ctx context.Context, rows []Row) error
}

type upsertRequest struct {
	Rows []Row `json:"rows"`
}

// HTTPReportingStore posts batches to a remote reporting endpoint.
type HTTPReportingStore struct {
	url   string
	httpc *http.Client
}

// NewHTTPReportingStore creates a reporting client for the given endpoint.
func NewHTTPReportingStore(url string, timeout time.Duration) *HTTPReportingStore {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPReportingStore{
		url:   url,
		httpc: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPReportingStore) UpsertBatch(ctx context.Context, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	body, err := json.Marshal(upsertRequest{Rows: rows})
	if err != nil {
		return fmt.Errorf("marshal reporting batch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("post reporting batch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("reporting store returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return nil
}
