package gateway

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

// Client talks to a remote classification gateway over HTTP. It implements
// Classifier so queue workers can run against either an in-process Service
// or a shared gateway deployment.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient creates a gateway client. A zero timeout defaults to 60s, which
// leaves headroom for large batches.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

func (c *Client) Classify(ctx context.Context, items []Request) ([]Result, error) {
	if len(items) == 0 {
		return []Result{}, nil
	}

	body, err := json.Marshal(ClassifyRequest{Items: items})
	if err != nil {
		return nil, fmt.Errorf("marshal classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/classify", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call classification gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("classification gateway returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out ClassifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode classify response: %w", err)
	}
	if len(out.Results) != len(items) {
		return nil, fmt.Errorf("classification gateway returned %d results for %d items", len(out.Results), len(items))
	}
	return out.Results, nil
}
