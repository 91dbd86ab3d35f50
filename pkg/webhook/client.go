package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client posts JSON payloads to a single operator-configured URL
type Client struct {
	url        string
	httpClient *http.Client
}

// StatusError is returned when the destination answers with a non-2xx status
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("webhook request failed with status %d", e.StatusCode)
}

// NewClient returns nil when url is empty, which callers treat as "not configured".
// A nil httpClient means http.DefaultClient.
func NewClient(url string, httpClient *http.Client) *Client {
	if url == "" {
		return nil
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		url:        url,
		httpClient: httpClient,
	}
}

// IsConfigured checks if a destination URL is set
func (c *Client) IsConfigured() bool {
	return c != nil && c.url != ""
}

// Send encodes payload as JSON and posts it once. There is no retry.
func (c *Client) Send(ctx context.Context, payload any) error {
	if !c.IsConfigured() {
		return fmt.Errorf("webhook: destination not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("webhook: failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: request failed: %w", err)
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode}
	}
	return nil
}
