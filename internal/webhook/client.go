package webhook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUnavailable indicates the webhook endpoint could not be reached, timed
// out, or answered with a non-success status.
var ErrUnavailable = errors.New("webhook service unavailable")

// ErrMalformedPayload indicates the webhook answered with a body that is not
// well-formed JSON.
var ErrMalformedPayload = errors.New("malformed webhook payload")

// Enrichment is the AI-produced metadata for a newly added book. Either field
// may be empty; enrichment is best-effort.
type Enrichment struct {
	Summary  string
	Category string
}

// enrichmentFields mirrors the webhook's response object. The upstream answers
// in one of two shapes: the fields at the top level, or wrapped under "output".
type enrichmentFields struct {
	Summary  string `json:"summary_by_ai"`
	Category string `json:"category_by_ai"`
}

type enrichmentResponse struct {
	enrichmentFields
	Output *enrichmentFields `json:"output"`
}

// Client calls the external enrichment webhook. Calls are synchronous and sit
// on the request's critical path; there is no retry and no circuit breaker.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a webhook client for the configured endpoint with a
// bounded per-call timeout.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Enrich asks the webhook for a summary and category for the given book.
// Transport failures and non-success statuses map to ErrUnavailable; a body
// that is not JSON maps to ErrMalformedPayload. Missing fields inside a valid
// response degrade to empty strings rather than failing.
func (c *Client) Enrich(title, author string) (*Enrichment, error) {
	payload, err := json.Marshal(map[string]string{
		"title":  title,
		"author": author,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode webhook request: %v", err)
	}

	resp, err := c.httpClient.Post(c.url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var decoded enrichmentResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	fields := decoded.enrichmentFields
	if decoded.Output != nil {
		fields = *decoded.Output
	}

	return &Enrichment{
		Summary:  fields.Summary,
		Category: fields.Category,
	}, nil
}
