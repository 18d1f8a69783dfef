package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// StatusError reports a non-2xx HTTP response.
//
// The fetch executor retries these the same way it retries network-level
// errors, because tile servers routinely answer 5xx (and the legacy proxy
// even 4xx) under load before eventually serving the tile.
type StatusError struct {
	Code int
	URL  string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.URL)
}

// Client wraps HTTP operations with image-server-specific configuration.
//
// Client provides:
//   - Configured User-Agent header
//   - Overall per-request timeout
//
// Example usage:
//
//	client := NewClient(60*time.Second, "Mozilla/5.0")
//
//	// Fetch manifest JSON
//	body, err := client.Get(ctx, "https://iiif.example.org/manifest.json")
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new HTTP client with the given overall timeout and
// User-Agent header.
func NewClient(timeout time.Duration, userAgent string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// Get performs a GET request and returns the response body as bytes.
//
// The request includes the configured User-Agent header.
//
// Returns an error if:
//   - The request fails at the network level
//   - The response status is not 2xx (a *StatusError)
//   - Reading the body fails
//
// Example:
//
//	data, err := client.Get(ctx, "http://server/ms1_f001r.xml")
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, URL: url}
	}

	return io.ReadAll(resp.Body)
}
