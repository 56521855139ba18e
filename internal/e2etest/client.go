package e2etest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is a JSON HTTP client for the application under test.
type Client struct {
	client *http.Client
	url    string
}

// NewClient creates a client rooted at the given server URL.
func NewClient(url string) *Client {
	return &Client{
		client: &http.Client{}, //nolint:exhaustruct // defaults suffice for tests.
		url:    url,
	}
}

// WaitForReady polls the given endpoint until it answers HTTP 200, the
// context is cancelled, or the 1-second timeout is reached.
func (c *Client) WaitForReady(ctx context.Context, urlPath string) error {
	timeout := 1 * time.Second
	startTime := time.Now()
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+urlPath, nil)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		resp, err := c.client.Do(req)
		if err == nil {
			statusCode := resp.StatusCode
			if err = resp.Body.Close(); err != nil {
				return fmt.Errorf("close response body: %w", err)
			}
			if statusCode == http.StatusOK {
				return nil
			}
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
			if time.Since(startTime) >= timeout {
				return errors.New("timeout waiting for endpoint to be ready")
			}
			time.Sleep(100 * time.Millisecond) //nolint:mnd // poll interval.
		}
	}
}

// GetJSON performs a GET request and decodes the response body into out when
// out is non-nil. It returns the HTTP status code.
func (c *Client) GetJSON(ctx context.Context, urlPath string, out any) (int, error) {
	return c.do(ctx, http.MethodGet, urlPath, nil, out)
}

// PostJSON performs a POST request with a JSON body and decodes the response
// into out when out is non-nil. It returns the HTTP status code.
func (c *Client) PostJSON(ctx context.Context, urlPath string, body any, out any) (int, error) {
	return c.do(ctx, http.MethodPost, urlPath, body, out)
}

func (c *Client) do(ctx context.Context, method, urlPath string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url+urlPath, reader)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// The cross-origin protection treats requests without Sec-Fetch-Site as
	// same-origin, which is what a non-browser client is.

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, urlPath, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if out != nil {
		if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response of %s %s: %w", method, urlPath, err)
		}
	}
	return resp.StatusCode, nil
}
