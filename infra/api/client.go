package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
)

// Client is a thin JSON wrapper for the Comment Umpire backend.
// It handles base URL construction and error detail extraction.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient creates a backend API client. The logger may be a disabled
// logger; the client never writes to the terminal.
func NewClient(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		log:     log,
	}
}

// errorResponse is the backend's error body shape.
type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// Get performs a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post performs a POST request with a JSON body and decodes the JSON
// response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Str("method", method).Str("path", path).Err(err).Msg("api request failed")
		return fmt.Errorf("request to %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	c.log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("api request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Surface the backend's detail text when it sent one.
		var e errorResponse
		if json.Unmarshal(data, &e) == nil && e.Detail != "" {
			return fmt.Errorf("api %s %s: %s", method, path, e.Detail)
		}
		return fmt.Errorf("api %s %s returned %d: %s", method, path, resp.StatusCode, string(data))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing response from %s: %w", path, err)
	}
	return nil
}
