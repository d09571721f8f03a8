// Package api is the client for the SomaBuddy backend: child profiles,
// text-to-speech, speech-to-text, and AI text adaptation. Calls are plain
// request/response with no retry, caching, or backoff.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the local development backend.
	DefaultBaseURL = "http://localhost:8000"

	defaultTimeout = 30 * time.Second
)

// Config holds the client settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// ConfigFromEnv builds a Config from SOMABUDDY_API_URL and
// SOMABUDDY_API_TIMEOUT, with defaults for anything unset.
func ConfigFromEnv() Config {
	cfg := Config{BaseURL: DefaultBaseURL, Timeout: defaultTimeout}
	if v := os.Getenv("SOMABUDDY_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("SOMABUDDY_API_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	return cfg
}

// Error is the single error shape the backend produces. No finer taxonomy
// exists; callers surface the message and move on.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned HTTP %d: %s", e.StatusCode, e.Message)
}

// Client talks to the SomaBuddy backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client. Zero-value config fields fall back to
// defaults.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// doJSON sends a request with an optional JSON body and decodes a JSON
// response into out (skipped when out is nil).
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	data, err := c.send(req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// send executes a prepared request and returns the body, converting
// non-2xx statuses into *Error.
func (c *Client) send(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}
	return data, nil
}

// errorMessage pulls the backend's error detail out of a failure body.
// FastAPI-style bodies carry {"detail": ...}; generic ones {"error": ...}.
func errorMessage(data []byte) string {
	var body struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	if body.Detail != "" {
		return body.Detail
	}
	return body.Error
}
