// Package api is the HTTP client for the CodeQuarry platform: curriculum,
// grading, doubt-solver and progress endpoints. The client carries an
// opaque bearer credential and forwards it on every request; it never
// inspects or parses the token.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// ErrUnauthorized is returned when the platform rejects the credential.
// Callers treat it as a signal to re-authenticate, not retry.
var ErrUnauthorized = errors.New("platform rejected credential")

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// StatusError reports a non-2xx response that is not covered by a
// sentinel error.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("platform returned HTTP %d: %s", e.Code, e.Body)
}

// Credentials is the opaque session identity issued by the auth service.
type Credentials struct {
	Token string
}

// Client talks to one platform deployment on behalf of one learner.
type Client struct {
	baseURL string
	creds   Credentials
	http    *http.Client
}

// NewClient creates a Client for the platform at baseURL.
func NewClient(baseURL string, creds Credentials) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// FromEnv builds a Client from CODEQUARRY_API_URL and CODEQUARRY_TOKEN.
// Returns false when no platform URL is configured (local mode).
func FromEnv() (*Client, bool) {
	base := os.Getenv("CODEQUARRY_API_URL")
	if base == "" {
		return nil, false
	}
	return NewClient(base, Credentials{Token: os.Getenv("CODEQUARRY_TOKEN")}), true
}

// do performs one JSON round trip. body and out may be nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.creds.Token != "" {
		req.Header.Set("Authorization", "Token "+c.creds.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
