// Package api is the HTTP transport to the remote rental service. It attaches
// the bearer token, encodes JSON bodies and maps failures onto the error
// taxonomy in internal/errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "frent-client/internal/errors"

	"github.com/google/uuid"
)

// RequestIDHeader carries the correlation id sent with every call.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody bounds how much of a failed response is read for its message.
const maxErrorBody = 64 << 10

// Client issues JSON requests against the rental service base URL.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates a client for baseURL (e.g. "http://localhost:8080/api").
// A zero timeout leaves calls unbounded; callers may still cancel through ctx.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid API base URL %q: scheme must be http or https", baseURL)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Get issues a GET and decodes the response into out.
func (c *Client) Get(ctx context.Context, path, token string, out any) error {
	return c.Do(ctx, http.MethodGet, path, token, nil, out)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path, token string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, token, body, out)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path, token string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, token, body, out)
}

// Patch issues a PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, path, token string, body, out any) error {
	return c.Do(ctx, http.MethodPatch, path, token, body, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path, token string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, token, nil, out)
}

// Do sends one request. path is relative to the base URL and may carry a query
// string. An empty token sends no Authorization header. out may be nil.
//
// Errors: *errors.TransportError when no response arrived, *errors.RemoteError
// for any non-2xx status.
func (c *Client) Do(ctx context.Context, method, path, token string, body, out any) error {
	op := method + " " + path
	target := c.resolve(path)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: failed to encode request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("%s: failed to build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("remote call failed", "op", op, "request_id", requestID, "error", err)
		return &apperrors.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("remote call",
		"op", op,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeRemoteError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apperrors.TransportError{Op: op, Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", op, err)
	}
	return nil
}

func (c *Client) resolve(path string) string {
	rel, err := url.Parse(path)
	if err != nil {
		return c.baseURL.String() + "/" + strings.TrimLeft(path, "/")
	}
	u := *c.baseURL
	u.Path = strings.TrimRight(c.baseURL.Path, "/") + "/" + strings.TrimLeft(rel.Path, "/")
	u.RawPath = strings.TrimRight(c.baseURL.EscapedPath(), "/") + "/" + strings.TrimLeft(rel.EscapedPath(), "/")
	u.RawQuery = rel.RawQuery
	return u.String()
}

// errorBody is the error envelope the rental service sends.
type errorBody struct {
	Message string `json:"message"`
}

func decodeRemoteError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var body errorBody
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Message != "" {
			return apperrors.NewRemoteError(resp.StatusCode, body.Message)
		}
		return apperrors.NewRemoteError(resp.StatusCode, "")
	}

	// Plain-text bodies are used as the message when short enough to show.
	text := strings.TrimSpace(string(data))
	if text != "" && len(text) <= 200 && !strings.HasPrefix(text, "<") {
		return apperrors.NewRemoteError(resp.StatusCode, text)
	}
	return apperrors.NewRemoteError(resp.StatusCode, "")
}
