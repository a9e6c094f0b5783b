// Package api is the typed client for the remote booking service. Every
// operation is a single JSON-over-HTTP attempt: failures are classified and
// surfaced to the caller, never retried, and never allowed to leave partial
// local state behind.
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

	"github.com/example/roomportal/internal/logging"
)

// Client talks to the booking API at a fixed base origin. The zero value is
// not usable; construct one with New. A Client is safe for concurrent use.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *slog.Logger
	token   string
}

// New constructs a client for the given base origin, e.g.
// "http://booking.pollub.internal:8080".
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// WithToken returns a copy of the client that attaches the given bearer token
// to every call. The original client is left untouched, so one base client
// can serve many sessions.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = strings.TrimSpace(token)
	return &clone
}

const maxResponseBytes = 1 << 20

// call performs one request and decodes the response into out (when non-nil).
// Classification follows the portal error taxonomy: *TransportError when no
// response arrived, *ServerError for non-2xx responses (carrying the body
// text verbatim, and unwrapping to ErrUnauthenticated for 401/403), and
// *ShapeError when the body does not match the expected shape.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("api: build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	logger := logging.Or(ctx, c.logger).With("method", method, "path", path)
	start := time.Now()

	resp, err := c.httpc.Do(req)
	if err != nil {
		logger.ErrorContext(ctx, "no response from booking API", "error", err)
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		logger.ErrorContext(ctx, "failed to read booking API response", "error", err)
		return &TransportError{Err: err}
	}

	logger.DebugContext(ctx, "booking API call completed",
		"status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ServerError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(data))}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		logger.ErrorContext(ctx, "unexpected booking API response shape", "error", err)
		return &ShapeError{Method: method, Path: path, Err: err}
	}
	return nil
}

// flag serialises a requirement toggle the way the API expects query
// booleans: "1" or "0".
func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
