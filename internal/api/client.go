// Package api implements the authenticated HTTP client for the CrowdStrike
// Falcon platform. All outbound traffic passes through Client.do, which
// enforces token acquisition as a precondition of every request.
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
	"strconv"
	"time"

	"github.com/tidwall/gjson"

	"github.com/diogo/falconmcp/internal/config"
	apierrors "github.com/diogo/falconmcp/internal/errors"
)

// Doer is the transport used for all outbound requests. net/http satisfies
// it; tests substitute a scripted implementation.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the Falcon API client. It owns the cached token and translates
// each operation into one or more HTTPS requests.
type Client struct {
	http    Doer
	baseURL string
	tokens  *tokenSource
	log     *slog.Logger
}

// Option configures the client
type Option func(*Client)

// WithHTTPClient replaces the underlying transport.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		c.http = d
	}
}

// WithLogger sets the client logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithClock replaces the token cache clock, for deterministic expiry tests.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.tokens.now = now
	}
}

// NewClient creates a Client for the given configuration.
func NewClient(cfg *config.Config, opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: 60 * time.Second},
		baseURL: cfg.BaseURL,
		log:     slog.Default(),
	}
	c.tokens = newTokenSource(c.http, cfg.BaseURL, cfg.ClientID, cfg.ClientSecret)

	for _, opt := range opts {
		opt(c)
	}
	// Keep the token source on the same transport after overrides.
	c.tokens.http = c.http

	return c
}

// do performs one authenticated request and returns the raw response body.
// A non-success status becomes an APIError carrying the status code and
// whatever error text the platform supplied.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	token, err := c.tokens.bearer(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apierrors.NewAPIError(0, path, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierrors.NewAPIError(resp.StatusCode, path, "read response: "+err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apierrors.NewAPIError(resp.StatusCode, path, remoteMessage(data, resp.StatusCode))
	}

	c.log.DebugContext(ctx, "falcon request", "method", method, "path", path, "status", resp.StatusCode)
	return data, nil
}

// remoteMessage extracts the platform-supplied error text from a response
// body, falling back to the HTTP status text.
func remoteMessage(body []byte, status int) string {
	if msg := gjson.GetBytes(body, "errors.0.message").String(); msg != "" {
		return msg
	}
	if msg := gjson.GetBytes(body, "error_description").String(); msg != "" {
		return msg
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "status " + strconv.Itoa(status)
}

// queryParams builds the common limit plus optional filter query string.
// Filter strings are FQL and passed through opaquely, never parsed here.
func queryParams(filter string, limit int) url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	if filter != "" {
		q.Set("filter", filter)
	}
	return q
}
