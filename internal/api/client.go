package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrUnauthorized is returned for any 401 response, after the unauthorized
// hook has run. The session is gone at that point regardless of which call
// tripped it.
var ErrUnauthorized = errors.New("session expired or unauthorized")

// TokenSource supplies the current bearer token, empty when signed out.
type TokenSource interface {
	Token() string
}

// Client wraps outbound calls to the catalog API. Every request carries the
// bearer token when one is present and a lang query parameter for the active
// locale. Responses with status >= 500 are transport failures; anything else
// resolves to the envelope for the caller to inspect.
type Client struct {
	baseURL        string
	locale         string
	tokens         TokenSource
	onUnauthorized func()
	httpClient     *http.Client
	log            *slog.Logger
}

type Option func(*Client)

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

func WithLocale(locale string) Option {
	return func(c *Client) { c.locale = locale }
}

// WithUnauthorizedHook registers the global 401 side effect (session
// teardown plus redirect to sign-in).
func WithUnauthorizedHook(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		locale:     "ar",
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Locale() string {
	return c.locale
}

func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Envelope, error) {
	return c.do(ctx, http.MethodGet, path, query, nil, "")
}

func (c *Client) Delete(ctx context.Context, path string, query url.Values) (*Envelope, error) {
	return c.do(ctx, http.MethodDelete, path, query, nil, "")
}

func (c *Client) PostJSON(ctx context.Context, path string, query url.Values, body interface{}) (*Envelope, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, query, bytes.NewReader(raw), "application/json")
}

func (c *Client) PutJSON(ctx context.Context, path string, query url.Values, body interface{}) (*Envelope, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}
	return c.do(ctx, http.MethodPut, path, query, bytes.NewReader(raw), "application/json")
}

// PostForm submits a multipart form, used for every payload that carries
// file fields.
func (c *Client) PostForm(ctx context.Context, path string, query url.Values, form *Form) (*Envelope, error) {
	body, contentType, err := form.encode()
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, path, query, body, contentType)
}

func (c *Client) PutForm(ctx context.Context, path string, query url.Values, form *Form) (*Envelope, error) {
	body, contentType, err := form.encode()
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPut, path, query, body, contentType)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*Envelope, error) {
	// Copy before adding lang so a query map reused by the caller stays
	// untouched.
	q := url.Values{}
	for key, values := range query {
		q[key] = values
	}
	q.Set("lang", c.locale)

	endpoint := c.baseURL + path + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("api call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, ErrUnauthorized
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%s %s: status=%d body=%s", method, path, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%s %s: decode envelope: %w", method, path, err)
	}
	return &env, nil
}
