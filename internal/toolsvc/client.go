package toolsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"toolbox/pkg/logging"
)

const (
	// DefaultBasePath prefixes every request path.
	DefaultBasePath = "/api"
	// DefaultTimeout bounds a single call.
	DefaultTimeout = 30 * time.Second

	// RequestIDHeader carries a per-call id for correlating service logs.
	RequestIDHeader = "X-Request-ID"

	maxResponseBytes = 32 << 20
	subsystem        = "ToolService"
)

// Client calls the remote tool service.
type Client struct {
	baseURL  string
	basePath string
	header   http.Header
	timeout  time.Duration
	hc       *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-call timeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHeader adds a header sent with every call.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.header.Set(key, value)
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.hc = hc
		}
	}
}

// WithBasePath changes the path prefix. An empty value removes it.
func WithBasePath(p string) Option {
	return func(c *Client) {
		c.basePath = p
	}
}

// New creates a client for the service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		basePath: DefaultBasePath,
		header:   http.Header{},
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.hc == nil {
		c.hc = &http.Client{}
	}
	return c
}

// BaseURL returns the service root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) url(p string) string {
	base := c.baseURL + "/" + strings.Trim(c.basePath, "/")
	base = strings.TrimRight(base, "/")
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return base + p
}

// Do performs one request and returns the raw body of a 2xx response.
// Other statuses yield *RemoteError; network and read failures yield
// *TransportError.
func (c *Client) Do(ctx context.Context, r Request) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	target := c.url(r.Path)
	var reader io.Reader
	switch r.Encoding {
	case EncodingQuery:
		if q := r.Query(); len(q) > 0 {
			target += "?" + q.Encode()
		}
	default:
		body := r.Body
		if body == nil {
			body = map[string]any{}
		}
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request for %s: %w", r.Path, err)
		}
		reader = bytes.NewReader(b)
	}

	method := r.Method
	if method == "" {
		method = http.MethodPost
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", r.Path, err)
	}
	for k, vs := range c.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	logging.Debug(subsystem, "%s %s (request %s)", method, target, requestID)

	resp, err := c.hc.Do(req)
	if err != nil {
		logging.Debug(subsystem, "request %s failed after %s: %v", requestID, time.Since(start), err)
		return nil, &TransportError{Op: method, URL: target, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &TransportError{Op: method, URL: target, Err: err}
	}
	logging.Debug(subsystem, "request %s answered %d in %s", requestID, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, remoteError(resp.StatusCode, data)
	}
	return data, nil
}

// Fetch downloads an absolute URL, typically a hosted image. It returns the
// body and its content type.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build download request: %w", err)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, "", &TransportError{Op: http.MethodGet, URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &RemoteError{StatusCode: resp.StatusCode, Detail: http.StatusText(resp.StatusCode)}
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, "", &TransportError{Op: http.MethodGet, URL: rawURL, Err: err}
	}
	return data, resp.Header.Get("Content-Type"), nil
}
