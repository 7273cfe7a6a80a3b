// Package fetch is a fluent HTTP request builder over net/http. A request is
// assembled by chaining header, param, body, retry, and timeout calls and is
// executed by a terminal method; JSONChecked additionally validates the parsed
// response body through the cross-library schema contract.
package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/sethvargo/go-retry"

	"github.com/shapecheck/shapecheck"
)

// ErrStatus reports a non-success HTTP status at a parse terminal.
var ErrStatus = errors.New("fetch: unexpected status")

// Client issues requests against a base URL. The zero retry policy performs a
// single attempt; Retry adds transparent retries for transport errors and 5xx
// responses with exponential backoff.
type Client struct {
	base string
	hc   *http.Client
	log  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.hc = hc
		}
	}
}

// WithLogger enables retry diagnostics on l.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New returns a Client for the given base URL.
func New(base string, opts ...Option) *Client {
	c := &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get begins a GET request; path segments are joined with "/".
func (c *Client) Get(path ...string) *Request { return c.newRequest(http.MethodGet, path) }

// Post begins a POST request.
func (c *Client) Post(path ...string) *Request { return c.newRequest(http.MethodPost, path) }

// Put begins a PUT request.
func (c *Client) Put(path ...string) *Request { return c.newRequest(http.MethodPut, path) }

// Patch begins a PATCH request.
func (c *Client) Patch(path ...string) *Request { return c.newRequest(http.MethodPatch, path) }

// Delete begins a DELETE request.
func (c *Client) Delete(path ...string) *Request { return c.newRequest(http.MethodDelete, path) }

func (c *Client) newRequest(method string, path []string) *Request {
	return &Request{
		c:      c,
		method: method,
		path:   "/" + strings.TrimLeft(strings.Join(path, "/"), "/"),
		header: http.Header{},
		query:  url.Values{},
	}
}

// Request accumulates configuration for one HTTP exchange. Builder methods
// return the receiver; the first builder error is remembered and surfaced at
// the terminal method.
type Request struct {
	c       *Client
	method  string
	path    string
	header  http.Header
	query   url.Values
	body    []byte
	retries int
	timeout time.Duration
	err     error
}

// Header adds a request header.
func (r *Request) Header(k, v string) *Request {
	r.header.Add(k, v)
	return r
}

// Param adds a query string parameter.
func (r *Request) Param(k, v string) *Request {
	r.query.Add(k, v)
	return r
}

// Body sets the request body to the JSON encoding of v.
func (r *Request) Body(v any) *Request {
	b, err := json.Marshal(v)
	if err != nil {
		if r.err == nil {
			r.err = fmt.Errorf("fetch: encode body: %w", err)
		}
		return r
	}
	r.body = b
	r.header.Set("Content-Type", "application/json")
	return r
}

// Retry allows up to n additional attempts for transport errors and 5xx
// responses.
func (r *Request) Retry(n int) *Request {
	if n > 0 {
		r.retries = n
	}
	return r
}

// Timeout bounds the whole exchange, including retries of an individual
// attempt's slow response.
func (r *Request) Timeout(d time.Duration) *Request {
	r.timeout = d
	return r
}

// Do executes the request and returns the raw response. The caller owns the
// response body.
func (r *Request) Do(ctx context.Context) (*http.Response, error) {
	if r.err != nil {
		return nil, r.err
	}
	hc := r.c.hc
	if r.timeout > 0 {
		cp := *hc
		cp.Timeout = r.timeout
		hc = &cp
	}

	u := r.c.base + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	backoff := retry.WithMaxRetries(uint64(r.retries), retry.NewExponential(200*time.Millisecond))
	var resp *http.Response
	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		req, err := http.NewRequestWithContext(ctx, r.method, u, bytes.NewReader(r.body))
		if err != nil {
			return err
		}
		for k, vs := range r.header {
			req.Header[k] = vs
		}
		res, err := hc.Do(req)
		if err != nil {
			r.logRetry(attempt, err)
			return retry.RetryableError(err)
		}
		if res.StatusCode >= http.StatusInternalServerError {
			res.Body.Close()
			err := fmt.Errorf("%w: %s %s: %d", ErrStatus, r.method, r.path, res.StatusCode)
			r.logRetry(attempt, err)
			return retry.RetryableError(err)
		}
		resp = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (r *Request) logRetry(attempt int, err error) {
	if r.c.log == nil || attempt > r.retries {
		return
	}
	r.c.log.Warn("fetch: retrying request",
		slog.String("method", r.method),
		slog.String("path", r.path),
		slog.Int("attempt", attempt),
		slog.String("error", err.Error()),
	)
}

// JSON executes the request and decodes the response body into untyped data
// (objects as map[string]any, arrays as []any, numbers as float64). Responses
// with status 400 or above are returned as an ErrStatus error.
func (r *Request) JSON(ctx context.Context) (any, error) {
	resp, err := r.Do(ctx)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("%w: %s %s: %d", ErrStatus, r.method, r.path, resp.StatusCode)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch: read body: %w", err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("fetch: decode body: %w", err)
	}
	return v, nil
}

// JSONChecked is JSON followed by validation through the standard schema
// contract. Any schema implementation is accepted, not only validators from
// this module; validation failures surface as *shapecheck.SchemaError.
func (r *Request) JSONChecked(ctx context.Context, s shapecheck.StandardSchema) (any, error) {
	v, err := r.JSON(ctx)
	if err != nil {
		return nil, err
	}
	res := s.StandardSchema().Validate(v)
	if !res.Ok() {
		return nil, &shapecheck.SchemaError{Issues: res.Issues()}
	}
	return res.Value(), nil
}
