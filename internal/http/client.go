// Package http is the transport the call pipeline issues requests through.
// It resolves request paths against the server URI, authenticates, runs
// interceptors and returns the raw status code and body. It never
// interprets the status code: a 404 is a successful transport round trip.
package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/jira-client/internal/auth"
	"github.com/fivetwenty-io/jira-client/internal/constants"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

// Static errors for err113 compliance.
var (
	ErrInvalidBaseURL = errors.New("invalid base URL")
	ErrInvalidPath    = errors.New("invalid request path")
)

// Client is the HTTP transport.
type Client struct {
	baseURL       string
	httpClient    *retryablehttp.Client
	authenticator auth.Authenticator
	interceptors  *jira.InterceptorChain
	logger        jira.Logger
	debug         bool
	userAgent     string
}

// Request is one outgoing call. Path is either relative to the base URL or
// an absolute URI. Body is sent verbatim when it is a []byte and encoded as
// JSON otherwise.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is the raw outcome of a call.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger jira.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithRetryConfig lets the transport re-send on connection errors, 429 and
// 5xx responses. The default is no retries.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax

		if waitMin > 0 {
			c.httpClient.RetryWaitMin = waitMin
		}

		if waitMax > 0 {
			c.httpClient.RetryWaitMax = waitMax
		}
	}
}

// WithTimeout sets the overall timeout of a single HTTP attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.HTTPClient.Timeout = timeout
		}
	}
}

// WithInterceptors installs request and response interceptors.
func WithInterceptors(chain *jira.InterceptorChain) Option {
	return func(c *Client) {
		if chain != nil {
			c.interceptors = chain
		}
	}
}

// NewClient creates a transport for baseURL. A nil authenticator sends
// anonymous requests.
func NewClient(baseURL string, authenticator auth.Authenticator, opts ...Option) *Client {
	if authenticator == nil {
		authenticator = auth.Anonymous{}
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil
	// Hand the last response back instead of turning it into an error; the
	// caller classifies status codes.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		httpClient:    retryClient,
		authenticator: authenticator,
		interceptors:  jira.NewInterceptorChain(),
		userAgent:     constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the URL relative paths are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Issue sends req without blocking and resolves once the call completes.
func (c *Client) Issue(ctx context.Context, req *Request) *jira.Promise[*Response] {
	promise, resolve := jira.NewPromise[*Response]()

	go func() {
		resolve(c.Do(ctx, req))
	}()

	return promise
}

// Do sends req and waits for the response. An error means no response was
// received; any status code is returned as a Response.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	target, err := c.resolve(req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	body, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	intercepted := &jira.Request{
		Method:  req.Method,
		URL:     target,
		Headers: make(http.Header),
		Body:    body,
	}

	intercepted.Headers.Set(constants.HeaderAccept, constants.MediaTypeJSON)
	intercepted.Headers.Set("User-Agent", c.userAgent)

	if body != nil {
		intercepted.Headers.Set(constants.HeaderContentType, constants.MediaTypeJSON)
	}

	for key, value := range req.Headers {
		intercepted.Headers.Set(key, value)
	}

	err = c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
	if err != nil {
		return nil, err
	}

	httpReq, err := c.buildRequest(ctx, intercepted)
	if err != nil {
		return nil, err
	}

	callID := uuid.NewString()
	start := time.Now()

	c.logRequest(callID, intercepted)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.runResponseInterceptors(ctx, intercepted, &jira.Response{Error: err})

		return nil, fmt.Errorf("%s %s: %w", intercepted.Method, intercepted.URL, err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	c.logResponse(callID, resp, time.Since(start))

	err = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &jira.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

func (c *Client) resolve(path string, query url.Values) (string, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrInvalidPath, path, err)
	}

	var target *url.URL

	if ref.IsAbs() {
		target = ref
	} else {
		base, err := url.Parse(c.baseURL)
		if err != nil || base.Host == "" {
			return "", fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.baseURL)
		}

		target = base.JoinPath(ref.Path)
		target.RawQuery = ref.RawQuery
	}

	if len(query) > 0 {
		values := target.Query()

		for key, vals := range query {
			for _, val := range vals {
				values.Add(key, val)
			}
		}

		target.RawQuery = values.Encode()
	}

	return target.String(), nil
}

func (c *Client) buildRequest(ctx context.Context, intercepted *jira.Request) (*retryablehttp.Request, error) {
	var body interface{}
	if intercepted.Body != nil {
		body = intercepted.Body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, intercepted.Method, intercepted.URL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header = intercepted.Headers.Clone()

	err = c.authenticator.Authenticate(ctx, httpReq.Request)
	if err != nil {
		return nil, fmt.Errorf("authenticating request: %w", err)
	}

	return httpReq, nil
}

func (c *Client) runResponseInterceptors(ctx context.Context, req *jira.Request, resp *jira.Response) {
	_ = c.interceptors.ExecuteResponseInterceptors(ctx, req, resp)
}

func (c *Client) logRequest(callID string, req *jira.Request) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"call_id": callID,
		"method":  req.Method,
		"url":     req.URL,
		"auth":    c.authenticator.Scheme(),
		"size":    len(req.Body),
	})
}

func (c *Client) logResponse(callID string, resp *Response, duration time.Duration) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"call_id":  callID,
		"status":   resp.StatusCode,
		"size":     len(resp.Body),
		"duration": duration.String(),
	})
}

func encodeBody(body interface{}) ([]byte, error) {
	switch typed := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return typed, nil
	case string:
		return []byte(typed), nil
	default:
		var buf bytes.Buffer

		err := json.NewEncoder(&buf).Encode(typed)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		return bytes.TrimRight(buf.Bytes(), "\n"), nil
	}
}
