// Package http provides the low-level HTTP client for the Redmine API.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/redmine-go/redmine/internal/constants"
	"github.com/redmine-go/redmine/pkg/redmine"
)

// Request represents one HTTP request to the API.
type Request struct {
	Method string
	// Path is joined to the client's base URL; relative paths without a
	// leading slash preserve any path prefix of the base URL.
	Path    string
	Params  *redmine.QueryParams
	Body    *redmine.RequestBody
	Headers map[string]string
}

// Response represents an HTTP response. The body is fully read before
// Response is returned.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the low-level HTTP client. It attaches authentication and
// impersonation headers, encodes query strings, and executes requests; it
// never inspects response status codes.
type Client struct {
	baseURL     *url.URL
	apiKey      string
	switchUser  string
	userAgent   string
	httpClient *retryablehttp.Client
	logger     redmine.Logger
	debug      bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets a structured logger for request diagnostics.
func WithLogger(logger redmine.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables logging of response bodies. Only effective when a
// logger is set.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithImpersonation makes all requests act on behalf of the given user.
func WithImpersonation(userID uint64) Option {
	return func(c *Client) {
		c.switchUser = strconv.FormatUint(userID, 10)
	}
}

// WithTimeout sets the transport-level timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig enables transport retries for transient failures.
// Retries are off by default.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = maxRetries
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithHTTPClient replaces the underlying standard HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient = httpClient
	}
}

// NewClient creates a low-level client for the given base URL and API key.
func NewClient(baseURL, apiKey string, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, &redmine.URLParseError{Value: baseURL, Err: err}
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil
	// Hand back the last response untouched once retries are exhausted.
	// A 5xx status is a response, not a transport failure.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    parsed,
		apiKey:     apiKey,
		userAgent:  "redmine-go/1.0",
		httpClient: retryClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// SetImpersonation makes subsequent requests act on behalf of the given
// user. Not safe to call concurrently with in-flight requests.
func (c *Client) SetImpersonation(userID uint64) {
	c.switchUser = strconv.FormatUint(userID, 10)
}

// ClearImpersonation reverts SetImpersonation.
func (c *Client) ClearImpersonation() {
	c.switchUser = ""
}

// BaseURL returns the parsed base URL of the client.
func (c *Client) BaseURL() *url.URL {
	return c.baseURL
}

// Do executes an HTTP request. Any response status is a success at this
// layer; only transport and encoding failures return errors.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	target, err := c.buildURL(req)
	if err != nil {
		return nil, err
	}

	var bodyContent []byte

	if req.Body != nil {
		bodyContent = req.Body.Content
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, target.String(), bodyContent)
	if err != nil {
		return nil, &redmine.TransportError{Method: req.Method, URL: target.String(), Err: err}
	}

	httpReq.Header.Set(constants.APIKeyHeader, c.apiKey)
	httpReq.Header.Set("Accept", constants.ContentTypeJSON)
	httpReq.Header.Set("User-Agent", c.userAgent)

	if c.switchUser != "" {
		httpReq.Header.Set(constants.SwitchUserHeader, c.switchUser)
	}

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", req.Body.ContentType)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	c.logRequest(req.Method, target)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logError(req.Method, target, err)

		return nil, &redmine.TransportError{Method: req.Method, URL: target.String(), Err: err}
	}
	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		c.logError(req.Method, target, err)

		return nil, &redmine.TransportError{Method: req.Method, URL: target.String(), Err: err}
	}

	c.logResponse(httpResp.StatusCode, body)

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}, nil
}

// Rest implements redmine.Requester on top of Do.
func (c *Client) Rest(ctx context.Context, method, path string, params *redmine.QueryParams, body *redmine.RequestBody) (int, []byte, error) {
	resp, err := c.Do(ctx, &Request{
		Method: method,
		Path:   path,
		Params: params,
		Body:   body,
	})
	if err != nil {
		return 0, nil, err
	}

	return resp.StatusCode, resp.Body, nil
}

// buildURL joins the request path to the base URL and appends the encoded
// query parameters after any pairs already present in the path.
func (c *Client) buildURL(req *Request) (*url.URL, error) {
	target, err := c.baseURL.Parse(req.Path)
	if err != nil {
		return nil, &redmine.URLParseError{Value: req.Path, Err: err}
	}

	encoded, err := req.Params.Encode()
	if err != nil {
		return nil, err
	}

	if encoded != "" {
		if target.RawQuery != "" {
			target.RawQuery += "&" + encoded
		} else {
			target.RawQuery = encoded
		}
	}

	return target, nil
}

// logRequest logs the outgoing request. The API key travels in a header
// and never appears in the URL or the log fields.
func (c *Client) logRequest(method string, target *url.URL) {
	if c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method": method,
		"url":    target.String(),
	})
}

func (c *Client) logResponse(status int, body []byte) {
	if c.logger == nil {
		return
	}

	fields := map[string]interface{}{
		"status": status,
	}

	if c.debug {
		fields["body"] = string(body)
	}

	c.logger.Debug("HTTP Response", fields)
}

func (c *Client) logError(method string, target *url.URL, err error) {
	if c.logger == nil {
		return
	}

	c.logger.Error("HTTP request failed", map[string]interface{}{
		"method": method,
		"url":    target.String(),
		"error":  err.Error(),
	})
}

