package clickup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/clickupx/pkg/fuzzytime"
)

// DefaultBaseURL is the root every resource path is joined onto.
const DefaultBaseURL = "https://api.clickup.com/api/v2/"

// Defaults holds identifiers callers may fall back on when an argument is omitted.
type Defaults struct {
	Team  string
	Space string
	List  string
}

// Client is a typed facade over the ClickUp v2 REST API.
//
// Each method issues exactly one blocking request. A Client is safe for concurrent use.
type Client struct {
	token      string
	tokenType  string
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
	resolver   *fuzzytime.Resolver
	defaults   Defaults
	requests   atomic.Int64
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL overrides [DefaultBaseURL].
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPClient sets the [http.Client] used for every request.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger requests are traced to at debug level.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithResolver sets the [fuzzytime.Resolver] used for human dates and durations.
func WithResolver(r *fuzzytime.Resolver) Option {
	return func(c *Client) {
		if r != nil {
			c.resolver = r
		}
	}
}

// WithTokenType prefixes the Authorization header, e.g. "Bearer" for OAuth access tokens.
//
// Personal API tokens are sent bare.
func WithTokenType(t string) Option {
	return func(c *Client) { c.tokenType = t }
}

// WithDefaults sets the team, space and list identifiers reported by [Client.Defaults].
func WithDefaults(d Defaults) Option {
	return func(c *Client) { c.defaults = d }
}

// New creates a [Client] authenticating with token.
func New(token string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, argumentError("an API token is required")
	}

	c := &Client{
		token:      token,
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
		logger:     log.New(io.Discard),
		resolver:   fuzzytime.Default,
	}
	for _, opt := range opts {
		opt(c)
	}
	if !strings.HasSuffix(c.baseURL, "/") {
		c.baseURL += "/"
	}

	return c, nil
}

// RequestCount returns the number of requests dispatched by this client.
func (c *Client) RequestCount() int64 {
	return c.requests.Load()
}

// Defaults returns the identifiers configured with [WithDefaults].
func (c *Client) Defaults() Defaults {
	return c.defaults
}

// BaseURL returns the root URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// endpoint joins path segments, escaping each one.
func endpoint(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return strings.Join(escaped, "/")
}

func (c *Client) url(path string, query url.Values) string {
	u := c.baseURL + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) authorization() string {
	if c.tokenType == "" {
		return c.token
	}
	return c.tokenType + " " + c.token
}

func (c *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	return c.doRequest(ctx, http.MethodGet, path, query, nil, result)
}

func (c *Client) post(ctx context.Context, path string, body, result any) error {
	return c.doRequest(ctx, http.MethodPost, path, nil, body, result)
}

func (c *Client) put(ctx context.Context, path string, body, result any) error {
	return c.doRequest(ctx, http.MethodPut, path, nil, body, result)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.doRequest(ctx, http.MethodDelete, path, nil, nil, nil)
}

// doRequest sends a JSON request and decodes a successful response into result.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body, result any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &ClientError{Message: "failed to encode request body", Code: CodeInvalidArgument, err: err}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), reader)
	if err != nil {
		return transportError("failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.send(req, result)
}

// send authorizes req, dispatches it and maps the response.
func (c *Client) send(req *http.Request, result any) error {
	req.Header.Set("Authorization", c.authorization())

	n := c.requests.Add(1)
	c.logger.Debug("clickup request", "n", n, "method", req.Method, "path", req.URL.Path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError("request failed", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError("failed to read response", err)
	}

	c.logger.Debug("clickup response", "n", n, "status", resp.StatusCode, "bytes", len(data))

	if resp.StatusCode >= http.StatusBadRequest {
		return responseError(resp.StatusCode, data)
	}

	if result == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, result); err != nil {
		return &ClientError{
			Message:    "failed to decode response",
			Code:       CodeMalformedResponse,
			StatusCode: resp.StatusCode,
			err:        err,
		}
	}
	return nil
}

type errorPayload struct {
	Err   *string `json:"err"`
	ECode string  `json:"ECODE"`
}

// responseError maps a failing status and its {"err","ECODE"} payload to a [ClientError].
func responseError(status int, data []byte) *ClientError {
	ce := &ClientError{Code: strconv.Itoa(status), StatusCode: status}

	var payload errorPayload
	_ = json.Unmarshal(data, &payload)
	ce.ECode = payload.ECode

	switch {
	case status == http.StatusTooManyRequests:
		ce.Message = "Rate limit exceeded"
		ce.err = ErrRateLimited
	case payload.Err == nil:
		ce.Message = fmt.Sprintf("unexpected %d response", status)
		ce.err = ErrMalformedErrorPayload
	default:
		ce.Message = *payload.Err
	}
	return ce
}

// timestamp routes a human date through the resolver. Digit-only input is already a timestamp.
func (c *Client) timestamp(text string) (json.Number, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	if fuzzytime.IsNumeric(text) {
		return json.Number(strings.TrimSpace(text)), nil
	}

	ms, err := c.resolver.ToUnix(text)
	if err != nil {
		return "", conversionError(err)
	}
	return json.Number(ms), nil
}

// estimate converts a human duration to API milliseconds. Digit-only input is forwarded as-is.
func (c *Client) estimate(text string) (json.Number, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	if fuzzytime.IsNumeric(text) {
		return json.Number(strings.TrimSpace(text)), nil
	}

	secs, err := c.resolver.Seconds(text)
	if err != nil {
		return "", conversionError(err)
	}
	if secs > math.MaxInt64/1000 {
		return "", &ClientError{Message: fmt.Sprintf("time estimate %q is too large", text), Code: CodeTimeConversion}
	}
	return json.Number(strconv.FormatInt(secs*1000, 10)), nil
}

func conversionError(err error) *ClientError {
	ce := &ClientError{Message: err.Error(), Code: CodeTimeConversion, err: err}
	var conv *fuzzytime.ConversionError
	if errors.As(err, &conv) {
		ce.Message = conv.Message
	}
	return ce
}

func requireID(kind, id string) error {
	if strings.TrimSpace(id) == "" {
		return argumentError("%s id is required", kind)
	}
	return nil
}
