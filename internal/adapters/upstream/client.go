// Package upstream is the HTTP client for the external commerce API. Every
// resource gateway routes through one dispatcher (Client.do), which attaches
// the bearer token from the request's decoded claim set and normalizes the
// upstream response envelope.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainauth "github.com/craftora/admin-api/internal/domain/auth"
	"github.com/craftora/admin-api/internal/domain/model"
	apperrors "github.com/craftora/admin-api/internal/errors"
	"github.com/craftora/admin-api/internal/ports"
)

const defaultTimeout = 15 * time.Second

// Config groups the client's construction parameters.
type Config struct {
	// BaseURL is the upstream API base, e.g. "http://localhost:5000".
	BaseURL string

	// Timeout bounds each round trip. Defaults to 15s.
	Timeout time.Duration

	// HTTPClient overrides the transport, for tests. When set, Timeout is
	// ignored.
	HTTPClient *http.Client

	// Logger for request failures. Defaults to slog.Default.
	Logger *slog.Logger
}

// Client dispatches authenticated requests to the upstream API.
type Client struct {
	base   string
	http   *http.Client
	logger *slog.Logger
}

// Compile-time conformance to the gateway ports.
var (
	_ ports.ProductGateway   = (*Client)(nil)
	_ ports.CategoryGateway  = (*Client)(nil)
	_ ports.CustomerGateway  = (*Client)(nil)
	_ ports.OrderGateway     = (*Client)(nil)
	_ ports.ReviewGateway    = (*Client)(nil)
	_ ports.SubUserGateway   = (*Client)(nil)
	_ ports.PortfolioGateway = (*Client)(nil)
	_ ports.DashboardGateway = (*Client)(nil)
	_ ports.AccountGateway   = (*Client)(nil)
)

// New constructs a Client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("upstream: base URL is required")
	}
	base := strings.TrimRight(cfg.BaseURL, "/")
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("upstream: parse base URL: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{base: base, http: httpClient, logger: logger}, nil
}

// envelope is the upstream response wrapper:
// {success, message?, error?, data?, pagination?}.
type envelope struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Error      string            `json:"error"`
	Data       json.RawMessage   `json:"data"`
	Pagination *model.Pagination `json:"pagination"`
}

// errorMessage returns the upstream-provided failure message, preferring the
// message field over the error field.
func (e envelope) errorMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// callOpts describes one upstream round trip.
type callOpts struct {
	method string
	path   string
	query  url.Values

	// body is JSON-marshaled when set. Mutually exclusive with upload.
	body any

	// rawBody is relayed as-is with JSON content type. Used for passthrough
	// payloads the admin UI owns.
	rawBody []byte

	// upload relays a multipart form; its content type carries the boundary.
	upload *ports.Upload

	// skipAuth suppresses the Authorization header (pre-login endpoints).
	skipAuth bool
}

// do performs one upstream round trip and decodes the response envelope into
// out (when non-nil). It returns the pagination block for list calls.
//
// Failure mapping: network errors and non-JSON responses become
// ServerUnavailable, upstream 401/403 become Unauthorized (the session is NOT
// cleared here; a single endpoint's rejection is not proof the whole session
// is invalid), 404 becomes NotFound, and any other non-2xx carries the
// upstream message through as an Upstream error.
func (c *Client) do(ctx context.Context, opts callOpts, out any) (*model.Pagination, error) {
	req, err := c.newRequest(ctx, opts)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "upstream request failed",
			slog.String("method", opts.method),
			slog.String("path", opts.path),
			slog.Any("error", err))
		return nil, apperrors.Wrap(err, apperrors.ErrCodeServerUnavailable,
			"unable to reach the server, please try again")
	}
	defer resp.Body.Close() //nolint:errcheck

	env, err := decodeEnvelope(resp)
	if err != nil {
		return nil, err
	}

	if code := resp.StatusCode; code < 200 || code > 299 {
		return nil, statusError(code, env.errorMessage())
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeIncompleteResponse,
				"malformed data in upstream response")
		}
	}
	return env.Pagination, nil
}

func (c *Client) newRequest(ctx context.Context, opts callOpts) (*http.Request, error) {
	target := c.base + opts.path
	if len(opts.query) > 0 {
		target += "?" + opts.query.Encode()
	}

	var body io.Reader
	switch {
	case opts.upload != nil:
		body = opts.upload.Body
	case opts.rawBody != nil:
		body = bytes.NewReader(opts.rawBody)
	case opts.body != nil:
		encoded, err := json.Marshal(opts.body)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request body")
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, opts.method, target, body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "build upstream request")
	}

	contentType := "application/json"
	if opts.upload != nil {
		// Multipart passthrough keeps the browser's boundary intact.
		contentType = opts.upload.ContentType
	}
	setAuthHeaders(ctx, req.Header, headerOpts{ContentType: contentType, SkipAuth: opts.skipAuth})
	return req, nil
}

// headerOpts groups setAuthHeaders parameters.
type headerOpts struct {
	ContentType string
	SkipAuth    bool
}

// setAuthHeaders builds the dispatcher's header set: the content type always,
// and Authorization: Bearer <token> when and only when the request context
// carries a claim set that is logged in (token present, no expiry tag).
func setAuthHeaders(ctx context.Context, h http.Header, opts headerOpts) {
	if opts.ContentType != "" {
		h.Set("Content-Type", opts.ContentType)
	}
	if opts.SkipAuth {
		return
	}
	if claims, ok := domainauth.FromContext(ctx); ok && claims.LoggedIn() {
		h.Set("Authorization", "Bearer "+claims.AccessToken)
	}
}

// decodeEnvelope parses the response body, requiring a JSON content type. A
// non-JSON body means the upstream is down or a proxy answered in its place.
func decodeEnvelope(resp *http.Response) (envelope, error) {
	var env envelope
	if !isJSONResponse(resp) {
		// Drain a little so the connection can be reused, then give up.
		_, _ = io.CopyN(io.Discard, resp.Body, 512)
		return env, apperrors.ServerUnavailable(
			fmt.Sprintf("server returned a non-JSON response (status %d)", resp.StatusCode))
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return env, apperrors.Wrap(err, apperrors.ErrCodeServerUnavailable,
			fmt.Sprintf("invalid JSON response from server (status %d)", resp.StatusCode))
	}
	return env, nil
}

func isJSONResponse(resp *http.Response) bool {
	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func statusError(code int, message string) error {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperrors.Unauthorized(message)
	case http.StatusNotFound:
		if message == "" {
			message = "resource not found"
		}
		return apperrors.NotFound(message)
	case http.StatusUnprocessableEntity, http.StatusBadRequest:
		if message == "" {
			message = "invalid request"
		}
		return apperrors.Validation(message)
	default:
		return apperrors.Upstream(message)
	}
}

// intQuery formats page/limit style parameters, skipping non-positive values.
func intQuery(q url.Values, key string, v int) {
	if v > 0 {
		q.Set(key, fmt.Sprintf("%d", v))
	}
}

func strQuery(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}
