// Package upstream implements the HTTP adapter for the remote
// job-board API. It speaks the API's response envelope, maps upstream
// failures onto the application error taxonomy, and replays browser
// credential cookies on authenticated calls.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"

	domainauth "github.com/jobdeck/jobdeck-ui/internal/domain/auth"
	apperrors "github.com/jobdeck/jobdeck-ui/internal/errors"
)

// envelope is the upstream response wrapper. Every endpoint returns
// {success, data, message}; business failures keep HTTP 200 with
// success:false and a message.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Client is the job-board API client. It is safe for concurrent use;
// credential cookies are set per request, never on a shared jar.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *slog.Logger
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse upstream base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("upstream base URL %q needs a scheme and host", baseURL)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}, nil
}

// request describes one upstream call.
type request struct {
	method string
	path   string
	query  url.Values
	creds  []domainauth.CredentialCookie
	body   any
}

// do performs the call, decodes the envelope, and unmarshals data into
// out when out is non-nil. It returns the raw response so auth calls
// can harvest Set-Cookie credentials.
func (c *Client) do(ctx context.Context, req request, out any) (*http.Response, error) {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + req.path
	if len(req.query) > 0 {
		u.RawQuery = req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request body")
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u.String(), body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "build request")
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for _, cred := range req.creds {
		httpReq.AddCookie(cred.HTTPCookie())
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, transportError(ctx, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, transportError(ctx, err)
	}

	var env envelope
	if jsonErr := json.Unmarshal(raw, &env); jsonErr != nil {
		if resp.StatusCode >= 400 {
			return resp, statusError(resp.StatusCode, "")
		}
		return resp, apperrors.Wrapf(jsonErr, apperrors.ErrCodeRemote, "decode %s %s response", req.method, req.path)
	}

	if resp.StatusCode >= 400 {
		return resp, statusError(resp.StatusCode, env.Message)
	}
	if !env.Success {
		c.logger.Debug("upstream rejected request",
			"method", req.method, "path", req.path, "message", env.Message)
		return resp, apperrors.Remote(messageOr(env.Message, "request rejected by job board"))
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if jsonErr := json.Unmarshal(env.Data, out); jsonErr != nil {
			return resp, apperrors.Wrapf(jsonErr, apperrors.ErrCodeRemote, "decode %s %s data", req.method, req.path)
		}
	}
	return resp, nil
}

// authDo is like do but routes the call through a fresh cookie jar and
// returns every credential cookie the upstream set during the exchange,
// including ones issued across redirects.
func (c *Client) authDo(ctx context.Context, req request, out any) ([]domainauth.CredentialCookie, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "create cookie jar")
	}

	jarClient := *c
	httpClient := *c.http
	httpClient.Jar = jar
	jarClient.http = &httpClient

	if _, err := jarClient.do(ctx, req, out); err != nil {
		return nil, err
	}
	return domainauth.CaptureCookies(jar.Cookies(c.baseURL)), nil
}

// transportError classifies a failure to reach the upstream at all.
func transportError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled):
		return apperrors.Wrap(err, apperrors.ErrCodeCanceled, "request canceled")
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return apperrors.Wrap(err, apperrors.ErrCodeTimeout, "job board timed out")
	default:
		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) && netErr.Timeout() {
			return apperrors.Wrap(err, apperrors.ErrCodeTimeout, "job board timed out")
		}
		return apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "job board unreachable")
	}
}

// statusError maps an HTTP error status onto the error taxonomy.
func statusError(status int, message string) error {
	switch {
	case status == http.StatusUnauthorized:
		return apperrors.Unauthorized(messageOr(message, "sign in required"))
	case status == http.StatusForbidden:
		return apperrors.Forbidden(messageOr(message, "not allowed"))
	case status == http.StatusNotFound:
		return apperrors.NotFound(messageOr(message, "not found"))
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return apperrors.Validation(messageOr(message, "invalid request"))
	case status >= 500:
		return apperrors.Unavailable(messageOr(message, fmt.Sprintf("job board error (%d)", status)))
	default:
		return apperrors.Remote(messageOr(message, fmt.Sprintf("unexpected job board status %d", status)))
	}
}

func messageOr(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}
