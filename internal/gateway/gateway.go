package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appErrors "github.com/schedassist/cli/pkg/errors"
)

// Indicator is the blocking busy indicator shown while a request is in
// flight. Stop is guaranteed to run on every path, success or failure.
type Indicator interface {
	Start()
	Stop()
}

// NopIndicator satisfies Indicator without doing anything.
type NopIndicator struct{}

func (NopIndicator) Start() {}
func (NopIndicator) Stop()  {}

type tokenSource interface {
	Token() string
}

// Client wraps every backend call with bearer auth, JSON codec, the busy
// indicator and request logging. A 401 on an authenticated call invokes
// the auth-failure hook before returning, so the caller can transition
// to the logged-out page.
type Client struct {
	base          string
	http          *http.Client
	tokens        tokenSource
	indicator     Indicator
	onAuthFailure func()
	logger        *zap.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithIndicator installs the busy indicator.
func WithIndicator(ind Indicator) Option {
	return func(c *Client) {
		if ind != nil {
			c.indicator = ind
		}
	}
}

// WithAuthFailureHook installs the hook invoked when an authenticated
// call comes back 401.
func WithAuthFailureHook(hook func()) Option {
	return func(c *Client) { c.onAuthFailure = hook }
}

// WithTimeout sets the request timeout. Zero means none: a hung request
// stays in flight and the indicator stays visible.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// NewClient constructs a gateway against the given base URL.
func NewClient(base string, tokens tokenSource, logger *zap.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		base:      base,
		http:      &http.Client{},
		tokens:    tokens,
		indicator: NopIndicator{},
		logger:    logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get issues an authenticated GET and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST with a JSON body and decodes the response into out.
// Both body and out may be nil.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	c.indicator.Start()
	defer c.indicator.Stop()

	endpoint := c.base + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode request body")
		}
		payload = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token := c.tokens.Token()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", reqID),
			zap.Error(err),
		)
		return appErrors.Wrap(err, appErrors.ErrConnection.Code, appErrors.ErrConnection.Status, appErrors.ErrConnection.Message)
	}
	defer resp.Body.Close()

	c.logger.Debug("request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
		zap.String("request_id", reqID),
	)

	if resp.StatusCode == http.StatusUnauthorized && token != "" {
		if c.onAuthFailure != nil {
			c.onAuthFailure()
		}
		return appErrors.Clone(appErrors.ErrUnauthorized, "")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFrom(resp)
	}

	if out == nil {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read response body")
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to decode response body")
	}
	return nil
}

// errorDetail is the shape the backend uses for failure responses.
type errorDetail struct {
	Detail string `json:"detail"`
}

func (c *Client) errorFrom(resp *http.Response) error {
	message := fmt.Sprintf("request failed with status %d", resp.StatusCode)
	var detail errorDetail
	if data, err := io.ReadAll(resp.Body); err == nil && len(data) > 0 {
		if err := json.Unmarshal(data, &detail); err == nil && detail.Detail != "" {
			message = detail.Detail
		}
	}

	// A 401 only reaches here on unauthenticated calls (login/register),
	// where a rejection is bad input, not a session to tear down.
	code := appErrors.ErrValidation.Code
	switch {
	case resp.StatusCode == http.StatusNotFound:
		code = appErrors.ErrNotFound.Code
	case resp.StatusCode >= 500:
		code = appErrors.ErrInternal.Code
	}
	return appErrors.New(code, resp.StatusCode, message)
}
