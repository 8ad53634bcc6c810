// Package api is the single choke point for outbound HTTP. Every request made
// by the session manager, the resource controllers and the analytics presenter
// goes through Client.do, which attaches the bearer token and applies the
// global 401 policy: clear the stored token, fire the teardown callback once,
// and propagate the failure to the caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/avanags/fitpulse/internal/logging"
)

// Credentials is the transport's read/clear view of the session token.
// Only the session manager and the 401 interceptor below ever write it.
type Credentials interface {
	Token() string
	ClearToken()
}

type Client struct {
	baseURL        string
	hc             *http.Client
	creds          Credentials
	onUnauthorized func()
	log            logging.Logger

	// tornDown flips when a 401 has triggered session teardown; it keeps the
	// callback from firing more than once per authentication epoch even when
	// two in-flight calls receive 401 concurrently.
	tornDown atomic.Bool
}

// New builds a Client for the given base URL. onUnauthorized may be nil.
// The underlying http.Client carries no timeout: a hung request is left to
// settle (or be canceled through ctx) rather than cut off client-side.
func New(baseURL string, creds Credentials, onUnauthorized func(), log logging.Logger) *Client {
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		hc:             &http.Client{},
		creds:          creds,
		onUnauthorized: onUnauthorized,
		log:            log,
	}
}

// ResetAuthGate re-arms the 401 teardown callback. The session manager calls
// it after a successful login or registration starts a new epoch.
func (c *Client) ResetAuthGate() {
	c.tornDown.Store(false)
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPut, path, in, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.creds.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed",
			"request_id", requestID, "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "request finished",
		"request_id", requestID, "method", method, "path", path,
		"status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized(ctx)
		return ErrUnauthorized
	}

	if resp.StatusCode >= 400 {
		return c.serverError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("decoding response body: %w", err)
		}
	}
	return nil
}

// handleUnauthorized applies the global 401 policy. Clearing an already-empty
// token is a no-op, and the teardown callback fires at most once per epoch, so
// concurrent 401s are safe.
func (c *Client) handleUnauthorized(ctx context.Context) {
	c.creds.ClearToken()
	if c.tornDown.CompareAndSwap(false, true) {
		c.log.Warn(ctx, "unauthorized response, tearing down session")
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	}
}

func (c *Client) serverError(resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		apiErr.Message = payload.Message
	}
	return apiErr
}
