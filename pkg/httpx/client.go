package httpx

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
	"time"

	"github.com/cenkalti/backoff/v4"
)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 1 << 20

// Policy is the per-dependency resilience policy.
type Policy struct {
	// MaxAttempts is the total attempt count including the first call.
	MaxAttempts int
	// BaseDelay is the initial retry delay; backoff grows it exponentially
	// with jitter.
	BaseDelay time.Duration
	// CallTimeout bounds each individual attempt.
	CallTimeout time.Duration
	// Breaker configures the circuit breaker. Zero values get defaults.
	Breaker BreakerConfig
}

// Client is a resilient JSON-over-HTTP client for one downstream dependency.
type Client struct {
	name       string
	policy     Policy
	httpClient *http.Client
	breaker    *Breaker
}

// New creates a client for the named dependency.
func New(name string, policy Policy) *Client {
	return NewWithHTTPClient(name, policy, &http.Client{})
}

// NewWithHTTPClient creates a client with a caller-supplied *http.Client,
// useful for tests.
func NewWithHTTPClient(name string, policy Policy, hc *http.Client) *Client {
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = 1
	}
	if policy.BaseDelay <= 0 {
		policy.BaseDelay = 50 * time.Millisecond
	}
	return &Client{
		name:       name,
		policy:     policy,
		httpClient: hc,
		breaker:    NewBreaker(name, policy.Breaker),
	}
}

// BreakerState exposes the circuit state for health reporting.
func (c *Client) BreakerState() BreakerState {
	return c.breaker.State()
}

// GetJSON performs a GET and decodes a 2xx JSON response into out.
func (c *Client) GetJSON(ctx context.Context, rawURL string, out any) error {
	return c.do(ctx, http.MethodGet, rawURL, nil, out)
}

// PostJSON performs a POST with a JSON body and decodes a 2xx JSON response
// into out. Either side may be nil.
func (c *Client) PostJSON(ctx context.Context, rawURL string, in, out any) error {
	return c.do(ctx, http.MethodPost, rawURL, in, out)
}

// do runs one logical call: attempts with exponential backoff, each attempt
// under the per-call timeout and gated by the breaker. Cancellation of the
// caller's context passes through untouched and is never marked as a breaker
// failure.
func (c *Client) do(ctx context.Context, method, rawURL string, in, out any) error {
	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	attempt := 0
	op := func() error {
		attempt++
		if err := c.breaker.Allow(); err != nil {
			return backoff.Permanent(err)
		}

		callCtx := ctx
		if c.policy.CallTimeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, c.policy.CallTimeout)
			defer cancel()
		}

		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(callCtx, method, rawURL, reader)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("build request: %w", err))
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				// Caller gave up; says nothing about the downstream.
				return backoff.Permanent(ctx.Err())
			}
			if errors.Is(err, context.DeadlineExceeded) {
				err = fmt.Errorf("%w: %s %s after %s", ErrTimeout, method, rawURL, c.policy.CallTimeout)
			}
			c.breaker.Mark(err)
			slog.Debug("Outbound attempt failed",
				"dependency", c.name, "attempt", attempt, "error", err)
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			c.breaker.Mark(nil)
			if readErr != nil {
				return backoff.Permanent(fmt.Errorf("read response: %w", readErr))
			}
			if out != nil && len(respBody) > 0 {
				if err := json.Unmarshal(respBody, out); err != nil {
					return backoff.Permanent(fmt.Errorf("decode response: %w", err))
				}
			}
			return nil
		}

		remote := &RemoteError{Status: resp.StatusCode, Body: truncate(string(respBody), 512)}
		if remote.Temporary() {
			c.breaker.Mark(remote)
			slog.Debug("Outbound attempt got retryable status",
				"dependency", c.name, "attempt", attempt, "status", resp.StatusCode)
			return remote
		}
		// The downstream answered; a 4xx is the caller's problem, not an
		// availability signal.
		c.breaker.Mark(nil)
		return backoff.Permanent(remote)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.policy.BaseDelay
	bo.RandomizationFactor = 0.2
	bo.MaxElapsedTime = 0

	err := backoff.Retry(op, backoff.WithContext(
		backoff.WithMaxRetries(bo, uint64(c.policy.MaxAttempts-1)), ctx))
	if err == nil {
		return nil
	}
	return c.classify(err)
}

// classify folds the final attempt error into the outbound error taxonomy.
func (c *Client) classify(err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, ErrTimeout), errors.Is(err, ErrServiceUnavailable):
		return err
	}

	var remote *RemoteError
	if errors.As(err, &remote) {
		if remote.Temporary() {
			return fmt.Errorf("%w: %s: %v", ErrServiceUnavailable, c.name, remote)
		}
		return err
	}

	var uerr *url.Error
	if errors.As(err, &uerr) {
		// Transport-level failure that survived all retries.
		return fmt.Errorf("%w: %s: %v", ErrServiceUnavailable, c.name, err)
	}

	return err
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
