package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2"

	"github-manager/pkg/log"
)

// RateLimitObserver is notified with the rate-limit headers of every
// response so callers can track remaining quota.
type RateLimitObserver func(remaining int, resetAt time.Time)

// Client is the GitHub REST API client. All requests authenticate with an
// installation token drawn from the token source.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     oauth2.TokenSource
	l          log.Logger

	backoff     time.Duration
	onRateLimit RateLimitObserver
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBackoff overrides the initial retry backoff.
func WithBackoff(d time.Duration) Option {
	return func(c *Client) { c.backoff = d }
}

// WithRateLimitObserver registers a callback for rate-limit headers.
func WithRateLimitObserver(fn RateLimitObserver) Option {
	return func(c *Client) { c.onRateLimit = fn }
}

// New creates a GitHub API client.
func New(l log.Logger, baseURL string, tokens oauth2.TokenSource, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		tokens:     tokens,
		l:          l,
		backoff:    time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do performs one API call with retries. Transport errors and 5xx responses
// are retried up to maxAttempts with doubling backoff. A 403 with an
// exhausted rate-limit window short-circuits to RateLimitError. Other non-2xx
// statuses fail immediately with UpstreamError.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body any) ([]byte, error) {
	token, err := c.tokens.Token()
	if err != nil {
		return nil, err
	}

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var reqBody []byte
	if body != nil {
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	backoff := c.backoff
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			c.l.Warnf(ctx, "github: retrying %s %s (attempt %d/%d)", method, path, attempt, maxAttempts)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			backoff *= 2
		}

		req, err := http.NewRequestWithContext(ctx, method, reqURL, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token.AccessToken)
		req.Header.Set("Accept", acceptHeader)
		req.Header.Set(apiVersionHeader, apiVersion)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("github: request failed: %w", err)
			continue
		}

		respBody, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = fmt.Errorf("github: failed to read response: %w", readErr)
			continue
		}

		c.observeRateLimit(resp)

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			return respBody, nil
		case resp.StatusCode == http.StatusForbidden && resp.Header.Get(headerRateLimitRemaining) == "0":
			return nil, &RateLimitError{ResetAt: parseResetAt(resp.Header.Get(headerRateLimitReset))}
		case resp.StatusCode >= 500:
			lastErr = &UpstreamError{StatusCode: resp.StatusCode, Body: string(respBody)}
			continue
		default:
			return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(respBody)}
		}
	}

	return nil, lastErr
}

func (c *Client) observeRateLimit(resp *http.Response) {
	if c.onRateLimit == nil {
		return
	}
	remaining, err := strconv.Atoi(resp.Header.Get(headerRateLimitRemaining))
	if err != nil {
		return
	}
	c.onRateLimit(remaining, parseResetAt(resp.Header.Get(headerRateLimitReset)))
}

func parseResetAt(header string) time.Time {
	epoch, err := strconv.ParseInt(header, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(epoch, 0)
}
