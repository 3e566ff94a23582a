package github

import (
	"fmt"
	"time"
)

// AuthError reports a credential problem: an unparsable private key or a
// rejected token exchange. It is terminal, callers must not retry.
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("github auth: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("github auth: %s", e.Reason)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// RateLimitError reports an exhausted rate-limit window. ResetAt is when the
// window reopens, taken from the X-RateLimit-Reset header.
type RateLimitError struct {
	ResetAt time.Time
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("github rate limit exceeded, resets at %s", e.ResetAt.UTC().Format(time.RFC3339))
}

// UpstreamError reports a non-2xx API response that is neither an auth nor a
// rate-limit failure.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("github API error: status %d: %s", e.StatusCode, e.Body)
}
