package strava

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	// ErrNotConnected means there is no usable token: never connected, revoked, or refresh failed.
	// Callers should prompt the user to re-authorize.
	ErrNotConnected = errors.New("strava is not connected, re-authorization required")
	ErrInvalidState = errors.New("invalid or expired oauth state")
	ErrDisabled     = errors.New("strava integration is not configured")
)

// UpstreamError is a failed call to the provider. It is never retried internally.
type UpstreamError struct {
	Op         string
	StatusCode int  // Zero when no response was received
	Timeout    bool // The call exceeded its deadline
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Timeout:
		return fmt.Sprintf("strava %s: timed out", e.Op)
	case e.StatusCode != 0:
		return fmt.Sprintf("strava %s: unexpected status %d", e.Op, e.StatusCode)
	default:
		return fmt.Sprintf("strava %s: %s", e.Op, e.Err)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the same call may succeed if the caller tries again later.
func (e *UpstreamError) Retryable() bool {
	return e.Timeout || e.StatusCode == 429 || e.StatusCode >= 500
}

func upstreamError(op string, err error) *UpstreamError {
	ue := &UpstreamError{Op: op, Err: err}
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		ue.Timeout = true
	}
	return ue
}
