// Package apierr classifies failures from external HTTP services (Steam,
// the generative-text API) into a small closed reason set before they reach
// the reply layer.
package apierr

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Reason is one of the closed failure kinds surfaced to users.
type Reason string

const (
	ReasonNotFound  Reason = "NOT_FOUND"
	ReasonAuth      Reason = "AUTH"
	ReasonRateLimit Reason = "RATE_LIMIT"
	ReasonTimeout   Reason = "TIMEOUT"
	ReasonServer    Reason = "SERVER"
	ReasonNetwork   Reason = "NETWORK"
	ReasonUnknown   Reason = "UNKNOWN"
)

// Error pairs a reason with the underlying cause.
type Error struct {
	Reason Reason
	Err    error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Reason)
	}
	return fmt.Sprintf("%s: %v", e.Reason, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New wraps err with a reason.
func New(reason Reason, err error) *Error {
	return &Error{Reason: reason, Err: err}
}

// ReasonOf extracts the reason from an error chain, defaulting to UNKNOWN.
func ReasonOf(err error) Reason {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Reason
	}
	return ReasonUnknown
}

// FromStatus maps an HTTP status code to a reason.
func FromStatus(status int) Reason {
	switch {
	case status == http.StatusNotFound:
		return ReasonNotFound
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ReasonAuth
	case status == http.StatusTooManyRequests:
		return ReasonRateLimit
	case status >= 500:
		return ReasonServer
	default:
		return ReasonUnknown
	}
}

// FromTransport maps a transport-level error to a reason. Timeouts get their
// own kind and are never conflated with other network failures.
func FromTransport(err error) Reason {
	if errors.Is(err, context.DeadlineExceeded) {
		return ReasonTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return ReasonTimeout
		}
		return ReasonNetwork
	}
	return ReasonNetwork
}
