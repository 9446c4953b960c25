package utils

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingConfig means no API key is configured, so no upstream call was
	// attempted at all.
	ErrMissingConfig = errors.New("completion endpoint is not configured")

	// ErrNoJSONFound means the completion text contained no JSON object.
	ErrNoJSONFound = errors.New("no JSON object found in completion")

	// ErrInvalidRequest is the sentinel wrapped by InvalidRequestError.
	ErrInvalidRequest = errors.New("invalid request")
)

// InvalidRequestError reports the first missing or invalid field of an
// incoming generation request.
type InvalidRequestError struct {
	Field  string
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid request: %s %s", e.Field, e.Reason)
}

func (e *InvalidRequestError) Unwrap() error { return ErrInvalidRequest }

func NewInvalidRequestError(field, reason string) error {
	return &InvalidRequestError{Field: field, Reason: reason}
}

// UpstreamErrorKind classifies a failed completion call. Only Transient is
// ever retried; every other kind indicates that retrying the same request
// cannot succeed.
type UpstreamErrorKind int

const (
	// UpstreamCredential is an HTTP 401: the API key is wrong or expired.
	UpstreamCredential UpstreamErrorKind = iota
	// UpstreamAccessDenied is an HTTP 403: permissions, balance or account state.
	UpstreamAccessDenied
	// UpstreamRateLimited is an HTTP 429.
	UpstreamRateLimited
	// UpstreamBadRequest is an HTTP 400: the request body the vendor saw was
	// malformed, so resending it unchanged is pointless.
	UpstreamBadRequest
	// UpstreamNotFound is an HTTP 404: wrong model name or endpoint path.
	UpstreamNotFound
	// UpstreamContract is a 2xx response missing the expected completion
	// choice fields.
	UpstreamContract
	// UpstreamTransient covers timeouts, connection resets and generic
	// network failures. Retried.
	UpstreamTransient
	// UpstreamTimeout is surfaced after transient retries are exhausted.
	UpstreamTimeout
	// UpstreamFailed is any other non-retryable vendor failure.
	UpstreamFailed
)

func (k UpstreamErrorKind) String() string {
	switch k {
	case UpstreamCredential:
		return "credential_invalid"
	case UpstreamAccessDenied:
		return "access_denied"
	case UpstreamRateLimited:
		return "rate_limited"
	case UpstreamBadRequest:
		return "malformed_request"
	case UpstreamNotFound:
		return "not_found"
	case UpstreamContract:
		return "contract_violation"
	case UpstreamTransient:
		return "transient"
	case UpstreamTimeout:
		return "timeout"
	default:
		return "failed"
	}
}

// UpstreamError carries the classification plus whatever detail the vendor
// returned, so callers can render an actionable message.
type UpstreamError struct {
	Kind    UpstreamErrorKind
	Status  int    // HTTP status when known, 0 otherwise
	Message string // vendor error message when present
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("completion endpoint: %s (HTTP %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("completion endpoint: %s: %s", e.Kind, e.Message)
}

// Retryable reports whether the failure may succeed if the identical request
// is sent again.
func (e *UpstreamError) Retryable() bool { return e.Kind == UpstreamTransient }

// IsTransient reports whether err is a retryable upstream failure.
func IsTransient(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue) && ue.Retryable()
}
