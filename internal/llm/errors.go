package llm

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// FailureKind classifies a failed request.
type FailureKind int

const (
	// FailureUnavailable covers transport errors and 5xx responses.
	FailureUnavailable FailureKind = iota
	FailureRateLimited
	// FailureMalformed means the reply did not match the prompt's schema.
	FailureMalformed
	// FailureTruncated means a schema-constrained reply hit MaxTokens.
	FailureTruncated
	// FailureRejected covers 4xx responses other than 429, e.g. a bad key.
	FailureRejected
)

func (k FailureKind) String() string {
	switch k {
	case FailureRateLimited:
		return "rate limited"
	case FailureMalformed:
		return "malformed reply"
	case FailureTruncated:
		return "reply truncated"
	case FailureRejected:
		return "request rejected"
	default:
		return "provider unavailable"
	}
}

// Error is returned for every failed completion.
type Error struct {
	Kind    FailureKind
	Backend string

	// RetryAfter is the server's requested delay, when it sent one.
	RetryAfter time.Duration

	Err error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Backend != "" {
		msg = e.Backend + ": " + msg
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is an *Error of kind k.
func IsKind(err error, k FailureKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// statusError maps an HTTP status from a backend SDK onto a FailureKind.
// status 0 means the request never got a response.
func statusError(backend string, status int, err error) *Error {
	kind := FailureUnavailable
	switch {
	case status == http.StatusTooManyRequests:
		kind = FailureRateLimited
	case status >= 400 && status < 500:
		kind = FailureRejected
	}
	return &Error{Kind: kind, Backend: backend, Err: err}
}
