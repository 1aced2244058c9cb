package domain

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")

	// ErrNotALabelPost marks a liked post whose text carries no label prefix.
	ErrNotALabelPost = errors.New("post does not define a label")

	// ErrUnknownAccount means the moderation service has no record of the account.
	ErrUnknownAccount = errors.New("account unknown to moderation service")

	// ErrStorageDegraded ends a run after repeated checkpoint write failures.
	ErrStorageDegraded = errors.New("checkpoint storage degraded")
)

// RateLimitError is returned by the remote API when the account exhausted its
// request quota. ResetEpoch is zero when the server sent no reset header.
type RateLimitError struct {
	ResetEpoch int64
	ResetDate  string
	Limit      string
	Remaining  string
	Policy     string
	Message    string
}

func (e *RateLimitError) Error() string {
	if e.ResetEpoch == 0 {
		return "rate limited: " + e.Message
	}
	return fmt.Sprintf("rate limited until %s: %s", e.ResetDate, e.Message)
}

// ResetAt returns the reset instant and whether the server provided one.
func (e *RateLimitError) ResetAt() (time.Time, bool) {
	if e.ResetEpoch <= 0 {
		return time.Time{}, false
	}
	return time.Unix(e.ResetEpoch, 0).UTC(), true
}

// NewRateLimitError builds a RateLimitError from the raw ratelimit-reset
// header value. An unparsable header leaves ResetEpoch at zero.
func NewRateLimitError(message, resetHeader string) *RateLimitError {
	e := &RateLimitError{Message: message}
	if epoch, err := strconv.ParseInt(resetHeader, 10, 64); err == nil && epoch > 0 {
		e.ResetEpoch = epoch
		e.ResetDate = time.Unix(epoch, 0).UTC().Format(time.DateTime)
	}
	return e
}

// StreamError reports a failure of the inbound stream at a given cursor.
type StreamError struct {
	Cursor string
	Err    error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("stream failed at cursor %q: %v", e.Cursor, e.Err)
}

func (e *StreamError) Unwrap() error { return e.Err }

// ClassifyFailure maps an error that ended a run to the way the supervisor
// has to react to it.
func ClassifyFailure(err error) FailureKind {
	if err == nil {
		return FailureNone
	}

	var rl *RateLimitError
	if errors.As(err, &rl) {
		return FailureRateLimited
	}

	var se *StreamError
	if errors.As(err, &se) || errors.Is(err, ErrStorageDegraded) {
		return FailureFatal
	}

	return FailureTransient
}
