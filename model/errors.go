package model

import (
	"context"
	"errors"
	"fmt"
)

// ErrorKind discriminates inference failures so callers can branch on them:
// a timeout triggers the degrade-to-batch path while transport errors are
// recorded per chunk and never abort a batch.
type ErrorKind int

const (
	// KindTransport covers connection failures and non-2xx responses.
	KindTransport ErrorKind = iota
	// KindTimeout covers per-call deadline overruns.
	KindTimeout
	// KindRateLimited covers explicit rate-limit rejections.
	KindRateLimited
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindTimeout:
		return "timeout"
	case KindRateLimited:
		return "rate_limited"
	default:
		return "unknown"
	}
}

// Error is a classified inference failure.
type Error struct {
	Kind ErrorKind
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("inference %s error: %v", e.Kind, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Err }

// NewError wraps err with the given kind.
func NewError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// IsTimeout reports whether err represents a call that exceeded its
// deadline, either as a classified Error or a raw context deadline.
func IsTimeout(err error) bool {
	var me *Error
	if errors.As(err, &me) && me.Kind == KindTimeout {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// IsRateLimited reports whether err is a classified rate-limit rejection.
func IsRateLimited(err error) bool {
	var me *Error
	return errors.As(err, &me) && me.Kind == KindRateLimited
}

// Classify maps an arbitrary provider error onto the taxonomy. Context
// deadline overruns become KindTimeout; everything else defaults to
// KindTransport unless already classified.
func Classify(err error) *Error {
	var me *Error
	if errors.As(err, &me) {
		return me
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NewError(KindTimeout, err)
	}
	return NewError(KindTransport, err)
}
