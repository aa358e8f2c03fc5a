package types

import (
	"github.com/google/uuid"
)

// HasExtraInfo is implemented by errors that carry an ordered list of
// diagnostic values attached at wrap time.
type HasExtraInfo interface {
	ExtraInfo() []any
}

// Correlated is implemented by errors that carry a correlation ID for
// tracing a failure across wrap and reconstruction boundaries.
type Correlated interface {
	CorrelationID() string
}

// WrappedError is the default wrapper: it converts an arbitrary error into a
// single well-known type while losing nothing. The message falls back to the
// cause's message, the extra-info list is inherited from the cause unless
// overridden, and the correlation ID survives re-wrapping.
type WrappedError struct {
	suppression
	msg           string
	cause         error
	extra         []any
	correlationID string
	stack         Stack
}

// NewWrapped wraps cause with optional diagnostic values, capturing the
// caller's stack. When no values are given and the cause exposes extra info,
// the cause's list is inherited.
func NewWrapped(cause error, extra ...any) *WrappedError {
	return newWrapped("", cause, extra)
}

// NewWrappedMsg is NewWrapped with an explicit message. An empty message
// falls back to the cause's message in Error().
func NewWrappedMsg(msg string, cause error, extra ...any) *WrappedError {
	return newWrapped(msg, cause, extra)
}

func newWrapped(msg string, cause error, extra []any) *WrappedError {
	w := &WrappedError{
		msg:   msg,
		cause: cause,
		stack: Capture(2), // skip newWrapped and the exported constructor
	}
	if len(extra) > 0 {
		w.extra = make([]any, len(extra))
		copy(w.extra, extra)
	} else if h, ok := cause.(HasExtraInfo); ok {
		w.extra = h.ExtraInfo()
	}
	if c, ok := cause.(Correlated); ok && c.CorrelationID() != "" {
		w.correlationID = c.CorrelationID()
	} else {
		w.correlationID = uuid.NewString()
	}
	return w
}

// Error implements the error interface. With no explicit message the cause's
// message is used, so wrapping never reduces diagnostic content.
func (e *WrappedError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	if e.cause != nil {
		return e.cause.Error()
	}
	return "wrapped error"
}

// Unwrap returns the cause for errors.Is/As traversal.
func (e *WrappedError) Unwrap() error { return e.cause }

// ErrorClass implements Classified. A wrapper is always an ordinary domain
// failure; fatal signals and defects are never wrapped in the first place.
func (e *WrappedError) ErrorClass() Class { return ClassDomain }

// ExtraInfo returns a copy of the ordered diagnostic values.
func (e *WrappedError) ExtraInfo() []any {
	if len(e.extra) == 0 {
		return nil
	}
	out := make([]any, len(e.extra))
	copy(out, e.extra)
	return out
}

// CorrelationID returns the wrapper's correlation ID, inherited from the
// cause when the cause carried one.
func (e *WrappedError) CorrelationID() string { return e.correlationID }

// Stack returns the stack captured at construction.
func (e *WrappedError) Stack() Stack { return e.stack }

// Message returns the explicit message supplied at construction, which may
// be empty even when Error() is not.
func (e *WrappedError) Message() string { return e.msg }

var (
	_ Classified   = (*WrappedError)(nil)
	_ Suppressor   = (*WrappedError)(nil)
	_ Stacked      = (*WrappedError)(nil)
	_ HasExtraInfo = (*WrappedError)(nil)
	_ Correlated   = (*WrappedError)(nil)
)
