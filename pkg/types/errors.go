package types

import (
	"context"
	"fmt"
)

// Code tags a domain error with a machine-readable category. Projects may
// define their own codes; the core reserves no semantics beyond the string.
type Code string

const (
	CodeUnknown     Code = "unknown"
	CodeIO          Code = "io"
	CodeParse       Code = "parse"
	CodeState       Code = "state"
	CodeTimeout     Code = "timeout"
	CodeUnsupported Code = "unsupported"
)

// FatalError is an unrecoverable process-level signal. It is never wrapped,
// and the suppress package gives it precedence when merged against a
// non-fatal primary.
type FatalError struct {
	suppression
	msg   string
	cause error
	stack Stack
}

// NewFatal creates a fatal signal, capturing the caller's stack.
func NewFatal(msg string) *FatalError {
	return &FatalError{msg: msg, stack: Capture(1)}
}

// NewFatalCause creates a fatal signal with a cause, capturing the caller's
// stack.
func NewFatalCause(msg string, cause error) *FatalError {
	return &FatalError{msg: msg, cause: cause, stack: Capture(1)}
}

// Error implements the error interface.
func (e *FatalError) Error() string {
	switch {
	case e.msg != "":
		return "fatal: " + e.msg
	case e.cause != nil:
		return "fatal: " + e.cause.Error()
	default:
		return "fatal"
	}
}

// Unwrap returns the cause for errors.Is/As traversal.
func (e *FatalError) Unwrap() error { return e.cause }

// ErrorClass implements Classified.
func (e *FatalError) ErrorClass() Class { return ClassFatal }

// Stack returns the stack captured at construction.
func (e *FatalError) Stack() Stack { return e.stack }

// Message returns the message supplied at construction, without the class
// prefix.
func (e *FatalError) Message() string { return e.msg }

// DefectError is a programming-logic failure: a broken invariant or an
// impossible state. Defects are propagated untouched and never wrapped.
type DefectError struct {
	suppression
	msg   string
	cause error
	stack Stack
}

// NewDefect creates a defect, capturing the caller's stack.
func NewDefect(msg string) *DefectError {
	return &DefectError{msg: msg, stack: Capture(1)}
}

// NewDefectCause creates a defect with a cause, capturing the caller's stack.
func NewDefectCause(msg string, cause error) *DefectError {
	return &DefectError{msg: msg, cause: cause, stack: Capture(1)}
}

// AsDefect reclassifies an arbitrary error as a defect, preserving it as the
// cause. A nil err yields a defect with no cause.
func AsDefect(err error) *DefectError {
	return &DefectError{cause: err, stack: Capture(1)}
}

// Error implements the error interface.
func (e *DefectError) Error() string {
	switch {
	case e.msg != "":
		return "defect: " + e.msg
	case e.cause != nil:
		return "defect: " + e.cause.Error()
	default:
		return "defect"
	}
}

// Unwrap returns the cause for errors.Is/As traversal.
func (e *DefectError) Unwrap() error { return e.cause }

// ErrorClass implements Classified.
func (e *DefectError) ErrorClass() Class { return ClassDefect }

// Stack returns the stack captured at construction.
func (e *DefectError) Stack() Stack { return e.stack }

// Message returns the message supplied at construction, without the class
// prefix.
func (e *DefectError) Message() string { return e.msg }

// InterruptError signals cooperative cancellation. It unwraps to
// context.Canceled so errors.Is(err, context.Canceled) holds.
type InterruptError struct {
	suppression
	reason string
	cause  error
	stack  Stack
}

// NewInterrupt creates an interruption signal. Unwrap reaches
// context.Canceled.
func NewInterrupt(reason string) *InterruptError {
	return &InterruptError{reason: reason, cause: context.Canceled, stack: Capture(1)}
}

// NewInterruptCause creates an interruption signal with an explicit cause,
// used when an interrupt is reconstructed across a goroutine boundary. A nil
// cause defaults to context.Canceled.
func NewInterruptCause(reason string, cause error) *InterruptError {
	if cause == nil {
		cause = context.Canceled
	}
	return &InterruptError{reason: reason, cause: cause, stack: Capture(1)}
}

// Error implements the error interface.
func (e *InterruptError) Error() string {
	if e.reason != "" {
		return "interrupted: " + e.reason
	}
	return "interrupted"
}

// Unwrap returns the canonical context sentinel.
func (e *InterruptError) Unwrap() error { return e.cause }

// ErrorClass implements Classified.
func (e *InterruptError) ErrorClass() Class { return ClassInterrupt }

// Stack returns the stack captured at construction.
func (e *InterruptError) Stack() Stack { return e.stack }

// Reason returns the reason supplied at construction.
func (e *InterruptError) Reason() string { return e.reason }

// DomainError is a plain recoverable failure tagged with a Code.
type DomainError struct {
	suppression
	code  Code
	msg   string
	cause error
	stack Stack
}

// NewDomain creates a domain failure, capturing the caller's stack.
func NewDomain(code Code, msg string) *DomainError {
	return &DomainError{code: code, msg: msg, stack: Capture(1)}
}

// NewDomainCause creates a domain failure with a cause, capturing the
// caller's stack.
func NewDomainCause(code Code, msg string, cause error) *DomainError {
	return &DomainError{code: code, msg: msg, cause: cause, stack: Capture(1)}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	switch {
	case e.msg != "" && e.code != "":
		return fmt.Sprintf("%s: %s", e.code, e.msg)
	case e.msg != "":
		return e.msg
	case e.code != "":
		return string(e.code)
	default:
		return "error"
	}
}

// Unwrap returns the cause for errors.Is/As traversal.
func (e *DomainError) Unwrap() error { return e.cause }

// ErrorClass implements Classified.
func (e *DomainError) ErrorClass() Class { return ClassDomain }

// Stack returns the stack captured at construction.
func (e *DomainError) Stack() Stack { return e.stack }

// Code returns the category tag.
func (e *DomainError) Code() Code { return e.code }

// Message returns the message supplied at construction, without the code
// prefix.
func (e *DomainError) Message() string { return e.msg }

// Interface conformance guards.
var (
	_ Classified = (*FatalError)(nil)
	_ Classified = (*DefectError)(nil)
	_ Classified = (*InterruptError)(nil)
	_ Classified = (*DomainError)(nil)

	_ Suppressor = (*FatalError)(nil)
	_ Suppressor = (*DefectError)(nil)
	_ Suppressor = (*InterruptError)(nil)
	_ Suppressor = (*DomainError)(nil)

	_ Stacked = (*FatalError)(nil)
	_ Stacked = (*DefectError)(nil)
	_ Stacked = (*InterruptError)(nil)
	_ Stacked = (*DomainError)(nil)
)
