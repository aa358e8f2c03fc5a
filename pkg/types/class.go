package types

import (
	"context"
	"errors"
)

// Class categorizes an error by recoverability. The set is closed: code that
// decides whether a failure may be wrapped or demoted switches on these four
// values rather than on an open type hierarchy.
type Class string

const (
	// ClassDomain marks an ordinary, recoverable failure. Domain errors may
	// be wrapped, merged, and reconstructed freely.
	ClassDomain Class = "domain"

	// ClassDefect marks a programming-logic failure (broken invariant,
	// impossible state). Defects are propagated untouched and never wrapped.
	ClassDefect Class = "defect"

	// ClassFatal marks an unrecoverable process-level signal. Fatal errors
	// are propagated untouched, never wrapped, and win merge precedence.
	ClassFatal Class = "fatal"

	// ClassInterrupt marks cooperative cancellation. Demoting an interrupt
	// to a suppressed entry must re-raise the caller's interruption token.
	ClassInterrupt Class = "interrupt"
)

// Classified is implemented by errors that report their own class.
type Classified interface {
	error
	ErrorClass() Class
}

// ClassOf returns the error's own class without unwrapping. Errors that do
// not implement Classified default to ClassDomain, except the canonical
// context sentinels which classify as ClassInterrupt.
func ClassOf(err error) Class {
	if err == nil {
		return ""
	}
	if c, ok := err.(Classified); ok {
		return c.ErrorClass()
	}
	if err == context.Canceled || err == context.DeadlineExceeded {
		return ClassInterrupt
	}
	return ClassDomain
}

// IsFatal reports whether err is (or wraps) an unrecoverable fatal signal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var fe *FatalError
	if errors.As(err, &fe) {
		return true
	}
	return chainHasClass(err, ClassFatal)
}

// IsDefect reports whether err is (or wraps) a programming-logic failure.
func IsDefect(err error) bool {
	if err == nil {
		return false
	}
	var de *DefectError
	if errors.As(err, &de) {
		return true
	}
	return chainHasClass(err, ClassDefect)
}

// IsInterrupt reports whether err signals cooperative cancellation anywhere
// in its chain. Both the kit's InterruptError and the canonical stdlib
// context sentinels match.
func IsInterrupt(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ie *InterruptError
	if errors.As(err, &ie) {
		return true
	}
	return chainHasClass(err, ClassInterrupt)
}

// chainHasClass walks the cause chain and reports whether any link classifies
// itself as class. A single Classified wrapper of another class must not mask
// what it wraps, so every link is inspected rather than only the first match.
func chainHasClass(err error, class Class) bool {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if c, ok := e.(Classified); ok && c.ErrorClass() == class {
			return true
		}
	}
	return false
}

// NeverWrap reports whether err must be propagated untouched: fatal signals
// and defects are never hidden behind a wrapper type.
func NeverWrap(err error) bool {
	return IsFatal(err) || IsDefect(err)
}
