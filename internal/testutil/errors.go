// Package testutil provides shared test doubles: error types with the
// irregular construction conventions the surrogate registry exists to
// absorb, plus a recording interrupt flag helper.
package testutil

import (
	"fmt"

	"github.com/cecil-the-coder/error-kit/pkg/types"
)

// OffsetError carries an extra typed field (a parse offset) that must be
// copied across reconstruction. Its constructor takes message and offset but
// no cause; the cause is assigned in a separate step.
type OffsetError struct {
	msg    string
	offset int64
	cause  error
	stack  types.Stack
}

// NewOffsetError creates an OffsetError without a cause.
func NewOffsetError(msg string, offset int64) *OffsetError {
	return &OffsetError{msg: msg, offset: offset, stack: types.Capture(1)}
}

// SetCause assigns the cause after construction.
func (e *OffsetError) SetCause(cause error) { e.cause = cause }

func (e *OffsetError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.msg, e.offset)
}

func (e *OffsetError) Unwrap() error      { return e.cause }
func (e *OffsetError) Offset() int64      { return e.offset }
func (e *OffsetError) Message() string    { return e.msg }
func (e *OffsetError) Stack() types.Stack { return e.stack }

// CodeOnlyError derives its entire message from an internal numeric field;
// its constructor accepts neither message nor cause.
type CodeOnlyError struct {
	status int
}

// NewCodeOnlyError creates a CodeOnlyError.
func NewCodeOnlyError(status int) *CodeOnlyError {
	return &CodeOnlyError{status: status}
}

func (e *CodeOnlyError) Error() string {
	return fmt.Sprintf("status %d", e.status)
}

func (e *CodeOnlyError) Status() int { return e.status }

// PlainError is an ordinary comparable sentinel-style error with no cause,
// no class, and no suppression support.
type PlainError struct {
	Msg string
}

func (e *PlainError) Error() string { return e.Msg }
