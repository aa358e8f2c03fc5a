package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrorMessages tests the Error() rendering of each concrete type
func TestErrorMessages(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "fatal with message", err: NewFatal("oom"), expected: "fatal: oom"},
		{name: "fatal from cause", err: NewFatalCause("", errors.New("heap exhausted")), expected: "fatal: heap exhausted"},
		{name: "fatal bare", err: &FatalError{}, expected: "fatal"},
		{name: "defect with message", err: NewDefect("broken invariant"), expected: "defect: broken invariant"},
		{name: "defect from cause", err: AsDefect(errors.New("nil deref")), expected: "defect: nil deref"},
		{name: "interrupt with reason", err: NewInterrupt("shutdown"), expected: "interrupted: shutdown"},
		{name: "interrupt bare", err: NewInterrupt(""), expected: "interrupted"},
		{name: "domain code and message", err: NewDomain(CodeParse, "bad token"), expected: "parse: bad token"},
		{name: "domain message only", err: NewDomain("", "bad token"), expected: "bad token"},
		{name: "domain code only", err: NewDomain(CodeIO, ""), expected: "io"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.Error())
		})
	}
}

// TestUnwrap tests cause exposure for errors.Is/As traversal
func TestUnwrap(t *testing.T) {
	cause := errors.New("root")

	assert.Same(t, cause, errors.Unwrap(NewFatalCause("oom", cause)))
	assert.Same(t, cause, errors.Unwrap(NewDefectCause("bug", cause)))
	assert.Same(t, cause, errors.Unwrap(NewDomainCause(CodeIO, "read failed", cause)))
	assert.True(t, errors.Is(NewDomainCause(CodeIO, "read failed", cause), cause))
}

// TestSuppression tests the shared suppressed-list storage
func TestSuppression(t *testing.T) {
	primary := NewDomain(CodeIO, "close failed")
	secondary := errors.New("flush failed")

	require.Empty(t, primary.Suppressed())

	primary.AddSuppressed(secondary)
	got := primary.Suppressed()
	require.Len(t, got, 1)
	assert.Same(t, secondary, got[0])

	// Nil entries are ignored.
	primary.AddSuppressed(nil)
	assert.Len(t, primary.Suppressed(), 1)

	// The returned slice is a copy.
	got[0] = errors.New("other")
	assert.Same(t, secondary, primary.Suppressed()[0])
}

// TestSuppressed_Accessor tests the package-level accessor on foreign errors
func TestSuppressed_Accessor(t *testing.T) {
	assert.Nil(t, Suppressed(errors.New("plain")))
	assert.Nil(t, Suppressed(nil))

	e := NewDefect("bug")
	e.AddSuppressed(errors.New("cleanup failed"))
	assert.Len(t, Suppressed(e), 1)
}

// TestConstructorStacks tests that every constructor captures the call site
func TestConstructorStacks(t *testing.T) {
	testCases := []struct {
		name string
		err  Stacked
	}{
		{name: "fatal", err: NewFatal("oom")},
		{name: "defect", err: NewDefect("bug")},
		{name: "interrupt", err: NewInterrupt("stop")},
		{name: "domain", err: NewDomain(CodeIO, "read failed")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stk := tc.err.Stack()
			require.NotEmpty(t, stk)
			assert.Contains(t, stk[0].Function, "TestConstructorStacks")
		})
	}
}
