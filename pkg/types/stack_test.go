package types

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureViaHelper() Stack {
	return Capture(0)
}

// TestCapture tests skip accounting and frame resolution
func TestCapture(t *testing.T) {
	stk := captureViaHelper()
	require.NotEmpty(t, stk)

	// Capture(0) starts at Capture's caller.
	assert.Contains(t, stk[0].Function, "captureViaHelper")
	assert.Contains(t, stk[1].Function, "TestCapture")

	for _, f := range stk[:2] {
		assert.True(t, strings.HasSuffix(f.File, "stack_test.go"), "unexpected file %q", f.File)
		assert.Greater(t, f.Line, 0)
	}
}

// TestCapture_Skip tests that skip drops leading frames
func TestCapture_Skip(t *testing.T) {
	direct := Capture(0)
	skipped := Capture(1)
	require.NotEmpty(t, skipped)
	assert.NotContains(t, skipped[0].Function, "TestCapture_Skip")
	assert.Contains(t, direct[0].Function, "TestCapture_Skip")
}

// TestFrameString tests the frame rendering format
func TestFrameString(t *testing.T) {
	f := Frame{Function: "pkg.Do", File: "/src/pkg/do.go", Line: 12}
	assert.Equal(t, "pkg.Do (/src/pkg/do.go:12)", f.String())

	s := Stack{f}
	assert.Equal(t, []string{"pkg.Do (/src/pkg/do.go:12)"}, s.Strings())
}

// TestStackOf tests the accessor and its no-unwrap contract
func TestStackOf(t *testing.T) {
	assert.Nil(t, StackOf(errors.New("plain")))
	assert.Nil(t, StackOf(nil))

	e := NewDomain(CodeIO, "read failed")
	require.NotEmpty(t, StackOf(e))

	// StackOf reports the wrapper's own stack, not the cause's.
	w := NewWrapped(e)
	require.NotEmpty(t, StackOf(w))
	assert.Contains(t, StackOf(w)[0].Function, "TestStackOf")
}
