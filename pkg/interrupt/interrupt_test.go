package interrupt

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFlag tests raise, query, and test-and-clear semantics
func TestFlag(t *testing.T) {
	f := NewFlag()
	assert.False(t, f.Interrupted())

	f.Interrupt()
	assert.True(t, f.Interrupted())

	// Raising again is a no-op.
	f.Interrupt()
	assert.True(t, f.Interrupted())

	assert.True(t, f.Clear())
	assert.False(t, f.Interrupted())
	assert.False(t, f.Clear())
}

// TestFlag_Concurrent tests that concurrent raises settle to a single state
func TestFlag_Concurrent(t *testing.T) {
	f := NewFlag()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.Interrupt()
		}()
	}
	wg.Wait()
	assert.True(t, f.Clear())
	assert.False(t, f.Interrupted())
}

// TestCancelToken tests bridging into context cancellation
func TestCancelToken(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	tok := CancelToken(cancel)

	require.NoError(t, ctx.Err())
	assert.False(t, tok.Interrupted())

	tok.Interrupt()
	assert.True(t, tok.Interrupted())
	assert.ErrorIs(t, ctx.Err(), context.Canceled)

	// A second raise stays idempotent.
	tok.Interrupt()
	assert.True(t, tok.Interrupted())
}

// TestCancelToken_NilCancel tests the plain-flag fallback
func TestCancelToken_NilCancel(t *testing.T) {
	tok := CancelToken(nil)
	tok.Interrupt()
	assert.True(t, tok.Interrupted())
}

// TestDefault tests the process-wide flag
func TestDefault(t *testing.T) {
	require.NotNil(t, Default())
	Default().Interrupt()
	assert.True(t, Default().Clear())
	assert.False(t, Default().Interrupted())
}
