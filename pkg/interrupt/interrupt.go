package interrupt

import (
	"context"
	"sync"
	"sync/atomic"
)

// Token records a pending interruption for the task that is currently
// propagating an error. Implementations must be safe for concurrent use.
type Token interface {
	// Interrupt marks the task as interrupted. Raising an already-raised
	// token is a no-op.
	Interrupt()

	// Interrupted reports whether the token has been raised.
	Interrupted() bool
}

// Flag is the basic atomic Token implementation.
type Flag struct {
	raised atomic.Bool
}

// NewFlag returns a lowered Flag.
func NewFlag() *Flag { return &Flag{} }

// Interrupt implements Token.
func (f *Flag) Interrupt() { f.raised.Store(true) }

// Interrupted implements Token.
func (f *Flag) Interrupted() bool { return f.raised.Load() }

// Clear lowers the flag and reports whether it was raised, mirroring the
// test-and-clear read a task performs when it handles the interruption.
func (f *Flag) Clear() bool { return f.raised.Swap(false) }

// cancelToken raises a flag and additionally cancels a context exactly once,
// so demoted interruptions still stop the surrounding task tree.
type cancelToken struct {
	Flag
	once   sync.Once
	cancel context.CancelFunc
}

// CancelToken returns a Token that, when raised, also invokes cancel exactly
// once. A nil cancel yields a plain flag.
func CancelToken(cancel context.CancelFunc) Token {
	if cancel == nil {
		return NewFlag()
	}
	return &cancelToken{cancel: cancel}
}

func (t *cancelToken) Interrupt() {
	t.Flag.Interrupt()
	t.once.Do(t.cancel)
}

// defaultFlag is the process-wide token used by the package-level engines in
// suppress and wrap when no task-scoped token is injected.
var defaultFlag = NewFlag()

// Default returns the process-wide flag. Prefer injecting a task-scoped
// Token into the engines; the shared flag is a last resort for code with no
// task identity of its own.
func Default() *Flag { return defaultFlag }
