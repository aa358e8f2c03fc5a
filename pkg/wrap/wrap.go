package wrap

import (
	"github.com/cecil-the-coder/error-kit/pkg/interrupt"
	"github.com/cecil-the-coder/error-kit/pkg/types"
)

// Wrapper is the escape-hatch service. It holds the interrupt token raised
// when an interruption is hidden behind a non-interrupt wrapper.
type Wrapper struct {
	token interrupt.Token
}

// Option configures a Wrapper.
type Option func(*Wrapper)

// WithToken binds the wrapper to a task-scoped interrupt token instead of
// the process default flag.
func WithToken(tok interrupt.Token) Option {
	return func(w *Wrapper) {
		if tok != nil {
			w.token = tok
		}
	}
}

// NewWrapper creates a Wrapper. Without options it raises the process-wide
// interrupt flag.
func NewWrapper(opts ...Option) *Wrapper {
	w := &Wrapper{token: interrupt.Default()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Token returns the interrupt token the wrapper raises.
func (w *Wrapper) Token() interrupt.Token { return w.token }

// Default is the shared wrapper used by the package-level functions.
var Default = NewWrapper()

// WrapAs converts caught into the declared error type T:
//
//   - nil: nil, nothing to wrap.
//   - already a T (direct type, not chain membership): caught itself, so
//     identity comparisons downstream keep working.
//   - fatal signal or defect: caught unchanged; the supplier is never
//     consulted, and the unrecoverable failure is never hidden behind a
//     declared-looking facade.
//   - anything else: supplier(caught). If caught signals interruption and
//     the produced wrapper's own class does not, the wrapper's interrupt
//     token is raised first.
//
// A nil w uses the package default.
func WrapAs[T error](w *Wrapper, caught error, supplier func(cause error) T) error {
	if w == nil {
		w = Default
	}
	if caught == nil {
		return nil
	}
	if t, ok := caught.(T); ok {
		return t
	}
	if types.NeverWrap(caught) {
		return caught
	}
	if supplier == nil {
		panic("wrap: nil supplier")
	}
	wrapped := supplier(caught)
	if types.IsInterrupt(caught) && types.ClassOf(wrapped) != types.ClassInterrupt {
		w.token.Interrupt()
	}
	return wrapped
}

// As is WrapAs on the default wrapper.
func As[T error](caught error, supplier func(cause error) T) error {
	return WrapAs(Default, caught, supplier)
}
