package suppress

import (
	"reflect"

	"github.com/cecil-the-coder/error-kit/pkg/interrupt"
	"github.com/cecil-the-coder/error-kit/pkg/types"
)

// Merger combines pairs of errors under the suppression rules. A Merger
// holds the interrupt token it raises when an interruption is demoted to a
// suppressed entry.
type Merger struct {
	token interrupt.Token
}

// Option configures a Merger.
type Option func(*Merger)

// WithToken binds the merger to a task-scoped interrupt token instead of the
// process default flag.
func WithToken(tok interrupt.Token) Option {
	return func(m *Merger) {
		if tok != nil {
			m.token = tok
		}
	}
}

// NewMerger creates a Merger. Without options it raises the process-wide
// interrupt flag.
func NewMerger(opts ...Option) *Merger {
	m := &Merger{token: interrupt.Default()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Token returns the interrupt token the merger raises.
func (m *Merger) Token() interrupt.Token { return m.token }

// Default is the shared merger used by the package-level functions.
var Default = NewMerger()

// Merge combines two errors into one aggregate:
//
//   - additional nil, or identical to primary: primary unchanged.
//   - primary nil: additional.
//   - additional signals interruption and primary does not: the merger's
//     interrupt token is raised before returning, so the cancellation is not
//     lost by demotion to a suppressed entry.
//   - additional is fatal and primary is not: the roles swap — additional is
//     returned with primary attached to ITS suppressed list. Callers must
//     therefore inspect the returned value's class rather than assume the
//     primary survives.
//   - otherwise: additional is attached to primary's suppressed list unless
//     already present by identity, and primary is returned.
//
// A primary that cannot hold a suppressed list is first promoted to an
// equivalent holder of the same class (fatal and defect stay fatal and
// defect; anything else becomes a WrappedError), with the original as cause.
func (m *Merger) Merge(primary, additional error) error {
	if additional == nil || identical(additional, primary) {
		return primary
	}
	if primary == nil {
		return additional
	}

	if types.IsInterrupt(additional) && !types.IsInterrupt(primary) {
		m.token.Interrupt()
	}

	if types.IsFatal(additional) && !types.IsFatal(primary) {
		winner, holder := holderFor(additional)
		attachOnce(holder, primary)
		return winner
	}

	winner, holder := holderFor(primary)
	attachOnce(holder, additional)
	return winner
}

// Merge combines two errors using the default merger. See Merger.Merge.
func Merge(primary, additional error) error {
	return Default.Merge(primary, additional)
}

// MergeAndWrapAs merges primary and additional, then routes the result
// toward a declared error type T:
//
//   - both nil: nil.
//   - fatal signals and defects: returned unchanged, never wrapped.
//   - already a T: returned unchanged.
//   - anything else: passed through wrapFn. A nil wrapFn falls back to the
//     default WrappedError.
//
// A nil merger uses the package default. The caller propagates whatever is
// returned; nothing is swallowed.
func MergeAndWrapAs[T error](m *Merger, primary, additional error, wrapFn func(error) T) error {
	if m == nil {
		m = Default
	}
	merged := m.Merge(primary, additional)
	if merged == nil {
		return nil
	}
	if types.NeverWrap(merged) {
		return merged
	}
	if _, ok := merged.(T); ok {
		return merged
	}
	if wrapFn == nil {
		return types.NewWrapped(merged)
	}
	return wrapFn(merged)
}

// holderFor returns err itself when it can hold a suppressed list, or an
// equal-class promotion of err when it cannot. The second return is the
// Suppressor to attach to.
func holderFor(err error) (error, types.Suppressor) {
	if s, ok := err.(types.Suppressor); ok {
		return err, s
	}
	switch {
	case types.IsFatal(err):
		f := types.NewFatalCause("", err)
		return f, f
	case types.IsDefect(err):
		d := types.AsDefect(err)
		return d, d
	default:
		w := types.NewWrapped(err)
		return w, w
	}
}

// attachOnce appends err to the holder's suppressed list unless an entry
// with the same identity is already present, making re-merges idempotent.
func attachOnce(holder types.Suppressor, err error) {
	for _, existing := range holder.Suppressed() {
		if identical(existing, err) {
			return
		}
	}
	holder.AddSuppressed(err)
}

// identical reports whether a and b are the same error value. Comparing
// interfaces panics when both sides carry the same uncomparable dynamic
// type, so such values are treated as distinct.
func identical(a, b error) bool {
	if a == nil || b == nil {
		return a == b
	}
	return reflect.TypeOf(a).Comparable() && a == b
}
