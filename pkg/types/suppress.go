package types

// Suppressor is implemented by errors that can record secondary, non-causal
// failures alongside themselves. The list is ordered by attachment and is
// mutated only by the goroutine currently propagating the error; it is not
// safe for concurrent mutation of the same value.
type Suppressor interface {
	// AddSuppressed appends a secondary failure. Nil entries are ignored.
	AddSuppressed(err error)

	// Suppressed returns a copy of the recorded secondary failures in
	// attachment order.
	Suppressed() []error
}

// Suppressed returns err's suppressed list, or nil when err does not support
// suppression. It does not unwrap.
func Suppressed(err error) []error {
	if s, ok := err.(Suppressor); ok {
		return s.Suppressed()
	}
	return nil
}

// suppression is the shared suppressed-list storage embedded by the kit's
// error types.
type suppression struct {
	list []error
}

// AddSuppressed appends a secondary failure, ignoring nil.
func (s *suppression) AddSuppressed(err error) {
	if err == nil {
		return
	}
	s.list = append(s.list, err)
}

// Suppressed returns a copy of the suppressed list so callers cannot disturb
// the stored order.
func (s *suppression) Suppressed() []error {
	if len(s.list) == 0 {
		return nil
	}
	out := make([]error, len(s.list))
	copy(out, s.list)
	return out
}
