package wrap

import (
	"github.com/cecil-the-coder/error-kit/pkg/types"
)

// Call executes fn and, on failure, routes the error through the escape
// hatch with WrappedError as the declared type. Extra diagnostic values are
// stored on the wrapper only when wrapping actually occurs; fatal signals,
// defects, and errors that already are WrappedError come back untouched.
// Panics are not recovered.
func Call[T any](fn func() (T, error), extra ...any) (T, error) {
	return CallMsg("", fn, extra...)
}

// CallMsg is Call with an explicit message for the wrapper. An empty message
// falls back to the cause's message.
func CallMsg[T any](msg string, fn func() (T, error), extra ...any) (T, error) {
	out, err := fn()
	if err == nil {
		return out, nil
	}
	return out, As(err, func(cause error) *types.WrappedError {
		return types.NewWrappedMsg(msg, cause, extra...)
	})
}

// Run executes fn and routes any failure like Call.
func Run(fn func() error, extra ...any) error {
	return RunMsg("", fn, extra...)
}

// RunMsg is Run with an explicit message for the wrapper.
func RunMsg(msg string, fn func() error, extra ...any) error {
	if err := fn(); err != nil {
		return As(err, func(cause error) *types.WrappedError {
			return types.NewWrappedMsg(msg, cause, extra...)
		})
	}
	return nil
}
