package types

import (
	"fmt"
	"runtime"
)

// Frame is a single resolved call site.
type Frame struct {
	// Function is the fully qualified function name (pkg.Func or method).
	Function string

	// File is the source file path as reported by the runtime.
	File string

	// Line is the line number within File.
	Line int
}

// String renders the frame as "function (file:line)".
func (f Frame) String() string {
	return fmt.Sprintf("%s (%s:%d)", f.Function, f.File, f.Line)
}

// Stack is a resolved call stack, most recent call first.
type Stack []Frame

// Strings renders each frame via Frame.String.
func (s Stack) Strings() []string {
	out := make([]string, len(s))
	for i, f := range s {
		out[i] = f.String()
	}
	return out
}

// Stacked is implemented by errors that captured a call stack at
// construction time.
type Stacked interface {
	Stack() Stack
}

// StackOf returns the stack captured by err itself, or nil. It does not
// unwrap: a surrogate's value lies in its own capture site, not its cause's.
func StackOf(err error) Stack {
	if s, ok := err.(Stacked); ok {
		return s.Stack()
	}
	return nil
}

// maxStackDepth bounds capture cost on failure paths.
const maxStackDepth = 32

// Capture records the current goroutine's stack, skipping skip frames beyond
// the caller of Capture. Frames are resolved through runtime.CallersFrames so
// inlined calls appear correctly.
func Capture(skip int) Stack {
	pcs := make([]uintptr, maxStackDepth)
	// +2 skips runtime.Callers and Capture itself, so the first frame is
	// Capture's caller (or above it, per skip).
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{Function: fr.Function, File: fr.File, Line: fr.Line})
		if !more {
			break
		}
	}
	return out
}
