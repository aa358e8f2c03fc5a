// Package interrupt provides the cancellation-token abstraction the merge
// and wrap engines use to keep cooperative-cancellation signals alive when a
// failure that carries one is demoted to a suppressed entry or hidden behind
// a wrapper.
//
// Tokens stand in for a per-task interrupted flag: engines raise them as an
// explicit, documented side effect, and task owners poll or bridge them into
// context cancellation via CancelToken.
package interrupt
