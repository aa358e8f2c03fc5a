// Package suppress merges independent failures into one error without
// losing either: the secondary failure is attached to the primary's
// suppressed list, interruption signals survive demotion by raising the
// task's interrupt token, and fatal signals take the primary role so they
// are never hidden behind a recoverable failure.
//
// The Merger is a small service object; package-level functions operate on a
// shared default instance bound to the process interrupt flag.
package suppress
