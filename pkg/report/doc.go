// Package report renders an error tree — class, message, extra info, stack,
// cause chain, and suppressed entries — as a marshal-friendly structure with
// YAML and JSON forms, for diagnostics that outlive the process that failed.
package report
