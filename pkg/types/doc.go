// Package types defines the core error model for error-kit: the class
// taxonomy (domain, defect, fatal, interrupt), classification predicates,
// stack capture, suppression storage, and the concrete error types shared by
// the suppress, surrogate, and wrap packages.
//
// The model is policy-free: no logging, transport, or retry behavior lives
// here. Everything interoperates with the standard library via Unwrap,
// errors.Is, and errors.As.
package types
