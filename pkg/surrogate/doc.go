// Package surrogate recreates errors across goroutine boundaries. A
// surrogate is a fresh error of the same concrete type as a template,
// carrying the calling goroutine's stack while preserving the template's
// semantic state and keeping the original reachable through the cause chain.
//
// Reconstruction is driven by a registry mapping exact error types to
// factory functions. Pre-existing error types have irregular constructors —
// some take no message, some derive their text from internal fields, some
// carry extra typed fields that must survive — so all per-type special
// casing lives in the registered factories and the engine itself stays
// trivial. Types without a registered factory pass through unchanged.
package surrogate
