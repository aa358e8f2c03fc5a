// Package wrap bridges declared-failure boundaries: it converts an
// arbitrary caught error into a narrower declared type while refusing to
// hide what must never be hidden. Errors already of the declared type pass
// through by identity, fatal signals and defects are returned untouched
// without consulting the supplier, and demoted interruptions raise the
// task's interrupt token.
//
// The Call and Run adapters execute a callback and funnel any failure
// through the escape hatch with WrappedError as the declared type.
package wrap
