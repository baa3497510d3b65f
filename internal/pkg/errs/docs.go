// Package errs defines the standardized error vocabulary of the service.
//
// Every error kind follows one pattern: a sentinel variable (ErrObjectNotFound,
// ErrValueIsInvalid, ErrForbidden, ...), a struct carrying the diagnostic
// fields, constructors with and without an underlying cause, and an Unwrap
// that resolves to the sentinel. Callers branch with errors.Is against the
// sentinels; adapters translate them into transport-level codes.
package errs
