// Package errs provides the error taxonomy shared by the bakery service.
//
// Every error type follows the same shape:
//   - a sentinel error variable (e.g. ErrValueIsRequired) used with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - constructors with and without cause
//   - Unwrap returning the sentinel so callers can classify errors
//
// The HTTP adapter maps the sentinels to status codes, so domain and
// persistence code should return these types instead of ad-hoc errors
// whenever a failure is caused by the caller's input or by a missing row.
package errs
