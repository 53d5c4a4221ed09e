// Package errs defines the error types returned to API clients.
//
// Every failure that reaches the presentation layer is expressed as an
// *HTTPError so clients receive a consistent shape: a machine-readable
// code, a human-readable message, the HTTP status, and optional
// field-level validation errors.
package errs
