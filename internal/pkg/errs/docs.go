// Package errs provides standardized error types for the restaurant backend.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - a struct type carrying the error details
//   - constructor functions with and without an underlying cause
//   - Error() for a single-line message and Unwrap() for classification
//
// The HTTP adapter relies on the sentinels to translate failures into status
// codes: required/invalid values map to 400, missing objects to 404. Domain
// packages add their own conflict sentinels on top of this taxonomy.
package errs
