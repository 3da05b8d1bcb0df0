// Package errs provides standardized error types for the dispatch application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ValueIsOutOfRangeError: for when a numeric value leaves its allowed range
//   - ObjectNotFoundError: for when an object cannot be found
//   - InvalidStateError: for operations forbidden by the object's current state
//   - ConcurrentModificationError: for conditional updates that lost a race
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// The sentinels double as the error taxonomy of the assignment engine:
// ErrObjectNotFound, ErrInvalidState, and ErrConcurrentModification map
// directly to the NotFound / InvalidState / Conflict outcomes surfaced over
// HTTP.
package errs
