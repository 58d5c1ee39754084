// Package errs provides standardized error types for the ordering application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the failure taxonomy of the order workflow:
//   - ObjectNotFoundError: an entity id does not resolve
//   - ForbiddenError: the caller lacks ownership or the required role
//   - InvalidStateError: the operation is not legal for the current status
//   - ConflictError: the operation collides with existing state
//   - ValueIsRequiredError / ValueIsInvalidError: malformed input
//   - TransientError: the store was unavailable; safe to retry unchanged
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// This standardized approach to error handling improves error reporting,
// makes error handling more consistent, and enables better error classification
// and handling throughout the application.
package errs
