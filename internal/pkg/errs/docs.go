// Package errs provides standardized error types for the trading order service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: a required value is missing (e.g. an order without product lines)
//   - ValueIsInvalidError / ValueIsOutOfRangeError: a value failed validation
//   - ObjectNotFoundError: a lookup matched nothing (the explicit NotFound outcome)
//   - CorruptExtensionError: a stored extension blob does not match its schema
//   - DependencyFailedError: an external collaborator could not serve a call
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for errors.Is / errors.As support
package errs
