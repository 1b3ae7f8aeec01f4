// Package errs provides standardized error types for the order system.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a numeric value is outside its range
//   - ObjectNotFoundError: For when an object cannot be found
//   - ProductUnavailableError: For when the product validator rejects a product
//   - ServiceUnavailableError: For when a downstream service cannot be reached
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The last three types above form the boundary taxonomy of the system:
// ObjectNotFoundError maps to not-found responses, ProductUnavailableError to
// client-input errors, and ServiceUnavailableError to retryable
// service-unavailable errors. Anything that does not unwrap to one of the
// package sentinels is treated as an internal error at the boundary.
package errs
