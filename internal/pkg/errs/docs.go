// Package errs provides standardized error types for the orders service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// The categories cover the failure modes of the order lifecycle: missing
// or invalid values on value objects and commands, unknown order/product
// identifiers, products that exist but are not sellable, and status
// machine guard violations (InvalidTransitionError carries the status the
// order was in and the action that was rejected). The HTTP boundary maps
// these categories to client-error responses; consumers use them to
// decide between acknowledging and redelivering a message.
package errs
