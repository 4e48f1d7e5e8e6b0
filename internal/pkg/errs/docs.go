// Package errs provides standardized error types for the fulfillment service.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired) usable with errors.Is
//   - a struct type carrying the details, usable with errors.As
//   - constructor functions with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Generic validation errors live in errs.go. The pipeline conditions raised by the
// order, inventory, pick sheet and routing workflows live in pipeline.go. The HTTP
// adapter maps every sentinel to a status code, so handlers never inspect messages.
package errs
