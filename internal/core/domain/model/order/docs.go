// Package order provides the Order aggregate and its lifecycle.
//
// The package includes:
//   - Order: the aggregate root owning its lines, status and delivery snapshot
//   - Line: an order line referencing an inventory item
//   - Status: the closed set of lifecycle states and the transition table
//   - Transition and StatusChanged: the audit record and domain event of a status change
//
// Key business rules:
//   - Orders move Pending -> Submitted -> (PartiallyFulfilled ->) Fulfilled, or are
//     Cancelled from Pending or Submitted
//   - An order is fulfilled only when every line has been allocated by a completed
//     pick sheet
//   - Delivered-at is recorded on a fulfilled order when its route stop is delivered
//   - No component changes status except through the methods of Order
package order
