// Package route provides the delivery Route aggregate and its stops.
//
// Stops are numbered 1..N without gaps. A new stop may only take the next free
// position; reusing a position fails with *errs.DuplicateStopOrderError, anything
// else with *errs.ValueIsOutOfRangeError. The repository backs this with a row
// lock on the route and a unique index on (route_id, stop_order).
package route
