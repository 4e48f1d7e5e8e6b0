// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Handlers read with raw SQL through gorm and return read models shaped for the
// HTTP adapter and the scheduled reports, never domain aggregates.
package queries
