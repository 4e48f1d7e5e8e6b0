// Package kernel provides the shared value objects of the fulfillment domain.
//
// The package includes:
//   - UUID: identifier of every aggregate and entity
//   - WarehouseLocation and PickRank: parsing of <Aisle>-<Rack>-<Shelf> codes and the
//     walking-order rank used to sort pick sheets
//   - Money: integer cents
//   - Address: the delivery snapshot exported to the routing service
//   - DomainEvent and EventRecorder: events recorded by aggregates and published
//     after commit
//
// Value objects are immutable. Zero values are invalid and fail Validate.
package kernel
