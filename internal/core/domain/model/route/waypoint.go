package route

import "fulfillment/internal/core/domain/model/kernel"

// Waypoint is one entry of the flat stop list exported to the routing service.
// Reference is echoed back in the matching Arrival.
type Waypoint struct {
	Reference string
	Address   kernel.Address
}

// Arrival is one entry of the optimized sequence returned by the routing service.
type Arrival struct {
	Reference        string
	EstimatedArrival string
}
