// Package ports defines the contracts between the fulfillment core and its
// adapters: repositories bound to a unit of work, the routing service and the
// event publisher.
package ports
