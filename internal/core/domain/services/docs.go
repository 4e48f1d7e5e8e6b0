// Package services holds the domain services of the fulfillment pipeline. They
// coordinate aggregates that no single aggregate root owns:
//
//   - PickSheetGenerator: builds a sorted pick sheet from eligible order lines and
//     completes it by allocating stock and advancing the orders
//   - RouteBuilder: turns fulfilled orders into delivery routes, directly or through
//     the optimized sequence of the routing service
//   - IntegrityGuard: decides whether an order may be deleted or cancelled while
//     pick sheets and route stops still reference it
//
// Services never load or save anything; command handlers pass the aggregates in
// and persist them afterwards within one unit of work.
package services
