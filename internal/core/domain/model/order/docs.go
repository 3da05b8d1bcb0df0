// Package order provides domain entities and business logic for customer
// order management in the dispatch system. It implements the Order aggregate
// root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: the aggregate root managing order identity, properties, and lifecycle
//   - Status: a state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid unique identifier, order number, customer
//     details, and a delivery area
//   - Order status follows a defined workflow:
//     Pending -> Assigned -> Picked -> Delivered
//   - The assignment engine only drives the Pending -> Assigned transition
//   - assignedTo is set exactly when an order leaves the Pending state and is
//     never cleared afterwards
package order
