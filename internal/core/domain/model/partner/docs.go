// Package partner provides domain entities and business logic for delivery
// partner management. It implements the Partner aggregate root with capacity
// bookkeeping and serviced-area rules.
//
// The package includes:
//   - Partner: the aggregate root managing identity, availability, and load
//   - Status: the active/inactive lifecycle state of a partner
//
// Key business rules:
//   - Partners must have a name, an email, a phone, and at least one area
//   - A partner's current load always stays within [0, MaxLoad]
//   - Only active partners below MaxLoad are available for assignment
//   - A partner can only serve orders in areas it declares
package partner
