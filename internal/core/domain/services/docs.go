// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the dispatch system. It
// implements workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - PartnerMatcher: the matching rule set that pairs a pending order with
//     the most suitable delivery partner
//
// Domain services coordinate between aggregates, implementing business logic
// that spans aggregate boundaries following Domain-Driven Design principles.
package services
