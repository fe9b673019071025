// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the provenance system. It
// implements workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - TradeService: coordinates the marketplace protocol between listings,
//     orders, and batches
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
