// Package order provides domain entities and business logic for escrow-backed
// marketplace orders in the provenance system. It implements the Order
// aggregate root with lifecycle management, an embedded escrow account, and
// state transitions.
//
// The package includes:
//   - Order: The aggregate root linking a consumed listing, a traded batch,
//     the buyer and seller, and the captured escrow
//   - Status: A state machine that enforces valid order status transitions
//   - EscrowAccount: The linear funds holder (captured once, settled once)
//
// Key business rules:
//   - Payment must cover the listing price and is captured in full
//   - The buyer may cancel any time before confirmation, including after
//     shipment; cancellation refunds the full escrow
//   - Delivery confirmation requires the matching pickup code and releases
//     escrow to the seller exactly once
//   - A reported problem blocks confirmation until the seller or the batch
//     originator resolves it, which reverts the order to PaidEscrow
//   - The closed guard turns any second payout attempt into a hard error
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
