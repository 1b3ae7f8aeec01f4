// Package order provides domain entities and business logic for order
// management. It implements the Order aggregate root with lifecycle
// management and read-time status derivation.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: The derived lifecycle state and its derivation rule
//
// Key business rules:
//   - Orders must have a valid unique identifier, a product, a contact email
//     and a positive quantity
//   - Status is a pure function of elapsed time since creation:
//     accepted (<=10s) -> on_delivery (<=25s) -> delivered (>25s)
//   - Cancellation is explicit, terminal and idempotent; once cancelled, no
//     time-based rule may overwrite the status
//   - Status is recomputed on every read from the stored creation timestamp,
//     so no background scheduler is needed
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced.
package order
