// Package order provides domain entities and business logic for customer
// orders in the food delivery system. It implements the Order aggregate root
// with lifecycle management, authorization, and an append-only tracking
// history.
//
// The package includes:
//   - Order: The aggregate root owning identity, items, pricing, and lifecycle
//   - Status: A state machine enforcing valid lifecycle transitions
//   - Item: Immutable snapshots of menu items taken at checkout
//   - Pricing: The money breakdown fixed at checkout
//   - Destination: The validated delivery address and coordinates
//   - TrackingEntry and Event: The history row and domain event recorded on
//     every status change
//
// Key business rules:
//   - The lifecycle runs Pending -> Confirmed -> Preparing -> ReadyForPickup
//     -> PickedUp -> Delivering -> Delivered, with cancellation possible only
//     before preparation starts
//   - Every status change appends exactly one tracking entry and records one
//     domain event
//   - A driver is assigned at most once; a lost accept race surfaces as
//     ErrAlreadyAssigned
//   - Lifecycle operations are authorized against the acting party: the
//     restaurant's merchant confirms and prepares, the assigned driver
//     delivers, the owning customer cancels
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced.
package order
