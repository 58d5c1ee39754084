// Package order provides domain entities and business logic for the
// zone-consolidated ordering workflow. It implements the Order aggregate
// root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: the aggregate root owning identity, lines, and lifecycle
//   - Line: one product position with a frozen unit-price snapshot and
//     a per-line received flag
//   - Status: a state machine that enforces the lifecycle edges
//
// Key business rules:
//   - Orders follow Pending → Consolidating → Assigned → Dispatched →
//     Shipped → Delivered → Received, with no cycles and no skipping
//   - Unit prices are snapshotted at creation and never change
//   - Supplier-driven steps require the caller to be the assigned supplier
//   - Received is only reachable once every line is confirmed, and is the
//     only status that frees the shopkeeper to create a new order
//
// The package follows Domain-Driven Design principles, providing rich
// domain behavior, encapsulation, and validation to ensure business rules
// are enforced.
package order
