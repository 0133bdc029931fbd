// Package order provides the Order aggregate root for the restaurant backend.
//
// The package includes:
//   - Order: the aggregate owning identity, customer reference, priced lines,
//     the derived total amount, and the lifecycle status
//   - Line: one priced (product, quantity) entry, price fixed at order time
//   - Status: a strict linear state machine over the order lifecycle
//
// Key business rules:
//   - An order is created with at least one priced line; lines are immutable
//     afterwards and the total is always the exact decimal sum of
//     priceAtOrder * quantity over all lines
//   - The status advances one step at a time through
//     New -> Preparing -> Ready -> Delivered; staying put, skipping ahead, and
//     moving backward are all rejected
//   - Delivered is terminal
//   - Orders are never re-priced after creation
package order
