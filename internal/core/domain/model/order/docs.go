// Package order provides domain entities and business logic for order management
// in the storefront system. It implements the Order aggregate root with lifecycle
// management, payment reconciliation, and delivery state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, line items, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - PaymentStatus / PaymentMethod: Closed enumerations for payment reconciliation
//   - LineItem: An immutable snapshot of a purchased product
//   - Recipient: Delivery contact details captured at checkout
//
// Key business rules:
//   - Orders must have a valid unique identifier, an owner (user or session), and at least one line item
//   - The order total is the frozen sum of line-item snapshots and is never recomputed
//   - Order status follows a defined workflow: Pending -> Shipping -> Delivered, with
//     Cancelled as the terminal failure state and Approved as an administrative intermediate
//   - Online payments settle through MarkPaid; cash-on-delivery settles at creation time
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
