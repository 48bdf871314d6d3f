// Package order provides domain entities and business logic for purchase-order
// management in the procurement system. It implements the PurchaseOrder
// aggregate root with its exclusively owned line items, derived monetary
// totals, and status lifecycle.
//
// The package includes:
//   - PurchaseOrder: The aggregate root owning identity, properties, line set and totals
//   - Line: One product entry with quantity, unit price, discount and derived amounts
//   - ComputeLineAmounts: The pure calculator deriving a line's subtotal, tax and total
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - An order's subtotal, tax and total always equal the sums over its current
//     line set; every line insert, update or delete recomputes them
//   - Line amounts are derived from quantity, unit price and discount using the
//     fixed TaxRate; client-supplied derived values are never trusted
//   - Order status follows a defined workflow starting at Pending; Rejected,
//     Completed and Cancelled are terminal
//   - Line numbers are unique within an order
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
