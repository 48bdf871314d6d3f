// Package supplier contains the Supplier aggregate.
//
// A supplier is a vendor that purchase orders are placed against. The
// aggregate owns the supplier's identity, contact data and activity status.
// Deactivation is the soft-delete mechanism: an inactive supplier is kept on
// record (existing orders still reference it) but is excluded from new
// purchasing. Hard removal is a repository concern and is restricted while
// any purchase order references the supplier.
package supplier
