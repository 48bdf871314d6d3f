// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"procurement/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// SupplierRepoFactory provides access to the supplier repository within a transaction.
	SupplierRepoFactory interface {
		SupplierRepository() ports.SupplierRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify purchase order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// SupplierUoW manages transactions for supplier-only operations.
	// Used when commands only modify supplier aggregates.
	SupplierUoW interface {
		TxManager
		SupplierRepoFactory
	}

	// SupplierUoWFactory creates new supplier unit of work instances.
	SupplierUoWFactory interface {
		Create() SupplierUoW
	}

	// UoW manages transactions across both order and supplier aggregates.
	// Used for commands that coordinate changes between multiple aggregate types,
	// such as order creation which verifies the referenced supplier.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   supplierRepo := uow.SupplierRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		SupplierRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
