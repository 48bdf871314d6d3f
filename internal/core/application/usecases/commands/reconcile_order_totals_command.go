package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrReconcileOrderTotalsCommandIsNotConstructed = errors.New(
	"ReconcileOrderTotalsCommand must be created via NewReconcileOrderTotalsCommand constructor",
)

// ReconcileOrderTotalsCommand represents a request to recompute and persist
// the totals of one purchase order from its current line set. Used by the
// reconciliation job as a safety net against drift in the stored totals.
type ReconcileOrderTotalsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReconcileOrderTotalsCommand creates a command to reconcile order totals.
// Validates that the order ID is valid.
func NewReconcileOrderTotalsCommand(orderID kernel.UUID) (ReconcileOrderTotalsCommand, error) {
	cmd := ReconcileOrderTotalsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ReconcileOrderTotalsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReconcileOrderTotalsCommand) Validate() error {
	return c.guard.Validate(ErrReconcileOrderTotalsCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to reconcile.
func (c ReconcileOrderTotalsCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ReconcileOrderTotalsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
