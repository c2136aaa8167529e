package orders

import (
	"fmt"

	"naija-aroma/internal/errs"
	"naija-aroma/internal/models"
)

// The order lifecycle is deliberately permissive for admins: any
// non-terminal order may be moved to any valid status, including
// skipping intermediate states. Only the terminal states (DELIVERED,
// CANCELLED) refuse further transitions.

// ensureTransition validates an admin status change from -> to.
func ensureTransition(from, to models.OrderStatus) error {
	if !to.Valid() {
		return errs.ValidationField("status", fmt.Sprintf("Invalid order status %q", to))
	}
	if from.Terminal() {
		return errs.Validation(fmt.Sprintf("Order in %s status cannot be updated", from))
	}
	return nil
}

// ensureCancellable validates a cancellation request against the
// order's current status.
func ensureCancellable(from models.OrderStatus) error {
	if from.Terminal() {
		return errs.Validation("Order cannot be cancelled")
	}
	return nil
}
