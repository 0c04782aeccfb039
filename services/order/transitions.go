package order

import (
	"fmt"

	"tiffin/models"
)

// TransitionError rejects an illegal order status transition. The lifecycle
// is forward-only: PENDING -> CONFIRMED -> COMPLETED, no skips, no reverses.
type TransitionError struct {
	From models.OrderStatus
	To   models.OrderStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal order status transition %s -> %s", e.From, e.To)
}

// ValidationError rejects a malformed order before any write is attempted.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{
		Code:    "validationError",
		Message: msg,
	}
}

var nextStatus = map[models.OrderStatus]models.OrderStatus{
	models.OrderStatusPending:   models.OrderStatusConfirmed,
	models.OrderStatusConfirmed: models.OrderStatusCompleted,
}

// validateTransition enforces the forward-only lifecycle inside the ledger
// rather than trusting which buttons a UI chose to show.
func validateTransition(from, to models.OrderStatus) error {
	if nextStatus[from] != to {
		return &TransitionError{From: from, To: to}
	}
	return nil
}
