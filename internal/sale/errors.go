package sale

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidQty      = errors.New("order quantity must be positive")
	ErrUnknownMenuItem = errors.New("unknown menu item")
)

// MissingIngredientError rejects a cart whose recipe references an ingredient
// absent from the branch's inventory. No mutation has occurred.
type MissingIngredientError struct {
	IngredientID string
}

func (e *MissingIngredientError) Error() string {
	return fmt.Sprintf("ingredient %q is not stocked at this branch", e.IngredientID)
}

// InsufficientStockError rejects a cart whose aggregated demand for one
// ingredient exceeds the stock observed at validation time. No mutation has
// occurred.
type InsufficientStockError struct {
	IngredientName string
	Available      float64
	Required       float64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf(
		"insufficient stock for %s: available %s, required %s",
		e.IngredientName,
		strconv.FormatFloat(e.Available, 'f', -1, 64),
		strconv.FormatFloat(e.Required, 'f', -1, 64),
	)
}

// PartialCommitError reports a store failure after at least one stock delta
// was applied. The sale is in a non-clean state and needs operator
// reconciliation; it is NOT a user-facing rejection.
type PartialCommitError struct {
	AttemptID     string
	AppliedDeltas []StockDelta
	RecordedSales int
	Err           error
}

func (e *PartialCommitError) Error() string {
	return fmt.Sprintf(
		"sale attempt %s partially committed (%d stock deltas applied, %d sale records appended): %v",
		e.AttemptID, len(e.AppliedDeltas), e.RecordedSales, e.Err,
	)
}

func (e *PartialCommitError) Unwrap() error {
	return e.Err
}
