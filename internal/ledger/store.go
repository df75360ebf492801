package ledger

import (
	"context"
	"errors"
)

var ErrRowNotFound = errors.New("inventory row not found")

// Store defines the row-oriented persistence contract the fulfillment core
// depends on. Services depend ONLY on this interface.
type Store interface {
	// ListInventory returns a read-only snapshot of one branch's inventory.
	ListInventory(ctx context.Context, branchID string) ([]InventoryItem, error)

	// ListRecipes returns the global recipe list.
	ListRecipes(ctx context.Context) ([]Recipe, error)

	// UpdateStock overwrites one inventory row's stock level.
	UpdateStock(ctx context.Context, rowID int64, newStock float64) error

	// AppendSale appends one sale row.
	AppendSale(ctx context.Context, sale SaleRecord) error

	// ListSales returns all sale rows for a branch, oldest first.
	ListSales(ctx context.Context, branchID string) ([]SaleRecord, error)

	// BeginAttempt records a new sale attempt in its initial state.
	BeginAttempt(ctx context.Context, attempt SaleAttempt) error

	// AdvanceAttempt moves an attempt to a new state, replacing its detail.
	AdvanceAttempt(ctx context.Context, attemptID, state, detail string) error

	// ListUnresolvedAttempts returns attempts not in a clean terminal state.
	ListUnresolvedAttempts(ctx context.Context) ([]SaleAttempt, error)

	// ListSalesByAttempt returns the sale rows recorded under one attempt.
	ListSalesByAttempt(ctx context.Context, attemptID string) ([]SaleRecord, error)
}
