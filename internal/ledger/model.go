package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem is a read-time snapshot of one inventory row. The store owns
// the authoritative copy; RowID is the opaque handle used for stock updates.
type InventoryItem struct {
	RowID        int64           `json:"row_id"`
	BranchID     string          `json:"branch_id"`
	IngredientID string          `json:"ingredient_id"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	CostPerUnit  decimal.Decimal `json:"cost_per_unit"`
	Stock        float64         `json:"stock"`
}

// Recipe is immutable reference data. Ingredients holds the raw BOM
// specification string ("milk:5, sugar:1.5"); parsing is the bom package's job.
type Recipe struct {
	MenuName    string          `json:"menu_name"`
	SellPrice   decimal.Decimal `json:"sell_price"`
	Ingredients string          `json:"ingredients"`
}

// SaleRecord is one append-only sale row, created exactly once per order line
// per successful commit.
type SaleRecord struct {
	AttemptID  string          `json:"attempt_id"`
	BranchID   string          `json:"branch_id"`
	SoldAt     time.Time       `json:"sold_at"`
	MenuName   string          `json:"menu_name"`
	Qty        int             `json:"qty"`
	TotalPrice decimal.Decimal `json:"total_price"`
	TotalCOGS  decimal.Decimal `json:"total_cogs"`
	Profit     decimal.Decimal `json:"profit"`
}

// Sale attempt states, advanced as a checkout moves through the pipeline.
// Rejected and Committed are clean terminal states; PartiallyCommitted is a
// terminal error state that the reconcile job surfaces for operator review.
const (
	AttemptValidating         = "VALIDATING"
	AttemptRejected           = "REJECTED"
	AttemptCommittingStock    = "COMMITTING_STOCK"
	AttemptPartiallyCommitted = "PARTIALLY_COMMITTED"
	AttemptCommittingSales    = "COMMITTING_SALES"
	AttemptCommitted          = "COMMITTED"
)

// SaleAttempt is the saga row recorded per checkout call. Its ID is the
// idempotency token stamped onto every SaleRecord of that checkout.
type SaleAttempt struct {
	ID        string    `json:"id"`
	BranchID  string    `json:"branch_id"`
	State     string    `json:"state"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Resolved reports whether the attempt reached a clean terminal state.
func (a SaleAttempt) Resolved() bool {
	return a.State == AttemptRejected || a.State == AttemptCommitted
}
