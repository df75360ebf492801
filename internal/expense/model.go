package expense

import "github.com/shopspring/decimal"

// Expense is one cash outflow recorded by a branch operator.
type Expense struct {
	ID       int64           `json:"id"`
	BranchID string          `json:"branch_id"`
	SpentOn  string          `json:"spent_on"` // YYYY-MM-DD
	ItemName string          `json:"item_name"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Note     string          `json:"note"`
}
