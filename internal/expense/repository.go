package expense

import "context"

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	Add(ctx context.Context, expense *Expense) error
	ListByBranch(ctx context.Context, branchID, date string) ([]Expense, error)
}
