package expense

import (
	"context"
	"sync"
)

type InMemoryRepository struct {
	mu       sync.Mutex
	expenses []Expense
	nextID   int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Add(ctx context.Context, expense *Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	expense.ID = r.nextID
	r.nextID++
	r.expenses = append(r.expenses, *expense)
	return nil
}

func (r *InMemoryRepository) ListByBranch(
	ctx context.Context,
	branchID, date string,
) ([]Expense, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Expense
	for _, e := range r.expenses {
		if e.BranchID != branchID {
			continue
		}
		if date != "" && e.SpentOn != date {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
