package expense

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrMissingFields = errors.New("item name and a positive amount are required")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// AddExpense records one expense, dated today.
func (s *Service) AddExpense(
	ctx context.Context,
	branchID, itemName string,
	amount decimal.Decimal,
	category, note string,
) (*Expense, error) {

	if itemName == "" || amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrMissingFields
	}

	expense := &Expense{
		BranchID: branchID,
		SpentOn:  time.Now().Format("2006-01-02"),
		ItemName: itemName,
		Amount:   amount,
		Category: category,
		Note:     note,
	}

	if err := s.repo.Add(ctx, expense); err != nil {
		return nil, err
	}

	return expense, nil
}

// ListExpenses returns a branch's expenses, optionally for a single date.
func (s *Service) ListExpenses(
	ctx context.Context,
	branchID, date string,
) ([]Expense, error) {
	return s.repo.ListByBranch(ctx, branchID, date)
}
