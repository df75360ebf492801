package expense

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestAddExpense_RoundTrip(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)

	added, err := service.AddExpense(
		context.Background(),
		"branch-1",
		"gas refill",
		decimal.NewFromInt(150000),
		"utilities",
		"monthly",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if added.ID == 0 {
		t.Errorf("expected ID to be set")
	}

	expenses, err := service.ListExpenses(context.Background(), "branch-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(expenses) != 1 {
		t.Fatalf("expected 1 expense, got %d", len(expenses))
	}

	if expenses[0].ItemName != "gas refill" {
		t.Errorf("unexpected item name %q", expenses[0].ItemName)
	}
}

func TestAddExpense_RejectsMissingFields(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	_, err := service.AddExpense(
		context.Background(),
		"branch-1",
		"",
		decimal.NewFromInt(100),
		"", "",
	)
	if !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}

	_, err = service.AddExpense(
		context.Background(),
		"branch-1",
		"ice",
		decimal.Zero,
		"", "",
	)
	if !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields for zero amount, got %v", err)
	}
}

func TestListExpenses_FiltersOtherBranches(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)

	_, _ = service.AddExpense(context.Background(), "branch-1", "ice", decimal.NewFromInt(20000), "", "")
	_, _ = service.AddExpense(context.Background(), "branch-2", "cups", decimal.NewFromInt(50000), "", "")

	expenses, err := service.ListExpenses(context.Background(), "branch-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(expenses) != 1 || expenses[0].BranchID != "branch-1" {
		t.Errorf("expected only branch-1 expenses, got %+v", expenses)
	}
}
