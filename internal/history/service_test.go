package history

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"warungpos/internal/expense"
	"warungpos/internal/ledger"
)

func TestGetHistory_MergesSalesAndExpensesNewestFirst(t *testing.T) {
	store := ledger.NewMemoryStore()
	expenses := expense.NewInMemoryRepository()

	_ = store.AppendSale(context.Background(), ledger.SaleRecord{
		AttemptID:  "a1",
		BranchID:   "branch-1",
		SoldAt:     time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC),
		MenuName:   "Latte",
		Qty:        1,
		TotalPrice: decimal.NewFromInt(25000),
	})

	_ = expenses.Add(context.Background(), &expense.Expense{
		BranchID: "branch-1",
		SpentOn:  "2026-08-29",
		ItemName: "milk restock",
		Amount:   decimal.NewFromInt(80000),
		Category: "ingredients",
	})

	service := NewService(store, expenses)

	items, err := service.GetHistory(context.Background(), "branch-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("expected 2 history items, got %d", len(items))
	}

	if items[0].Type != "income" || items[0].Description != "Latte" {
		t.Errorf("expected newest item to be the sale, got %+v", items[0])
	}

	if items[1].Type != "expense" || items[1].Category != "ingredients" {
		t.Errorf("expected second item to be the expense, got %+v", items[1])
	}
}

func TestGetHistory_IgnoresOtherBranches(t *testing.T) {
	store := ledger.NewMemoryStore()
	expenses := expense.NewInMemoryRepository()

	_ = store.AppendSale(context.Background(), ledger.SaleRecord{
		AttemptID: "a1",
		BranchID:  "branch-2",
		SoldAt:    time.Now(),
		MenuName:  "Latte",
	})

	service := NewService(store, expenses)

	items, err := service.GetHistory(context.Background(), "branch-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(items) != 0 {
		t.Errorf("expected empty history, got %+v", items)
	}
}
