package sale

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"warungpos/internal/bom"
	"warungpos/internal/ledger"
)

func milkOnlyInventory(stock float64) map[string]ledger.InventoryItem {
	return map[string]ledger.InventoryItem{
		"milk": {
			RowID:        7,
			IngredientID: "milk",
			Name:         "milk",
			Unit:         "ml",
			CostPerUnit:  decimal.NewFromInt(1),
			Stock:        stock,
		},
	}
}

func TestReserveStock_SharedIngredientJointlyRejected(t *testing.T) {
	// Latte needs 5, Cappuccino needs 6: each fits alone, together they
	// exceed the single 10-unit milk pool
	lines := []OrderLine{
		{MenuName: "Latte", Qty: 1, Ingredients: bom.Parse("milk:5")},
		{MenuName: "Cappuccino", Qty: 1, Ingredients: bom.Parse("milk:6")},
	}

	_, err := ReserveStock(lines, milkOnlyInventory(10))

	var insufficient *InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}

	if insufficient.IngredientName != "milk" {
		t.Errorf("expected failure on milk, got %q", insufficient.IngredientName)
	}

	if insufficient.Available != 10 {
		t.Errorf("expected available 10, got %v", insufficient.Available)
	}

	if insufficient.Required != 11 {
		t.Errorf("expected required 11, got %v", insufficient.Required)
	}
}

func TestReserveStock_ExactFit(t *testing.T) {
	lines := []OrderLine{
		{MenuName: "Latte", Qty: 2, Ingredients: bom.Parse("milk:5")},
	}

	deltas, err := ReserveStock(lines, milkOnlyInventory(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(deltas) != 1 {
		t.Fatalf("expected 1 delta, got %d", len(deltas))
	}

	if deltas[0].NewStock != 0 {
		t.Errorf("expected new stock 0, got %v", deltas[0].NewStock)
	}

	if deltas[0].RowID != 7 {
		t.Errorf("expected row reference 7, got %d", deltas[0].RowID)
	}
}

func TestReserveStock_SharedIngredientMergesIntoOneDelta(t *testing.T) {
	lines := []OrderLine{
		{MenuName: "Latte", Qty: 1, Ingredients: bom.Parse("milk:5")},
		{MenuName: "Babyccino", Qty: 1, Ingredients: bom.Parse("milk:3")},
	}

	deltas, err := ReserveStock(lines, milkOnlyInventory(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// one provisional delta per ingredient, updated as later lines consume it
	if len(deltas) != 1 {
		t.Fatalf("expected 1 delta for the shared ingredient, got %d", len(deltas))
	}

	if deltas[0].NewStock != 2 {
		t.Errorf("expected new stock 2, got %v", deltas[0].NewStock)
	}
}

func TestReserveStock_MissingIngredient(t *testing.T) {
	lines := []OrderLine{
		{MenuName: "Matcha Latte", Qty: 1, Ingredients: bom.Parse("matcha:2")},
	}

	_, err := ReserveStock(lines, milkOnlyInventory(10))

	var missing *MissingIngredientError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingIngredientError, got %v", err)
	}

	if missing.IngredientID != "matcha" {
		t.Errorf("expected missing ingredient 'matcha', got %q", missing.IngredientID)
	}
}

func TestReserveStock_ValidationDoesNotMutateInventory(t *testing.T) {
	inventory := milkOnlyInventory(10)

	lines := []OrderLine{
		{MenuName: "Latte", Qty: 1, Ingredients: bom.Parse("milk:5")},
	}

	if _, err := ReserveStock(lines, inventory); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if inventory["milk"].Stock != 10 {
		t.Errorf("validation mutated the snapshot: stock %v", inventory["milk"].Stock)
	}
}
