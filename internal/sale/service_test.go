package sale

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"warungpos/internal/ledger"
)

const testBranch = "branch-1"

func seedCoffeeShop(t *testing.T, milkStock float64) *ledger.MemoryStore {
	t.Helper()

	store := ledger.NewMemoryStore()

	store.SeedInventory(ledger.InventoryItem{
		BranchID:     testBranch,
		IngredientID: "milk",
		Name:         "milk",
		Unit:         "ml",
		CostPerUnit:  decimal.NewFromInt(1000),
		Stock:        milkStock,
	})

	store.SeedRecipe(ledger.Recipe{
		MenuName:    "Latte",
		SellPrice:   decimal.NewFromInt(25000),
		Ingredients: "milk:5",
	})
	store.SeedRecipe(ledger.Recipe{
		MenuName:    "Cappuccino",
		SellPrice:   decimal.NewFromInt(28000),
		Ingredients: "milk:6",
	})

	return store
}

func branchStock(t *testing.T, store *ledger.MemoryStore, ingredientID string) float64 {
	t.Helper()

	items, err := store.ListInventory(context.Background(), testBranch)
	if err != nil {
		t.Fatalf("list inventory: %v", err)
	}
	for _, item := range items {
		if item.IngredientID == ingredientID {
			return item.Stock
		}
	}
	t.Fatalf("ingredient %q not found", ingredientID)
	return 0
}

func TestProcessSale_SharedIngredientRejectedWithoutMutation(t *testing.T) {
	store := seedCoffeeShop(t, 10)
	service := NewService(store)

	_, err := service.ProcessSale(context.Background(), testBranch, []CartItem{
		{MenuName: "Latte", Qty: 1},
		{MenuName: "Cappuccino", Qty: 1},
	})

	var insufficient *InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}

	if insufficient.IngredientName != "milk" ||
		insufficient.Available != 10 ||
		insufficient.Required != 11 {
		t.Errorf("unexpected diagnostic: %+v", insufficient)
	}

	if got := branchStock(t, store, "milk"); got != 10 {
		t.Errorf("rejection mutated inventory: milk stock %v", got)
	}

	sales, _ := store.ListSales(context.Background(), testBranch)
	if len(sales) != 0 {
		t.Errorf("rejection appended %d sale records", len(sales))
	}

	// a rejection is a clean terminal state
	unresolved, _ := store.ListUnresolvedAttempts(context.Background())
	if len(unresolved) != 0 {
		t.Errorf("expected no unresolved attempts, got %d", len(unresolved))
	}
}

func TestProcessSale_SuccessConservesStockAndTotals(t *testing.T) {
	store := seedCoffeeShop(t, 10)
	service := NewService(store)

	totals, err := service.ProcessSale(context.Background(), testBranch, []CartItem{
		{MenuName: "Latte", Qty: 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 2 lattes consume exactly the 10 units of milk
	if got := branchStock(t, store, "milk"); got != 0 {
		t.Errorf("expected milk stock 0, got %v", got)
	}

	wantPrice := decimal.NewFromInt(50000)
	if !totals.TotalPrice.Equal(wantPrice) {
		t.Errorf("expected total price %s, got %s", wantPrice, totals.TotalPrice)
	}

	// unit COGS = 5 ml * 1000 = 5000, so 2 units cost 10000
	wantProfit := decimal.NewFromInt(40000)
	if !totals.TotalProfit.Equal(wantProfit) {
		t.Errorf("expected total profit %s, got %s", wantProfit, totals.TotalProfit)
	}

	sales, _ := store.ListSales(context.Background(), testBranch)
	if len(sales) != 1 {
		t.Fatalf("expected 1 sale record, got %d", len(sales))
	}

	rec := sales[0]
	if !rec.TotalPrice.Sub(rec.Profit).Equal(rec.TotalCOGS) {
		t.Errorf("profit arithmetic broken: price=%s profit=%s cogs=%s",
			rec.TotalPrice, rec.Profit, rec.TotalCOGS)
	}
}

func TestProcessSale_PerLineRecordsAndAggregateTotals(t *testing.T) {
	store := seedCoffeeShop(t, 100)
	service := NewService(store)

	totals, err := service.ProcessSale(context.Background(), testBranch, []CartItem{
		{MenuName: "Latte", Qty: 1},
		{MenuName: "Cappuccino", Qty: 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sales, _ := store.ListSales(context.Background(), testBranch)
	if len(sales) != 2 {
		t.Fatalf("expected one sale record per order line, got %d", len(sales))
	}

	sumPrice := decimal.Zero
	sumProfit := decimal.Zero
	for _, rec := range sales {
		sumPrice = sumPrice.Add(rec.TotalPrice)
		sumProfit = sumProfit.Add(rec.Profit)
	}

	if !totals.TotalPrice.Equal(sumPrice) {
		t.Errorf("cart total %s != sum of lines %s", totals.TotalPrice, sumPrice)
	}
	if !totals.TotalProfit.Equal(sumProfit) {
		t.Errorf("cart profit %s != sum of lines %s", totals.TotalProfit, sumProfit)
	}

	// 1*5 + 2*6 = 17 units of milk consumed
	if got := branchStock(t, store, "milk"); got != 83 {
		t.Errorf("expected milk stock 83, got %v", got)
	}
}

func TestProcessSale_UnknownMenuItem(t *testing.T) {
	store := seedCoffeeShop(t, 10)
	service := NewService(store)

	_, err := service.ProcessSale(context.Background(), testBranch, []CartItem{
		{MenuName: "Flat White", Qty: 1},
	})

	if !errors.Is(err, ErrUnknownMenuItem) {
		t.Fatalf("expected ErrUnknownMenuItem, got %v", err)
	}

	if got := branchStock(t, store, "milk"); got != 10 {
		t.Errorf("rejection mutated inventory: milk stock %v", got)
	}
}

func TestProcessSale_StockWriteFailureMidPhaseOneIsPartialCommit(t *testing.T) {
	store := seedCoffeeShop(t, 100)
	store.SeedInventory(ledger.InventoryItem{
		BranchID:     testBranch,
		IngredientID: "choco",
		Name:         "chocolate syrup",
		Unit:         "ml",
		CostPerUnit:  decimal.NewFromInt(500),
		Stock:        50,
	})
	store.SeedRecipe(ledger.Recipe{
		MenuName:    "Mocha",
		SellPrice:   decimal.NewFromInt(30000),
		Ingredients: "milk:5, choco:10",
	})

	// first stock write (milk) lands, second (choco) fails
	store.FailUpdateStockAt = 2

	service := NewService(store)

	_, err := service.ProcessSale(context.Background(), testBranch, []CartItem{
		{MenuName: "Mocha", Qty: 1},
	})

	var partial *PartialCommitError
	if !errors.As(err, &partial) {
		t.Fatalf("expected PartialCommitError, got %v", err)
	}

	if len(partial.AppliedDeltas) != 1 {
		t.Errorf("expected 1 applied delta, got %d", len(partial.AppliedDeltas))
	}

	if partial.RecordedSales != 0 {
		t.Errorf("expected no sale records, got %d", partial.RecordedSales)
	}

	unresolved, _ := store.ListUnresolvedAttempts(context.Background())
	if len(unresolved) != 1 {
		t.Fatalf("expected 1 unresolved attempt, got %d", len(unresolved))
	}
	if unresolved[0].State != ledger.AttemptPartiallyCommitted {
		t.Errorf("expected state %s, got %s",
			ledger.AttemptPartiallyCommitted, unresolved[0].State)
	}
}

func TestProcessSale_FirstStockWriteFailureIsCleanRejection(t *testing.T) {
	store := seedCoffeeShop(t, 10)
	store.FailUpdateStockAt = 1

	service := NewService(store)

	_, err := service.ProcessSale(context.Background(), testBranch, []CartItem{
		{MenuName: "Latte", Qty: 1},
	})
	if err == nil {
		t.Fatal("expected error")
	}

	var partial *PartialCommitError
	if errors.As(err, &partial) {
		t.Fatalf("no delta landed, should not be a partial commit: %v", err)
	}

	if got := branchStock(t, store, "milk"); got != 10 {
		t.Errorf("expected milk stock 10, got %v", got)
	}

	unresolved, _ := store.ListUnresolvedAttempts(context.Background())
	if len(unresolved) != 0 {
		t.Errorf("expected no unresolved attempts, got %d", len(unresolved))
	}
}

func TestProcessSale_SaleAppendFailureIsPartialCommit(t *testing.T) {
	store := seedCoffeeShop(t, 10)
	store.FailAppendSaleAt = 1

	service := NewService(store)

	_, err := service.ProcessSale(context.Background(), testBranch, []CartItem{
		{MenuName: "Latte", Qty: 1},
	})

	var partial *PartialCommitError
	if !errors.As(err, &partial) {
		t.Fatalf("expected PartialCommitError, got %v", err)
	}

	// stock was already consumed, and stays consumed: no automatic rollback
	if got := branchStock(t, store, "milk"); got != 5 {
		t.Errorf("expected milk stock 5, got %v", got)
	}
}

func TestProcessSale_ConcurrentCheckoutsSerialized(t *testing.T) {
	// stock covers exactly one latte: of two concurrent checkouts, exactly
	// one may win
	store := seedCoffeeShop(t, 5)
	service := NewService(store)

	var wg sync.WaitGroup
	results := make(chan error, 2)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.ProcessSale(context.Background(), testBranch, []CartItem{
				{MenuName: "Latte", Qty: 1},
			})
			results <- err
		}()
	}

	wg.Wait()
	close(results)

	var successes, rejections int
	for err := range results {
		if err == nil {
			successes++
			continue
		}
		var insufficient *InsufficientStockError
		if errors.As(err, &insufficient) {
			rejections++
		} else {
			t.Errorf("unexpected error: %v", err)
		}
	}

	if successes != 1 || rejections != 1 {
		t.Errorf("expected exactly one success and one rejection, got %d/%d",
			successes, rejections)
	}

	if got := branchStock(t, store, "milk"); got != 0 {
		t.Errorf("expected milk stock 0, got %v", got)
	}
}
