package ledger

import (
	"context"
	"errors"
	"sync"
	"time"
)

// MemoryStore is an in-memory Store used by tests and local development.
// The failure knobs let tests inject store errors at a specific call index
// (1-based; 0 disables).
type MemoryStore struct {
	mu sync.Mutex

	inventory []InventoryItem
	recipes   []Recipe
	sales     []SaleRecord
	attempts  map[string]*SaleAttempt
	nextRowID int64

	FailUpdateStockAt int
	FailAppendSaleAt  int
	updateStockCalls  int
	appendSaleCalls   int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		attempts:  make(map[string]*SaleAttempt),
		nextRowID: 1,
	}
}

// SeedInventory adds one inventory row and returns its row reference.
func (m *MemoryStore) SeedInventory(item InventoryItem) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	item.RowID = m.nextRowID
	m.nextRowID++
	m.inventory = append(m.inventory, item)
	return item.RowID
}

func (m *MemoryStore) SeedRecipe(recipe Recipe) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recipes = append(m.recipes, recipe)
}

func (m *MemoryStore) ListInventory(
	ctx context.Context,
	branchID string,
) ([]InventoryItem, error) {

	m.mu.Lock()
	defer m.mu.Unlock()

	var items []InventoryItem
	for _, item := range m.inventory {
		if item.BranchID == branchID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (m *MemoryStore) ListRecipes(ctx context.Context) ([]Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	recipes := make([]Recipe, len(m.recipes))
	copy(recipes, m.recipes)
	return recipes, nil
}

func (m *MemoryStore) UpdateStock(
	ctx context.Context,
	rowID int64,
	newStock float64,
) error {

	m.mu.Lock()
	defer m.mu.Unlock()

	m.updateStockCalls++
	if m.FailUpdateStockAt > 0 && m.updateStockCalls >= m.FailUpdateStockAt {
		return errors.New("injected stock write failure")
	}

	for i := range m.inventory {
		if m.inventory[i].RowID == rowID {
			m.inventory[i].Stock = newStock
			return nil
		}
	}
	return ErrRowNotFound
}

func (m *MemoryStore) AppendSale(ctx context.Context, sale SaleRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.appendSaleCalls++
	if m.FailAppendSaleAt > 0 && m.appendSaleCalls >= m.FailAppendSaleAt {
		return errors.New("injected sale append failure")
	}

	m.sales = append(m.sales, sale)
	return nil
}

func (m *MemoryStore) ListSales(
	ctx context.Context,
	branchID string,
) ([]SaleRecord, error) {

	m.mu.Lock()
	defer m.mu.Unlock()

	var sales []SaleRecord
	for _, s := range m.sales {
		if s.BranchID == branchID {
			sales = append(sales, s)
		}
	}
	return sales, nil
}

func (m *MemoryStore) ListSalesByAttempt(
	ctx context.Context,
	attemptID string,
) ([]SaleRecord, error) {

	m.mu.Lock()
	defer m.mu.Unlock()

	var sales []SaleRecord
	for _, s := range m.sales {
		if s.AttemptID == attemptID {
			sales = append(sales, s)
		}
	}
	return sales, nil
}

func (m *MemoryStore) BeginAttempt(
	ctx context.Context,
	attempt SaleAttempt,
) error {

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	attempt.CreatedAt = now
	attempt.UpdatedAt = now
	m.attempts[attempt.ID] = &attempt
	return nil
}

func (m *MemoryStore) AdvanceAttempt(
	ctx context.Context,
	attemptID, state, detail string,
) error {

	m.mu.Lock()
	defer m.mu.Unlock()

	attempt, ok := m.attempts[attemptID]
	if !ok {
		return errors.New("sale attempt not found")
	}

	attempt.State = state
	attempt.Detail = detail
	attempt.UpdatedAt = time.Now()
	return nil
}

func (m *MemoryStore) ListUnresolvedAttempts(
	ctx context.Context,
) ([]SaleAttempt, error) {

	m.mu.Lock()
	defer m.mu.Unlock()

	var attempts []SaleAttempt
	for _, a := range m.attempts {
		if !a.Resolved() {
			attempts = append(attempts, *a)
		}
	}
	return attempts, nil
}

// AttemptState returns the recorded state for one attempt (test helper).
func (m *MemoryStore) AttemptState(attemptID string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	attempt, ok := m.attempts[attemptID]
	if !ok {
		return "", false
	}
	return attempt.State, true
}
