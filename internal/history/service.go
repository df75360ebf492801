package history

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"warungpos/internal/expense"
	"warungpos/internal/ledger"
)

// Item is one entry in a branch's money movement feed: a sale (income) or an
// expense, merged into a single timeline.
type Item struct {
	Date        string          `json:"date"`
	Type        string          `json:"type"` // "income" or "expense"
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category,omitempty"`
}

type Service struct {
	store    ledger.Store
	expenses expense.Repository
}

func NewService(store ledger.Store, expenses expense.Repository) *Service {
	return &Service{store: store, expenses: expenses}
}

// GetHistory merges a branch's sale and expense rows, newest first.
func (s *Service) GetHistory(ctx context.Context, branchID string) ([]Item, error) {
	sales, err := s.store.ListSales(ctx, branchID)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenses.ListByBranch(ctx, branchID, "")
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(sales)+len(expenses))

	for _, sale := range sales {
		items = append(items, Item{
			Date:        sale.SoldAt.Format("2006-01-02 15:04"),
			Type:        "income",
			Description: sale.MenuName,
			Amount:      sale.TotalPrice,
		})
	}

	for _, e := range expenses {
		items = append(items, Item{
			Date:        e.SpentOn,
			Type:        "expense",
			Description: e.ItemName,
			Amount:      e.Amount,
			Category:    e.Category,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date > items[j].Date
	})

	return items, nil
}
