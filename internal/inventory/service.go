package inventory

import (
	"context"
	"errors"

	"warungpos/internal/ledger"
)

var (
	ErrItemNotFound  = errors.New("inventory item not found in this branch")
	ErrNegativeStock = errors.New("adjustment would make stock negative")
)

type Service struct {
	store ledger.Store
}

func NewService(store ledger.Store) *Service {
	return &Service{store: store}
}

func (s *Service) List(
	ctx context.Context,
	branchID string,
) ([]ledger.InventoryItem, error) {
	return s.store.ListInventory(ctx, branchID)
}

// Restock adds delivered stock to one inventory row. The row must belong to
// the operator's branch, and stock can never be adjusted below zero.
func (s *Service) Restock(
	ctx context.Context,
	branchID string,
	rowID int64,
	addStock float64,
) (float64, error) {

	items, err := s.store.ListInventory(ctx, branchID)
	if err != nil {
		return 0, err
	}

	for _, item := range items {
		if item.RowID != rowID {
			continue
		}

		newStock := item.Stock + addStock
		if newStock < 0 {
			return 0, ErrNegativeStock
		}

		if err := s.store.UpdateStock(ctx, rowID, newStock); err != nil {
			return 0, err
		}
		return newStock, nil
	}

	return 0, ErrItemNotFound
}
