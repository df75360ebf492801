package menu

import (
	"context"

	"github.com/shopspring/decimal"

	"warungpos/internal/bom"
	"warungpos/internal/ledger"
)

// MenuItem is one sellable entry on the POS screen.
type MenuItem struct {
	MenuName       string          `json:"menu_name"`
	SellPrice      decimal.Decimal `json:"sell_price"`
	AvailableStock int             `json:"available_stock"`
	UnitCOGS       decimal.Decimal `json:"unit_cogs"`
}

type Service struct {
	store ledger.Store
}

func NewService(store ledger.Store) *Service {
	return &Service{store: store}
}

// GetAvailableMenu returns every recipe with its availability against the
// branch's current inventory. Recipes and inventory are loaded fresh per call.
func (s *Service) GetAvailableMenu(
	ctx context.Context,
	branchID string,
) ([]MenuItem, error) {

	recipes, err := s.store.ListRecipes(ctx)
	if err != nil {
		return nil, err
	}

	inventory, err := s.store.ListInventory(ctx, branchID)
	if err != nil {
		return nil, err
	}

	byIngredient := make(map[string]ledger.InventoryItem, len(inventory))
	for _, item := range inventory {
		byIngredient[item.IngredientID] = item
	}

	items := make([]MenuItem, 0, len(recipes))
	for _, recipe := range recipes {
		avail := ComputeAvailability(bom.Parse(recipe.Ingredients), byIngredient)

		items = append(items, MenuItem{
			MenuName:       recipe.MenuName,
			SellPrice:      recipe.SellPrice,
			AvailableStock: avail.AvailableStock,
			UnitCOGS:       avail.UnitCOGS,
		})
	}

	return items, nil
}
