package sale

import (
	"fmt"

	"github.com/shopspring/decimal"

	"warungpos/internal/bom"
	"warungpos/internal/ledger"
	"warungpos/internal/menu"
)

// CartItem is what the POS client submits: a menu name and a quantity.
// Prices and ingredient requirements are resolved server-side so a client
// can never tamper with them.
type CartItem struct {
	MenuName string `json:"menu_name" binding:"required"`
	Qty      int    `json:"qty" binding:"required"`
}

// OrderLine is one cart entry with its price, unit cost and BOM snapshot
// captured at cart-build time. Totals are always computed from these captured
// values, never re-derived from inventory after validation.
type OrderLine struct {
	MenuName    string
	Qty         int
	SellPrice   decimal.Decimal
	UnitCOGS    decimal.Decimal
	Ingredients []bom.Requirement
}

// BuildOrderLines resolves cart items against the recipe list and the branch
// inventory snapshot, producing order lines in cart order.
func BuildOrderLines(
	cart []CartItem,
	recipes map[string]ledger.Recipe,
	inventory map[string]ledger.InventoryItem,
) ([]OrderLine, error) {

	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	lines := make([]OrderLine, 0, len(cart))

	for _, item := range cart {
		if item.Qty <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidQty, item.MenuName)
		}

		recipe, ok := recipes[item.MenuName]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownMenuItem, item.MenuName)
		}

		reqs := bom.Parse(recipe.Ingredients)
		avail := menu.ComputeAvailability(reqs, inventory)

		lines = append(lines, OrderLine{
			MenuName:    recipe.MenuName,
			Qty:         item.Qty,
			SellPrice:   recipe.SellPrice,
			UnitCOGS:    avail.UnitCOGS,
			Ingredients: reqs,
		})
	}

	return lines, nil
}
