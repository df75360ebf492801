package menu

import (
	"math"

	"github.com/shopspring/decimal"

	"warungpos/internal/bom"
	"warungpos/internal/ledger"
)

// Availability is what one recipe can yield from a branch's current inventory.
type Availability struct {
	AvailableStock int
	UnitCOGS       decimal.Decimal
}

// ComputeAvailability derives the maximum sellable quantity of one recipe and
// its per-unit ingredient cost from an inventory snapshot keyed by ingredient id.
//
// A recipe with no requirements yields 0 — a menu item must declare at least
// one consumed ingredient to be sellable. A requirement whose ingredient is
// missing from the branch, or whose per-unit quantity is not positive, also
// caps availability at 0.
func ComputeAvailability(
	reqs []bom.Requirement,
	inventory map[string]ledger.InventoryItem,
) Availability {

	unitCOGS := decimal.Zero
	available := -1 // sentinel: no requirement has bounded it yet

	for _, req := range reqs {
		item, ok := inventory[req.IngredientID]
		if !ok {
			return Availability{AvailableStock: 0, UnitCOGS: decimal.Zero}
		}

		unitCOGS = unitCOGS.Add(
			item.CostPerUnit.Mul(decimal.NewFromFloat(req.QtyPerUnit)),
		)

		if req.QtyPerUnit <= 0 {
			// zero consumption can never bound a positive yield
			available = 0
			continue
		}

		candidate := int(math.Floor(item.Stock / req.QtyPerUnit))
		if available == -1 || candidate < available {
			available = candidate
		}
	}

	if available < 0 {
		available = 0
	}

	return Availability{AvailableStock: available, UnitCOGS: unitCOGS}
}
