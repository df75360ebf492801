package sale

import "warungpos/internal/ledger"

// StockDelta is a validated, not-yet-applied change to one ingredient's stock
// level. Computed during validation, applied during commit, then discarded.
type StockDelta struct {
	IngredientID string
	RowID        int64
	NewStock     float64
}

// ReserveStock checks every order line against the inventory snapshot and
// returns the full set of stock deltas, or a single explanatory failure.
// Validation itself never mutates anything.
//
// Lines are walked in cart order. Each ingredient's running balance starts at
// its observed stock and is decremented as earlier lines reserve it, so two
// lines competing for the same ingredient are checked against the remaining
// balance, not the original balance twice. The first insufficiency terminates
// validation.
func ReserveStock(
	lines []OrderLine,
	inventory map[string]ledger.InventoryItem,
) ([]StockDelta, error) {

	totals := AggregateRequirements(lines)

	available := make(map[string]float64)
	deltaIndex := make(map[string]int)
	var deltas []StockDelta

	for _, line := range lines {
		for _, req := range line.Ingredients {
			item, ok := inventory[req.IngredientID]
			if !ok {
				return nil, &MissingIngredientError{IngredientID: req.IngredientID}
			}

			balance, seen := available[req.IngredientID]
			if !seen {
				balance = item.Stock
			}

			required := req.QtyPerUnit * float64(line.Qty)
			if required > balance {
				// Report the whole cart's demand against the stock observed
				// at validation time, not just this line's slice of it.
				return nil, &InsufficientStockError{
					IngredientName: item.Name,
					Available:      item.Stock,
					Required:       totals[req.IngredientID],
				}
			}

			balance -= required
			available[req.IngredientID] = balance

			if idx, ok := deltaIndex[req.IngredientID]; ok {
				deltas[idx].NewStock = balance
			} else {
				deltaIndex[req.IngredientID] = len(deltas)
				deltas = append(deltas, StockDelta{
					IngredientID: req.IngredientID,
					RowID:        item.RowID,
					NewStock:     balance,
				})
			}
		}
	}

	return deltas, nil
}
