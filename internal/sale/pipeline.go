package sale

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"warungpos/internal/ledger"
)

// Totals is the aggregate result of one committed cart.
type Totals struct {
	TotalPrice  decimal.Decimal `json:"total_price"`
	TotalProfit decimal.Decimal `json:"total_profit"`
}

// applyDeltas is commit phase 1: write every validated stock level to the
// store, in validation order. It returns the deltas that were applied before
// any failure; stock updates must land before any sale record is appended.
func applyDeltas(
	ctx context.Context,
	store ledger.Store,
	deltas []StockDelta,
) ([]StockDelta, error) {

	for i, delta := range deltas {
		if err := store.UpdateStock(ctx, delta.RowID, delta.NewStock); err != nil {
			return deltas[:i], err
		}
	}

	return deltas, nil
}

// appendSales is commit phase 2: append one sale record per order line and
// accumulate cart totals. Prices and unit costs come from the order lines
// captured at cart build, never from current inventory.
func appendSales(
	ctx context.Context,
	store ledger.Store,
	attemptID, branchID string,
	soldAt time.Time,
	lines []OrderLine,
) (Totals, int, error) {

	totals := Totals{
		TotalPrice:  decimal.Zero,
		TotalProfit: decimal.Zero,
	}

	for i, line := range lines {
		qty := decimal.NewFromInt(int64(line.Qty))
		totalPrice := line.SellPrice.Mul(qty)
		totalCOGS := line.UnitCOGS.Mul(qty)
		profit := totalPrice.Sub(totalCOGS)

		record := ledger.SaleRecord{
			AttemptID:  attemptID,
			BranchID:   branchID,
			SoldAt:     soldAt,
			MenuName:   line.MenuName,
			Qty:        line.Qty,
			TotalPrice: totalPrice,
			TotalCOGS:  totalCOGS,
			Profit:     profit,
		}

		if err := store.AppendSale(ctx, record); err != nil {
			return totals, i, err
		}

		totals.TotalPrice = totals.TotalPrice.Add(totalPrice)
		totals.TotalProfit = totals.TotalProfit.Add(profit)
	}

	return totals, len(lines), nil
}
