package sale

// AggregateRequirements collapses a cart into total required quantity per
// ingredient across ALL order lines. Two menu items sharing a raw ingredient
// must be checked jointly against one stock pool, so demand is summed here
// rather than per line.
func AggregateRequirements(lines []OrderLine) map[string]float64 {
	totals := make(map[string]float64)

	for _, line := range lines {
		for _, req := range line.Ingredients {
			totals[req.IngredientID] += req.QtyPerUnit * float64(line.Qty)
		}
	}

	return totals
}
