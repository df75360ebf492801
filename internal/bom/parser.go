package bom

import (
	"strconv"
	"strings"
)

// Requirement is one ingredient consumed per unit sold.
type Requirement struct {
	IngredientID string  `json:"ingredient_id"`
	QtyPerUnit   float64 `json:"qty_per_unit"`
}

// Parse turns a recipe's ingredient specification string into structured
// requirements. The format is comma-separated "ingredient_id:qty" pairs,
// e.g. "milk:5, sugar:1.5".
//
// A malformed or missing quantity parses as 0 — the ingredient is still
// required, just with zero consumption. An empty string yields no
// requirements.
func Parse(spec string) []Requirement {
	if strings.TrimSpace(spec) == "" {
		return nil
	}

	pairs := strings.Split(spec, ",")
	reqs := make([]Requirement, 0, len(pairs))

	for _, pair := range pairs {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		id, qtyStr, _ := strings.Cut(pair, ":")
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}

		qty, err := strconv.ParseFloat(strings.TrimSpace(qtyStr), 64)
		if err != nil {
			qty = 0
		}

		reqs = append(reqs, Requirement{
			IngredientID: id,
			QtyPerUnit:   qty,
		})
	}

	return reqs
}
