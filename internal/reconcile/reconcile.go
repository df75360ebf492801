package reconcile

import (
	"context"

	"warungpos/internal/ledger"
)

// Report pairs one unresolved sale attempt with the sale rows it managed to
// record, so an operator can compare recorded sales against stock deltas and
// repair the ledger by hand. The store has no cross-row transactions, so this
// job is the backstop for crashes and partial commits.
type Report struct {
	Attempt ledger.SaleAttempt  `json:"attempt"`
	Sales   []ledger.SaleRecord `json:"sales"`
}

type Job struct {
	store ledger.Store
}

func NewJob(store ledger.Store) *Job {
	return &Job{store: store}
}

// Run collects every attempt that never reached a clean terminal state.
func (j *Job) Run(ctx context.Context) ([]Report, error) {
	attempts, err := j.store.ListUnresolvedAttempts(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]Report, 0, len(attempts))

	for _, attempt := range attempts {
		sales, err := j.store.ListSalesByAttempt(ctx, attempt.ID)
		if err != nil {
			return nil, err
		}

		reports = append(reports, Report{
			Attempt: attempt,
			Sales:   sales,
		})
	}

	return reports, nil
}
