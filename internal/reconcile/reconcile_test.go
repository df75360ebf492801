package reconcile

import (
	"context"
	"testing"
	"time"

	"warungpos/internal/ledger"
)

func TestRun_ReportsUnresolvedAttemptsWithTheirSales(t *testing.T) {
	store := ledger.NewMemoryStore()
	ctx := context.Background()

	_ = store.BeginAttempt(ctx, ledger.SaleAttempt{
		ID:       "stuck-1",
		BranchID: "branch-1",
		State:    ledger.AttemptValidating,
	})
	_ = store.AdvanceAttempt(ctx, "stuck-1", ledger.AttemptPartiallyCommitted,
		"1 stock deltas applied")

	_ = store.AppendSale(ctx, ledger.SaleRecord{
		AttemptID: "stuck-1",
		BranchID:  "branch-1",
		SoldAt:    time.Now(),
		MenuName:  "Latte",
		Qty:       1,
	})

	_ = store.BeginAttempt(ctx, ledger.SaleAttempt{
		ID:       "done-1",
		BranchID: "branch-1",
		State:    ledger.AttemptValidating,
	})
	_ = store.AdvanceAttempt(ctx, "done-1", ledger.AttemptCommitted, "")

	reports, err := NewJob(store).Run(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}

	if reports[0].Attempt.ID != "stuck-1" {
		t.Errorf("expected attempt stuck-1, got %s", reports[0].Attempt.ID)
	}

	if len(reports[0].Sales) != 1 || reports[0].Sales[0].MenuName != "Latte" {
		t.Errorf("expected the attempt's recorded sale, got %+v", reports[0].Sales)
	}
}

func TestRun_CleanLedger(t *testing.T) {
	reports, err := NewJob(ledger.NewMemoryStore()).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(reports) != 0 {
		t.Errorf("expected no reports, got %d", len(reports))
	}
}
