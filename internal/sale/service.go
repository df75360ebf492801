package sale

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"warungpos/internal/ledger"
)

type Service struct {
	store ledger.Store

	// one mutex per branch: concurrent checkouts against the same inventory
	// would otherwise validate against independent snapshots and oversubscribe
	// shared ingredients
	locks sync.Map
}

func NewService(store ledger.Store) *Service {
	return &Service{store: store}
}

func (s *Service) branchLock(branchID string) *sync.Mutex {
	lock, _ := s.locks.LoadOrStore(branchID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// ProcessSale runs one checkout as a single logical operation: build order
// lines, validate stock reservation, commit stock deltas, append sale records.
//
// Validation failures return before any mutation. A store failure after the
// first stock delta has landed returns a *PartialCommitError and leaves the
// attempt in PARTIALLY_COMMITTED for the reconcile job; there is no automatic
// rollback.
func (s *Service) ProcessSale(
	ctx context.Context,
	branchID string,
	cart []CartItem,
) (Totals, error) {

	lock := s.branchLock(branchID)
	lock.Lock()
	defer lock.Unlock()

	attemptID := uuid.New().String()

	if err := s.store.BeginAttempt(ctx, ledger.SaleAttempt{
		ID:       attemptID,
		BranchID: branchID,
		State:    ledger.AttemptValidating,
	}); err != nil {
		return Totals{}, err
	}

	deltas, lines, err := s.validate(ctx, branchID, cart)
	if err != nil {
		s.advance(ctx, attemptID, ledger.AttemptRejected, err.Error())
		return Totals{}, err
	}

	return s.commit(ctx, attemptID, branchID, lines, deltas)
}

// validate loads fresh snapshots, builds order lines and reserves stock.
// Nothing is mutated on this path.
func (s *Service) validate(
	ctx context.Context,
	branchID string,
	cart []CartItem,
) ([]StockDelta, []OrderLine, error) {

	recipeList, err := s.store.ListRecipes(ctx)
	if err != nil {
		return nil, nil, err
	}

	recipes := make(map[string]ledger.Recipe, len(recipeList))
	for _, r := range recipeList {
		recipes[r.MenuName] = r
	}

	inventoryList, err := s.store.ListInventory(ctx, branchID)
	if err != nil {
		return nil, nil, err
	}

	inventory := make(map[string]ledger.InventoryItem, len(inventoryList))
	for _, item := range inventoryList {
		inventory[item.IngredientID] = item
	}

	lines, err := BuildOrderLines(cart, recipes, inventory)
	if err != nil {
		return nil, nil, err
	}

	deltas, err := ReserveStock(lines, inventory)
	if err != nil {
		return nil, nil, err
	}

	return deltas, lines, nil
}

// commit applies stock deltas, then appends sale records.
func (s *Service) commit(
	ctx context.Context,
	attemptID, branchID string,
	lines []OrderLine,
	deltas []StockDelta,
) (Totals, error) {

	s.advance(ctx, attemptID, ledger.AttemptCommittingStock,
		fmt.Sprintf("%d stock deltas to apply", len(deltas)))

	applied, err := applyDeltas(ctx, s.store, deltas)
	if err != nil {
		if len(applied) == 0 {
			// Nothing confirmed written; the cart was rejected cleanly.
			s.advance(ctx, attemptID, ledger.AttemptRejected,
				fmt.Sprintf("stock write failed before any delta landed: %v", err))
			return Totals{}, err
		}
		return Totals{}, s.partialCommit(ctx, attemptID, applied, 0, err)
	}

	s.advance(ctx, attemptID, ledger.AttemptCommittingSales,
		fmt.Sprintf("%d order lines to record", len(lines)))

	totals, recorded, err := appendSales(
		ctx, s.store, attemptID, branchID, time.Now(), lines,
	)
	if err != nil {
		return Totals{}, s.partialCommit(ctx, attemptID, applied, recorded, err)
	}

	s.advance(ctx, attemptID, ledger.AttemptCommitted, "")
	return totals, nil
}

// partialCommit records the non-clean terminal state with enough detail for
// manual reconciliation: which deltas landed and how many sales were appended.
func (s *Service) partialCommit(
	ctx context.Context,
	attemptID string,
	applied []StockDelta,
	recorded int,
	cause error,
) error {

	err := &PartialCommitError{
		AttemptID:     attemptID,
		AppliedDeltas: applied,
		RecordedSales: recorded,
		Err:           cause,
	}

	log.Printf("PARTIAL COMMIT attempt=%s deltas=%+v recorded_sales=%d cause=%v",
		attemptID, applied, recorded, cause)

	s.advance(ctx, attemptID, ledger.AttemptPartiallyCommitted, err.Error())
	return err
}

// advance moves the attempt row forward; a failed bookkeeping write must not
// mask the sale outcome, so it is only logged.
func (s *Service) advance(ctx context.Context, attemptID, state, detail string) {
	if err := s.store.AdvanceAttempt(ctx, attemptID, state, detail); err != nil {
		log.Printf("failed to advance sale attempt %s to %s: %v", attemptID, state, err)
	}
}
