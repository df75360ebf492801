package ledger

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// --------------------------------------------------
// INVENTORY
// --------------------------------------------------

func (s *PostgresStore) ListInventory(
	ctx context.Context,
	branchID string,
) ([]InventoryItem, error) {

	rows, err := s.db.Query(ctx, `
		SELECT id, branch_id, ingredient_id, name, unit, cost_per_unit::text, stock
		FROM inventory
		WHERE branch_id = $1
		ORDER BY id
	`, branchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []InventoryItem

	for rows.Next() {
		var item InventoryItem
		var cost string

		if err := rows.Scan(
			&item.RowID,
			&item.BranchID,
			&item.IngredientID,
			&item.Name,
			&item.Unit,
			&cost,
			&item.Stock,
		); err != nil {
			return nil, err
		}

		item.CostPerUnit, err = decimal.NewFromString(cost)
		if err != nil {
			return nil, fmt.Errorf("inventory row %d: bad cost_per_unit %q: %w",
				item.RowID, cost, err)
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

func (s *PostgresStore) UpdateStock(
	ctx context.Context,
	rowID int64,
	newStock float64,
) error {

	cmd, err := s.db.Exec(ctx, `
		UPDATE inventory
		SET stock = $1
		WHERE id = $2
	`, newStock, rowID)

	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrRowNotFound
	}

	return nil
}

// --------------------------------------------------
// RECIPES
// --------------------------------------------------

func (s *PostgresStore) ListRecipes(ctx context.Context) ([]Recipe, error) {
	rows, err := s.db.Query(ctx, `
		SELECT menu_name, sell_price::text, ingredients
		FROM recipes
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []Recipe

	for rows.Next() {
		var r Recipe
		var price string

		if err := rows.Scan(&r.MenuName, &price, &r.Ingredients); err != nil {
			return nil, err
		}

		r.SellPrice, err = decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("recipe %q: bad sell_price %q: %w",
				r.MenuName, price, err)
		}

		recipes = append(recipes, r)
	}

	return recipes, rows.Err()
}

// --------------------------------------------------
// SALES (APPEND-ONLY)
// --------------------------------------------------

func (s *PostgresStore) AppendSale(ctx context.Context, sale SaleRecord) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO sales (
			attempt_id, branch_id, sold_at, menu_name, qty,
			total_price, total_cogs, profit
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		sale.AttemptID,
		sale.BranchID,
		sale.SoldAt,
		sale.MenuName,
		sale.Qty,
		sale.TotalPrice.String(),
		sale.TotalCOGS.String(),
		sale.Profit.String(),
	)
	return err
}

func (s *PostgresStore) ListSales(
	ctx context.Context,
	branchID string,
) ([]SaleRecord, error) {

	rows, err := s.db.Query(ctx, `
		SELECT attempt_id, branch_id, sold_at, menu_name, qty,
		       total_price::text, total_cogs::text, profit::text
		FROM sales
		WHERE branch_id = $1
		ORDER BY id
	`, branchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSales(rows)
}

func (s *PostgresStore) ListSalesByAttempt(
	ctx context.Context,
	attemptID string,
) ([]SaleRecord, error) {

	rows, err := s.db.Query(ctx, `
		SELECT attempt_id, branch_id, sold_at, menu_name, qty,
		       total_price::text, total_cogs::text, profit::text
		FROM sales
		WHERE attempt_id = $1
		ORDER BY id
	`, attemptID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSales(rows)
}

type saleRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanSales(rows saleRows) ([]SaleRecord, error) {
	var sales []SaleRecord

	for rows.Next() {
		var rec SaleRecord
		var price, cogs, profit string

		if err := rows.Scan(
			&rec.AttemptID,
			&rec.BranchID,
			&rec.SoldAt,
			&rec.MenuName,
			&rec.Qty,
			&price,
			&cogs,
			&profit,
		); err != nil {
			return nil, err
		}

		var err error
		if rec.TotalPrice, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("sale row: bad total_price %q: %w", price, err)
		}
		if rec.TotalCOGS, err = decimal.NewFromString(cogs); err != nil {
			return nil, fmt.Errorf("sale row: bad total_cogs %q: %w", cogs, err)
		}
		if rec.Profit, err = decimal.NewFromString(profit); err != nil {
			return nil, fmt.Errorf("sale row: bad profit %q: %w", profit, err)
		}

		sales = append(sales, rec)
	}

	return sales, rows.Err()
}

// --------------------------------------------------
// SALE ATTEMPTS (SAGA LOG)
// --------------------------------------------------

func (s *PostgresStore) BeginAttempt(
	ctx context.Context,
	attempt SaleAttempt,
) error {

	_, err := s.db.Exec(ctx, `
		INSERT INTO sale_attempts (id, branch_id, state, detail, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
	`, attempt.ID, attempt.BranchID, attempt.State, attempt.Detail)

	return err
}

func (s *PostgresStore) AdvanceAttempt(
	ctx context.Context,
	attemptID, state, detail string,
) error {

	cmd, err := s.db.Exec(ctx, `
		UPDATE sale_attempts
		SET state = $1,
		    detail = $2,
		    updated_at = now()
		WHERE id = $3
	`, state, detail, attemptID)

	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("sale attempt %s not found", attemptID)
	}

	return nil
}

func (s *PostgresStore) ListUnresolvedAttempts(
	ctx context.Context,
) ([]SaleAttempt, error) {

	rows, err := s.db.Query(ctx, `
		SELECT id, branch_id, state, detail, created_at, updated_at
		FROM sale_attempts
		WHERE state NOT IN ($1, $2)
		ORDER BY created_at
	`, AttemptRejected, AttemptCommitted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []SaleAttempt

	for rows.Next() {
		var a SaleAttempt
		if err := rows.Scan(
			&a.ID,
			&a.BranchID,
			&a.State,
			&a.Detail,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}

	return attempts, rows.Err()
}
