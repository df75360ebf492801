package expense

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(ctx context.Context, expense *Expense) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO expenses (branch_id, spent_on, item_name, amount, category, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`,
		expense.BranchID,
		expense.SpentOn,
		expense.ItemName,
		expense.Amount.String(),
		expense.Category,
		expense.Note,
	).Scan(&expense.ID)
}

func (r *PostgresRepository) ListByBranch(
	ctx context.Context,
	branchID, date string,
) ([]Expense, error) {

	query := `
		SELECT id, branch_id, spent_on::text, item_name, amount::text, category, note
		FROM expenses
		WHERE branch_id = $1
		ORDER BY spent_on DESC, id DESC
	`
	args := []any{branchID}

	if date != "" {
		query = `
			SELECT id, branch_id, spent_on::text, item_name, amount::text, category, note
			FROM expenses
			WHERE branch_id = $1 AND spent_on = $2
			ORDER BY id DESC
		`
		args = append(args, date)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []Expense

	for rows.Next() {
		var e Expense
		var amount string

		if err := rows.Scan(
			&e.ID,
			&e.BranchID,
			&e.SpentOn,
			&e.ItemName,
			&amount,
			&e.Category,
			&e.Note,
		); err != nil {
			return nil, err
		}

		e.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("expense row %d: bad amount %q: %w", e.ID, amount, err)
		}

		expenses = append(expenses, e)
	}

	return expenses, rows.Err()
}
