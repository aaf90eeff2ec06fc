package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// Repository handles expense persistence.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new expense repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts an expense along with its payer and split rows in a single
// transaction.
func (r *Repository) Create(ctx context.Context, e *Expense) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO expenses (id, group_id, description, amount, date, paid_by)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
		RETURNING created_at
	`
	if err := tx.QueryRowContext(ctx, query,
		e.ID, e.GroupID, e.Description, e.Amount, e.Date, e.PaidBy,
	).Scan(&e.CreatedAt); err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	for _, p := range e.Payers {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO expense_payers (expense_id, user_id, amount) VALUES ($1, $2, $3)`,
			e.ID, p.UserID, p.Amount,
		); err != nil {
			return fmt.Errorf("failed to create payer row: %w", err)
		}
	}

	for _, s := range e.Splits {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO expense_splits (expense_id, user_id, amount) VALUES ($1, $2, $3)`,
			e.ID, s.UserID, s.Amount,
		); err != nil {
			return fmt.Errorf("failed to create split row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit expense: %w", err)
	}
	return nil
}

// FetchByGroup retrieves the active (non-deleted) expenses of a group with
// their payers and splits, ordered by date then creation time.
func (r *Repository) FetchByGroup(ctx context.Context, groupID string) ([]Expense, error) {
	query := `
		SELECT id, group_id, description, amount, date, COALESCE(paid_by, ''), created_at
		FROM expenses
		WHERE group_id = $1 AND deleted_at IS NULL
		ORDER BY date, created_at
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expenses: %w", err)
	}
	defer rows.Close()

	var expenses []Expense
	var ids []string
	index := make(map[string]int)

	for rows.Next() {
		var e Expense
		if err := rows.Scan(
			&e.ID, &e.GroupID, &e.Description, &e.Amount, &e.Date, &e.PaidBy, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		index[e.ID] = len(expenses)
		ids = append(ids, e.ID)
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	if len(expenses) == 0 {
		return nil, nil
	}

	if err := r.loadShares(ctx, `SELECT expense_id, user_id, amount FROM expense_payers WHERE expense_id = ANY($1) ORDER BY expense_id, user_id`, ids, func(id string, s Share) {
		expenses[index[id]].Payers = append(expenses[index[id]].Payers, s)
	}); err != nil {
		return nil, err
	}

	if err := r.loadShares(ctx, `SELECT expense_id, user_id, amount FROM expense_splits WHERE expense_id = ANY($1) ORDER BY expense_id, user_id`, ids, func(id string, s Share) {
		expenses[index[id]].Splits = append(expenses[index[id]].Splits, s)
	}); err != nil {
		return nil, err
	}

	return expenses, nil
}

// GetByID retrieves a single active expense, or nil when not found.
func (r *Repository) GetByID(ctx context.Context, id string) (*Expense, error) {
	query := `
		SELECT id, group_id, description, amount, date, COALESCE(paid_by, ''), created_at
		FROM expenses
		WHERE id = $1 AND deleted_at IS NULL
	`

	e := &Expense{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.GroupID, &e.Description, &e.Amount, &e.Date, &e.PaidBy, &e.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	if err := r.loadShares(ctx, `SELECT expense_id, user_id, amount FROM expense_payers WHERE expense_id = ANY($1) ORDER BY user_id`, []string{id}, func(_ string, s Share) {
		e.Payers = append(e.Payers, s)
	}); err != nil {
		return nil, err
	}
	if err := r.loadShares(ctx, `SELECT expense_id, user_id, amount FROM expense_splits WHERE expense_id = ANY($1) ORDER BY user_id`, []string{id}, func(_ string, s Share) {
		e.Splits = append(e.Splits, s)
	}); err != nil {
		return nil, err
	}

	return e, nil
}

// SoftDelete marks an expense as deleted so it no longer feeds balance
// computations. Returns false when no active expense matched.
func (r *Repository) SoftDelete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE expenses SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return affected > 0, nil
}

func (r *Repository) loadShares(ctx context.Context, query string, ids []string, add func(expenseID string, s Share)) error {
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to load shares: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var expenseID string
		var s Share
		if err := rows.Scan(&expenseID, &s.UserID, &s.Amount); err != nil {
			return fmt.Errorf("failed to scan share: %w", err)
		}
		add(expenseID, s)
	}
	return rows.Err()
}
