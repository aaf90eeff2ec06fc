package settlement

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository is the Postgres-backed settlement store.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new settlement repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

var _ Store = (*Repository)(nil)

// Insert writes a settlement inside a transaction that first takes a
// per-group advisory lock. The lock serializes concurrent compute-then-record
// sequences for the same group, which closes the double-settlement window
// between reading a balance snapshot and recording against it.
func (r *Repository) Insert(ctx context.Context, s *Settlement) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, s.GroupID); err != nil {
		return fmt.Errorf("failed to acquire group lock: %w", err)
	}

	query := `
		INSERT INTO settlements (id, group_id, payer_id, payee_id, amount, status, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	if _, err := tx.ExecContext(ctx, query,
		s.ID, s.GroupID, s.PayerID, s.PayeeID, s.Amount, s.Status, s.CreatedAt, s.CompletedAt,
	); err != nil {
		return fmt.Errorf("failed to insert settlement: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settlement: %w", err)
	}
	return nil
}

// ListByGroup retrieves all settlements for a group ordered by creation time
// descending.
func (r *Repository) ListByGroup(ctx context.Context, groupID string) ([]*Settlement, error) {
	query := `
		SELECT id, group_id, payer_id, payee_id, amount, status, created_at, completed_at
		FROM settlements
		WHERE group_id = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, groupID)
}

// ListCompleted retrieves the completed settlements for a group ordered by
// completion time descending.
func (r *Repository) ListCompleted(ctx context.Context, groupID string) ([]*Settlement, error) {
	query := `
		SELECT id, group_id, payer_id, payee_id, amount, status, created_at, completed_at
		FROM settlements
		WHERE group_id = $1 AND status = 'COMPLETED'
		ORDER BY completed_at DESC
	`
	return r.list(ctx, query, groupID)
}

// ExistsCompleted checks for a completed settlement between the two users,
// optionally filtered by amount.
func (r *Repository) ExistsCompleted(ctx context.Context, groupID, payerID, payeeID string, amount *float64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM settlements
			WHERE group_id = $1 AND payer_id = $2 AND payee_id = $3 AND status = 'COMPLETED'
			  AND ($4::double precision IS NULL OR amount = $4)
		)
	`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, groupID, payerID, payeeID, amount).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check settlement existence: %w", err)
	}
	return exists, nil
}

func (r *Repository) list(ctx context.Context, query string, groupID string) ([]*Settlement, error) {
	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []*Settlement
	for rows.Next() {
		s := &Settlement{}
		if err := rows.Scan(
			&s.ID, &s.GroupID, &s.PayerID, &s.PayeeID, &s.Amount, &s.Status, &s.CreatedAt, &s.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settlements: %w", err)
	}

	return settlements, nil
}
