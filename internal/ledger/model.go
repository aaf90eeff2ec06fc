package ledger

import "time"

// Expense represents a shared expense in a group. Records are immutable once
// written; edits happen by soft-deleting and re-creating, so balance
// computations always work over a consistent snapshot.
type Expense struct {
	ID          string     `json:"id"`
	GroupID     string     `json:"group_id"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	Date        time.Time  `json:"date"`
	PaidBy      string     `json:"paid_by,omitempty"` // legacy single-payer field
	Payers      []Share    `json:"payers,omitempty"`
	Splits      []Share    `json:"splits"`
	CreatedAt   time.Time  `json:"created_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// Share is one user's portion of an expense, either paid or owed.
type Share struct {
	UserID string  `json:"user_id"`
	Amount float64 `json:"amount"`
}

// NormalizedPayers resolves the payer shape once at the read boundary.
// Older records carry only a paid_by field; those are folded into a
// single-element payer list so downstream code only ever sees the
// multi-payer shape.
func (e *Expense) NormalizedPayers() []Share {
	if len(e.Payers) > 0 {
		return e.Payers
	}
	if e.PaidBy != "" {
		return []Share{{UserID: e.PaidBy, Amount: e.Amount}}
	}
	return nil
}
