package settlement

import "time"

// Status represents the status of a settlement transaction.
type Status string

const (
	// StatusPending is a reachable schema state reserved for a future
	// confirmation workflow; no code path currently creates or transitions
	// through it.
	StatusPending Status = "PENDING"

	// StatusCompleted is the state every recorded settlement is created in.
	StatusCompleted Status = "COMPLETED"
)

// Settlement is an append-only audit record of a payment between two group
// members. Once recorded it is never mutated or deleted.
type Settlement struct {
	ID          string     `json:"id"`
	GroupID     string     `json:"group_id"`
	PayerID     string     `json:"payer_id"`
	PayeeID     string     `json:"payee_id"`
	Amount      float64    `json:"amount"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Stats summarizes a user's completed settlements within a group.
type Stats struct {
	TotalPaid     float64 `json:"total_paid"`
	TotalReceived float64 `json:"total_received"`
	PaymentCount  int     `json:"payment_count"`
}
