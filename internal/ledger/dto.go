package ledger

import (
	"time"

	"settleup/internal/validation"
)

// ShareInput is a user/amount pair as supplied by the API.
type ShareInput struct {
	UserID string  `json:"user_id" validate:"required"`
	Amount float64 `json:"amount" validate:"gt=0"`
}

// CreateExpenseRequest represents the request to create an expense.
// Either Splits or SplitAmong must be supplied; when only SplitAmong is
// given the amount is distributed evenly across those users. Payers is
// optional; when omitted PaidBy covers the full amount.
type CreateExpenseRequest struct {
	GroupID     string       `json:"group_id" validate:"required"`
	Description string       `json:"description" validate:"required,max=200"`
	Amount      float64      `json:"amount" validate:"required,gt=0"`
	Date        string       `json:"date,omitempty"` // YYYY-MM-DD
	PaidBy      string       `json:"paid_by"`
	Payers      []ShareInput `json:"payers,omitempty"`
	Splits      []ShareInput `json:"splits,omitempty"`
	SplitAmong  []string     `json:"split_among,omitempty"`
}

// ExpenseResponse represents the response for an expense.
type ExpenseResponse struct {
	ID          string  `json:"id"`
	GroupID     string  `json:"group_id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	PaidBy      string  `json:"paid_by,omitempty"`
	Payers      []Share `json:"payers"`
	Splits      []Share `json:"splits"`
	CreatedAt   string  `json:"created_at"`
}

// ToResponse converts an Expense model to an ExpenseResponse DTO.
func (e *Expense) ToResponse() *ExpenseResponse {
	return &ExpenseResponse{
		ID:          e.ID,
		GroupID:     e.GroupID,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date.Format("2006-01-02"),
		PaidBy:      e.PaidBy,
		Payers:      e.NormalizedPayers(),
		Splits:      e.Splits,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

func toValidationSplits(shares []Share) []validation.Split {
	out := make([]validation.Split, len(shares))
	for i, s := range shares {
		out[i] = validation.Split{UserID: s.UserID, Amount: s.Amount}
	}
	return out
}
