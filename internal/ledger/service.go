package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"settleup/internal/money"
	"settleup/internal/validation"
)

// Common errors
var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrNoSplitTargets  = errors.New("either splits or split_among must be provided")
)

// Service handles expense business logic.
type Service struct {
	repo *Repository
}

// NewService creates a new expense service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create validates the request, resolves even splits when only a participant
// list was given, and persists the expense. Validation failures come back as
// a list of field errors, not as a Go error.
func (s *Service) Create(ctx context.Context, req *CreateExpenseRequest) (*Expense, []validation.ValidationError, error) {
	splits, err := resolveSplits(req)
	if err != nil {
		return nil, nil, err
	}

	payers := make([]Share, len(req.Payers))
	for i, p := range req.Payers {
		payers[i] = Share{UserID: p.UserID, Amount: p.Amount}
	}

	var date time.Time
	var datePtr *time.Time
	if req.Date != "" {
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, []validation.ValidationError{{Field: "date", Message: "date must be formatted as YYYY-MM-DD"}}, nil
		}
		datePtr = &date
	} else {
		date = time.Now()
	}

	paidBy := req.PaidBy
	if paidBy == "" && len(payers) > 0 {
		paidBy = payers[0].UserID
	}

	if errs := validation.ValidateExpense(validation.ExpenseInput{
		Description: req.Description,
		Amount:      req.Amount,
		Date:        datePtr,
		PaidBy:      paidBy,
		Splits:      toValidationSplits(splits),
	}); len(errs) > 0 {
		return nil, errs, nil
	}

	// Multi-payer amounts must also cover the total.
	if len(payers) > 0 {
		var paid float64
		for _, p := range payers {
			paid += p.Amount
		}
		if !money.ApproxEqual(paid, req.Amount) {
			return nil, []validation.ValidationError{{
				Field:   "payers",
				Message: fmt.Sprintf("payer amounts must sum to the expense amount (got %.2f, want %.2f)", paid, req.Amount),
			}}, nil
		}
	}

	expense := &Expense{
		ID:          uuid.NewString(),
		GroupID:     req.GroupID,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        date,
		PaidBy:      req.PaidBy,
		Payers:      payers,
		Splits:      splits,
	}

	if err := s.repo.Create(ctx, expense); err != nil {
		return nil, nil, err
	}
	return expense, nil, nil
}

// ListByGroup returns the active expenses of a group.
func (s *Service) ListByGroup(ctx context.Context, groupID string) ([]Expense, error) {
	return s.repo.FetchByGroup(ctx, groupID)
}

// GetByID returns a single expense.
func (s *Service) GetByID(ctx context.Context, id string) (*Expense, error) {
	expense, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}
	return expense, nil
}

// Delete soft-deletes an expense.
func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrExpenseNotFound
	}
	return nil
}

// resolveSplits turns the request into concrete split shares. Explicit splits
// win; otherwise the amount is distributed evenly across split_among.
func resolveSplits(req *CreateExpenseRequest) ([]Share, error) {
	if len(req.Splits) > 0 {
		splits := make([]Share, len(req.Splits))
		for i, s := range req.Splits {
			splits[i] = Share{UserID: s.UserID, Amount: s.Amount}
		}
		return splits, nil
	}

	if len(req.SplitAmong) == 0 {
		return nil, ErrNoSplitTargets
	}

	even := money.DistributeEvenly(req.SplitAmong, req.Amount)
	splits := make([]Share, len(even))
	for i, s := range even {
		splits[i] = Share{UserID: s.UserID, Amount: s.Amount}
	}
	return splits, nil
}
