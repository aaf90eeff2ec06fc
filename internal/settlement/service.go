package settlement

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"settleup/internal/metrics"
	"settleup/internal/money"
)

// Common errors
var (
	ErrSamePayerPayee    = errors.New("payer and payee cannot be the same")
	ErrNonPositiveAmount = errors.New("settlement amount must be greater than zero")
	ErrMissingParty      = errors.New("payer_id and payee_id are required")
	ErrMissingGroup      = errors.New("group_id is required")
)

// Service records and queries settlement transactions.
type Service struct {
	store Store
}

// NewService creates a new settlement service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Record validates and persists a settlement. The record is created directly
// in the completed state with matching creation and completion timestamps.
// Invalid requests are rejected before the store is touched. Record performs
// no duplicate detection; callers that want to guard against re-recording the
// same payment use Exists first.
func (s *Service) Record(ctx context.Context, groupID, payerID, payeeID string, amount float64) (*Settlement, error) {
	if groupID == "" {
		return nil, ErrMissingGroup
	}
	if payerID == "" || payeeID == "" {
		return nil, ErrMissingParty
	}
	if payerID == payeeID {
		return nil, ErrSamePayerPayee
	}
	if amount <= 0 {
		return nil, ErrNonPositiveAmount
	}

	now := time.Now().UTC()
	settlement := &Settlement{
		ID:          uuid.NewString(),
		GroupID:     groupID,
		PayerID:     payerID,
		PayeeID:     payeeID,
		Amount:      money.Round(amount),
		Status:      StatusCompleted,
		CreatedAt:   now,
		CompletedAt: &now,
	}

	if err := s.store.Insert(ctx, settlement); err != nil {
		return nil, err
	}

	metrics.SettlementsRecorded.Inc()
	return settlement, nil
}

// Exists reports whether a completed settlement from payer to payee has been
// recorded in the group. When amount is non-nil it is rounded to cents and
// matched as well.
func (s *Service) Exists(ctx context.Context, groupID, payerID, payeeID string, amount *float64) (bool, error) {
	if amount != nil {
		rounded := money.Round(*amount)
		amount = &rounded
	}
	return s.store.ExistsCompleted(ctx, groupID, payerID, payeeID, amount)
}

// Stats scans the group's completed settlements touching the user and sums
// what they paid and received.
func (s *Service) Stats(ctx context.Context, groupID, userID string) (*Stats, error) {
	settlements, err := s.store.ListCompleted(ctx, groupID)
	if err != nil {
		return nil, err
	}

	stats := &Stats{}
	for _, record := range settlements {
		switch userID {
		case record.PayerID:
			stats.TotalPaid += record.Amount
			stats.PaymentCount++
		case record.PayeeID:
			stats.TotalReceived += record.Amount
			stats.PaymentCount++
		}
	}

	stats.TotalPaid = money.Round(stats.TotalPaid)
	stats.TotalReceived = money.Round(stats.TotalReceived)
	return stats, nil
}

// ListByGroup returns every settlement of a group, newest created first.
func (s *Service) ListByGroup(ctx context.Context, groupID string) ([]*Settlement, error) {
	return s.store.ListByGroup(ctx, groupID)
}

// ListCompleted returns the completed settlements of a group, newest
// completed first.
func (s *Service) ListCompleted(ctx context.Context, groupID string) ([]*Settlement, error) {
	return s.store.ListCompleted(ctx, groupID)
}
