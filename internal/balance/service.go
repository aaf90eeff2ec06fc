package balance

import (
	"context"

	"settleup/internal/ledger"
	"settleup/internal/metrics"
)

// LedgerReader supplies the expense snapshot a balance computation works
// over. The reader excludes deleted records; the computation itself never
// fetches or locks anything.
type LedgerReader interface {
	FetchByGroup(ctx context.Context, groupID string) ([]ledger.Expense, error)
}

// Service computes balances and settlement plans for a group.
type Service struct {
	reader LedgerReader
}

// NewService creates a new balance service.
func NewService(reader LedgerReader) *Service {
	return &Service{reader: reader}
}

// GroupBalances fetches the group's expense snapshot and folds it into net
// balances.
func (s *Service) GroupBalances(ctx context.Context, groupID string) (*Balances, error) {
	expenses, err := s.reader.FetchByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return ComputeBalances(expenses), nil
}

// SettlementPlan computes the simplified transfer list for a group. Nothing
// is recorded; the plan is a proposal the caller may act on.
func (s *Service) SettlementPlan(ctx context.Context, groupID string) ([]Transfer, error) {
	balances, err := s.GroupBalances(ctx, groupID)
	if err != nil {
		return nil, err
	}

	transfers := SimplifyDebts(balances)
	metrics.PlansComputed.Inc()
	return transfers, nil
}
