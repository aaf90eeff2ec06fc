// Package balance computes net positions from expense snapshots and reduces
// them to a small set of point-to-point settlement transfers.
package balance

import (
	"settleup/internal/ledger"
	"settleup/internal/money"
)

// Balances maps each participant to their net amount: positive means the
// user is owed money, negative means they owe. Insertion order is tracked
// alongside the map so iteration, and therefore the simplifier's tie-break,
// is deterministic across runs.
type Balances struct {
	amounts map[string]float64
	order   []string
}

// NewBalances returns an empty balance set.
func NewBalances() *Balances {
	return &Balances{amounts: make(map[string]float64)}
}

// Add applies a delta to a user's running balance, registering the user on
// first touch.
func (b *Balances) Add(userID string, delta float64) {
	if _, seen := b.amounts[userID]; !seen {
		b.order = append(b.order, userID)
	}
	b.amounts[userID] += delta
}

// Get returns the user's net balance, zero for unknown users.
func (b *Balances) Get(userID string) float64 {
	return b.amounts[userID]
}

// UserIDs returns the participants in first-touch order.
func (b *Balances) UserIDs() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Len returns the number of tracked participants.
func (b *Balances) Len() int {
	return len(b.order)
}

// Total returns the sum of all balances. For a closed group this is zero
// within Epsilon per participant.
func (b *Balances) Total() float64 {
	var total float64
	for _, amount := range b.amounts {
		total += amount
	}
	return total
}

// ComputeBalances folds a snapshot of expense records into a net balance per
// participant: each payer is credited what they advanced, each split holder
// is debited their share. Expenses are normalized to the multi-payer shape
// first, so a legacy single paid_by record behaves like a one-element payer
// list. An expense with no splits contributes only its payer credit rather
// than faulting; such records are rejected upstream by validation.
func ComputeBalances(expenses []ledger.Expense) *Balances {
	balances := NewBalances()

	for i := range expenses {
		for _, p := range expenses[i].NormalizedPayers() {
			balances.Add(p.UserID, p.Amount)
		}
		for _, s := range expenses[i].Splits {
			balances.Add(s.UserID, -s.Amount)
		}
	}

	return balances
}

// NonZero returns the participants whose balance is outside the settled
// tolerance, in insertion order.
func (b *Balances) NonZero() []string {
	var out []string
	for _, id := range b.order {
		if !money.ApproxZero(b.amounts[id]) {
			out = append(out, id)
		}
	}
	return out
}
