package balance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	id     string
	amount float64
}

func balancesFrom(entries ...entry) *Balances {
	b := NewBalances()
	for _, e := range entries {
		b.Add(e.id, e.amount)
	}
	return b
}

func TestSimplifyDebts(t *testing.T) {
	t.Run("road trip settles in two transfers", func(t *testing.T) {
		transfers := SimplifyDebts(balancesFrom(
			entry{"alice", 150},
			entry{"bob", -60},
			entry{"charlie", -90},
		))

		require.Len(t, transfers, 2)
		assert.Equal(t, Transfer{PayerID: "charlie", PayeeID: "alice", Amount: 90}, transfers[0])
		assert.Equal(t, Transfer{PayerID: "bob", PayeeID: "alice", Amount: 60}, transfers[1])
	})

	t.Run("settled group yields no transfers", func(t *testing.T) {
		transfers := SimplifyDebts(balancesFrom(
			entry{"a", 0},
			entry{"b", 0},
			entry{"c", 0},
		))
		assert.Empty(t, transfers)
	})

	t.Run("near-zero balances are dropped", func(t *testing.T) {
		transfers := SimplifyDebts(balancesFrom(
			entry{"a", 0.009},
			entry{"b", -0.009},
			entry{"c", 20},
			entry{"d", -20},
		))

		require.Len(t, transfers, 1)
		assert.Equal(t, Transfer{PayerID: "d", PayeeID: "c", Amount: 20}, transfers[0])
	})

	t.Run("every transfer amount is positive", func(t *testing.T) {
		transfers := SimplifyDebts(balancesFrom(
			entry{"a", 123.45},
			entry{"b", -23.45},
			entry{"c", -75.37},
			entry{"d", -24.63},
		))
		for _, tr := range transfers {
			assert.Greater(t, tr.Amount, 0.0)
		}
	})

	t.Run("at most n-1 transfers", func(t *testing.T) {
		b := balancesFrom(
			entry{"a", 55.20},
			entry{"b", 12.30},
			entry{"c", -20.00},
			entry{"d", -17.50},
			entry{"e", -30.00},
		)
		transfers := SimplifyDebts(b)
		assert.LessOrEqual(t, len(transfers), len(b.NonZero())-1)
	})

	t.Run("transfers conserve each party's position", func(t *testing.T) {
		b := balancesFrom(
			entry{"a", 55.20},
			entry{"b", 12.30},
			entry{"c", -20.00},
			entry{"d", -17.50},
			entry{"e", -30.00},
		)
		transfers := SimplifyDebts(b)

		paid := map[string]float64{}
		received := map[string]float64{}
		for _, tr := range transfers {
			paid[tr.PayerID] += tr.Amount
			received[tr.PayeeID] += tr.Amount
		}

		for _, id := range b.UserIDs() {
			net := b.Get(id)
			if net < 0 {
				assert.InDelta(t, -net, paid[id], 0.01, "debtor %s", id)
			} else {
				assert.InDelta(t, net, received[id], 0.01, "creditor %s", id)
			}
		}
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		build := func() *Balances {
			return balancesFrom(
				entry{"a", 40},
				entry{"b", -25},
				entry{"c", 10},
				entry{"d", -25},
			)
		}
		assert.Equal(t, SimplifyDebts(build()), SimplifyDebts(build()))
	})

	t.Run("equal magnitudes keep insertion order", func(t *testing.T) {
		transfers := SimplifyDebts(balancesFrom(
			entry{"creditor", 100},
			entry{"first", -50},
			entry{"second", -50},
		))

		require.Len(t, transfers, 2)
		assert.Equal(t, "first", transfers[0].PayerID)
		assert.Equal(t, "second", transfers[1].PayerID)
	})

	t.Run("amounts are cent-rounded", func(t *testing.T) {
		transfers := SimplifyDebts(balancesFrom(
			entry{"a", 33.333333},
			entry{"b", -33.333333},
		))

		require.Len(t, transfers, 1)
		cents := transfers[0].Amount * 100
		assert.InDelta(t, math.Round(cents), cents, 1e-6)
	})
}
