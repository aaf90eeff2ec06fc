package balance

import (
	"math"
	"sort"

	"settleup/internal/money"
)

// Transfer is a proposed settlement payment from one participant to another.
type Transfer struct {
	PayerID string  `json:"payer_id"`
	PayeeID string  `json:"payee_id"`
	Amount  float64 `json:"amount"`
}

// party is a mutable running total during greedy matching. Creditors and
// debtors live in index-addressed slices with explicit cursors so advancing
// past a settled party is O(1) instead of repeatedly popping list heads.
type party struct {
	id     string
	amount float64 // absolute magnitude
}

// SimplifyDebts reduces a balance set to a list of transfers that settles
// every participant.
//
// Balances within the settled tolerance are dropped, the rest are split into
// creditors and debtors and each side is sorted by descending magnitude.
// Equal magnitudes keep their insertion order (stable sort), which makes the
// output deterministic for identical inputs. The largest debtor then pays
// the largest creditor min(debt, credit), cent-rounded, and whichever side
// reaches zero advances; this repeats until one side is exhausted.
//
// The result has at most n-1 transfers for n unsettled participants. This is
// a greedy heuristic: it bounds the transfer count but does not guarantee
// the true minimum, which is a hard combinatorial problem.
func SimplifyDebts(balances *Balances) []Transfer {
	var creditors, debtors []party
	for _, id := range balances.UserIDs() {
		amount := balances.Get(id)
		switch {
		case money.ApproxZero(amount):
			// already settled
		case amount > 0:
			creditors = append(creditors, party{id: id, amount: amount})
		default:
			debtors = append(debtors, party{id: id, amount: -amount})
		}
	}

	sort.SliceStable(creditors, func(i, j int) bool { return creditors[i].amount > creditors[j].amount })
	sort.SliceStable(debtors, func(i, j int) bool { return debtors[i].amount > debtors[j].amount })

	var transfers []Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := money.Round(math.Min(debtors[i].amount, creditors[j].amount))

		transfers = append(transfers, Transfer{
			PayerID: debtors[i].id,
			PayeeID: creditors[j].id,
			Amount:  amount,
		})

		debtors[i].amount -= amount
		creditors[j].amount -= amount

		if debtors[i].amount <= money.Epsilon {
			i++
		}
		if creditors[j].amount <= money.Epsilon {
			j++
		}
	}

	return transfers
}
