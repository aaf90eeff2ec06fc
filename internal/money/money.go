// Package money provides cent-precision arithmetic helpers shared by the
// balance, validation and settlement packages.
package money

import "math"

// Epsilon is the tolerance used whenever two monetary sums are compared.
const Epsilon = 0.01

// Share is an amount attributed to a single user.
type Share struct {
	UserID string  `json:"user_id"`
	Amount float64 `json:"amount"`
}

// Round rounds a value to 2 decimal places, half away from zero.
func Round(value float64) float64 {
	return math.Round(value*100) / 100
}

// ApproxEqual reports whether a and b are equal within Epsilon.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// ApproxZero reports whether v is within Epsilon of zero.
func ApproxZero(v float64) bool {
	return math.Abs(v) <= Epsilon
}

// DistributeEvenly divides total across the given participants so that the
// shares always sum back to total exactly to the cent. All but the last
// participant get the rounded per-person share; the last participant absorbs
// the rounding remainder. Returns nil when there are no participants.
func DistributeEvenly(participantIDs []string, total float64) []Share {
	if len(participantIDs) == 0 {
		return nil
	}

	perPerson := Round(total / float64(len(participantIDs)))

	shares := make([]Share, len(participantIDs))
	var distributed float64
	for i, id := range participantIDs[:len(participantIDs)-1] {
		shares[i] = Share{UserID: id, Amount: perPerson}
		distributed += perPerson
	}

	// The last share is whatever is left, so rounding drift never leaks.
	last := len(participantIDs) - 1
	shares[last] = Share{
		UserID: participantIDs[last],
		Amount: Round(total - distributed),
	}

	return shares
}
