package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{3.3333333, 3.33},
		{6.6666667, 6.67},
		{90.0, 90.0},
		{0.0, 0.0},
		{-2.678, -2.68},
		{-2.672, -2.67},
		{149.999, 150.0},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, Round(tc.in), 1e-9, "Round(%v)", tc.in)
	}
}

func TestApproxEqual(t *testing.T) {
	assert.True(t, ApproxEqual(100, 100))
	assert.True(t, ApproxEqual(100, 100.005))
	assert.True(t, ApproxEqual(100.005, 100))
	assert.False(t, ApproxEqual(100, 100.02))
	assert.True(t, ApproxEqual(0, 0))
	assert.True(t, ApproxEqual(-5.0, -5.009))
}

func TestApproxZero(t *testing.T) {
	assert.True(t, ApproxZero(0))
	assert.True(t, ApproxZero(0.009))
	assert.True(t, ApproxZero(-0.009))
	assert.False(t, ApproxZero(0.02))
}

func TestDistributeEvenly(t *testing.T) {
	t.Run("ten across three", func(t *testing.T) {
		shares := DistributeEvenly([]string{"u1", "u2", "u3"}, 10)

		assert.Len(t, shares, 3)
		assert.Equal(t, Share{UserID: "u1", Amount: 3.33}, shares[0])
		assert.Equal(t, Share{UserID: "u2", Amount: 3.33}, shares[1])
		assert.Equal(t, Share{UserID: "u3", Amount: 3.34}, shares[2])
	})

	t.Run("single participant takes the full total", func(t *testing.T) {
		shares := DistributeEvenly([]string{"u1"}, 42.55)
		assert.Len(t, shares, 1)
		assert.InDelta(t, 42.55, shares[0].Amount, 1e-9)
	})

	t.Run("no participants", func(t *testing.T) {
		assert.Nil(t, DistributeEvenly(nil, 10))
	})

	t.Run("sum is exact for awkward divisions", func(t *testing.T) {
		totals := []float64{10, 100, 0.01, 33.33, 7.77, 249.99}
		ids := []string{"a", "b", "c", "d", "e", "f", "g"}

		for _, total := range totals {
			for n := 1; n <= len(ids); n++ {
				shares := DistributeEvenly(ids[:n], total)
				var sum float64
				for _, s := range shares {
					sum += s.Amount
				}
				assert.InDelta(t, total, sum, 1e-9, "total=%v n=%d", total, n)
			}
		}
	})
}
