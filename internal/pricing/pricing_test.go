package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscountPercentage(t *testing.T) {
	testCases := []struct {
		name             string
		current, compare float64
		want             int
	}{
		{"third off rounds to 33", 100, 150, 33},
		{"half off", 50, 100, 50},
		{"rounds to nearest", 74.50, 100, 26},
		{"no compare price", 100, 0, 0},
		{"compare equals current", 100, 100, 0},
		{"compare below current", 150, 100, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DiscountPercentage(tc.current, tc.compare))
		})
	}
}

func TestDiscountPositiveIffCompareAbove(t *testing.T) {
	pairs := []struct{ current, compare float64 }{
		{100, 150}, {99.99, 100}, {100, 100}, {150, 100}, {10, 0},
	}
	for _, p := range pairs {
		got := DiscountPercentage(p.current, p.compare) > 0
		assert.Equal(t, p.compare > p.current && p.compare > 0, got,
			"current=%v compare=%v", p.current, p.compare)
	}
}

func TestSavings(t *testing.T) {
	assert.Equal(t, 50.0, Savings(100, 150))
	assert.Equal(t, 0.0, Savings(100, 100))
	assert.Equal(t, 0.0, Savings(150, 100))
	assert.Equal(t, 0.0, Savings(100, 0))
}

func TestComputePriceChange(t *testing.T) {
	pc := Compute(1000, 900)
	require.NotNil(t, pc)
	assert.Equal(t, -100.0, pc.ChangeAmount)
	assert.Equal(t, -10.0, pc.ChangePercentage)
	assert.True(t, pc.IsPriceDrop)
	assert.False(t, pc.IsPriceIncrease)

	pc = Compute(80, 100)
	require.NotNil(t, pc)
	assert.Equal(t, 20.0, pc.ChangeAmount)
	assert.Equal(t, 25.0, pc.ChangePercentage)
	assert.True(t, pc.IsPriceIncrease)
	assert.False(t, pc.IsPriceDrop)

	// Two-decimal rounding, unlike the whole-number discount rounding.
	pc = Compute(300, 290)
	require.NotNil(t, pc)
	assert.Equal(t, -3.33, pc.ChangePercentage)
}

func TestComputeDegenerateOldPrice(t *testing.T) {
	assert.Nil(t, Compute(0, 100))
	assert.Nil(t, Compute(-1, 100))
}

func TestShowChangeBadgeBoundaries(t *testing.T) {
	testCases := []struct {
		name     string
		old, new float64
		want     bool
	}{
		{"ten percent drop shows", 1000, 900, true},
		{"exactly minus five shows", 100, 95, true},
		{"exactly plus five shows", 100, 105, true},
		{"small drop suppressed", 100, 96, false},
		{"small increase suppressed", 100, 104.99, false},
		{"no change suppressed", 100, 100, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ShowChangeBadge(Compute(tc.old, tc.new)))
		})
	}

	assert.False(t, ShowChangeBadge(nil))
}

func TestSuppressionGatesDisplayOnly(t *testing.T) {
	pc := Compute(100, 97)
	require.NotNil(t, pc)
	assert.Equal(t, -3.0, pc.ChangePercentage)
	assert.True(t, pc.IsPriceDrop)
	assert.False(t, ShowChangeBadge(pc))
}

func TestTrend(t *testing.T) {
	assert.Nil(t, Trend(nil))

	changes := []PriceChange{
		*Compute(100, 90),  // -10
		*Compute(90, 99),   // +10
		*Compute(99, 79.2), // -20
	}
	tr := Trend(changes)
	require.NotNil(t, tr)
	assert.Equal(t, 3, tr.Samples)
	assert.InDelta(t, -6.67, tr.Mean, 0.01)
	assert.Equal(t, -10.0, tr.Median)
	assert.Equal(t, -20.0, tr.Min)
	assert.Equal(t, 10.0, tr.Max)
}
