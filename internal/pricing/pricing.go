// Package pricing holds the discount and price-change math shared by the
// storefront, deals and admin surfaces. Every caller goes through these
// functions so the figures agree across endpoints.
package pricing

import (
	"math"

	"github.com/montanaflynn/stats"
)

// badgeThreshold is the minimum absolute change percentage for the
// recent-price-change indicator. Strictly-below values are display-suppressed;
// the underlying computation is never suppressed.
const badgeThreshold = 5.0

// PriceChange quantifies a transition from an old price to a new one.
// ChangePercentage is rounded to two decimals, unlike DiscountPercentage
// which rounds to a whole number.
type PriceChange struct {
	OldPrice         float64 `json:"oldPrice"`
	NewPrice         float64 `json:"newPrice"`
	ChangeAmount     float64 `json:"changeAmount"`
	ChangePercentage float64 `json:"changePercentage"`
	IsPriceDrop      bool    `json:"isPriceDrop"`
	IsPriceIncrease  bool    `json:"isPriceIncrease"`
}

// DiscountPercentage is the whole-number percent saved against the compare
// price, 0 when there is no discount or no usable compare price.
func DiscountPercentage(current, compare float64) int {
	if compare <= 0 || compare <= current {
		return 0
	}
	return int(math.Round((compare - current) / compare * 100))
}

// Savings is the absolute amount saved against the compare price, 0 when
// there is no discount or no usable compare price.
func Savings(current, compare float64) float64 {
	if compare <= 0 || compare <= current {
		return 0
	}
	return compare - current
}

// Compute quantifies the change from oldPrice to newPrice. A zero or
// negative old price makes the computation inapplicable and yields nil
// rather than an error.
func Compute(oldPrice, newPrice float64) *PriceChange {
	if oldPrice <= 0 {
		return nil
	}
	amount := newPrice - oldPrice
	return &PriceChange{
		OldPrice:         oldPrice,
		NewPrice:         newPrice,
		ChangeAmount:     amount,
		ChangePercentage: round2(amount / oldPrice * 100),
		IsPriceDrop:      amount < 0,
		IsPriceIncrease:  amount > 0,
	}
}

// ShowChangeBadge gates only the presentation signal: changes under 5 percent
// in magnitude get no indicator, exactly 5 percent does. Discount badges have
// no such gate; they show whenever DiscountPercentage is positive.
func ShowChangeBadge(pc *PriceChange) bool {
	if pc == nil {
		return false
	}
	return math.Abs(pc.ChangePercentage) >= badgeThreshold
}

// TrendSummary aggregates the change percentages of a product's recent price
// history.
type TrendSummary struct {
	Samples int     `json:"samples"`
	Mean    float64 `json:"mean"`
	Median  float64 `json:"median"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// Trend summarizes a set of price changes, nil when there is nothing to
// summarize.
func Trend(changes []PriceChange) *TrendSummary {
	if len(changes) == 0 {
		return nil
	}

	percentages := make(stats.Float64Data, len(changes))
	for i, pc := range changes {
		percentages[i] = pc.ChangePercentage
	}

	mean, _ := stats.Mean(percentages)
	median, _ := stats.Median(percentages)
	min, _ := stats.Min(percentages)
	max, _ := stats.Max(percentages)

	return &TrendSummary{
		Samples: len(changes),
		Mean:    round2(mean),
		Median:  round2(median),
		Min:     round2(min),
		Max:     round2(max),
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
