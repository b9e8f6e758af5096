package engine

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// cadenceBands are the recognized recurrence intervals, in days.
var cadenceBands = []struct {
	name     string
	min, max float64
}{
	{"weekly", 5, 9},
	{"biweekly", 12, 16},
	{"monthly", 25, 35},
	{"bimonthly", 55, 65},
	{"quarterly", 85, 100},
	{"annual", 350, 380},
}

// Amounts cluster when every member sits within 20% of the group mean, or
// within $15 of it, whichever tolerance is larger.
const (
	amountTolerancePct  = 0.20
	amountToleranceFlat = 15.0
)

// gapConsistencyRatio is the share of gaps that must agree with the chosen
// cadence (or, absent a band, with the median) for a group to count.
const gapConsistencyRatio = 0.70

// isRecurringGroup decides whether one vendor's expense history shows a
// recurring obligation. dates and amounts are parallel; amounts are the
// absolute expense values.
func isRecurringGroup(dates []time.Time, amounts []decimal.Decimal) bool {
	if len(dates) < 2 {
		return false
	}
	if !amountsCluster(amounts) {
		return false
	}

	sorted := make([]time.Time, len(dates))
	copy(sorted, dates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	gaps := make([]float64, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		gaps = append(gaps, sorted[i].Sub(sorted[i-1]).Hours()/24)
	}

	med := median(gaps)

	// A band only accepts the group when most gaps actually land in it;
	// the median alone can sit in a band by accident (e.g. gaps 3, 9, 45).
	for _, band := range cadenceBands {
		if med >= band.min && med <= band.max {
			return ratioWithin(gaps, band.min, band.max) >= gapConsistencyRatio
		}
	}

	// Off-band cadences (e.g. a 21-day billing cycle) still count when the
	// gaps agree with each other.
	return ratioWithin(gaps, med*0.75, med*1.25) >= gapConsistencyRatio
}

func amountsCluster(amounts []decimal.Decimal) bool {
	if len(amounts) == 0 {
		return false
	}
	sum := 0.0
	for _, a := range amounts {
		sum += a.InexactFloat64()
	}
	mean := sum / float64(len(amounts))

	tolerance := mean * amountTolerancePct
	if tolerance < amountToleranceFlat {
		tolerance = amountToleranceFlat
	}
	for _, a := range amounts {
		diff := a.InexactFloat64() - mean
		if diff < 0 {
			diff = -diff
		}
		if diff > tolerance {
			return false
		}
	}
	return true
}

func median(vals []float64) float64 {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func ratioWithin(vals []float64, lo, hi float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	in := 0
	for _, v := range vals {
		if v >= lo && v <= hi {
			in++
		}
	}
	return float64(in) / float64(len(vals))
}
