package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentPeriod is a computed cutoff/payment pair. Pure function of a
// reference date and the holiday calendar; never stored.
type PaymentPeriod struct {
	CutoffDate  time.Time
	PaymentDate time.Time
	Label       string
}

// Projection is the computed safe-to-spend picture. Pure function of its
// inputs; recomputed on every call.
type Projection struct {
	AmountToKeep     decimal.Decimal // unresolved bills due before next payday
	LiquidityBalance decimal.Decimal // current balance plus any same-day commission
	SafeToSpend      decimal.Decimal
	ProjectedBalance decimal.Decimal // safe-to-spend plus future-dated commission
	Shortfall        decimal.Decimal
	IsShort          bool
	CoveragePercent  int // always within [0, 100]
	NextPaymentDate  time.Time
}
