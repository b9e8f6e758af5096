// Package project computes the safe-to-spend picture: how much of the
// current balance must be held back for bills that come due before the
// next commission payment lands.
package project

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/holdback-dev/holdback/internal/model"
	"github.com/holdback-dev/holdback/internal/schedule"
)

// Input gathers everything the projection depends on. All fields are read
// only; Compute has no hidden state and no side effects.
type Input struct {
	Bills          []model.Bill
	Resolutions    map[string]model.BillResolution
	CurrentBalance decimal.Decimal
	Commission     *model.PendingCommission // nil when none pending
}

var oneHundred = decimal.NewFromInt(100)

// Compute derives the projection for ref ("today"). Resolved bills are
// presumed already paid and excluded from the amount to keep; a commission
// expected today folds into liquidity immediately, while a future-dated one
// only lifts the projected balance.
func Compute(in Input, sched *schedule.Calculator, ref time.Time) model.Projection {
	today := truncate(ref)
	next := sched.NextPayment(today)

	amountToKeep := decimal.Zero
	for _, bill := range in.Bills {
		if !bill.Active {
			continue
		}
		if !dueInWindow(bill, today, next.PaymentDate) {
			continue
		}
		if in.Resolutions[bill.ID].Found {
			continue
		}
		amountToKeep = amountToKeep.Add(bill.Amount.Abs())
	}

	liquidity := in.CurrentBalance
	commissionForProjection := decimal.Zero
	if in.Commission != nil {
		if truncate(in.Commission.ExpectedDate).Equal(today) {
			liquidity = liquidity.Add(in.Commission.Amount)
		} else {
			commissionForProjection = in.Commission.Amount
		}
	}

	safeToSpend := liquidity.Sub(amountToKeep)
	shortfall := amountToKeep.Sub(liquidity)
	if shortfall.IsNegative() {
		shortfall = decimal.Zero
	}

	return model.Projection{
		AmountToKeep:     amountToKeep,
		LiquidityBalance: liquidity,
		SafeToSpend:      safeToSpend,
		ProjectedBalance: safeToSpend.Add(commissionForProjection),
		Shortfall:        shortfall,
		IsShort:          shortfall.IsPositive(),
		CoveragePercent:  coverage(liquidity, amountToKeep),
		NextPaymentDate:  next.PaymentDate,
	}
}

// NextCommission returns the earliest commission expected today or later,
// or nil when none qualifies. At most one commission is "next" at any time.
func NextCommission(commissions []model.PendingCommission, ref time.Time) *model.PendingCommission {
	today := truncate(ref)
	var next *model.PendingCommission
	for i := range commissions {
		expected := truncate(commissions[i].ExpectedDate)
		if expected.Before(today) {
			continue
		}
		if next == nil || expected.Before(truncate(next.ExpectedDate)) {
			next = &commissions[i]
		}
	}
	return next
}

// dueInWindow reports whether the bill's next due date falls within
// [today, payday], checking this month and the next so a payday that
// crosses the month boundary still pulls in early-month bills.
func dueInWindow(bill model.Bill, today, payday time.Time) bool {
	// The second anchor must be the first of the next month: AddDate on a
	// month-end today normalizes past short months (Jan 31 plus one month
	// is Mar 3) and would skip February's due dates.
	nextMonth := time.Date(today.Year(), today.Month()+1, 1, 0, 0, 0, 0, today.Location())
	for _, anchor := range []time.Time{today, nextMonth} {
		due := bill.DueDate(anchor)
		if !due.Before(today) && !due.After(payday) {
			return true
		}
	}
	return false
}

// coverage is the percentage of the required hold covered by liquidity,
// clamped to [0, 100].
func coverage(liquidity, amountToKeep decimal.Decimal) int {
	if !amountToKeep.IsPositive() {
		return 100
	}
	pct := liquidity.Mul(oneHundred).Div(amountToKeep).Round(0).IntPart()
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return int(pct)
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
