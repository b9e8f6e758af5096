// Package schedule computes the contractual commission payment schedule:
// cutoffs on the 15th and on the last calendar day of each month, with
// payment issued on the 4th business day after each cutoff.
package schedule

import (
	"time"

	"github.com/holdback-dev/holdback/internal/busday"
	"github.com/holdback-dev/holdback/internal/model"
)

// paymentLagDays is the contractual lag between cutoff and deposit.
const paymentLagDays = 4

// Calculator derives payment periods from a business-day calendar.
type Calculator struct {
	cal *busday.Calendar
}

// New creates a Calculator.
func New(cal *busday.Calendar) *Calculator {
	return &Calculator{cal: cal}
}

// CutoffsIn returns the month's two cutoff dates: the 15th and the last
// calendar day.
func (c *Calculator) CutoffsIn(year int, month time.Month) [2]time.Time {
	mid := time.Date(year, month, 15, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	return [2]time.Time{mid, last}
}

// PeriodFor returns the payment period anchored at a cutoff date.
func (c *Calculator) PeriodFor(cutoff time.Time) model.PaymentPeriod {
	payment := c.cal.NthBusinessDayAfter(cutoff, paymentLagDays)
	return model.PaymentPeriod{
		CutoffDate:  cutoff,
		PaymentDate: payment,
		Label:       cutoff.Format("Jan 2") + " cutoff, paid " + payment.Format("Jan 2"),
	}
}

// NextPayment returns the first payment period whose payment date is
// strictly after ref. If ref is itself a payment date the result bridges
// forward to the following one; downstream window logic relies on the next
// payday never equaling "today".
func (c *Calculator) NextPayment(ref time.Time) model.PaymentPeriod {
	today := truncate(ref)
	for _, cutoff := range c.cutoffsAround(today, 0, 2) {
		period := c.PeriodFor(cutoff)
		if period.PaymentDate.After(today) {
			return period
		}
	}
	// Unreachable: a payment always lands within two months of any cutoff.
	return model.PaymentPeriod{}
}

// CurrentWindow returns the pay window containing ref: from the most
// recent payment date on or before ref (inclusive) to the first cutoff
// after it (exclusive).
func (c *Calculator) CurrentWindow(ref time.Time) (start, end time.Time) {
	today := truncate(ref)

	for _, cutoff := range c.cutoffsAround(today, -4, 0) {
		period := c.PeriodFor(cutoff)
		if !period.PaymentDate.After(today) {
			start = period.PaymentDate
		}
	}

	for _, cutoff := range c.cutoffsAround(start, 0, 2) {
		if cutoff.After(start) {
			return start, cutoff
		}
	}
	return start, end
}

// cutoffsAround returns all cutoffs from monthOffset fromMonths through
// toMonths relative to ref, in chronological order.
func (c *Calculator) cutoffsAround(ref time.Time, fromMonths, toMonths int) []time.Time {
	var out []time.Time
	for off := fromMonths; off <= toMonths; off++ {
		anchor := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, off, 0)
		cutoffs := c.CutoffsIn(anchor.Year(), anchor.Month())
		out = append(out, cutoffs[0], cutoffs[1])
	}
	return out
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
