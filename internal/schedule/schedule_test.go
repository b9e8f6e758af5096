package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/holdback-dev/holdback/internal/busday"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newCalc() *Calculator {
	return New(busday.NewCalendar())
}

func TestCutoffsIn(t *testing.T) {
	c := newCalc()
	cutoffs := c.CutoffsIn(2025, time.March)
	assert.Equal(t, date(2025, time.March, 15), cutoffs[0])
	assert.Equal(t, date(2025, time.March, 31), cutoffs[1])
}

func TestCutoffsIn_February(t *testing.T) {
	c := newCalc()
	cutoffs := c.CutoffsIn(2025, time.February)
	assert.Equal(t, date(2025, time.February, 28), cutoffs[1])

	leap := c.CutoffsIn(2028, time.February)
	assert.Equal(t, date(2028, time.February, 29), leap[1])
}

func TestPeriodFor_WeekendCutoff(t *testing.T) {
	c := newCalc()
	// Mar 15 2025 is a Saturday; 4 business days after: Mar 17, 18, 19, 20.
	p := c.PeriodFor(date(2025, time.March, 15))
	assert.Equal(t, date(2025, time.March, 20), p.PaymentDate)
}

func TestPeriodFor_HolidayInLag(t *testing.T) {
	c := newCalc()
	// Jan 15 2025 cutoff; Jan 20 (MLK) is a holiday: Jan 16, 17, 21, 22.
	p := c.PeriodFor(date(2025, time.January, 15))
	assert.Equal(t, date(2025, time.January, 22), p.PaymentDate)
}

func TestPeriodFor_YearBoundary(t *testing.T) {
	c := newCalc()
	// Dec 31 2025 cutoff; Jan 1 2026 is a holiday: Jan 2, 5, 6, 7.
	p := c.PeriodFor(date(2025, time.December, 31))
	assert.Equal(t, date(2026, time.January, 7), p.PaymentDate)
}

func TestNextPayment_MidMonth(t *testing.T) {
	c := newCalc()
	p := c.NextPayment(date(2025, time.March, 10))
	assert.Equal(t, date(2025, time.March, 20), p.PaymentDate)
	assert.Equal(t, date(2025, time.March, 15), p.CutoffDate)
}

func TestNextPayment_BridgesPastToday(t *testing.T) {
	c := newCalc()
	// Mar 20 2025 is itself a payment date; the next payday must be
	// strictly later, never today.
	p := c.NextPayment(date(2025, time.March, 20))
	assert.True(t, p.PaymentDate.After(date(2025, time.March, 20)))
	assert.Equal(t, date(2025, time.April, 4), p.PaymentDate)
}

func TestNextPayment_EndOfMonth(t *testing.T) {
	c := newCalc()
	// Feb 28 2025 cutoff pays Mar 6 (Feb 21 from the mid-month cutoff is past).
	p := c.NextPayment(date(2025, time.February, 27))
	assert.Equal(t, date(2025, time.March, 6), p.PaymentDate)
}

func TestNextPayment_AlwaysBusinessDay(t *testing.T) {
	c := newCalc()
	cal := busday.NewCalendar()
	for d := date(2025, time.January, 1); d.Before(date(2025, time.June, 1)); d = d.AddDate(0, 0, 1) {
		p := c.NextPayment(d)
		assert.True(t, cal.IsBusinessDay(p.PaymentDate), "payment %s for ref %s", p.PaymentDate, d)
		assert.True(t, p.PaymentDate.After(d))
	}
}

func TestCurrentWindow(t *testing.T) {
	c := newCalc()
	// Mar 25 2025: most recent payment was Mar 20 (Mar 15 cutoff), next
	// cutoff after it is Mar 31.
	start, end := c.CurrentWindow(date(2025, time.March, 25))
	assert.Equal(t, date(2025, time.March, 20), start)
	assert.Equal(t, date(2025, time.March, 31), end)
}

func TestCurrentWindow_StartsOnPaymentDate(t *testing.T) {
	c := newCalc()
	// On the payment date itself the window has just begun.
	start, end := c.CurrentWindow(date(2025, time.March, 20))
	assert.Equal(t, date(2025, time.March, 20), start)
	assert.Equal(t, date(2025, time.March, 31), end)
}

func TestCurrentWindow_YearBoundary(t *testing.T) {
	c := newCalc()
	// Jan 3 2026: the Dec 31 cutoff has not paid out yet (pays Jan 7), so
	// the current window is still the one opened by the Dec 19 payment.
	start, end := c.CurrentWindow(date(2026, time.January, 3))
	assert.Equal(t, date(2025, time.December, 19), start)
	assert.Equal(t, date(2025, time.December, 31), end)
}

func TestPeriodFor_Label(t *testing.T) {
	c := newCalc()
	p := c.PeriodFor(date(2025, time.March, 15))
	assert.Equal(t, "Mar 15 cutoff, paid Mar 20", p.Label)
}
