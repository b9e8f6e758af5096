// Package busday provides business-day arithmetic against US bank holidays.
// Years covered by the literal table use it verbatim; outside that range the
// calendar falls back to rule-derived federal holidays with observed-date
// shifts, so date math does not silently degrade past the table's last year.
package busday

import "time"

const dateFormat = "2006-01-02"

const (
	firstTableYear = 2025
	lastTableYear  = 2027
)

// defaultHolidays lists US bank holidays as observed by the Federal Reserve.
// Saturday holidays shift to the preceding Friday, Sunday holidays to the
// following Monday. Covers 2025 through 2027.
var defaultHolidays = []string{
	// 2025
	"2025-01-01", "2025-01-20", "2025-02-17", "2025-05-26", "2025-06-19",
	"2025-07-04", "2025-09-01", "2025-10-13", "2025-11-11", "2025-11-27",
	"2025-12-25",
	// 2026 (Jul 4 falls on a Saturday, observed Jul 3)
	"2026-01-01", "2026-01-19", "2026-02-16", "2026-05-25", "2026-06-19",
	"2026-07-03", "2026-09-07", "2026-10-12", "2026-11-11", "2026-11-26",
	"2026-12-25",
	// 2027 (Juneteenth and Christmas fall on Saturdays, Jul 4 on a Sunday,
	// New Year 2028 on a Saturday observed Dec 31)
	"2027-01-01", "2027-01-18", "2027-02-15", "2027-05-31", "2027-06-18",
	"2027-07-05", "2027-09-06", "2027-10-11", "2027-11-11", "2027-11-25",
	"2027-12-24", "2027-12-31",
}

// Calendar answers business-day questions for a set of holiday dates.
type Calendar struct {
	holidays map[string]struct{}
}

// NewCalendar returns a Calendar seeded with the built-in holiday table
// plus any extra dates supplied by the caller.
func NewCalendar(extra ...time.Time) *Calendar {
	c := &Calendar{holidays: make(map[string]struct{}, len(defaultHolidays)+len(extra))}
	for _, d := range defaultHolidays {
		c.holidays[d] = struct{}{}
	}
	for _, t := range extra {
		c.AddHoliday(t)
	}
	return c
}

// AddHoliday marks a date as a holiday.
func (c *Calendar) AddHoliday(t time.Time) {
	c.holidays[t.Format(dateFormat)] = struct{}{}
}

// IsHoliday reports whether the date is a bank holiday, consulting the
// literal table for its covered years and computed rules elsewhere.
func (c *Calendar) IsHoliday(t time.Time) bool {
	if _, ok := c.holidays[t.Format(dateFormat)]; ok {
		return true
	}
	if t.Year() >= firstTableYear && t.Year() <= lastTableYear {
		return false
	}
	return computedHoliday(t)
}

// computedHoliday checks t against rule-derived observed holidays. The
// following year is included because its New Year's Day can be observed
// on December 31.
func computedHoliday(t time.Time) bool {
	day := t.Format(dateFormat)
	for _, h := range federalHolidays(t.Year()) {
		if h.Format(dateFormat) == day {
			return true
		}
	}
	for _, h := range federalHolidays(t.Year() + 1) {
		if h.Format(dateFormat) == day {
			return true
		}
	}
	return false
}

// federalHolidays returns the observed dates of the eleven US federal
// holidays for a year. Fixed-date holidays shift Saturday to Friday and
// Sunday to Monday, matching Federal Reserve observance.
func federalHolidays(year int) []time.Time {
	fixed := func(m time.Month, d int) time.Time {
		return observed(time.Date(year, m, d, 0, 0, 0, 0, time.UTC))
	}
	return []time.Time{
		fixed(time.January, 1),
		nthWeekday(year, time.January, time.Monday, 3),
		nthWeekday(year, time.February, time.Monday, 3),
		lastWeekday(year, time.May, time.Monday),
		fixed(time.June, 19),
		fixed(time.July, 4),
		nthWeekday(year, time.September, time.Monday, 1),
		nthWeekday(year, time.October, time.Monday, 2),
		fixed(time.November, 11),
		nthWeekday(year, time.November, time.Thursday, 4),
		fixed(time.December, 25),
	}
}

func observed(t time.Time) time.Time {
	switch t.Weekday() {
	case time.Saturday:
		return t.AddDate(0, 0, -1)
	case time.Sunday:
		return t.AddDate(0, 0, 1)
	}
	return t
}

func nthWeekday(year int, month time.Month, weekday time.Weekday, n int) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, offset+(n-1)*7)
}

func lastWeekday(year int, month time.Month, weekday time.Weekday) time.Time {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	offset := (int(last.Weekday()) - int(weekday) + 7) % 7
	return last.AddDate(0, 0, -offset)
}

// IsBusinessDay reports whether the date is a weekday that is not a holiday.
func (c *Calendar) IsBusinessDay(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return !c.IsHoliday(t)
}

// NthBusinessDayAfter walks forward from t one calendar day at a time,
// counting only business days, until n have passed. n must be positive.
func (c *Calendar) NthBusinessDayAfter(t time.Time, n int) time.Time {
	day := t
	for count := 0; count < n; {
		day = day.AddDate(0, 0, 1)
		if c.IsBusinessDay(day) {
			count++
		}
	}
	return day
}
