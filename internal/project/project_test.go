package project

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/holdback-dev/holdback/internal/busday"
	"github.com/holdback-dev/holdback/internal/model"
	"github.com/holdback-dev/holdback/internal/schedule"
)

func newSched() *schedule.Calculator {
	return schedule.New(busday.NewCalendar())
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func bill(id string, amount float64, dueDay int) model.Bill {
	return model.Bill{
		ID:     id,
		Vendor: "Vendor " + id,
		Amount: decimal.NewFromFloat(amount),
		DueDay: dueDay,
		Active: true,
		Type:   model.BillRecurring,
	}
}

// Mar 25 2025: next payday is Apr 4 (Mar 31 cutoff + 4 business days).
var ref = date(2025, time.March, 25)

func TestCompute_Shortfall(t *testing.T) {
	in := Input{
		Bills:          []model.Bill{bill("b1", 200, 28), bill("b2", 150, 27)},
		Resolutions:    map[string]model.BillResolution{},
		CurrentBalance: decimal.NewFromInt(200),
	}

	p := Compute(in, newSched(), ref)
	assert.Equal(t, "350.00", p.AmountToKeep.StringFixed(2))
	assert.Equal(t, "150.00", p.Shortfall.StringFixed(2))
	assert.True(t, p.IsShort)
	assert.Equal(t, 57, p.CoveragePercent)
	assert.Equal(t, "-150.00", p.SafeToSpend.StringFixed(2))
}

func TestCompute_ResolvedBillExcluded(t *testing.T) {
	// Mar 1 2025: next payday is Mar 6 (Feb 28 cutoff), so a bill due the
	// 5th is in-window. Resolved means presumed paid, so it is excluded.
	early := date(2025, time.March, 1)
	in := Input{
		Bills: []model.Bill{bill("internet", 50, 5)},
		Resolutions: map[string]model.BillResolution{
			"internet": {Found: true, TransactionID: "t1"},
		},
		CurrentBalance: decimal.NewFromInt(300),
	}

	p := Compute(in, newSched(), early)
	assert.True(t, p.AmountToKeep.IsZero())
	assert.Equal(t, "300.00", p.SafeToSpend.StringFixed(2))
	assert.False(t, p.IsShort)
	assert.Equal(t, 100, p.CoveragePercent)
}

func TestCompute_UnresolvedInWindowCounts(t *testing.T) {
	early := date(2025, time.March, 1)
	in := Input{
		Bills:          []model.Bill{bill("internet", 50, 5)},
		Resolutions:    map[string]model.BillResolution{},
		CurrentBalance: decimal.NewFromInt(300),
	}

	p := Compute(in, newSched(), early)
	assert.Equal(t, "50.00", p.AmountToKeep.StringFixed(2))
	assert.Equal(t, "250.00", p.SafeToSpend.StringFixed(2))
}

func TestCompute_SameDayCommissionFolds(t *testing.T) {
	commission := &model.PendingCommission{
		Amount:       decimal.NewFromInt(1000),
		ExpectedDate: ref,
		CutoffLabel:  "Mar 15 cutoff",
	}
	in := Input{
		Bills:          []model.Bill{bill("b1", 600, 28)},
		Resolutions:    map[string]model.BillResolution{},
		CurrentBalance: decimal.NewFromInt(100),
		Commission:     commission,
	}

	p := Compute(in, newSched(), ref)
	assert.Equal(t, "1100.00", p.LiquidityBalance.StringFixed(2))
	assert.Equal(t, "500.00", p.SafeToSpend.StringFixed(2))
	// Already folded into liquidity: not double-counted in the projection.
	assert.Equal(t, "500.00", p.ProjectedBalance.StringFixed(2))
	assert.False(t, p.IsShort)
}

func TestCompute_FutureCommissionOnlyLiftsProjection(t *testing.T) {
	commission := &model.PendingCommission{
		Amount:       decimal.NewFromInt(1000),
		ExpectedDate: date(2025, time.April, 4),
	}
	in := Input{
		Bills:          []model.Bill{bill("b1", 600, 28)},
		Resolutions:    map[string]model.BillResolution{},
		CurrentBalance: decimal.NewFromInt(100),
		Commission:     commission,
	}

	p := Compute(in, newSched(), ref)
	assert.Equal(t, "100.00", p.LiquidityBalance.StringFixed(2))
	assert.Equal(t, "-500.00", p.SafeToSpend.StringFixed(2))
	assert.Equal(t, "500.00", p.ProjectedBalance.StringFixed(2))
	assert.True(t, p.IsShort)
	assert.Equal(t, "500.00", p.Shortfall.StringFixed(2))
}

func TestCompute_BillDueAfterPaydayIgnored(t *testing.T) {
	// Due the 10th: Mar 10 is past, Apr 10 is after the Apr 4 payday.
	in := Input{
		Bills:          []model.Bill{bill("b1", 75, 10)},
		Resolutions:    map[string]model.BillResolution{},
		CurrentBalance: decimal.NewFromInt(500),
	}

	p := Compute(in, newSched(), ref)
	assert.True(t, p.AmountToKeep.IsZero())
}

func TestCompute_CrossMonthDueDateInWindow(t *testing.T) {
	// Due the 2nd: Apr 2 falls before the Apr 4 payday.
	in := Input{
		Bills:          []model.Bill{bill("b1", 75, 2)},
		Resolutions:    map[string]model.BillResolution{},
		CurrentBalance: decimal.NewFromInt(500),
	}

	p := Compute(in, newSched(), ref)
	assert.Equal(t, "75.00", p.AmountToKeep.StringFixed(2))
}

func TestCompute_MonthEndRefSeesNextMonthBills(t *testing.T) {
	// Jan 31 2025: next payday is Feb 6 (Jan 31 cutoff). A bill due the
	// 3rd lands on Feb 3, inside the window even though February is
	// shorter than January.
	monthEnd := date(2025, time.January, 31)
	in := Input{
		Bills:          []model.Bill{bill("b1", 120, 3)},
		Resolutions:    map[string]model.BillResolution{},
		CurrentBalance: decimal.NewFromInt(500),
	}

	p := Compute(in, newSched(), monthEnd)
	assert.Equal(t, date(2025, time.February, 6), p.NextPaymentDate)
	assert.Equal(t, "120.00", p.AmountToKeep.StringFixed(2))
}

func TestCompute_InactiveBillIgnored(t *testing.T) {
	b := bill("b1", 200, 28)
	b.Active = false
	in := Input{
		Bills:          []model.Bill{b},
		Resolutions:    map[string]model.BillResolution{},
		CurrentBalance: decimal.NewFromInt(100),
	}

	p := Compute(in, newSched(), ref)
	assert.True(t, p.AmountToKeep.IsZero())
}

func TestCompute_CoverageBounds(t *testing.T) {
	sched := newSched()

	rich := Input{
		Bills:          []model.Bill{bill("b1", 10, 28)},
		Resolutions:    map[string]model.BillResolution{},
		CurrentBalance: decimal.NewFromInt(1000000),
	}
	assert.Equal(t, 100, Compute(rich, sched, ref).CoveragePercent)

	overdrawn := Input{
		Bills:          []model.Bill{bill("b1", 100, 28)},
		Resolutions:    map[string]model.BillResolution{},
		CurrentBalance: decimal.NewFromInt(-50),
	}
	assert.Equal(t, 0, Compute(overdrawn, sched, ref).CoveragePercent)

	noBills := Input{CurrentBalance: decimal.NewFromInt(-50)}
	assert.Equal(t, 100, Compute(noBills, sched, ref).CoveragePercent)
}

func TestCompute_EmptyStateIsRepresentable(t *testing.T) {
	p := Compute(Input{CurrentBalance: decimal.Zero}, newSched(), ref)
	assert.True(t, p.AmountToKeep.IsZero())
	assert.False(t, p.IsShort)
	assert.Equal(t, 100, p.CoveragePercent)
	assert.Equal(t, date(2025, time.April, 4), p.NextPaymentDate)
}

func TestNextCommission(t *testing.T) {
	commissions := []model.PendingCommission{
		{Amount: decimal.NewFromInt(500), ExpectedDate: date(2025, time.March, 10)}, // past
		{Amount: decimal.NewFromInt(800), ExpectedDate: date(2025, time.April, 7)},
		{Amount: decimal.NewFromInt(900), ExpectedDate: date(2025, time.March, 25)}, // today
	}

	next := NextCommission(commissions, ref)
	assert.NotNil(t, next)
	assert.Equal(t, "900", next.Amount.String())
}

func TestNextCommission_NonePending(t *testing.T) {
	commissions := []model.PendingCommission{
		{Amount: decimal.NewFromInt(500), ExpectedDate: date(2025, time.March, 10)},
	}
	assert.Nil(t, NextCommission(commissions, ref))
}
