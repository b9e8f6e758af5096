// Package engine turns raw export records into canonical transactions:
// deterministic ordering and identity, category classification, recurring
// detection over vendor groups, running balances, and pay-period tagging.
package engine

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/holdback-dev/holdback/internal/id"
	"github.com/holdback-dev/holdback/internal/model"
	"github.com/holdback-dev/holdback/internal/schedule"
	"github.com/holdback-dev/holdback/internal/vendor"
)

// Processor builds transactions from raw records.
type Processor struct {
	sched *schedule.Calculator
}

// New creates a Processor.
func New(sched *schedule.Calculator) *Processor {
	return &Processor{sched: sched}
}

// Process converts raw records into transactions, newest first.
// startingBalance seeds the chronological running balance; ref anchors the
// current pay window for PayPeriodImpact. Identical input always yields
// identical output, ids included: the override layer depends on it.
func (p *Processor) Process(records []model.RawRecord, startingBalance decimal.Decimal, ref time.Time) []model.Transaction {
	sorted := make([]model.RawRecord, len(records))
	copy(sorted, records)
	sortRecords(sorted)

	txns := make([]model.Transaction, len(sorted))
	occurrences := make(map[string]int)
	for i, rec := range sorted {
		key := id.DuplicateKey(rec.Date, rec.Amount, rec.Type, rec.Description, rec.CategoryHint)
		occ := occurrences[key]
		occurrences[key] = occ + 1

		txns[i] = model.Transaction{
			ID:          id.Transaction(rec.Date, rec.Amount, rec.Type, rec.Description, rec.CategoryHint, occ),
			Date:        rec.Date,
			Description: rec.Description,
			Amount:      rec.Amount,
			Type:        rec.Type,
			Category:    Classify(rec),
		}
	}

	markRecurring(txns)
	applyRunningBalance(txns, startingBalance)
	p.applyPayPeriod(txns, ref)

	return txns
}

// sortRecords orders newest first with deterministic tie-breaks so that
// same-day same-amount duplicates land in the same order on every run.
func sortRecords(records []model.RawRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		if a.Description != b.Description {
			return a.Description < b.Description
		}
		if cmp := a.Amount.Cmp(b.Amount); cmp != 0 {
			return cmp < 0
		}
		return a.Type < b.Type
	})
}

// markRecurring flags expense transactions whose vendor group repeats on a
// steady cadence with clustered amounts. Income and singleton vendors are
// never recurring.
func markRecurring(txns []model.Transaction) {
	type member struct {
		index  int
		date   time.Time
		amount decimal.Decimal
	}
	groups := make(map[string][]member)
	for i, t := range txns {
		if !t.Amount.IsNegative() {
			continue
		}
		key := vendor.Key(t.Description)
		if key == "" {
			continue
		}
		groups[key] = append(groups[key], member{i, t.Date, t.Amount.Abs()})
	}

	for _, members := range groups {
		if len(members) < 2 {
			continue
		}
		dates := make([]time.Time, len(members))
		amounts := make([]decimal.Decimal, len(members))
		for i, m := range members {
			dates[i] = m.date
			amounts[i] = m.amount
		}
		if !isRecurringGroup(dates, amounts) {
			continue
		}
		for _, m := range members {
			txns[m.index].IsRecurring = true
		}
	}
}

// applyRunningBalance walks oldest to newest, accumulating each amount
// onto the caller-supplied starting balance.
func applyRunningBalance(txns []model.Transaction, startingBalance decimal.Decimal) {
	balance := startingBalance
	for i := len(txns) - 1; i >= 0; i-- {
		balance = balance.Add(txns[i].Amount)
		txns[i].RunningBalance = balance
	}
}

// applyPayPeriod marks transactions inside the current pay window: on or
// after the most recent payment date, strictly before the following cutoff.
func (p *Processor) applyPayPeriod(txns []model.Transaction, ref time.Time) {
	start, end := p.sched.CurrentWindow(ref)
	for i, t := range txns {
		d := time.Date(t.Date.Year(), t.Date.Month(), t.Date.Day(), 0, 0, 0, 0, time.UTC)
		txns[i].PayPeriodImpact = !d.Before(start) && d.Before(end)
	}
}
