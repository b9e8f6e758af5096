// Package match resolves user-declared bills against observed transactions:
// a bill is resolved when the calling month contains an expense from the
// same normalized vendor, taking the transaction whose amount is closest to
// the bill's declared amount.
package match

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/holdback-dev/holdback/internal/model"
	"github.com/holdback-dev/holdback/internal/vendor"
)

// Resolve computes the resolution status of each active bill for the
// calendar month containing ref. Results are independent per bill: one
// transaction may satisfy several bills, by design.
func Resolve(bills []model.Bill, txns []model.Transaction, ref time.Time) map[string]model.BillResolution {
	byVendor := groupExpenses(txns, ref)

	out := make(map[string]model.BillResolution, len(bills))
	for _, bill := range bills {
		if !bill.Active {
			continue
		}
		out[bill.ID] = resolveOne(bill, byVendor[vendor.Key(bill.Vendor)])
	}
	return out
}

// groupExpenses indexes the month's expense-equivalent transactions by
// vendor key, preserving input order so amount ties break to first-found.
func groupExpenses(txns []model.Transaction, ref time.Time) map[string][]model.Transaction {
	groups := make(map[string][]model.Transaction)
	for _, t := range txns {
		if t.Date.Year() != ref.Year() || t.Date.Month() != ref.Month() {
			continue
		}
		if !t.IsExpense() {
			continue
		}
		key := vendor.Key(t.Description)
		if key == "" {
			continue
		}
		groups[key] = append(groups[key], t)
	}
	return groups
}

func resolveOne(bill model.Bill, candidates []model.Transaction) model.BillResolution {
	var best *model.Transaction
	var bestDiff decimal.Decimal

	target := bill.Amount.Abs()
	for i := range candidates {
		diff := candidates[i].Amount.Abs().Sub(target).Abs()
		if best == nil || diff.LessThan(bestDiff) {
			best = &candidates[i]
			bestDiff = diff
		}
	}

	if best == nil {
		return model.BillResolution{}
	}
	return model.BillResolution{
		Found:         true,
		TransactionID: best.ID,
		Date:          best.Date,
		Amount:        best.Amount,
	}
}
