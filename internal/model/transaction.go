package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RawRecord is one row lifted out of an export file before processing.
// Transient; discarded once transactions are built.
type RawRecord struct {
	Date         time.Time
	Description  string
	Amount       decimal.Decimal // negative = expense, positive = income
	Type         string          // source type label (ACH_DEBIT, Sale, Expense, etc.)
	Balance      decimal.Decimal // running balance from the source, zero if absent
	HasBalance   bool
	CategoryHint string // external category label, accounting exports only
}

// Transaction is the canonical processed unit. Immutable once built; user
// edits to Category and IsRecurring live in a separate override layer keyed
// by ID, so ID must be reproducible across re-ingestion of identical content.
type Transaction struct {
	ID              string
	Date            time.Time
	Description     string
	Amount          decimal.Decimal // negative = expense, positive = income
	Type            string
	Category        Category
	IsRecurring     bool
	RunningBalance  decimal.Decimal
	PayPeriodImpact bool
}

// IsExpense reports whether the transaction spends money. Some sources
// encode expenses as positive amounts with a debit-flavored type label.
func (t Transaction) IsExpense() bool {
	if t.Amount.IsNegative() {
		return true
	}
	return t.Amount.IsPositive() && strings.Contains(strings.ToLower(t.Type), "debit")
}
