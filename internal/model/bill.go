package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillType distinguishes recurring obligations from one-offs.
type BillType string

const (
	BillRecurring BillType = "recurring"
	BillOneTime   BillType = "one-time"
)

// Bill is a user-declared obligation. DueDay is 1-31; months shorter than
// the due day clamp it to their last calendar day.
type Bill struct {
	ID       string
	Vendor   string
	Amount   decimal.Decimal
	DueDay   int
	Category Category
	Active   bool
	Type     BillType
}

// DueDate returns the bill's due date in the month containing ref,
// clamping DueDay to the month's actual length.
func (b Bill) DueDate(ref time.Time) time.Time {
	lastDay := time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, ref.Location()).Day()
	day := b.DueDay
	if day > lastDay {
		day = lastDay
	}
	if day < 1 {
		day = 1
	}
	return time.Date(ref.Year(), ref.Month(), day, 0, 0, 0, 0, ref.Location())
}

// PendingCommission is one expected deposit. At most one is "next" at any
// time: the earliest entry dated today or later.
type PendingCommission struct {
	Amount       decimal.Decimal
	ExpectedDate time.Time
	CutoffLabel  string
}

// BillResolution reports whether a bill matched a transaction in the
// calling month. Recomputed on every call, never persisted.
type BillResolution struct {
	Found         bool
	TransactionID string
	Date          time.Time
	Amount        decimal.Decimal
}
