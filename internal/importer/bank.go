package importer

import (
	"github.com/holdback-dev/holdback/internal/model"
)

// BankParser parses checking-account statement exports. Header shape:
//
//	Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #
//
// Amounts are already signed (negative = withdrawal). The Balance column,
// when present and numeric, is carried through as the source balance.
type BankParser struct{}

// Format returns the parser name.
func (p *BankParser) Format() string { return "bank" }

// Matches reports whether the header starts with a details column and
// carries a posting date.
func (p *BankParser) Matches(header []string) bool {
	if len(header) == 0 || header[0] != "details" {
		return false
	}
	return column(header, "posting date") >= 0
}

// ParseRow converts one statement row.
func (p *BankParser) ParseRow(header, row []string) (model.RawRecord, bool) {
	date, ok := parseDate(cell(row, column(header, "posting date")))
	if !ok {
		return model.RawRecord{}, false
	}

	amount, ok := parseAmount(cell(row, column(header, "amount")))
	if !ok || amount.IsZero() {
		return model.RawRecord{}, false
	}

	rec := model.RawRecord{
		Date:        date,
		Description: cell(row, column(header, "description")),
		Amount:      amount,
		Type:        cell(row, column(header, "type")),
	}

	if bal, ok := parseAmount(cell(row, column(header, "balance"))); ok {
		rec.Balance = bal
		rec.HasBalance = true
	}
	return rec, true
}
