package importer

import (
	"github.com/holdback-dev/holdback/internal/model"
)

// CardParser parses credit-card statement exports. Header shape:
//
//	Transaction Date,Post Date,Description,Category,Type,Amount,Memo
//
// The post date is the authoritative posting date. The card network's own
// category label, when present, is carried through as a hint.
type CardParser struct{}

// Format returns the parser name.
func (p *CardParser) Format() string { return "card" }

// Matches requires both date columns plus an amount column.
func (p *CardParser) Matches(header []string) bool {
	return column(header, "transaction date") >= 0 &&
		column(header, "post date") >= 0 &&
		column(header, "amount") >= 0
}

// ParseRow converts one card statement row.
func (p *CardParser) ParseRow(header, row []string) (model.RawRecord, bool) {
	date, ok := parseDate(cell(row, column(header, "post date")))
	if !ok {
		return model.RawRecord{}, false
	}

	amount, ok := parseAmount(cell(row, column(header, "amount")))
	if !ok || amount.IsZero() {
		return model.RawRecord{}, false
	}

	return model.RawRecord{
		Date:         date,
		Description:  cell(row, column(header, "description")),
		Amount:       amount,
		Type:         cell(row, column(header, "type")),
		CategoryHint: cell(row, column(header, "category")),
	}, true
}
