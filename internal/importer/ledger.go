package importer

import (
	"github.com/holdback-dev/holdback/internal/model"
)

// LedgerParser parses accounting-software transaction exports. Header shape:
//
//	Date,Transaction Type,Num,Name,Memo/Description,Account Name,Split,Amount
//
// Amounts arrive as quoted comma-thousands strings ("1,234.56") and are
// parsed into signed decimals. The Split column (the posting category) is
// the external category label; older exports without Split fall back to
// Account Name.
type LedgerParser struct{}

// Format returns the parser name.
func (p *LedgerParser) Format() string { return "ledger" }

// Matches requires the accounting export's signature columns.
func (p *LedgerParser) Matches(header []string) bool {
	return column(header, "transaction type") >= 0 &&
		column(header, "account name") >= 0
}

// ParseRow converts one accounting export row.
func (p *LedgerParser) ParseRow(header, row []string) (model.RawRecord, bool) {
	date, ok := parseDate(cell(row, column(header, "date")))
	if !ok {
		return model.RawRecord{}, false
	}

	amount, ok := parseAmount(cell(row, column(header, "amount")))
	if !ok || amount.IsZero() {
		return model.RawRecord{}, false
	}

	desc := cell(row, column(header, "name"))
	if desc == "" {
		desc = cell(row, column(header, "memo/description"))
	}

	hint := cell(row, column(header, "split"))
	if hint == "" {
		hint = cell(row, column(header, "account name"))
	}

	return model.RawRecord{
		Date:         date,
		Description:  desc,
		Amount:       amount,
		Type:         cell(row, column(header, "transaction type")),
		CategoryHint: hint,
	}, true
}
