// Package export serializes processed transactions to a flat delimited
// table for round-tripping with spreadsheet tools.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/holdback-dev/holdback/internal/model"
)

// Header is the CSV header for transaction exports.
const Header = "date,description,amount,type,recurring,category,pay_period_impact,running_balance"

const (
	numFields     = 8
	dateFormat    = "2006-01-02"
	colDate       = 0
	colDesc       = 1
	colAmount     = 2
	colType       = 3
	colRecurring  = 4
	colCategory   = 5
	colPayPeriod  = 6
	colRunBalance = 7
)

// Write writes transactions (including header) to w.
func Write(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, txn := range txns {
		if err := cw.Write(Marshal(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// Read reads an exported transaction table from r. IDs are not part of the
// export format; re-ingest the source file to recover stable ids.
func Read(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading export CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := Unmarshal(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// Marshal converts a Transaction to a CSV row.
func Marshal(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = txn.Date.Format(dateFormat)
	row[colDesc] = txn.Description
	row[colAmount] = txn.Amount.StringFixed(2)
	row[colType] = txn.Type
	row[colRecurring] = strconv.FormatBool(txn.IsRecurring)
	row[colCategory] = string(txn.Category)
	row[colPayPeriod] = strconv.FormatBool(txn.PayPeriodImpact)
	row[colRunBalance] = txn.RunningBalance.StringFixed(2)
	return row
}

// Unmarshal converts a CSV row to a Transaction.
func Unmarshal(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	recurring, err := strconv.ParseBool(record[colRecurring])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing recurring %q: %w", record[colRecurring], err)
	}

	payPeriod, err := strconv.ParseBool(record[colPayPeriod])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing pay_period_impact %q: %w", record[colPayPeriod], err)
	}

	balance, err := decimal.NewFromString(record[colRunBalance])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing running_balance %q: %w", record[colRunBalance], err)
	}

	return model.Transaction{
		Date:            date,
		Description:     record[colDesc],
		Amount:          amount,
		Type:            record[colType],
		IsRecurring:     recurring,
		Category:        model.Category(record[colCategory]),
		PayPeriodImpact: payPeriod,
		RunningBalance:  balance,
	}, nil
}
