package id

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/shopspring/decimal"
)

// seed keeps ids stable across releases. Changing it orphans every
// override keyed by an existing id, so it must never change.
const seed = "holdback/txn/1"

// fieldSep separates hashed fields so ("ab","c") and ("a","bc") differ.
const fieldSep = '\x1f'

// Transaction returns a stable id for a transaction. The id is a pure
// function of the record's identifying fields plus an occurrence counter
// that distinguishes exact duplicates, so re-parsing identical file content
// reproduces identical ids in identical order.
func Transaction(date time.Time, amount decimal.Decimal, txType, description, categoryHint string, occurrence int) string {
	h := fnv.New64a()
	for _, field := range []string{
		seed,
		date.Format("2006-01-02"),
		amount.String(),
		txType,
		description,
		categoryHint,
	} {
		h.Write([]byte(field))
		h.Write([]byte{fieldSep})
	}
	fmt.Fprintf(h, "%d", occurrence)
	return fmt.Sprintf("txn_%016x", h.Sum64())
}

// DuplicateKey groups records that are identical in every identifying
// field. Records sharing a key get distinct occurrence counters in input
// order so true duplicates still receive distinct, order-stable ids.
func DuplicateKey(date time.Time, amount decimal.Decimal, txType, description, categoryHint string) string {
	return date.Format("2006-01-02") + string(fieldSep) +
		amount.String() + string(fieldSep) +
		txType + string(fieldSep) +
		description + string(fieldSep) +
		categoryHint
}
