package id

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var testDate = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

func TestTransaction_Deterministic(t *testing.T) {
	amt := decimal.NewFromFloat(-42.50)
	a := Transaction(testDate, amt, "ACH_DEBIT", "NETFLIX.COM", "", 0)
	b := Transaction(testDate, amt, "ACH_DEBIT", "NETFLIX.COM", "", 0)
	assert.Equal(t, a, b)
}

func TestTransaction_OccurrenceDistinguishesDuplicates(t *testing.T) {
	amt := decimal.NewFromFloat(-5.00)
	a := Transaction(testDate, amt, "DEBIT", "COFFEE SHOP", "", 0)
	b := Transaction(testDate, amt, "DEBIT", "COFFEE SHOP", "", 1)
	assert.NotEqual(t, a, b)
}

func TestTransaction_FieldsChangeID(t *testing.T) {
	amt := decimal.NewFromFloat(-10)
	base := Transaction(testDate, amt, "DEBIT", "VENDOR", "", 0)

	assert.NotEqual(t, base, Transaction(testDate.AddDate(0, 0, 1), amt, "DEBIT", "VENDOR", "", 0))
	assert.NotEqual(t, base, Transaction(testDate, decimal.NewFromFloat(-11), "DEBIT", "VENDOR", "", 0))
	assert.NotEqual(t, base, Transaction(testDate, amt, "CREDIT", "VENDOR", "", 0))
	assert.NotEqual(t, base, Transaction(testDate, amt, "DEBIT", "OTHER", "", 0))
	assert.NotEqual(t, base, Transaction(testDate, amt, "DEBIT", "VENDOR", "Travel", 0))
}

func TestTransaction_NoFieldBleed(t *testing.T) {
	amt := decimal.NewFromFloat(-1)
	a := Transaction(testDate, amt, "AB", "C", "", 0)
	b := Transaction(testDate, amt, "A", "BC", "", 0)
	assert.NotEqual(t, a, b)
}

func TestTransaction_Format(t *testing.T) {
	got := Transaction(testDate, decimal.NewFromFloat(-1), "DEBIT", "X", "", 0)
	assert.Regexp(t, `^txn_[0-9a-f]{16}$`, got)
}

func TestDuplicateKey_EqualForIdenticalFields(t *testing.T) {
	amt := decimal.NewFromFloat(-9.99)
	a := DuplicateKey(testDate, amt, "DEBIT", "SPOTIFY", "")
	b := DuplicateKey(testDate, amt, "DEBIT", "SPOTIFY", "")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, DuplicateKey(testDate, amt, "DEBIT", "SPOTIFY USA", ""))
}
