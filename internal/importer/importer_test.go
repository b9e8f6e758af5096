package importer

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile("../../testdata/" + name)
	require.NoError(t, err)
	return string(data)
}

func TestParseText_Bank(t *testing.T) {
	res := DefaultRegistry().ParseText(readFixture(t, "bank.csv"))

	assert.Equal(t, 1, res.Sections)
	require.Len(t, res.Records, 4)
	// Zero-amount and missing-date rows are dropped and counted.
	assert.Equal(t, 2, res.Skipped)

	first := res.Records[0]
	assert.Equal(t, "CHECKCARD NETFLIX.COM 866-579-7172", first.Description)
	assert.Equal(t, "-15.49", first.Amount.StringFixed(2))
	assert.Equal(t, "ACH_DEBIT", first.Type)
	assert.Equal(t, 2025, first.Date.Year())
	assert.Equal(t, 3, first.Date.Day())
	assert.True(t, first.HasBalance)
	assert.Equal(t, "4984.51", first.Balance.StringFixed(2))

	deposit := res.Records[2]
	assert.True(t, deposit.Amount.IsPositive())
	assert.Equal(t, "3500.00", deposit.Amount.StringFixed(2))
}

func TestParseText_Card(t *testing.T) {
	res := DefaultRegistry().ParseText(readFixture(t, "card.csv"))

	assert.Equal(t, 1, res.Sections)
	require.Len(t, res.Records, 4)
	assert.Equal(t, 0, res.Skipped)

	first := res.Records[0]
	// The post date, not the transaction date, is authoritative.
	assert.Equal(t, 2, first.Date.Day())
	assert.Equal(t, "Shopping", first.CategoryHint)
	assert.Equal(t, "Sale", first.Type)

	payment := res.Records[3]
	assert.True(t, payment.Amount.IsPositive())
	assert.Empty(t, payment.CategoryHint)
}

func TestParseText_Ledger(t *testing.T) {
	res := DefaultRegistry().ParseText(readFixture(t, "ledger.csv"))

	assert.Equal(t, 1, res.Sections)
	require.Len(t, res.Records, 3)

	ins := res.Records[0]
	// Quoted comma-thousands amount parses into a signed decimal.
	assert.Equal(t, "-1250.00", ins.Amount.StringFixed(2))
	assert.Equal(t, "Hartford Insurance", ins.Description)
	assert.Equal(t, "Insurance", ins.CategoryHint)
	assert.Equal(t, "Expense", ins.Type)

	dep := res.Records[1]
	assert.Equal(t, "3500.00", dep.Amount.StringFixed(2))
}

func TestParseText_MergedSections(t *testing.T) {
	res := DefaultRegistry().ParseText(readFixture(t, "merged.csv"))

	assert.Equal(t, 3, res.Sections)
	require.Len(t, res.Records, 4)

	assert.Equal(t, "ACH_DEBIT", res.Records[0].Type)
	assert.Equal(t, "Sale", res.Records[2].Type)
	assert.Equal(t, "Expense", res.Records[3].Type)
}

func TestParseText_StrayLineInsideSectionSkipped(t *testing.T) {
	text := "Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\n" +
		"DEBIT,03/03/2025,VENDOR A,-5.00,ACH_DEBIT,100.00,\n" +
		"not,a,real,row\n" +
		"DEBIT,03/04/2025,VENDOR B,-6.00,ACH_DEBIT,94.00,\n"
	res := DefaultRegistry().ParseText(text)
	assert.Len(t, res.Records, 2)
	assert.Equal(t, 1, res.Skipped)
}

func TestParseText_UnrecognizedContent(t *testing.T) {
	res := DefaultRegistry().ParseText("hello,world\n1,2\n")
	assert.Empty(t, res.Records)
	assert.Equal(t, 0, res.Sections)
}

func TestParseText_Empty(t *testing.T) {
	res := DefaultRegistry().ParseText("")
	assert.Empty(t, res.Records)
	assert.Equal(t, 0, res.Skipped)
}

func TestParseText_Deterministic(t *testing.T) {
	text := readFixture(t, "merged.csv")
	a := DefaultRegistry().ParseText(text)
	b := DefaultRegistry().ParseText(text)
	assert.Equal(t, a, b)
}

func TestSplitFields_QuotedDelimiter(t *testing.T) {
	fields := splitFields(`a,"1,234.56",c`)
	assert.Equal(t, []string{"a", "1,234.56", "c"}, fields)
}

func TestSplitFields_EscapedQuote(t *testing.T) {
	fields := splitFields(`a,"say ""hi""",c`)
	assert.Equal(t, []string{"a", `say "hi"`, "c"}, fields)
}

func TestParseAmount(t *testing.T) {
	d, ok := parseAmount(`$1,234.56`)
	require.True(t, ok)
	assert.Equal(t, "1234.56", d.StringFixed(2))

	d, ok = parseAmount("(42.00)")
	require.True(t, ok)
	assert.Equal(t, "-42.00", d.StringFixed(2))

	_, ok = parseAmount("")
	assert.False(t, ok)
	_, ok = parseAmount("n/a")
	assert.False(t, ok)
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&BankParser{})
	assert.Panics(t, func() { r.Register(&BankParser{}) })
}

func TestRegistry_Get(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("bank"))
	assert.NotNil(t, r.Get("CARD"))
	assert.Nil(t, r.Get("unknown"))
}
