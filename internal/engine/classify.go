package engine

import (
	"strings"

	"github.com/holdback-dev/holdback/internal/model"
)

// categoryRule pairs a category with the keywords that select it. Rules are
// evaluated in order; the first keyword hit wins.
type categoryRule struct {
	category model.Category
	keywords []string
}

var categoryRules = []categoryRule{
	{model.CategoryGasFuel, []string{"SHELL", "CHEVRON", "EXXON", "MOBIL", "SUNOCO", "FUEL", "GAS STATION"}},
	{model.CategoryTravel, []string{"AIRLINE", "AIRBNB", "HOTEL", "MARRIOTT", "HILTON", "DELTA AIR", "UNITED AIR", "AMTRAK", "UBER", "LYFT", "TRAVEL"}},
	{model.CategoryLegal, []string{"LEGAL", "ATTORNEY", "LAW OFFICE", "CPA", "ACCOUNTING", "BOOKKEEP", "NOTARY"}},
	{model.CategoryOfficeSupply, []string{"STAPLES", "OFFICE DEPOT", "OFFICEMAX", "OFFICE SUPPL"}},
	{model.CategorySoftware, []string{"ADOBE", "MICROSOFT", "GITHUB", "ZOOM.US", "DROPBOX", "SOFTWARE"}},
	{model.CategoryBankFees, []string{"SERVICE CHARGE", "SERVICE FEE", "OVERDRAFT", "BANK FEE", "MONTHLY FEE", "WIRE FEE", "ATM FEE"}},
	{model.CategoryRepairs, []string{"REPAIR", "MECHANIC", "AUTO PARTS", "PLUMB", "HVAC"}},
	{model.CategoryPostage, []string{"USPS", "FEDEX", "UPS STORE", "POSTAGE", "SHIPPING", "STAMPS"}},
	{model.CategoryTaxes, []string{"IRS", "FRANCHISE TAX", "TAX PAYMENT", "DMV", "REGISTRATION", "LICENSE"}},
	{model.CategoryInsurance, []string{"INSURANCE", "GEICO", "PROGRESSIVE", "HARTFORD", "ALLSTATE", "STATE FARM"}},
	{model.CategorySubscriptions, []string{"NETFLIX", "SPOTIFY", "HULU", "SUBSCRIPTION", "PATREON"}},
	{model.CategorySalesIncome, []string{"COMMISSION", "INVOICE", "DIRECT DEP", "SALES"}},
	{model.CategoryContribution, []string{"OWNER CONTRIBUTION", "CAPITAL CONTRIBUTION", "CONTRIBUTION"}},
	{model.CategoryDistribution, []string{"OWNER DISTRIBUTION", "OWNER DRAW", "DISTRIBUTION"}},
	{model.CategoryTransfers, []string{"TRANSFER", "XFER", "ZELLE"}},
	{model.CategoryBankFees, []string{"FEE"}},
}

// Classify assigns a category to a raw record: external hint first, then
// the description, then type-based defaults, then miscellaneous.
func Classify(rec model.RawRecord) model.Category {
	if rec.CategoryHint != "" {
		if c, ok := matchKeywords(rec.CategoryHint); ok {
			return c
		}
	}
	if c, ok := matchKeywords(rec.Description); ok {
		return c
	}

	typ := strings.ToLower(rec.Type)
	if strings.Contains(typ, "transfer") || strings.Contains(typ, "xfer") {
		return model.CategoryTransfers
	}
	if rec.Amount.IsPositive() || strings.Contains(typ, "credit") {
		return model.CategorySalesIncome
	}
	return model.CategoryMisc
}

func matchKeywords(text string) (model.Category, bool) {
	upper := strings.ToUpper(text)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(upper, kw) {
				return rule.category, true
			}
		}
	}
	return "", false
}
