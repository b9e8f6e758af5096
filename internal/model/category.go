package model

// Category classifies a transaction. Closed set; assigned once during
// processing and only changed through the override layer.
type Category string

const (
	CategoryGasFuel       Category = "gas-fuel"
	CategoryTravel        Category = "travel"
	CategoryLegal         Category = "legal-accounting"
	CategoryOfficeSupply  Category = "office-supplies"
	CategorySoftware      Category = "software"
	CategoryRepairs       Category = "repairs-maintenance"
	CategoryPostage       Category = "postage-shipping"
	CategoryTaxes         Category = "taxes-licenses"
	CategoryInsurance     Category = "insurance"
	CategorySubscriptions Category = "subscriptions"
	CategorySalesIncome   Category = "sales-income"
	CategoryContribution  Category = "owners-contribution"
	CategoryDistribution  Category = "owners-distribution"
	CategoryTransfers     Category = "transfers"
	CategoryBankFees      Category = "bank-fees"
	CategoryMisc          Category = "miscellaneous"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryGasFuel, CategoryTravel, CategoryLegal, CategoryOfficeSupply,
		CategorySoftware, CategoryRepairs, CategoryPostage, CategoryTaxes,
		CategoryInsurance, CategorySubscriptions, CategorySalesIncome,
		CategoryContribution, CategoryDistribution, CategoryTransfers,
		CategoryBankFees, CategoryMisc:
		return true
	}
	return false
}
