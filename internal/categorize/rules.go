package categorize

import "github.com/shopspring/decimal"

// Rule maps a keyword found in a transaction description to a category.
type Rule struct {
	Keyword  string
	Category string
}

// AmountRule assigns Category to otherwise unmatched transactions whose
// amount lies in [Min, Max]. An empty Category disables the rule.
type AmountRule struct {
	Min      decimal.Decimal
	Max      decimal.Decimal
	Category string
}

// DefaultRules returns the built-in keyword rules. Order matters: the first
// rule whose keyword appears in a description wins.
func DefaultRules() []Rule {
	return []Rule{
		{Keyword: "FOODBOOK", Category: "food"},
		{Keyword: "PAYTM", Category: "food"},
		{Keyword: "RECHARGE", Category: "recharge"},
		{Keyword: "GOOGLE", Category: "recharge"},
		{Keyword: "KSRTC", Category: "travel"},
		{Keyword: "MAKEMYTRIP", Category: "travel"},
		{Keyword: "MEDIC", Category: "medicals"},
		{Keyword: "HOSPITAL", Category: "medicals"},
		{Keyword: "HOSTELLER", Category: "stay"},
		{Keyword: "BESCOM", Category: "bill"},
		{Keyword: "EMI", Category: "emi"},
		{Keyword: "CLOTHES", Category: "clothes"},
		{Keyword: "MYNTRA", Category: "clothes"},
		{Keyword: "HONDA", Category: "service"},
		{Keyword: "MART", Category: "groceries"},
		{Keyword: "COMPASS", Category: "food"},
		{Keyword: "COURSERA", Category: "certificate"},
		{Keyword: "SMOKE", Category: "smokes"},
		{Keyword: "ABDUL", Category: "smokes"},
		{Keyword: "SURAJ", Category: "smokes"},
	}
}

// DefaultAmountRule returns the built-in numeric fallback: 73 to 77 inclusive.
func DefaultAmountRule() AmountRule {
	return AmountRule{
		Min:      decimal.NewFromInt(73),
		Max:      decimal.NewFromInt(77),
		Category: "smokes",
	}
}
