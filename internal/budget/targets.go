package budget

import "github.com/shopspring/decimal"

// The fixed ratios of the 50-30-20 rule. These are constants of the rule
// itself and intentionally not configurable.
var (
	needsRatio   = decimal.NewFromFloat(0.5)
	wantsRatio   = decimal.NewFromFloat(0.3)
	savingsRatio = decimal.NewFromFloat(0.2)
)

// Allocation is the target spending limit per category for one month.
type Allocation struct {
	Needs   decimal.Decimal `json:"needs" example:"2500"`   // 50% of the monthly income
	Wants   decimal.Decimal `json:"wants" example:"1500"`   // 30% of the monthly income
	Savings decimal.Decimal `json:"savings" example:"1000"` // 20% of the monthly income
}

// Target returns the allocation for a single category.
func (a Allocation) Target(category Category) decimal.Decimal {
	switch category {
	case CategoryNeeds:
		return a.Needs
	case CategorySavings:
		return a.Savings
	default:
		return a.Wants
	}
}

// Targets computes the 50-30-20 allocation for a monthly income.
//
// The income is not validated: zero and negative values simply scale the
// allocation proportionally.
func Targets(monthlyIncome decimal.Decimal) Allocation {
	return Allocation{
		Needs:   monthlyIncome.Mul(needsRatio),
		Wants:   monthlyIncome.Mul(wantsRatio),
		Savings: monthlyIncome.Mul(savingsRatio),
	}
}
