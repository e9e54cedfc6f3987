package models

import (
	"github.com/shopspring/decimal"
)

// Setting holds the process-wide configuration values.
//
// There is exactly one row. The monthly income is a single scalar for the
// whole ledger, it is not tracked per card or per expense.
type Setting struct {
	DefaultModel
	MonthlyIncome decimal.Decimal `json:"monthlyIncome" gorm:"type:DECIMAL(20,8)" example:"5000"`
}
