package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Card represents a credit card whose expenses are tracked.
type Card struct {
	DefaultModel
	Name        string          `json:"name" example:"Visa Platinum"`
	LastFour    string          `json:"lastFour" example:"4242"`                            // Last four digits of the card number
	CreditLimit decimal.Decimal `json:"limit" gorm:"type:DECIMAL(20,8)" example:"5000"`     // Credit limit of the card
	Balance     decimal.Decimal `json:"balance" gorm:"type:DECIMAL(20,8)" example:"371.29"` // Current balance. May exceed the limit, this is not enforced.
}

// BeforeSave trims whitespace from all strings.
func (c *Card) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.LastFour = strings.TrimSpace(c.LastFour)

	return nil
}

// Expenses returns all expenses recorded against this card,
// oldest first.
func (c Card) Expenses(db *gorm.DB) ([]Expense, error) {
	var expenses []Expense

	err := db.Where(Expense{CardID: c.ID}).Order("created_at ASC").Find(&expenses).Error
	return expenses, err
}
