package models

import (
	"strings"
	"time"

	"github.com/budgetlens/backend/internal/budget"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense represents a single expense recorded against a card.
type Expense struct {
	DefaultModel
	CardID      uuid.UUID       `json:"cardId" example:"d4e8d28a-5e6b-4bc2-9ba6-ebc8a3e7f9e0"` // ID of the card the expense was made with
	Card        Card            `json:"-"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"120"` // Amount of the expense. Not validated, negative amounts are corrections.
	Description string          `json:"description" example:"Weekly shopping"`
	Category    budget.Category `json:"category" example:"needs"`        // Derived from the subcategory at creation time
	Subcategory string          `json:"subcategory" example:"groceries"` // Fine-grained expense tag
	Date        time.Time       `json:"date" example:"2022-04-02T00:00:00Z"`
}

// BeforeSave trims whitespace from all strings.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)
	e.Subcategory = strings.TrimSpace(e.Subcategory)

	return nil
}

// BeforeCreate derives the category from the subcategory and stamps the
// creation date.
//
// The category is stored, not recomputed on reads. Expenses keep the category
// they were created with even if the categorization tables change later.
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)

	if e.Category == "" {
		e.Category = budget.Categorize(e.Subcategory)
	}

	// Date-only precision, always UTC
	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	}
	e.Date = e.Date.In(time.UTC).Truncate(24 * time.Hour)

	return nil
}

// AfterFind normalizes the date to UTC, see DefaultModel.AfterFind.
func (e *Expense) AfterFind(tx *gorm.DB) error {
	_ = e.DefaultModel.AfterFind(tx)

	e.Date = e.Date.In(time.UTC)
	return nil
}
