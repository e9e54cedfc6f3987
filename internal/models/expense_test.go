package models_test

import (
	"time"

	"github.com/budgetlens/backend/internal/budget"
	"github.com/budgetlens/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createTestCard() models.Card {
	card := models.Card{
		Name:        "Test Card",
		LastFour:    "4242",
		CreditLimit: decimal.NewFromInt(5000),
		Balance:     decimal.Zero,
	}

	err := suite.db.Create(&card).Error
	suite.Require().Nil(err)

	return card
}

// TestExpenseCategoryDerived verifies that the category is derived from the
// subcategory when the expense is created.
func (suite *TestSuiteStandard) TestExpenseCategoryDerived() {
	card := suite.createTestCard()

	tests := []struct {
		subcategory string
		category    budget.Category
	}{
		{"groceries", budget.CategoryNeeds},
		{"dining", budget.CategoryWants},
		{"retirement", budget.CategorySavings},
		{"definitely-not-a-subcategory", budget.CategoryWants},
	}

	for _, tt := range tests {
		expense := models.Expense{
			CardID:      card.ID,
			Amount:      decimal.NewFromInt(10),
			Description: "Test expense",
			Subcategory: tt.subcategory,
		}

		err := suite.db.Create(&expense).Error
		suite.Require().Nil(err)
		suite.Assert().Equal(tt.category, expense.Category, "subcategory %q", tt.subcategory)
	}
}

// TestExpenseCategoryStored verifies that a category explicitly set on
// creation is kept. Stored categories never drift, even when the
// categorization tables change after the expense was created.
func (suite *TestSuiteStandard) TestExpenseCategoryStored() {
	card := suite.createTestCard()

	expense := models.Expense{
		CardID:      card.ID,
		Amount:      decimal.NewFromInt(10),
		Description: "Created under an older rule table",
		Category:    budget.CategorySavings,
		Subcategory: "groceries",
	}

	err := suite.db.Create(&expense).Error
	suite.Require().Nil(err)

	var reloaded models.Expense
	err = suite.db.First(&reloaded, "id = ?", expense.ID).Error
	suite.Require().Nil(err)
	suite.Assert().Equal(budget.CategorySavings, reloaded.Category)
}

// TestExpenseDateStamped verifies that the creation date is stamped with
// date-only precision in UTC.
func (suite *TestSuiteStandard) TestExpenseDateStamped() {
	card := suite.createTestCard()

	expense := models.Expense{
		CardID:      card.ID,
		Amount:      decimal.NewFromFloat(12.34),
		Description: "Test expense",
		Subcategory: "shopping",
	}

	err := suite.db.Create(&expense).Error
	suite.Require().Nil(err)

	suite.Assert().False(expense.Date.IsZero())
	suite.Assert().Equal(time.UTC, expense.Date.Location())
	suite.Assert().Equal(expense.Date, expense.Date.Truncate(24*time.Hour), "date must not have time-of-day precision")
}

// TestExpenseTrimsStrings verifies whitespace trimming on save.
func (suite *TestSuiteStandard) TestExpenseTrimsStrings() {
	card := suite.createTestCard()

	expense := models.Expense{
		CardID:      card.ID,
		Amount:      decimal.NewFromInt(1),
		Description: " spaces everywhere ",
		Subcategory: " groceries ",
	}

	err := suite.db.Create(&expense).Error
	suite.Require().Nil(err)

	suite.Assert().Equal("spaces everywhere", expense.Description)
	suite.Assert().Equal("groceries", expense.Subcategory)
	suite.Assert().Equal(budget.CategoryNeeds, expense.Category)
}
