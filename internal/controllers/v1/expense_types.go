package v1

import (
	"fmt"
	"time"

	"github.com/budgetlens/backend/internal/budget"
	"github.com/budgetlens/backend/internal/models"
	ez_uuid "github.com/budgetlens/backend/internal/uuid"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	CardID      uuid.UUID       `json:"cardId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the card the expense is recorded against
	Amount      decimal.Decimal `json:"amount" example:"120"`                                  // Amount of the expense
	Description string          `json:"description" example:"Weekly groceries" default:""`    // Description of the expense
	Subcategory string          `json:"subcategory" example:"groceries" default:""`           // Subcategory of the expense
	Date        time.Time       `json:"date" example:"2024-04-15T00:00:00Z"`                   // Date of the expense. Defaults to the current date.
}

type ExpenseLinks struct {
	Self string `json:"self" example:"/v1/expenses/3b1ea324-d438-4419-882a-2fc91d71772f"` // The expense itself
	Card string `json:"card" example:"/v1/cards/52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`    // The card the expense is recorded against
}

type Expense struct {
	models.DefaultModel
	ExpenseEditable
	Links ExpenseLinks `json:"links"`

	// This field is derived from the subcategory when the expense is created
	Category budget.Category `json:"category" example:"needs"` // Budget category of the expense
}

func newExpense(model models.Expense) Expense {
	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			CardID:      model.CardID,
			Amount:      model.Amount,
			Description: model.Description,
			Subcategory: model.Subcategory,
			Date:        model.Date,
		},
		Category: model.Category,
		Links: ExpenseLinks{
			Self: fmt.Sprintf("/v1/expenses/%s", model.ID),
			Card: fmt.Sprintf("/v1/cards/%s", model.CardID),
		},
	}
}

type ExpenseListResponse struct {
	Data  []Expense `json:"data"`                                                          // List of expenses
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                          // Data for the expense
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseQueryFilter struct {
	Card ez_uuid.UUID `form:"card"` // By ID of the card
}
