package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/budgetlens/backend/internal/budget"
	v1 "github.com/budgetlens/backend/internal/controllers/v1"
	"github.com/budgetlens/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createTestExpense(editable v1.ExpenseEditable) v1.Expense {
	if editable.CardID == uuid.Nil {
		editable.CardID = suite.createTestCard(v1.CardEditable{}).ID
	}

	recorder := test.Request(suite.T(), suite.co, http.MethodPost, "/v1/expenses", editable)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)

	return *response.Data
}

func (suite *TestSuiteStandard) TestCreateExpenseDerivesCategory() {
	tests := []struct {
		subcategory string
		category    budget.Category
	}{
		{"groceries", budget.CategoryNeeds},
		{"dining", budget.CategoryWants},
		{"retirement", budget.CategorySavings},
		{"something made up", budget.CategoryWants},
	}

	for _, tt := range tests {
		suite.T().Run(tt.subcategory, func(t *testing.T) {
			expense := suite.createTestExpense(v1.ExpenseEditable{Amount: decimal.NewFromInt(10), Subcategory: tt.subcategory})
			assert.Equal(t, tt.category, expense.Category)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateExpenseAccruesBalance() {
	card := suite.createTestCard(v1.CardEditable{Balance: decimal.NewFromInt(100)})

	suite.createTestExpense(v1.ExpenseEditable{CardID: card.ID, Amount: decimal.NewFromFloat(50.50), Subcategory: "groceries"})

	recorder := test.Request(suite.T(), suite.co, http.MethodGet, fmt.Sprintf("/v1/cards/%s", card.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.CardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Balance.Equal(decimal.NewFromFloat(150.50)), "balance is %s", response.Data.Balance)
}

func (suite *TestSuiteStandard) TestCreateExpenseUnknownCard() {
	recorder := test.Request(suite.T(), suite.co, http.MethodPost, "/v1/expenses", v1.ExpenseEditable{
		CardID:      uuid.New(),
		Amount:      decimal.NewFromInt(10),
		Subcategory: "groceries",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)

	// No expense may be left behind
	recorder = test.Request(suite.T(), suite.co, http.MethodGet, "/v1/expenses", nil)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 0)
}

func (suite *TestSuiteStandard) TestCreateExpenseStampsDate() {
	expense := suite.createTestExpense(v1.ExpenseEditable{Amount: decimal.NewFromInt(10), Subcategory: "dining"})

	today := time.Now().In(time.UTC).Truncate(24 * time.Hour)
	assert.True(suite.T(), expense.Date.Equal(today), "date is %s", expense.Date)
}

func (suite *TestSuiteStandard) TestGetExpensesFilterByCard() {
	card := suite.createTestCard(v1.CardEditable{})
	other := suite.createTestCard(v1.CardEditable{})

	wanted := suite.createTestExpense(v1.ExpenseEditable{CardID: card.ID, Amount: decimal.NewFromInt(10), Subcategory: "groceries"})
	suite.createTestExpense(v1.ExpenseEditable{CardID: other.ID, Amount: decimal.NewFromInt(20), Subcategory: "dining"})

	recorder := test.Request(suite.T(), suite.co, http.MethodGet, fmt.Sprintf("/v1/expenses?card=%s", card.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), wanted.ID, response.Data[0].ID)
}

func (suite *TestSuiteStandard) TestGetExpense() {
	expense := suite.createTestExpense(v1.ExpenseEditable{Amount: decimal.NewFromInt(10), Subcategory: "travel"})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Expense exists", expense.ID.String(), http.StatusOK},
		{"No expense with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.co, http.MethodGet, fmt.Sprintf("/v1/expenses/%s", tt.id), nil)
			test.AssertHTTPStatus(t, tt.status, &recorder)
		})
	}
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	card := suite.createTestCard(v1.CardEditable{Balance: decimal.NewFromInt(0)})
	expense := suite.createTestExpense(v1.ExpenseEditable{CardID: card.ID, Amount: decimal.NewFromInt(30), Subcategory: "shopping"})

	recorder := test.Request(suite.T(), suite.co, http.MethodDelete, fmt.Sprintf("/v1/expenses/%s", expense.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = test.Request(suite.T(), suite.co, http.MethodGet, fmt.Sprintf("/v1/expenses/%s", expense.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)

	// The card balance is a bookkeeping value, deleting an expense does
	// not refund it
	recorder = test.Request(suite.T(), suite.co, http.MethodGet, fmt.Sprintf("/v1/cards/%s", card.ID), nil)

	var response v1.CardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Balance.Equal(decimal.NewFromInt(30)), "balance is %s", response.Data.Balance)

	// Deleting an expense that is already gone is not an error
	recorder = test.Request(suite.T(), suite.co, http.MethodDelete, fmt.Sprintf("/v1/expenses/%s", expense.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
}
