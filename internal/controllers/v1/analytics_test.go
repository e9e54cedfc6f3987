package v1_test

import (
	"net/http"

	"github.com/budgetlens/backend/internal/analytics"
	"github.com/budgetlens/backend/internal/budget"
	v1 "github.com/budgetlens/backend/internal/controllers/v1"
	"github.com/budgetlens/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestAnalyticsWithoutExpenses() {
	recorder := test.Request(suite.T(), suite.co, http.MethodGet, "/v1/analytics", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.AnalyticsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// No expenses is "no data", not an empty report
	assert.Nil(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestAnalyticsReport() {
	recorder := test.Request(suite.T(), suite.co, http.MethodPut, "/v1/income", v1.IncomeEditable{MonthlyIncome: decimal.NewFromInt(5000)})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	suite.createTestExpense(v1.ExpenseEditable{Amount: decimal.NewFromInt(120), Subcategory: "groceries"})
	suite.createTestExpense(v1.ExpenseEditable{Amount: decimal.NewFromInt(80), Subcategory: "dining"})

	recorder = test.Request(suite.T(), suite.co, http.MethodGet, "/v1/analytics?window=month", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.AnalyticsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), analytics.WindowMonth, response.Data.Window)
	assert.True(suite.T(), response.Data.TotalSpent.Equal(decimal.NewFromInt(200)), "total spent is %s", response.Data.TotalSpent)

	needs := response.Data.Categories[budget.CategoryNeeds]
	assert.True(suite.T(), needs.Spent.Equal(decimal.NewFromInt(120)), "needs spending is %s", needs.Spent)
	assert.True(suite.T(), needs.Target.Equal(decimal.NewFromInt(2500)), "needs target is %s", needs.Target)
	assert.InDelta(suite.T(), 4.8, needs.Percentage, 0.0001)

	require.Len(suite.T(), response.Data.Subcategories, 2)
	assert.Equal(suite.T(), "groceries", response.Data.Subcategories[0].Name)
}

func (suite *TestSuiteStandard) TestAnalyticsInvalidWindow() {
	recorder := test.Request(suite.T(), suite.co, http.MethodGet, "/v1/analytics?window=fortnight", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	var response v1.AnalyticsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), analytics.ErrInvalidWindow.Error(), *response.Error)
}
