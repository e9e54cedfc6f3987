package v1_test

import (
	"net/http"

	v1 "github.com/budgetlens/backend/internal/controllers/v1"
	"github.com/budgetlens/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestBudgetWithoutIncome() {
	recorder := test.Request(suite.T(), suite.co, http.MethodGet, "/v1/budget", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Needs.IsZero())
	assert.True(suite.T(), response.Data.Wants.IsZero())
	assert.True(suite.T(), response.Data.Savings.IsZero())
}

func (suite *TestSuiteStandard) TestBudgetSplitsIncome() {
	recorder := test.Request(suite.T(), suite.co, http.MethodPut, "/v1/income", v1.IncomeEditable{MonthlyIncome: decimal.NewFromInt(5000)})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	recorder = test.Request(suite.T(), suite.co, http.MethodGet, "/v1/budget", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.MonthlyIncome.Equal(decimal.NewFromInt(5000)))
	assert.True(suite.T(), response.Data.Needs.Equal(decimal.NewFromInt(2500)), "needs target is %s", response.Data.Needs)
	assert.True(suite.T(), response.Data.Wants.Equal(decimal.NewFromInt(1500)), "wants target is %s", response.Data.Wants)
	assert.True(suite.T(), response.Data.Savings.Equal(decimal.NewFromInt(1000)), "savings target is %s", response.Data.Savings)
}

// The targets always sum to the income, nothing is lost to rounding.
func (suite *TestSuiteStandard) TestBudgetTargetsSumToIncome() {
	income := decimal.NewFromFloat(4123.45)

	recorder := test.Request(suite.T(), suite.co, http.MethodPut, "/v1/income", v1.IncomeEditable{MonthlyIncome: income})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	recorder = test.Request(suite.T(), suite.co, http.MethodGet, "/v1/budget", nil)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	sum := response.Data.Needs.Add(response.Data.Wants).Add(response.Data.Savings)
	assert.True(suite.T(), sum.Equal(income), "targets sum to %s", sum)
}
