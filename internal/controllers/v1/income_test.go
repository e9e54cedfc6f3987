package v1_test

import (
	"net/http"

	v1 "github.com/budgetlens/backend/internal/controllers/v1"
	"github.com/budgetlens/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestIncomeDefaultsToZero() {
	recorder := test.Request(suite.T(), suite.co, http.MethodGet, "/v1/income", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.IncomeResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.MonthlyIncome.IsZero())
}

func (suite *TestSuiteStandard) TestUpdateIncome() {
	recorder := test.Request(suite.T(), suite.co, http.MethodPut, "/v1/income", v1.IncomeEditable{MonthlyIncome: decimal.NewFromInt(5000)})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	recorder = test.Request(suite.T(), suite.co, http.MethodGet, "/v1/income", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.IncomeResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.MonthlyIncome.Equal(decimal.NewFromInt(5000)), "income is %s", response.Data.MonthlyIncome)
}

func (suite *TestSuiteStandard) TestUpdateIncomeReplaces() {
	recorder := test.Request(suite.T(), suite.co, http.MethodPut, "/v1/income", v1.IncomeEditable{MonthlyIncome: decimal.NewFromInt(5000)})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	recorder = test.Request(suite.T(), suite.co, http.MethodPut, "/v1/income", v1.IncomeEditable{MonthlyIncome: decimal.NewFromFloat(6200.50)})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	recorder = test.Request(suite.T(), suite.co, http.MethodGet, "/v1/income", nil)

	var response v1.IncomeResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.MonthlyIncome.Equal(decimal.NewFromFloat(6200.50)), "income is %s", response.Data.MonthlyIncome)
}

func (suite *TestSuiteStandard) TestUpdateIncomeInvalidBody() {
	recorder := test.Request(suite.T(), suite.co, http.MethodPut, "/v1/income", `{ "monthlyIncome": "definitely not a number" }`)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	recorder = test.Request(suite.T(), suite.co, http.MethodPut, "/v1/income", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}
