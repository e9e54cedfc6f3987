package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/budgetlens/backend/internal/controllers/v1"
	"github.com/budgetlens/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetV1() {
	recorder := test.Request(suite.T(), suite.co, http.MethodGet, "/v1", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.V1Response
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), "/v1/income", response.Links.Income)
	assert.Equal(suite.T(), "/v1/budget", response.Links.Budget)
	assert.Equal(suite.T(), "/v1/cards", response.Links.Cards)
	assert.Equal(suite.T(), "/v1/expenses", response.Links.Expenses)
	assert.Equal(suite.T(), "/v1/analytics", response.Links.Analytics)
	assert.Equal(suite.T(), "/v1/news", response.Links.News)
	assert.Equal(suite.T(), "/v1/predictions", response.Links.Predictions)
}

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"/", "GET"},
		{"/version", "GET"},
		{"/healthz", "GET"},
		{"/v1", "GET"},
		{"/v1/income", "GET, PUT"},
		{"/v1/budget", "GET"},
		{"/v1/cards", "GET, POST"},
		{"/v1/expenses", "GET, POST"},
		{"/v1/analytics", "GET"},
		{"/v1/news", "GET"},
		{"/v1/news/summarize", "POST"},
		{"/v1/predictions", "GET"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(t, suite.co, http.MethodOptions, tt.path, nil)

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, "OPTIONS, "+tt.response, recorder.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestMethodNotAllowed() {
	recorder := test.Request(suite.T(), suite.co, http.MethodDelete, "/v1/budget", nil)

	test.AssertHTTPStatus(suite.T(), http.StatusMethodNotAllowed, &recorder)
}
