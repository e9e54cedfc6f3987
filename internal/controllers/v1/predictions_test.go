package v1_test

import (
	"net/http"

	v1 "github.com/budgetlens/backend/internal/controllers/v1"
	"github.com/budgetlens/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestGetPredictions() {
	recorder := test.Request(suite.T(), suite.co, http.MethodGet, "/v1/predictions", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.PredictionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 3)

	sectors := make([]string, 0, 3)
	for _, prediction := range response.Data {
		sectors = append(sectors, prediction.Sector)

		// 13 historical months including the current one, 24 predicted
		assert.Len(suite.T(), prediction.Data, 37)
	}

	assert.Equal(suite.T(), []string{"tech", "real-estate", "commodities"}, sectors)
}
