package v1

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/budgetlens/backend/internal/forecast"
	"github.com/budgetlens/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// registerPredictionRoutes registers the routes for market predictions with
// the RouterGroup that is passed.
func (co Controller) registerPredictionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsPredictions)
		r.GET("", GetPredictions)
	}
}

type PredictionListResponse struct {
	Data  []forecast.Prediction `json:"data"`                                                          // List of sector predictions
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Predictions
// @Success		204
// @Router			/v1/predictions [options]
func OptionsPredictions(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get market predictions
// @Description	Returns simulated price forecasts per market sector: one year of history and two years of predictions with decaying confidence
// @Tags			Predictions
// @Produce		json
// @Success		200	{object}	PredictionListResponse
// @Router			/v1/predictions [get]
func GetPredictions(c *gin.Context) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	c.JSON(http.StatusOK, PredictionListResponse{Data: forecast.Sectors(time.Now(), r)})
}
