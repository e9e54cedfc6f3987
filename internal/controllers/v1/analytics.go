package v1

import (
	"net/http"
	"time"

	"github.com/budgetlens/backend/internal/analytics"
	"github.com/budgetlens/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// registerAnalyticsRoutes registers the routes for spending analytics with
// the RouterGroup that is passed.
func (co Controller) registerAnalyticsRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsAnalytics)
		r.GET("", co.GetAnalytics)
	}
}

type AnalyticsResponse struct {
	Data  *analytics.Report `json:"data"`                                                           // The spending report. Null when no expenses have been recorded.
	Error *string           `json:"error" example:"the window must be one of week, month, quarter, year"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analytics
// @Success		204
// @Router			/v1/analytics [options]
func OptionsAnalytics(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get spending analytics
// @Description	Returns the spending report for the requested time window. Without any recorded expenses the data field is null.
// @Tags			Analytics
// @Produce		json
// @Success		200		{object}	AnalyticsResponse
// @Failure		400		{object}	AnalyticsResponse
// @Failure		500		{object}	AnalyticsResponse
// @Param			window	query		string	false	"Time window: week, month, quarter or year. Defaults to month."
// @Router			/v1/analytics [get]
func (co Controller) GetAnalytics(c *gin.Context) {
	window, err := analytics.ParseWindow(c.Query("window"))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AnalyticsResponse{Error: &s})
		return
	}

	expenses, err := co.Ledger.Expenses()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AnalyticsResponse{Error: &s})
		return
	}

	income, err := co.Ledger.Income()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AnalyticsResponse{Error: &s})
		return
	}

	report := analytics.Analyze(expenses, income, window, time.Now())
	c.JSON(http.StatusOK, AnalyticsResponse{Data: report})
}
