package v1

import (
	"net/http"

	"github.com/budgetlens/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// registerIncomeRoutes registers the routes for the monthly income with
// the RouterGroup that is passed.
func (co Controller) registerIncomeRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsIncome)
		r.GET("", co.GetIncome)
		r.PUT("", co.UpdateIncome)
	}
}

// IncomeEditable represents all user configurable parameters
type IncomeEditable struct {
	MonthlyIncome decimal.Decimal `json:"monthlyIncome" example:"5000"` // Total monthly income
}

type IncomeResponse struct {
	Data  *IncomeEditable `json:"data"`                                                          // The monthly income
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Income
// @Success		204
// @Router			/v1/income [options]
func OptionsIncome(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get income
// @Description	Returns the configured monthly income. An income that was never set is zero.
// @Tags			Income
// @Produce		json
// @Success		200	{object}	IncomeResponse
// @Failure		500	{object}	IncomeResponse
// @Router			/v1/income [get]
func (co Controller) GetIncome(c *gin.Context) {
	income, err := co.Ledger.Income()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, IncomeResponse{Data: &IncomeEditable{MonthlyIncome: income}})
}

// @Summary		Update income
// @Description	Replaces the monthly income
// @Tags			Income
// @Accept			json
// @Produce		json
// @Success		200		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Failure		500		{object}	IncomeResponse
// @Param			income	body		IncomeEditable	true	"Income"
// @Router			/v1/income [put]
func (co Controller) UpdateIncome(c *gin.Context) {
	var editable IncomeEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &s})
		return
	}

	err = co.Ledger.SetIncome(editable.MonthlyIncome)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, IncomeResponse{Data: &editable})
}
