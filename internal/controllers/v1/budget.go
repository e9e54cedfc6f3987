package v1

import (
	"net/http"

	"github.com/budgetlens/backend/internal/budget"
	"github.com/budgetlens/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// registerBudgetRoutes registers the routes for the budget allocation with
// the RouterGroup that is passed.
func (co Controller) registerBudgetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsBudget)
		r.GET("", co.GetBudget)
	}
}

// Budget is the monthly income split across the three budget categories
// with the 50/30/20 rule.
type Budget struct {
	MonthlyIncome decimal.Decimal `json:"monthlyIncome" example:"5000"` // Total monthly income
	Needs         decimal.Decimal `json:"needs" example:"2500"`         // Target amount for needs, 50% of income
	Wants         decimal.Decimal `json:"wants" example:"1500"`         // Target amount for wants, 30% of income
	Savings       decimal.Decimal `json:"savings" example:"1000"`       // Target amount for savings, 20% of income
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // The budget allocation
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget
// @Success		204
// @Router			/v1/budget [options]
func OptionsBudget(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get budget allocation
// @Description	Returns the monthly income split into needs, wants and savings targets
// @Tags			Budget
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Router			/v1/budget [get]
func (co Controller) GetBudget(c *gin.Context) {
	income, err := co.Ledger.Income()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	allocation := budget.Targets(income)

	c.JSON(http.StatusOK, BudgetResponse{Data: &Budget{
		MonthlyIncome: income,
		Needs:         allocation.Needs,
		Wants:         allocation.Wants,
		Savings:       allocation.Savings,
	}})
}
