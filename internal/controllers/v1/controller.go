// Package v1 implements the v1 API of the budgetlens backend.
package v1

import (
	"github.com/budgetlens/backend/internal/ledger"
	"github.com/budgetlens/backend/internal/news"
	"github.com/gin-gonic/gin"
)

// Controller holds the dependencies of the v1 API handlers. It is
// constructed once at startup, there is no package level state.
type Controller struct {
	Ledger *ledger.Ledger
	News   *news.Service
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is
// passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsV1)
		r.GET("", GetV1)
	}

	co.registerIncomeRoutes(r.Group("/income"))
	co.registerBudgetRoutes(r.Group("/budget"))
	co.registerCardRoutes(r.Group("/cards"))
	co.registerExpenseRoutes(r.Group("/expenses"))
	co.registerAnalyticsRoutes(r.Group("/analytics"))
	co.registerNewsRoutes(r.Group("/news"))
	co.registerPredictionRoutes(r.Group("/predictions"))
}
