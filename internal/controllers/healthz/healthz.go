// Package healthz implements the health check endpoint.
package healthz

import (
	"net/http"

	"github.com/budgetlens/backend/internal/httputil"
	"github.com/budgetlens/backend/internal/ledger"
	"github.com/gin-gonic/gin"
)

type Controller struct {
	Ledger *ledger.Ledger
}

func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", co.Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Success		204
// @Failure		500	{object}	map[string]string
// @Router			/healthz [get]
func (co Controller) Get(c *gin.Context) {
	err := co.Ledger.Ping()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
