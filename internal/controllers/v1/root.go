package v1

import (
	"net/http"

	"github.com/budgetlens/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type V1Response struct {
	Links V1Links `json:"links"` // Links for the v1 API
}

type V1Links struct {
	Income      string `json:"income" example:"/v1/income"`           // URL of the income endpoint
	Budget      string `json:"budget" example:"/v1/budget"`           // URL of the budget allocation endpoint
	Cards       string `json:"cards" example:"/v1/cards"`             // URL of the card list endpoint
	Expenses    string `json:"expenses" example:"/v1/expenses"`       // URL of the expense list endpoint
	Analytics   string `json:"analytics" example:"/v1/analytics"`     // URL of the spending analytics endpoint
	News        string `json:"news" example:"/v1/news"`               // URL of the financial news endpoint
	Predictions string `json:"predictions" example:"/v1/predictions"` // URL of the market prediction endpoint
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			General
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Income:      "/v1/income",
			Budget:      "/v1/budget",
			Cards:       "/v1/cards",
			Expenses:    "/v1/expenses",
			Analytics:   "/v1/analytics",
			News:        "/v1/news",
			Predictions: "/v1/predictions",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
