package v1

import (
	"net/http"

	"github.com/budgetlens/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// registerCardRoutes registers the routes for cards with the RouterGroup
// that is passed.
func (co Controller) registerCardRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCardList)
		r.GET("", co.GetCards)
		r.POST("", co.CreateCard)
	}

	// Card with ID
	{
		r.OPTIONS("/:id", co.OptionsCardDetail)
		r.GET("/:id", co.GetCard)
		r.PATCH("/:id", co.UpdateCardBalance)
		r.DELETE("/:id", co.DeleteCard)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Cards
// @Success		204
// @Router			/v1/cards [options]
func OptionsCardList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Cards
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the card"
// @Router			/v1/cards/{id} [options]
func (co Controller) OptionsCardDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	_, err = co.Ledger.Card(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create card
// @Description	Creates a new credit card
// @Tags			Cards
// @Accept			json
// @Produce		json
// @Success		201		{object}	CardResponse
// @Failure		400		{object}	CardResponse
// @Failure		500		{object}	CardResponse
// @Param			card	body		CardEditable	true	"Card"
// @Router			/v1/cards [post]
func (co Controller) CreateCard(c *gin.Context) {
	var editable CardEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CardResponse{Error: &s})
		return
	}

	card, err := co.Ledger.AddCard(editable.Name, editable.LastFour, editable.CreditLimit, editable.Balance)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CardResponse{Error: &s})
		return
	}

	data := newCard(card)
	c.JSON(http.StatusCreated, CardResponse{Data: &data})
}

// @Summary		Get cards
// @Description	Returns all cards in the order they were added
// @Tags			Cards
// @Produce		json
// @Success		200	{object}	CardListResponse
// @Failure		500	{object}	CardListResponse
// @Router			/v1/cards [get]
func (co Controller) GetCards(c *gin.Context) {
	cards, err := co.Ledger.Cards()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CardListResponse{Error: &s})
		return
	}

	data := make([]Card, 0, len(cards))
	for _, card := range cards {
		data = append(data, newCard(card))
	}

	c.JSON(http.StatusOK, CardListResponse{Data: data})
}

// @Summary		Get card
// @Description	Returns a specific card
// @Tags			Cards
// @Produce		json
// @Success		200	{object}	CardResponse
// @Failure		400	{object}	CardResponse
// @Failure		404	{object}	CardResponse
// @Failure		500	{object}	CardResponse
// @Param			id	path		URIID	true	"ID of the card"
// @Router			/v1/cards/{id} [get]
func (co Controller) GetCard(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CardResponse{Error: &s})
		return
	}

	card, err := co.Ledger.Card(uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CardResponse{Error: &s})
		return
	}

	data := newCard(card)
	c.JSON(http.StatusOK, CardResponse{Data: &data})
}

// @Summary		Update card balance
// @Description	Replaces the balance of a card
// @Tags			Cards
// @Accept			json
// @Produce		json
// @Success		200		{object}	CardResponse
// @Failure		400		{object}	CardResponse
// @Failure		404		{object}	CardResponse
// @Failure		500		{object}	CardResponse
// @Param			id		path		URIID		true	"ID of the card"
// @Param			card	body		CardBalance	true	"Card balance"
// @Router			/v1/cards/{id} [patch]
func (co Controller) UpdateCardBalance(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CardResponse{Error: &s})
		return
	}

	card, err := co.Ledger.Card(uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CardResponse{Error: &s})
		return
	}

	var editable CardBalance
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CardResponse{Error: &s})
		return
	}

	err = co.Ledger.UpdateCardBalance(uri.ID.UUID, editable.Balance)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CardResponse{Error: &s})
		return
	}

	card.Balance = editable.Balance
	data := newCard(card)
	c.JSON(http.StatusOK, CardResponse{Data: &data})
}

// @Summary		Delete card
// @Description	Deletes a card and all expenses recorded against it
// @Tags			Cards
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the card"
// @Router			/v1/cards/{id} [delete]
func (co Controller) DeleteCard(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	// Deleting a card that does not exist is a no-op, the outcome
	// the client asked for is already true.
	err = co.Ledger.RemoveCard(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
