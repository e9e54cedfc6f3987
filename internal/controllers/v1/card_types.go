package v1

import (
	"fmt"

	"github.com/budgetlens/backend/internal/models"
	"github.com/shopspring/decimal"
)

// CardEditable represents all user configurable parameters
type CardEditable struct {
	Name        string          `json:"name" example:"Platinum Card" default:""` // Name of the card
	LastFour    string          `json:"lastFour" example:"4242" default:""`      // Last four digits of the card number
	CreditLimit decimal.Decimal `json:"creditLimit" example:"10000"`             // Credit limit of the card
	Balance     decimal.Decimal `json:"balance" example:"1250.50"`               // Current balance of the card
}

func (editable CardEditable) model() models.Card {
	return models.Card{
		Name:        editable.Name,
		LastFour:    editable.LastFour,
		CreditLimit: editable.CreditLimit,
		Balance:     editable.Balance,
	}
}

// CardBalance represents the parameters that can be updated on an
// existing card.
type CardBalance struct {
	Balance decimal.Decimal `json:"balance" example:"1431.20"` // New balance of the card
}

type CardLinks struct {
	Self     string `json:"self" example:"/v1/cards/3b1ea324-d438-4419-882a-2fc91d71772f"`             // The card itself
	Expenses string `json:"expenses" example:"/v1/expenses?card=3b1ea324-d438-4419-882a-2fc91d71772f"` // Expenses recorded against this card
}

type Card struct {
	models.DefaultModel
	CardEditable
	Links CardLinks `json:"links"`
}

func newCard(model models.Card) Card {
	return Card{
		DefaultModel: model.DefaultModel,
		CardEditable: CardEditable{
			Name:        model.Name,
			LastFour:    model.LastFour,
			CreditLimit: model.CreditLimit,
			Balance:     model.Balance,
		},
		Links: CardLinks{
			Self:     fmt.Sprintf("/v1/cards/%s", model.ID),
			Expenses: fmt.Sprintf("/v1/expenses?card=%s", model.ID),
		},
	}
}

type CardListResponse struct {
	Data  []Card  `json:"data"`                                                          // List of cards
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CardResponse struct {
	Data  *Card   `json:"data"`                                                          // Data for the card
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
