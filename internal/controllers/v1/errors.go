package v1

import (
	"errors"
	"net/http"

	"github.com/budgetlens/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error. Binding and
// validation errors fall through to the 400 default.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, errUpstreamNews) {
		return http.StatusBadGateway
	}

	return http.StatusBadRequest
}

// News errors
var errUpstreamNews = errors.New("the summarization service could not be reached")
