package v1

import (
	"errors"
	"net/http"

	"github.com/walletwise/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Login errors
var errInvalidCredentials = errors.New("invalid email or password")

// Currency conversion errors
var errCurrencyParameters = errors.New("the amount, from and to parameters must be set")
