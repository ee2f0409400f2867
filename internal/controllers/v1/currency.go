package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/walletwise/backend/internal/currency"
	"github.com/walletwise/backend/internal/httputil"
)

type ConversionQuery struct {
	Amount decimal.Decimal `form:"amount"`
	From   string          `form:"from" example:"USD"`
	To     string          `form:"to" example:"COP"`
}

type Conversion struct {
	Amount    decimal.Decimal `json:"amount" example:"10"`       // The amount that was converted
	From      string          `json:"from" example:"USD"`        // Source currency code
	To        string          `json:"to" example:"COP"`          // Target currency code
	Converted decimal.Decimal `json:"converted" example:"41400"` // The amount in the target currency
}

type ConversionResponse struct {
	Error *string     `json:"error" example:"exchange rate is not available"` // The error, if any occurred
	Data  *Conversion `json:"data"`                                           // The conversion, if the request was successful
}

// RegisterCurrencyRoutes registers the routes for currency conversion
// with the RouterGroup that is passed.
func RegisterCurrencyRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/convert", OptionsCurrencyConvert)
	r.GET("/convert", ConvertCurrency)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Currency
// @Success		204
// @Router			/v1/currency/convert [options]
func OptionsCurrencyConvert(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Convert an amount
// @Description	Converts an amount between two currencies using the current exchange rate
// @Tags			Currency
// @Produce		json
// @Success		200		{object}	ConversionResponse
// @Failure		400		{object}	ConversionResponse
// @Failure		500		{object}	ConversionResponse
// @Param			amount	query		string	true	"Amount to convert"
// @Param			from	query		string	true	"Source currency code"
// @Param			to		query		string	true	"Target currency code"
// @Router			/v1/currency/convert [get]
func ConvertCurrency(c *gin.Context) {
	var query ConversionQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		e := errCurrencyParameters.Error()
		c.JSON(http.StatusBadRequest, ConversionResponse{Error: &e})
		return
	}

	if query.Amount.IsZero() || query.From == "" || query.To == "" {
		e := errCurrencyParameters.Error()
		c.JSON(http.StatusBadRequest, ConversionResponse{Error: &e})
		return
	}

	converted, err := currency.NewClient().Convert(c.Request.Context(), query.Amount, query.From, query.To)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ConversionResponse{Error: &e})
		return
	}

	data := Conversion{
		Amount:    query.Amount,
		From:      query.From,
		To:        query.To,
		Converted: converted,
	}
	c.JSON(http.StatusOK, ConversionResponse{Data: &data})
}
