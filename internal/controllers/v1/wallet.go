package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/walletwise/backend/internal/auth"
	"github.com/walletwise/backend/internal/httputil"
	"github.com/walletwise/backend/internal/models"
)

// RegisterWalletRoutes registers the routes for wallets with
// the RouterGroup that is passed.
func RegisterWalletRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsWalletList)
	r.POST("", CreateWallet)
	r.OPTIONS("/balance", OptionsWalletBalance)
	r.GET("/balance", GetWalletBalance)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Wallets
// @Success		204
// @Router			/v1/wallet [options]
func OptionsWalletList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Wallets
// @Success		204
// @Router			/v1/wallet/balance [options]
func OptionsWalletBalance(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Create wallet
// @Description	Creates the wallet for the user. Every user can only have one wallet.
// @Tags			Wallets
// @Accept			json
// @Produce		json
// @Success		201		{object}	WalletResponse
// @Failure		400		{object}	WalletResponse
// @Failure		500		{object}	WalletResponse
// @Param			wallet	body		WalletEditable	true	"Wallet"
// @Router			/v1/wallet [post]
func CreateWallet(c *gin.Context) {
	var editable WalletEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WalletResponse{Error: &e})
		return
	}

	identity := auth.ActiveIdentity(c)

	wallet, err := models.CreateWallet(models.DB, models.Wallet{
		Balance:  editable.Balance,
		Currency: editable.Currency,
		UserID:   identity.UserID,
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WalletResponse{Error: &e})
		return
	}

	data := newWallet(wallet)
	c.JSON(http.StatusCreated, WalletResponse{Data: &data})
}

// @Summary		Wallet balance
// @Description	Returns the wallet of the user
// @Tags			Wallets
// @Produce		json
// @Success		200	{object}	WalletResponse
// @Failure		404	{object}	WalletResponse
// @Failure		500	{object}	WalletResponse
// @Router			/v1/wallet/balance [get]
func GetWalletBalance(c *gin.Context) {
	identity := auth.ActiveIdentity(c)

	wallet, err := models.WalletForUser(models.DB, identity.UserID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WalletResponse{Error: &e})
		return
	}

	data := newWallet(wallet)
	c.JSON(http.StatusOK, WalletResponse{Data: &data})
}
