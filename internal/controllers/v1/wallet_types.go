package v1

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/walletwise/backend/internal/models"
)

type WalletEditable struct {
	Balance  decimal.Decimal `json:"balance" example:"1000"`                   // The initial balance of the wallet
	Currency string          `json:"currency" example:"COP" default:"COP"`     // ISO 4217 currency code, defaults to COP
}

// Wallet is the API representation of a Wallet.
type Wallet struct {
	WalletID uuid.UUID       `json:"walletId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"` // ID of the wallet
	Balance  decimal.Decimal `json:"balance" example:"1000"`                                  // The current balance
	Currency string          `json:"currency" example:"COP"`                                  // ISO 4217 currency code
}

// newWallet returns the API representation of the resource
func newWallet(model models.Wallet) Wallet {
	return Wallet{
		WalletID: model.ID,
		Balance:  model.Balance,
		Currency: model.Currency,
	}
}

type WalletResponse struct {
	Error *string `json:"error" example:"user already has a wallet"` // The error, if any occurred
	Data  *Wallet `json:"data"`                                      // The wallet data, if the request was successful
}
