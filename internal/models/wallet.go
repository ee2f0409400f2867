package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

// Wallet holds the funds of a user. Every user has at most one wallet
// and budgets pre-allocate their amounts from it.
type Wallet struct {
	DefaultModel
	Balance  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Currency string          // ISO 4217 currency code
	UserID   uuid.UUID       `gorm:"uniqueIndex"`
	User     User            `json:"-"`
}

// DefaultCurrency is used when a wallet is created without an explicit
// currency code.
const DefaultCurrency = "COP"

var (
	ErrWalletAlreadyExists       = errors.New("user already has a wallet")
	ErrWalletInsufficientBalance = errors.New("insufficient balance in wallet")
	ErrWalletBalanceNegative     = errors.New("the wallet balance must not be negative")
	ErrWalletInvalidCurrency     = errors.New("the currency is not a valid ISO 4217 code")
)

// BeforeSave defaults and validates the currency code.
func (w *Wallet) BeforeSave(_ *gorm.DB) error {
	w.Currency = strings.ToUpper(strings.TrimSpace(w.Currency))
	if w.Currency == "" {
		w.Currency = DefaultCurrency
	}

	_, err := currency.ParseISO(w.Currency)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrWalletInvalidCurrency, w.Currency)
	}

	return nil
}

// AfterSave verifies that no mutation drove the balance below zero.
// It runs inside the surrounding database transaction, so a violation
// rolls back the whole mutation.
func (w *Wallet) AfterSave(_ *gorm.DB) error {
	if w.Balance.IsNegative() {
		return ErrWalletBalanceNegative
	}

	return nil
}

// CreateWallet creates the wallet for a user. Every user can only have
// a single wallet.
func CreateWallet(db *gorm.DB, wallet Wallet) (Wallet, error) {
	var count int64
	err := db.Model(&Wallet{}).Where(&Wallet{UserID: wallet.UserID}).Count(&count).Error
	if err != nil {
		return Wallet{}, err
	}

	if count > 0 {
		return Wallet{}, ErrWalletAlreadyExists
	}

	err = db.Create(&wallet).Error
	if err != nil {
		return Wallet{}, err
	}

	return wallet, nil
}

// WalletForUser returns the wallet owned by the user.
func WalletForUser(db *gorm.DB, userID uuid.UUID) (Wallet, error) {
	var wallet Wallet
	err := db.Where(&Wallet{UserID: userID}).First(&wallet).Error
	if err != nil {
		return Wallet{}, err
	}

	return wallet, nil
}
