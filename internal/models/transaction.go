package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction records a single spend event. Transactions are immutable
// once created.
type Transaction struct {
	DefaultModel
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date        time.Time
	Description string
	Name        string // Name of the store the money was spent at
	WalletID    uuid.UUID
	Wallet      Wallet
	CategoryID  uuid.UUID
	Category    Category
	UserID      uuid.UUID
	User        User `json:"-"`
}

// AfterFind enforces UTC for the transaction date.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeSave defaults the date to the current time and trims
// whitespace from string fields.
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	t.Description = strings.TrimSpace(t.Description)
	t.Name = strings.TrimSpace(t.Name)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return
}

// CreateTransaction records a spend event against a budget. The wallet
// debit, the budget spent-amount increment and the transaction insert
// are one database transaction, they either all happen or none does.
//
// The transaction is recorded against the category of the budget, not
// a category of the caller's choosing.
func CreateTransaction(db *gorm.DB, amount decimal.Decimal, budgetID uuid.UUID, description string, name string, walletID uuid.UUID, userID uuid.UUID) (Transaction, error) {
	var transaction Transaction
	err := db.Transaction(func(tx *gorm.DB) error {
		var wallet Wallet
		err := tx.First(&wallet, walletID).Error
		if err != nil {
			return err
		}

		if wallet.Balance.LessThan(amount) {
			return ErrWalletInsufficientBalance
		}

		budget, err := BudgetForUser(tx, budgetID, userID)
		if err != nil {
			return err
		}

		if budget.Amount.LessThan(budget.SpentAmount.Add(amount)) {
			return ErrBudgetAmountExceeded
		}

		wallet.Balance = wallet.Balance.Sub(amount)
		err = tx.Save(&wallet).Error
		if err != nil {
			return err
		}

		budget.SpentAmount = budget.SpentAmount.Add(amount)
		err = tx.Save(&budget).Error
		if err != nil {
			return err
		}

		transaction = Transaction{
			Amount:      amount,
			Date:        time.Now().In(time.UTC),
			Description: description,
			Name:        name,
			WalletID:    wallet.ID,
			CategoryID:  budget.CategoryID,
			UserID:      userID,
		}

		return tx.Create(&transaction).Error
	})
	if err != nil {
		return Transaction{}, err
	}

	return transaction, nil
}

// TransactionsForUser returns all transactions of the user with their
// category and wallet loaded, newest first.
func TransactionsForUser(db *gorm.DB, userID uuid.UUID) ([]Transaction, error) {
	var transactions []Transaction
	err := db.
		Where(&Transaction{UserID: userID}).
		Preload("Category").
		Preload("Wallet").
		Order("date DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	if len(transactions) == 0 {
		return nil, fmt.Errorf("%w transaction matching your query", ErrResourceNotFound)
	}

	return transactions, nil
}
