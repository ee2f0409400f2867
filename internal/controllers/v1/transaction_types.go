package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/walletwise/backend/internal/models"
)

type TransactionEditable struct {
	Amount      decimal.Decimal `json:"amount" example:"14.03" minimum:"0.00000001"`               // The amount spent
	BudgetID    uuid.UUID       `json:"budgetId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"`   // ID of the budget the transaction counts against
	Description string          `json:"description" example:"Lunch" default:""`                    // A note about the transaction
	Name        string          `json:"name" example:"Central Market" default:""`                  // Name of the store the money was spent at
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transaction/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the API representation of a Transaction.
type Transaction struct {
	models.DefaultModel
	Amount      decimal.Decimal  `json:"amount" example:"14.03"`
	Date        time.Time        `json:"date" example:"2024-01-07T18:43:00.271152Z"`
	Description string           `json:"description" example:"Lunch"`
	Name        string           `json:"name" example:"Central Market"`
	WalletID    uuid.UUID        `json:"walletId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`
	CategoryID  uuid.UUID        `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
	Category    *Category        `json:"category,omitempty"` // Loaded category, set in list responses
	Links       TransactionLinks `json:"links"`
}

// newTransaction returns the API representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	transaction := Transaction{
		DefaultModel: model.DefaultModel,
		Amount:       model.Amount,
		Date:         model.Date,
		Description:  model.Description,
		Name:         model.Name,
		WalletID:     model.WalletID,
		CategoryID:   model.CategoryID,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transaction/%s", url, model.ID),
		},
	}

	if model.Category.ID != uuid.Nil {
		category := newCategory(c, model.Category)
		transaction.Category = &category
	}

	return transaction
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Transaction `json:"data"`                                                          // The transaction data, if the request was successful
}

type TransactionListResponse struct {
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []Transaction `json:"data"`                                                          // List of transactions
}
