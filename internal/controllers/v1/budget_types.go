package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/walletwise/backend/internal/models"
)

type BudgetEditable struct {
	Amount     decimal.Decimal `json:"amount" example:"200" minimum:"0.00000001"`                    // The allowance ceiling for the budget
	CategoryID uuid.UUID       `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`    // ID of the category the budget is for
	Period     models.Period   `json:"period" example:"MONTHLY" enums:"MONTHLY,BIWEEKLY"`            // How long the budget is active
}

type BudgetUpdate struct {
	Amount decimal.Decimal `json:"amount" example:"250"` // The new allowance ceiling, must not be lower than the current one
}

type BudgetLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/budget/d430d7c3-d14c-4712-9336-ee56965a6673"`       // The budget itself
	Stats string `json:"stats" example:"https://example.com/api/v1/budget/stats/d430d7c3-d14c-4712-9336-ee56965a6673"` // The statistics for the budget
}

// Budget is the API representation of a Budget. The user and category
// relations are stripped, only the scalar references remain.
type Budget struct {
	models.DefaultModel
	Amount      decimal.Decimal `json:"amount" example:"200"`
	SpentAmount decimal.Decimal `json:"spentAmount" example:"120.50"`
	StartDate   time.Time       `json:"startDate" example:"2024-01-07T18:43:00.271152Z"`
	EndDate     time.Time       `json:"endDate" example:"2024-02-06T18:43:00.271152Z"`
	Period      models.Period   `json:"period" example:"MONTHLY"`
	CategoryID  uuid.UUID       `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`
	Links       BudgetLinks     `json:"links"`
}

// newBudget returns the API representation of the resource
func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		Amount:       model.Amount,
		SpentAmount:  model.SpentAmount,
		StartDate:    model.StartDate,
		EndDate:      model.EndDate,
		Period:       model.Period,
		CategoryID:   model.CategoryID,
		Links: BudgetLinks{
			Self:  fmt.Sprintf("%s/v1/budget/%s", url, model.ID),
			Stats: fmt.Sprintf("%s/v1/budget/stats/%s", url, model.ID),
		},
	}
}

type BudgetResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Budget `json:"data"`                                                          // The budget data, if the request was successful
}

type BudgetListResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []Budget `json:"data"`                                                          // List of budgets
}

type BudgetAmountResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *decimal.Decimal `json:"data" example:"200"`                                            // The raw amount of the budget
}

type BudgetStatsResponse struct {
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *models.BudgetStats `json:"data"`                                                          // The statistics for the budget
}
