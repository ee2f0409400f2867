package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/walletwise/backend/internal/controllers/v1"
	"github.com/walletwise/backend/internal/models"
	"github.com/walletwise/backend/test"
)

func (suite *TestSuiteStandard) TestBudgetsRequireAuth() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	token := registerTestUser(suite.T(), decimal.NewFromInt(1000))

	budget := createTestBudget(suite.T(), token, v1.BudgetEditable{Amount: decimal.NewFromInt(200)})
	require.NotNil(suite.T(), budget.Data)

	assert.True(suite.T(), budget.Data.Amount.Equal(decimal.NewFromInt(200)))
	assert.True(suite.T(), budget.Data.SpentAmount.IsZero())
	assert.Equal(suite.T(), budget.Data.StartDate.AddDate(0, 0, 30), budget.Data.EndDate)
	assert.Contains(suite.T(), budget.Data.Links.Self, "/v1/budget/"+budget.Data.ID.String())

	// The wallet is debited by the budget amount
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/wallet/balance", "", test.AuthHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var wallet v1.WalletResponse
	test.DecodeResponse(suite.T(), &r, &wallet)
	assert.True(suite.T(), wallet.Data.Balance.Equal(decimal.NewFromInt(800)), "wallet balance is %s, should be 800", wallet.Data.Balance)
}

func (suite *TestSuiteStandard) TestBudgetsCreateErrors() {
	token := registerTestUser(suite.T(), decimal.NewFromInt(100))
	category := createTestCategory(suite.T(), token, v1.CategoryEditable{})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Broken body", `{ "amount": 2" }`, http.StatusBadRequest},
		{"Unknown category", v1.BudgetEditable{Amount: decimal.NewFromInt(50), CategoryID: uuid.New(), Period: models.PeriodMonthly}, http.StatusNotFound},
		{"Invalid period", map[string]any{"amount": 50, "categoryId": category.Data.ID, "period": "WEEKLY"}, http.StatusBadRequest},
		{"Insufficient balance", v1.BudgetEditable{Amount: decimal.NewFromInt(200), CategoryID: category.Data.ID, Period: models.PeriodMonthly}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/budget", tt.body, test.AuthHeader(token))
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsCreateConflict() {
	token := registerTestUser(suite.T(), decimal.NewFromInt(1000))
	category := createTestCategory(suite.T(), token, v1.CategoryEditable{})

	_ = createTestBudget(suite.T(), token, v1.BudgetEditable{Amount: decimal.NewFromInt(100), CategoryID: category.Data.ID})

	budget := createTestBudget(suite.T(), token, v1.BudgetEditable{Amount: decimal.NewFromInt(100), CategoryID: category.Data.ID}, http.StatusBadRequest)
	require.NotNil(suite.T(), budget.Error)
	assert.Equal(suite.T(), models.ErrBudgetAlreadyActive.Error(), *budget.Error)
}

func (suite *TestSuiteStandard) TestBudgetsList() {
	token := registerTestUser(suite.T(), decimal.NewFromInt(1000))

	_ = createTestBudget(suite.T(), token, v1.BudgetEditable{Amount: decimal.NewFromInt(100)})
	_ = createTestBudget(suite.T(), token, v1.BudgetEditable{Amount: decimal.NewFromInt(200)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budget", "", test.AuthHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var budgets v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &budgets)
	assert.Len(suite.T(), budgets.Data, 2)
}

func (suite *TestSuiteStandard) TestBudgetsListScopedToUser() {
	token := registerTestUser(suite.T(), decimal.NewFromInt(1000))
	otherToken := registerTestUser(suite.T(), decimal.NewFromInt(1000))

	_ = createTestBudget(suite.T(), token, v1.BudgetEditable{Amount: decimal.NewFromInt(100)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budget", "", test.AuthHeader(otherToken))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var budgets v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &budgets)
	assert.Empty(suite.T(), budgets.Data)
}

func (suite *TestSuiteStandard) TestBudgetsUpdateAmount() {
	token := registerTestUser(suite.T(), decimal.NewFromInt(1000))
	budget := createTestBudget(suite.T(), token, v1.BudgetEditable{Amount: decimal.NewFromInt(200)})

	r := test.Request(suite.T(), http.MethodPatch, budget.Data.Links.Self, v1.BudgetUpdate{Amount: decimal.NewFromInt(300)}, test.AuthHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.True(suite.T(), updated.Data.Amount.Equal(decimal.NewFromInt(300)))
}

func (suite *TestSuiteStandard) TestBudgetsUpdateAmountErrors() {
	token := registerTestUser(suite.T(), decimal.NewFromInt(1000))
	budget := createTestBudget(suite.T(), token, v1.BudgetEditable{Amount: decimal.NewFromInt(200)})

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"Invalid UUID", "http://example.com/v1/budget/NotAUUID", v1.BudgetUpdate{Amount: decimal.NewFromInt(300)}, http.StatusBadRequest},
		{"Unknown budget", "http://example.com/v1/budget/" + uuid.NewString(), v1.BudgetUpdate{Amount: decimal.NewFromInt(300)}, http.StatusNotFound},
		{"Decreased amount", budget.Data.Links.Self, v1.BudgetUpdate{Amount: decimal.NewFromInt(100)}, http.StatusBadRequest},
		{"More than the wallet covers", budget.Data.Links.Self, v1.BudgetUpdate{Amount: decimal.NewFromInt(1500)}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, tt.path, tt.body, test.AuthHeader(token))
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsGetAmount() {
	token := registerTestUser(suite.T(), decimal.NewFromInt(1000))
	budget := createTestBudget(suite.T(), token, v1.BudgetEditable{Amount: decimal.NewFromInt(200)})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/budget/%s/amount", budget.Data.ID), "", test.AuthHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var amount v1.BudgetAmountResponse
	test.DecodeResponse(suite.T(), &r, &amount)
	assert.True(suite.T(), amount.Data.Equal(decimal.NewFromInt(200)))
}

func (suite *TestSuiteStandard) TestBudgetsGetByCategory() {
	token := registerTestUser(suite.T(), decimal.NewFromInt(1000))
	category := createTestCategory(suite.T(), token, v1.CategoryEditable{})
	budget := createTestBudget(suite.T(), token, v1.BudgetEditable{Amount: decimal.NewFromInt(200), CategoryID: category.Data.ID})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/budget/category/%s", category.Data.ID), "", test.AuthHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var found v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &found)
	assert.Equal(suite.T(), budget.Data.ID, found.Data.ID)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/budget/category/%s", uuid.New()), "", test.AuthHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetsStats() {
	token := registerTestUser(suite.T(), decimal.NewFromInt(1000))
	budget := createTestBudget(suite.T(), token, v1.BudgetEditable{Amount: decimal.NewFromInt(100)})

	_ = createTestTransaction(suite.T(), token, v1.TransactionEditable{Amount: decimal.NewFromInt(30), BudgetID: budget.Data.ID})
	_ = createTestTransaction(suite.T(), token, v1.TransactionEditable{Amount: decimal.NewFromInt(20), BudgetID: budget.Data.ID})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/budget/stats/%s", budget.Data.ID), "", test.AuthHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var stats v1.BudgetStatsResponse
	test.DecodeResponse(suite.T(), &r, &stats)
	require.NotNil(suite.T(), stats.Data)

	assert.True(suite.T(), stats.Data.TotalAmountSpent.Equal(decimal.NewFromInt(50)), "total spent is %s", stats.Data.TotalAmountSpent)
	assert.True(suite.T(), stats.Data.PercentageBudgetUsed.Equal(decimal.NewFromInt(50)))
	assert.True(suite.T(), stats.Data.PercentageBudgetRemaining.Equal(decimal.NewFromInt(50)))
	assert.Equal(suite.T(), 2, stats.Data.TotalTransactions)
	assert.True(suite.T(), stats.Data.AverageSpentPerTransaction.Equal(decimal.NewFromInt(25)))
}

// TestBudgetsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestBudgetsDBClosed() {
	token := registerTestUser(suite.T(), decimal.NewFromInt(1000))

	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budget", "", test.AuthHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var budgets v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &budgets)
	assert.Contains(suite.T(), *budgets.Error, models.ErrGeneral.Error())
}
