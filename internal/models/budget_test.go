package models_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walletwise/backend/internal/models"
)

func (suite *TestSuiteStandard) TestBudgetCreate() {
	user := suite.createTestUser(models.User{})
	wallet := suite.createTestWallet(models.Wallet{UserID: user.ID, Balance: balance(1000)})
	category := suite.createTestCategory(models.Category{UserID: &user.ID})

	budget, err := models.CreateBudget(models.DB, balance(200), category.ID, models.PeriodMonthly, user.ID)
	require.Nil(suite.T(), err)

	assert.True(suite.T(), budget.Amount.Equal(balance(200)), "budget amount is %s", budget.Amount)
	assert.True(suite.T(), budget.SpentAmount.IsZero(), "a new budget must not have anything spent")
	assert.Equal(suite.T(), category.ID, budget.CategoryID)

	// A monthly budget runs for 30 days
	assert.Equal(suite.T(), budget.StartDate.AddDate(0, 0, 30), budget.EndDate)

	// The budget amount is debited from the wallet
	err = models.DB.First(&wallet, wallet.ID).Error
	require.Nil(suite.T(), err)
	assert.True(suite.T(), wallet.Balance.Equal(balance(800)), "wallet balance is %s, should be 800", wallet.Balance)
}

func (suite *TestSuiteStandard) TestBudgetCreateBiweekly() {
	user := suite.createTestUser(models.User{})
	_ = suite.createTestWallet(models.Wallet{UserID: user.ID, Balance: balance(500)})
	category := suite.createTestCategory(models.Category{UserID: &user.ID})

	budget, err := models.CreateBudget(models.DB, balance(100), category.ID, models.PeriodBiweekly, user.ID)
	require.Nil(suite.T(), err)

	// A biweekly budget runs for 15 days
	assert.Equal(suite.T(), budget.StartDate.AddDate(0, 0, 15), budget.EndDate)
}

func (suite *TestSuiteStandard) TestBudgetCreateInvalidPeriod() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: &user.ID})

	_, err := models.CreateBudget(models.DB, balance(100), category.ID, "WEEKLY", user.ID)
	assert.ErrorIs(suite.T(), err, models.ErrBudgetInvalidPeriod)
}

func (suite *TestSuiteStandard) TestBudgetCreateCategoryNotFound() {
	user := suite.createTestUser(models.User{})
	_ = suite.createTestWallet(models.Wallet{UserID: user.ID, Balance: balance(1000)})

	_, err := models.CreateBudget(models.DB, balance(100), uuid.New(), models.PeriodMonthly, user.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestBudgetCreateActiveConflict() {
	user := suite.createTestUser(models.User{})
	_ = suite.createTestWallet(models.Wallet{UserID: user.ID, Balance: balance(1000)})
	category := suite.createTestCategory(models.Category{UserID: &user.ID})

	_, err := models.CreateBudget(models.DB, balance(100), category.ID, models.PeriodMonthly, user.ID)
	require.Nil(suite.T(), err)

	// Only one budget can be active for a category
	_, err = models.CreateBudget(models.DB, balance(100), category.ID, models.PeriodMonthly, user.ID)
	assert.ErrorIs(suite.T(), err, models.ErrBudgetAlreadyActive)
}

func (suite *TestSuiteStandard) TestBudgetCreateExpiredBudgetNoConflict() {
	user := suite.createTestUser(models.User{})
	_ = suite.createTestWallet(models.Wallet{UserID: user.ID, Balance: balance(1000)})
	category := suite.createTestCategory(models.Category{UserID: &user.ID})

	// An expired budget does not block a new one
	_ = suite.createTestBudget(models.Budget{
		Amount:     balance(100),
		StartDate:  time.Now().AddDate(0, 0, -60),
		EndDate:    time.Now().AddDate(0, 0, -30),
		UserID:     user.ID,
		CategoryID: category.ID,
	})

	_, err := models.CreateBudget(models.DB, balance(100), category.ID, models.PeriodMonthly, user.ID)
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestBudgetCreateInsufficientBalance() {
	tests := []struct {
		name    string
		balance decimal.Decimal
		wallet  bool
	}{
		{"Balance too low", balance(100), true},
		{"No wallet", decimal.Zero, false},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			user := suite.createTestUser(models.User{})
			if tt.wallet {
				_ = suite.createTestWallet(models.Wallet{UserID: user.ID, Balance: tt.balance})
			}
			category := suite.createTestCategory(models.Category{UserID: &user.ID})

			_, err := models.CreateBudget(models.DB, balance(200), category.ID, models.PeriodMonthly, user.ID)
			assert.ErrorIs(t, err, models.ErrWalletInsufficientBalance)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetCreateRollsBackWalletDebit() {
	user := suite.createTestUser(models.User{})
	wallet := suite.createTestWallet(models.Wallet{UserID: user.ID, Balance: balance(1000)})
	category := suite.createTestCategory(models.Category{UserID: &user.ID})

	_, err := models.CreateBudget(models.DB, balance(100), category.ID, models.PeriodMonthly, user.ID)
	require.Nil(suite.T(), err)

	// The second creation fails after the active check, the wallet
	// must be untouched by it
	_, err = models.CreateBudget(models.DB, balance(100), category.ID, models.PeriodMonthly, user.ID)
	require.NotNil(suite.T(), err)

	err = models.DB.First(&wallet, wallet.ID).Error
	require.Nil(suite.T(), err)
	assert.True(suite.T(), wallet.Balance.Equal(balance(900)), "wallet balance is %s, should be 900", wallet.Balance)
}

func (suite *TestSuiteStandard) TestBudgetUpdateAmount() {
	user := suite.createTestUser(models.User{})
	wallet := suite.createTestWallet(models.Wallet{UserID: user.ID, Balance: balance(1000)})
	category := suite.createTestCategory(models.Category{UserID: &user.ID})

	budget, err := models.CreateBudget(models.DB, balance(200), category.ID, models.PeriodMonthly, user.ID)
	require.Nil(suite.T(), err)

	updated, err := models.UpdateBudgetAmount(models.DB, budget.ID, balance(300), user.ID)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), updated.Amount.Equal(balance(300)), "budget amount is %s, should be 300", updated.Amount)

	// Only the increase is debited from the wallet
	err = models.DB.First(&wallet, wallet.ID).Error
	require.Nil(suite.T(), err)
	assert.True(suite.T(), wallet.Balance.Equal(balance(700)), "wallet balance is %s, should be 700", wallet.Balance)
}

func (suite *TestSuiteStandard) TestBudgetUpdateAmountDecrease() {
	user := suite.createTestUser(models.User{})
	_ = suite.createTestWallet(models.Wallet{UserID: user.ID, Balance: balance(1000)})
	category := suite.createTestCategory(models.Category{UserID: &user.ID})

	budget, err := models.CreateBudget(models.DB, balance(200), category.ID, models.PeriodMonthly, user.ID)
	require.Nil(suite.T(), err)

	_, err = models.UpdateBudgetAmount(models.DB, budget.ID, balance(100), user.ID)
	assert.ErrorIs(suite.T(), err, models.ErrBudgetAmountDecrease)
}

func (suite *TestSuiteStandard) TestBudgetUpdateAmountInsufficientBalance() {
	user := suite.createTestUser(models.User{})
	_ = suite.createTestWallet(models.Wallet{UserID: user.ID, Balance: balance(300)})
	category := suite.createTestCategory(models.Category{UserID: &user.ID})

	budget, err := models.CreateBudget(models.DB, balance(200), category.ID, models.PeriodMonthly, user.ID)
	require.Nil(suite.T(), err)

	// Wallet has 100 left, the allocated 200 count towards the new
	// amount, so 300 is the highest possible value
	_, err = models.UpdateBudgetAmount(models.DB, budget.ID, balance(301), user.ID)
	assert.ErrorIs(suite.T(), err, models.ErrWalletInsufficientBalance)

	_, err = models.UpdateBudgetAmount(models.DB, budget.ID, balance(300), user.ID)
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestBudgetUpdateAmountNotOwned() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})
	_ = suite.createTestWallet(models.Wallet{UserID: user.ID, Balance: balance(1000)})
	category := suite.createTestCategory(models.Category{UserID: &user.ID})

	budget, err := models.CreateBudget(models.DB, balance(200), category.ID, models.PeriodMonthly, user.ID)
	require.Nil(suite.T(), err)

	_, err = models.UpdateBudgetAmount(models.DB, budget.ID, balance(300), other.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestBudgetsForUser() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: &user.ID})

	_ = suite.createTestBudget(models.Budget{UserID: user.ID, CategoryID: category.ID, StartDate: time.Now().AddDate(0, 0, -40)})
	_ = suite.createTestBudget(models.Budget{UserID: user.ID, CategoryID: category.ID, StartDate: time.Now()})
	_ = suite.createTestBudget(models.Budget{UserID: other.ID, CategoryID: category.ID, StartDate: time.Now()})

	budgets, err := models.BudgetsForUser(models.DB, user.ID)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), budgets, 2)

	// Newest budget first
	assert.True(suite.T(), budgets[0].StartDate.After(budgets[1].StartDate))
}

func (suite *TestSuiteStandard) TestBudgetByCategory() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: &user.ID})

	_ = suite.createTestBudget(models.Budget{UserID: user.ID, CategoryID: category.ID, Amount: balance(100), StartDate: time.Now().AddDate(0, 0, -40)})
	newest := suite.createTestBudget(models.Budget{UserID: user.ID, CategoryID: category.ID, Amount: balance(250), StartDate: time.Now()})

	budget, err := models.BudgetByCategory(models.DB, category.ID, user.ID)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), newest.ID, budget.ID)

	_, err = models.BudgetByCategory(models.DB, uuid.New(), user.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestBudgetAmount() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: &user.ID})
	budget := suite.createTestBudget(models.Budget{UserID: user.ID, CategoryID: category.ID, Amount: balance(125.5)})

	amount, err := models.BudgetAmount(models.DB, budget.ID, user.ID)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), amount.Equal(balance(125.5)))
}

func (suite *TestSuiteStandard) TestBudgetStats() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: &user.ID})

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	budget := suite.createTestBudget(models.Budget{
		Amount:      balance(100),
		SpentAmount: balance(50),
		StartDate:   now.AddDate(0, 0, -10),
		EndDate:     now.AddDate(0, 0, 20),
		UserID:      user.ID,
		CategoryID:  category.ID,
	})

	_ = suite.createTestTransaction(models.Transaction{
		Amount:     balance(30),
		Date:       time.Date(2026, 8, 13, 9, 0, 0, 0, time.UTC),
		UserID:     user.ID,
		CategoryID: category.ID,
		WalletID:   suite.createTestWallet(models.Wallet{UserID: user.ID}).ID,
	})
	_ = suite.createTestTransaction(models.Transaction{
		Amount:     balance(20),
		Date:       time.Date(2026, 8, 17, 9, 0, 0, 0, time.UTC),
		UserID:     user.ID,
		CategoryID: category.ID,
		WalletID:   suite.createTestWallet(models.Wallet{UserID: suite.createTestUser(models.User{}).ID}).ID,
	})

	stats, err := budget.Stats(models.DB, now)
	require.Nil(suite.T(), err)

	assert.True(suite.T(), stats.TotalBudgetAmount.Equal(balance(100)))
	assert.True(suite.T(), stats.TotalAmountSpent.Equal(balance(50)), "total spent is %s", stats.TotalAmountSpent)
	assert.True(suite.T(), stats.RemainingBudgetAmount.Equal(balance(50)))
	assert.True(suite.T(), stats.PercentageBudgetUsed.Equal(balance(50)), "used percentage is %s", stats.PercentageBudgetUsed)
	assert.True(suite.T(), stats.PercentageBudgetRemaining.Equal(balance(50)))
	assert.Equal(suite.T(), 2, stats.TotalTransactions)
	assert.True(suite.T(), stats.AverageSpentPerTransaction.Equal(balance(25)))
	assert.Equal(suite.T(), 10, stats.DaysElapsed)
	assert.Equal(suite.T(), 20, stats.DaysRemaining)
	assert.True(suite.T(), stats.DailySpendingRate.Equal(balance(5)), "daily rate is %s", stats.DailySpendingRate)
	assert.Equal(suite.T(), []string{"Thursday", "Monday"}, stats.TransactionDays)
}

// Stats match transactions by category and user only. Spending that
// predates the budget's start date still counts against it.
func (suite *TestSuiteStandard) TestBudgetStatsIncludePriorSpending() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: &user.ID})
	wallet := suite.createTestWallet(models.Wallet{UserID: user.ID})

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	budget := suite.createTestBudget(models.Budget{
		Amount:     balance(100),
		StartDate:  now.AddDate(0, 0, -10),
		EndDate:    now.AddDate(0, 0, 20),
		UserID:     user.ID,
		CategoryID: category.ID,
	})

	_ = suite.createTestTransaction(models.Transaction{
		Amount:     balance(40),
		Date:       budget.StartDate.AddDate(0, 0, -60),
		UserID:     user.ID,
		CategoryID: category.ID,
		WalletID:   wallet.ID,
	})
	_ = suite.createTestTransaction(models.Transaction{
		Amount:     balance(10),
		Date:       now.AddDate(0, 0, -1),
		UserID:     user.ID,
		CategoryID: category.ID,
		WalletID:   wallet.ID,
	})

	stats, err := budget.Stats(models.DB, now)
	require.Nil(suite.T(), err)

	assert.True(suite.T(), stats.TotalAmountSpent.Equal(balance(50)), "total spent is %s", stats.TotalAmountSpent)
	assert.Equal(suite.T(), 2, stats.TotalTransactions)
}

func (suite *TestSuiteStandard) TestBudgetStatsClamping() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: &user.ID})
	wallet := suite.createTestWallet(models.Wallet{UserID: user.ID})

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	budget := suite.createTestBudget(models.Budget{
		Amount:     balance(100),
		StartDate:  now.AddDate(0, 0, -10),
		EndDate:    now.AddDate(0, 0, 20),
		UserID:     user.ID,
		CategoryID: category.ID,
	})

	// Overspending is clamped to 100% used and 0% remaining
	_ = suite.createTestTransaction(models.Transaction{
		Amount:     balance(150),
		Date:       now.AddDate(0, 0, -5),
		UserID:     user.ID,
		CategoryID: category.ID,
		WalletID:   wallet.ID,
	})

	stats, err := budget.Stats(models.DB, now)
	require.Nil(suite.T(), err)

	assert.True(suite.T(), stats.PercentageBudgetUsed.Equal(balance(100)), "used percentage is %s", stats.PercentageBudgetUsed)
	assert.True(suite.T(), stats.PercentageBudgetRemaining.IsZero(), "remaining percentage is %s", stats.PercentageBudgetRemaining)
	assert.True(suite.T(), stats.RemainingBudgetAmount.Equal(balance(-50)))
}

func (suite *TestSuiteStandard) TestBudgetStatsNoTransactions() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: &user.ID})

	now := time.Now().In(time.UTC)
	budget := suite.createTestBudget(models.Budget{
		Amount:     balance(100),
		StartDate:  now,
		EndDate:    now.AddDate(0, 0, 30),
		UserID:     user.ID,
		CategoryID: category.ID,
	})

	stats, err := budget.Stats(models.DB, now)
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), 0, stats.TotalTransactions)
	assert.True(suite.T(), stats.TotalAmountSpent.IsZero())
	assert.True(suite.T(), stats.AverageSpentPerTransaction.IsZero())
	assert.True(suite.T(), stats.DailySpendingRate.IsZero())
	assert.Empty(suite.T(), stats.TransactionDays)
}
