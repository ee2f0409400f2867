package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Period determines how long a budget is active.
type Period string

const (
	PeriodMonthly  Period = "MONTHLY"
	PeriodBiweekly Period = "BIWEEKLY"
)

// Valid checks that the period is one of the defined values.
func (p Period) Valid() bool {
	return slices.Contains([]Period{PeriodMonthly, PeriodBiweekly}, p)
}

// days returns the number of days a budget with this period is active.
func (p Period) days() int {
	if p == PeriodMonthly {
		return 30
	}

	return 15
}

// Budget is a time-bounded spending allowance for a category.
//
// Creating a budget pre-allocates its amount from the wallet of the
// user, transactions then accumulate against SpentAmount.
type Budget struct {
	DefaultModel
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	SpentAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	StartDate   time.Time
	EndDate     time.Time
	Period      Period
	UserID      uuid.UUID
	User        User `json:"-"`
	CategoryID  uuid.UUID
	Category    Category `json:"-"`
}

var (
	ErrBudgetInvalidPeriod  = errors.New("the period must be MONTHLY or BIWEEKLY")
	ErrBudgetAlreadyActive  = errors.New("an active budget already exists for this category")
	ErrBudgetAmountExceeded = errors.New("amount exceeds budget limit")
	ErrBudgetAmountDecrease = errors.New("the budget amount can only be increased")
)

// AfterFind enforces UTC for the budget dates.
func (b *Budget) AfterFind(tx *gorm.DB) (err error) {
	err = b.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	b.StartDate = b.StartDate.In(time.UTC)
	b.EndDate = b.EndDate.In(time.UTC)
	return
}

// BeforeSave sets the timezone for the budget dates to UTC.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.StartDate = b.StartDate.In(time.UTC)
	b.EndDate = b.EndDate.In(time.UTC)

	return nil
}

// CreateBudget creates a new budget for a category, debiting the
// budget amount from the wallet of the user.
//
// The wallet debit and the budget insert are one database transaction,
// they either both happen or neither does.
func CreateBudget(db *gorm.DB, amount decimal.Decimal, categoryID uuid.UUID, period Period, userID uuid.UUID) (Budget, error) {
	if !period.Valid() {
		return Budget{}, ErrBudgetInvalidPeriod
	}

	var budget Budget
	err := db.Transaction(func(tx *gorm.DB) error {
		category, err := CategoryByID(tx, categoryID, userID)
		if err != nil {
			return err
		}

		// Only one budget can be active for a category at any time
		var count int64
		err = tx.Model(&Budget{}).
			Where(&Budget{UserID: userID, CategoryID: category.ID}).
			Where("end_date > ?", time.Now().In(time.UTC)).
			Count(&count).Error
		if err != nil {
			return err
		}

		if count > 0 {
			return ErrBudgetAlreadyActive
		}

		wallet, err := WalletForUser(tx, userID)
		if err != nil {
			// A user without a wallet cannot fund a budget
			if errors.Is(err, ErrResourceNotFound) {
				return ErrWalletInsufficientBalance
			}
			return err
		}

		if wallet.Balance.LessThan(amount) {
			return ErrWalletInsufficientBalance
		}

		// Budgets pre-allocate their amount from the wallet
		wallet.Balance = wallet.Balance.Sub(amount)
		err = tx.Save(&wallet).Error
		if err != nil {
			return err
		}

		startDate := time.Now().In(time.UTC)
		budget = Budget{
			Amount:      amount,
			SpentAmount: decimal.Zero,
			StartDate:   startDate,
			EndDate:     startDate.AddDate(0, 0, period.days()),
			Period:      period,
			UserID:      userID,
			CategoryID:  category.ID,
		}

		return tx.Create(&budget).Error
	})
	if err != nil {
		return Budget{}, err
	}

	return budget, nil
}

// UpdateBudgetAmount raises the amount of a budget, debiting the
// difference from the wallet of the user. Amounts can never shrink.
func UpdateBudgetAmount(db *gorm.DB, id uuid.UUID, newAmount decimal.Decimal, userID uuid.UUID) (Budget, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		budget, err := BudgetForUser(tx, id, userID)
		if err != nil {
			return err
		}

		if newAmount.LessThan(budget.Amount) {
			return ErrBudgetAmountDecrease
		}

		wallet, err := WalletForUser(tx, userID)
		if err != nil {
			if errors.Is(err, ErrResourceNotFound) {
				return ErrWalletInsufficientBalance
			}
			return err
		}

		// The wallet only needs to cover the increase since the
		// current amount is already allocated
		if wallet.Balance.Add(budget.Amount).LessThan(newAmount) {
			return ErrWalletInsufficientBalance
		}

		wallet.Balance = wallet.Balance.Sub(newAmount.Sub(budget.Amount))
		err = tx.Save(&wallet).Error
		if err != nil {
			return err
		}

		budget.Amount = newAmount
		return tx.Save(&budget).Error
	})
	if err != nil {
		return Budget{}, err
	}

	// Reload to get the updated timestamps
	return BudgetForUser(db, id, userID)
}

// BudgetForUser returns the budget with the ID if the user owns it.
func BudgetForUser(db *gorm.DB, id uuid.UUID, userID uuid.UUID) (Budget, error) {
	var budget Budget
	err := db.Where(&Budget{UserID: userID}).First(&budget, id).Error
	if err != nil {
		return Budget{}, err
	}

	return budget, nil
}

// BudgetsForUser returns all budgets of the user.
func BudgetsForUser(db *gorm.DB, userID uuid.UUID) ([]Budget, error) {
	var budgets []Budget
	err := db.Where(&Budget{UserID: userID}).Order("start_date DESC").Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	return budgets, nil
}

// BudgetByCategory returns the newest budget of the user for a
// category.
func BudgetByCategory(db *gorm.DB, categoryID uuid.UUID, userID uuid.UUID) (Budget, error) {
	var budget Budget
	err := db.Where(&Budget{UserID: userID, CategoryID: categoryID}).Order("start_date DESC").First(&budget).Error
	if err != nil {
		return Budget{}, err
	}

	return budget, nil
}

// BudgetAmount returns the raw amount of a budget owned by the user.
func BudgetAmount(db *gorm.DB, id uuid.UUID, userID uuid.UUID) (decimal.Decimal, error) {
	budget, err := BudgetForUser(db, id, userID)
	if err != nil {
		return decimal.Zero, err
	}

	return budget.Amount, nil
}

// BudgetStats contains the derived statistics for a budget.
type BudgetStats struct {
	TotalBudgetAmount          decimal.Decimal `json:"totalBudgetAmount" example:"200"`            // The allowance ceiling of the budget
	TotalAmountSpent           decimal.Decimal `json:"totalAmountSpent" example:"50"`              // Sum of all transaction amounts for the category
	RemainingBudgetAmount      decimal.Decimal `json:"remainingBudgetAmount" example:"150"`        // Amount minus the total spent
	PercentageBudgetUsed       decimal.Decimal `json:"percentageBudgetUsed" example:"25"`          // Share of the budget that is used, clamped to [0, 100]
	PercentageBudgetRemaining  decimal.Decimal `json:"percentageBudgetRemaining" example:"75"`     // Share of the budget that is left, clamped to [0, 100]
	TotalTransactions          int             `json:"totalTransactions" example:"2"`              // Number of transactions
	AverageSpentPerTransaction decimal.Decimal `json:"averageSpentPerTransaction" example:"25"`    // Total spent divided by the number of transactions
	DaysRemaining              int             `json:"daysRemaining" example:"12"`                 // Whole days until the budget expires
	DaysElapsed                int             `json:"daysElapsed" example:"18"`                   // Whole days since the budget started
	DailySpendingRate          decimal.Decimal `json:"dailySpendingRate" example:"2.78"`           // Total spent divided by the days elapsed
	AverageDailySpending       decimal.Decimal `json:"averageDailySpending" example:"2.78"`        // Total spent divided by the days elapsed
	TransactionDays            []string        `json:"transactionDays" example:"Monday,Thursday"`  // Weekday of every transaction
}

var oneHundred = decimal.NewFromInt(100)

// clampPercentage limits a percentage to the range [0, 100].
func clampPercentage(value decimal.Decimal) decimal.Decimal {
	if value.LessThan(decimal.Zero) {
		return decimal.Zero
	}

	if value.GreaterThan(oneHundred) {
		return oneHundred
	}

	return value
}

// Stats derives the statistics for a budget from the transaction
// history.
//
// Transactions are matched by the category of the budget and the user,
// without bounding them to the date window of the budget. Transactions
// recorded against an earlier budget for the same category are
// therefore included.
func (b Budget) Stats(db *gorm.DB, now time.Time) (BudgetStats, error) {
	var transactions []Transaction
	err := db.
		Where(&Transaction{CategoryID: b.CategoryID, UserID: b.UserID}).
		Order("date ASC").
		Find(&transactions).Error
	if err != nil {
		return BudgetStats{}, err
	}

	totalSpent := decimal.Zero
	transactionDays := make([]string, 0, len(transactions))
	for _, transaction := range transactions {
		totalSpent = totalSpent.Add(transaction.Amount)
		transactionDays = append(transactionDays, transaction.Date.In(time.UTC).Weekday().String())
	}

	remaining := b.Amount.Sub(totalSpent)

	usedPercentage := decimal.Zero
	remainingPercentage := decimal.Zero
	if b.Amount.IsPositive() {
		usedPercentage = clampPercentage(totalSpent.Div(b.Amount).Mul(oneHundred))
		remainingPercentage = clampPercentage(remaining.Div(b.Amount).Mul(oneHundred))
	}

	averageSpent := decimal.Zero
	if len(transactions) > 0 {
		averageSpent = totalSpent.Div(decimal.NewFromInt(int64(len(transactions))))
	}

	now = now.In(time.UTC)
	daysRemaining := wholeDays(now, b.EndDate)
	daysElapsed := wholeDays(b.StartDate, now)

	dailyRate := decimal.Zero
	if daysElapsed > 0 {
		dailyRate = totalSpent.Div(decimal.NewFromInt(int64(daysElapsed)))
	}

	return BudgetStats{
		TotalBudgetAmount:          b.Amount,
		TotalAmountSpent:           totalSpent.Round(2),
		RemainingBudgetAmount:      remaining.Round(2),
		PercentageBudgetUsed:       usedPercentage.Round(2),
		PercentageBudgetRemaining:  remainingPercentage.Round(2),
		TotalTransactions:          len(transactions),
		AverageSpentPerTransaction: averageSpent.Round(2),
		DaysRemaining:              daysRemaining,
		DaysElapsed:                daysElapsed,
		DailySpendingRate:          dailyRate.Round(2),
		AverageDailySpending:       dailyRate.Round(2),
		TransactionDays:            transactionDays,
	}, nil
}

// wholeDays returns the number of full days between two points in
// time. The result is negative when until is before from.
func wholeDays(from, until time.Time) int {
	return int(until.Sub(from).Hours() / 24)
}
