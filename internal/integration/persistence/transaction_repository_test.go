package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

// openTestDB opens an isolated in-memory database with the core tables migrated.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.TransactionModel{},
		&model.BudgetModel{},
		&model.GoalModel{},
		&model.RefreshTokenModel{},
		&model.PasswordResetTokenModel{},
	))

	return db
}

func seedTransaction(t *testing.T, repo adapter.TransactionRepository, userID uuid.UUID, txnType entity.TransactionType, amount, category string, date time.Time) *entity.Transaction {
	t.Helper()

	d, err := decimal.NewFromString(amount)
	require.NoError(t, err)
	txn := entity.NewTransaction(userID, txnType, d, category, date, "seed")
	require.NoError(t, repo.Create(context.Background(), txn))
	return txn
}

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewTransactionRepository(db)
	userID := uuid.New()
	otherUser := uuid.New()
	march := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	april := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)

	seedTransaction(t, repo, userID, entity.TransactionTypeIncome, "3000.00", "Salary", march)
	seedTransaction(t, repo, userID, entity.TransactionTypeExpense, "120.50", "Groceries", march)
	seedTransaction(t, repo, userID, entity.TransactionTypeExpense, "80.00", "Groceries", april)
	seedTransaction(t, repo, userID, entity.TransactionTypeExpense, "60.00", "Transport", april)
	seedTransaction(t, repo, otherUser, entity.TransactionTypeExpense, "999.00", "Groceries", april)

	t.Run("FindAllByUser scopes to owner and window", func(t *testing.T) {
		all, err := repo.FindAllByUser(ctx, userID, nil, nil)
		require.NoError(t, err)
		assert.Len(t, all, 4)

		aprilStart := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
		windowed, err := repo.FindAllByUser(ctx, userID, &aprilStart, nil)
		require.NoError(t, err)
		assert.Len(t, windowed, 2)
	})

	t.Run("SumExpensesByCategory ignores other users and income", func(t *testing.T) {
		start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, time.April, 30, 23, 59, 59, 0, time.UTC)

		sum, err := repo.SumExpensesByCategory(ctx, userID, "Groceries", start, end)
		require.NoError(t, err)
		assert.Equal(t, "200.5", sum.String())
	})

	t.Run("SumExpensesByCategory returns zero without rows", func(t *testing.T) {
		start := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)

		sum, err := repo.SumExpensesByCategory(ctx, userID, "Groceries", start, end)
		require.NoError(t, err)
		assert.True(t, sum.IsZero())
	})

	t.Run("SumExpenses covers all categories", func(t *testing.T) {
		start := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, time.April, 30, 23, 59, 59, 0, time.UTC)

		sum, err := repo.SumExpenses(ctx, userID, start, end)
		require.NoError(t, err)
		assert.Equal(t, "140", sum.String())
	})

	t.Run("FindByFilter paginates and filters by type", func(t *testing.T) {
		expense := entity.TransactionTypeExpense
		result, err := repo.FindByFilter(ctx, adapter.TransactionFilter{
			UserID: userID,
			Type:   &expense,
		}, adapter.TransactionPagination{Page: 1, Limit: 2})
		require.NoError(t, err)

		assert.Equal(t, int64(3), result.Total)
		assert.Len(t, result.Transactions, 2)
		assert.Equal(t, 2, result.TotalPages)
	})

	t.Run("GetTotals nets income against expenses", func(t *testing.T) {
		totals, err := repo.GetTotals(ctx, adapter.TransactionFilter{UserID: userID})
		require.NoError(t, err)

		assert.Equal(t, "3000", totals.IncomeTotal.String())
		assert.Equal(t, "260.5", totals.ExpenseTotal.String())
		assert.Equal(t, "2739.5", totals.NetTotal.String())
	})

	t.Run("Delete is a soft delete", func(t *testing.T) {
		txn := seedTransaction(t, repo, userID, entity.TransactionTypeExpense, "10.00", "Misc", april)
		require.NoError(t, repo.Delete(ctx, txn.ID))

		_, err := repo.FindByID(ctx, txn.ID)
		assert.Error(t, err)

		// Row still exists when queried unscoped.
		var count int64
		require.NoError(t, db.Unscoped().Model(&model.TransactionModel{}).Where("id = ?", txn.ID).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

func TestBudgetRepositoryUniqueness(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewBudgetRepository(db)
	userID := uuid.New()

	budget := entity.NewBudget(userID, "Groceries", decimal.NewFromInt(500), "")
	require.NoError(t, repo.Create(ctx, budget))

	exists, err := repo.ExistsActiveByUserAndCategory(ctx, userID, "Groceries")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsActiveByUserAndCategory(ctx, userID, "Transport")
	require.NoError(t, err)
	assert.False(t, exists)

	// Deactivation frees the category for a new budget.
	budget.Active = false
	require.NoError(t, repo.Update(ctx, budget))

	exists, err = repo.ExistsActiveByUserAndCategory(ctx, userID, "Groceries")
	require.NoError(t, err)
	assert.False(t, exists)

	active, err := repo.FindActiveByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGoalRepositoryOrdering(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewGoalRepository(db)
	userID := uuid.New()

	later := entity.NewGoal(userID, "House", decimal.NewFromInt(50000), time.Date(2027, time.June, 1, 0, 0, 0, 0, time.UTC), "Savings")
	sooner := entity.NewGoal(userID, "Vacation", decimal.NewFromInt(2000), time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), "Travel")
	require.NoError(t, repo.Create(ctx, later))
	require.NoError(t, repo.Create(ctx, sooner))

	goals, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.Equal(t, "Vacation", goals[0].Name)
	assert.Equal(t, "House", goals[1].Name)

	// Saved amount survives the round trip with decimal precision.
	sooner.Contribute(decimal.RequireFromString("123.45"))
	require.NoError(t, repo.Update(ctx, sooner))

	reloaded, err := repo.FindByID(ctx, sooner.ID)
	require.NoError(t, err)
	assert.Equal(t, "123.45", reloaded.SavedAmount.String())
}
