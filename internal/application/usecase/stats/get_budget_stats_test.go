package stats

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// fakeBudgetRepo serves a fixed budget slice.
type fakeBudgetRepo struct {
	budgets []*entity.Budget
}

func (f *fakeBudgetRepo) Create(ctx context.Context, budget *entity.Budget) error { return nil }
func (f *fakeBudgetRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	return nil, nil
}
func (f *fakeBudgetRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	return f.budgets, nil
}
func (f *fakeBudgetRepo) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	return f.budgets, nil
}
func (f *fakeBudgetRepo) ExistsActiveByUserAndCategory(ctx context.Context, userID uuid.UUID, category string) (bool, error) {
	return false, nil
}
func (f *fakeBudgetRepo) Update(ctx context.Context, budget *entity.Budget) error { return nil }
func (f *fakeBudgetRepo) Delete(ctx context.Context, id uuid.UUID) error          { return nil }

// fakeTransactionRepo serves a fixed transaction slice and sums in memory the
// same way the SQL implementation does.
type fakeTransactionRepo struct {
	transactions []*entity.Transaction
}

func (f *fakeTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	return nil
}
func (f *fakeTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, nil
}
func (f *fakeTransactionRepo) FindByFilter(ctx context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) (*adapter.TransactionListResult, error) {
	return &adapter.TransactionListResult{}, nil
}
func (f *fakeTransactionRepo) FindAllByUser(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) ([]*entity.Transaction, error) {
	result := make([]*entity.Transaction, 0, len(f.transactions))
	for _, txn := range f.transactions {
		if startDate != nil && txn.Date.Before(*startDate) {
			continue
		}
		if endDate != nil && txn.Date.After(*endDate) {
			continue
		}
		result = append(result, txn)
	}
	return result, nil
}
func (f *fakeTransactionRepo) GetTotals(ctx context.Context, filter adapter.TransactionFilter) (*adapter.TransactionTotals, error) {
	return &adapter.TransactionTotals{}, nil
}
func (f *fakeTransactionRepo) SumExpensesByCategory(ctx context.Context, userID uuid.UUID, category string, startDate, endDate time.Time) (decimal.Decimal, error) {
	sum := decimal.Zero
	window := DateWindow{Start: startDate, End: endDate}
	for _, txn := range f.transactions {
		if txn.IsExpense() && txn.Category == category && window.Contains(txn.Date) {
			sum = sum.Add(txn.Amount)
		}
	}
	return sum, nil
}
func (f *fakeTransactionRepo) SumExpenses(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) (decimal.Decimal, error) {
	sum := decimal.Zero
	window := DateWindow{Start: startDate, End: endDate}
	for _, txn := range f.transactions {
		if txn.IsExpense() && window.Contains(txn.Date) {
			sum = sum.Add(txn.Amount)
		}
	}
	return sum, nil
}
func (f *fakeTransactionRepo) Update(ctx context.Context, transaction *entity.Transaction) error {
	return nil
}
func (f *fakeTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func budget(t *testing.T, category, amount string) *entity.Budget {
	t.Helper()
	return &entity.Budget{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Category: category,
		Amount:   mustDecimal(t, amount),
		Active:   true,
	}
}

func TestGetBudgetStatsUseCase(t *testing.T) {
	now := time.Date(2025, time.June, 20, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	inMonth := time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("per budget progress against current month spend", func(t *testing.T) {
		budgetRepo := &fakeBudgetRepo{budgets: []*entity.Budget{budget(t, "Groceries", "500")}}
		txRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			txn(t, entity.TransactionTypeExpense, "125.00", "Groceries", inMonth),
			txn(t, entity.TransactionTypeExpense, "999.00", "Groceries", lastMonth), // outside month
			txn(t, entity.TransactionTypeIncome, "50.00", "Groceries", inMonth),     // income ignored
		}}

		uc := NewGetBudgetStatsUseCase(budgetRepo, txRepo).WithClock(clock)
		output, err := uc.Execute(context.Background(), GetBudgetStatsInput{UserID: userID})
		require.NoError(t, err)

		require.Len(t, output.Budgets, 1)
		progress := output.Budgets[0]
		assert.Equal(t, "125", progress.Spent.String())
		assert.Equal(t, "375", progress.Remaining.String())
		assert.Equal(t, 25.0, progress.Percentage)
	})

	t.Run("overspent budget exceeds one hundred percent and goes negative", func(t *testing.T) {
		budgetRepo := &fakeBudgetRepo{budgets: []*entity.Budget{budget(t, "Dining", "200")}}
		txRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			txn(t, entity.TransactionTypeExpense, "300.00", "Dining", inMonth),
		}}

		uc := NewGetBudgetStatsUseCase(budgetRepo, txRepo).WithClock(clock)
		output, err := uc.Execute(context.Background(), GetBudgetStatsInput{UserID: userID})
		require.NoError(t, err)

		progress := output.Budgets[0]
		assert.Equal(t, "-100", progress.Remaining.String())
		assert.Equal(t, 150.0, progress.Percentage)
	})

	t.Run("total spent covers unbudgeted categories too", func(t *testing.T) {
		budgetRepo := &fakeBudgetRepo{budgets: []*entity.Budget{
			budget(t, "Groceries", "500"),
			budget(t, "Transport", "100"),
		}}
		txRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			txn(t, entity.TransactionTypeExpense, "100.00", "Groceries", inMonth),
			txn(t, entity.TransactionTypeExpense, "40.00", "Transport", inMonth),
			txn(t, entity.TransactionTypeExpense, "75.00", "Entertainment", inMonth), // no budget
		}}

		uc := NewGetBudgetStatsUseCase(budgetRepo, txRepo).WithClock(clock)
		output, err := uc.Execute(context.Background(), GetBudgetStatsInput{UserID: userID})
		require.NoError(t, err)

		assert.Equal(t, 2, output.Totals.BudgetCount)
		assert.Equal(t, "600", output.Totals.TotalBudget.String())
		assert.Equal(t, "215", output.Totals.TotalSpent.String())
		assert.Equal(t, "385", output.Totals.TotalRemaining.String())
	})

	t.Run("no budgets yields zero totals", func(t *testing.T) {
		budgetRepo := &fakeBudgetRepo{}
		txRepo := &fakeTransactionRepo{}

		uc := NewGetBudgetStatsUseCase(budgetRepo, txRepo).WithClock(clock)
		output, err := uc.Execute(context.Background(), GetBudgetStatsInput{UserID: userID})
		require.NoError(t, err)

		assert.Empty(t, output.Budgets)
		assert.True(t, output.Totals.TotalBudget.IsZero())
		assert.True(t, output.Totals.TotalSpent.IsZero())
		assert.True(t, output.Totals.TotalRemaining.IsZero())
	})
}

func TestGetMonthlySeriesUseCase(t *testing.T) {
	now := time.Date(2025, time.June, 20, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	userID := uuid.New()

	t.Run("rejects unsupported lookback", func(t *testing.T) {
		uc := NewGetMonthlySeriesUseCase(&fakeTransactionRepo{}).WithClock(clock)

		_, err := uc.Execute(context.Background(), GetMonthlySeriesInput{UserID: userID, Months: 5})
		require.Error(t, err)
	})

	t.Run("builds a gap free series from the snapshot", func(t *testing.T) {
		txRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			txn(t, entity.TransactionTypeIncome, "1000.00", "Salary", time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)),
		}}
		uc := NewGetMonthlySeriesUseCase(txRepo).WithClock(clock)

		output, err := uc.Execute(context.Background(), GetMonthlySeriesInput{UserID: userID, Months: 3})
		require.NoError(t, err)

		require.Len(t, output.Series, 3)
		assert.Equal(t, "1000", output.Series[0].Income.String())
		assert.True(t, output.Series[1].Income.IsZero())
		assert.True(t, output.Series[2].Income.IsZero())
	})
}
