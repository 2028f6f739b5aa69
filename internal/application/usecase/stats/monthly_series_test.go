package stats

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

func TestValidateLookback(t *testing.T) {
	for _, months := range []int{3, 6, 12, 24} {
		assert.NoError(t, ValidateLookback(months))
	}

	for _, months := range []int{0, 1, 2, 5, 7, 13, 36, -6} {
		err := ValidateLookback(months)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerror.ErrInvalidLookback))
	}
}

func TestBuildMonthlySeries(t *testing.T) {
	now := time.Date(2025, time.June, 20, 10, 0, 0, 0, time.UTC)

	t.Run("no transactions still yields a full zero-valued series", func(t *testing.T) {
		series := BuildMonthlySeries(nil, 6, now)

		require.Len(t, series, 6)
		assert.Equal(t, "2025-01", series[0].Month)
		assert.Equal(t, "2025-06", series[5].Month)
		for _, point := range series {
			assert.True(t, point.Income.IsZero())
			assert.True(t, point.Expenses.IsZero())
			assert.True(t, point.Savings.IsZero())
			assert.Equal(t, 0.0, point.SavingsRate)
		}
	})

	t.Run("two consecutive months bucket independently", func(t *testing.T) {
		may := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)
		june := time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC)
		transactions := []*entity.Transaction{
			txn(t, entity.TransactionTypeIncome, "2000.00", "Salary", may),
			txn(t, entity.TransactionTypeExpense, "500.00", "Rent", may),
			txn(t, entity.TransactionTypeIncome, "2000.00", "Salary", june),
			txn(t, entity.TransactionTypeExpense, "2500.00", "Travel", june),
		}

		series := BuildMonthlySeries(transactions, 3, now)

		require.Len(t, series, 3)

		assert.Equal(t, "2025-04", series[0].Month)
		assert.True(t, series[0].Income.IsZero())

		assert.Equal(t, "2025-05", series[1].Month)
		assert.Equal(t, "May 2025", series[1].Label)
		assert.Equal(t, "2000", series[1].Income.String())
		assert.Equal(t, "500", series[1].Expenses.String())
		assert.Equal(t, "1500", series[1].Savings.String())
		assert.Equal(t, 75.0, series[1].SavingsRate)

		assert.Equal(t, "2025-06", series[2].Month)
		assert.Equal(t, "-500", series[2].Savings.String())
		assert.Equal(t, -25.0, series[2].SavingsRate)
	})

	t.Run("transactions outside the window are excluded", func(t *testing.T) {
		tooOld := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
		inWindow := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
		transactions := []*entity.Transaction{
			txn(t, entity.TransactionTypeExpense, "100.00", "Old", tooOld),
			txn(t, entity.TransactionTypeExpense, "50.00", "Fresh", inWindow),
		}

		series := BuildMonthlySeries(transactions, 3, now)

		require.Len(t, series, 3)
		assert.Equal(t, "50", series[0].Expenses.String())
	})

	t.Run("expense-only month has zero savings rate", func(t *testing.T) {
		transactions := []*entity.Transaction{
			txn(t, entity.TransactionTypeExpense, "300.00", "Rent", now),
		}

		series := BuildMonthlySeries(transactions, 3, now)

		last := series[2]
		assert.Equal(t, "-300", last.Savings.String())
		assert.Equal(t, 0.0, last.SavingsRate)
	})

	t.Run("window crosses a year boundary", func(t *testing.T) {
		january := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
		series := BuildMonthlySeries(nil, 12, january)

		require.Len(t, series, 12)
		assert.Equal(t, "2024-02", series[0].Month)
		assert.Equal(t, "2025-01", series[11].Month)
	})
}
