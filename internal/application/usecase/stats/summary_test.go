package stats

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetwise/backend/internal/domain/entity"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func txn(t *testing.T, txnType entity.TransactionType, amount, category string, date time.Time) *entity.Transaction {
	t.Helper()
	return &entity.Transaction{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Type:     txnType,
		Amount:   mustDecimal(t, amount),
		Category: category,
		Date:     date,
	}
}

func TestSummarize(t *testing.T) {
	date := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	t.Run("empty input yields zero totals and empty breakdown", func(t *testing.T) {
		summary := Summarize(nil, nil)

		assert.True(t, summary.TotalIncome.IsZero())
		assert.True(t, summary.TotalExpenses.IsZero())
		assert.True(t, summary.NetSavings.IsZero())
		assert.Empty(t, summary.CategoryBreakdown)
		assert.Equal(t, 0, summary.TransactionCount)
	})

	t.Run("mixed income and expenses", func(t *testing.T) {
		transactions := []*entity.Transaction{
			txn(t, entity.TransactionTypeIncome, "3000.00", "Salary", date),
			txn(t, entity.TransactionTypeExpense, "1200.50", "Rent", date),
			txn(t, entity.TransactionTypeExpense, "300.25", "Groceries", date),
			txn(t, entity.TransactionTypeExpense, "99.25", "Groceries", date),
		}

		summary := Summarize(transactions, nil)

		assert.Equal(t, "3000", summary.TotalIncome.String())
		assert.Equal(t, "1600", summary.TotalExpenses.String())
		assert.Equal(t, "1400", summary.NetSavings.String())
		assert.Equal(t, 4, summary.TransactionCount)
		assert.Len(t, summary.CategoryBreakdown, 2)
		assert.Equal(t, "1200.5", summary.CategoryBreakdown["Rent"].String())
		assert.Equal(t, "399.5", summary.CategoryBreakdown["Groceries"].String())
	})

	t.Run("income never enters the category breakdown", func(t *testing.T) {
		transactions := []*entity.Transaction{
			txn(t, entity.TransactionTypeIncome, "500.00", "Salary", date),
			txn(t, entity.TransactionTypeIncome, "100.00", "Freelance", date),
		}

		summary := Summarize(transactions, nil)

		assert.Empty(t, summary.CategoryBreakdown)
		assert.Equal(t, "600", summary.TotalIncome.String())
		assert.Equal(t, "600", summary.NetSavings.String())
	})

	t.Run("blank expense category falls back to the default", func(t *testing.T) {
		transactions := []*entity.Transaction{
			txn(t, entity.TransactionTypeExpense, "10.00", "", date),
			txn(t, entity.TransactionTypeExpense, "5.00", "   ", date),
			txn(t, entity.TransactionTypeExpense, "2.00", "General", date),
		}

		summary := Summarize(transactions, nil)

		assert.Len(t, summary.CategoryBreakdown, 1)
		assert.Equal(t, "17", summary.CategoryBreakdown[entity.DefaultCategory].String())
	})

	t.Run("window bounds are inclusive", func(t *testing.T) {
		start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
		window := &DateWindow{Start: start, End: end}

		transactions := []*entity.Transaction{
			txn(t, entity.TransactionTypeExpense, "1.00", "A", start),                     // on start
			txn(t, entity.TransactionTypeExpense, "2.00", "A", end),                       // on end
			txn(t, entity.TransactionTypeExpense, "4.00", "A", start.AddDate(0, 0, -1)),   // before
			txn(t, entity.TransactionTypeExpense, "8.00", "A", end.Add(time.Nanosecond)), // after
		}

		summary := Summarize(transactions, window)

		assert.Equal(t, 2, summary.TransactionCount)
		assert.Equal(t, "3", summary.TotalExpenses.String())
	})

	t.Run("negative net savings when expenses exceed income", func(t *testing.T) {
		transactions := []*entity.Transaction{
			txn(t, entity.TransactionTypeIncome, "100.00", "Salary", date),
			txn(t, entity.TransactionTypeExpense, "250.00", "Rent", date),
		}

		summary := Summarize(transactions, nil)

		assert.Equal(t, "-150", summary.NetSavings.String())
	})

	t.Run("order independence", func(t *testing.T) {
		forward := []*entity.Transaction{
			txn(t, entity.TransactionTypeIncome, "10.10", "Salary", date),
			txn(t, entity.TransactionTypeExpense, "3.33", "Food", date),
			txn(t, entity.TransactionTypeExpense, "6.67", "Food", date),
		}
		reversed := []*entity.Transaction{forward[2], forward[1], forward[0]}

		a := Summarize(forward, nil)
		b := Summarize(reversed, nil)

		assert.True(t, a.TotalIncome.Equal(b.TotalIncome))
		assert.True(t, a.TotalExpenses.Equal(b.TotalExpenses))
		assert.True(t, a.NetSavings.Equal(b.NetSavings))
		assert.True(t, a.CategoryBreakdown["Food"].Equal(b.CategoryBreakdown["Food"]))
	})

	t.Run("ten thousand cent records sum exactly", func(t *testing.T) {
		transactions := make([]*entity.Transaction, 0, 10000)
		for i := 0; i < 10000; i++ {
			transactions = append(transactions, txn(t, entity.TransactionTypeExpense, "0.01", "Micro", date))
		}

		summary := Summarize(transactions, nil)

		assert.Equal(t, "100", summary.TotalExpenses.String())
		assert.Equal(t, "100", summary.CategoryBreakdown["Micro"].String())
		assert.Equal(t, 10000, summary.TransactionCount)
	})
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		part  string
		whole string
		want  float64
	}{
		{name: "quarter", part: "125", whole: "500", want: 25},
		{name: "overspend past hundred", part: "750", whole: "500", want: 150},
		{name: "zero whole yields zero", part: "100", whole: "0", want: 0},
		{name: "zero part", part: "0", whole: "500", want: 0},
		{name: "rounds to two decimals", part: "1", whole: "3", want: 33.33},
		{name: "negative part stays negative", part: "-50", whole: "200", want: -25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentage(mustDecimal(t, tt.part), mustDecimal(t, tt.whole))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(time.Date(2025, time.February, 14, 9, 30, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.February, 28, 23, 59, 59, 999999999, time.UTC), end)

	// Leap year February.
	_, leapEnd := MonthBounds(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 29, leapEnd.Day())
}
