// Package stats contains the financial statistics aggregation engine.
package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// Supported lookback windows for the monthly series, in months.
var supportedLookbacks = map[int]bool{3: true, 6: true, 12: true, 24: true}

// MonthPoint is one calendar-month bucket of the time series.
type MonthPoint struct {
	Month       string // "YYYY-MM"
	Label       string // e.g. "Mar 2025"
	Income      decimal.Decimal
	Expenses    decimal.Decimal
	Savings     decimal.Decimal
	SavingsRate float64 // (income-expenses)/income*100 when income > 0, else 0
}

// ValidateLookback checks that months is one of the supported windows.
func ValidateLookback(months int) error {
	if !supportedLookbacks[months] {
		return domainerror.NewStatsError(
			domainerror.ErrCodeInvalidLookback,
			"lookback must be 3, 6, 12 or 24 months",
			domainerror.ErrInvalidLookback,
		)
	}
	return nil
}

// BuildMonthlySeries buckets transactions into calendar months over the
// lookback window ending at now. The series is chronological, gap-free (empty
// months appear with zero values) and always has exactly `months` points, the
// last being the month containing now.
//
// Purely a function of its input: no stored cursor, idempotent across calls.
func BuildMonthlySeries(transactions []*entity.Transaction, months int, now time.Time) []MonthPoint {
	type bucket struct {
		income   decimal.Decimal
		expenses decimal.Decimal
	}

	firstMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(months - 1), 0)
	_, end := MonthBounds(now)
	window := DateWindow{Start: firstMonth, End: end}

	buckets := make(map[string]*bucket, months)
	for _, txn := range transactions {
		if !window.Contains(txn.Date) {
			continue
		}
		key := MonthKey(txn.Date)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{income: decimal.Zero, expenses: decimal.Zero}
			buckets[key] = b
		}
		switch txn.Type {
		case entity.TransactionTypeIncome:
			b.income = b.income.Add(txn.Amount)
		case entity.TransactionTypeExpense:
			b.expenses = b.expenses.Add(txn.Amount)
		}
	}

	series := make([]MonthPoint, 0, months)
	for current := firstMonth; len(series) < months; current = current.AddDate(0, 1, 0) {
		point := MonthPoint{
			Month:    MonthKey(current),
			Label:    MonthLabel(current),
			Income:   decimal.Zero,
			Expenses: decimal.Zero,
		}
		if b, ok := buckets[point.Month]; ok {
			point.Income = b.income
			point.Expenses = b.expenses
		}
		point.Savings = point.Income.Sub(point.Expenses)
		if point.Income.IsPositive() {
			point.SavingsRate = Percentage(point.Savings, point.Income)
		}
		series = append(series, point)
	}

	return series
}
