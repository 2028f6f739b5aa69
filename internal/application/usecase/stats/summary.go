// Package stats contains the financial statistics aggregation engine.
//
// Every function in this package that operates on in-memory records is a pure
// function of its input: no side effects, no ambient state, deterministic
// output. Monetary values use decimal arithmetic throughout so that repeated
// summation never accumulates binary floating-point drift.
package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// DateWindow is an inclusive [Start, End] date filter.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window, bounds inclusive.
func (w DateWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Summary holds the aggregate figures for a set of transactions.
type Summary struct {
	TotalIncome       decimal.Decimal
	TotalExpenses     decimal.Decimal
	NetSavings        decimal.Decimal
	CategoryBreakdown map[string]decimal.Decimal // expenses only
	TransactionCount  int
}

// Summarize computes aggregate figures over a transaction set. When window is
// non-nil only transactions whose date falls inside it (bounds inclusive) are
// considered. An empty input yields all-zero totals and an empty breakdown.
//
// The category breakdown covers expenses only; a blank category is normalized
// to entity.DefaultCategory. Income and expense order in the input is
// irrelevant: the result is a pure function of the considered set.
func Summarize(transactions []*entity.Transaction, window *DateWindow) Summary {
	summary := Summary{
		TotalIncome:       decimal.Zero,
		TotalExpenses:     decimal.Zero,
		NetSavings:        decimal.Zero,
		CategoryBreakdown: make(map[string]decimal.Decimal),
	}

	for _, txn := range transactions {
		if window != nil && !window.Contains(txn.Date) {
			continue
		}

		summary.TransactionCount++

		switch txn.Type {
		case entity.TransactionTypeIncome:
			summary.TotalIncome = summary.TotalIncome.Add(txn.Amount)
		case entity.TransactionTypeExpense:
			summary.TotalExpenses = summary.TotalExpenses.Add(txn.Amount)
			category := entity.NormalizeCategory(txn.Category)
			summary.CategoryBreakdown[category] = summary.CategoryBreakdown[category].Add(txn.Amount)
		}
	}

	summary.NetSavings = summary.TotalIncome.Sub(summary.TotalExpenses)
	return summary
}

// Percentage computes part/whole*100 as a float64 rounded to two decimals.
// It returns 0 when whole is zero, never NaN or Inf.
func Percentage(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	pct, _ := part.Mul(decimal.NewFromInt(100)).Div(whole).Round(2).Float64()
	return pct
}
