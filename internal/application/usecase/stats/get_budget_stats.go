// Package stats contains the financial statistics aggregation engine.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// GetBudgetStatsInput represents the input for the budget stats query.
type GetBudgetStatsInput struct {
	UserID uuid.UUID
}

// BudgetProgress pairs a budget with its current-month spending figures.
// Percentage is unclamped; values above 100 indicate overspend.
type BudgetProgress struct {
	Budget     *entity.Budget
	Spent      decimal.Decimal
	Remaining  decimal.Decimal
	Percentage float64
}

// BudgetTotals holds aggregate figures across all active budgets.
// TotalSpent covers ALL current-month expenses, not only budgeted categories.
type BudgetTotals struct {
	TotalBudget    decimal.Decimal
	TotalSpent     decimal.Decimal
	TotalRemaining decimal.Decimal
	BudgetCount    int
}

// GetBudgetStatsOutput represents the output of the budget stats query.
type GetBudgetStatsOutput struct {
	Budgets []BudgetProgress
	Totals  BudgetTotals
	Window  DateWindow
}

// GetBudgetStatsUseCase pairs each active budget with the owner's
// current-month expense total for the same category.
type GetBudgetStatsUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
	now             func() time.Time
}

// NewGetBudgetStatsUseCase creates a new GetBudgetStatsUseCase instance.
func NewGetBudgetStatsUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
) *GetBudgetStatsUseCase {
	return &GetBudgetStatsUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Used by tests to pin the month window.
func (uc *GetBudgetStatsUseCase) WithClock(now func() time.Time) *GetBudgetStatsUseCase {
	uc.now = now
	return uc
}

// Execute computes per-budget and aggregate progress for the current calendar month.
func (uc *GetBudgetStatsUseCase) Execute(ctx context.Context, input GetBudgetStatsInput) (*GetBudgetStatsOutput, error) {
	window := CurrentMonthWindow(uc.now())

	budgets, err := uc.budgetRepo.FindActiveByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active budgets: %w", err)
	}

	output := &GetBudgetStatsOutput{
		Budgets: make([]BudgetProgress, 0, len(budgets)),
		Totals: BudgetTotals{
			TotalBudget:    decimal.Zero,
			TotalSpent:     decimal.Zero,
			TotalRemaining: decimal.Zero,
			BudgetCount:    len(budgets),
		},
		Window: window,
	}

	for _, budget := range budgets {
		spent, err := uc.transactionRepo.SumExpensesByCategory(
			ctx, input.UserID, budget.Category, window.Start, window.End,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to sum expenses for category %q: %w", budget.Category, err)
		}

		output.Budgets = append(output.Budgets, BudgetProgress{
			Budget:     budget,
			Spent:      spent,
			Remaining:  budget.Amount.Sub(spent),
			Percentage: Percentage(spent, budget.Amount),
		})
		output.Totals.TotalBudget = output.Totals.TotalBudget.Add(budget.Amount)
	}

	totalSpent, err := uc.transactionRepo.SumExpenses(ctx, input.UserID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to sum current-month expenses: %w", err)
	}

	output.Totals.TotalSpent = totalSpent
	output.Totals.TotalRemaining = output.Totals.TotalBudget.Sub(totalSpent)
	return output, nil
}
