// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budgetwise/backend/internal/application/usecase/stats"
)

// TransactionStatsResponse represents the aggregate transaction summary.
type TransactionStatsResponse struct {
	TotalIncome       string            `json:"total_income"`
	TotalExpenses     string            `json:"total_expenses"`
	NetSavings        string            `json:"net_savings"`
	CategoryBreakdown map[string]string `json:"category_breakdown"`
	TransactionCount  int               `json:"transaction_count"`
}

// BudgetProgressResponse pairs a budget with its current-month spending.
type BudgetProgressResponse struct {
	Budget     BudgetResponse `json:"budget"`
	Spent      string         `json:"spent"`
	Remaining  string         `json:"remaining"`
	Percentage float64        `json:"percentage"`
}

// BudgetTotalsResponse represents aggregate budget figures.
type BudgetTotalsResponse struct {
	TotalBudget    string `json:"total_budget"`
	TotalSpent     string `json:"total_spent"`
	TotalRemaining string `json:"total_remaining"`
	BudgetCount    int    `json:"budget_count"`
}

// BudgetStatsResponse represents the budget progress overview.
type BudgetStatsResponse struct {
	Budgets []BudgetProgressResponse `json:"budgets"`
	Totals  BudgetTotalsResponse     `json:"totals"`
}

// GoalProgressResponse pairs a goal with its live progress figures.
type GoalProgressResponse struct {
	Goal      GoalResponse `json:"goal"`
	Progress  float64      `json:"progress"`
	Remaining string       `json:"remaining"`
	Status    string       `json:"status"`
}

// GoalTotalsResponse represents aggregate goal figures.
type GoalTotalsResponse struct {
	TotalTarget    string  `json:"total_target"`
	TotalSaved     string  `json:"total_saved"`
	CompletionRate float64 `json:"completion_rate"`
	CompletedGoals int     `json:"completed_goals"`
	ActiveGoals    int     `json:"active_goals"`
}

// GoalStatsResponse represents the goal progress overview.
type GoalStatsResponse struct {
	Goals  []GoalProgressResponse `json:"goals"`
	Totals GoalTotalsResponse     `json:"totals"`
}

// MonthPointResponse represents one calendar month in the monthly series.
type MonthPointResponse struct {
	Month       string  `json:"month"`
	Label       string  `json:"label"`
	Income      string  `json:"income"`
	Expenses    string  `json:"expenses"`
	Savings     string  `json:"savings"`
	SavingsRate float64 `json:"savings_rate"`
}

// MonthlySeriesResponse represents the monthly income/expense series.
type MonthlySeriesResponse struct {
	Series []MonthPointResponse `json:"series"`
}

// ToTransactionStatsResponse converts a stats Summary to its DTO.
func ToTransactionStatsResponse(summary stats.Summary) TransactionStatsResponse {
	breakdown := make(map[string]string, len(summary.CategoryBreakdown))
	for category, total := range summary.CategoryBreakdown {
		breakdown[category] = total.String()
	}

	return TransactionStatsResponse{
		TotalIncome:       summary.TotalIncome.String(),
		TotalExpenses:     summary.TotalExpenses.String(),
		NetSavings:        summary.NetSavings.String(),
		CategoryBreakdown: breakdown,
		TransactionCount:  summary.TransactionCount,
	}
}

// ToBudgetStatsResponse converts a GetBudgetStatsOutput to its DTO.
func ToBudgetStatsResponse(output *stats.GetBudgetStatsOutput) BudgetStatsResponse {
	budgets := make([]BudgetProgressResponse, len(output.Budgets))
	for i, bp := range output.Budgets {
		budgets[i] = BudgetProgressResponse{
			Budget:     ToBudgetResponse(bp.Budget),
			Spent:      bp.Spent.String(),
			Remaining:  bp.Remaining.String(),
			Percentage: bp.Percentage,
		}
	}

	return BudgetStatsResponse{
		Budgets: budgets,
		Totals: BudgetTotalsResponse{
			TotalBudget:    output.Totals.TotalBudget.String(),
			TotalSpent:     output.Totals.TotalSpent.String(),
			TotalRemaining: output.Totals.TotalRemaining.String(),
			BudgetCount:    output.Totals.BudgetCount,
		},
	}
}

// ToGoalStatsResponse converts a GetGoalStatsOutput to its DTO.
func ToGoalStatsResponse(output *stats.GetGoalStatsOutput) GoalStatsResponse {
	goals := make([]GoalProgressResponse, len(output.Goals))
	for i, gp := range output.Goals {
		goals[i] = GoalProgressResponse{
			Goal:      ToGoalResponse(gp.Goal),
			Progress:  gp.Progress.Progress,
			Remaining: gp.Progress.Remaining.String(),
			Status:    string(gp.Progress.Status),
		}
	}

	return GoalStatsResponse{
		Goals: goals,
		Totals: GoalTotalsResponse{
			TotalTarget:    output.Totals.TotalTarget.String(),
			TotalSaved:     output.Totals.TotalSaved.String(),
			CompletionRate: output.Totals.CompletionRate,
			CompletedGoals: output.Totals.CompletedGoals,
			ActiveGoals:    output.Totals.ActiveGoals,
		},
	}
}

// ToMonthlySeriesResponse converts a GetMonthlySeriesOutput to its DTO.
func ToMonthlySeriesResponse(output *stats.GetMonthlySeriesOutput) MonthlySeriesResponse {
	series := make([]MonthPointResponse, len(output.Series))
	for i, point := range output.Series {
		series[i] = MonthPointResponse{
			Month:       point.Month,
			Label:       point.Label,
			Income:      point.Income.String(),
			Expenses:    point.Expenses.String(),
			Savings:     point.Savings.String(),
			SavingsRate: point.SavingsRate,
		}
	}

	return MonthlySeriesResponse{Series: series}
}
