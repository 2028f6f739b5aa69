// Package stats contains the financial statistics aggregation engine.
package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// GoalStatus classifies a goal's current state.
type GoalStatus string

const (
	GoalStatusCompleted  GoalStatus = "completed"
	GoalStatusOverdue    GoalStatus = "overdue"
	GoalStatusInProgress GoalStatus = "inProgress"
)

// GoalProgress holds the derived progress figures for a single goal.
// Progress is unclamped: overfunded goals exceed 100 and Remaining goes
// negative. Display-side clamping must never leak into these values.
type GoalProgress struct {
	Progress  float64
	Remaining decimal.Decimal
	Status    GoalStatus
}

// GoalTotals holds aggregate figures across all of a user's goals.
type GoalTotals struct {
	TotalTarget    decimal.Decimal
	TotalSaved     decimal.Decimal
	CompletionRate float64 // 0 when TotalTarget is zero
	CompletedGoals int
	ActiveGoals    int
}

// ComputeGoalProgress derives progress, remaining amount and status for a goal.
// Status priority: completed beats overdue beats in-progress, so a goal funded
// after its deadline still reads as completed.
func ComputeGoalProgress(goal *entity.Goal, now time.Time) GoalProgress {
	progress := Percentage(goal.SavedAmount, goal.TargetAmount)
	remaining := goal.TargetAmount.Sub(goal.SavedAmount)

	status := GoalStatusInProgress
	switch {
	case goal.Completed || goal.SavedAmount.GreaterThanOrEqual(goal.TargetAmount):
		status = GoalStatusCompleted
	case goal.Deadline.Before(now):
		status = GoalStatusOverdue
	}

	return GoalProgress{
		Progress:  progress,
		Remaining: remaining,
		Status:    status,
	}
}

// AggregateGoals computes totals across a goal set. Sums include completed
// goals; the completion rate guards the one denominator that can legitimately
// be zero (no goals yet) by returning 0 instead of NaN.
func AggregateGoals(goals []*entity.Goal) GoalTotals {
	totals := GoalTotals{
		TotalTarget: decimal.Zero,
		TotalSaved:  decimal.Zero,
	}

	for _, goal := range goals {
		totals.TotalTarget = totals.TotalTarget.Add(goal.TargetAmount)
		totals.TotalSaved = totals.TotalSaved.Add(goal.SavedAmount)
		if goal.Completed {
			totals.CompletedGoals++
		} else {
			totals.ActiveGoals++
		}
	}

	totals.CompletionRate = Percentage(totals.TotalSaved, totals.TotalTarget)
	return totals
}
