// Package stats contains the financial statistics aggregation engine.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// GetGoalStatsInput represents the input for the goal stats query.
type GetGoalStatsInput struct {
	UserID uuid.UUID
}

// GoalWithProgress pairs a goal with its live progress figures.
type GoalWithProgress struct {
	Goal     *entity.Goal
	Progress GoalProgress
}

// GetGoalStatsOutput represents the output of the goal stats query.
type GetGoalStatsOutput struct {
	Goals  []GoalWithProgress
	Totals GoalTotals
}

// GetGoalStatsUseCase computes live progress and aggregate totals for a
// user's goals.
type GetGoalStatsUseCase struct {
	goalRepo adapter.GoalRepository
	now      func() time.Time
}

// NewGetGoalStatsUseCase creates a new GetGoalStatsUseCase instance.
func NewGetGoalStatsUseCase(goalRepo adapter.GoalRepository) *GetGoalStatsUseCase {
	return &GetGoalStatsUseCase{
		goalRepo: goalRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Used by tests to pin overdue checks.
func (uc *GetGoalStatsUseCase) WithClock(now func() time.Time) *GetGoalStatsUseCase {
	uc.now = now
	return uc
}

// Execute fetches the user's goals and derives progress for each.
func (uc *GetGoalStatsUseCase) Execute(ctx context.Context, input GetGoalStatsInput) (*GetGoalStatsOutput, error) {
	goals, err := uc.goalRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch goals: %w", err)
	}

	now := uc.now()
	output := &GetGoalStatsOutput{
		Goals:  make([]GoalWithProgress, 0, len(goals)),
		Totals: AggregateGoals(goals),
	}

	for _, goal := range goals {
		output.Goals = append(output.Goals, GoalWithProgress{
			Goal:     goal,
			Progress: ComputeGoalProgress(goal, now),
		})
	}

	return output, nil
}
