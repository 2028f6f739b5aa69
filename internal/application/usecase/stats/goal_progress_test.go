package stats

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/budgetwise/backend/internal/domain/entity"
)

func goal(t *testing.T, target, saved string, deadline time.Time, completed bool) *entity.Goal {
	t.Helper()
	return &entity.Goal{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Name:         "goal",
		TargetAmount: mustDecimal(t, target),
		SavedAmount:  mustDecimal(t, saved),
		Deadline:     deadline,
		Completed:    completed,
	}
}

func TestComputeGoalProgress(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 3, 0)
	past := now.AddDate(0, -1, 0)

	t.Run("partially funded goal is in progress", func(t *testing.T) {
		progress := ComputeGoalProgress(goal(t, "1000", "250", future, false), now)

		assert.Equal(t, 25.0, progress.Progress)
		assert.Equal(t, "750", progress.Remaining.String())
		assert.Equal(t, GoalStatusInProgress, progress.Status)
	})

	t.Run("overfunded goal is completed with unclamped progress", func(t *testing.T) {
		progress := ComputeGoalProgress(goal(t, "1000", "1050", future, true), now)

		assert.Equal(t, 105.0, progress.Progress)
		assert.Equal(t, "-50", progress.Remaining.String())
		assert.Equal(t, GoalStatusCompleted, progress.Status)
	})

	t.Run("exactly funded goal is completed", func(t *testing.T) {
		progress := ComputeGoalProgress(goal(t, "500", "500", future, false), now)

		assert.Equal(t, 100.0, progress.Progress)
		assert.True(t, progress.Remaining.IsZero())
		assert.Equal(t, GoalStatusCompleted, progress.Status)
	})

	t.Run("past deadline without funding is overdue", func(t *testing.T) {
		progress := ComputeGoalProgress(goal(t, "1000", "100", past, false), now)

		assert.Equal(t, GoalStatusOverdue, progress.Status)
	})

	t.Run("completed beats overdue", func(t *testing.T) {
		progress := ComputeGoalProgress(goal(t, "1000", "1000", past, true), now)

		assert.Equal(t, GoalStatusCompleted, progress.Status)
	})

	t.Run("completed flag alone wins even below target", func(t *testing.T) {
		// Completion is monotonic; a lowered saved amount must not revert it.
		progress := ComputeGoalProgress(goal(t, "1000", "900", past, true), now)

		assert.Equal(t, GoalStatusCompleted, progress.Status)
	})

	t.Run("deadline today is not overdue", func(t *testing.T) {
		progress := ComputeGoalProgress(goal(t, "1000", "100", now, false), now)

		assert.Equal(t, GoalStatusInProgress, progress.Status)
	})
}

func TestAggregateGoals(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	future := now.AddDate(1, 0, 0)

	t.Run("empty set yields zero totals and zero completion rate", func(t *testing.T) {
		totals := AggregateGoals(nil)

		assert.True(t, totals.TotalTarget.IsZero())
		assert.True(t, totals.TotalSaved.IsZero())
		assert.Equal(t, 0.0, totals.CompletionRate)
		assert.Equal(t, 0, totals.CompletedGoals)
		assert.Equal(t, 0, totals.ActiveGoals)
	})

	t.Run("sums include completed goals", func(t *testing.T) {
		goals := []*entity.Goal{
			goal(t, "1000", "1000", future, true),
			goal(t, "2000", "500", future, false),
			goal(t, "1000", "0", future, false),
		}

		totals := AggregateGoals(goals)

		assert.Equal(t, "4000", totals.TotalTarget.String())
		assert.Equal(t, "1500", totals.TotalSaved.String())
		assert.Equal(t, 37.5, totals.CompletionRate)
		assert.Equal(t, 1, totals.CompletedGoals)
		assert.Equal(t, 2, totals.ActiveGoals)
	})
}

func TestGoalContributeMonotonicCompletion(t *testing.T) {
	g := entity.NewGoal(uuid.New(), "Emergency fund", decimal.NewFromInt(1000), time.Now().AddDate(1, 0, 0), "Savings")

	g.Contribute(decimal.NewFromInt(250))
	assert.False(t, g.Completed)
	assert.Equal(t, "250", g.SavedAmount.String())

	g.Contribute(decimal.NewFromInt(800))
	assert.True(t, g.Completed)
	assert.Equal(t, "1050", g.SavedAmount.String())

	progress := ComputeGoalProgress(g, time.Now())
	assert.Equal(t, 105.0, progress.Progress)
	assert.Equal(t, GoalStatusCompleted, progress.Status)
}
