// Package goal contains savings goal related use cases.
package goal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// ContributeToGoalInput represents the input for a goal contribution.
type ContributeToGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
	Amount decimal.Decimal
}

// ContributeToGoalOutput represents the output of a goal contribution.
type ContributeToGoalOutput struct {
	Goal          *entity.Goal
	JustCompleted bool
}

// ContributeToGoalUseCase handles goal contribution logic.
type ContributeToGoalUseCase struct {
	goalRepo     adapter.GoalRepository
	userRepo     adapter.UserRepository
	emailService adapter.EmailService
}

// NewContributeToGoalUseCase creates a new ContributeToGoalUseCase instance.
func NewContributeToGoalUseCase(
	goalRepo adapter.GoalRepository,
	userRepo adapter.UserRepository,
	emailService adapter.EmailService,
) *ContributeToGoalUseCase {
	return &ContributeToGoalUseCase{
		goalRepo:     goalRepo,
		userRepo:     userRepo,
		emailService: emailService,
	}
}

// Execute adds the contribution to the goal's saved amount. Crossing the
// target marks the goal completed and queues a notification email once.
func (uc *ContributeToGoalUseCase) Execute(ctx context.Context, input ContributeToGoalInput) (*ContributeToGoalOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidContribution,
			"contribution amount must be greater than zero",
			domainerror.ErrInvalidContribution,
		)
	}

	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	if goal.UserID != input.UserID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	wasCompleted := goal.Completed
	goal.Contribute(input.Amount)

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	justCompleted := goal.Completed && !wasCompleted
	if justCompleted {
		uc.notifyCompletion(ctx, goal)
	}

	return &ContributeToGoalOutput{
		Goal:          goal,
		JustCompleted: justCompleted,
	}, nil
}

// notifyCompletion queues the goal-completed email. Failures are logged and
// never fail the contribution.
func (uc *ContributeToGoalUseCase) notifyCompletion(ctx context.Context, goal *entity.Goal) {
	if uc.emailService == nil {
		return
	}

	user, err := uc.userRepo.FindByID(ctx, goal.UserID)
	if err != nil {
		slog.Error("Failed to load user for goal completion email", "error", err, "goalID", goal.ID)
		return
	}

	err = uc.emailService.QueueGoalCompletedEmail(ctx, adapter.QueueGoalCompletedInput{
		UserEmail:    user.Email,
		UserName:     user.Name,
		GoalName:     goal.Name,
		TargetAmount: goal.TargetAmount.StringFixed(2),
	})
	if err != nil {
		slog.Error("Failed to queue goal completion email", "error", err, "goalID", goal.ID)
		return
	}

	slog.Info("Goal completion email queued", "goalID", goal.ID, "userID", goal.UserID)
}
