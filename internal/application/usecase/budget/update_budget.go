// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for budget update.
// Nil pointer fields are left unchanged.
type UpdateBudgetInput struct {
	UserID   uuid.UUID
	BudgetID uuid.UUID
	Category *string
	Amount   *decimal.Decimal
	Color    *string
	Active   *bool
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs a partial budget update, preserving the one-active-budget
// per-category rule when the category changes or the budget is reactivated.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}

	if budget.UserID != input.UserID {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}

	newCategory := budget.Category
	if input.Category != nil {
		newCategory = entity.NormalizeCategory(*input.Category)
	}
	newActive := budget.Active
	if input.Active != nil {
		newActive = *input.Active
	}

	// Re-check uniqueness if this update could collide with another active budget.
	if newActive && (newCategory != budget.Category || !budget.Active) {
		exists, err := uc.budgetRepo.ExistsActiveByUserAndCategory(ctx, input.UserID, newCategory)
		if err != nil {
			return nil, fmt.Errorf("failed to check budget existence: %w", err)
		}
		if exists {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetAlreadyExists,
				fmt.Sprintf("an active budget already exists for category %q", newCategory),
				domainerror.ErrBudgetAlreadyExists,
			)
		}
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetAmount,
				"budget amount must be greater than zero",
				domainerror.ErrInvalidBudgetAmount,
			)
		}
		budget.Amount = *input.Amount
	}
	if input.Color != nil && *input.Color != "" {
		budget.Color = *input.Color
	}
	budget.Category = newCategory
	budget.Active = newActive
	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return &UpdateBudgetOutput{Budget: budget}, nil
}
