// Package user contains user profile and admin use cases.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// supportedCurrencies lists the ISO 4217 codes the frontend can render.
var supportedCurrencies = map[string]bool{
	"USD": true, "EUR": true, "GBP": true, "BRL": true,
	"CAD": true, "AUD": true, "JPY": true, "CHF": true,
	"INR": true, "MXN": true,
}

// UpdateProfileInput represents the input for profile update.
// Nil pointer fields are left unchanged.
type UpdateProfileInput struct {
	UserID   uuid.UUID
	Name     *string
	Currency *string
}

// UpdateProfileOutput represents the output of profile update.
type UpdateProfileOutput struct {
	User *entity.User
}

// UpdateProfileUseCase handles profile update logic.
type UpdateProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
	}
}

// Execute performs a partial profile update.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	if input.Name != nil && *input.Name != "" {
		user.Name = *input.Name
	}
	if input.Currency != nil {
		if !supportedCurrencies[*input.Currency] {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeInvalidCurrency,
				fmt.Sprintf("currency %q is not supported", *input.Currency),
				domainerror.ErrInvalidCurrency,
			)
		}
		user.Currency = *input.Currency
	}
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user profile: %w", err)
	}

	return &UpdateProfileOutput{User: user}, nil
}
