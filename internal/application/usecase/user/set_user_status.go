// Package user contains user profile and admin use cases.
package user

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// SetUserStatusInput represents the input for activating or deactivating a user.
type SetUserStatusInput struct {
	AdminID      uuid.UUID
	TargetUserID uuid.UUID
	IsActive     bool
}

// SetUserStatusOutput represents the output of the status change.
type SetUserStatusOutput struct {
	User *entity.User
}

// SetUserStatusUseCase handles the admin activate/deactivate operation.
type SetUserStatusUseCase struct {
	userRepo     adapter.UserRepository
	tokenService adapter.TokenService
}

// NewSetUserStatusUseCase creates a new SetUserStatusUseCase instance.
func NewSetUserStatusUseCase(
	userRepo adapter.UserRepository,
	tokenService adapter.TokenService,
) *SetUserStatusUseCase {
	return &SetUserStatusUseCase{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Execute changes a user's active flag. Admins cannot deactivate themselves,
// so the system can never be left without a working admin session.
func (uc *SetUserStatusUseCase) Execute(ctx context.Context, input SetUserStatusInput) (*SetUserStatusOutput, error) {
	if !input.IsActive && input.AdminID == input.TargetUserID {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeCannotDeactivateSelf,
			"cannot deactivate own account",
			domainerror.ErrCannotDeactivateSelf,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.TargetUserID)
	if err != nil {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	user.IsActive = input.IsActive
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user status: %w", err)
	}

	// Deactivation kills existing sessions immediately.
	if !input.IsActive {
		if err := uc.tokenService.InvalidateAllUserTokens(ctx, user.ID); err != nil {
			slog.Error("Failed to revoke sessions for deactivated user", "error", err, "userID", user.ID)
		}
	}

	return &SetUserStatusOutput{User: user}, nil
}
