// Package user contains user profile and admin use cases.
package user

import (
	"context"
	"fmt"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

const (
	// DefaultUserPageLimit is applied when no limit is requested.
	DefaultUserPageLimit = 20
	// MaxUserPageLimit caps the page size for the admin user listing.
	MaxUserPageLimit = 100
)

// ListUsersInput represents the input for the admin user listing.
type ListUsersInput struct {
	Page  int
	Limit int
}

// ListUsersOutput represents the output of the admin user listing.
type ListUsersOutput struct {
	Users      []*entity.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ListUsersUseCase handles the admin user listing.
type ListUsersUseCase struct {
	userRepo adapter.UserRepository
}

// NewListUsersUseCase creates a new ListUsersUseCase instance.
func NewListUsersUseCase(userRepo adapter.UserRepository) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
	}
}

// Execute lists users with pagination. Admin enforcement happens in the
// middleware layer before this runs.
func (uc *ListUsersUseCase) Execute(ctx context.Context, input ListUsersInput) (*ListUsersOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = DefaultUserPageLimit
	}
	if limit > MaxUserPageLimit {
		limit = MaxUserPageLimit
	}

	result, err := uc.userRepo.FindAll(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return &ListUsersOutput{
		Users:      result.Users,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}, nil
}
