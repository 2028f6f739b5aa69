// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=100"`
	TargetAmount string `json:"target_amount" binding:"required"`
	Deadline     string `json:"deadline" binding:"required"`
	Category     string `json:"category,omitempty" binding:"omitempty,max=100"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	TargetAmount *string `json:"target_amount,omitempty"`
	Deadline     *string `json:"deadline,omitempty"`
	Category     *string `json:"category,omitempty" binding:"omitempty,max=100"`
}

// ContributeToGoalRequest represents the request body for a goal contribution.
type ContributeToGoalRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	TargetAmount string    `json:"target_amount"`
	SavedAmount  string    `json:"saved_amount"`
	Deadline     string    `json:"deadline"`
	Category     string    `json:"category"`
	Completed    bool      `json:"completed"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(goal *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:           goal.ID.String(),
		UserID:       goal.UserID.String(),
		Name:         goal.Name,
		TargetAmount: goal.TargetAmount.String(),
		SavedAmount:  goal.SavedAmount.String(),
		Deadline:     goal.Deadline.Format("2006-01-02"),
		Category:     goal.Category,
		Completed:    goal.Completed,
		CreatedAt:    goal.CreatedAt,
		UpdatedAt:    goal.UpdatedAt,
	}
}
