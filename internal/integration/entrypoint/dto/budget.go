// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Category string `json:"category" binding:"required,max=100"`
	Amount   string `json:"amount" binding:"required"`
	Color    string `json:"color,omitempty" binding:"omitempty,len=7"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Category *string `json:"category,omitempty" binding:"omitempty,max=100"`
	Amount   *string `json:"amount,omitempty"`
	Color    *string `json:"color,omitempty" binding:"omitempty,len=7"`
	Active   *bool   `json:"active,omitempty"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Category  string    `json:"category"`
	Amount    string    `json:"amount"`
	Color     string    `json:"color"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:        budget.ID.String(),
		UserID:    budget.UserID.String(),
		Category:  budget.Category,
		Amount:    budget.Amount.String(),
		Color:     budget.Color,
		Active:    budget.Active,
		CreatedAt: budget.CreatedAt,
		UpdatedAt: budget.UpdatedAt,
	}
}
