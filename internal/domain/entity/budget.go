// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultBudgetColor is used when a budget is created without a color.
const DefaultBudgetColor = "#6B7280"

// Budget represents a monthly spending limit for a category.
// At most one active budget exists per owner and category.
type Budget struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Category  string
	Amount    decimal.Decimal // Always > 0, validated at creation.
	Color     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewBudget creates a new Budget entity.
func NewBudget(userID uuid.UUID, category string, amount decimal.Decimal, color string) *Budget {
	now := time.Now().UTC()
	if color == "" {
		color = DefaultBudgetColor
	}

	return &Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  NormalizeCategory(category),
		Amount:    amount,
		Color:     color,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
