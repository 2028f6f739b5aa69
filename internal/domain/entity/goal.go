// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal represents a savings goal with a target amount and a deadline.
type Goal struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	TargetAmount decimal.Decimal // Always > 0, validated at creation.
	SavedAmount  decimal.Decimal // Only ever increases via Contribute.
	Deadline     time.Time
	Category     string
	Completed    bool // Monotonic: never reverts to false once set.
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft-delete support
}

// NewGoal creates a new Goal entity with zero saved amount.
func NewGoal(userID uuid.UUID, name string, targetAmount decimal.Decimal, deadline time.Time, category string) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         name,
		TargetAmount: targetAmount,
		SavedAmount:  decimal.Zero,
		Deadline:     deadline,
		Category:     NormalizeCategory(category),
		Completed:    false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Contribute adds a positive amount to the saved total and marks the goal
// completed once the target is reached. Completion never reverts.
func (g *Goal) Contribute(amount decimal.Decimal) {
	g.SavedAmount = g.SavedAmount.Add(amount)
	if g.SavedAmount.GreaterThanOrEqual(g.TargetAmount) {
		g.Completed = true
	}
	g.UpdatedAt = time.Now().UTC()
}
