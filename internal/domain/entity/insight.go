// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Insight is an AI-generated natural-language summary of a user's spending
// for a calendar month.
type Insight struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Period     string // "YYYY-MM"
	Summary    string
	Highlights []string
	Model      string
	CreatedAt  time.Time
}

// NewInsight creates a new Insight entity.
func NewInsight(userID uuid.UUID, period, summary string, highlights []string, model string) *Insight {
	return &Insight{
		ID:         uuid.New(),
		UserID:     userID,
		Period:     period,
		Summary:    summary,
		Highlights: highlights,
		Model:      model,
		CreatedAt:  time.Now().UTC(),
	}
}
