// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// InsightRepository defines the interface for insight persistence operations.
type InsightRepository interface {
	// Create stores a generated insight.
	Create(ctx context.Context, insight *entity.Insight) error

	// FindByUser retrieves all insights for a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Insight, error)

	// FindByUserAndPeriod retrieves the insight for a user and YYYY-MM period,
	// or nil when none has been generated yet.
	FindByUserAndPeriod(ctx context.Context, userID uuid.UUID, period string) (*entity.Insight, error)
}
