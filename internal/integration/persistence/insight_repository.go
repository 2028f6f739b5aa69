// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

// insightRepository implements the adapter.InsightRepository interface.
type insightRepository struct {
	db *gorm.DB
}

// NewInsightRepository creates a new insight repository instance.
func NewInsightRepository(db *gorm.DB) adapter.InsightRepository {
	return &insightRepository{
		db: db,
	}
}

// Create stores a generated insight.
func (r *insightRepository) Create(ctx context.Context, insight *entity.Insight) error {
	insightModel := model.InsightFromEntity(insight)
	result := r.db.WithContext(ctx).Create(insightModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUser retrieves all insights for a user, newest first.
func (r *insightRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Insight, error) {
	var insightModels []model.InsightModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("period DESC").
		Find(&insightModels)
	if result.Error != nil {
		return nil, result.Error
	}

	insights := make([]*entity.Insight, len(insightModels))
	for i, im := range insightModels {
		insights[i] = im.ToEntity()
	}
	return insights, nil
}

// FindByUserAndPeriod retrieves the insight for a user and period, or nil when
// none has been generated yet.
func (r *insightRepository) FindByUserAndPeriod(ctx context.Context, userID uuid.UUID, period string) (*entity.Insight, error) {
	var insightModel model.InsightModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND period = ?", userID, period).
		First(&insightModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return insightModel.ToEntity(), nil
}
