// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// InsightModel represents the insights table in the database.
type InsightModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index:idx_insights_user_period,unique"`
	Period     string         `gorm:"type:varchar(7);not null;index:idx_insights_user_period,unique"`
	Summary    string         `gorm:"type:text;not null"`
	Highlights pq.StringArray `gorm:"type:text[]"`
	Model      string         `gorm:"type:varchar(100);not null"`
	CreatedAt  time.Time      `gorm:"not null"`
}

// TableName returns the table name for the InsightModel.
func (InsightModel) TableName() string {
	return "insights"
}

// ToEntity converts an InsightModel to a domain Insight entity.
func (m *InsightModel) ToEntity() *entity.Insight {
	return &entity.Insight{
		ID:         m.ID,
		UserID:     m.UserID,
		Period:     m.Period,
		Summary:    m.Summary,
		Highlights: []string(m.Highlights),
		Model:      m.Model,
		CreatedAt:  m.CreatedAt,
	}
}

// InsightFromEntity creates an InsightModel from a domain Insight entity.
func InsightFromEntity(insight *entity.Insight) *InsightModel {
	return &InsightModel{
		ID:         insight.ID,
		UserID:     insight.UserID,
		Period:     insight.Period,
		Summary:    insight.Summary,
		Highlights: pq.StringArray(insight.Highlights),
		Model:      insight.Model,
		CreatedAt:  insight.CreatedAt,
	}
}
