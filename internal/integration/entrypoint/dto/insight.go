// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// GenerateInsightRequest represents the request body for insight generation.
type GenerateInsightRequest struct {
	Period string `json:"period,omitempty"`
}

// InsightResponse represents a single insight in API responses.
type InsightResponse struct {
	ID         string    `json:"id"`
	Period     string    `json:"period"`
	Summary    string    `json:"summary"`
	Highlights []string  `json:"highlights"`
	Model      string    `json:"model"`
	Cached     bool      `json:"cached,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// InsightListResponse represents the response for listing insights.
type InsightListResponse struct {
	Insights []InsightResponse `json:"insights"`
}

// ToInsightResponse converts a domain Insight entity to an InsightResponse DTO.
func ToInsightResponse(insight *entity.Insight, cached bool) InsightResponse {
	highlights := insight.Highlights
	if highlights == nil {
		highlights = []string{}
	}

	return InsightResponse{
		ID:         insight.ID.String(),
		Period:     insight.Period,
		Summary:    insight.Summary,
		Highlights: highlights,
		Model:      insight.Model,
		Cached:     cached,
		CreatedAt:  insight.CreatedAt,
	}
}
