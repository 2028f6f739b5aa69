// Package insight contains AI spending insight use cases.
package insight

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// ListInsightsInput represents the input for listing insights.
type ListInsightsInput struct {
	UserID uuid.UUID
}

// ListInsightsOutput represents the output of listing insights.
type ListInsightsOutput struct {
	Insights []*entity.Insight
}

// ListInsightsUseCase handles insight listing logic.
type ListInsightsUseCase struct {
	insightRepo adapter.InsightRepository
}

// NewListInsightsUseCase creates a new ListInsightsUseCase instance.
func NewListInsightsUseCase(insightRepo adapter.InsightRepository) *ListInsightsUseCase {
	return &ListInsightsUseCase{
		insightRepo: insightRepo,
	}
}

// Execute lists the user's generated insights, newest first.
func (uc *ListInsightsUseCase) Execute(ctx context.Context, input ListInsightsInput) (*ListInsightsOutput, error) {
	insights, err := uc.insightRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list insights: %w", err)
	}

	return &ListInsightsOutput{Insights: insights}, nil
}
