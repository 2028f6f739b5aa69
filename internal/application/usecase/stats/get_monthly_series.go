// Package stats contains the financial statistics aggregation engine.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
)

// GetMonthlySeriesInput represents the input for the monthly series query.
// Months must be one of 3, 6, 12 or 24.
type GetMonthlySeriesInput struct {
	UserID uuid.UUID
	Months int
}

// GetMonthlySeriesOutput represents the output of the monthly series query.
type GetMonthlySeriesOutput struct {
	Series []MonthPoint
}

// GetMonthlySeriesUseCase buckets a user's transactions into calendar-month
// points suitable for direct charting.
type GetMonthlySeriesUseCase struct {
	transactionRepo adapter.TransactionRepository
	now             func() time.Time
}

// NewGetMonthlySeriesUseCase creates a new GetMonthlySeriesUseCase instance.
func NewGetMonthlySeriesUseCase(transactionRepo adapter.TransactionRepository) *GetMonthlySeriesUseCase {
	return &GetMonthlySeriesUseCase{
		transactionRepo: transactionRepo,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Used by tests to pin the window.
func (uc *GetMonthlySeriesUseCase) WithClock(now func() time.Time) *GetMonthlySeriesUseCase {
	uc.now = now
	return uc
}

// Execute validates the lookback, fetches the windowed snapshot and builds the series.
func (uc *GetMonthlySeriesUseCase) Execute(ctx context.Context, input GetMonthlySeriesInput) (*GetMonthlySeriesOutput, error) {
	if err := ValidateLookback(input.Months); err != nil {
		return nil, err
	}

	now := uc.now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(input.Months - 1), 0)
	_, end := MonthBounds(now)

	transactions, err := uc.transactionRepo.FindAllByUser(ctx, input.UserID, &start, &end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for monthly series: %w", err)
	}

	return &GetMonthlySeriesOutput{
		Series: BuildMonthlySeries(transactions, input.Months, now),
	}, nil
}
