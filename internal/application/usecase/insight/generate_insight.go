// Package insight contains AI spending insight use cases.
package insight

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/application/usecase/stats"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// GenerateInsightInput represents the input for insight generation.
// Period is a "YYYY-MM" month; blank means the current month.
type GenerateInsightInput struct {
	UserID uuid.UUID
	Period string
}

// GenerateInsightOutput represents the output of insight generation.
type GenerateInsightOutput struct {
	Insight *entity.Insight
	Cached  bool
}

// GenerateInsightUseCase produces a natural-language summary of one month of
// spending. Results are stored per user and period so each month is only
// generated once.
type GenerateInsightUseCase struct {
	insightRepo     adapter.InsightRepository
	transactionRepo adapter.TransactionRepository
	userRepo        adapter.UserRepository
	generator       adapter.InsightGenerator
	now             func() time.Time
}

// NewGenerateInsightUseCase creates a new GenerateInsightUseCase instance.
func NewGenerateInsightUseCase(
	insightRepo adapter.InsightRepository,
	transactionRepo adapter.TransactionRepository,
	userRepo adapter.UserRepository,
	generator adapter.InsightGenerator,
) *GenerateInsightUseCase {
	return &GenerateInsightUseCase{
		insightRepo:     insightRepo,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		generator:       generator,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Used by tests to pin the default period.
func (uc *GenerateInsightUseCase) WithClock(now func() time.Time) *GenerateInsightUseCase {
	uc.now = now
	return uc
}

// Execute generates (or returns the cached) insight for the period.
func (uc *GenerateInsightUseCase) Execute(ctx context.Context, input GenerateInsightInput) (*GenerateInsightOutput, error) {
	if uc.generator == nil || !uc.generator.IsAvailable() {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeInsightsUnavailable,
			"insight service is not configured",
			domainerror.ErrInsightsUnavailable,
		)
	}

	period := input.Period
	if period == "" {
		period = stats.MonthKey(uc.now())
	}
	monthStart, err := parsePeriod(period)
	if err != nil {
		return nil, err
	}

	// Serve the cached insight when this month was already generated.
	existing, err := uc.insightRepo.FindByUserAndPeriod(ctx, input.UserID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to look up existing insight: %w", err)
	}
	if existing != nil {
		return &GenerateInsightOutput{Insight: existing, Cached: true}, nil
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user for insight: %w", err)
	}

	start, end := stats.MonthBounds(monthStart)
	transactions, err := uc.transactionRepo.FindAllByUser(ctx, input.UserID, &start, &end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for insight: %w", err)
	}

	summary := stats.Summarize(transactions, nil)

	breakdown := make(map[string]string, len(summary.CategoryBreakdown))
	for category, total := range summary.CategoryBreakdown {
		breakdown[category] = total.StringFixed(2)
	}

	result, err := uc.generator.GenerateMonthlySummary(ctx, &adapter.MonthlySummaryRequest{
		Period:            period,
		Currency:          user.Currency,
		TotalIncome:       summary.TotalIncome.StringFixed(2),
		TotalExpenses:     summary.TotalExpenses.StringFixed(2),
		NetSavings:        summary.NetSavings.StringFixed(2),
		TransactionCount:  summary.TransactionCount,
		CategoryBreakdown: breakdown,
	})
	if err != nil {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeInsightGeneration,
			"failed to generate insight",
			err,
		)
	}

	insight := entity.NewInsight(input.UserID, period, result.Summary, result.Highlights, result.Model)
	if err := uc.insightRepo.Create(ctx, insight); err != nil {
		return nil, fmt.Errorf("failed to store insight: %w", err)
	}

	return &GenerateInsightOutput{Insight: insight}, nil
}

// parsePeriod validates a "YYYY-MM" period and returns the first day of that month.
func parsePeriod(period string) (time.Time, error) {
	t, err := time.Parse("2006-01", period)
	if err != nil {
		return time.Time{}, domainerror.NewInsightError(
			domainerror.ErrCodeInvalidPeriod,
			"period must be formatted as YYYY-MM",
			domainerror.ErrInvalidPeriod,
		)
	}
	return t, nil
}
