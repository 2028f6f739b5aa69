// Package stats contains the financial statistics aggregation engine.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// GetTransactionStatsInput represents the input for the transaction stats query.
// StartDate and EndDate are optional; when both are set they form an inclusive
// window.
type GetTransactionStatsInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// GetTransactionStatsOutput represents the output of the transaction stats query.
type GetTransactionStatsOutput struct {
	Summary Summary
}

// GetTransactionStatsUseCase computes aggregate figures over a user's
// transactions. The fetch is a snapshot read; the aggregation itself is pure.
type GetTransactionStatsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTransactionStatsUseCase creates a new GetTransactionStatsUseCase instance.
func NewGetTransactionStatsUseCase(transactionRepo adapter.TransactionRepository) *GetTransactionStatsUseCase {
	return &GetTransactionStatsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute fetches the user's transactions and summarizes them.
func (uc *GetTransactionStatsUseCase) Execute(ctx context.Context, input GetTransactionStatsInput) (*GetTransactionStatsOutput, error) {
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, domainerror.NewStatsError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must not be before start date",
			domainerror.ErrInvalidDateRange,
		)
	}

	transactions, err := uc.transactionRepo.FindAllByUser(ctx, input.UserID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for stats: %w", err)
	}

	// The repository already applied the window; summarize the full snapshot.
	return &GetTransactionStatsOutput{
		Summary: Summarize(transactions, nil),
	}, nil
}
