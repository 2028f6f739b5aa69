// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
// A nil Type or blank Category means "all".
type TransactionFilter struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Type      *entity.TransactionType
	Category  string
	Search    string // Case-insensitive description match
}

// TransactionPagination defines pagination options.
type TransactionPagination struct {
	Page  int
	Limit int
}

// TransactionListResult represents the result of listing transactions.
type TransactionListResult struct {
	Transactions []*entity.Transaction
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}

// TransactionTotals represents aggregated totals for transactions.
type TransactionTotals struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions based on filter criteria with pagination.
	FindByFilter(ctx context.Context, filter TransactionFilter, pagination TransactionPagination) (*TransactionListResult, error)

	// FindAllByUser retrieves all transactions for a user, optionally limited to
	// an inclusive date window, ordered by date ascending. Used by the stats engine.
	FindAllByUser(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) ([]*entity.Transaction, error)

	// GetTotals calculates income/expense/net totals for transactions matching the filter.
	GetTotals(ctx context.Context, filter TransactionFilter) (*TransactionTotals, error)

	// SumExpensesByCategory sums expense amounts for a user and category within
	// an inclusive date window. Returns zero when no rows match.
	SumExpensesByCategory(ctx context.Context, userID uuid.UUID, category string, startDate, endDate time.Time) (decimal.Decimal, error)

	// SumExpenses sums all expense amounts for a user within an inclusive date
	// window, regardless of category. Returns zero when no rows match.
	SumExpenses(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) (decimal.Decimal, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete soft-deletes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
