package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// recordingTransactionRepo captures the filter handed to the store.
type recordingTransactionRepo struct {
	lastFilter adapter.TransactionFilter
}

func (r *recordingTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	return errors.New("not implemented")
}

func (r *recordingTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, errors.New("not implemented")
}

func (r *recordingTransactionRepo) FindByFilter(ctx context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) (*adapter.TransactionListResult, error) {
	r.lastFilter = filter
	return &adapter.TransactionListResult{
		Transactions: []*entity.Transaction{},
		Page:         pagination.Page,
		Limit:        pagination.Limit,
	}, nil
}

func (r *recordingTransactionRepo) FindAllByUser(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) ([]*entity.Transaction, error) {
	return nil, errors.New("not implemented")
}

func (r *recordingTransactionRepo) GetTotals(ctx context.Context, filter adapter.TransactionFilter) (*adapter.TransactionTotals, error) {
	return &adapter.TransactionTotals{
		IncomeTotal:  decimal.Zero,
		ExpenseTotal: decimal.Zero,
		NetTotal:     decimal.Zero,
	}, nil
}

func (r *recordingTransactionRepo) SumExpensesByCategory(ctx context.Context, userID uuid.UUID, category string, startDate, endDate time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (r *recordingTransactionRepo) SumExpenses(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (r *recordingTransactionRepo) Update(ctx context.Context, transaction *entity.Transaction) error {
	return errors.New("not implemented")
}

func (r *recordingTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return errors.New("not implemented")
}

func TestListTransactionsAllDisablesFilters(t *testing.T) {
	repo := &recordingTransactionRepo{}
	useCase := NewListTransactionsUseCase(repo)

	allType := entity.TransactionType("all")
	output, err := useCase.Execute(context.Background(), ListTransactionsInput{
		UserID:   uuid.New(),
		Type:     &allType,
		Category: "all",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Nil(t, repo.lastFilter.Type)
	assert.Empty(t, repo.lastFilter.Category)
}

func TestListTransactionsTypeFilterForwarded(t *testing.T) {
	repo := &recordingTransactionRepo{}
	useCase := NewListTransactionsUseCase(repo)

	expenseType := entity.TransactionTypeExpense
	_, err := useCase.Execute(context.Background(), ListTransactionsInput{
		UserID:   uuid.New(),
		Type:     &expenseType,
		Category: "Food",
	})

	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.Type)
	assert.Equal(t, entity.TransactionTypeExpense, *repo.lastFilter.Type)
	assert.Equal(t, "Food", repo.lastFilter.Category)
}

func TestListTransactionsRejectsUnknownType(t *testing.T) {
	repo := &recordingTransactionRepo{}
	useCase := NewListTransactionsUseCase(repo)

	badType := entity.TransactionType("transfer")
	_, err := useCase.Execute(context.Background(), ListTransactionsInput{
		UserID: uuid.New(),
		Type:   &badType,
	})

	require.Error(t, err)
	var txnErr *domainerror.TransactionError
	require.ErrorAs(t, err, &txnErr)
	assert.Equal(t, domainerror.ErrCodeInvalidTransactionType, txnErr.Code)
}
