package repositories

import (
	"context"
	"time"

	"github.com/expensetrackr/expense_tracker_app/internal/core/domain"
)

// TransactionFilter narrows transaction queries. Nil fields are ignored.
// From and To are inclusive bounds on the creation timestamp.
type TransactionFilter struct {
	PersonID   *string
	CategoryID *string
	From       *time.Time
	To         *time.Time
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its ID.
	// Returns apperrors.ErrNotFound when the transaction does not exist.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactions retrieves transactions matching the filter,
	// ordered ascending by creation time.
	FindTransactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)

	// FindTransactionRecords retrieves transactions matching the filter with
	// person name and category description joined in, ordered ascending by
	// creation time. This is the view the aggregation engine consumes.
	FindTransactionRecords(ctx context.Context, filter TransactionFilter) ([]domain.TransactionRecord, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction. Single attempt, fail fast.
	SaveTransaction(ctx context.Context, transaction domain.Transaction) error

	// UpdateTransaction updates an existing transaction's mutable fields
	// (description, amount, category). Type and CreatedAt never change.
	UpdateTransaction(ctx context.Context, transaction domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
