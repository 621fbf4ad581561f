package services

import (
	"context"
	"time"

	"github.com/expensetrackr/expense_tracker_app/internal/core/domain"
	"github.com/expensetrackr/expense_tracker_app/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a transaction by ID.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions joined with person and category
	// names, optionally filtered by person and creation-date range.
	ListTransactions(ctx context.Context, personID *string, from, to *time.Time) ([]domain.TransactionRecord, error)
}

// TransactionWriterSvc defines write operations for transaction data
type TransactionWriterSvc interface {
	// CreateTransaction validates and persists a new transaction.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction updates a transaction's description, amount and/or
	// category, re-validating under the same rules as creation.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
