package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/expensetrackr/expense_tracker_app/internal/apperrors"
	"github.com/expensetrackr/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/expensetrackr/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/expensetrackr/expense_tracker_app/internal/core/ports/services"
	"github.com/expensetrackr/expense_tracker_app/internal/dto"
)

// transactionService implements the TransactionSvcFacade interface.
// It owns the creation rule-set: referenced person and category must exist,
// minors cannot register revenue, and the category purpose must be
// compatible with the transaction type.
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	personRepo      portsrepo.PersonReader
	categoryRepo    portsrepo.CategoryReader
}

// NewTransactionService creates a new transaction service with the provided dependencies
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	personRepo portsrepo.PersonReader,
	categoryRepo portsrepo.CategoryReader,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		personRepo:      personRepo,
		categoryRepo:    categoryRepo,
	}
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction runs the creation rule-set in order, short-circuiting on
// the first failure, then persists the transaction in a single attempt.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	person, err := s.personRepo.FindPersonByID(ctx, req.PersonID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to look up person", slog.String("person_id", req.PersonID))
		}
		return nil, err
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to look up category", slog.String("category_id", req.CategoryID))
		}
		return nil, err
	}

	now := time.Now().UTC()

	transaction, err := domain.NewTransaction(req.Description, req.Amount, req.Type, category, person, now)
	if err != nil {
		s.LogDebug(ctx, "Transaction creation rejected",
			slog.String("person_id", req.PersonID),
			slog.String("category_id", req.CategoryID),
			slog.String("reason", err.Error()))
		return nil, err
	}

	if err := s.transactionRepo.SaveTransaction(ctx, *transaction); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", transaction.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created successfully",
		slog.String("transaction_id", transaction.TransactionID),
		slog.String("type", string(transaction.Type)))
	return transaction, nil
}

// GetTransactionByID retrieves a transaction by ID
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	transaction, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction by ID", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return transaction, nil
}

// ListTransactions retrieves transaction records matching the optional filters.
func (s *transactionService) ListTransactions(ctx context.Context, personID *string, from, to *time.Time) ([]domain.TransactionRecord, error) {
	if err := validateDateRange(from, to); err != nil {
		return nil, err
	}
	filter := portsrepo.TransactionFilter{PersonID: personID, From: from, To: inclusiveEnd(to)}

	records, err := s.transactionRepo.FindTransactionRecords(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, err
	}
	if records == nil {
		return []domain.TransactionRecord{}, nil
	}
	return records, nil
}

// UpdateTransaction mutates description, amount and/or category of an
// existing transaction under the same rules as creation. The transaction
// type never changes.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	transaction, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction for update", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	if req.Description != nil {
		if err := transaction.UpdateDescription(*req.Description); err != nil {
			return nil, err
		}
	}
	if req.Amount != nil {
		if err := transaction.UpdateAmount(*req.Amount); err != nil {
			return nil, err
		}
	}
	if req.CategoryID != nil {
		category, err := s.categoryRepo.FindCategoryByID(ctx, *req.CategoryID)
		if err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				s.LogError(ctx, err, "Failed to look up category", slog.String("category_id", *req.CategoryID))
			}
			return nil, err
		}
		if err := transaction.UpdateCategory(category); err != nil {
			return nil, err
		}
	}

	if err := s.transactionRepo.UpdateTransaction(ctx, *transaction); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated successfully", slog.String("transaction_id", transactionID))
	return transaction, nil
}
