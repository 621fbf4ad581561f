package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/expensetrackr/expense_tracker_app/internal/apperrors"
	"github.com/expensetrackr/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/expensetrackr/expense_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TransactionRepository persists transactions in PostgreSQL.
type TransactionRepository struct {
	db *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Ensure TransactionRepository implements the facade
var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

func (r *TransactionRepository) SaveTransaction(ctx context.Context, transaction domain.Transaction) error {
	query := `
        INSERT INTO transactions (transaction_id, description, amount, type, category_id, person_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		transaction.TransactionID,
		transaction.Description,
		transaction.Amount,
		transaction.Type,
		transaction.CategoryID,
		transaction.PersonID,
		transaction.CreatedAt,
	)
	if err != nil {
		return apperrors.NewPersistence(fmt.Errorf("failed to save transaction: %w", err))
	}
	return nil
}

func (r *TransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
        SELECT transaction_id, description, amount, type, category_id, person_id, created_at
        FROM transactions
        WHERE transaction_id = $1;
    `
	var transaction domain.Transaction
	err := r.db.QueryRow(ctx, query, transactionID).Scan(
		&transaction.TransactionID,
		&transaction.Description,
		&transaction.Amount,
		&transaction.Type,
		&transaction.CategoryID,
		&transaction.PersonID,
		&transaction.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("transaction")
		}
		return nil, apperrors.NewPersistence(fmt.Errorf("failed to find transaction by ID: %w", err))
	}
	return &transaction, nil
}

func (r *TransactionRepository) FindTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	query := `
        SELECT transaction_id, description, amount, type, category_id, person_id, created_at
        FROM transactions
    ` + buildFilterClause(filter, "") + `
        ORDER BY created_at ASC;
    `
	rows, err := r.db.Query(ctx, query, filterArgs(filter)...)
	if err != nil {
		return nil, apperrors.NewPersistence(fmt.Errorf("failed to query transactions: %w", err))
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		var transaction domain.Transaction
		err := rows.Scan(
			&transaction.TransactionID,
			&transaction.Description,
			&transaction.Amount,
			&transaction.Type,
			&transaction.CategoryID,
			&transaction.PersonID,
			&transaction.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewPersistence(fmt.Errorf("failed to scan transaction row: %w", err))
		}
		transactions = append(transactions, transaction)
	}

	if rows.Err() != nil {
		return nil, apperrors.NewPersistence(fmt.Errorf("error iterating transaction rows: %w", rows.Err()))
	}

	return transactions, nil
}

func (r *TransactionRepository) FindTransactionRecords(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.TransactionRecord, error) {
	query := `
        SELECT t.transaction_id, t.description, t.amount, t.type, t.created_at,
               t.category_id, c.description, t.person_id, p.name
        FROM transactions t
        JOIN categories c ON c.category_id = t.category_id
        JOIN persons p ON p.person_id = t.person_id
    ` + buildFilterClause(filter, "t.") + `
        ORDER BY t.created_at ASC;
    `
	rows, err := r.db.Query(ctx, query, filterArgs(filter)...)
	if err != nil {
		return nil, apperrors.NewPersistence(fmt.Errorf("failed to query transaction records: %w", err))
	}
	defer rows.Close()

	records := []domain.TransactionRecord{}
	for rows.Next() {
		var record domain.TransactionRecord
		err := rows.Scan(
			&record.TransactionID,
			&record.Description,
			&record.Amount,
			&record.Type,
			&record.CreatedAt,
			&record.CategoryID,
			&record.CategoryDescription,
			&record.PersonID,
			&record.PersonName,
		)
		if err != nil {
			return nil, apperrors.NewPersistence(fmt.Errorf("failed to scan transaction record row: %w", err))
		}
		records = append(records, record)
	}

	if rows.Err() != nil {
		return nil, apperrors.NewPersistence(fmt.Errorf("error iterating transaction record rows: %w", rows.Err()))
	}

	return records, nil
}

func (r *TransactionRepository) UpdateTransaction(ctx context.Context, transaction domain.Transaction) error {
	query := `
        UPDATE transactions
        SET description = $1, amount = $2, category_id = $3
        WHERE transaction_id = $4;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		transaction.Description,
		transaction.Amount,
		transaction.CategoryID,
		transaction.TransactionID,
	)
	if err != nil {
		return apperrors.NewPersistence(fmt.Errorf("failed to execute update transaction query: %w", err))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("transaction")
	}
	return nil
}

// buildFilterClause renders the WHERE clause for a transaction filter.
// prefix qualifies column names when the query joins other tables.
// Placeholder numbering must line up with filterArgs.
func buildFilterClause(filter portsrepo.TransactionFilter, prefix string) string {
	conditions := []string{}
	arg := 1
	if filter.PersonID != nil {
		conditions = append(conditions, fmt.Sprintf("%sperson_id = $%d", prefix, arg))
		arg++
	}
	if filter.CategoryID != nil {
		conditions = append(conditions, fmt.Sprintf("%scategory_id = $%d", prefix, arg))
		arg++
	}
	if filter.From != nil {
		conditions = append(conditions, fmt.Sprintf("%screated_at >= $%d", prefix, arg))
		arg++
	}
	if filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("%screated_at <= $%d", prefix, arg))
		arg++
	}
	if len(conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conditions, " AND ")
}

// filterArgs collects bind arguments in the same order buildFilterClause
// numbers its placeholders.
func filterArgs(filter portsrepo.TransactionFilter) []any {
	args := []any{}
	if filter.PersonID != nil {
		args = append(args, *filter.PersonID)
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
	}
	if filter.From != nil {
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		args = append(args, *filter.To)
	}
	return args
}
