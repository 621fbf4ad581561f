package pgsql

import (
	portsrepo "github.com/expensetrackr/expense_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every repository over the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		PersonRepo:      NewPersonRepository(dbPool),
		CategoryRepo:    NewCategoryRepository(dbPool),
		TransactionRepo: NewTransactionRepository(dbPool),
	}
}
