package services

import (
	portsrepo "github.com/expensetrackr/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/expensetrackr/expense_tracker_app/internal/core/ports/services"
)

// NewServiceContainer creates the service container with properly initialized
// dependencies.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Person:      NewPersonService(repos.PersonRepo),
		Category:    NewCategoryService(repos.CategoryRepo),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.PersonRepo, repos.CategoryRepo),
		Reporting:   NewReportingService(repos.TransactionRepo, repos.PersonRepo),
	}
}
