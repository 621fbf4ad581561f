package services

import (
	"context"

	"github.com/expensetrackr/expense_tracker_app/internal/core/domain"
	"github.com/expensetrackr/expense_tracker_app/internal/dto"
)

// PersonReaderSvc defines read operations for person data
type PersonReaderSvc interface {
	// GetPersonByID retrieves a person by ID.
	GetPersonByID(ctx context.Context, personID string) (*domain.Person, error)

	// ListPersons retrieves all persons.
	ListPersons(ctx context.Context) ([]domain.Person, error)
}

// PersonWriterSvc defines write operations for person data
type PersonWriterSvc interface {
	// CreatePerson creates a new person.
	CreatePerson(ctx context.Context, req dto.CreatePersonRequest) (*domain.Person, error)

	// UpdatePerson updates an existing person's name and/or birth date.
	UpdatePerson(ctx context.Context, personID string, req dto.UpdatePersonRequest) (*domain.Person, error)
}

// PersonLifecycleSvc defines operations for managing person lifecycle
type PersonLifecycleSvc interface {
	// DeletePerson removes a person and, by cascade, their transactions.
	DeletePerson(ctx context.Context, personID string) error
}

// PersonSvcFacade combines all person-related service interfaces
type PersonSvcFacade interface {
	PersonReaderSvc
	PersonWriterSvc
	PersonLifecycleSvc
}
