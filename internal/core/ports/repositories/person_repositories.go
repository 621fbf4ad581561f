package repositories

import (
	"context"

	"github.com/expensetrackr/expense_tracker_app/internal/core/domain"
)

// PersonReader defines read operations for person data
type PersonReader interface {
	// FindPersonByID retrieves a specific person by their ID.
	// Returns apperrors.ErrNotFound when the person does not exist.
	FindPersonByID(ctx context.Context, personID string) (*domain.Person, error)

	// FindPersons retrieves all persons, ordered by name.
	FindPersons(ctx context.Context) ([]domain.Person, error)
}

// PersonWriter defines write operations for person data
type PersonWriter interface {
	// SavePerson persists a new person.
	SavePerson(ctx context.Context, person domain.Person) error

	// UpdatePerson updates an existing person's details.
	UpdatePerson(ctx context.Context, person domain.Person) error
}

// PersonLifecycleManager defines operations for managing person lifecycle
type PersonLifecycleManager interface {
	// DeletePerson removes a person. The storage layer cascades the delete
	// to the person's transactions.
	DeletePerson(ctx context.Context, personID string) error
}

// PersonRepositoryFacade combines all person-related repository interfaces
type PersonRepositoryFacade interface {
	PersonReader
	PersonWriter
	PersonLifecycleManager
}
