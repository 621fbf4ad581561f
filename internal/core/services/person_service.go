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

// personService implements the PersonSvcFacade interface
type personService struct {
	BaseService
	personRepo portsrepo.PersonRepositoryFacade
}

// NewPersonService creates a new person service with the provided dependencies
func NewPersonService(personRepo portsrepo.PersonRepositoryFacade) portssvc.PersonSvcFacade {
	return &personService{personRepo: personRepo}
}

// Ensure personService implements the PersonSvcFacade interface
var _ portssvc.PersonSvcFacade = (*personService)(nil)

// CreatePerson validates and persists a new person.
func (s *personService) CreatePerson(ctx context.Context, req dto.CreatePersonRequest) (*domain.Person, error) {
	now := time.Now().UTC()

	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		return nil, err
	}

	person, err := domain.NewPerson(req.Name, birthDate, now)
	if err != nil {
		s.LogDebug(ctx, "Person creation rejected", slog.String("reason", err.Error()))
		return nil, err
	}

	if err := s.personRepo.SavePerson(ctx, *person); err != nil {
		s.LogError(ctx, err, "Failed to save person", slog.String("person_id", person.PersonID))
		return nil, err
	}

	s.LogInfo(ctx, "Person created successfully", slog.String("person_id", person.PersonID))
	return person, nil
}

// GetPersonByID retrieves a person by ID
func (s *personService) GetPersonByID(ctx context.Context, personID string) (*domain.Person, error) {
	person, err := s.personRepo.FindPersonByID(ctx, personID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find person by ID", slog.String("person_id", personID))
		}
		return nil, err
	}
	return person, nil
}

// ListPersons retrieves all persons
func (s *personService) ListPersons(ctx context.Context) ([]domain.Person, error) {
	persons, err := s.personRepo.FindPersons(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list persons")
		return nil, err
	}
	if persons == nil {
		return []domain.Person{}, nil
	}
	return persons, nil
}

// UpdatePerson updates a person's name and/or birth date, re-validating.
func (s *personService) UpdatePerson(ctx context.Context, personID string, req dto.UpdatePersonRequest) (*domain.Person, error) {
	person, err := s.personRepo.FindPersonByID(ctx, personID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find person for update", slog.String("person_id", personID))
		}
		return nil, err
	}

	now := time.Now().UTC()

	if req.Name != nil {
		if err := person.UpdateName(*req.Name, now); err != nil {
			return nil, err
		}
	}
	if req.BirthDate != nil {
		birthDate, err := parseDate(*req.BirthDate)
		if err != nil {
			return nil, err
		}
		if err := person.UpdateBirthDate(birthDate, now); err != nil {
			return nil, err
		}
	}

	if err := s.personRepo.UpdatePerson(ctx, *person); err != nil {
		s.LogError(ctx, err, "Failed to update person", slog.String("person_id", personID))
		return nil, err
	}

	s.LogInfo(ctx, "Person updated successfully", slog.String("person_id", personID))
	return person, nil
}

// DeletePerson removes a person; the storage layer cascades the delete to
// the person's transactions.
func (s *personService) DeletePerson(ctx context.Context, personID string) error {
	if err := s.personRepo.DeletePerson(ctx, personID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete person", slog.String("person_id", personID))
		}
		return err
	}

	s.LogInfo(ctx, "Person deleted successfully", slog.String("person_id", personID))
	return nil
}

// parseDate parses a 2006-01-02 formatted date into a UTC time.
func parseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		return time.Time{}, apperrors.NewValidation("invalid date %q, expected format 2006-01-02", value)
	}
	return t, nil
}
