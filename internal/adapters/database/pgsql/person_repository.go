package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/expensetrackr/expense_tracker_app/internal/apperrors"
	"github.com/expensetrackr/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/expensetrackr/expense_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PersonRepository persists persons in PostgreSQL.
type PersonRepository struct {
	db *pgxpool.Pool
}

func NewPersonRepository(db *pgxpool.Pool) *PersonRepository {
	return &PersonRepository{db: db}
}

// Ensure PersonRepository implements the facade
var _ portsrepo.PersonRepositoryFacade = (*PersonRepository)(nil)

func (r *PersonRepository) SavePerson(ctx context.Context, person domain.Person) error {
	query := `
        INSERT INTO persons (person_id, name, birth_date, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.db.Exec(ctx, query,
		person.PersonID,
		person.Name,
		person.BirthDate,
		person.CreatedAt,
		person.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewPersistence(fmt.Errorf("failed to save person: %w", err))
	}
	return nil
}

func (r *PersonRepository) FindPersonByID(ctx context.Context, personID string) (*domain.Person, error) {
	query := `
        SELECT person_id, name, birth_date, created_at, last_updated_at
        FROM persons
        WHERE person_id = $1;
    `
	var person domain.Person
	err := r.db.QueryRow(ctx, query, personID).Scan(
		&person.PersonID,
		&person.Name,
		&person.BirthDate,
		&person.CreatedAt,
		&person.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("person")
		}
		return nil, apperrors.NewPersistence(fmt.Errorf("failed to find person by ID: %w", err))
	}
	return &person, nil
}

func (r *PersonRepository) FindPersons(ctx context.Context) ([]domain.Person, error) {
	query := `
        SELECT person_id, name, birth_date, created_at, last_updated_at
        FROM persons
        ORDER BY name;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewPersistence(fmt.Errorf("failed to query persons: %w", err))
	}
	defer rows.Close()

	persons := []domain.Person{}
	for rows.Next() {
		var person domain.Person
		err := rows.Scan(
			&person.PersonID,
			&person.Name,
			&person.BirthDate,
			&person.CreatedAt,
			&person.LastUpdatedAt,
		)
		if err != nil {
			return nil, apperrors.NewPersistence(fmt.Errorf("failed to scan person row: %w", err))
		}
		persons = append(persons, person)
	}

	if rows.Err() != nil {
		return nil, apperrors.NewPersistence(fmt.Errorf("error iterating person rows: %w", rows.Err()))
	}

	return persons, nil
}

func (r *PersonRepository) UpdatePerson(ctx context.Context, person domain.Person) error {
	query := `
        UPDATE persons
        SET name = $1, birth_date = $2, last_updated_at = $3
        WHERE person_id = $4;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		person.Name,
		person.BirthDate,
		person.LastUpdatedAt,
		person.PersonID,
	)
	if err != nil {
		return apperrors.NewPersistence(fmt.Errorf("failed to execute update person query: %w", err))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("person")
	}
	return nil
}

func (r *PersonRepository) DeletePerson(ctx context.Context, personID string) error {
	// Transactions referencing the person are removed by ON DELETE CASCADE.
	query := `
        DELETE FROM persons
        WHERE person_id = $1;
    `
	cmdTag, err := r.db.Exec(ctx, query, personID)
	if err != nil {
		return apperrors.NewPersistence(fmt.Errorf("failed to delete person: %w", err))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("person")
	}
	return nil
}
