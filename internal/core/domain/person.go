package domain

import (
	"strings"
	"time"

	"github.com/expensetrackr/expense_tracker_app/internal/apperrors"
	"github.com/google/uuid"
)

const maxPersonNameLength = 200

// Person represents a household member who owns transactions.
// Age is always derived from BirthDate so it stays correct over time.
type Person struct {
	PersonID  string    `json:"personID"` // Primary Key (UUID)
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birthDate"` // date component only, UTC
	AuditFields
}

// NewPerson constructs a validated Person with a fresh identifier.
// Invalid input yields a validation error; a Person is never built in an
// invalid state.
func NewPerson(name string, birthDate time.Time, now time.Time) (*Person, error) {
	if err := validatePersonName(name); err != nil {
		return nil, err
	}
	if err := validateBirthDate(birthDate, now); err != nil {
		return nil, err
	}

	return &Person{
		PersonID:  uuid.NewString(),
		Name:      name,
		BirthDate: truncateToDate(birthDate),
		AuditFields: AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}, nil
}

// UpdateName changes the person's name, re-validating it.
func (p *Person) UpdateName(name string, now time.Time) error {
	if err := validatePersonName(name); err != nil {
		return err
	}
	p.Name = name
	p.LastUpdatedAt = now
	return nil
}

// UpdateBirthDate changes the person's birth date, re-validating it.
func (p *Person) UpdateBirthDate(birthDate time.Time, now time.Time) error {
	if err := validateBirthDate(birthDate, now); err != nil {
		return err
	}
	p.BirthDate = truncateToDate(birthDate)
	p.LastUpdatedAt = now
	return nil
}

// AgeAt computes the person's age at the given instant, accounting for
// whether the birthday has occurred yet that year.
func (p *Person) AgeAt(at time.Time) int {
	today := truncateToDate(at)
	age := today.Year() - p.BirthDate.Year()
	if p.BirthDate.AddDate(age, 0, 0).After(today) {
		age--
	}
	return age
}

// Age computes the current age.
func (p *Person) Age() int {
	return p.AgeAt(time.Now().UTC())
}

// IsAdultAt reports whether the person is at least 18 at the given instant.
// Revenue transactions are only permitted for adults.
func (p *Person) IsAdultAt(at time.Time) bool {
	return p.AgeAt(at) >= 18
}

// IsAdult reports whether the person is currently an adult.
func (p *Person) IsAdult() bool {
	return p.IsAdultAt(time.Now().UTC())
}

func validatePersonName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewValidation("name must not be empty")
	}
	if len(name) > maxPersonNameLength {
		return apperrors.NewValidation("name must not exceed %d characters", maxPersonNameLength)
	}
	return nil
}

func validateBirthDate(birthDate time.Time, now time.Time) error {
	if truncateToDate(birthDate).After(truncateToDate(now)) {
		return apperrors.NewValidation("birth date must not be in the future")
	}
	return nil
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
