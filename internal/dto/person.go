package dto

import (
	"time"

	"github.com/expensetrackr/expense_tracker_app/internal/core/domain"
)

// CreatePersonRequest defines the data needed to create a new person.
// BirthDate is a calendar date (no time component).
type CreatePersonRequest struct {
	Name      string `json:"name" binding:"required,max=200"`
	BirthDate string `json:"birthDate" binding:"required,datetime=2006-01-02"`
}

// UpdatePersonRequest defines the data allowed for updating a person.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdatePersonRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=200"`
	BirthDate *string `json:"birthDate" binding:"omitempty,datetime=2006-01-02"`
}

// PersonResponse defines the data returned for a person.
type PersonResponse struct {
	PersonID  string    `json:"personID"`
	Name      string    `json:"name"`
	BirthDate string    `json:"birthDate"`
	Age       int       `json:"age"`
	IsAdult   bool      `json:"isAdult"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListPersonsResponse wraps the list of persons.
type ListPersonsResponse struct {
	Persons []PersonResponse `json:"persons"`
}

// ToPersonResponse converts a domain.Person to PersonResponse DTO
func ToPersonResponse(p *domain.Person) PersonResponse {
	return PersonResponse{
		PersonID:  p.PersonID,
		Name:      p.Name,
		BirthDate: p.BirthDate.Format("2006-01-02"),
		Age:       p.Age(),
		IsAdult:   p.IsAdult(),
		CreatedAt: p.CreatedAt,
	}
}

// ToListPersonsResponse converts a slice of domain.Person to ListPersonsResponse DTO
func ToListPersonsResponse(persons []domain.Person) ListPersonsResponse {
	responses := make([]PersonResponse, len(persons))
	for i := range persons {
		responses[i] = ToPersonResponse(&persons[i])
	}
	return ListPersonsResponse{Persons: responses}
}
