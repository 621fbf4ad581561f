package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/expensetrackr/expense_tracker_app/internal/apperrors"
	"github.com/expensetrackr/expense_tracker_app/internal/core/domain"
	portssvc "github.com/expensetrackr/expense_tracker_app/internal/core/ports/services"
	"github.com/expensetrackr/expense_tracker_app/internal/core/services"
	"github.com/expensetrackr/expense_tracker_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PersonRepository ---
type MockPersonRepository struct {
	mock.Mock
}

func (m *MockPersonRepository) SavePerson(ctx context.Context, person domain.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *MockPersonRepository) FindPersonByID(ctx context.Context, personID string) (*domain.Person, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

func (m *MockPersonRepository) FindPersons(ctx context.Context) ([]domain.Person, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Person), args.Error(1)
}

func (m *MockPersonRepository) UpdatePerson(ctx context.Context, person domain.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *MockPersonRepository) DeletePerson(ctx context.Context, personID string) error {
	args := m.Called(ctx, personID)
	return args.Error(0)
}

// --- Test Suite ---
type PersonServiceTestSuite struct {
	suite.Suite
	mockPersonRepo *MockPersonRepository
	service        portssvc.PersonSvcFacade
}

func (suite *PersonServiceTestSuite) SetupTest() {
	suite.mockPersonRepo = new(MockPersonRepository)
	suite.service = services.NewPersonService(suite.mockPersonRepo)
}

// --- CreatePerson Tests ---

func (suite *PersonServiceTestSuite) TestCreatePerson_Success() {
	ctx := context.Background()
	req := dto.CreatePersonRequest{Name: "Ana", BirthDate: "1990-03-10"}

	suite.mockPersonRepo.On("SavePerson", ctx, mock.MatchedBy(func(person domain.Person) bool {
		return person.Name == "Ana" && person.PersonID != ""
	})).Return(nil).Once()

	person, err := suite.service.CreatePerson(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(person)
	suite.Equal("Ana", person.Name)
	suite.Equal(time.Date(1990, time.March, 10, 0, 0, 0, 0, time.UTC), person.BirthDate)
	suite.NotEmpty(person.PersonID)

	suite.mockPersonRepo.AssertExpectations(suite.T())
}

func (suite *PersonServiceTestSuite) TestCreatePerson_InvalidBirthDate() {
	ctx := context.Background()
	req := dto.CreatePersonRequest{Name: "Ana", BirthDate: "10/03/1990"}

	person, err := suite.service.CreatePerson(ctx, req)

	suite.Require().Error(err)
	suite.Nil(person)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPersonRepo.AssertNotCalled(suite.T(), "SavePerson")
}

func (suite *PersonServiceTestSuite) TestCreatePerson_FutureBirthDate() {
	ctx := context.Background()
	future := time.Now().UTC().AddDate(1, 0, 0).Format("2006-01-02")
	req := dto.CreatePersonRequest{Name: "Ana", BirthDate: future}

	person, err := suite.service.CreatePerson(ctx, req)

	suite.Require().Error(err)
	suite.Nil(person)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPersonRepo.AssertNotCalled(suite.T(), "SavePerson")
}

func (suite *PersonServiceTestSuite) TestCreatePerson_SaveError() {
	ctx := context.Background()
	req := dto.CreatePersonRequest{Name: "Ana", BirthDate: "1990-03-10"}
	expectedErr := assert.AnError

	suite.mockPersonRepo.On("SavePerson", ctx, mock.AnythingOfType("domain.Person")).Return(expectedErr).Once()

	person, err := suite.service.CreatePerson(ctx, req)

	suite.Require().Error(err)
	suite.Nil(person)
	suite.ErrorIs(err, expectedErr)
	suite.mockPersonRepo.AssertExpectations(suite.T())
}

// --- GetPersonByID Tests ---

func (suite *PersonServiceTestSuite) TestGetPersonByID_Success() {
	ctx := context.Background()
	personID := uuid.NewString()
	expected := &domain.Person{PersonID: personID, Name: "Ana"}

	suite.mockPersonRepo.On("FindPersonByID", ctx, personID).Return(expected, nil).Once()

	person, err := suite.service.GetPersonByID(ctx, personID)

	suite.Require().NoError(err)
	suite.Equal(expected, person)
	suite.mockPersonRepo.AssertExpectations(suite.T())
}

func (suite *PersonServiceTestSuite) TestGetPersonByID_NotFound() {
	ctx := context.Background()
	personID := uuid.NewString()

	suite.mockPersonRepo.On("FindPersonByID", ctx, personID).Return(nil, apperrors.NewNotFound("person")).Once()

	person, err := suite.service.GetPersonByID(ctx, personID)

	suite.Require().Error(err)
	suite.Nil(person)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPersonRepo.AssertExpectations(suite.T())
}

// --- ListPersons Tests ---

func (suite *PersonServiceTestSuite) TestListPersons_Empty() {
	ctx := context.Background()

	suite.mockPersonRepo.On("FindPersons", ctx).Return(nil, nil).Once()

	persons, err := suite.service.ListPersons(ctx)

	suite.Require().NoError(err)
	suite.NotNil(persons)
	suite.Empty(persons)
	suite.mockPersonRepo.AssertExpectations(suite.T())
}

// --- UpdatePerson Tests ---

func (suite *PersonServiceTestSuite) TestUpdatePerson_NameOnly() {
	ctx := context.Background()
	personID := uuid.NewString()
	existing := &domain.Person{
		PersonID:  personID,
		Name:      "Ana",
		BirthDate: time.Date(1990, time.March, 10, 0, 0, 0, 0, time.UTC),
	}
	newName := "Ana Maria"

	suite.mockPersonRepo.On("FindPersonByID", ctx, personID).Return(existing, nil).Once()
	suite.mockPersonRepo.On("UpdatePerson", ctx, mock.MatchedBy(func(person domain.Person) bool {
		return person.Name == newName && person.BirthDate.Equal(existing.BirthDate)
	})).Return(nil).Once()

	person, err := suite.service.UpdatePerson(ctx, personID, dto.UpdatePersonRequest{Name: &newName})

	suite.Require().NoError(err)
	suite.Equal(newName, person.Name)
	suite.mockPersonRepo.AssertExpectations(suite.T())
}

func (suite *PersonServiceTestSuite) TestUpdatePerson_NotFound() {
	ctx := context.Background()
	personID := uuid.NewString()
	newName := "Ana Maria"

	suite.mockPersonRepo.On("FindPersonByID", ctx, personID).Return(nil, apperrors.NewNotFound("person")).Once()

	person, err := suite.service.UpdatePerson(ctx, personID, dto.UpdatePersonRequest{Name: &newName})

	suite.Require().Error(err)
	suite.Nil(person)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPersonRepo.AssertNotCalled(suite.T(), "UpdatePerson")
}

// --- DeletePerson Tests ---

func (suite *PersonServiceTestSuite) TestDeletePerson_Success() {
	ctx := context.Background()
	personID := uuid.NewString()

	suite.mockPersonRepo.On("DeletePerson", ctx, personID).Return(nil).Once()

	err := suite.service.DeletePerson(ctx, personID)

	suite.Require().NoError(err)
	suite.mockPersonRepo.AssertExpectations(suite.T())
}

func (suite *PersonServiceTestSuite) TestDeletePerson_NotFound() {
	ctx := context.Background()
	personID := uuid.NewString()

	suite.mockPersonRepo.On("DeletePerson", ctx, personID).Return(apperrors.NewNotFound("person")).Once()

	err := suite.service.DeletePerson(ctx, personID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPersonRepo.AssertExpectations(suite.T())
}

func TestPersonServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PersonServiceTestSuite))
}
