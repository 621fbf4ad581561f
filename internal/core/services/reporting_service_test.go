package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/expensetrackr/expense_tracker_app/internal/apperrors"
	"github.com/expensetrackr/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/expensetrackr/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/expensetrackr/expense_tracker_app/internal/core/ports/services"
	"github.com/expensetrackr/expense_tracker_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockTransactionRepo *MockTransactionRepository
	mockPersonRepo      *MockPersonRepository
	service             portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockTransactionRepo = new(MockTransactionRepository)
	suite.mockPersonRepo = new(MockPersonRepository)
	suite.service = services.NewReportingService(suite.mockTransactionRepo, suite.mockPersonRepo)
}

func record(personID, personName, categoryID, categoryDescription string, amount int64, txType domain.TransactionType, createdAt time.Time) domain.TransactionRecord {
	return domain.TransactionRecord{
		TransactionID:       uuid.NewString(),
		Description:         "test",
		Amount:              decimal.NewFromInt(amount),
		Type:                txType,
		CreatedAt:           createdAt,
		CategoryID:          categoryID,
		CategoryDescription: categoryDescription,
		PersonID:            personID,
		PersonName:          personName,
	}
}

// --- CategoriesReport Tests ---

func (suite *ReportingServiceTestSuite) TestCategoriesReport_GroupsAndSorts() {
	ctx := context.Background()
	jan := time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)
	personID := uuid.NewString()
	groceriesID := uuid.NewString()
	salaryID := uuid.NewString()

	records := []domain.TransactionRecord{
		record(personID, "Ana", salaryID, "Salary", 1000, domain.TypeRevenue, jan),
		record(personID, "Ana", groceriesID, "Groceries", 40, domain.TypeExpense, jan.Add(time.Hour)),
		record(personID, "Ana", groceriesID, "Groceries", 60, domain.TypeExpense, jan.Add(2*time.Hour)),
	}

	suite.mockTransactionRepo.On("FindTransactionRecords", ctx, mock.AnythingOfType("repositories.TransactionFilter")).Return(records, nil).Once()

	report, err := suite.service.CategoriesReport(ctx, nil, nil)

	suite.Require().NoError(err)
	suite.Require().Len(report.CategorySummaries, 2)

	// Sorted alphabetically by description
	groceries := report.CategorySummaries[0]
	suite.Equal("Groceries", groceries.CategoryDescription)
	suite.True(groceries.TotalExpense.Equal(decimal.NewFromInt(100)))
	suite.True(groceries.TotalRevenue.Equal(decimal.Zero))
	suite.True(groceries.Balance.Equal(decimal.NewFromInt(-100)))

	salary := report.CategorySummaries[1]
	suite.Equal("Salary", salary.CategoryDescription)
	suite.True(salary.TotalRevenue.Equal(decimal.NewFromInt(1000)))
	suite.True(salary.Balance.Equal(decimal.NewFromInt(1000)))

	suite.True(report.TotalRevenue.Equal(decimal.NewFromInt(1000)))
	suite.True(report.TotalExpense.Equal(decimal.NewFromInt(100)))
	suite.True(report.NetBalance.Equal(decimal.NewFromInt(900)))
}

func (suite *ReportingServiceTestSuite) TestCategoriesReport_EmptyLedger() {
	ctx := context.Background()

	suite.mockTransactionRepo.On("FindTransactionRecords", ctx, mock.AnythingOfType("repositories.TransactionFilter")).Return([]domain.TransactionRecord{}, nil).Once()

	report, err := suite.service.CategoriesReport(ctx, nil, nil)

	suite.Require().NoError(err)
	suite.Empty(report.CategorySummaries)
	suite.True(report.NetBalance.Equal(decimal.Zero))
}

func (suite *ReportingServiceTestSuite) TestCategoriesReport_InvertedRange() {
	ctx := context.Background()
	from := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	report, err := suite.service.CategoriesReport(ctx, &from, &to)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "FindTransactionRecords")
}

// --- PeopleReport Tests ---

func (suite *ReportingServiceTestSuite) TestPeopleReport_GroupsByPerson() {
	ctx := context.Background()
	jan := time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)
	anaID := uuid.NewString()
	pedroID := uuid.NewString()
	categoryID := uuid.NewString()

	records := []domain.TransactionRecord{
		record(pedroID, "Pedro", categoryID, "Adjustments", 30, domain.TypeExpense, jan),
		record(anaID, "Ana", categoryID, "Adjustments", 100, domain.TypeRevenue, jan.Add(time.Hour)),
		record(anaID, "Ana", categoryID, "Adjustments", 25, domain.TypeExpense, jan.Add(2*time.Hour)),
	}

	suite.mockTransactionRepo.On("FindTransactionRecords", ctx, mock.AnythingOfType("repositories.TransactionFilter")).Return(records, nil).Once()

	report, err := suite.service.PeopleReport(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(report.PersonSummaries, 2)

	// Sorted alphabetically by name
	ana := report.PersonSummaries[0]
	suite.Equal("Ana", ana.PersonName)
	suite.True(ana.TotalRevenue.Equal(decimal.NewFromInt(100)))
	suite.True(ana.TotalExpense.Equal(decimal.NewFromInt(25)))
	suite.True(ana.Balance.Equal(decimal.NewFromInt(75)))

	pedro := report.PersonSummaries[1]
	suite.Equal("Pedro", pedro.PersonName)
	suite.True(pedro.Balance.Equal(decimal.NewFromInt(-30)))

	suite.True(report.NetBalance.Equal(decimal.NewFromInt(45)))
}

// --- OverallSummary Tests ---

func (suite *ReportingServiceTestSuite) TestOverallSummary() {
	ctx := context.Background()
	jan := time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)
	personID := uuid.NewString()
	categoryID := uuid.NewString()

	records := []domain.TransactionRecord{
		record(personID, "Ana", categoryID, "Adjustments", 200, domain.TypeRevenue, jan),
		record(personID, "Ana", categoryID, "Adjustments", 80, domain.TypeExpense, jan.Add(time.Hour)),
	}

	suite.mockTransactionRepo.On("FindTransactionRecords", ctx, mock.AnythingOfType("repositories.TransactionFilter")).Return(records, nil).Once()

	summary, err := suite.service.OverallSummary(ctx)

	suite.Require().NoError(err)
	suite.True(summary.TotalRevenue.Equal(decimal.NewFromInt(200)))
	suite.True(summary.TotalExpense.Equal(decimal.NewFromInt(80)))
	suite.True(summary.NetBalance.Equal(decimal.NewFromInt(120)))
}

// --- DetailedReport Tests ---

func (suite *ReportingServiceTestSuite) TestDetailedReport_MonthlyGrouping() {
	ctx := context.Background()
	personID := uuid.NewString()
	person := &domain.Person{PersonID: personID, Name: "Ana"}
	categoryID := uuid.NewString()

	jan := time.Date(2024, time.January, 5, 10, 0, 0, 0, time.UTC)
	feb := time.Date(2024, time.February, 3, 9, 0, 0, 0, time.UTC)

	records := []domain.TransactionRecord{
		record(personID, "Ana", categoryID, "Salary", 100, domain.TypeRevenue, jan),
		record(personID, "Ana", categoryID, "Groceries", 40, domain.TypeExpense, jan.Add(48*time.Hour)),
		record(personID, "Ana", categoryID, "Salary", 50, domain.TypeRevenue, feb),
	}

	suite.mockPersonRepo.On("FindPersonByID", ctx, personID).Return(person, nil).Once()
	suite.mockTransactionRepo.On("FindTransactionRecords", ctx, mock.MatchedBy(func(filter portsrepo.TransactionFilter) bool {
		return filter.PersonID != nil && *filter.PersonID == personID
	})).Return(records, nil).Once()

	report, err := suite.service.DetailedReport(ctx, personID, nil, nil)

	suite.Require().NoError(err)
	suite.Equal("Ana", report.PersonName)
	suite.Require().Len(report.MonthlyGroups, 2)

	january := report.MonthlyGroups[0]
	suite.Equal(2024, january.Year)
	suite.Equal(1, january.Month)
	suite.Len(january.Transactions, 2)
	suite.True(january.TotalRevenue.Equal(decimal.NewFromInt(100)))
	suite.True(january.TotalExpense.Equal(decimal.NewFromInt(40)))
	suite.True(january.Balance.Equal(decimal.NewFromInt(60)))

	february := report.MonthlyGroups[1]
	suite.Equal(2024, february.Year)
	suite.Equal(2, february.Month)
	suite.Len(february.Transactions, 1)
	suite.True(february.Balance.Equal(decimal.NewFromInt(50)))

	suite.True(report.NetBalance.Equal(decimal.NewFromInt(110)))
}

func (suite *ReportingServiceTestSuite) TestDetailedReport_PersonWithoutTransactions() {
	ctx := context.Background()
	personID := uuid.NewString()
	person := &domain.Person{PersonID: personID, Name: "Ana"}

	suite.mockPersonRepo.On("FindPersonByID", ctx, personID).Return(person, nil).Once()
	suite.mockTransactionRepo.On("FindTransactionRecords", ctx, mock.AnythingOfType("repositories.TransactionFilter")).Return([]domain.TransactionRecord{}, nil).Once()

	report, err := suite.service.DetailedReport(ctx, personID, nil, nil)

	suite.Require().NoError(err)
	suite.Equal("Ana", report.PersonName)
	suite.Empty(report.MonthlyGroups)
	suite.True(report.NetBalance.Equal(decimal.Zero))
}

func (suite *ReportingServiceTestSuite) TestDetailedReport_PersonNotFound() {
	ctx := context.Background()
	personID := uuid.NewString()

	suite.mockPersonRepo.On("FindPersonByID", ctx, personID).Return(nil, apperrors.NewNotFound("person")).Once()

	report, err := suite.service.DetailedReport(ctx, personID, nil, nil)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "FindTransactionRecords")
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
