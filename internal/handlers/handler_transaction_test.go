package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/expensetrackr/expense_tracker_app/internal/apperrors"
	"github.com/expensetrackr/expense_tracker_app/internal/core/domain"
	portssvc "github.com/expensetrackr/expense_tracker_app/internal/core/ports/services"
	"github.com/expensetrackr/expense_tracker_app/internal/dto"
	"github.com/expensetrackr/expense_tracker_app/internal/handlers"
	"github.com/expensetrackr/expense_tracker_app/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, personID *string, from, to *time.Time) ([]domain.TransactionRecord, error) {
	args := m.Called(ctx, personID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionRecord), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) CategoriesReport(ctx context.Context, from, to *time.Time) (*domain.CategoriesReport, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CategoriesReport), args.Error(1)
}

func (m *MockReportingService) PeopleReport(ctx context.Context) (*domain.PeopleReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeopleReport), args.Error(1)
}

func (m *MockReportingService) OverallSummary(ctx context.Context) (*domain.OverallSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OverallSummary), args.Error(1)
}

func (m *MockReportingService) DetailedReport(ctx context.Context, personID string, from, to *time.Time) (*domain.DetailedReport, error) {
	args := m.Called(ctx, personID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DetailedReport), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ReportingService = (*MockReportingService)(nil)

// envelope mirrors dto.Result for decoding responses in assertions.
type envelope struct {
	IsSuccess bool            `json:"isSuccess"`
	Data      json.RawMessage `json:"data"`
	Message   string          `json:"message"`
	Type      string          `json:"type"`
}

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router                 *gin.Engine
	mockTransactionService *MockTransactionService
	mockReportingService   *MockReportingService
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockTransactionService = new(MockTransactionService)
	suite.mockReportingService = new(MockReportingService)

	cfg := &config.Config{IsProduction: true, RateLimit: "100-M"}
	services := &portssvc.ServiceContainer{
		Transaction: suite.mockTransactionService,
		Reporting:   suite.mockReportingService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *TransactionHandlerTestSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TransactionHandlerTestSuite) decodeEnvelope(w *httptest.ResponseRecorder) envelope {
	var env envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Created() {
	transaction := &domain.Transaction{
		TransactionID: uuid.NewString(),
		Description:   "Supermarket",
		Amount:        decimal.NewFromInt(50),
		Type:          domain.TypeExpense,
		CategoryID:    uuid.NewString(),
		PersonID:      uuid.NewString(),
		CreatedAt:     time.Now().UTC(),
	}
	suite.mockTransactionService.On("CreateTransaction", mock.Anything, mock.AnythingOfType("dto.CreateTransactionRequest")).Return(transaction, nil).Once()

	w := suite.postJSON("/api/v1/transactions", gin.H{
		"description": "Supermarket",
		"amount":      "50",
		"type":        "EXPENSE",
		"categoryID":  transaction.CategoryID,
		"personID":    transaction.PersonID,
	})

	suite.Equal(http.StatusCreated, w.Code)
	env := suite.decodeEnvelope(w)
	suite.True(env.IsSuccess)
	suite.Equal("success", env.Type)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_MinorRevenueIsConflictWarning() {
	suite.mockTransactionService.On("CreateTransaction", mock.Anything, mock.AnythingOfType("dto.CreateTransactionRequest")).
		Return(nil, apperrors.NewWarning("people under 18 cannot register revenue transactions")).Once()

	w := suite.postJSON("/api/v1/transactions", gin.H{
		"description": "Allowance",
		"amount":      "20",
		"type":        "REVENUE",
		"categoryID":  uuid.NewString(),
		"personID":    uuid.NewString(),
	})

	suite.Equal(http.StatusConflict, w.Code)
	env := suite.decodeEnvelope(w)
	suite.False(env.IsSuccess)
	suite.Equal("warning", env.Type)
	suite.Contains(env.Message, "under 18")
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_IncompatibleCategoryIsBadRequest() {
	suite.mockTransactionService.On("CreateTransaction", mock.Anything, mock.AnythingOfType("dto.CreateTransactionRequest")).
		Return(nil, apperrors.NewRuleViolation("the selected category does not support expense transactions")).Once()

	w := suite.postJSON("/api/v1/transactions", gin.H{
		"description": "Supermarket",
		"amount":      "50",
		"type":        "EXPENSE",
		"categoryID":  uuid.NewString(),
		"personID":    uuid.NewString(),
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	env := suite.decodeEnvelope(w)
	suite.False(env.IsSuccess)
	suite.Equal("error", env.Type)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_PersonNotFound() {
	suite.mockTransactionService.On("CreateTransaction", mock.Anything, mock.AnythingOfType("dto.CreateTransactionRequest")).
		Return(nil, apperrors.NewNotFound("person")).Once()

	w := suite.postJSON("/api/v1/transactions", gin.H{
		"description": "Supermarket",
		"amount":      "50",
		"type":        "EXPENSE",
		"categoryID":  uuid.NewString(),
		"personID":    uuid.NewString(),
	})

	suite.Equal(http.StatusNotFound, w.Code)
	env := suite.decodeEnvelope(w)
	suite.False(env.IsSuccess)
	suite.Equal("error", env.Type)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_MalformedBody() {
	w := suite.postJSON("/api/v1/transactions", gin.H{
		"description": "Supermarket",
		// amount, type, person and category missing
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	env := suite.decodeEnvelope(w)
	suite.False(env.IsSuccess)
	suite.Equal("error", env.Type)
	suite.mockTransactionService.AssertNotCalled(suite.T(), "CreateTransaction")
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_PersistenceFailureHidesCause() {
	suite.mockTransactionService.On("CreateTransaction", mock.Anything, mock.AnythingOfType("dto.CreateTransactionRequest")).
		Return(nil, apperrors.NewPersistence(context.DeadlineExceeded)).Once()

	w := suite.postJSON("/api/v1/transactions", gin.H{
		"description": "Supermarket",
		"amount":      "50",
		"type":        "EXPENSE",
		"categoryID":  uuid.NewString(),
		"personID":    uuid.NewString(),
	})

	suite.Equal(http.StatusInternalServerError, w.Code)
	env := suite.decodeEnvelope(w)
	suite.False(env.IsSuccess)
	suite.NotContains(env.Message, "deadline")
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_OK() {
	transactionID := uuid.NewString()
	transaction := &domain.Transaction{
		TransactionID: transactionID,
		Description:   "Supermarket",
		Amount:        decimal.NewFromInt(50),
		Type:          domain.TypeExpense,
		CreatedAt:     time.Now().UTC(),
	}
	suite.mockTransactionService.On("GetTransactionByID", mock.Anything, transactionID).Return(transaction, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions/"+transactionID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	env := suite.decodeEnvelope(w)
	suite.True(env.IsSuccess)

	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &resp))
	suite.Equal(transactionID, resp.TransactionID)
	suite.True(resp.IsRecent)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_BadDateParam() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions?startDate=15-06-2024", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTransactionService.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *TransactionHandlerTestSuite) TestPersonReport_NotFound() {
	personID := uuid.NewString()
	suite.mockReportingService.On("DetailedReport", mock.Anything, personID, (*time.Time)(nil), (*time.Time)(nil)).
		Return(nil, apperrors.NewNotFound("person")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions/person/"+personID+"/report", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestPersonReport_OK() {
	personID := uuid.NewString()
	report := &domain.DetailedReport{
		PersonName: "Ana",
		NetBalance: decimal.NewFromInt(110),
		MonthlyGroups: []domain.MonthlyGroup{
			{
				Year:         2024,
				Month:        1,
				TotalRevenue: decimal.NewFromInt(100),
				TotalExpense: decimal.NewFromInt(40),
				Balance:      decimal.NewFromInt(60),
			},
		},
	}
	suite.mockReportingService.On("DetailedReport", mock.Anything, personID, (*time.Time)(nil), (*time.Time)(nil)).
		Return(report, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions/person/"+personID+"/report", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	env := suite.decodeEnvelope(w)
	suite.True(env.IsSuccess)

	var resp dto.DetailedReportResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &resp))
	suite.Equal("Ana", resp.PersonName)
	suite.Require().Len(resp.MonthlyGroups, 1)
	suite.Equal(2024, resp.MonthlyGroups[0].Year)
	suite.mockReportingService.AssertExpectations(suite.T())
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
