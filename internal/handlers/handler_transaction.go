package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/expensetrackr/expense_tracker_app/internal/apperrors"
	portssvc "github.com/expensetrackr/expense_tracker_app/internal/core/ports/services"
	"github.com/expensetrackr/expense_tracker_app/internal/dto"
	"github.com/expensetrackr/expense_tracker_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	reportingService   portssvc.ReportingService
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade, rs portssvc.ReportingService) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
		reportingService:   rs,
	}
}

// registerTransactionRoutes registers all transaction-related routes.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade, reportingService portssvc.ReportingService) {
	h := newTransactionHandler(transactionService, reportingService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:transactionID", h.getTransaction)
		transactions.PUT("/:transactionID", h.updateTransaction)
		transactions.GET("/person/:personID/report", h.personReport)
	}
}

// createTransaction godoc
// @Summary Create a new transaction
// @Description Validates and registers a new expense or revenue transaction
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.Result[dto.TransactionResponse]
// @Failure 400 {object} dto.Result[any] "Invalid input or incompatible category"
// @Failure 404 {object} dto.Result[any] "Person or category not found"
// @Failure 409 {object} dto.Result[any] "Minor attempting a revenue transaction"
// @Failure 500 {object} dto.Result[any] "Failed to create transaction"
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create transaction request", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	transaction, err := h.transactionService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Failed to create transaction", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Transaction created successfully", slog.String("transaction_id", transaction.TransactionID))
	respondSuccess(c, http.StatusCreated, dto.ToTransactionResponse(transaction))
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Description Retrieves details for a specific transaction
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.Result[dto.TransactionResponse]
// @Failure 404 {object} dto.Result[any] "Transaction not found"
// @Failure 500 {object} dto.Result[any] "Failed to retrieve transaction"
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	transaction, err := h.transactionService.GetTransactionByID(c.Request.Context(), transactionID)
	if err != nil {
		logger.Warn("Failed to get transaction", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToTransactionResponse(transaction))
}

// listTransactions godoc
// @Summary List transactions
// @Description Retrieves transactions with person and category names, optionally filtered by person and inclusive date range
// @Tags transactions
// @Produce  json
// @Param   personId query string false "Filter by person ID"
// @Param   startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.Result[dto.ListTransactionsResponse]
// @Failure 400 {object} dto.Result[any] "Invalid filter parameters"
// @Failure 500 {object} dto.Result[any] "Failed to list transactions"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Error("Failed to bind query for list transactions request", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	from, to, err := parseRangeParams(params.StartDate, params.EndDate)
	if err != nil {
		respondError(c, err)
		return
	}

	records, err := h.transactionService.ListTransactions(c.Request.Context(), params.PersonID, from, to)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToListTransactionsResponse(records))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Updates a transaction's description, amount and/or category; the type is immutable
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.Result[dto.TransactionResponse]
// @Failure 400 {object} dto.Result[any] "Invalid input or incompatible category"
// @Failure 404 {object} dto.Result[any] "Transaction or category not found"
// @Failure 500 {object} dto.Result[any] "Failed to update transaction"
// @Router /transactions/{transactionID} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update transaction request", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(c.Request.Context(), transactionID, req)
	if err != nil {
		logger.Warn("Failed to update transaction", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Transaction updated successfully", slog.String("transaction_id", transactionID))
	respondSuccess(c, http.StatusOK, dto.ToTransactionResponse(transaction))
}

// personReport godoc
// @Summary Detailed report for a person
// @Description Groups one person's transactions by month with per-group and overall balances
// @Tags transactions
// @Produce  json
// @Param   personID path string true "Person ID"
// @Param   startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.Result[dto.DetailedReportResponse]
// @Failure 400 {object} dto.Result[any] "Invalid date range"
// @Failure 404 {object} dto.Result[any] "Person not found"
// @Failure 500 {object} dto.Result[any] "Failed to build report"
// @Router /transactions/person/{personID}/report [get]
func (h *transactionHandler) personReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	personID := c.Param("personID")

	var params dto.ReportRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Error("Failed to bind query for person report request", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	from, to, err := parseRangeParams(params.StartDate, params.EndDate)
	if err != nil {
		respondError(c, err)
		return
	}

	report, err := h.reportingService.DetailedReport(c.Request.Context(), personID, from, to)
	if err != nil {
		logger.Warn("Failed to build detailed report", slog.String("person_id", personID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToDetailedReportResponse(report))
}

// parseRangeParams converts optional YYYY-MM-DD query values to time bounds.
// Binding has already checked the format, so parse failures do not occur for
// bound params; the helper still reports them as validation errors.
func parseRangeParams(startDate, endDate *string) (*time.Time, *time.Time, error) {
	from, err := parseDateParam(startDate)
	if err != nil {
		return nil, nil, err
	}
	to, err := parseDateParam(endDate)
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func parseDateParam(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", *value, time.UTC)
	if err != nil {
		return nil, apperrors.NewValidation("invalid date %q, expected YYYY-MM-DD", *value)
	}
	return &t, nil
}
