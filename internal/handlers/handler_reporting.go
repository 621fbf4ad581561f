package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/expensetrackr/expense_tracker_app/internal/core/ports/services"
	"github.com/expensetrackr/expense_tracker_app/internal/dto"
	"github.com/expensetrackr/expense_tracker_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for ledger-wide reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.summary)
		reports.GET("/categories", h.categoriesReport)
	}
}

// summary godoc
// @Summary Overall ledger summary
// @Description Totals revenue and expense across all transactions
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.Result[dto.ReportSummaryResponse]
// @Failure 500 {object} dto.Result[any] "Failed to build summary"
// @Router /reports/summary [get]
func (h *reportingHandler) summary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.OverallSummary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build overall summary", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToReportSummaryResponse(summary))
}

// categoriesReport godoc
// @Summary Categories report
// @Description Aggregates revenue, expense and balance per category over an optional inclusive date range
// @Tags reports
// @Produce  json
// @Param   startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.Result[dto.CategoriesReportResponse]
// @Failure 400 {object} dto.Result[any] "Invalid date range"
// @Failure 500 {object} dto.Result[any] "Failed to build report"
// @Router /reports/categories [get]
func (h *reportingHandler) categoriesReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ReportRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Error("Failed to bind query for categories report request", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	from, to, err := parseRangeParams(params.StartDate, params.EndDate)
	if err != nil {
		respondError(c, err)
		return
	}

	report, err := h.reportingService.CategoriesReport(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to build categories report", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToCategoriesReportResponse(report))
}
