package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/expensetrackr/expense_tracker_app/internal/core/ports/services"
	"github.com/expensetrackr/expense_tracker_app/internal/dto"
	"github.com/expensetrackr/expense_tracker_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// categoryHandler handles HTTP requests related to categories.
type categoryHandler struct {
	categoryService  portssvc.CategorySvcFacade
	reportingService portssvc.ReportingService
}

// newCategoryHandler creates a new categoryHandler.
func newCategoryHandler(cs portssvc.CategorySvcFacade, rs portssvc.ReportingService) *categoryHandler {
	return &categoryHandler{
		categoryService:  cs,
		reportingService: rs,
	}
}

// registerCategoryRoutes registers all category-related routes.
func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade, reportingService portssvc.ReportingService) {
	h := newCategoryHandler(categoryService, reportingService)

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.GET("/totals", h.categoryTotals)
		categories.GET("/:categoryID", h.getCategory)
		categories.PUT("/:categoryID", h.updateCategory)
		categories.DELETE("/:categoryID", h.deleteCategory)
	}
}

// createCategory godoc
// @Summary Create a new category
// @Description Registers a new category with a description and purpose
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.Result[dto.CategoryResponse]
// @Failure 400 {object} dto.Result[any] "Invalid input"
// @Failure 500 {object} dto.Result[any] "Failed to create category"
// @Router /categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create category request", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create category in service", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Category created successfully", slog.String("category_id", category.CategoryID))
	respondSuccess(c, http.StatusCreated, dto.ToCategoryResponse(category))
}

// getCategory godoc
// @Summary Get a category by ID
// @Description Retrieves details for a specific category
// @Tags categories
// @Produce  json
// @Param   categoryID path string true "Category ID"
// @Success 200 {object} dto.Result[dto.CategoryResponse]
// @Failure 404 {object} dto.Result[any] "Category not found"
// @Failure 500 {object} dto.Result[any] "Failed to retrieve category"
// @Router /categories/{categoryID} [get]
func (h *categoryHandler) getCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID := c.Param("categoryID")

	category, err := h.categoryService.GetCategoryByID(c.Request.Context(), categoryID)
	if err != nil {
		logger.Warn("Failed to get category", slog.String("category_id", categoryID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToCategoryResponse(category))
}

// listCategories godoc
// @Summary List categories
// @Description Retrieves all categories ordered by description
// @Tags categories
// @Produce  json
// @Success 200 {object} dto.Result[dto.ListCategoriesResponse]
// @Failure 500 {object} dto.Result[any] "Failed to list categories"
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list categories", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToListCategoriesResponse(categories))
}

// updateCategory godoc
// @Summary Update a category
// @Description Updates a category's description and/or purpose
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   categoryID path string true "Category ID"
// @Param   category body dto.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} dto.Result[dto.CategoryResponse]
// @Failure 400 {object} dto.Result[any] "Invalid input"
// @Failure 404 {object} dto.Result[any] "Category not found"
// @Failure 500 {object} dto.Result[any] "Failed to update category"
// @Router /categories/{categoryID} [put]
func (h *categoryHandler) updateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID := c.Param("categoryID")

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update category request", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), categoryID, req)
	if err != nil {
		logger.Error("Failed to update category in service", slog.String("category_id", categoryID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Category updated successfully", slog.String("category_id", categoryID))
	respondSuccess(c, http.StatusOK, dto.ToCategoryResponse(category))
}

// deleteCategory godoc
// @Summary Delete a category
// @Description Removes a category that is not referenced by any transaction
// @Tags categories
// @Produce  json
// @Param   categoryID path string true "Category ID"
// @Success 204 "Category deleted"
// @Failure 400 {object} dto.Result[any] "Category is in use"
// @Failure 404 {object} dto.Result[any] "Category not found"
// @Failure 500 {object} dto.Result[any] "Failed to delete category"
// @Router /categories/{categoryID} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID := c.Param("categoryID")

	if err := h.categoryService.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		logger.Error("Failed to delete category", slog.String("category_id", categoryID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Category deleted successfully", slog.String("category_id", categoryID))
	c.Status(http.StatusNoContent)
}

// categoryTotals godoc
// @Summary Category totals report
// @Description Aggregates revenue, expense and balance per category, with overall totals
// @Tags categories
// @Produce  json
// @Success 200 {object} dto.Result[dto.CategoriesReportResponse]
// @Failure 500 {object} dto.Result[any] "Failed to build report"
// @Router /categories/totals [get]
func (h *categoryHandler) categoryTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.CategoriesReport(c.Request.Context(), nil, nil)
	if err != nil {
		logger.Error("Failed to build categories report", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToCategoriesReportResponse(report))
}
