package dto

import (
	"time"

	"github.com/expensetrackr/expense_tracker_app/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a new category.
type CreateCategoryRequest struct {
	Description string                 `json:"description" binding:"required,max=400"`
	Purpose     domain.CategoryPurpose `json:"purpose" binding:"required,oneof=EXPENSE REVENUE BOTH"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateCategoryRequest struct {
	Description *string                 `json:"description" binding:"omitempty,max=400"`
	Purpose     *domain.CategoryPurpose `json:"purpose" binding:"omitempty,oneof=EXPENSE REVENUE BOTH"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID  string                 `json:"categoryID"`
	Description string                 `json:"description"`
	Purpose     domain.CategoryPurpose `json:"purpose"`
	CreatedAt   time.Time              `json:"createdAt"`
}

// ListCategoriesResponse wraps the list of categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:  c.CategoryID,
		Description: c.Description,
		Purpose:     c.Purpose,
		CreatedAt:   c.CreatedAt,
	}
}

// ToListCategoriesResponse converts a slice of domain.Category to ListCategoriesResponse DTO
func ToListCategoriesResponse(categories []domain.Category) ListCategoriesResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return ListCategoriesResponse{Categories: responses}
}
