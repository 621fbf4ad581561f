package repositories

import (
	"context"

	"github.com/expensetrackr/expense_tracker_app/internal/core/domain"
)

// CategoryReader defines read operations for category data
type CategoryReader interface {
	// FindCategoryByID retrieves a specific category by its ID.
	// Returns apperrors.ErrNotFound when the category does not exist.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// FindCategories retrieves all categories, ordered by description.
	FindCategories(ctx context.Context) ([]domain.Category, error)
}

// CategoryWriter defines write operations for category data
type CategoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// UpdateCategory updates an existing category's details.
	UpdateCategory(ctx context.Context, category domain.Category) error
}

// CategoryLifecycleManager defines operations for managing category lifecycle
type CategoryLifecycleManager interface {
	// DeleteCategory removes a category. The storage layer restricts the
	// delete while transactions reference the category; that is surfaced as
	// a rule violation rather than orphaning transactions.
	DeleteCategory(ctx context.Context, categoryID string) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
	CategoryLifecycleManager
}
