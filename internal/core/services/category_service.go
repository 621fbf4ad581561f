package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/expensetrackr/expense_tracker_app/internal/apperrors"
	"github.com/expensetrackr/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/expensetrackr/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/expensetrackr/expense_tracker_app/internal/core/ports/services"
	"github.com/expensetrackr/expense_tracker_app/internal/dto"
)

// categoryService implements the CategorySvcFacade interface
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service with the provided dependencies
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

// Ensure categoryService implements the CategorySvcFacade interface
var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

// CreateCategory validates and persists a new category.
func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	now := time.Now().UTC()

	category, err := domain.NewCategory(req.Description, req.Purpose, now)
	if err != nil {
		s.LogDebug(ctx, "Category creation rejected", slog.String("reason", err.Error()))
		return nil, err
	}

	if err := s.categoryRepo.SaveCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("category_id", category.CategoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Category created successfully", slog.String("category_id", category.CategoryID))
	return category, nil
}

// GetCategoryByID retrieves a category by ID
func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find category by ID", slog.String("category_id", categoryID))
		}
		return nil, err
	}
	return category, nil
}

// ListCategories retrieves all categories
func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.FindCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, err
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

// UpdateCategory updates a category's description and/or purpose, re-validating.
func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find category for update", slog.String("category_id", categoryID))
		}
		return nil, err
	}

	now := time.Now().UTC()

	if req.Description != nil {
		if err := category.UpdateDescription(*req.Description, now); err != nil {
			return nil, err
		}
	}
	if req.Purpose != nil {
		if err := category.UpdatePurpose(*req.Purpose, now); err != nil {
			return nil, err
		}
	}

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Category updated successfully", slog.String("category_id", categoryID))
	return category, nil
}

// DeleteCategory removes a category. A category still referenced by
// transactions is not deleted; the repository surfaces that as a rule
// violation so no transaction is ever orphaned.
func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrRuleViolation) {
			s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		}
		return err
	}

	s.LogInfo(ctx, "Category deleted successfully", slog.String("category_id", categoryID))
	return nil
}
