package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/expensetrackr/expense_tracker_app/internal/apperrors"
	"github.com/expensetrackr/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/expensetrackr/expense_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// foreignKeyViolation is the PostgreSQL error code raised when deleting a
// category still referenced by transactions (ON DELETE RESTRICT).
const foreignKeyViolation = "23503"

// CategoryRepository persists categories in PostgreSQL.
type CategoryRepository struct {
	db *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Ensure CategoryRepository implements the facade
var _ portsrepo.CategoryRepositoryFacade = (*CategoryRepository)(nil)

func (r *CategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	query := `
        INSERT INTO categories (category_id, description, purpose, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.db.Exec(ctx, query,
		category.CategoryID,
		category.Description,
		category.Purpose,
		category.CreatedAt,
		category.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewPersistence(fmt.Errorf("failed to save category: %w", err))
	}
	return nil
}

func (r *CategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `
        SELECT category_id, description, purpose, created_at, last_updated_at
        FROM categories
        WHERE category_id = $1;
    `
	var category domain.Category
	err := r.db.QueryRow(ctx, query, categoryID).Scan(
		&category.CategoryID,
		&category.Description,
		&category.Purpose,
		&category.CreatedAt,
		&category.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("category")
		}
		return nil, apperrors.NewPersistence(fmt.Errorf("failed to find category by ID: %w", err))
	}
	return &category, nil
}

func (r *CategoryRepository) FindCategories(ctx context.Context) ([]domain.Category, error) {
	query := `
        SELECT category_id, description, purpose, created_at, last_updated_at
        FROM categories
        ORDER BY description;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewPersistence(fmt.Errorf("failed to query categories: %w", err))
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		err := rows.Scan(
			&category.CategoryID,
			&category.Description,
			&category.Purpose,
			&category.CreatedAt,
			&category.LastUpdatedAt,
		)
		if err != nil {
			return nil, apperrors.NewPersistence(fmt.Errorf("failed to scan category row: %w", err))
		}
		categories = append(categories, category)
	}

	if rows.Err() != nil {
		return nil, apperrors.NewPersistence(fmt.Errorf("error iterating category rows: %w", rows.Err()))
	}

	return categories, nil
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	query := `
        UPDATE categories
        SET description = $1, purpose = $2, last_updated_at = $3
        WHERE category_id = $4;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		category.Description,
		category.Purpose,
		category.LastUpdatedAt,
		category.CategoryID,
	)
	if err != nil {
		return apperrors.NewPersistence(fmt.Errorf("failed to execute update category query: %w", err))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("category")
	}
	return nil
}

func (r *CategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	query := `
        DELETE FROM categories
        WHERE category_id = $1;
    `
	cmdTag, err := r.db.Exec(ctx, query, categoryID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return apperrors.NewRuleViolation("category is in use by existing transactions and cannot be deleted")
		}
		return apperrors.NewPersistence(fmt.Errorf("failed to delete category: %w", err))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("category")
	}
	return nil
}
