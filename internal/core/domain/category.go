package domain

import (
	"strings"
	"time"

	"github.com/expensetrackr/expense_tracker_app/internal/apperrors"
	"github.com/google/uuid"
)

// CategoryPurpose governs which transaction types a category may be used for.
type CategoryPurpose string

const (
	PurposeExpense CategoryPurpose = "EXPENSE"
	PurposeRevenue CategoryPurpose = "REVENUE"
	PurposeBoth    CategoryPurpose = "BOTH"
)

const maxCategoryDescriptionLength = 400

// Category classifies transactions.
type Category struct {
	CategoryID  string          `json:"categoryID"` // Primary Key (UUID)
	Description string          `json:"description"`
	Purpose     CategoryPurpose `json:"purpose"`
	AuditFields
}

// NewCategory constructs a validated Category with a fresh identifier.
func NewCategory(description string, purpose CategoryPurpose, now time.Time) (*Category, error) {
	if err := validateCategoryDescription(description); err != nil {
		return nil, err
	}
	if err := validateCategoryPurpose(purpose); err != nil {
		return nil, err
	}

	return &Category{
		CategoryID:  uuid.NewString(),
		Description: description,
		Purpose:     purpose,
		AuditFields: AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}, nil
}

// UpdateDescription changes the category description, re-validating it.
func (c *Category) UpdateDescription(description string, now time.Time) error {
	if err := validateCategoryDescription(description); err != nil {
		return err
	}
	c.Description = description
	c.LastUpdatedAt = now
	return nil
}

// UpdatePurpose changes the category purpose, re-validating it.
// Compatibility with existing transactions is not re-checked here; new and
// updated transactions are validated against the purpose at that time.
func (c *Category) UpdatePurpose(purpose CategoryPurpose, now time.Time) error {
	if err := validateCategoryPurpose(purpose); err != nil {
		return err
	}
	c.Purpose = purpose
	c.LastUpdatedAt = now
	return nil
}

// SupportsExpense reports whether expense transactions may use this category.
func (c *Category) SupportsExpense() bool {
	return c.Purpose == PurposeExpense || c.Purpose == PurposeBoth
}

// SupportsRevenue reports whether revenue transactions may use this category.
func (c *Category) SupportsRevenue() bool {
	return c.Purpose == PurposeRevenue || c.Purpose == PurposeBoth
}

func validateCategoryDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return apperrors.NewValidation("description must not be empty")
	}
	if len(description) > maxCategoryDescriptionLength {
		return apperrors.NewValidation("description must not exceed %d characters", maxCategoryDescriptionLength)
	}
	return nil
}

func validateCategoryPurpose(purpose CategoryPurpose) error {
	switch purpose {
	case PurposeExpense, PurposeRevenue, PurposeBoth:
		return nil
	}
	return apperrors.NewValidation("invalid category purpose: %s", purpose)
}
