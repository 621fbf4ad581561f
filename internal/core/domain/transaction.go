package domain

import (
	"strings"
	"time"

	"github.com/expensetrackr/expense_tracker_app/internal/apperrors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is an expense or a revenue.
type TransactionType string

const (
	TypeExpense TransactionType = "EXPENSE"
	TypeRevenue TransactionType = "REVENUE"
)

const maxTransactionDescriptionLength = 400

// recentWindow is how long after creation a transaction counts as recent.
const recentWindow = 24 * time.Hour

// Transaction records an income or expense of one person against one category.
// The type is fixed at creation; description, amount and category may change
// later subject to the same rules.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"` // strictly positive
	Type          TransactionType `json:"type"`
	CategoryID    string          `json:"categoryID"` // FK -> Category
	PersonID      string          `json:"personID"`   // FK -> Person
	CreatedAt     time.Time       `json:"createdAt"`  // UTC, immutable
}

// NewTransaction constructs a validated Transaction with a fresh identifier
// and the given UTC creation time. Checks run in order and stop at the first
// failure: field-level validation, then the minor-revenue rule, then category
// purpose compatibility. A minor attempting revenue is always rejected; the
// rejection is warning-grade so the client can surface it distinctly.
func NewTransaction(
	description string,
	amount decimal.Decimal,
	txType TransactionType,
	category *Category,
	person *Person,
	now time.Time,
) (*Transaction, error) {
	if err := validateTransactionDescription(description); err != nil {
		return nil, err
	}
	if err := validateTransactionAmount(amount); err != nil {
		return nil, err
	}
	if err := validateTransactionType(txType); err != nil {
		return nil, err
	}

	if txType == TypeRevenue && !person.IsAdultAt(now) {
		return nil, apperrors.NewWarning("people under 18 cannot register revenue transactions")
	}
	if txType == TypeExpense && !category.SupportsExpense() {
		return nil, apperrors.NewRuleViolation("the selected category does not support expense transactions")
	}
	if txType == TypeRevenue && !category.SupportsRevenue() {
		return nil, apperrors.NewRuleViolation("the selected category does not support revenue transactions")
	}

	return &Transaction{
		TransactionID: uuid.NewString(),
		Description:   description,
		Amount:        amount,
		Type:          txType,
		CategoryID:    category.CategoryID,
		PersonID:      person.PersonID,
		CreatedAt:     now.UTC(),
	}, nil
}

// UpdateDescription changes the description, re-validating it.
func (t *Transaction) UpdateDescription(description string) error {
	if err := validateTransactionDescription(description); err != nil {
		return err
	}
	t.Description = description
	return nil
}

// UpdateAmount changes the amount, re-validating it.
func (t *Transaction) UpdateAmount(amount decimal.Decimal) error {
	if err := validateTransactionAmount(amount); err != nil {
		return err
	}
	t.Amount = amount
	return nil
}

// UpdateCategory moves the transaction to another category, re-checking
// purpose compatibility against the immutable transaction type.
func (t *Transaction) UpdateCategory(category *Category) error {
	if t.Type == TypeExpense && !category.SupportsExpense() {
		return apperrors.NewRuleViolation("the selected category does not support expense transactions")
	}
	if t.Type == TypeRevenue && !category.SupportsRevenue() {
		return apperrors.NewRuleViolation("the selected category does not support revenue transactions")
	}
	t.CategoryID = category.CategoryID
	return nil
}

// IsRecentAt reports whether the transaction was created within the last
// 24 hours relative to the given instant.
func (t *Transaction) IsRecentAt(at time.Time) bool {
	return at.Sub(t.CreatedAt) <= recentWindow
}

// IsRecent reports whether the transaction was created within the last 24 hours.
func (t *Transaction) IsRecent() bool {
	return t.IsRecentAt(time.Now().UTC())
}

func validateTransactionDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return apperrors.NewValidation("description must not be empty")
	}
	if len(description) > maxTransactionDescriptionLength {
		return apperrors.NewValidation("description must not exceed %d characters", maxTransactionDescriptionLength)
	}
	return nil
}

func validateTransactionAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return apperrors.NewValidation("transaction amount must be greater than zero")
	}
	return nil
}

func validateTransactionType(txType TransactionType) error {
	switch txType {
	case TypeExpense, TypeRevenue:
		return nil
	}
	return apperrors.NewValidation("invalid transaction type: %s", txType)
}
