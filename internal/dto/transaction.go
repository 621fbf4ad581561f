package dto

import (
	"time"

	"github.com/expensetrackr/expense_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to create a new transaction.
type CreateTransactionRequest struct {
	Description string                 `json:"description" binding:"required,max=400"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Type        domain.TransactionType `json:"type" binding:"required,oneof=EXPENSE REVENUE"`
	CategoryID  string                 `json:"categoryID" binding:"required,uuid"`
	PersonID    string                 `json:"personID" binding:"required,uuid"`
}

// UpdateTransactionRequest defines the data allowed for updating a transaction.
// The type is deliberately absent: it is immutable after creation.
type UpdateTransactionRequest struct {
	Description *string          `json:"description" binding:"omitempty,max=400"`
	Amount      *decimal.Decimal `json:"amount"`
	CategoryID  *string          `json:"categoryID" binding:"omitempty,uuid"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	PersonID  *string `form:"personId" binding:"omitempty,uuid"`
	StartDate *string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	Description   string                 `json:"description"`
	Amount        decimal.Decimal        `json:"amount"`
	Type          domain.TransactionType `json:"type"`
	CategoryID    string                 `json:"categoryID"`
	PersonID      string                 `json:"personID"`
	CreatedAt     time.Time              `json:"createdAt"`
	IsRecent      bool                   `json:"isRecent"`
}

// TransactionRecordResponse is a transaction with its person and category
// names, as returned by list endpoints for display.
type TransactionRecordResponse struct {
	TransactionID       string                 `json:"transactionID"`
	Description         string                 `json:"description"`
	Amount              decimal.Decimal        `json:"amount"`
	Type                domain.TransactionType `json:"type"`
	CreatedAt           time.Time              `json:"createdAt"`
	CategoryID          string                 `json:"categoryID"`
	CategoryDescription string                 `json:"categoryDescription"`
	PersonID            string                 `json:"personID"`
	PersonName          string                 `json:"personName"`
}

// ListTransactionsResponse wraps the list of transaction records.
type ListTransactionsResponse struct {
	Transactions []TransactionRecordResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Description:   t.Description,
		Amount:        t.Amount,
		Type:          t.Type,
		CategoryID:    t.CategoryID,
		PersonID:      t.PersonID,
		CreatedAt:     t.CreatedAt,
		IsRecent:      t.IsRecent(),
	}
}

// ToListTransactionsResponse converts domain records to ListTransactionsResponse DTO
func ToListTransactionsResponse(records []domain.TransactionRecord) ListTransactionsResponse {
	responses := make([]TransactionRecordResponse, len(records))
	for i, r := range records {
		responses[i] = TransactionRecordResponse{
			TransactionID:       r.TransactionID,
			Description:         r.Description,
			Amount:              r.Amount,
			Type:                r.Type,
			CreatedAt:           r.CreatedAt,
			CategoryID:          r.CategoryID,
			CategoryDescription: r.CategoryDescription,
			PersonID:            r.PersonID,
			PersonName:          r.PersonName,
		}
	}
	return ListTransactionsResponse{Transactions: responses}
}
