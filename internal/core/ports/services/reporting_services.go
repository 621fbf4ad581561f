package services

import (
	"context"
	"time"

	"github.com/expensetrackr/expense_tracker_app/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// CategoriesReport aggregates revenue, expense and balance per category
	// over the optional inclusive [from, to] range. Categories with no
	// transactions do not appear.
	CategoriesReport(ctx context.Context, from, to *time.Time) (*domain.CategoriesReport, error)

	// PeopleReport aggregates revenue, expense and balance per person.
	// People with no transactions do not appear.
	PeopleReport(ctx context.Context) (*domain.PeopleReport, error)

	// OverallSummary totals revenue and expense across the whole ledger.
	OverallSummary(ctx context.Context) (*domain.OverallSummary, error)

	// DetailedReport groups one person's transactions by (year, month) over
	// the optional inclusive [from, to] range, ascending.
	DetailedReport(ctx context.Context, personID string, from, to *time.Time) (*domain.DetailedReport, error)
}
