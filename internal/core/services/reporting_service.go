package services

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/expensetrackr/expense_tracker_app/internal/apperrors"
	"github.com/expensetrackr/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/expensetrackr/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/expensetrackr/expense_tracker_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingService interface. The grouping
// and summing happens here, in the application, over the joined record view;
// SQL only filters and joins.
type reportingService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
	personRepo      portsrepo.PersonReader
}

// NewReportingService creates a new reporting service with the provided dependencies
func NewReportingService(transactionRepo portsrepo.TransactionReader, personRepo portsrepo.PersonReader) portssvc.ReportingService {
	return &reportingService{
		transactionRepo: transactionRepo,
		personRepo:      personRepo,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// CategoriesReport aggregates revenue, expense and balance per category.
// Only categories with at least one transaction in range appear.
func (s *reportingService) CategoriesReport(ctx context.Context, from, to *time.Time) (*domain.CategoriesReport, error) {
	if err := validateDateRange(from, to); err != nil {
		return nil, err
	}

	records, err := s.transactionRepo.FindTransactionRecords(ctx, portsrepo.TransactionFilter{From: from, To: inclusiveEnd(to)})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve transactions for categories report")
		return nil, err
	}

	byCategory := make(map[string]*domain.CategorySummary)
	for _, r := range records {
		summary, ok := byCategory[r.CategoryID]
		if !ok {
			summary = &domain.CategorySummary{
				CategoryID:          r.CategoryID,
				CategoryDescription: r.CategoryDescription,
				TotalRevenue:        decimal.Zero,
				TotalExpense:        decimal.Zero,
			}
			byCategory[r.CategoryID] = summary
		}
		switch r.Type {
		case domain.TypeRevenue:
			summary.TotalRevenue = summary.TotalRevenue.Add(r.Amount)
		case domain.TypeExpense:
			summary.TotalExpense = summary.TotalExpense.Add(r.Amount)
		}
	}

	report := &domain.CategoriesReport{
		CategorySummaries: make([]domain.CategorySummary, 0, len(byCategory)),
		OverallSummary:    zeroOverallSummary(),
	}
	for _, summary := range byCategory {
		summary.Balance = summary.TotalRevenue.Sub(summary.TotalExpense)
		report.CategorySummaries = append(report.CategorySummaries, *summary)
		report.TotalRevenue = report.TotalRevenue.Add(summary.TotalRevenue)
		report.TotalExpense = report.TotalExpense.Add(summary.TotalExpense)
	}
	report.NetBalance = report.TotalRevenue.Sub(report.TotalExpense)

	sort.Slice(report.CategorySummaries, func(i, j int) bool {
		return report.CategorySummaries[i].CategoryDescription < report.CategorySummaries[j].CategoryDescription
	})

	s.LogDebug(ctx, "Categories report generated", slog.Int("category_count", len(report.CategorySummaries)))
	return report, nil
}

// PeopleReport aggregates revenue, expense and balance per person.
// Only people with at least one transaction appear.
func (s *reportingService) PeopleReport(ctx context.Context) (*domain.PeopleReport, error) {
	records, err := s.transactionRepo.FindTransactionRecords(ctx, portsrepo.TransactionFilter{})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve transactions for people report")
		return nil, err
	}

	byPerson := make(map[string]*domain.PersonSummary)
	for _, r := range records {
		summary, ok := byPerson[r.PersonID]
		if !ok {
			summary = &domain.PersonSummary{
				PersonID:     r.PersonID,
				PersonName:   r.PersonName,
				TotalRevenue: decimal.Zero,
				TotalExpense: decimal.Zero,
			}
			byPerson[r.PersonID] = summary
		}
		switch r.Type {
		case domain.TypeRevenue:
			summary.TotalRevenue = summary.TotalRevenue.Add(r.Amount)
		case domain.TypeExpense:
			summary.TotalExpense = summary.TotalExpense.Add(r.Amount)
		}
	}

	report := &domain.PeopleReport{
		PersonSummaries: make([]domain.PersonSummary, 0, len(byPerson)),
		OverallSummary:  zeroOverallSummary(),
	}
	for _, summary := range byPerson {
		summary.Balance = summary.TotalRevenue.Sub(summary.TotalExpense)
		report.PersonSummaries = append(report.PersonSummaries, *summary)
		report.TotalRevenue = report.TotalRevenue.Add(summary.TotalRevenue)
		report.TotalExpense = report.TotalExpense.Add(summary.TotalExpense)
	}
	report.NetBalance = report.TotalRevenue.Sub(report.TotalExpense)

	sort.Slice(report.PersonSummaries, func(i, j int) bool {
		return report.PersonSummaries[i].PersonName < report.PersonSummaries[j].PersonName
	})

	s.LogDebug(ctx, "People report generated", slog.Int("person_count", len(report.PersonSummaries)))
	return report, nil
}

// OverallSummary totals revenue and expense across the entire ledger.
func (s *reportingService) OverallSummary(ctx context.Context) (*domain.OverallSummary, error) {
	records, err := s.transactionRepo.FindTransactionRecords(ctx, portsrepo.TransactionFilter{})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve transactions for overall summary")
		return nil, err
	}

	summary := zeroOverallSummary()
	for _, r := range records {
		switch r.Type {
		case domain.TypeRevenue:
			summary.TotalRevenue = summary.TotalRevenue.Add(r.Amount)
		case domain.TypeExpense:
			summary.TotalExpense = summary.TotalExpense.Add(r.Amount)
		}
	}
	summary.NetBalance = summary.TotalRevenue.Sub(summary.TotalExpense)

	return &summary, nil
}

// DetailedReport groups one person's transactions by (year, month), ascending.
// A person with no transactions yields an empty group list and a zero net
// balance; a person that does not exist yields a not-found error.
func (s *reportingService) DetailedReport(ctx context.Context, personID string, from, to *time.Time) (*domain.DetailedReport, error) {
	if err := validateDateRange(from, to); err != nil {
		return nil, err
	}

	person, err := s.personRepo.FindPersonByID(ctx, personID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find person for detailed report", slog.String("person_id", personID))
		}
		return nil, err
	}

	records, err := s.transactionRepo.FindTransactionRecords(ctx, portsrepo.TransactionFilter{
		PersonID: &personID,
		From:     from,
		To:       inclusiveEnd(to),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve transactions for detailed report", slog.String("person_id", personID))
		return nil, err
	}

	report := &domain.DetailedReport{
		PersonName:    person.Name,
		NetBalance:    decimal.Zero,
		MonthlyGroups: []domain.MonthlyGroup{},
	}

	// Records arrive ordered ascending by creation time, so consecutive
	// records sharing (year, month) form one group and groups come out in
	// ascending (year, month) order.
	var current *domain.MonthlyGroup
	for _, r := range records {
		year, month := r.CreatedAt.Year(), int(r.CreatedAt.Month())
		if current == nil || current.Year != year || current.Month != month {
			report.MonthlyGroups = append(report.MonthlyGroups, domain.MonthlyGroup{
				Year:         year,
				Month:        month,
				TotalRevenue: decimal.Zero,
				TotalExpense: decimal.Zero,
				Balance:      decimal.Zero,
			})
			current = &report.MonthlyGroups[len(report.MonthlyGroups)-1]
		}

		current.Transactions = append(current.Transactions, domain.TransactionDetail{
			Date:                r.CreatedAt,
			CategoryDescription: r.CategoryDescription,
			Description:         r.Description,
			Amount:              r.Amount,
			Type:                r.Type,
		})
		switch r.Type {
		case domain.TypeRevenue:
			current.TotalRevenue = current.TotalRevenue.Add(r.Amount)
		case domain.TypeExpense:
			current.TotalExpense = current.TotalExpense.Add(r.Amount)
		}
		current.Balance = current.TotalRevenue.Sub(current.TotalExpense)
	}

	for _, group := range report.MonthlyGroups {
		report.NetBalance = report.NetBalance.Add(group.Balance)
	}

	s.LogDebug(ctx, "Detailed report generated",
		slog.String("person_id", personID),
		slog.Int("group_count", len(report.MonthlyGroups)))
	return report, nil
}

// validateDateRange rejects ranges whose start is after their end.
func validateDateRange(from, to *time.Time) error {
	if from != nil && to != nil && from.After(*to) {
		return apperrors.NewValidation("start date cannot be after end date")
	}
	return nil
}

// inclusiveEnd widens a date bound to cover the entire end day, so the range
// is inclusive on both bounds.
func inclusiveEnd(to *time.Time) *time.Time {
	if to == nil {
		return nil
	}
	y, m, d := to.UTC().Date()
	end := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1).Add(-time.Nanosecond)
	return &end
}

func zeroOverallSummary() domain.OverallSummary {
	return domain.OverallSummary{
		TotalRevenue: decimal.Zero,
		TotalExpense: decimal.Zero,
		NetBalance:   decimal.Zero,
	}
}
