package dto

import (
	"github.com/expensetrackr/expense_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportRangeParams defines the optional inclusive date range accepted by
// report endpoints.
type ReportRangeParams struct {
	StartDate *string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// CategorySummaryResponse is one row of the categories report.
type CategorySummaryResponse struct {
	CategoryID          string          `json:"categoryId"`
	CategoryDescription string          `json:"categoryDescription"`
	TotalRevenue        decimal.Decimal `json:"totalRevenue"`
	TotalExpense        decimal.Decimal `json:"totalExpense"`
	Balance             decimal.Decimal `json:"balance"`
}

// CategoriesReportResponse wraps the per-category rows with overall totals.
type CategoriesReportResponse struct {
	CategorySummaries []CategorySummaryResponse `json:"categorySummaries"`
	TotalRevenue      decimal.Decimal           `json:"totalRevenue"`
	TotalExpense      decimal.Decimal           `json:"totalExpense"`
	NetBalance        decimal.Decimal           `json:"netBalance"`
}

// PersonSummaryResponse is one row of the people report.
type PersonSummaryResponse struct {
	PersonID     string          `json:"personId"`
	PersonName   string          `json:"personName"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Balance      decimal.Decimal `json:"balance"`
}

// PeopleReportResponse wraps the per-person rows with overall totals.
type PeopleReportResponse struct {
	PeopleSummaries []PersonSummaryResponse `json:"peopleSummaries"`
	TotalRevenue    decimal.Decimal         `json:"totalRevenue"`
	TotalExpense    decimal.Decimal         `json:"totalExpense"`
	NetBalance      decimal.Decimal         `json:"netBalance"`
}

// ReportSummaryResponse is the overall ledger summary.
type ReportSummaryResponse struct {
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetBalance   decimal.Decimal `json:"netBalance"`
}

// TransactionDetailResponse is one line of a monthly group.
type TransactionDetailResponse struct {
	Date        string                 `json:"date"`
	Category    string                 `json:"category"`
	Description string                 `json:"description"`
	Value       decimal.Decimal        `json:"value"`
	Type        domain.TransactionType `json:"type"`
}

// MonthlyGroupResponse is one (year, month) group of the detailed report.
type MonthlyGroupResponse struct {
	Year         int                         `json:"year"`
	Month        int                         `json:"month"`
	TotalRevenue decimal.Decimal             `json:"totalRevenue"`
	TotalExpense decimal.Decimal             `json:"totalExpense"`
	Balance      decimal.Decimal             `json:"balance"`
	Transactions []TransactionDetailResponse `json:"transactions"`
}

// DetailedReportResponse is a person's monthly-grouped transaction history.
type DetailedReportResponse struct {
	PersonName    string                 `json:"personName"`
	NetBalance    decimal.Decimal        `json:"netBalance"`
	MonthlyGroups []MonthlyGroupResponse `json:"monthlyGroups"`
}

// ToCategoriesReportResponse converts a domain categories report to its DTO
func ToCategoriesReportResponse(report *domain.CategoriesReport) CategoriesReportResponse {
	summaries := make([]CategorySummaryResponse, len(report.CategorySummaries))
	for i, s := range report.CategorySummaries {
		summaries[i] = CategorySummaryResponse{
			CategoryID:          s.CategoryID,
			CategoryDescription: s.CategoryDescription,
			TotalRevenue:        s.TotalRevenue,
			TotalExpense:        s.TotalExpense,
			Balance:             s.Balance,
		}
	}
	return CategoriesReportResponse{
		CategorySummaries: summaries,
		TotalRevenue:      report.TotalRevenue,
		TotalExpense:      report.TotalExpense,
		NetBalance:        report.NetBalance,
	}
}

// ToPeopleReportResponse converts a domain people report to its DTO
func ToPeopleReportResponse(report *domain.PeopleReport) PeopleReportResponse {
	summaries := make([]PersonSummaryResponse, len(report.PersonSummaries))
	for i, s := range report.PersonSummaries {
		summaries[i] = PersonSummaryResponse{
			PersonID:     s.PersonID,
			PersonName:   s.PersonName,
			TotalRevenue: s.TotalRevenue,
			TotalExpense: s.TotalExpense,
			Balance:      s.Balance,
		}
	}
	return PeopleReportResponse{
		PeopleSummaries: summaries,
		TotalRevenue:    report.TotalRevenue,
		TotalExpense:    report.TotalExpense,
		NetBalance:      report.NetBalance,
	}
}

// ToReportSummaryResponse converts a domain overall summary to its DTO
func ToReportSummaryResponse(summary *domain.OverallSummary) ReportSummaryResponse {
	return ReportSummaryResponse{
		TotalRevenue: summary.TotalRevenue,
		TotalExpense: summary.TotalExpense,
		NetBalance:   summary.NetBalance,
	}
}

// ToDetailedReportResponse converts a domain detailed report to its DTO
func ToDetailedReportResponse(report *domain.DetailedReport) DetailedReportResponse {
	groups := make([]MonthlyGroupResponse, len(report.MonthlyGroups))
	for i, g := range report.MonthlyGroups {
		details := make([]TransactionDetailResponse, len(g.Transactions))
		for j, d := range g.Transactions {
			details[j] = TransactionDetailResponse{
				Date:        d.Date.Format("2006-01-02"),
				Category:    d.CategoryDescription,
				Description: d.Description,
				Value:       d.Amount,
				Type:        d.Type,
			}
		}
		groups[i] = MonthlyGroupResponse{
			Year:         g.Year,
			Month:        g.Month,
			TotalRevenue: g.TotalRevenue,
			TotalExpense: g.TotalExpense,
			Balance:      g.Balance,
			Transactions: details,
		}
	}
	return DetailedReportResponse{
		PersonName:    report.PersonName,
		NetBalance:    report.NetBalance,
		MonthlyGroups: groups,
	}
}
