package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRecord is a transaction joined with the names of its person and
// category, as returned by the filterable repository view for reporting.
type TransactionRecord struct {
	TransactionID       string          `json:"transactionID"`
	Description         string          `json:"description"`
	Amount              decimal.Decimal `json:"amount"`
	Type                TransactionType `json:"type"`
	CreatedAt           time.Time       `json:"createdAt"`
	CategoryID          string          `json:"categoryID"`
	CategoryDescription string          `json:"categoryDescription"`
	PersonID            string          `json:"personID"`
	PersonName          string          `json:"personName"`
}

// CategorySummary aggregates one category's transactions.
type CategorySummary struct {
	CategoryID          string          `json:"categoryID"`
	CategoryDescription string          `json:"categoryDescription"`
	TotalRevenue        decimal.Decimal `json:"totalRevenue"`
	TotalExpense        decimal.Decimal `json:"totalExpense"`
	Balance             decimal.Decimal `json:"balance"`
}

// PersonSummary aggregates one person's transactions.
type PersonSummary struct {
	PersonID     string          `json:"personID"`
	PersonName   string          `json:"personName"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Balance      decimal.Decimal `json:"balance"`
}

// OverallSummary aggregates the entire transaction ledger.
type OverallSummary struct {
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetBalance   decimal.Decimal `json:"netBalance"`
}

// CategoriesReport holds per-category summaries plus overall totals.
type CategoriesReport struct {
	CategorySummaries []CategorySummary `json:"categorySummaries"`
	OverallSummary
}

// PeopleReport holds per-person summaries plus overall totals.
type PeopleReport struct {
	PersonSummaries []PersonSummary `json:"personSummaries"`
	OverallSummary
}

// TransactionDetail is a single line in a detailed report's monthly group.
type TransactionDetail struct {
	Date                time.Time       `json:"date"`
	CategoryDescription string          `json:"categoryDescription"`
	Description         string          `json:"description"`
	Amount              decimal.Decimal `json:"amount"`
	Type                TransactionType `json:"type"`
}

// MonthlyGroup is the set of one person's transactions sharing a (year, month),
// with aggregated totals. Transactions are ordered ascending by creation time.
type MonthlyGroup struct {
	Year         int                 `json:"year"`
	Month        int                 `json:"month"`
	TotalRevenue decimal.Decimal     `json:"totalRevenue"`
	TotalExpense decimal.Decimal     `json:"totalExpense"`
	Balance      decimal.Decimal     `json:"balance"`
	Transactions []TransactionDetail `json:"transactions"`
}

// DetailedReport is a person's transaction history grouped by month,
// ordered ascending by (year, month).
type DetailedReport struct {
	PersonName    string          `json:"personName"`
	NetBalance    decimal.Decimal `json:"netBalance"`
	MonthlyGroups []MonthlyGroup  `json:"monthlyGroups"`
}
