package models

import (
	"encoding/xml"
	"time"

	"github.com/shopspring/decimal"
)

// DailyExpense aggregates the expenses of one calendar date.
type DailyExpense struct {
	Date             time.Time       `json:"date" yaml:"date" xml:"date"`
	TotalAmount      decimal.Decimal `json:"totalAmount" yaml:"total_amount" xml:"totalAmount"`
	TransactionCount int             `json:"transactionCount" yaml:"transaction_count" xml:"transactionCount"`
}

// CategorySummary aggregates the expenses of one category within a scope.
type CategorySummary struct {
	Category         Category        `json:"category" yaml:"category" xml:"category"`
	TotalAmount      decimal.Decimal `json:"totalAmount" yaml:"total_amount" xml:"totalAmount"`
	TransactionCount int             `json:"transactionCount" yaml:"transaction_count" xml:"transactionCount"`
	Percentage       decimal.Decimal `json:"percentage" yaml:"percentage" xml:"percentage"`
	AverageAmount    decimal.Decimal `json:"averageAmount" yaml:"average_amount" xml:"averageAmount"`
}

// MonthlyReportData is the raw aggregate of every extract of a month.
type MonthlyReportData struct {
	Year             int
	Month            int
	Transactions     []Transaction
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	TransactionCount int
	TopExpenses      []Transaction
	DailyExpenses    []DailyExpense
}

// Period is the calendar range a report covers.
type Period struct {
	Month     int       `json:"month" yaml:"month" xml:"month"`
	Year      int       `json:"year" yaml:"year" xml:"year"`
	StartDate time.Time `json:"startDate" yaml:"start_date" xml:"startDate"`
	EndDate   time.Time `json:"endDate" yaml:"end_date" xml:"endDate"`
}

// FinancialSummary holds the headline figures of a report.
type FinancialSummary struct {
	TotalIncome             decimal.Decimal `json:"totalIncome" yaml:"total_income" xml:"totalIncome"`
	TotalExpenses           decimal.Decimal `json:"totalExpenses" yaml:"total_expenses" xml:"totalExpenses"`
	NetAmount               decimal.Decimal `json:"netAmount" yaml:"net_amount" xml:"netAmount"`
	TransactionCount        int             `json:"transactionCount" yaml:"transaction_count" xml:"transactionCount"`
	AverageTransactionValue decimal.Decimal `json:"averageTransactionValue" yaml:"average_transaction_value" xml:"averageTransactionValue"`
}

// MonthlyReport is the presentation form of MonthlyReportData.
type MonthlyReport struct {
	XMLName           xml.Name          `json:"-" yaml:"-" xml:"monthlyReport"`
	Period            Period            `json:"period" yaml:"period" xml:"period"`
	Summary           FinancialSummary  `json:"summary" yaml:"summary" xml:"summary"`
	CategoryBreakdown []CategorySummary `json:"categoryBreakdown" yaml:"category_breakdown" xml:"categoryBreakdown>category"`
	DailyExpenses     []DailyExpense    `json:"dailyExpenses" yaml:"daily_expenses" xml:"dailyExpenses>day"`
	TopExpenses       []Transaction     `json:"topExpenses" yaml:"top_expenses" xml:"topExpenses>transaction"`
}
