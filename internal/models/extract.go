package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Extract is one parsed bank statement for a bank and reference month.
//
// TotalIncome and TotalExpenses are sums of absolute amounts and
// TransactionCount always equals len(Transactions).
type Extract struct {
	ID               string          `json:"id" yaml:"id" xml:"id,attr"`
	Bank             Bank            `json:"bank" yaml:"bank" xml:"bank"`
	ReferenceMonth   int             `json:"referenceMonth" yaml:"reference_month" xml:"referenceMonth"`
	ReferenceYear    int             `json:"referenceYear" yaml:"reference_year" xml:"referenceYear"`
	TotalIncome      decimal.Decimal `json:"totalIncome" yaml:"total_income" xml:"totalIncome"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses" yaml:"total_expenses" xml:"totalExpenses"`
	TransactionCount int             `json:"transactionCount" yaml:"transaction_count" xml:"transactionCount"`
	ProcessedAt      time.Time       `json:"processedAt" yaml:"processed_at" xml:"processedAt"`
	Transactions     []Transaction   `json:"transactions" yaml:"transactions" xml:"transactions>transaction"`
}

// PeriodKey returns the duplicate-detection key of the extract, e.g.
// "NUBANK-2025-07".
func (e Extract) PeriodKey() string {
	return PeriodKey(e.Bank, e.ReferenceMonth, e.ReferenceYear)
}

// PeriodKey formats the (bank, month, year) uniqueness key.
func PeriodKey(bank Bank, month, year int) string {
	return fmt.Sprintf("%s-%04d-%02d", bank, year, month)
}

// Summary returns the listing view of the extract.
func (e Extract) Summary() ExtractSummary {
	return ExtractSummary{
		ID:               e.ID,
		Bank:             e.Bank,
		ReferenceMonth:   e.ReferenceMonth,
		ReferenceYear:    e.ReferenceYear,
		TotalIncome:      e.TotalIncome,
		TotalExpenses:    e.TotalExpenses,
		TransactionCount: e.TransactionCount,
		ProcessedAt:      e.ProcessedAt,
	}
}

// ExtractSummary is an extract without its transactions.
type ExtractSummary struct {
	ID               string          `json:"id" yaml:"id"`
	Bank             Bank            `json:"bank" yaml:"bank"`
	ReferenceMonth   int             `json:"referenceMonth" yaml:"reference_month"`
	ReferenceYear    int             `json:"referenceYear" yaml:"reference_year"`
	TotalIncome      decimal.Decimal `json:"totalIncome" yaml:"total_income"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses" yaml:"total_expenses"`
	TransactionCount int             `json:"transactionCount" yaml:"transaction_count"`
	ProcessedAt      time.Time       `json:"processedAt" yaml:"processed_at"`
}

// ExtractAnalysis pairs a stored extract with its category breakdown.
type ExtractAnalysis struct {
	Extract           Extract           `json:"extract" yaml:"extract" xml:"extract"`
	CategoryBreakdown []CategorySummary `json:"categoryBreakdown" yaml:"category_breakdown" xml:"categoryBreakdown>category"`
}

// ExtractFilter narrows extract listings. Zero values mean "any".
type ExtractFilter struct {
	Bank  Bank
	Year  int
	Month int
}
