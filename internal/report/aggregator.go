// Package report aggregates extracts into monthly figures and renders them
// as JSON, XML, YAML or CSV.
package report

import (
	"sort"

	"fjacquet/fincontrol/internal/currencyutils"
	"fjacquet/fincontrol/internal/dateutils"
	"fjacquet/fincontrol/internal/logging"
	"fjacquet/fincontrol/internal/models"

	"github.com/shopspring/decimal"
)

// Aggregator computes monthly figures from extracts.
type Aggregator struct {
	topLimit int
	logger   logging.Logger
}

// NewAggregator creates an Aggregator keeping at most topLimit entries in the
// top expenses list. A non-positive limit selects the default of 10.
func NewAggregator(topLimit int, logger logging.Logger) *Aggregator {
	if topLimit <= 0 {
		topLimit = models.DefaultTopExpensesLimit
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Aggregator{topLimit: topLimit, logger: logger}
}

// Aggregate flattens the extracts of a month, in extract then transaction
// order, and computes totals, the top expenses and the daily expense series.
func (a *Aggregator) Aggregate(year, month int, extracts []models.Extract) models.MonthlyReportData {
	data := models.MonthlyReportData{
		Year:          year,
		Month:         month,
		Transactions:  make([]models.Transaction, 0),
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		TopExpenses:   make([]models.Transaction, 0),
		DailyExpenses: make([]models.DailyExpense, 0),
	}

	for _, e := range extracts {
		data.Transactions = append(data.Transactions, e.Transactions...)
	}
	data.TransactionCount = len(data.Transactions)

	expenses := make([]models.Transaction, 0, len(data.Transactions))
	for _, tx := range data.Transactions {
		switch {
		case tx.IsIncome():
			data.TotalIncome = data.TotalIncome.Add(tx.AbsoluteAmount())
		case tx.IsExpense():
			data.TotalExpenses = data.TotalExpenses.Add(tx.AbsoluteAmount())
			expenses = append(expenses, tx)
		}
	}

	data.TopExpenses = topExpenses(expenses, a.topLimit)
	data.DailyExpenses = dailyExpenses(expenses)

	a.logger.WithFields(
		logging.F(logging.FieldYear, year),
		logging.F(logging.FieldMonth, month),
		logging.F(logging.FieldCount, data.TransactionCount),
	).Debug("Aggregated monthly data")

	return data
}

func topExpenses(expenses []models.Transaction, limit int) []models.Transaction {
	sorted := make([]models.Transaction, len(expenses))
	copy(sorted, expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AbsoluteAmount().GreaterThan(sorted[j].AbsoluteAmount())
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

func dailyExpenses(expenses []models.Transaction) []models.DailyExpense {
	byDate := make(map[string]*models.DailyExpense)
	for _, tx := range expenses {
		day := models.CalendarDate(tx.Date)
		key := dateutils.ToISODate(day)
		entry, ok := byDate[key]
		if !ok {
			entry = &models.DailyExpense{Date: day, TotalAmount: decimal.Zero}
			byDate[key] = entry
		}
		entry.TotalAmount = entry.TotalAmount.Add(tx.AbsoluteAmount())
		entry.TransactionCount++
	}

	days := make([]models.DailyExpense, 0, len(byDate))
	for _, entry := range byDate {
		days = append(days, *entry)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	return days
}

// CategoryBreakdown groups categorized expenses by category. Percentages are
// relative to every expense in transactions, categorized or not, and the
// result is ordered by total amount, largest first.
func CategoryBreakdown(transactions []models.Transaction) []models.CategorySummary {
	allExpenses := decimal.Zero
	order := make([]string, 0)
	groups := make(map[string]*models.CategorySummary)

	for _, tx := range transactions {
		if !tx.IsExpense() {
			continue
		}
		allExpenses = allExpenses.Add(tx.AbsoluteAmount())
		if tx.Category == nil {
			continue
		}

		key := tx.Category.Key()
		group, ok := groups[key]
		if !ok {
			group = &models.CategorySummary{Category: *tx.Category, TotalAmount: decimal.Zero}
			groups[key] = group
			order = append(order, key)
		}
		group.TotalAmount = group.TotalAmount.Add(tx.AbsoluteAmount())
		group.TransactionCount++
	}

	breakdown := make([]models.CategorySummary, 0, len(order))
	for _, key := range order {
		group := groups[key]
		group.Percentage = currencyutils.Percentage(group.TotalAmount, allExpenses)
		group.AverageAmount = currencyutils.Average(group.TotalAmount, group.TransactionCount)
		breakdown = append(breakdown, *group)
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].TotalAmount.GreaterThan(breakdown[j].TotalAmount)
	})
	return breakdown
}

// Summary derives the headline figures of a month.
func Summary(data models.MonthlyReportData) models.FinancialSummary {
	return models.FinancialSummary{
		TotalIncome:             data.TotalIncome,
		TotalExpenses:           data.TotalExpenses,
		NetAmount:               data.TotalIncome.Sub(data.TotalExpenses),
		TransactionCount:        data.TransactionCount,
		AverageTransactionValue: currencyutils.RoundedAverage(data.TotalIncome.Add(data.TotalExpenses), data.TransactionCount),
	}
}

// ExtractSummary derives the headline figures of a single extract.
func ExtractSummary(e models.Extract) models.FinancialSummary {
	return Summary(models.MonthlyReportData{
		TotalIncome:      e.TotalIncome,
		TotalExpenses:    e.TotalExpenses,
		TransactionCount: e.TransactionCount,
	})
}

// NewPeriod returns the first and last day of a month.
func NewPeriod(year, month int) models.Period {
	start := dateutils.MonthStart(year, month)
	return models.Period{
		Month:     month,
		Year:      year,
		StartDate: start,
		EndDate:   dateutils.EndOfMonth(start),
	}
}

// BuildMonthlyReport assembles the presentation form of data.
func BuildMonthlyReport(data models.MonthlyReportData) models.MonthlyReport {
	return models.MonthlyReport{
		Period:            NewPeriod(data.Year, data.Month),
		Summary:           Summary(data),
		CategoryBreakdown: CategoryBreakdown(data.Transactions),
		DailyExpenses:     data.DailyExpenses,
		TopExpenses:       data.TopExpenses,
	}
}
