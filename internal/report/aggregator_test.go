package report

import (
	"fmt"
	"testing"
	"time"

	"fjacquet/fincontrol/internal/logging"
	"fjacquet/fincontrol/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	food  = models.Category{ID: "cat-food", Name: models.CategoryFood, Color: "#FF6B6B"}
	bills = models.Category{ID: "cat-bills", Name: models.CategoryBills, Color: "#F39C12"}
)

func newTx(day int, title, amount string, category *models.Category) models.Transaction {
	tx := models.NewTransaction(time.Date(2025, 7, day, 0, 0, 0, 0, time.UTC), title,
		decimal.RequireFromString(amount), models.KindDebit)
	if category != nil {
		tx.AssignCategory(*category, models.ConfidenceAuto)
	}
	return tx
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func TestAggregate_EmptyPeriod(t *testing.T) {
	a := NewAggregator(0, logging.NewMockLogger())
	data := a.Aggregate(2025, 7, nil)

	assert.Equal(t, 2025, data.Year)
	assert.Equal(t, 7, data.Month)
	assertDecimal(t, "0", data.TotalIncome)
	assertDecimal(t, "0", data.TotalExpenses)
	assert.Zero(t, data.TransactionCount)
	assert.NotNil(t, data.Transactions)
	assert.NotNil(t, data.TopExpenses)
	assert.NotNil(t, data.DailyExpenses)
	assert.Empty(t, data.TopExpenses)
	assert.Empty(t, data.DailyExpenses)
}

func TestAggregate_TotalsAndOrder(t *testing.T) {
	extracts := []models.Extract{
		{Transactions: []models.Transaction{
			newTx(3, "Mercado", "45.50", &food),
			newTx(5, "Salário", "-3500.00", nil),
		}},
		{Transactions: []models.Transaction{
			newTx(3, "Luz", "120.00", &bills),
			newTx(1, "Zero", "0", nil),
		}},
	}

	data := NewAggregator(10, nil).Aggregate(2025, 7, extracts)

	require.Len(t, data.Transactions, 4)
	assert.Equal(t, []string{"Mercado", "Salário", "Luz", "Zero"}, titles(data.Transactions))
	assert.Equal(t, 4, data.TransactionCount)
	assertDecimal(t, "3500", data.TotalIncome)
	assertDecimal(t, "165.50", data.TotalExpenses)

	assert.Equal(t, []string{"Luz", "Mercado"}, titles(data.TopExpenses))

	require.Len(t, data.DailyExpenses, 1)
	day := data.DailyExpenses[0]
	assert.True(t, day.Date.Equal(time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC)))
	assertDecimal(t, "165.50", day.TotalAmount)
	assert.Equal(t, 2, day.TransactionCount)
}

func TestAggregate_TopExpensesLimitAndStability(t *testing.T) {
	var txs []models.Transaction
	for i := 1; i <= 12; i++ {
		txs = append(txs, newTx(i, fmt.Sprintf("t%02d", i), "10", nil))
	}
	txs = append(txs, newTx(20, "big", "99", nil))

	data := NewAggregator(0, nil).Aggregate(2025, 7, []models.Extract{{Transactions: txs}})
	require.Len(t, data.TopExpenses, models.DefaultTopExpensesLimit)
	assert.Equal(t, "big", data.TopExpenses[0].Title)
	assert.Equal(t, "t01", data.TopExpenses[1].Title)
	assert.Equal(t, "t09", data.TopExpenses[9].Title)

	small := NewAggregator(3, nil).Aggregate(2025, 7, []models.Extract{{Transactions: txs}})
	assert.Equal(t, []string{"big", "t01", "t02"}, titles(small.TopExpenses))
}

func TestAggregate_DailySeriesAscending(t *testing.T) {
	txs := []models.Transaction{
		newTx(9, "a", "1", nil),
		newTx(2, "b", "2", nil),
		newTx(9, "c", "3", nil),
		newTx(4, "income", "-50", nil),
	}
	data := NewAggregator(10, nil).Aggregate(2025, 7, []models.Extract{{Transactions: txs}})

	require.Len(t, data.DailyExpenses, 2)
	assert.Equal(t, 2, data.DailyExpenses[0].Date.Day())
	assert.Equal(t, 9, data.DailyExpenses[1].Date.Day())
	assertDecimal(t, "4", data.DailyExpenses[1].TotalAmount)
	assert.Equal(t, 2, data.DailyExpenses[1].TransactionCount)
}

func TestCategoryBreakdown(t *testing.T) {
	txs := []models.Transaction{
		newTx(1, "Mercado", "30", &food),
		newTx(2, "Luz", "50", &bills),
		newTx(3, "Padaria", "10", &food),
		newTx(4, "Sem categoria", "10", nil),
		newTx(5, "Reembolso", "-40", &food),
	}

	got := CategoryBreakdown(txs)
	require.Len(t, got, 2)

	assert.Equal(t, bills.ID, got[0].Category.ID)
	assertDecimal(t, "50", got[0].TotalAmount)
	assert.Equal(t, 1, got[0].TransactionCount)
	assertDecimal(t, "50", got[0].Percentage)
	assertDecimal(t, "50", got[0].AverageAmount)

	assert.Equal(t, food.ID, got[1].Category.ID)
	assertDecimal(t, "40", got[1].TotalAmount)
	assert.Equal(t, 2, got[1].TransactionCount)
	assertDecimal(t, "40", got[1].Percentage)
	assertDecimal(t, "20", got[1].AverageAmount)
}

func TestCategoryBreakdown_KeepsFullPrecision(t *testing.T) {
	got := CategoryBreakdown([]models.Transaction{
		newTx(1, "Mercado", "1", &food),
		newTx(2, "Padaria", "1", &food),
		newTx(3, "Feira", "0.01", &food),
		newTx(4, "Luz", "1", &bills),
	})
	require.Len(t, got, 2)

	assert.Equal(t, food.ID, got[0].Category.ID)
	assertDecimal(t, "66.7774086378737542", got[0].Percentage)
	assertDecimal(t, "0.67", got[0].AverageAmount)
	assertDecimal(t, "33.2225913621262458", got[1].Percentage)

	thirds := CategoryBreakdown([]models.Transaction{
		newTx(1, "Mercado", "10", &food),
		newTx(2, "Padaria", "5", &food),
		newTx(3, "Feira", "5", &food),
		newTx(4, "Luz", "10", &bills),
	})
	require.Len(t, thirds, 2)
	assertDecimal(t, "66.6666666666666667", thirds[0].Percentage)
	assertDecimal(t, "6.6666666666666667", thirds[0].AverageAmount)
	assertDecimal(t, "33.3333333333333333", thirds[1].Percentage)
}

func TestCategoryBreakdown_GroupsByNameWithoutID(t *testing.T) {
	unsaved := models.NewCategory("Lazer", "", "")
	got := CategoryBreakdown([]models.Transaction{
		newTx(1, "a", "1", &unsaved),
		newTx(2, "b", "2", &unsaved),
	})
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].TransactionCount)
	assertDecimal(t, "100", got[0].Percentage)
}

func TestCategoryBreakdown_Empty(t *testing.T) {
	got := CategoryBreakdown([]models.Transaction{newTx(1, "income", "-10", &food)})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name        string
		data        models.MonthlyReportData
		wantNet     string
		wantAverage string
	}{
		{
			name:        "no transactions",
			data:        models.MonthlyReportData{TotalIncome: decimal.Zero, TotalExpenses: decimal.Zero},
			wantNet:     "0",
			wantAverage: "0",
		},
		{
			name:        "rounds half up",
			data:        models.MonthlyReportData{TotalIncome: dec("3500"), TotalExpenses: dec("45.50"), TransactionCount: 2},
			wantNet:     "3454.50",
			wantAverage: "1772.75",
		},
		{
			name:        "repeating division",
			data:        models.MonthlyReportData{TotalIncome: dec("10"), TotalExpenses: dec("0"), TransactionCount: 3},
			wantNet:     "10",
			wantAverage: "3.33",
		},
		{
			name:        "third decimal rounds up",
			data:        models.MonthlyReportData{TotalIncome: dec("1"), TotalExpenses: dec("0.005"), TransactionCount: 1},
			wantNet:     "0.995",
			wantAverage: "1.01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summary(tt.data)
			assertDecimal(t, tt.wantNet, s.NetAmount)
			assertDecimal(t, tt.wantAverage, s.AverageTransactionValue)
			assert.Equal(t, tt.data.TransactionCount, s.TransactionCount)
		})
	}
}

func TestNewPeriod(t *testing.T) {
	tests := []struct {
		year, month int
		wantEnd     int
	}{
		{2025, 7, 31},
		{2024, 2, 29},
		{2025, 2, 28},
		{2025, 12, 31},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d-%02d", tt.year, tt.month), func(t *testing.T) {
			p := NewPeriod(tt.year, tt.month)
			assert.Equal(t, 1, p.StartDate.Day())
			assert.Equal(t, time.Month(tt.month), p.EndDate.Month())
			assert.Equal(t, tt.wantEnd, p.EndDate.Day())
		})
	}
}

func TestBuildMonthlyReport(t *testing.T) {
	data := NewAggregator(10, nil).Aggregate(2025, 7, []models.Extract{{Transactions: []models.Transaction{
		newTx(15, "Mercado", "45.50", &food),
		newTx(10, "Salário", "-3500.00", nil),
	}}})

	r := BuildMonthlyReport(data)
	assert.Equal(t, 7, r.Period.Month)
	assertDecimal(t, "3454.50", r.Summary.NetAmount)
	require.Len(t, r.CategoryBreakdown, 1)
	assert.Equal(t, models.CategoryFood, r.CategoryBreakdown[0].Category.Name)
	assertDecimal(t, "100", r.CategoryBreakdown[0].Percentage)
	require.Len(t, r.DailyExpenses, 1)
	require.Len(t, r.TopExpenses, 1)
}

func titles(txs []models.Transaction) []string {
	out := make([]string, 0, len(txs))
	for _, tx := range txs {
		out = append(out, tx.Title)
	}
	return out
}
