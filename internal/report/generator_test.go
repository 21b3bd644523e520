package report

import (
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"

	"fjacquet/fincontrol/internal/logging"
	"fjacquet/fincontrol/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleReport() models.MonthlyReport {
	data := NewAggregator(10, nil).Aggregate(2025, 7, []models.Extract{{Transactions: []models.Transaction{
		newTx(15, "Mercado", "45.50", &food),
		newTx(10, "Salário", "-3500.00", nil),
	}}})
	return BuildMonthlyReport(data)
}

func TestGenerator_RenderJSON(t *testing.T) {
	g := NewGenerator(logging.NewMockLogger())
	out, err := g.Render(sampleReport(), FormatJSON)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	summary := decoded["summary"].(map[string]interface{})
	assert.Equal(t, "3454.5", summary["netAmount"])
	assert.Len(t, decoded["topExpenses"], 1)
	assert.Len(t, decoded["categoryBreakdown"], 1)
}

func TestGenerator_RenderXML(t *testing.T) {
	g := NewGenerator(logging.NewMockLogger())
	out, err := g.Render(sampleReport(), FormatXML)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(out), xml.Header))
	assert.Contains(t, string(out), "<monthlyReport>")
	assert.Contains(t, string(out), "<netAmount>3454.5</netAmount>")
	assert.Contains(t, string(out), "<topExpenses>")
}

func TestGenerator_RenderYAML(t *testing.T) {
	g := NewGenerator(logging.NewMockLogger())
	out, err := g.Render(sampleReport(), "YAML")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Contains(t, decoded, "period")
	assert.Contains(t, decoded, "category_breakdown")
	assert.Contains(t, string(out), "net_amount: \"3454.5\"")
}

func TestGenerator_UnsupportedFormat(t *testing.T) {
	logger := logging.NewMockLogger()
	g := NewGenerator(logger)
	_, err := g.Render(sampleReport(), "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format: pdf")
}

func TestFormats(t *testing.T) {
	assert.Equal(t, []string{"json", "xml", "yaml"}, Formats())
}
