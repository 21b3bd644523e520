package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/fincontrol/cmd/root"
	"fjacquet/fincontrol/internal/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statement = "date,title,amount\n" +
	"2025-07-15,Supermercado Extra,45.50\n" +
	"2025-07-10,Transferência recebida Salário,-3500.00\n"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root.Cmd.SetOut(&out)
	root.Cmd.SetErr(&out)
	root.Cmd.SetArgs(args)
	err := root.Cmd.Execute()
	return out.String(), err
}

func workspace(t *testing.T) (dbPath, csvPath string) {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", dir)
	t.Setenv("FINCONTROL_LOG_LEVEL", "error")

	csvPath = filepath.Join(dir, "nubank-july.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(statement), 0o600))
	return filepath.Join(dir, "fincontrol.db"), csvPath
}

func TestCLI_ImportReportAndRecategorize(t *testing.T) {
	db, csv := workspace(t)

	out, err := execute(t, "import", csv, "--db", db, "--bank", "nubank", "--month", "7", "--year", "2025", "--format", "json")
	require.NoError(t, err)

	var analysis struct {
		Extract struct {
			ID           string `json:"id"`
			TotalIncome  string `json:"totalIncome"`
			Transactions []struct {
				ID       string `json:"id"`
				Category struct {
					ID   string `json:"id"`
					Name string `json:"name"`
				} `json:"category"`
			} `json:"transactions"`
		} `json:"extract"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &analysis))
	assert.Equal(t, "3500", analysis.Extract.TotalIncome)
	require.Len(t, analysis.Extract.Transactions, 2)
	assert.Equal(t, "Alimentação", analysis.Extract.Transactions[0].Category.Name)

	_, err = execute(t, "import", csv, "--db", db, "--bank", "NUBANK", "--month", "7", "--year", "2025")
	require.Error(t, err)
	assert.Equal(t, apperror.ExitConflict, apperror.ExitCode(err))

	out, err = execute(t, "report", "--db", db, "--month", "7", "--year", "2025", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "net_amount: \"3454.5\"")

	out, err = execute(t, "extracts", "--db", db, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "NUBANK")
	assert.Contains(t, out, "2025-07")

	out, err = execute(t, "extracts", "get", analysis.Extract.ID, "--db", db, "--format", "xml")
	require.NoError(t, err)
	assert.Contains(t, out, "<ExtractAnalysis>")

	salaryID := analysis.Extract.Transactions[1].ID
	foodID := analysis.Extract.Transactions[0].Category.ID
	out, err = execute(t, "recategorize", salaryID, foodID, "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "categorized as Alimentação (confidence 1.00)")

	_, err = execute(t, "recategorize", salaryID, "missing", "--db", db)
	require.Error(t, err)
	assert.Equal(t, apperror.ExitNotFound, apperror.ExitCode(err))

	out, err = execute(t, "categories", "--db", db, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Alimentação")
	assert.Contains(t, out, "Outros")

	out, err = execute(t, "export", "--db", db, "--month", "7", "--year", "2025", "--delimiter", ";")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "id;extract_id;date"))
}

func TestCLI_ValidationExitCodes(t *testing.T) {
	db, csv := workspace(t)

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"bad month", []string{"import", csv, "--db", db, "--bank", "NUBANK", "--month", "13", "--year", "2025"}, apperror.ExitValidation},
		{"unknown bank", []string{"import", csv, "--db", db, "--bank", "MONZO", "--month", "7", "--year", "2025"}, apperror.ExitValidation},
		{"bank without parser", []string{"import", csv, "--db", db, "--bank", "ITAU", "--month", "7", "--year", "2025"}, apperror.ExitValidation},
		{"report month", []string{"report", "--db", db, "--month", "0", "--year", "2025"}, apperror.ExitValidation},
		{"missing extract", []string{"extracts", "get", "nope", "--db", db}, apperror.ExitNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.want, apperror.ExitCode(err))
		})
	}
}

func TestCLI_ClassifyWithMemoryStore(t *testing.T) {
	workspace(t)

	out, err := execute(t, "classify", "--db", ":memory:", "--amount", "30", "PIX", "Farmácia", "Pague", "Menos")
	require.NoError(t, err)
	assert.Contains(t, out, "Kind:     PIX")
	assert.Contains(t, out, "Saúde")
	assert.Contains(t, out, "Strategy: Keyword")
}

func TestCLI_EmptyMonthReport(t *testing.T) {
	db, _ := workspace(t)

	out, err := execute(t, "report", "--db", db, "--month", "1", "--year", "2024", "--format", "json")
	require.NoError(t, err)

	var r map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Empty(t, r["topExpenses"])
	assert.Empty(t, r["dailyExpenses"])
}
