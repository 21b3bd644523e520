package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/fincontrol/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTransactionsCSV(t *testing.T) {
	txs := []models.Transaction{
		newTx(15, "Mercado, centro", "45.5", &food),
		newTx(10, "Salário", "-3500", nil),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTransactionsCSV(&buf, txs, 0))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,extract_id,date,title,amount,kind,category,confidence,is_income,absolute_amount", lines[0])
	assert.Equal(t, `,,2025-07-15,"Mercado, centro",45.50,DEBIT,Alimentação,0.85,false,45.50`, lines[1])
	assert.Equal(t, ",,2025-07-10,Salário,-3500.00,DEBIT,,0.00,true,3500.00", lines[2])
}

func TestWriteTransactionsCSV_Delimiter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTransactionsCSV(&buf, []models.Transaction{newTx(1, "Luz", "10", &bills)}, ';'))
	assert.True(t, strings.HasPrefix(buf.String(), "id;extract_id;date;"))
	assert.Contains(t, buf.String(), ";Luz;10.00;DEBIT;Contas;")
}

func TestWriteTransactionsCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "july.csv")
	require.NoError(t, WriteTransactionsCSVFile(path, []models.Transaction{newTx(1, "Luz", "10", &bills)}, ','))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Luz")
}
