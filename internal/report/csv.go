package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"fjacquet/fincontrol/internal/dateutils"
	"fjacquet/fincontrol/internal/fileutils"
	"fjacquet/fincontrol/internal/models"

	"github.com/gocarina/gocsv"
)

// TransactionRow is the flat CSV form of a transaction.
type TransactionRow struct {
	ID            string `csv:"id"`
	ExtractID     string `csv:"extract_id"`
	Date          string `csv:"date"`
	Title         string `csv:"title"`
	Amount        string `csv:"amount"`
	Kind          string `csv:"kind"`
	Category      string `csv:"category"`
	Confidence    string `csv:"confidence"`
	IsIncome      bool   `csv:"is_income"`
	AbsoluteValue string `csv:"absolute_amount"`
}

func toRow(tx models.Transaction) TransactionRow {
	row := TransactionRow{
		ID:            tx.ID,
		ExtractID:     tx.ExtractID,
		Date:          dateutils.ToISODate(tx.Date),
		Title:         tx.Title,
		Amount:        tx.Amount.StringFixed(2),
		Kind:          string(tx.Kind),
		Confidence:    tx.Confidence.StringFixed(2),
		IsIncome:      tx.IsIncome(),
		AbsoluteValue: tx.AbsoluteAmount().StringFixed(2),
	}
	if tx.Category != nil {
		row.Category = tx.Category.Name
	}
	return row
}

// WriteTransactionsCSV writes transactions as CSV with a header row.
func WriteTransactionsCSV(w io.Writer, transactions []models.Transaction, delimiter rune) error {
	rows := make([]TransactionRow, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, toRow(tx))
	}

	csvWriter := csv.NewWriter(w)
	if delimiter != 0 {
		csvWriter.Comma = delimiter
	}
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteTransactionsCSVFile writes transactions to path, creating parent
// directories as needed.
func WriteTransactionsCSVFile(path string, transactions []models.Transaction, delimiter rune) (err error) {
	file, err := fileutils.CreateFile(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing CSV file: %w", cerr)
		}
	}()

	return WriteTransactionsCSV(file, transactions, delimiter)
}
