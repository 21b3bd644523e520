// Package nubankparser reads Nubank CSV statement exports.
// A file has one header line followed by rows of date,title,amount.
package nubankparser

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"fjacquet/fincontrol/internal/dateutils"
	"fjacquet/fincontrol/internal/logging"
	"fjacquet/fincontrol/internal/models"
	"fjacquet/fincontrol/internal/parsererror"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ExpectedFormat describes the accepted layout in error messages.
const ExpectedFormat = "CSV with header and columns date,title,amount (date as YYYY-MM-DD)"

const (
	columnDate = iota
	columnTitle
	columnAmount
	columnCount
)

// ParseBytes parses a whole statement held in memory.
func ParseBytes(data []byte, logger logging.Logger) ([]models.RawTransactionRecord, []*parsererror.RowParseError, int, error) {
	return ParseRecords(bytes.NewReader(data), logger)
}

// ParseRecords reads every data row of r. The first line is discarded as a
// header. Rows that fail are logged, collected and skipped. It also returns
// the number of data rows seen, valid or not.
func ParseRecords(r io.Reader, logger logging.Logger) ([]models.RawTransactionRecord, []*parsererror.RowParseError, int, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	data, err := io.ReadAll(transform.NewReader(r, unicode.UTF8BOM.NewDecoder()))
	if err != nil {
		return nil, nil, 0, &parsererror.InvalidFormatError{
			ExpectedFormat: ExpectedFormat,
			Msg:            fmt.Sprintf("unable to decode input as UTF-8: %v", err),
		}
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)

	records := make([]models.RawTransactionRecord, 0)
	var rowErrors []*parsererror.RowParseError
	line := 0
	dataRows := 0

	for scanner.Scan() {
		line++
		if line == 1 {
			continue
		}
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		dataRows++

		record, rowErr := parseRow(splitLine(text), line)
		if rowErr != nil {
			rowErrors = append(rowErrors, rowFailure(logger, rowErr))
			continue
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, 0, fmt.Errorf("error reading statement: %w", err)
	}

	logger.Debug("Parsed statement rows",
		logging.F(logging.FieldCount, len(records)),
		logging.F(logging.FieldSkipped, len(rowErrors)))

	return records, rowErrors, dataRows, nil
}

func rowFailure(logger logging.Logger, rowErr *parsererror.RowParseError) *parsererror.RowParseError {
	logger.WithFields(
		logging.F(logging.FieldLine, rowErr.Line),
		logging.F(logging.FieldReason, rowErr.Error()),
	).Warn("Failed to parse transaction row, skipping")
	return rowErr
}

// splitLine splits a single line into fields. Quotes are honoured within
// the line only, so an unbalanced quote never swallows the following rows.
func splitLine(text string) []string {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	fields, err := reader.Read()
	if err != nil {
		return nil
	}
	return fields
}

func parseRow(fields []string, line int) (models.RawTransactionRecord, *parsererror.RowParseError) {
	if len(fields) < columnCount {
		return models.RawTransactionRecord{}, &parsererror.RowParseError{
			Line: line,
			Err:  fmt.Errorf("expected %d columns, got %d", columnCount, len(fields)),
		}
	}

	record := models.RawTransactionRecord{
		LineNumber: line,
		DateText:   strings.TrimSpace(fields[columnDate]),
		TitleText:  strings.TrimSpace(fields[columnTitle]),
		AmountText: strings.TrimSpace(fields[columnAmount]),
	}

	if _, err := parseDate(record.DateText); err != nil {
		return models.RawTransactionRecord{}, &parsererror.RowParseError{
			Line: line, Field: "date", Value: record.DateText, Err: err,
		}
	}
	if _, err := decimal.NewFromString(record.AmountText); err != nil {
		return models.RawTransactionRecord{}, &parsererror.RowParseError{
			Line: line, Field: "amount", Value: record.AmountText, Err: err,
		}
	}

	return record, nil
}

func parseDate(text string) (time.Time, error) {
	return dateutils.ParseISODate(text)
}

// ToTransactions converts raw records into typed, unclassified transactions.
// Records whose text no longer parses are reported and skipped.
func ToTransactions(records []models.RawTransactionRecord) ([]models.Transaction, []*parsererror.RowParseError) {
	transactions := make([]models.Transaction, 0, len(records))
	var rowErrors []*parsererror.RowParseError

	for _, record := range records {
		date, err := parseDate(record.DateText)
		if err != nil {
			rowErrors = append(rowErrors, &parsererror.RowParseError{
				Line: record.LineNumber, Field: "date", Value: record.DateText, Err: err,
			})
			continue
		}
		amount, err := decimal.NewFromString(record.AmountText)
		if err != nil {
			rowErrors = append(rowErrors, &parsererror.RowParseError{
				Line: record.LineNumber, Field: "amount", Value: record.AmountText, Err: err,
			})
			continue
		}

		transactions = append(transactions, models.NewTransaction(date, record.TitleText, amount, models.KindDebit))
	}

	return transactions, rowErrors
}
