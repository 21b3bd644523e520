package nubankparser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"fjacquet/fincontrol/internal/logging"
	"fjacquet/fincontrol/internal/models"
	"fjacquet/fincontrol/internal/parser"
	"fjacquet/fincontrol/internal/parsererror"
)

// DefaultMaxFileSize is the largest accepted upload.
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

// Adapter implements the parser.StatementParser interface by wrapping
// the package-level functions of nubankparser.
type Adapter struct {
	parser.BaseParser
	maxFileSize int64
}

// NewAdapter creates a new adapter for the nubankparser.
// A non-positive maxFileSize selects DefaultMaxFileSize.
func NewAdapter(logger logging.Logger, maxFileSize int64) *Adapter {
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}
	return &Adapter{
		BaseParser:  parser.NewBaseParser(logger),
		maxFileSize: maxFileSize,
	}
}

// Bank implements parser.StatementParser.
func (a *Adapter) Bank() models.Bank {
	return models.BankNubank
}

// Validate implements parser.StatementParser.
func (a *Adapter) Validate(file parser.FileInfo) error {
	if file.Size <= 0 {
		return &parsererror.FileValidationError{FilePath: file.Name, Reason: "file is empty"}
	}
	if file.Name != "" && !strings.EqualFold(filepath.Ext(file.Name), ".csv") {
		return &parsererror.FileValidationError{FilePath: file.Name, Reason: "file must be a CSV file"}
	}
	if file.Size > a.maxFileSize {
		return &parsererror.FileValidationError{
			FilePath: file.Name,
			Reason:   fmt.Sprintf("file size %d exceeds the limit of %d bytes", file.Size, a.maxFileSize),
		}
	}
	return nil
}

// Parse implements parser.StatementParser.
func (a *Adapter) Parse(r io.Reader) (parser.ParseResult, error) {
	logger := a.GetLogger().WithField(logging.FieldBank, models.BankNubank)

	records, rowErrors, dataRows, err := ParseRecords(r, logger)
	if err != nil {
		return parser.ParseResult{}, err
	}

	transactions, conversionErrors := ToTransactions(records)
	rowErrors = append(rowErrors, conversionErrors...)

	logger.Info("Parsed Nubank statement",
		logging.F(logging.FieldCount, len(transactions)),
		logging.F(logging.FieldSkipped, len(rowErrors)))

	return parser.ParseResult{
		Transactions: transactions,
		RowErrors:    rowErrors,
		DataRows:     dataRows,
	}, nil
}
