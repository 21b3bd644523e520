package parser

import (
	"io"

	"fjacquet/fincontrol/internal/models"
	"fjacquet/fincontrol/internal/parsererror"
)

// FileInfo describes an uploaded statement before it is read.
type FileInfo struct {
	Name string
	Size int64
}

// ParseResult is the outcome of parsing one statement file.
type ParseResult struct {
	// Transactions holds the typed, unclassified transactions in file order.
	Transactions []models.Transaction
	// RowErrors holds one entry per skipped data row.
	RowErrors []*parsererror.RowParseError
	// DataRows counts the lines after the header, valid or not.
	DataRows int
}

// AllRowsFailed reports whether the file had data rows and none of them parsed.
func (r ParseResult) AllRowsFailed() bool {
	return r.DataRows > 0 && len(r.Transactions) == 0
}

// StatementParser is the capability every bank-specific strategy implements.
type StatementParser interface {
	// Bank returns the bank whose export format this parser understands.
	Bank() models.Bank

	// Validate checks the file metadata before any byte is read.
	Validate(file FileInfo) error

	// Parse reads a whole statement. Malformed rows are skipped and reported
	// in the result; only structural failures return an error.
	Parse(r io.Reader) (ParseResult, error)
}
