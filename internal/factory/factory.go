// Package factory builds the statement parsers for each supported bank.
package factory

import (
	"fjacquet/fincontrol/internal/apperror"
	"fjacquet/fincontrol/internal/logging"
	"fjacquet/fincontrol/internal/models"
	"fjacquet/fincontrol/internal/nubankparser"
	"fjacquet/fincontrol/internal/parser"
)

// ImplementedBanks lists the banks a parser exists for.
var ImplementedBanks = []models.Bank{models.BankNubank}

// GetParserWithLogger returns a new parser for bank with the provided logger.
// maxFileSize bounds accepted uploads; zero selects the parser default.
func GetParserWithLogger(bank models.Bank, logger logging.Logger, maxFileSize int64) (parser.StatementParser, error) {
	switch bank {
	case models.BankNubank:
		return nubankparser.NewAdapter(logger, maxFileSize), nil
	default:
		return nil, &apperror.UnsupportedBankError{Bank: string(bank)}
	}
}

// NewRegistry returns a registry holding a parser for every implemented bank.
func NewRegistry(logger logging.Logger, maxFileSize int64) *parser.Registry {
	if logger == nil {
		logger = logging.GetLogger()
	}
	registry := parser.NewRegistry()
	for _, bank := range ImplementedBanks {
		p, err := GetParserWithLogger(bank, logger, maxFileSize)
		if err != nil {
			logger.WithError(err).Warn("Skipping bank without parser", logging.F(logging.FieldBank, bank))
			continue
		}
		registry.Register(p)
	}
	return registry
}
