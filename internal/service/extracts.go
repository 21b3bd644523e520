package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"fjacquet/fincontrol/internal/apperror"
	"fjacquet/fincontrol/internal/logging"
	"fjacquet/fincontrol/internal/models"
	"fjacquet/fincontrol/internal/parser"
	"fjacquet/fincontrol/internal/parsererror"
	"fjacquet/fincontrol/internal/report"
	"fjacquet/fincontrol/internal/store"
)

// Upload is a statement file received for import.
type Upload struct {
	Data     []byte
	Filename string
}

// ProcessExtractFile parses, classifies and stores a bank statement for the
// given reference month.
func (s *Service) ProcessExtractFile(ctx context.Context, upload Upload, bankID string, month, year int) (models.ExtractAnalysis, error) {
	bank, err := s.validateUpload(upload, bankID, month, year)
	if err != nil {
		return models.ExtractAnalysis{}, err
	}

	logger := s.logger.WithFields(
		logging.F(logging.FieldBank, bank),
		logging.F(logging.FieldMonth, month),
		logging.F(logging.FieldYear, year),
		logging.F(logging.FieldFile, upload.Filename),
	)
	logger.Info("Processing extract file")

	p, err := s.parsers.Get(bank)
	if err != nil {
		return models.ExtractAnalysis{}, err
	}

	if err := p.Validate(parser.FileInfo{Name: upload.Filename, Size: int64(len(upload.Data))}); err != nil {
		return models.ExtractAnalysis{}, &apperror.ValidationError{Field: "file", Reason: err.Error(), Err: err}
	}

	if _, err := s.store.FindExtract(ctx, bank, month, year); err == nil {
		return models.ExtractAnalysis{}, &apperror.ConflictError{Resource: "extract", Key: models.PeriodKey(bank, month, year)}
	} else if !errors.Is(err, store.ErrNotFound) {
		return models.ExtractAnalysis{}, fmt.Errorf("failed to check for existing extract: %w", err)
	}

	result, err := p.Parse(bytes.NewReader(upload.Data))
	if err != nil {
		var formatErr *parsererror.InvalidFormatError
		if errors.As(err, &formatErr) {
			return models.ExtractAnalysis{}, &apperror.ValidationError{Field: "file", Reason: err.Error(), Err: err}
		}
		return models.ExtractAnalysis{}, fmt.Errorf("failed to parse statement: %w", err)
	}
	if result.AllRowsFailed() {
		verr := &apperror.ValidationError{
			Field:  "file",
			Reason: fmt.Sprintf("none of the %d data rows could be parsed", result.DataRows),
		}
		if len(result.RowErrors) > 0 {
			verr.Err = result.RowErrors[0]
		}
		return models.ExtractAnalysis{}, verr
	}
	if len(result.RowErrors) > 0 {
		logger.Warn("Some rows were skipped", logging.F(logging.FieldSkipped, len(result.RowErrors)))
	}

	transactions, err := s.classify(ctx, result.Transactions)
	if err != nil {
		return models.ExtractAnalysis{}, err
	}

	built := s.builder.Build(transactions, bank, month, year)

	saved, err := s.store.SaveExtract(ctx, built)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return models.ExtractAnalysis{}, &apperror.ConflictError{Resource: "extract", Key: built.PeriodKey()}
		}
		return models.ExtractAnalysis{}, fmt.Errorf("failed to save extract: %w", err)
	}

	logger.Info("Extract processed",
		logging.F(logging.FieldExtractID, saved.ID),
		logging.F(logging.FieldCount, saved.TransactionCount))

	return analyze(saved), nil
}

func (s *Service) validateUpload(upload Upload, bankID string, month, year int) (models.Bank, error) {
	if len(upload.Data) == 0 {
		return "", apperror.NewValidation("file", "file is required")
	}
	if strings.TrimSpace(bankID) == "" {
		return "", apperror.NewValidation("bank", "bank is required")
	}
	bank, err := models.ParseBank(bankID)
	if err != nil {
		return "", &apperror.ValidationError{Field: "bank", Reason: err.Error(), Err: err}
	}
	if err := validateMonth(month); err != nil {
		return "", err
	}
	if year < s.opts.MinYear || year > s.opts.MaxYear {
		return "", apperror.NewValidation("year", "year must be between %d and %d", s.opts.MinYear, s.opts.MaxYear)
	}
	return bank, nil
}

func validateMonth(month int) error {
	if month < 1 || month > 12 {
		return apperror.NewValidation("month", "month must be between 1 and 12")
	}
	return nil
}

// classify assigns kind, category and confidence to every transaction.
// Categories are resolved once per name within the call.
func (s *Service) classify(ctx context.Context, transactions []models.Transaction) ([]models.Transaction, error) {
	resolved := make(map[string]models.Category)
	out := make([]models.Transaction, len(transactions))

	for i, tx := range transactions {
		result := s.classifier.Categorize(tx.Title, tx.Amount)
		tx.Kind = result.Kind

		if result.Matched {
			category, ok := resolved[result.Category.Name]
			if !ok {
				var err error
				category, err = s.categories.Resolve(ctx, result.Category.Name)
				if err != nil {
					return nil, fmt.Errorf("failed to resolve category: %w", err)
				}
				resolved[result.Category.Name] = category
			}
			tx.AssignCategory(category, s.opts.AutoConfidence)
		} else {
			tx.ClearCategory()
		}
		out[i] = tx
	}
	return out, nil
}

func analyze(e models.Extract) models.ExtractAnalysis {
	return models.ExtractAnalysis{
		Extract:           e,
		CategoryBreakdown: report.CategoryBreakdown(e.Transactions),
	}
}

// GetExtract returns a stored extract with its category breakdown.
func (s *Service) GetExtract(ctx context.Context, id string) (models.ExtractAnalysis, error) {
	e, err := s.store.FindExtractByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.ExtractAnalysis{}, apperror.NewNotFound("extract", id)
		}
		return models.ExtractAnalysis{}, fmt.Errorf("failed to load extract: %w", err)
	}
	return analyze(e), nil
}

// ListExtracts lists stored extracts. A bank with both year and month selects
// that single period; otherwise a bank alone, then a year alone narrow the
// listing, and no filter lists everything.
func (s *Service) ListExtracts(ctx context.Context, bankID string, year, month int) ([]models.ExtractSummary, error) {
	var filter models.ExtractFilter
	if strings.TrimSpace(bankID) != "" {
		bank, err := models.ParseBank(bankID)
		if err != nil {
			return nil, &apperror.ValidationError{Field: "bank", Reason: err.Error(), Err: err}
		}
		filter.Bank = bank
	}

	switch {
	case filter.Bank != "" && year != 0 && month != 0:
		if err := validateMonth(month); err != nil {
			return nil, err
		}
		filter.Year, filter.Month = year, month
	case filter.Bank != "":
		// bank only; year and month are ignored
	case year != 0:
		filter = models.ExtractFilter{Year: year}
	}

	extracts, err := s.store.ListExtracts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list extracts: %w", err)
	}

	summaries := make([]models.ExtractSummary, 0, len(extracts))
	for _, e := range extracts {
		summaries = append(summaries, e.Summary())
	}
	return summaries, nil
}
