package service

import (
	"context"
	"fmt"

	"fjacquet/fincontrol/internal/logging"
	"fjacquet/fincontrol/internal/models"
	"fjacquet/fincontrol/internal/report"
)

// MonthlyReportData aggregates every extract of a month. A month without
// extracts yields a zeroed result, not an error.
func (s *Service) MonthlyReportData(ctx context.Context, year, month int) (models.MonthlyReportData, error) {
	if err := validateMonth(month); err != nil {
		return models.MonthlyReportData{}, err
	}

	extracts, err := s.store.FindExtractsForPeriod(ctx, year, month)
	if err != nil {
		return models.MonthlyReportData{}, fmt.Errorf("failed to load extracts for %04d-%02d: %w", year, month, err)
	}
	return s.aggregator.Aggregate(year, month, extracts), nil
}

// GetMonthlyReport builds the presentation report of a month.
func (s *Service) GetMonthlyReport(ctx context.Context, year, month int) (models.MonthlyReport, error) {
	data, err := s.MonthlyReportData(ctx, year, month)
	if err != nil {
		return models.MonthlyReport{}, err
	}

	r := report.BuildMonthlyReport(data)
	s.logger.Info("Generated monthly report",
		logging.F(logging.FieldYear, year),
		logging.F(logging.FieldMonth, month),
		logging.F(logging.FieldCount, data.TransactionCount))
	return r, nil
}
