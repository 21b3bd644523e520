// Package service implements the application use cases: importing a bank
// statement, building monthly reports, recategorizing transactions and the
// read-only listings around them.
package service

import (
	"time"

	"fjacquet/fincontrol/internal/categorizer"
	"fjacquet/fincontrol/internal/extract"
	"fjacquet/fincontrol/internal/logging"
	"fjacquet/fincontrol/internal/models"
	"fjacquet/fincontrol/internal/parser"
	"fjacquet/fincontrol/internal/registry"
	"fjacquet/fincontrol/internal/report"
	"fjacquet/fincontrol/internal/store"

	"github.com/shopspring/decimal"
)

// Classifier decides the kind and category of a transaction and knows the
// canonical look of every category it can produce.
type Classifier interface {
	Categorize(title string, amount decimal.Decimal) categorizer.Result
	Details(name string) models.CategoryDetails
}

// Options tunes validation bounds and aggregation.
type Options struct {
	MinYear          int
	MaxYear          int
	AutoConfidence   decimal.Decimal
	TopExpensesLimit int
	Clock            func() time.Time
}

// DefaultOptions returns the built-in bounds: years 2020 to 2030, auto
// confidence 0.85 and ten top expenses.
func DefaultOptions() Options {
	return Options{
		MinYear:          2020,
		MaxYear:          2030,
		AutoConfidence:   models.ConfidenceAuto,
		TopExpensesLimit: models.DefaultTopExpensesLimit,
		Clock:            time.Now,
	}
}

// Service wires the pipeline components together. It is safe for concurrent
// use as long as its store is.
type Service struct {
	store      store.Store
	parsers    *parser.Registry
	classifier Classifier
	categories *registry.CategoryRegistry
	builder    *extract.Builder
	aggregator *report.Aggregator
	opts       Options
	logger     logging.Logger
}

// New creates a Service. Zero option fields fall back to DefaultOptions.
func New(st store.Store, parsers *parser.Registry, classifier Classifier, opts Options, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.GetLogger()
	}

	defaults := DefaultOptions()
	if opts.MinYear == 0 {
		opts.MinYear = defaults.MinYear
	}
	if opts.MaxYear == 0 {
		opts.MaxYear = defaults.MaxYear
	}
	if opts.AutoConfidence.IsZero() {
		opts.AutoConfidence = defaults.AutoConfidence
	}
	if opts.TopExpensesLimit <= 0 {
		opts.TopExpensesLimit = defaults.TopExpensesLimit
	}
	if opts.Clock == nil {
		opts.Clock = defaults.Clock
	}

	return &Service{
		store:      st,
		parsers:    parsers,
		classifier: classifier,
		categories: registry.New(st, classifier, logger),
		builder:    extract.NewBuilder(extract.WithClock(opts.Clock)),
		aggregator: report.NewAggregator(opts.TopExpensesLimit, logger),
		opts:       opts,
		logger:     logger,
	}
}

// ClassifyTitle categorizes a title without touching the store.
func (s *Service) ClassifyTitle(title string, amount decimal.Decimal) categorizer.Result {
	return s.classifier.Categorize(title, amount)
}

// SupportedBanks lists the banks that have a statement parser.
func (s *Service) SupportedBanks() []models.Bank {
	return s.parsers.Banks()
}
