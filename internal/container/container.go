// Package container provides dependency injection for the fincontrol application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"
	"os"

	"fjacquet/fincontrol/internal/categorizer"
	"fjacquet/fincontrol/internal/config"
	"fjacquet/fincontrol/internal/factory"
	"fjacquet/fincontrol/internal/logging"
	"fjacquet/fincontrol/internal/parser"
	"fjacquet/fincontrol/internal/report"
	"fjacquet/fincontrol/internal/service"
	"fjacquet/fincontrol/internal/store"
)

// MemoryDatabase selects the in-process store instead of an SQLite file.
const MemoryDatabase = ":memory:"

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation; all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger      logging.Logger
	config      *config.Config
	store       store.Store
	categorizer *categorizer.Categorizer
	parsers     *parser.Registry
	service     *service.Service
	generator   *report.Generator
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Logs go to stderr so rendered reports can be piped from stdout
	base := config.ConfigureLoggingFromConfig(cfg)
	base.SetOutput(os.Stderr)
	logger := logging.NewLogrusAdapterFromLogger(base)

	rules, err := categorizer.LoadRules(store.NewRuleStore(cfg.Categorization.RulesFile, logger))
	if err != nil {
		return nil, fmt.Errorf("failed to load classification rules: %w", err)
	}
	cat := categorizer.NewCategorizer(rules, logger)

	st, err := openStore(cfg.Database.Path, logger)
	if err != nil {
		return nil, err
	}

	parsers := factory.NewRegistry(logger, cfg.Upload.MaxFileSizeBytes)

	svc := service.New(st, parsers, cat, service.Options{
		MinYear:          cfg.Upload.MinYear,
		MaxYear:          cfg.Upload.MaxYear,
		AutoConfidence:   cfg.AutoConfidence(),
		TopExpensesLimit: cfg.Report.TopExpensesLimit,
	}, logger)

	logger.Debug("Container initialized",
		logging.F("banks", len(parsers.Banks())),
		logging.F(logging.FieldCount, len(rules.Categories)))

	return &Container{
		logger:      logger,
		config:      cfg,
		store:       st,
		categorizer: cat,
		parsers:     parsers,
		service:     svc,
		generator:   report.NewGenerator(logger),
	}, nil
}

func openStore(path string, logger logging.Logger) (store.Store, error) {
	if path == MemoryDatabase {
		logger.Debug("Using in-memory store")
		return store.NewMemoryStore(), nil
	}
	st, err := store.NewSQLiteStore(path, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	return st, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the container's store.
func (c *Container) GetStore() store.Store {
	return c.store
}

// GetCategorizer returns the container's categorizer instance.
func (c *Container) GetCategorizer() *categorizer.Categorizer {
	return c.categorizer
}

// GetParsers returns the statement parser registry.
func (c *Container) GetParsers() *parser.Registry {
	return c.parsers
}

// GetService returns the use case layer.
func (c *Container) GetService() *service.Service {
	return c.service
}

// GetGenerator returns the report renderer.
func (c *Container) GetGenerator() *report.Generator {
	return c.generator
}

// Close releases the store.
func (c *Container) Close() error {
	if err := c.store.Close(); err != nil {
		return fmt.Errorf("failed to close store: %w", err)
	}
	return nil
}
