// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"

	"fjacquet/fincontrol/internal/validation"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable override.
const EnvPrefix = "FINCONTROL"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Database struct {
		Path string `mapstructure:"path" yaml:"path"`
	} `mapstructure:"database" yaml:"database"`

	Upload struct {
		MaxFileSizeBytes int64 `mapstructure:"max_file_size_bytes" yaml:"max_file_size_bytes"`
		MinYear          int   `mapstructure:"min_year" yaml:"min_year"`
		MaxYear          int   `mapstructure:"max_year" yaml:"max_year"`
	} `mapstructure:"upload" yaml:"upload"`

	Categorization struct {
		RulesFile      string `mapstructure:"rules_file" yaml:"rules_file"`
		AutoConfidence string `mapstructure:"auto_confidence" yaml:"auto_confidence"`
	} `mapstructure:"categorization" yaml:"categorization"`

	Report struct {
		TopExpensesLimit int    `mapstructure:"top_expenses_limit" yaml:"top_expenses_limit"`
		Format           string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"report" yaml:"report"`
}

// Default values
const (
	DefaultDatabasePath     = "fincontrol.db"
	DefaultMaxFileSizeBytes = 10 * 1024 * 1024
	DefaultMinYear          = 2020
	DefaultMaxYear          = 2030
	DefaultAutoConfidence   = "0.85"
	DefaultTopExpenses      = 10
	DefaultReportFormat     = "json"
)

// InitializeConfig initializes Viper configuration with hierarchical loading.
// When configFile is non-empty it is used instead of the search paths.
func InitializeConfig(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.fincontrol")
		v.AddConfigPath(".fincontrol")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless explicitly requested)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns a configuration holding only the default values.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	// Defaults always decode.
	_ = v.Unmarshal(&config)
	return &config
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Database defaults
	v.SetDefault("database.path", DefaultDatabasePath)

	// Upload defaults
	v.SetDefault("upload.max_file_size_bytes", DefaultMaxFileSizeBytes)
	v.SetDefault("upload.min_year", DefaultMinYear)
	v.SetDefault("upload.max_year", DefaultMaxYear)

	// Categorization defaults
	v.SetDefault("categorization.rules_file", "")
	v.SetDefault("categorization.auto_confidence", DefaultAutoConfidence)

	// Report defaults
	v.SetDefault("report.top_expenses_limit", DefaultTopExpenses)
	v.SetDefault("report.format", DefaultReportFormat)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if strings.TrimSpace(config.Database.Path) == "" {
		return fmt.Errorf("database.path must not be empty")
	}

	if config.Upload.MaxFileSizeBytes <= 0 {
		return fmt.Errorf("upload.max_file_size_bytes must be positive, got: %d", config.Upload.MaxFileSizeBytes)
	}

	if config.Upload.MinYear > config.Upload.MaxYear {
		return fmt.Errorf("upload.min_year (%d) must not exceed upload.max_year (%d)", config.Upload.MinYear, config.Upload.MaxYear)
	}

	confidence, err := decimal.NewFromString(config.Categorization.AutoConfidence)
	if err != nil {
		return fmt.Errorf("categorization.auto_confidence is not a number: %s", config.Categorization.AutoConfidence)
	}
	if confidence.IsNegative() || confidence.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("categorization.auto_confidence must be between 0.0 and 1.0, got: %s", confidence)
	}

	if config.Report.TopExpensesLimit < 1 {
		return fmt.Errorf("report.top_expenses_limit must be at least 1, got: %d", config.Report.TopExpensesLimit)
	}

	if err := validation.IsValidOutputFormat(config.Report.Format); err != nil {
		return fmt.Errorf("invalid report format: %w", err)
	}

	return nil
}

// AutoConfidence returns the configured auto-categorization confidence.
func (c *Config) AutoConfidence() decimal.Decimal {
	d, err := decimal.NewFromString(c.Categorization.AutoConfidence)
	if err != nil {
		return decimal.RequireFromString(DefaultAutoConfidence)
	}
	return d
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	// Parse and set log level
	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Configure log format
	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
