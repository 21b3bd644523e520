// Package root contains the root command for the application
package root

import (
	"fmt"
	"strings"
	"sync"

	"fjacquet/fincontrol/internal/config"
	"fjacquet/fincontrol/internal/container"
	"fjacquet/fincontrol/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by every command
type CommonFlags struct {
	ConfigFile string
	Database   string
	LogLevel   string
}

var (
	// Log is the shared logger instance for commands
	Log = logging.GetLogger()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "fincontrol",
		Short: "Import bank statements, categorize transactions and report monthly spending.",
		Long: `fincontrol imports bank statement CSV exports, assigns every transaction a
kind (PIX, TED, boleto, ...) and a spending category, stores the resulting
extracts and produces monthly financial reports in JSON, XML or YAML.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			teardown()
		},
	}

	// SharedFlags holds the values of the persistent flags
	SharedFlags = CommonFlags{}

	// AppConfig is the configuration loaded for the running command
	AppConfig *config.Config

	// AppContainer holds the dependencies of the running command
	AppContainer *container.Container

	initOnce sync.Once
)

// Init registers the persistent flags. It is safe to call more than once.
func Init() {
	initOnce.Do(func() {
		Cmd.PersistentFlags().StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default searches $HOME/.fincontrol, .fincontrol and .)")
		Cmd.PersistentFlags().StringVar(&SharedFlags.Database, "db", "", "SQLite database path, or :memory: for a throwaway store")
		Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	})
}

func setup(cmd *cobra.Command, args []string) error {
	// A failed previous run skips PersistentPostRun
	teardown()
	config.LoadEnv(logrus.StandardLogger())

	cfg, err := config.InitializeConfig(SharedFlags.ConfigFile)
	if err != nil {
		return err
	}
	if SharedFlags.Database != "" {
		cfg.Database.Path = SharedFlags.Database
	}
	if SharedFlags.LogLevel != "" {
		if _, err := logrus.ParseLevel(SharedFlags.LogLevel); err != nil {
			return fmt.Errorf("invalid log level: %s", SharedFlags.LogLevel)
		}
		cfg.Log.Level = strings.ToLower(SharedFlags.LogLevel)
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return err
	}

	AppConfig = cfg
	AppContainer = c
	Log = c.GetLogger()
	return nil
}

func teardown() {
	if AppContainer == nil {
		return
	}
	if err := AppContainer.Close(); err != nil {
		Log.WithError(err).Warn("Failed to close container")
	}
	AppContainer = nil
}

// GetContainer returns the container of the running command.
func GetContainer() (*container.Container, error) {
	if AppContainer == nil {
		return nil, fmt.Errorf("application is not initialized")
	}
	return AppContainer, nil
}

// GetConfig returns the configuration of the running command, or the
// defaults before initialization.
func GetConfig() *config.Config {
	if AppConfig == nil {
		return config.Default()
	}
	return AppConfig
}
