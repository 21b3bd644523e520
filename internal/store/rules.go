package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/fincontrol/internal/logging"
	"fjacquet/fincontrol/internal/models"

	"gopkg.in/yaml.v3"
)

// DefaultRulesFile is the file name looked up when no explicit path is set.
const DefaultRulesFile = "rules.yaml"

// RuleStore loads classification rules from a YAML file.
type RuleStore struct {
	RulesFile string
	logger    logging.Logger
}

// NewRuleStore creates a store for the given rules file. An empty name makes
// the store look for DefaultRulesFile in the standard locations.
func NewRuleStore(rulesFile string, logger logging.Logger) *RuleStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &RuleStore{RulesFile: rulesFile, logger: logger}
}

// FindConfigFile looks for a configuration file in standard locations
func (s *RuleStore) FindConfigFile(filename string) (string, error) {
	// Check if it's an absolute path
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	// Common locations to check for config files
	locations := []string{
		filename,
		filepath.Join("config", filename),
		filepath.Join(".fincontrol", filename),
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	// If still not found, check in user's home directory under .config/fincontrol/
	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "fincontrol", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadRules reads the rules file. found is false when the file does not exist
// and no explicit path was configured. An explicit path that is missing is an
// error.
func (s *RuleStore) LoadRules() (models.RuleSet, bool, error) {
	filename := s.RulesFile
	explicit := filename != ""
	if !explicit {
		filename = DefaultRulesFile
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			s.logger.Debug("No rules file found, using built-in rules")
			return models.RuleSet{}, false, nil
		}
		return models.RuleSet{}, false, fmt.Errorf("error resolving rules file %s: %w", filename, err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return models.RuleSet{}, false, fmt.Errorf("error reading rules file: %w", err)
	}

	var rules models.RuleSet
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return models.RuleSet{}, false, fmt.Errorf("error parsing rules file %s: %w", filePath, err)
	}
	if err := rules.Validate(); err != nil {
		return models.RuleSet{}, false, fmt.Errorf("invalid rules file %s: %w", filePath, err)
	}

	s.logger.WithField(logging.FieldFile, filePath).Info("Loaded classification rules",
		logging.F(logging.FieldCount, len(rules.Categories)))
	return rules, true, nil
}
