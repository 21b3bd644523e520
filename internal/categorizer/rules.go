package categorizer

import (
	_ "embed"
	"fmt"

	"fjacquet/fincontrol/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRulesYAML []byte

// DefaultRules returns the built-in rule set.
func DefaultRules() (models.RuleSet, error) {
	return ParseRules(defaultRulesYAML)
}

// MustDefaultRules is like DefaultRules but panics if the embedded rules are
// invalid.
func MustDefaultRules() models.RuleSet {
	rules, err := DefaultRules()
	if err != nil {
		panic(err)
	}
	return rules
}

// ParseRules decodes and validates a YAML rule set.
func ParseRules(data []byte) (models.RuleSet, error) {
	var rules models.RuleSet
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return models.RuleSet{}, fmt.Errorf("error parsing rules: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return models.RuleSet{}, fmt.Errorf("invalid rules: %w", err)
	}
	return rules, nil
}
