package models

import (
	"fmt"
	"strings"
)

// KindRule maps keywords to a transaction kind.
type KindRule struct {
	Kind     TransactionKind `yaml:"kind"`
	Keywords []string        `yaml:"keywords"`
}

// CategoryRule maps keywords to a category with its display attributes.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Color    string   `yaml:"color"`
	Icon     string   `yaml:"icon"`
	Keywords []string `yaml:"keywords"`
}

// Details returns the display attributes of the rule.
func (r CategoryRule) Details() CategoryDetails {
	return CategoryDetails{Name: r.Name, Color: r.Color, Icon: r.Icon}
}

// FallbackRule is the category assigned when no keyword matches.
type FallbackRule struct {
	Enabled bool   `yaml:"enabled"`
	Name    string `yaml:"name"`
	Color   string `yaml:"color"`
	Icon    string `yaml:"icon"`
}

// Details returns the display attributes of the fallback category.
func (r FallbackRule) Details() CategoryDetails {
	return CategoryDetails{Name: r.Name, Color: r.Color, Icon: r.Icon}
}

// RuleSet is an ordered classification configuration. Order matters: the
// first matching group wins for both kinds and categories.
type RuleSet struct {
	Kinds      []KindRule     `yaml:"kinds"`
	Categories []CategoryRule `yaml:"categories"`
	Fallback   FallbackRule   `yaml:"fallback"`
}

// Validate checks that the rule set is usable.
func (rs RuleSet) Validate() error {
	for i, rule := range rs.Kinds {
		if _, ok := kindDisplayNames[rule.Kind]; !ok {
			return fmt.Errorf("kinds[%d]: unknown transaction kind %q", i, rule.Kind)
		}
		if len(rule.Keywords) == 0 {
			return fmt.Errorf("kinds[%d]: %s has no keywords", i, rule.Kind)
		}
	}

	seen := make(map[string]bool, len(rs.Categories))
	for i, rule := range rs.Categories {
		name := strings.TrimSpace(rule.Name)
		if name == "" {
			return fmt.Errorf("categories[%d]: name is required", i)
		}
		key := strings.ToLower(name)
		if seen[key] {
			return fmt.Errorf("categories[%d]: duplicate category %q", i, name)
		}
		seen[key] = true
		if len(rule.Keywords) == 0 {
			return fmt.Errorf("categories[%d]: %s has no keywords", i, name)
		}
	}

	if rs.Fallback.Enabled && strings.TrimSpace(rs.Fallback.Name) == "" {
		return fmt.Errorf("fallback: name is required when enabled")
	}
	return nil
}
