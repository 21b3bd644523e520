// Package categorizer classifies transactions from their title and amount:
// a transaction kind (PIX, TED, ...) and a spending category, both decided by
// ordered keyword rules with a deterministic fallback.
package categorizer

import (
	"strings"

	"fjacquet/fincontrol/internal/logging"
	"fjacquet/fincontrol/internal/models"

	"github.com/shopspring/decimal"
)

// Result is the outcome of classifying one transaction.
type Result struct {
	Kind     models.TransactionKind
	Category models.CategoryDetails
	// Matched is false when no strategy assigned a category.
	Matched bool
	// Strategy names the strategy that matched.
	Strategy string
}

// Categorizer holds the compiled rule set. It keeps no state between calls.
type Categorizer struct {
	kinds      *KindClassifier
	strategies []CategorizationStrategy
	details    map[string]models.CategoryDetails
	fallback   models.CategoryDetails
	logger     logging.Logger
}

// NewCategorizer compiles rules into a Categorizer.
func NewCategorizer(rules models.RuleSet, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}

	c := &Categorizer{
		kinds:      NewKindClassifier(rules.Kinds),
		strategies: []CategorizationStrategy{NewKeywordStrategy(rules.Categories)},
		details:    make(map[string]models.CategoryDetails, len(rules.Categories)+1),
		fallback:   rules.Fallback.Details(),
		logger:     logger,
	}

	for _, rule := range rules.Categories {
		c.details[strings.ToLower(rule.Name)] = rule.Details()
	}
	if rules.Fallback.Enabled {
		c.details[strings.ToLower(rules.Fallback.Name)] = c.fallback
		c.strategies = append(c.strategies, NewFallbackStrategy(c.fallback))
	}

	return c
}

// NewDefaultCategorizer creates a Categorizer with the built-in rules.
func NewDefaultCategorizer(logger logging.Logger) *Categorizer {
	return NewCategorizer(MustDefaultRules(), logger)
}

// Classify returns the category name for a transaction, or false when no rule
// matched and the fallback is disabled.
func (c *Categorizer) Classify(title string, amount decimal.Decimal) (string, bool) {
	result := c.Categorize(title, amount)
	return result.Category.Name, result.Matched
}

// TransactionKind returns the kind of a transaction.
func (c *Categorizer) TransactionKind(title string, amount decimal.Decimal) models.TransactionKind {
	return c.kinds.Classify(Normalize(title), amount)
}

// Categorize returns both the kind and the category of a transaction.
func (c *Categorizer) Categorize(title string, amount decimal.Decimal) Result {
	normalized := Normalize(title)
	result := Result{Kind: c.kinds.Classify(normalized, amount)}

	for _, strategy := range c.strategies {
		details, ok := strategy.Categorize(normalized, amount)
		if !ok {
			continue
		}
		result.Category = details
		result.Matched = true
		result.Strategy = strategy.Name()

		c.logger.WithFields(
			logging.F("strategy", strategy.Name()),
			logging.F(logging.FieldTitle, title),
			logging.F(logging.FieldCategory, details.Name),
		).Debug("Transaction categorized")
		return result
	}

	c.logger.WithField(logging.FieldTitle, title).Debug("No category matched transaction")
	return result
}

// Details returns the canonical display attributes for a category name. Unknown
// names get the fallback color and icon under their own name.
func (c *Categorizer) Details(name string) models.CategoryDetails {
	if details, ok := c.details[strings.ToLower(strings.TrimSpace(name))]; ok {
		return details
	}
	return models.CategoryDetails{Name: name, Color: c.fallback.Color, Icon: c.fallback.Icon}
}
