package categorizer

import (
	"fjacquet/fincontrol/internal/models"

	"github.com/shopspring/decimal"
)

// CategorizationStrategy defines a method for categorizing transactions.
// Strategies are tried in order and the first one that finds a category wins.
type CategorizationStrategy interface {
	// Categorize returns the category details for a normalized title and
	// whether this strategy matched.
	Categorize(normalizedTitle string, amount decimal.Decimal) (models.CategoryDetails, bool)

	// Name returns the name of this strategy for logging and debugging purposes.
	Name() string
}

// FallbackStrategy always assigns the configured fallback category.
type FallbackStrategy struct {
	details models.CategoryDetails
}

// NewFallbackStrategy creates a strategy that always matches with details.
func NewFallbackStrategy(details models.CategoryDetails) *FallbackStrategy {
	return &FallbackStrategy{details: details}
}

// Name returns the name of this strategy for logging and debugging.
func (s *FallbackStrategy) Name() string {
	return "Fallback"
}

// Categorize always returns the fallback category.
func (s *FallbackStrategy) Categorize(string, decimal.Decimal) (models.CategoryDetails, bool) {
	return s.details, true
}
