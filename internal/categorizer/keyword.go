package categorizer

import (
	"strings"

	"fjacquet/fincontrol/internal/models"

	"github.com/shopspring/decimal"
)

type keywordGroup struct {
	details  models.CategoryDetails
	keywords []string
}

// KeywordStrategy implements categorization using ordered keyword groups.
// The first group with a keyword contained in the title wins.
type KeywordStrategy struct {
	groups []keywordGroup
}

// NewKeywordStrategy creates a KeywordStrategy from category rules, keeping
// their order.
func NewKeywordStrategy(rules []models.CategoryRule) *KeywordStrategy {
	groups := make([]keywordGroup, 0, len(rules))
	for _, rule := range rules {
		groups = append(groups, keywordGroup{
			details:  rule.Details(),
			keywords: normalizeAll(rule.Keywords),
		})
	}
	return &KeywordStrategy{groups: groups}
}

// Name returns the name of this strategy for logging and debugging.
func (s *KeywordStrategy) Name() string {
	return "Keyword"
}

// Categorize attempts to categorize a transaction using keyword pattern matching.
func (s *KeywordStrategy) Categorize(normalizedTitle string, _ decimal.Decimal) (models.CategoryDetails, bool) {
	if strings.TrimSpace(normalizedTitle) == "" {
		return models.CategoryDetails{}, false
	}
	for _, group := range s.groups {
		if containsAny(normalizedTitle, group.keywords) {
			return group.details, true
		}
	}
	return models.CategoryDetails{}, false
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
