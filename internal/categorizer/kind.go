package categorizer

import (
	"fjacquet/fincontrol/internal/models"

	"github.com/shopspring/decimal"
)

type kindGroup struct {
	kind     models.TransactionKind
	keywords []string
}

// KindClassifier decides how money moved from the title and amount sign.
type KindClassifier struct {
	groups []kindGroup
}

// NewKindClassifier creates a classifier from ordered kind rules.
func NewKindClassifier(rules []models.KindRule) *KindClassifier {
	groups := make([]kindGroup, 0, len(rules))
	for _, rule := range rules {
		groups = append(groups, kindGroup{kind: rule.Kind, keywords: normalizeAll(rule.Keywords)})
	}
	return &KindClassifier{groups: groups}
}

// Classify returns the first kind whose keywords appear in the normalized
// title, or DEBIT for non-negative amounts and CREDIT otherwise.
func (c *KindClassifier) Classify(normalizedTitle string, amount decimal.Decimal) models.TransactionKind {
	for _, group := range c.groups {
		if containsAny(normalizedTitle, group.keywords) {
			return group.kind
		}
	}
	if amount.IsNegative() {
		return models.KindCredit
	}
	return models.KindDebit
}
