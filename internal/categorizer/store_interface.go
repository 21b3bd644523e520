package categorizer

import "fjacquet/fincontrol/internal/models"

// RuleStoreInterface loads a user supplied rule set. found is false when no
// rule file is configured or present, in which case the defaults apply.
type RuleStoreInterface interface {
	LoadRules() (rules models.RuleSet, found bool, err error)
}

// LoadRules returns the rule set from store, or the built-in rules when store
// is nil or has none.
func LoadRules(store RuleStoreInterface) (models.RuleSet, error) {
	if store != nil {
		rules, found, err := store.LoadRules()
		if err != nil {
			return models.RuleSet{}, err
		}
		if found {
			return rules, nil
		}
	}
	return DefaultRules()
}
