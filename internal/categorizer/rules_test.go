package categorizer

import (
	"errors"
	"testing"

	"fjacquet/fincontrol/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRules(t *testing.T) {
	rules, err := DefaultRules()
	require.NoError(t, err)

	kinds := make([]models.TransactionKind, 0, len(rules.Kinds))
	for _, k := range rules.Kinds {
		kinds = append(kinds, k.Kind)
	}
	assert.Equal(t, []models.TransactionKind{
		models.KindPix, models.KindTED, models.KindDOC,
		models.KindBoleto, models.KindTransfer, models.KindPayment,
	}, kinds)

	names := make([]string, 0, len(rules.Categories))
	for _, c := range rules.Categories {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{
		models.CategoryFood, models.CategoryTransport, models.CategoryShopping,
		models.CategoryHealthcare, models.CategoryEntertainment, models.CategoryBills,
	}, names)

	assert.True(t, rules.Fallback.Enabled)
	assert.Equal(t, models.CategoryOther, rules.Fallback.Name)
}

func TestParseRules(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		rules, err := ParseRules([]byte(`
categories:
  - name: Pets
    color: "#123456"
    icon: "🐶"
    keywords: [petshop, veterinario]
fallback:
  enabled: false
`))
		require.NoError(t, err)
		require.Len(t, rules.Categories, 1)
		assert.Equal(t, "Pets", rules.Categories[0].Name)
		assert.Empty(t, rules.Kinds)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := ParseRules([]byte("categories: [unterminated"))
		assert.ErrorContains(t, err, "error parsing rules")
	})

	t.Run("invalid rules", func(t *testing.T) {
		_, err := ParseRules([]byte("kinds:\n  - kind: WIRE\n    keywords: [x]\n"))
		assert.ErrorContains(t, err, "invalid rules")
	})
}

type stubRuleStore struct {
	rules models.RuleSet
	found bool
	err   error
}

func (s stubRuleStore) LoadRules() (models.RuleSet, bool, error) {
	return s.rules, s.found, s.err
}

func TestLoadRules(t *testing.T) {
	defaults, err := DefaultRules()
	require.NoError(t, err)

	custom := models.RuleSet{Categories: []models.CategoryRule{{Name: "Pets", Keywords: []string{"pet"}}}}

	rules, err := LoadRules(nil)
	require.NoError(t, err)
	assert.Equal(t, defaults, rules)

	rules, err = LoadRules(stubRuleStore{found: false})
	require.NoError(t, err)
	assert.Equal(t, defaults, rules)

	rules, err = LoadRules(stubRuleStore{rules: custom, found: true})
	require.NoError(t, err)
	assert.Equal(t, custom, rules)

	_, err = LoadRules(stubRuleStore{err: errors.New("disk failure")})
	assert.EqualError(t, err, "disk failure")
}
