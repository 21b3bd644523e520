package store

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/fincontrol/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRules = `kinds:
  - kind: PIX
    keywords: [pix]
categories:
  - name: Mercado
    color: "#00FF00"
    icon: "🛒"
    keywords: [mercado, feira]
fallback:
  enabled: true
  name: Outros
`

func TestRuleStore_LoadRules(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(valid, []byte(testRules), 0o600))

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("categories:\n  - name: Empty\n"), 0o600))

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("categories: [\n"), 0o600))

	tests := []struct {
		name      string
		file      string
		wantFound bool
		wantErr   string
	}{
		{"valid file", valid, true, ""},
		{"missing explicit file", filepath.Join(dir, "nope.yaml"), false, "error resolving rules file"},
		{"rule without keywords", invalid, false, "invalid rules file"},
		{"malformed yaml", broken, false, "error parsing rules file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewRuleStore(tt.file, logging.NewMockLogger())
			rules, found, err := s.LoadRules()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			require.Len(t, rules.Categories, 1)
			assert.Equal(t, "Mercado", rules.Categories[0].Name)
			assert.Equal(t, []string{"mercado", "feira"}, rules.Categories[0].Keywords)
			assert.True(t, rules.Fallback.Enabled)
		})
	}
}

func TestRuleStore_NoDefaultFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	s := NewRuleStore("", nil)
	_, found, err := s.LoadRules()
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRuleStore_FindConfigFileInSubdirectory(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", DefaultRulesFile), []byte(testRules), 0o600))

	s := NewRuleStore("", logging.NewMockLogger())
	path, err := s.FindConfigFile(DefaultRulesFile)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("config", DefaultRulesFile), path)

	_, found, err := s.LoadRules()
	require.NoError(t, err)
	assert.True(t, found)
}
