package parser

import (
	"io"
	"testing"

	"fjacquet/fincontrol/internal/apperror"
	"fjacquet/fincontrol/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubParser struct {
	bank models.Bank
}

func (s stubParser) Bank() models.Bank                    { return s.bank }
func (s stubParser) Validate(FileInfo) error              { return nil }
func (s stubParser) Parse(io.Reader) (ParseResult, error) { return ParseResult{}, nil }

func TestRegistry_Get(t *testing.T) {
	registry := NewRegistry(stubParser{bank: models.BankNubank})

	tests := []struct {
		name        string
		bank        models.Bank
		expectError bool
	}{
		{name: "registered bank", bank: models.BankNubank},
		{name: "known but unregistered bank", bank: models.BankItau, expectError: true},
		{name: "unknown bank", bank: models.Bank("INTER"), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := registry.Get(tt.bank)
			if tt.expectError {
				require.Error(t, err)
				assert.True(t, apperror.IsUnsupportedBank(err))
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.bank, p.Bank())
		})
	}
}

func TestRegistry_BanksInDeclarationOrder(t *testing.T) {
	registry := NewRegistry(stubParser{bank: models.BankBB}, stubParser{bank: models.BankNubank})
	registry.Register(stubParser{bank: models.BankItau})

	assert.Equal(t, []models.Bank{models.BankNubank, models.BankItau, models.BankBB}, registry.Banks())
}

func TestParseResult_AllRowsFailed(t *testing.T) {
	assert.False(t, ParseResult{}.AllRowsFailed(), "header-only file")
	assert.True(t, ParseResult{DataRows: 2}.AllRowsFailed())
	assert.False(t, ParseResult{DataRows: 2, Transactions: make([]models.Transaction, 1)}.AllRowsFailed())
}
