package importer_test

import (
	"testing"

	"fjacquet/fincontrol/cmd/importer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand_Metadata(t *testing.T) {
	assert.Equal(t, "import FILE", importer.Cmd.Use)
	assert.NotEmpty(t, importer.Cmd.Short)
	assert.NotNil(t, importer.Cmd.RunE)
}

func TestCommand_Flags(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{"bank", "b", ""},
		{"month", "m", "0"},
		{"year", "y", "0"},
		{"format", "f", ""},
		{"output", "o", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := importer.Cmd.Flags().Lookup(tt.name)
			require.NotNil(t, flag)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
			assert.Equal(t, tt.defValue, flag.DefValue)
			assert.NotEmpty(t, flag.Usage)
		})
	}
}
