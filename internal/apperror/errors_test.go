package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "validation with field",
			err:      NewValidation("month", "must be between 1 and 12, got %d", 13),
			expected: "validation failed for month: must be between 1 and 12, got 13",
		},
		{
			name:     "validation without field",
			err:      &ValidationError{Reason: "no valid transactions found in file"},
			expected: "validation failed: no valid transactions found in file",
		},
		{
			name:     "conflict",
			err:      &ConflictError{Resource: "extract", Key: "NUBANK-2025-07"},
			expected: "extract already exists: NUBANK-2025-07",
		},
		{
			name:     "not found",
			err:      NewNotFound("category", "abc"),
			expected: "category not found: abc",
		},
		{
			name:     "unsupported bank",
			err:      &UnsupportedBankError{Bank: "ITAU"},
			expected: "bank not supported: ITAU",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	validation := fmt.Errorf("process: %w", NewValidation("year", "out of range"))
	conflict := fmt.Errorf("save: %w", &ConflictError{Resource: "extract", Key: "k"})
	notFound := fmt.Errorf("get: %w", NewNotFound("transaction", "t"))
	unsupported := fmt.Errorf("lookup: %w", &UnsupportedBankError{Bank: "BB"})

	assert.True(t, IsValidation(validation))
	assert.False(t, IsValidation(conflict))
	assert.True(t, IsConflict(conflict))
	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsNotFound(unsupported))
	assert.True(t, IsUnsupportedBank(unsupported))
}

func TestValidationUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &ValidationError{Reason: "bad file", Err: cause}
	assert.ErrorIs(t, err, cause)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitValidation, ExitCode(NewValidation("f", "x")))
	assert.Equal(t, ExitValidation, ExitCode(&UnsupportedBankError{Bank: "ITAU"}))
	assert.Equal(t, ExitConflict, ExitCode(&ConflictError{}))
	assert.Equal(t, ExitNotFound, ExitCode(NewNotFound("x", "y")))
	assert.Equal(t, ExitFailure, ExitCode(errors.New("other")))
}
