package model

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "bad input", NewValidationError(ErrCodeMalformedInput, "bad input", nil).Error())
	assert.Equal(t,
		"input file a.txt not found: file does not exist",
		NewValidationError(ErrCodeFileNotFound, "input file a.txt not found", fs.ErrNotExist).Error(),
	)
}

func TestValidationError_Is(t *testing.T) {
	err := fmt.Errorf("failed to load: %w",
		NewValidationError(ErrCodeFileNotFound, "input file a.txt not found", fs.ErrNotExist))

	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, ErrInvalidExtension)
	assert.NotErrorIs(t, err, ErrNegativeValue)
}

func TestIsValidationError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
		code     string
	}{
		{name: "Direct", err: ErrNegativeValue, expected: true, code: ErrCodeNegativeValue},
		{name: "Wrapped", err: fmt.Errorf("context: %w", ErrInvalidExtension), expected: true, code: ErrCodeInvalidExtension},
		{name: "Plain error", err: errors.New("boom"), expected: false, code: ""},
		{name: "Nil", err: nil, expected: false, code: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidationError(tt.err))
			assert.Equal(t, tt.code, ErrorCode(tt.err))
		})
	}
}

func TestNewPair(t *testing.T) {
	assert.Equal(t, Pair{A: 5, B: 7}, NewPair(7, 5))
	assert.Equal(t, Pair{A: 5, B: 7}, NewPair(5, 7))
	assert.Equal(t, Pair{A: 6, B: 6}, NewPair(6, 6))
	assert.Equal(t, "0 12", NewPair(12, 0).String())
}

func TestPair_MarshalJSON(t *testing.T) {
	data, err := Pair{A: 3, B: 9}.MarshalJSON()

	assert.NoError(t, err)
	assert.JSONEq(t, `[3,9]`, string(data))
}
