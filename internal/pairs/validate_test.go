package pairs

import (
	"testing"

	"numduo/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInputFile(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		expectError bool
	}{
		{name: "Text file", path: "test.txt", expectError: false},
		{name: "Nested text file", path: "data/input/numbers.txt", expectError: false},
		{name: "CSV file", path: "test.csv", expectError: true},
		{name: "No extension", path: "test", expectError: true},
		{name: "Extension in the middle", path: "test.txt.bak", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInputFile(tt.path)

			if tt.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrInvalidExtension)
				assert.True(t, model.IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePositiveNumbers(t *testing.T) {
	tests := []struct {
		name        string
		data        []int
		expectError bool
		errorMsg    string
	}{
		{name: "All positive", data: []int{1, 2, 3}},
		{name: "Zero is allowed", data: []int{0, 12}},
		{name: "Empty", data: []int{}},
		{
			name:        "Negative value",
			data:        []int{3, -1, 4},
			expectError: true,
			errorMsg:    "negative number -1 at position 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePositiveNumbers(tt.data)

			if tt.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrNegativeValue)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
