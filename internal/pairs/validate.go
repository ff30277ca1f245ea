package pairs

import (
	"fmt"
	"strings"

	"numduo/internal/model"
)

// InputExtension is the only accepted input file extension.
const InputExtension = ".txt"

// ValidateInputFile rejects paths that do not end in ".txt".
func ValidateInputFile(path string) error {
	if !strings.HasSuffix(path, InputExtension) {
		return model.NewValidationError(
			model.ErrCodeInvalidExtension,
			fmt.Sprintf("input file %s must be a %s file", path, InputExtension),
			nil,
		)
	}
	return nil
}

// ValidatePositiveNumbers rejects sequences containing a negative value.
// Zero is allowed.
func ValidatePositiveNumbers(data []int) error {
	for i, n := range data {
		if n < 0 {
			return model.NewValidationError(
				model.ErrCodeNegativeValue,
				fmt.Sprintf("input contains negative number %d at position %d", n, i),
				nil,
			)
		}
	}
	return nil
}
