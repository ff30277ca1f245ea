package pairs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"numduo/internal/model"
)

// ParseSequence parses a list written as "[n1,n2,...]". Brackets are
// optional and whitespace around each element is ignored.
func ParseSequence(line string) ([]int, error) {
	line = strings.TrimSpace(line)
	line = strings.ReplaceAll(line, "[", "")
	line = strings.ReplaceAll(line, "]", "")

	fields := strings.Split(line, ",")
	data := make([]int, 0, len(fields))
	for i, field := range fields {
		field = strings.TrimSpace(field)
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, model.NewValidationError(
				model.ErrCodeMalformedInput,
				fmt.Sprintf("invalid integer %q at position %d", field, i),
				err,
			)
		}
		data = append(data, n)
	}

	return data, nil
}

// ReadSequence parses the first line of r with ParseSequence. Anything after
// the first line is ignored.
func ReadSequence(r io.Reader) ([]int, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return ParseSequence(line)
}
