package record

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/qiyin-tech/expload/pkg/expload"
)

// Delimiter separates key and value in every input record.
const Delimiter = "="

// Record is one parsed key=value pair from an input file.
type Record struct {
	Key   string
	Value string
}

// Split parses one line into a Record. The line must contain the delimiter
// exactly once; zero or multiple occurrences fail with ErrMalformedRecord.
// No whitespace trimming or escaping is applied, the line is taken literally.
func Split(line string) (Record, error) {
	if strings.Count(line, Delimiter) != 1 {
		return Record{}, fmt.Errorf("bad line %q: expected exactly one %q: %w", line, Delimiter, expload.ErrMalformedRecord)
	}
	key, value, _ := strings.Cut(line, Delimiter)
	return Record{Key: key, Value: value}, nil
}

// DecodeVector interprets a raw record value as a JSON array of numbers.
// The index of each element is semantically meaningful downstream (it is
// the action id), so order is preserved. Anything that is not a valid JSON
// numeric array fails with ErrValueDecode.
func DecodeVector(raw string) ([]float64, error) {
	var values []float64
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, fmt.Errorf("value %q is not a JSON numeric array: %w", raw, expload.ErrValueDecode)
	}
	return values, nil
}

// FormatFloat renders a vector element the way it is stored: shortest
// decimal notation without an exponent, so 0.1 stays "0.1".
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatIndex renders a vector position as a store field name.
func FormatIndex(i int) string {
	return strconv.Itoa(i)
}
