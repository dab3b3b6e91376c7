package export

import (
	"fmt"
	"strconv"
	"strings"
)

// Field is one named cell of an export record. Records keep their fields
// in a slice so the CSV column order is the field-insertion order of the
// first record.
type Field struct {
	Key   string
	Value interface{}
}

// Record is an ordered set of fields. All records passed to ToCSV must
// share the key set of the first record; behavior is undefined otherwise.
type Record []Field

// ToCSV serializes records into CSV text. The header row is taken from
// the first record's keys. Numbers are stringified as-is, with no
// thousands separators or currency symbols. Other values have internal
// quotes doubled and are wrapped in quotes when they contain a comma or
// a quote, so standard CSV parsing reconstructs the original values.
// Rows are joined with \n and there is no trailing newline.
func ToCSV(records []Record) string {
	if len(records) == 0 {
		return ""
	}

	headers := make([]string, 0, len(records[0]))
	for _, field := range records[0] {
		headers = append(headers, field.Key)
	}

	lines := make([]string, 0, len(records)+1)
	lines = append(lines, strings.Join(headers, ","))

	for _, record := range records {
		cells := make([]string, 0, len(record))
		for _, field := range record {
			cells = append(cells, formatCell(field.Value))
		}
		lines = append(lines, strings.Join(cells, ","))
	}

	return strings.Join(lines, "\n")
}

// formatCell renders one value. Numeric values pass through untouched;
// everything else gets the quoting treatment.
func formatCell(value interface{}) string {
	switch v := value.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	}

	raw := fmt.Sprintf("%v", value)
	cell := strings.ReplaceAll(raw, `"`, `""`)
	if strings.Contains(raw, ",") || strings.Contains(raw, `"`) {
		return `"` + cell + `"`
	}
	return cell
}
