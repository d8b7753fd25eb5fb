package domain

import "strings"

// Row is a single line of the raw survey table, keyed by column header.
type Row map[string]string

// NormalizeRow trims whitespace around every key and value and drops
// cells that are empty after trimming. The returned row may be empty.
func NormalizeRow(row Row) Row {
	out := make(Row, len(row))
	for key, value := range row {
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		out[key] = value
	}
	return out
}

// NormalizeTable normalizes every row and drops rows with no cells left.
func NormalizeTable(rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if cleaned := NormalizeRow(row); len(cleaned) > 0 {
			out = append(out, cleaned)
		}
	}
	return out
}
