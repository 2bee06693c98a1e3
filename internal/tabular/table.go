package tabular

import (
	"fmt"
	"strings"
)

// Table is a fully materialized sheet: a header row plus data rows.
// Rows may be ragged; use Cell to read safely.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Cell returns row[idx] or "" when the row is shorter than idx+1.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// ColumnNotFoundError reports a required column that could not be located.
// It carries everything the caller needs to fix the input.
type ColumnNotFoundError struct {
	Label      string
	Candidates []string
	Headers    []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("%s column not found: looked for any of %v in %v", e.Label, e.Candidates, e.Headers)
}

// FindColumn returns the index of the first header whose lower-cased text
// contains any of the candidate substrings. Headers are scanned in table
// order and candidates in priority order per header, so a later header
// never wins on an earlier candidate.
func FindColumn(headers []string, candidates []string, label string) (int, error) {
	for i, h := range headers {
		low := strings.ToLower(h)
		for _, want := range candidates {
			if strings.Contains(low, want) {
				return i, nil
			}
		}
	}
	return -1, &ColumnNotFoundError{Label: label, Candidates: candidates, Headers: headers}
}

// FindTermColumn locates an optional term column ("term" substring,
// case-insensitive). Returns -1 when the table has none; record positions
// then default to 1-based row order.
func FindTermColumn(headers []string) int {
	for i, h := range headers {
		if strings.Contains(strings.ToLower(h), "term") {
			return i
		}
	}
	return -1
}
