// Package normalize turns raw delivery view rows into typed delivery lines.
package normalize

import (
	"fmt"
	"strings"

	"github.com/prostech/outbound-api/internal/domain"
)

// RawRows is a query result as the driver returned it. Column names may
// repeat; values are whatever the driver scanned into interface{}.
type RawRows struct {
	Columns []string
	Values  [][]interface{}
}

// Len returns the number of rows
func (r RawRows) Len() int {
	return len(r.Values)
}

// DedupColumns drops repeated column names, keeping the first occurrence and
// the matching value in every row. A blank column name cannot be resolved and
// yields a DataFormatError. Input without duplicates is returned as is.
func DedupColumns(raw RawRows) (RawRows, error) {
	seen := make(map[string]struct{}, len(raw.Columns))
	keep := make([]int, 0, len(raw.Columns))
	for i, c := range raw.Columns {
		if strings.TrimSpace(c) == "" {
			return RawRows{}, &domain.DataFormatError{Row: -1, Column: c, Reason: fmt.Sprintf("blank column name at position %d", i)}
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		keep = append(keep, i)
	}

	for i, row := range raw.Values {
		if len(row) != len(raw.Columns) {
			return RawRows{}, &domain.DataFormatError{
				Row:    i,
				Column: "*",
				Value:  len(row),
				Reason: fmt.Sprintf("row has %d values for %d columns", len(row), len(raw.Columns)),
			}
		}
	}

	if len(keep) == len(raw.Columns) {
		return raw, nil
	}

	out := RawRows{
		Columns: make([]string, len(keep)),
		Values:  make([][]interface{}, len(raw.Values)),
	}
	for j, idx := range keep {
		out.Columns[j] = raw.Columns[idx]
	}
	for i, row := range raw.Values {
		projected := make([]interface{}, len(keep))
		for j, idx := range keep {
			projected[j] = row[idx]
		}
		out.Values[i] = projected
	}
	return out, nil
}
