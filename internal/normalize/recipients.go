package normalize

import (
	"strings"
	"time"

	"github.com/prostech/outbound-api/internal/domain"
	"github.com/prostech/outbound-api/internal/query"
)

func columnIndex(columns []string) map[string]int {
	idx := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, ok := idx[c]; !ok {
			idx[c] = i
		}
	}
	return idx
}

// RecipientsFromRows converts the result of a recipient query. Rows without
// an email address are dropped.
func RecipientsFromRows(raw RawRows) ([]domain.Recipient, error) {
	idx := columnIndex(raw.Columns)
	out := make([]domain.Recipient, 0, len(raw.Values))

	for r, row := range raw.Values {
		var rec domain.Recipient
		get := func(col string) interface{} {
			if i, ok := idx[col]; ok && i < len(row) {
				return row[i]
			}
			return nil
		}
		strField := func(col string, dst *string) error {
			s, err := toString(get(col))
			if err != nil {
				return &domain.DataFormatError{Row: r, Column: col, Value: get(col), Reason: err.Error()}
			}
			*dst = s
			return nil
		}
		intField := func(col string, dst *int) error {
			n, err := toInt(get(col))
			if err != nil {
				return &domain.DataFormatError{Row: r, Column: col, Value: get(col), Reason: err.Error()}
			}
			*dst = int(n)
			return nil
		}

		for _, f := range []error{
			strField(query.RecipientNameColumn, &rec.Name),
			strField(query.RecipientEmailColumn, &rec.Email),
			strField(query.RecipientCompanyColumn, &rec.Company),
			strField(query.RecipientManagerName, &rec.ManagerName),
			strField(query.RecipientManagerEmail, &rec.ManagerEmail),
			intField(query.RecipientActiveColumn, &rec.ActiveDeliveries),
			intField(query.RecipientOverdueColumn, &rec.OverdueDeliveries),
			intField(query.RecipientDueTodayColumn, &rec.DueToday),
		} {
			if f != nil {
				return nil, f
			}
		}

		if rec.Email == "" {
			continue
		}
		rec.ManagerName = strings.TrimSpace(rec.ManagerName)
		if rec.Name == "" {
			rec.Name = rec.Email
		}
		out = append(out, rec)
	}
	return out, nil
}

// ColumnStrings returns the non-blank string values of one column in row order.
func ColumnStrings(raw RawRows, column string) ([]string, error) {
	i, ok := columnIndex(raw.Columns)[column]
	if !ok {
		return nil, &domain.DataFormatError{Row: -1, Column: column, Reason: "column missing from result"}
	}
	out := make([]string, 0, len(raw.Values))
	for r, row := range raw.Values {
		s, err := toString(row[i])
		if err != nil {
			return nil, &domain.DataFormatError{Row: r, Column: column, Value: row[i], Reason: err.Error()}
		}
		if s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

// FirstRowDate reads a date column of the first row. It returns nil when the
// result is empty or the value is NULL.
func FirstRowDate(raw RawRows, column string) (*time.Time, error) {
	i, ok := columnIndex(raw.Columns)[column]
	if !ok {
		return nil, &domain.DataFormatError{Row: -1, Column: column, Reason: "column missing from result"}
	}
	if len(raw.Values) == 0 {
		return nil, nil
	}
	t, err := toDate(raw.Values[0][i])
	if err != nil {
		return nil, &domain.DataFormatError{Row: 0, Column: column, Value: raw.Values[0][i], Reason: err.Error()}
	}
	return t, nil
}
