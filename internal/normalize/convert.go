package normalize

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
}

var errUnsupportedType = errors.New("unsupported value type")

func text(v interface{}) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case []byte:
		return string(t), true
	}
	return "", false
}

func toString(v interface{}) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return strings.TrimSpace(t), nil
	case []byte:
		return strings.TrimSpace(string(t)), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case int:
		return strconv.Itoa(t), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	case time.Time:
		return t.Format("2006-01-02"), nil
	}
	return "", fmt.Errorf("%w %T", errUnsupportedType, v)
}

func toFloat(v interface{}) (float64, bool, error) {
	switch t := v.(type) {
	case nil:
		return 0, false, nil
	case float64:
		return t, true, nil
	case float32:
		return float64(t), true, nil
	case int64:
		return float64(t), true, nil
	case int32:
		return float64(t), true, nil
	case int:
		return float64(t), true, nil
	case bool:
		if t {
			return 1, true, nil
		}
		return 0, true, nil
	}
	if s, ok := text(v); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, false, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false, fmt.Errorf("not a number")
		}
		return f, true, nil
	}
	return 0, false, fmt.Errorf("%w %T", errUnsupportedType, v)
}

func toInt(v interface{}) (int64, error) {
	switch t := v.(type) {
	case int64:
		return t, nil
	case int32:
		return int64(t), nil
	case int:
		return int64(t), nil
	}
	f, ok, err := toFloat(v)
	if err != nil || !ok {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("not an integer")
	}
	return int64(f), nil
}

func toBool(v interface{}) (bool, error) {
	switch t := v.(type) {
	case nil:
		return false, nil
	case bool:
		return t, nil
	}
	if s, ok := text(v); ok {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "", "0", "false", "no", "n":
			return false, nil
		case "1", "true", "yes", "y":
			return true, nil
		}
		return false, fmt.Errorf("not a boolean")
	}
	f, _, err := toFloat(v)
	if err != nil {
		return false, err
	}
	return f != 0, nil
}

func toDate(v interface{}) (*time.Time, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case time.Time:
		if t.IsZero() {
			return nil, nil
		}
		return &t, nil
	}
	s, ok := text(v)
	if !ok {
		return nil, fmt.Errorf("%w %T", errUnsupportedType, v)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized date format")
}

func toDecimal(v interface{}) (decimal.NullDecimal, error) {
	switch t := v.(type) {
	case nil:
		return decimal.NullDecimal{}, nil
	case float64:
		return decimal.NewNullDecimal(decimal.NewFromFloat(t)), nil
	case int64:
		return decimal.NewNullDecimal(decimal.NewFromInt(t)), nil
	case int:
		return decimal.NewNullDecimal(decimal.NewFromInt(int64(t))), nil
	}
	s, ok := text(v)
	if !ok {
		return decimal.NullDecimal{}, fmt.Errorf("%w %T", errUnsupportedType, v)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("not a decimal")
	}
	return decimal.NewNullDecimal(d), nil
}
