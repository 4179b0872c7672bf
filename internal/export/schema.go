// Package export describes the dataset tables and writes them to CSV files
// and to SQLite.
package export

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sopgen/sopgen/internal/util"
)

// Kind is the value type of a column.
type Kind int

const (
	KindText Kind = iota
	KindInteger
	KindReal
	KindDate
	KindBool
	KindJSON
)

// Column is one typed column of a table.
type Column struct {
	Name string
	Kind Kind

	// Scale is the number of decimals a real column is rounded to.
	Scale int32
}

// Text returns a text column.
func Text(name string) Column { return Column{Name: name, Kind: KindText} }

// Integer returns an integer column.
func Integer(name string) Column { return Column{Name: name, Kind: KindInteger} }

// Real returns a real column rounded to scale decimals.
func Real(name string, scale int32) Column { return Column{Name: name, Kind: KindReal, Scale: scale} }

// Date returns an ISO date column.
func Date(name string) Column { return Column{Name: name, Kind: KindDate} }

// Bool returns a boolean column.
func Bool(name string) Column { return Column{Name: name, Kind: KindBool} }

// JSON returns a column holding a JSON document.
func JSON(name string) Column { return Column{Name: name, Kind: KindJSON} }

// Table is one exported table. Row returns the values of row i in column
// order.
type Table struct {
	Name    string
	Columns []Column
	Len     int
	Row     func(i int) []any
}

// Header returns the column names in order.
func (t Table) Header() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Format renders v as the CSV text of column c.
func (c Column) Format(v any) (string, error) {
	switch c.Kind {
	case KindText:
		s, ok := v.(string)
		if !ok {
			return "", c.typeError(v)
		}
		return s, nil
	case KindInteger:
		n, ok := v.(int)
		if !ok {
			return "", c.typeError(v)
		}
		return strconv.Itoa(n), nil
	case KindReal:
		d, err := c.decimal(v)
		if err != nil {
			return "", err
		}
		return d.StringFixed(c.Scale), nil
	case KindDate:
		t, ok := v.(time.Time)
		if !ok {
			return "", c.typeError(v)
		}
		return util.FormatDate(t), nil
	case KindBool:
		b, ok := v.(bool)
		if !ok {
			return "", c.typeError(v)
		}
		return strconv.FormatBool(b), nil
	case KindJSON:
		data, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("column %s: encoding JSON: %w", c.Name, err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("column %s: unknown kind %d", c.Name, c.Kind)
	}
}

// SQLValue converts v to the value stored in the SQLite column of c.
// Reals are rounded exactly as in the CSV output.
func (c Column) SQLValue(v any) (any, error) {
	switch c.Kind {
	case KindReal:
		d, err := c.decimal(v)
		if err != nil {
			return nil, err
		}
		return d.InexactFloat64(), nil
	case KindBool:
		b, ok := v.(bool)
		if !ok {
			return nil, c.typeError(v)
		}
		if b {
			return 1, nil
		}
		return 0, nil
	case KindInteger:
		n, ok := v.(int)
		if !ok {
			return nil, c.typeError(v)
		}
		return n, nil
	default:
		return c.Format(v)
	}
}

// decimal rounds a float value half away from zero to the column scale.
func (c Column) decimal(v any) (decimal.Decimal, error) {
	f, ok := v.(float64)
	if !ok {
		return decimal.Decimal{}, c.typeError(v)
	}
	if !util.Finite(f) {
		return decimal.Decimal{}, fmt.Errorf("column %s: non-finite value %v", c.Name, f)
	}
	return decimal.NewFromFloat(f).Round(c.Scale), nil
}

func (c Column) typeError(v any) error {
	return fmt.Errorf("column %s: unexpected value type %T", c.Name, v)
}
