package household

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/etnz/finengine"
	"github.com/etnz/finengine/date"
	"github.com/shopspring/decimal"
)

// The converters below accept the Go values a caller builds by hand as well as the
// values encoding/json produces for an `any` field. Decoders should use json.Number
// so that no number goes through a float64.

func toCents(field string, v any) (finengine.Cents, error) {
	switch x := v.(type) {
	case finengine.Cents:
		return x, nil
	case int:
		return finengine.NewCents(x)
	case int64:
		return finengine.NewCents(x)
	case float64:
		return finengine.NewCents(x)
	case decimal.Decimal:
		return finengine.NewCents(x)
	case json.Number:
		return finengine.NewCents(x.String())
	case string:
		return finengine.NewCents(x)
	default:
		return finengine.Cents{}, finengine.Invalidf("field %s: cannot use %T as cents", field, v)
	}
}

func toDecimal(field string, v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, nil
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int64:
		return decimal.NewFromInt(x), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero, finengine.Invalidf("field %s: %v is not finite", field, x)
		}
		// the shortest text that reads back as x, as the literal was written
		return parseDecimal(field, strconv.FormatFloat(x, 'f', -1, 64))
	case json.Number:
		return parseDecimal(field, x.String())
	case string:
		return parseDecimal(field, x)
	default:
		return decimal.Zero, finengine.Invalidf("field %s: cannot use %T as a rate", field, v)
	}
}

func parseDecimal(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, finengine.Invalidf("field %s: %q is not a number", field, s)
	}
	return d, nil
}

func toInt(field string, v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int64:
		return int(x), nil
	case float64:
		if x != math.Trunc(x) || math.IsInf(x, 0) || math.IsNaN(x) {
			return 0, finengine.Invalidf("field %s: %v is not an integer", field, x)
		}
		return int(x), nil
	case json.Number:
		i, err := x.Int64()
		if err != nil {
			return 0, finengine.Invalidf("field %s: %q is not an integer", field, x)
		}
		return int(i), nil
	default:
		return 0, finengine.Invalidf("field %s: cannot use %T as an integer", field, v)
	}
}

func toString(field string, v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case fmt.Stringer:
		return x.String(), nil
	default:
		return "", finengine.Invalidf("field %s: cannot use %T as a string", field, v)
	}
}

// toDate returns a freshly allocated date, or nil to clear an optional date.
func toDate(field string, v any) (*date.Date, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case date.Date:
		return &x, nil
	case *date.Date:
		if x == nil {
			return nil, nil
		}
		d := *x
		return &d, nil
	case string:
		if x == "" {
			return nil, nil
		}
		d, err := date.Parse(x)
		if err != nil {
			return nil, fmt.Errorf("%w: field %s: %v", finengine.ErrInvalidInput, field, err)
		}
		return &d, nil
	default:
		return nil, finengine.Invalidf("field %s: cannot use %T as a date", field, v)
	}
}

func cloneDate(d *date.Date) *date.Date {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
