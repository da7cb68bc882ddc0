package cast

import (
	"math"
	"strconv"
	"strings"

	"data-casts/data"
	"data-casts/internal/numeric"
)

// Round rounds numbers and numeric strings to Precision decimal places and
// returns a float64.
type Round struct {
	Precision int
	Mode      numeric.RoundMode
}

func (Round) Name() string { return "round" }

func (r Round) Cast(value any, field data.Field) (any, error) {
	f, ok, err := numeric.Float(value, true)
	if !ok {
		return value, nil
	}

	if err != nil {
		return nil, data.Malformed(r.Name(), field, "%v", err)
	}

	return numeric.Round(f, r.Precision, r.Mode), nil
}

// Integer converts numeric strings and integral floats to int64.
type Integer struct{}

func (Integer) Name() string { return "integer" }

func (i Integer) Cast(value any, field data.Field) (any, error) {
	switch v := value.(type) {
	case string:
		text := strings.TrimSpace(v)

		n, err := strconv.ParseInt(text, 10, 64)
		if err == nil {
			return n, nil
		}

		f, err := numeric.ParseFloat(text)
		if err != nil {
			return nil, data.Malformed(i.Name(), field, "%q is not a number", v)
		}

		return i.fromFloat(f, field)
	case float32:
		return i.fromFloat(float64(v), field)
	case float64:
		return i.fromFloat(v, field)
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint:
		return i.fromUnsigned(uint64(v), field)
	case uint64:
		return i.fromUnsigned(v, field)
	default:
		return value, nil
	}
}

func (i Integer) fromFloat(f float64, field data.Field) (any, error) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, data.Malformed(i.Name(), field, "%v is not an integer", f)
	}

	return int64(f), nil
}

func (i Integer) fromUnsigned(u uint64, field data.Field) (any, error) {
	if u > math.MaxInt64 {
		return nil, data.Malformed(i.Name(), field, "%d overflows int64", u)
	}

	return int64(u), nil
}

// Float converts numeric strings and integers to float64.
type Float struct{}

func (Float) Name() string { return "float" }

func (c Float) Cast(value any, field data.Field) (any, error) {
	if _, isFloat := value.(float64); isFloat {
		return value, nil
	}

	f, ok, err := numeric.Float(value, true)
	if !ok {
		return value, nil
	}

	if err != nil {
		return nil, data.Malformed(c.Name(), field, "%v", err)
	}

	return f, nil
}
