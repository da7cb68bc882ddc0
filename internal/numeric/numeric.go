// Package numeric extracts and rounds numbers held in dynamically typed values.
package numeric

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

var ErrNotNumeric = errors.New("value is not numeric")

// RoundMode selects how Round treats the discarded digits.
type RoundMode int

const (
	HalfUp RoundMode = iota // ties away from zero
	HalfEven
	Floor
	Ceil
	Truncate
)

var roundModes = map[string]RoundMode{
	"half_up":   HalfUp,
	"half_even": HalfEven,
	"floor":     Floor,
	"ceil":      Ceil,
	"truncate":  Truncate,
}

// ParseRoundMode parses a mode name such as "half_up" or "floor".
func ParseRoundMode(s string) (RoundMode, error) {
	mode, ok := roundModes[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown rounding mode %q", s)
	}

	return mode, nil
}

// String returns the mode name.
func (m RoundMode) String() string {
	for name, mode := range roundModes {
		if mode == m {
			return name
		}
	}

	return "unknown"
}

// IsNumber reports whether v holds an integer or floating point kind.
func IsNumber(v any) bool {
	if v == nil {
		return false
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// Float returns v as float64. Numbers of any kind are accepted; strings are
// parsed when text is true. The second result is false when v holds neither.
func Float(v any, text bool) (float64, bool, error) {
	if v == nil {
		return 0, false, nil
	}

	rv := reflect.ValueOf(v)

	switch {
	case rv.CanInt():
		return float64(rv.Int()), true, nil
	case rv.CanUint():
		return float64(rv.Uint()), true, nil
	case rv.CanFloat():
		return rv.Float(), true, nil
	case text && rv.Kind() == reflect.String:
		f, err := ParseFloat(rv.String())
		if err != nil {
			return 0, true, err
		}

		return f, true, nil
	default:
		return 0, false, nil
	}
}

// ParseFloat parses a decimal number, ignoring surrounding whitespace.
func ParseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}

	return f, nil
}

// Round rounds f to precision decimal places. A negative precision rounds to
// tens, hundreds and so on. Rounding works on the shortest decimal form of f,
// so 1.005 rounds half up to 1.01.
func Round(f float64, precision int, mode RoundMode) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}

	neg := math.Signbit(f)
	text := strconv.FormatFloat(math.Abs(f), 'f', -1, 64)

	intPart, fracPart, _ := strings.Cut(text, ".")
	digits := intPart + fracPart
	keep := len(intPart) + precision

	if keep >= len(digits) {
		return f
	}

	if keep < 0 {
		digits = strings.Repeat("0", -keep) + digits
		keep = 0
	}

	kept, rest := digits[:keep], digits[keep:]
	if strings.Trim(rest, "0") == "" {
		return f
	}

	if roundsAway(kept, rest, neg, mode) {
		kept = increment(kept)
	}

	if kept == "" {
		kept = "0"
	}

	if neg {
		kept = "-" + kept
	}

	out, err := strconv.ParseFloat(kept+"e"+strconv.Itoa(-precision), 64)
	if err != nil {
		return f
	}

	return out
}

// roundsAway reports whether the kept digits grow by one unit in magnitude.
// rest holds the discarded digits and is never all zeros.
func roundsAway(kept, rest string, neg bool, mode RoundMode) bool {
	switch mode {
	case HalfEven:
		if rest[0] != '5' || strings.Trim(rest[1:], "0") != "" {
			return rest[0] >= '5'
		}

		return kept != "" && (kept[len(kept)-1]-'0')%2 == 1
	case Floor:
		return neg
	case Ceil:
		return !neg
	case Truncate:
		return false
	default:
		return rest[0] >= '5'
	}
}

// increment adds one to a string of decimal digits.
func increment(digits string) string {
	b := []byte(digits)

	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < '9' {
			b[i]++
			return string(b)
		}

		b[i] = '0'
	}

	return "1" + string(b)
}
