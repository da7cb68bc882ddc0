package primitive

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"
)

var (
	ErrUnsupportedPair = errors.New("unsupported conversion pair")
	ErrCategoryDenied  = errors.New("conversion category is not allowed")
	ErrLossy           = errors.New("conversion would lose information")
	ErrInvalidText     = errors.New("text is not a valid representation")
	ErrInvalidEnum     = errors.New("value is not valid for enum type")
)

var (
	truthyWords = []string{"1", "true", "yes", "on", "y", "t"}
	falsyWords  = []string{"0", "false", "no", "off", "n", "f"}

	timeType = reflect.TypeOf(time.Time{})
)

// TruthyWords returns the words ParseTextualBool accepts as true.
func TruthyWords() []string { return slices.Clone(truthyWords) }

// FalsyWords returns the words ParseTextualBool accepts as false.
func FalsyWords() []string { return slices.Clone(falsyWords) }

// ParseTextualBool parses yes/no, on/off, true/false and 1/0 words.
// Case and surrounding whitespace are ignored. The second result is false
// when the word belongs to neither vocabulary.
func ParseTextualBool(s string) (value bool, ok bool) {
	word := strings.ToLower(strings.TrimSpace(s))

	switch {
	case slices.Contains(truthyWords, word):
		return true, true
	case slices.Contains(falsyWords, word):
		return false, true
	default:
		return false, false
	}
}

// Coerce converts value into a value of type dst using only conversions from
// the allowed categories. A value that already has type dst is returned as is.
func Coerce(value any, dst reflect.Type, allowed CategoryEnum) (any, error) {
	if value == nil || dst == nil {
		return nil, fmt.Errorf("%w: nil value or type", ErrUnsupportedPair)
	}

	src := reflect.ValueOf(value)
	if src.Type() == dst {
		return value, nil
	}

	pair := ConversionPair{FromReflectType(src.Type()), FromReflectType(dst)}

	category := CategoryOf(pair)
	if category == CategoryNone {
		return nil, fmt.Errorf("%w: %s to %s", ErrUnsupportedPair, src.Type(), dst)
	}

	if allowed&category == 0 {
		return nil, fmt.Errorf("%w: %s to %s", ErrCategoryDenied, src.Type(), dst)
	}

	out := reflect.New(dst).Elem()

	err := convert(category, src, out)
	if err != nil {
		return nil, fmt.Errorf("%s to %s: %w", src.Type(), dst, err)
	}

	return out.Interface(), nil
}

func convert(category CategoryEnum, src, out reflect.Value) error {
	switch category {
	case CategorySafeNumber, CategoryUnsafeNumber, CategoryEnumNumber:
		err := convertNumber(src, out)
		if err != nil {
			return err
		}

		return checkEnum(out)

	case CategoryTextNumber:
		if src.Kind() == reflect.String {
			return parseNumber(src.String(), out)
		}

		out.SetString(formatNumber(src))

		return nil

	case CategoryNumericBool:
		if out.Kind() == reflect.Bool {
			return setBoolFromNumber(src, out)
		}

		var i int64
		if src.Bool() {
			i = 1
		}

		return setSigned(out, i)

	case CategoryTextualBool:
		if out.Kind() == reflect.Bool {
			b, ok := ParseTextualBool(src.String())
			if !ok {
				return fmt.Errorf("%w: %q is not a boolean word", ErrInvalidText, src.String())
			}

			out.SetBool(b)

			return nil
		}

		out.SetString(strconv.FormatBool(src.Bool()))

		return nil

	case CategoryDatetime:
		if out.Type() == timeType {
			t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(src.String()))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidText, err)
			}

			out.Set(reflect.ValueOf(t))

			return nil
		}

		out.SetString(src.Interface().(time.Time).Format(time.RFC3339Nano))

		return nil

	case CategoryTimestamp:
		if out.Type() == timeType {
			seconds, err := integerOf(src)
			if err != nil {
				return err
			}

			out.Set(reflect.ValueOf(time.Unix(seconds, 0).UTC()))

			return nil
		}

		return setSigned(out, src.Interface().(time.Time).Unix())

	case CategoryDuration:
		if out.Kind() == reflect.String {
			out.SetString(time.Duration(src.Int()).String())
			return nil
		}

		d, err := time.ParseDuration(strings.TrimSpace(src.String()))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidText, err)
		}

		out.SetInt(int64(d))

		return nil

	case CategoryNanoseconds:
		if FromReflectType(out.Type()) == KindDuration {
			ns, err := integerOf(src)
			if err != nil {
				return err
			}

			out.SetInt(ns)

			return nil
		}

		return setSigned(out, src.Int())

	case CategorySeconds:
		if FromReflectType(out.Type()) == KindDuration {
			ns := src.Float() * float64(time.Second)
			if math.IsNaN(ns) || math.Abs(ns) >= math.MaxInt64 {
				return fmt.Errorf("%w: %v seconds overflows duration", ErrLossy, src.Float())
			}

			out.SetInt(int64(ns))

			return nil
		}

		out.SetFloat(time.Duration(src.Int()).Seconds())

		return nil

	case CategoryEnumString:
		return convertEnumText(src, out)

	default:
		return ErrUnsupportedPair
	}
}

func convertEnumText(src, out reflect.Value) error {
	// enum to enum over the same underlying kind family
	if src.Kind() != reflect.String && out.Kind() != reflect.String {
		err := convertNumber(src, out)
		if err != nil {
			return err
		}

		return checkEnum(out)
	}

	text := textOf(src)

	switch {
	case out.Kind() == reflect.String:
		out.SetString(text)
	default:
		err := parseNumber(text, out)
		if err != nil {
			return err
		}
	}

	return checkEnum(out)
}

// textOf renders a string or integer enum value as text, preferring String().
func textOf(v reflect.Value) string {
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}

	if v.Kind() == reflect.String {
		return v.String()
	}

	return formatNumber(v)
}

func checkEnum(out reflect.Value) error {
	validator, ok := out.Interface().(interface{ IsValid() bool })
	if !ok || validator.IsValid() {
		return nil
	}

	return fmt.Errorf("%w: %v", ErrInvalidEnum, out.Interface())
}

func convertNumber(src, out reflect.Value) error {
	switch {
	case src.CanInt():
		return setSigned(out, src.Int())
	case src.CanUint():
		return setUnsigned(out, src.Uint())
	case src.CanFloat():
		return setFloat(out, src.Float())
	default:
		return fmt.Errorf("%w: %s is not a number", ErrUnsupportedPair, src.Type())
	}
}

func setSigned(out reflect.Value, i int64) error {
	switch {
	case out.CanInt():
		if out.OverflowInt(i) {
			return fmt.Errorf("%w: %d overflows %s", ErrLossy, i, out.Type())
		}

		out.SetInt(i)
	case out.CanUint():
		if i < 0 || out.OverflowUint(uint64(i)) {
			return fmt.Errorf("%w: %d overflows %s", ErrLossy, i, out.Type())
		}

		out.SetUint(uint64(i))
	case out.CanFloat():
		out.SetFloat(float64(i))
	default:
		return fmt.Errorf("%w: %s is not a number", ErrUnsupportedPair, out.Type())
	}

	return nil
}

func setUnsigned(out reflect.Value, u uint64) error {
	switch {
	case out.CanInt():
		if u > math.MaxInt64 || out.OverflowInt(int64(u)) {
			return fmt.Errorf("%w: %d overflows %s", ErrLossy, u, out.Type())
		}

		out.SetInt(int64(u))
	case out.CanUint():
		if out.OverflowUint(u) {
			return fmt.Errorf("%w: %d overflows %s", ErrLossy, u, out.Type())
		}

		out.SetUint(u)
	case out.CanFloat():
		out.SetFloat(float64(u))
	default:
		return fmt.Errorf("%w: %s is not a number", ErrUnsupportedPair, out.Type())
	}

	return nil
}

func setFloat(out reflect.Value, f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		if out.CanFloat() {
			out.SetFloat(f)
			return nil
		}

		return fmt.Errorf("%w: %v is not finite", ErrLossy, f)
	}

	switch {
	case out.CanFloat():
		if out.OverflowFloat(f) {
			return fmt.Errorf("%w: %v overflows %s", ErrLossy, f, out.Type())
		}

		out.SetFloat(f)

		return nil
	case out.CanInt():
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return fmt.Errorf("%w: %v does not fit %s", ErrLossy, f, out.Type())
		}

		return setSigned(out, int64(f))
	case out.CanUint():
		if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
			return fmt.Errorf("%w: %v does not fit %s", ErrLossy, f, out.Type())
		}

		return setUnsigned(out, uint64(f))
	default:
		return fmt.Errorf("%w: %s is not a number", ErrUnsupportedPair, out.Type())
	}
}

func setBoolFromNumber(src, out reflect.Value) error {
	i, err := integerOf(src)
	if err != nil {
		return err
	}

	switch i {
	case 0:
		out.SetBool(false)
	case 1:
		out.SetBool(true)
	default:
		return fmt.Errorf("%w: %d is neither 0 nor 1", ErrLossy, i)
	}

	return nil
}

func integerOf(src reflect.Value) (int64, error) {
	switch {
	case src.CanInt():
		return src.Int(), nil
	case src.CanUint():
		if src.Uint() > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d overflows int64", ErrLossy, src.Uint())
		}

		return int64(src.Uint()), nil
	default:
		return 0, fmt.Errorf("%w: %s is not an integer", ErrUnsupportedPair, src.Type())
	}
}

func parseNumber(text string, out reflect.Value) error {
	trimmed := strings.TrimSpace(text)

	switch {
	case out.CanInt():
		i, err := strconv.ParseInt(trimmed, 10, out.Type().Bits())
		if err != nil {
			return fmt.Errorf("%w: %q as %s", ErrInvalidText, text, out.Type())
		}

		out.SetInt(i)
	case out.CanUint():
		u, err := strconv.ParseUint(trimmed, 10, out.Type().Bits())
		if err != nil {
			return fmt.Errorf("%w: %q as %s", ErrInvalidText, text, out.Type())
		}

		out.SetUint(u)
	case out.CanFloat():
		f, err := strconv.ParseFloat(trimmed, out.Type().Bits())
		if err != nil {
			return fmt.Errorf("%w: %q as %s", ErrInvalidText, text, out.Type())
		}

		out.SetFloat(f)
	default:
		return fmt.Errorf("%w: %s is not a number", ErrUnsupportedPair, out.Type())
	}

	return nil
}

func formatNumber(v reflect.Value) string {
	switch {
	case v.CanInt():
		return strconv.FormatInt(v.Int(), 10)
	case v.CanUint():
		return strconv.FormatUint(v.Uint(), 10)
	case v.CanFloat():
		return strconv.FormatFloat(v.Float(), 'f', -1, v.Type().Bits())
	default:
		return fmt.Sprint(v.Interface())
	}
}
