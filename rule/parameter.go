package rule

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Parameter serializes one rule parameter:
//   - nil as "null", bools as "true" or "false"
//   - numbers in their shortest form
//   - time.Time as RFC3339
//   - fmt.Stringer values through String
//   - strings containing a comma, a pipe, a double quote, a line break or
//     leading whitespace are double-quoted with inner quotes doubled
func Parameter(v any) string {
	switch p := v.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(p)
	case string:
		return quote(p)
	case time.Time:
		return p.Format(time.RFC3339)
	case fmt.Stringer:
		return quote(p.String())
	}

	rv := reflect.ValueOf(v)

	switch {
	case rv.CanInt():
		return strconv.FormatInt(rv.Int(), 10)
	case rv.CanUint():
		return strconv.FormatUint(rv.Uint(), 10)
	case rv.CanFloat():
		return strconv.FormatFloat(rv.Float(), 'f', -1, rv.Type().Bits())
	case rv.Kind() == reflect.String:
		return quote(rv.String())
	case rv.Kind() == reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	default:
		return quote(fmt.Sprint(v))
	}
}

func quote(s string) string {
	if !strings.ContainsAny(s, ",|\"\r\n") && strings.TrimLeft(s, " \t") == s {
		return s
	}

	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// flatten expands slice and array values into separate parameters.
func flatten(values []any) []any {
	out := make([]any, 0, len(values))

	for _, v := range values {
		rv := reflect.ValueOf(v)
		if rv.IsValid() && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Type().Elem().Kind() != reflect.Uint8 {
			for i := range rv.Len() {
				out = append(out, rv.Index(i).Interface())
			}

			continue
		}

		out = append(out, v)
	}

	return out
}
