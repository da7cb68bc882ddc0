package transformer

import (
	"encoding/base64"
	"fmt"
	"reflect"
	"strings"

	"data-casts/cast"
	"data-casts/data"
	"data-casts/internal/textcase"
)

// Base64Encode encodes strings and byte slices.
type Base64Encode struct {
	URL   bool
	NoPad bool
}

func (Base64Encode) Name() string { return "base64_encode" }

func (b Base64Encode) Transform(value any, _ data.Field) (any, error) {
	var raw []byte

	switch v := value.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return value, nil
	}

	return b.encoding().EncodeToString(raw), nil
}

func (b Base64Encode) encoding() *base64.Encoding {
	switch {
	case b.URL && b.NoPad:
		return base64.RawURLEncoding
	case b.URL:
		return base64.URLEncoding
	case b.NoPad:
		return base64.RawStdEncoding
	default:
		return base64.StdEncoding
	}
}

// Implode joins slices and arrays of scalars into one string.
type Implode struct {
	Separator string
}

func (Implode) Name() string { return "implode" }

func (i Implode) Transform(value any, field data.Field) (any, error) {
	if s, ok := value.([]string); ok {
		return strings.Join(s, i.separator()), nil
	}

	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) || rv.Type() == reflect.TypeOf([]byte(nil)) {
		return value, nil
	}

	parts := make([]string, 0, rv.Len())

	for idx := range rv.Len() {
		item := rv.Index(idx)
		for item.Kind() == reflect.Interface || item.Kind() == reflect.Ptr {
			if item.IsNil() {
				break
			}

			item = item.Elem()
		}

		switch item.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct:
			return nil, data.Unsupported(i.Name(), field, item.Interface())
		case reflect.Interface, reflect.Ptr:
			parts = append(parts, "")
		default:
			parts = append(parts, fmt.Sprint(item.Interface()))
		}
	}

	return strings.Join(parts, i.separator()), nil
}

func (i Implode) separator() string {
	if i.Separator == "" {
		return ","
	}

	return i.Separator
}

// Lowercase lowercases strings.
type Lowercase struct{}

func (Lowercase) Name() string { return "lowercase" }

func (Lowercase) Transform(value any, field data.Field) (any, error) {
	return cast.Lowercase{}.Cast(value, field)
}

// Uppercase uppercases strings.
type Uppercase struct{}

func (Uppercase) Name() string { return "uppercase" }

func (Uppercase) Transform(value any, field data.Field) (any, error) {
	return cast.Uppercase{}.Cast(value, field)
}

// Case rewrites strings in an identifier case style.
type Case struct {
	Style textcase.Style
}

func (Case) Name() string { return "case" }

func (c Case) Transform(value any, _ data.Field) (any, error) {
	if s, ok := value.(string); ok {
		return textcase.Convert(c.Style, s), nil
	}

	return value, nil
}

// Truncate shortens strings to at most Limit runes, Suffix included.
type Truncate struct {
	Limit  int
	Suffix string
}

func (Truncate) Name() string { return "truncate" }

func (t Truncate) Transform(value any, _ data.Field) (any, error) {
	if s, ok := value.(string); ok {
		return cast.TruncateString(s, t.Limit, t.Suffix), nil
	}

	return value, nil
}

// Stringer renders fmt.Stringer values, such as uuid.UUID, and byte slices
// as strings.
type Stringer struct{}

func (Stringer) Name() string { return "stringer" }

func (Stringer) Transform(value any, _ data.Field) (any, error) {
	switch v := value.(type) {
	case fmt.Stringer:
		return v.String(), nil
	case []byte:
		return string(v), nil
	default:
		return value, nil
	}
}
