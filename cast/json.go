package cast

import (
	"encoding/json"
	"reflect"

	"github.com/yosuke-furukawa/json5/encoding/json5"

	"data-casts/data"
)

// JSONDecode decodes JSON text held in a string or []byte. When the field is
// declared as a struct, map or slice the document is decoded into that type,
// otherwise into the generic any representation.
type JSONDecode struct {
	// Lenient accepts the JSON5 subset of unquoted object keys and trailing
	// commas. Strings must still be double quoted.
	Lenient bool
}

func (JSONDecode) Name() string { return "json_decode" }

func (j JSONDecode) Cast(value any, field data.Field) (any, error) {
	var raw []byte

	switch v := value.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		if field.Type == bytesType {
			return value, nil
		}

		raw = v
	default:
		return value, nil
	}

	target := decodeTarget(field.Type)

	unmarshal := json.Unmarshal
	if j.Lenient {
		unmarshal = json5.Unmarshal
	}

	err := unmarshal(raw, target.Interface())
	if err != nil {
		return nil, data.Malformed(j.Name(), field, "invalid json: %v", err)
	}

	return target.Elem().Interface(), nil
}

func decodeTarget(t reflect.Type) reflect.Value {
	if t == nil {
		return reflect.New(reflect.TypeOf((*any)(nil)).Elem())
	}

	switch t.Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice:
		if t != bytesType {
			return reflect.New(t)
		}
	case reflect.Ptr:
		if t.Elem().Kind() == reflect.Struct {
			return reflect.New(t)
		}
	}

	return reflect.New(reflect.TypeOf((*any)(nil)).Elem())
}
