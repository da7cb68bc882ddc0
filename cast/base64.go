package cast

import (
	"encoding/base64"
	"reflect"
	"strings"

	"data-casts/data"
)

var bytesType = reflect.TypeOf([]byte(nil))

// Base64Decode decodes base64 strings. The result is []byte when the field is
// declared as []byte and a string otherwise.
type Base64Decode struct {
	// Strict accepts only the padded standard alphabet. Otherwise the
	// unpadded and URL-safe alphabets are tried too and whitespace is ignored.
	Strict bool
}

func (Base64Decode) Name() string { return "base64_decode" }

func (b Base64Decode) Cast(value any, field data.Field) (any, error) {
	s, ok := value.(string)
	if !ok {
		return value, nil
	}

	decoded, err := b.decode(s)
	if err != nil {
		return nil, data.Malformed(b.Name(), field, "invalid base64: %v", err)
	}

	if field.Type == bytesType {
		return decoded, nil
	}

	return string(decoded), nil
}

func (b Base64Decode) decode(s string) ([]byte, error) {
	if b.Strict {
		return base64.StdEncoding.Strict().DecodeString(s)
	}

	s = strings.Join(strings.Fields(s), "")

	var firstErr error

	for _, enc := range []*base64.Encoding{
		base64.StdEncoding, base64.RawStdEncoding, base64.URLEncoding, base64.RawURLEncoding,
	} {
		decoded, err := enc.DecodeString(s)
		if err == nil {
			return decoded, nil
		}

		if firstErr == nil {
			firstErr = err
		}
	}

	return nil, firstErr
}
