package cast

import (
	"reflect"
	"slices"
	"strings"

	"data-casts/data"
	"data-casts/primitive"
)

var boolType = reflect.TypeOf(false)

// Boolean turns truthy and falsy words into bools. Integers 0 and 1 are
// accepted too. Words outside both lists pass through unchanged so that
// validation can report them.
type Boolean struct {
	truthy []string
	falsy  []string
}

// NewBoolean builds a Boolean cast. Empty lists fall back to the
// yes/no, on/off, true/false, 1/0 vocabulary. Words are matched
// case-insensitively after trimming.
func NewBoolean(truthy, falsy []string) (Boolean, error) {
	if len(truthy) == 0 {
		truthy = primitive.TruthyWords()
	}

	if len(falsy) == 0 {
		falsy = append(primitive.FalsyWords(), "")
	}

	b := Boolean{truthy: normalizeWords(truthy), falsy: normalizeWords(falsy)}

	for _, w := range b.truthy {
		if slices.Contains(b.falsy, w) {
			return Boolean{}, data.InvalidConfig(b.Name(), "word %q is both truthy and falsy", w)
		}
	}

	return b, nil
}

func normalizeWords(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		out = append(out, strings.ToLower(strings.TrimSpace(w)))
	}

	return out
}

func (Boolean) Name() string { return "boolean" }

func (b Boolean) Cast(value any, _ data.Field) (any, error) {
	switch v := value.(type) {
	case string:
		word := strings.ToLower(strings.TrimSpace(v))

		switch {
		case slices.Contains(b.truthy, word):
			return true, nil
		case slices.Contains(b.falsy, word):
			return false, nil
		default:
			return value, nil
		}
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		coerced, err := primitive.Coerce(v, boolType, primitive.CategoryNumericBool)
		if err != nil {
			return value, nil
		}

		return coerced, nil
	default:
		return value, nil
	}
}
