package cast

import (
	"strings"

	"data-casts/data"
)

// Enum maps strings onto one of a fixed set of allowed values.
type Enum struct {
	values          []string
	caseInsensitive bool
}

// NewEnum builds an Enum cast over values.
func NewEnum(values []string, caseInsensitive bool) (Enum, error) {
	if len(values) == 0 {
		return Enum{}, data.InvalidConfig("enum", "no allowed values")
	}

	return Enum{values: values, caseInsensitive: caseInsensitive}, nil
}

func (Enum) Name() string { return "enum" }

func (e Enum) Cast(value any, field data.Field) (any, error) {
	s, ok := value.(string)
	if !ok {
		return value, nil
	}

	for _, allowed := range e.values {
		if allowed == s || e.caseInsensitive && strings.EqualFold(allowed, s) {
			return allowed, nil
		}
	}

	return nil, data.Malformed(e.Name(), field, "%q is not one of [%s]", s, strings.Join(e.values, ", "))
}
