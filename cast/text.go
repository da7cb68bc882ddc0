package cast

import (
	"strings"
	"unicode/utf8"

	"data-casts/data"
	"data-casts/utils"
)

// Lowercase lowercases strings.
type Lowercase struct{}

func (Lowercase) Name() string { return "lowercase" }

func (Lowercase) Cast(value any, _ data.Field) (any, error) {
	if s, ok := value.(string); ok {
		return strings.ToLower(s), nil
	}

	return value, nil
}

// Uppercase uppercases strings.
type Uppercase struct{}

func (Uppercase) Name() string { return "uppercase" }

func (Uppercase) Cast(value any, _ data.Field) (any, error) {
	if s, ok := value.(string); ok {
		return strings.ToUpper(s), nil
	}

	return value, nil
}

// Trim removes leading and trailing characters from strings.
type Trim struct {
	// Cutset lists the characters to remove; empty means Unicode whitespace.
	Cutset string
}

func (Trim) Name() string { return "trim" }

func (t Trim) Cast(value any, _ data.Field) (any, error) {
	s, ok := value.(string)
	if !ok {
		return value, nil
	}

	if t.Cutset == "" {
		return strings.TrimSpace(s), nil
	}

	return strings.Trim(s, t.Cutset), nil
}

// NullIfBlank replaces empty and whitespace-only strings with nil.
type NullIfBlank struct{}

func (NullIfBlank) Name() string { return "null_if_blank" }

func (NullIfBlank) Cast(value any, _ data.Field) (any, error) {
	if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
		return nil, nil
	}

	return value, nil
}

// Default replaces nil with a fixed value.
type Default struct {
	Value any
}

func (Default) Name() string { return "default" }

func (d Default) Cast(value any, _ data.Field) (any, error) {
	if value == nil {
		return d.Value, nil
	}

	return value, nil
}

// Truncate shortens strings to at most Limit runes, Suffix included.
type Truncate struct {
	Limit  int
	Suffix string
}

// NewTruncate validates the limit against the suffix length.
func NewTruncate(limit int, suffix string) (Truncate, error) {
	if limit <= 0 || !utils.IsInRange(0, utf8.RuneCountInString(suffix), limit) {
		return Truncate{}, data.InvalidConfig("truncate", "limit %d cannot hold suffix %q", limit, suffix)
	}

	return Truncate{Limit: limit, Suffix: suffix}, nil
}

func (Truncate) Name() string { return "truncate" }

func (t Truncate) Cast(value any, _ data.Field) (any, error) {
	s, ok := value.(string)
	if !ok {
		return value, nil
	}

	return TruncateString(s, t.Limit, t.Suffix), nil
}

// TruncateString cuts s to limit runes, ending with suffix when cut.
func TruncateString(s string, limit int, suffix string) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}

	keep := limit - utf8.RuneCountInString(suffix)
	if keep < 0 {
		keep = 0
	}

	runes := []rune(s)

	return string(runes[:keep]) + suffix
}
