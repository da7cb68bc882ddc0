package cast

import (
	"strings"

	"data-casts/data"
)

// Explode splits a string into a []string.
type Explode struct {
	separator string
	trim      bool
	dropEmpty bool
}

// ExplodeOption configures Explode.
type ExplodeOption func(*Explode)

// WithTrim trims whitespace around every item.
func WithTrim() ExplodeOption {
	return func(e *Explode) { e.trim = true }
}

// WithoutEmpty drops items that are empty after trimming.
func WithoutEmpty() ExplodeOption {
	return func(e *Explode) { e.dropEmpty = true }
}

// NewExplode builds an Explode cast; an empty separator means ",".
func NewExplode(separator string, opts ...ExplodeOption) Explode {
	if separator == "" {
		separator = ","
	}

	e := Explode{separator: separator}
	for _, opt := range opts {
		opt(&e)
	}

	return e
}

func (Explode) Name() string { return "explode" }

func (e Explode) Cast(value any, _ data.Field) (any, error) {
	s, ok := value.(string)
	if !ok {
		return value, nil
	}

	if s == "" {
		return []string{}, nil
	}

	parts := strings.Split(s, e.separator)
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if e.trim {
			p = strings.TrimSpace(p)
		}

		if e.dropEmpty && p == "" {
			continue
		}

		out = append(out, p)
	}

	return out, nil
}
