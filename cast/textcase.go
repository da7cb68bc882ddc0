package cast

import (
	"data-casts/data"
	"data-casts/internal/textcase"
)

// ASCII strips diacritics and replaces the remaining non-ASCII runes.
type ASCII struct {
	Replacement string
}

func (ASCII) Name() string { return "ascii" }

func (a ASCII) Cast(value any, _ data.Field) (any, error) {
	if s, ok := value.(string); ok {
		return textcase.FoldASCII(s, a.Replacement), nil
	}

	return value, nil
}

// Slug turns strings into lowercase ASCII words joined by Separator.
type Slug struct {
	Separator string
}

func (Slug) Name() string { return "slug" }

func (c Slug) Cast(value any, _ data.Field) (any, error) {
	s, ok := value.(string)
	if !ok {
		return value, nil
	}

	sep := c.Separator
	if sep == "" {
		sep = "-"
	}

	return textcase.Slug(s, sep), nil
}

// Case rewrites strings in an identifier case style.
type Case struct {
	Style textcase.Style
}

func (Case) Name() string { return "case" }

func (c Case) Cast(value any, _ data.Field) (any, error) {
	if s, ok := value.(string); ok {
		return textcase.Convert(c.Style, s), nil
	}

	return value, nil
}
