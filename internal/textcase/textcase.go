// Package textcase converts identifiers between case styles and folds text
// to ASCII.
package textcase

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"data-casts/internal/match"
)

// Style is an identifier case style.
type Style int

const (
	Snake Style = iota + 1
	Kebab
	Camel
	Pascal
	ScreamingSnake
	Title
	Lower
	Upper
)

var styleNames = map[Style]string{
	Snake:          "snake",
	Kebab:          "kebab",
	Camel:          "camel",
	Pascal:         "pascal",
	ScreamingSnake: "screaming_snake",
	Title:          "title",
	Lower:          "lower",
	Upper:          "upper",
}

// ParseStyle parses a style name. Separators and case are ignored, so
// "screaming_snake", "ScreamingSnake" and "screaming-snake" are equivalent.
func ParseStyle(s string) (Style, error) {
	want := match.NormalizeIdent(s)
	for style, name := range styleNames {
		if match.NormalizeIdent(name) == want {
			return style, nil
		}
	}

	return 0, fmt.Errorf("unknown case style %q", s)
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Style(%d)", int(s))
}

// Convert rewrites s in the given style.
func Convert(style Style, s string) string {
	switch style {
	case Snake:
		return strcase.ToSnake(s)
	case Kebab:
		return strcase.ToKebab(s)
	case Camel:
		return strcase.ToLowerCamel(s)
	case Pascal:
		return strcase.ToCamel(s)
	case ScreamingSnake:
		return strcase.ToScreamingSnake(s)
	case Title:
		return cases.Title(language.Und).String(s)
	case Lower:
		return cases.Lower(language.Und).String(s)
	case Upper:
		return cases.Upper(language.Und).String(s)
	default:
		return s
	}
}

// letters without a canonical decomposition
var ligatures = map[rune]string{
	'ß': "ss", 'æ': "ae", 'Æ': "AE", 'œ': "oe", 'Œ': "OE",
	'ø': "o", 'Ø': "O", 'ł': "l", 'Ł': "L", 'đ': "d", 'Đ': "D",
	'þ': "th", 'Þ': "Th", 'ð': "d", 'Ð': "D", 'ı': "i",
}

// FoldASCII strips diacritics from s and replaces every rune that still is not
// ASCII with replacement.
func FoldASCII(s, replacement string) string {
	stripped, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		stripped = s
	}

	var b strings.Builder

	b.Grow(len(stripped))

	for _, r := range stripped {
		switch {
		case r <= unicode.MaxASCII:
			b.WriteRune(r)
		case ligatures[r] != "":
			b.WriteString(ligatures[r])
		default:
			b.WriteString(replacement)
		}
	}

	return b.String()
}

// IsASCII reports whether every rune of s is 7-bit ASCII.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}

	return true
}

// Slug folds s to ASCII, drops punctuation, splits camel case words and
// joins the lowercase words with separator.
func Slug(s, separator string) string {
	words := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}

		return ' '
	}, FoldASCII(s, ""))

	return strings.Join(match.Tokens(words), separator)
}
