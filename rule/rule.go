package rule

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidRule = errors.New("invalid rule")

// Keywords understood by Parse.
const (
	KeywordASCII           = "ascii"
	KeywordDecimal         = "decimal"
	KeywordLowercase       = "lowercase"
	KeywordUppercase       = "uppercase"
	KeywordRequiredWith    = "required_with"
	KeywordRequiredWithout = "required_without"
	KeywordRequiredIf      = "required_if"
	KeywordPresentIf       = "present_if"
	KeywordProhibitedIf    = "prohibited_if"
	KeywordMissingWith     = "missing_with"
)

// Rule is a validation rule definition.
type Rule interface {
	Keyword() string
	Parameters() []string
	String() string
}

// Format renders r as "keyword" or "keyword:p1,p2".
func Format(r Rule) string {
	params := r.Parameters()
	if len(params) == 0 {
		return r.Keyword()
	}

	return r.Keyword() + ":" + strings.Join(params, ",")
}

// ASCII requires a string made of 7-bit ASCII characters only.
type ASCII struct{}

func (ASCII) Keyword() string { return KeywordASCII }
func (ASCII) Parameters() []string { return nil }
func (r ASCII) String() string { return Format(r) }

// Lowercase requires a string without uppercase characters.
type Lowercase struct{}

func (Lowercase) Keyword() string { return KeywordLowercase }
func (Lowercase) Parameters() []string { return nil }
func (r Lowercase) String() string { return Format(r) }

// Uppercase requires a string without lowercase characters.
type Uppercase struct{}

func (Uppercase) Keyword() string { return KeywordUppercase }
func (Uppercase) Parameters() []string { return nil }
func (r Uppercase) String() string { return Format(r) }

// Decimal requires a number with between Min and Max decimal places.
type Decimal struct {
	Min, Max int
}

// NewDecimal builds a Decimal rule; min == max asks for exactly that many
// places.
func NewDecimal(minPlaces, maxPlaces int) (Decimal, error) {
	if minPlaces < 0 || maxPlaces < minPlaces {
		return Decimal{}, fmt.Errorf("%w: decimal places %d..%d", ErrInvalidRule, minPlaces, maxPlaces)
	}

	return Decimal{Min: minPlaces, Max: maxPlaces}, nil
}

func (Decimal) Keyword() string { return KeywordDecimal }

func (r Decimal) Parameters() []string {
	if r.Min == r.Max {
		return []string{Parameter(r.Min)}
	}

	return []string{Parameter(r.Min), Parameter(r.Max)}
}

func (r Decimal) String() string { return Format(r) }
