package transformer

import (
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"data-casts/data"
	"data-casts/internal/numeric"
	"data-casts/utils"
)

// maxFormatPrecision is the largest precision humanize.FormatFloat supports.
const maxFormatPrecision = 9

// NumberFormat renders numbers with a fixed precision and configurable
// decimal and thousands separators, e.g. 1234.5 -> "1,234.50".
type NumberFormat struct {
	format string
}

// NewNumberFormat builds a NumberFormat. Separators must be single runes
// other than '#', '0' and '+'; an empty thousands separator disables grouping.
func NewNumberFormat(precision int, decimal, thousands string) (NumberFormat, error) {
	const unit = "number_format"

	if !utils.IsInRange(0, precision, maxFormatPrecision) {
		return NumberFormat{}, data.InvalidConfig(unit, "precision %d is outside 0..%d", precision, maxFormatPrecision)
	}

	if decimal == "" {
		decimal = "."
	}

	if !validSeparator(decimal) {
		return NumberFormat{}, data.InvalidConfig(unit, "invalid decimal separator %q", decimal)
	}

	if thousands != "" && (!validSeparator(thousands) || thousands == decimal) {
		return NumberFormat{}, data.InvalidConfig(unit, "invalid thousands separator %q", thousands)
	}

	var b strings.Builder

	b.WriteString("#")

	if thousands != "" {
		b.WriteString(thousands)
	}

	b.WriteString("###")
	b.WriteString(decimal)
	b.WriteString(strings.Repeat("#", precision))

	return NumberFormat{format: b.String()}, nil
}

func validSeparator(s string) bool {
	if utf8.RuneCountInString(s) != 1 {
		return false
	}

	return s != "#" && s != "0" && s != "+"
}

func (NumberFormat) Name() string { return "number_format" }

// Format returns the humanize format string in use.
func (n NumberFormat) Format() string { return n.format }

func (n NumberFormat) Transform(value any, field data.Field) (any, error) {
	f, ok, err := numeric.Float(value, true)
	if !ok {
		return value, nil
	}

	if err != nil {
		return nil, data.Malformed(n.Name(), field, "%v", err)
	}

	format := n.format
	if format == "" {
		format = "#,###.##"
	}

	return humanize.FormatFloat(format, f), nil
}

// Round rounds numbers to Precision decimal places.
type Round struct {
	Precision int
	Mode      numeric.RoundMode
}

func (Round) Name() string { return "round" }

func (r Round) Transform(value any, _ data.Field) (any, error) {
	f, ok, _ := numeric.Float(value, false)
	if !ok {
		return value, nil
	}

	return numeric.Round(f, r.Precision, r.Mode), nil
}

// HumanBytes renders byte counts as "1.5 MB", or "1.4 MiB" with IEC units.
type HumanBytes struct {
	IEC bool
}

func (HumanBytes) Name() string { return "human_bytes" }

func (h HumanBytes) Transform(value any, field data.Field) (any, error) {
	f, ok, _ := numeric.Float(value, false)
	if !ok {
		return value, nil
	}

	if f < 0 {
		return nil, data.Malformed(h.Name(), field, "negative byte count %v", f)
	}

	if h.IEC {
		return humanize.IBytes(uint64(f)), nil
	}

	return humanize.Bytes(uint64(f)), nil
}
