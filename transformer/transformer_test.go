package transformer_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"data-casts/data"
	"data-casts/internal/numeric"
	"data-casts/internal/textcase"
	"data-casts/transformer"
)

var anyField = data.Field{Name: "value"}

func TestTransformers(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	when := time.Date(2024, 2, 29, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		unit     data.Transformer
		input    any
		expected any
	}{
		{"base64 string", transformer.Base64Encode{}, "hello", "aGVsbG8="},
		{"base64 raw url", transformer.Base64Encode{URL: true, NoPad: true}, []byte{0xfb, 0xff}, "-_8"},
		{"base64 passthrough", transformer.Base64Encode{}, 3, 3},
		{"implode strings", transformer.Implode{Separator: " | "}, []string{"a", "b"}, "a | b"},
		{"implode default separator", transformer.Implode{}, []int{1, 2, 3}, "1,2,3"},
		{"implode any", transformer.Implode{Separator: ";"}, []any{"x", 2, true, nil}, "x;2;true;"},
		{"implode array", transformer.Implode{}, [2]string{"p", "q"}, "p,q"},
		{"implode passthrough", transformer.Implode{}, "already", "already"},
		{"lowercase", transformer.Lowercase{}, "ABC", "abc"},
		{"uppercase", transformer.Uppercase{}, "abc", "ABC"},
		{"case kebab", transformer.Case{Style: textcase.Kebab}, "createdAt", "created-at"},
		{"truncate", transformer.Truncate{Limit: 4, Suffix: "."}, "abcdef", "abc."},
		{"round", transformer.Round{Precision: 1}, 2.345, 2.3},
		{"round ceil", transformer.Round{Precision: 0, Mode: numeric.Ceil}, 2.1, 3.0},
		{"round huge", transformer.Round{Precision: 2}, 1e307, 1e307},
		{"round floor near integer", transformer.Round{Mode: numeric.Floor}, 2.9999999999, 2.0},
		{"round leaves strings", transformer.Round{Precision: 1}, "2.345", "2.345"},
		{"date format default", transformer.DateFormat{}, when, "2024-02-29T10:30:00Z"},
		{"date format layout", transformer.DateFormat{Layout: time.DateOnly}, &when, "2024-02-29"},
		{"date format passthrough", transformer.DateFormat{}, "2024", "2024"},
		{"duration text", transformer.DurationFormat{}, 90 * time.Second, "1m30s"},
		{"duration seconds", transformer.DurationFormat{Unit: transformer.DurationSeconds}, 1500 * time.Millisecond, 1.5},
		{"duration millis", transformer.DurationFormat{Unit: transformer.DurationMilliseconds}, 2 * time.Second, int64(2000)},
		{"json", transformer.JSONEncode{}, map[string]any{"a": 1}, `{"a":1}`},
		{"json indent", transformer.JSONEncode{Indent: "  "}, []int{1}, "[\n  1\n]"},
		{"boolean word default", transformer.BooleanWord{}, true, "true"},
		{"boolean word custom", transformer.BooleanWord{True: "yes", False: "no"}, false, "no"},
		{"boolean word passthrough", transformer.BooleanWord{}, "true", "true"},
		{"human bytes", transformer.HumanBytes{}, 1500000, "1.5 MB"},
		{"human bytes iec", transformer.HumanBytes{IEC: true}, uint64(1024), "1.0 KiB"},
		{"stringer uuid", transformer.Stringer{}, id, "f47ac10b-58cc-4372-a567-0e02b2c3d479"},
		{"stringer bytes", transformer.Stringer{}, []byte("raw"), "raw"},
		{"stringer passthrough", transformer.Stringer{}, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.unit.Transform(tt.input, anyField)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNumberFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		precision int
		decimal   string
		thousands string
		input     any
		expected  string
	}{
		{2, ".", ",", 1234567.891, "1,234,567.89"},
		{2, ",", ".", 1234567.891, "1.234.567,89"},
		{0, ".", ",", 1234567.891, "1,234,568"},
		{1, ".", "", 1234.56, "1234.6"},
		{2, ".", ",", -1234.5, "-1,234.50"},
		{2, ".", ",", "99.999", "100.00"},
		{3, ".", ",", 7, "7.000"},
	}

	for _, tt := range tests {
		nf, err := transformer.NewNumberFormat(tt.precision, tt.decimal, tt.thousands)
		require.NoError(t, err)

		got, err := nf.Transform(tt.input, anyField)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, "format %q input %v", nf.Format(), tt.input)
	}
}

func TestNumberFormatErrors(t *testing.T) {
	t.Parallel()

	for _, args := range []struct {
		precision           int
		decimal, thousands string
	}{
		{-1, ".", ","},
		{10, ".", ","},
		{2, "##", ","},
		{2, ".", "."},
		{2, ".", "0"},
	} {
		_, err := transformer.NewNumberFormat(args.precision, args.decimal, args.thousands)
		require.ErrorIs(t, err, data.ErrInvalidConfig, "%+v", args)
	}

	nf, err := transformer.NewNumberFormat(2, "", "")
	require.NoError(t, err)

	_, err = nf.Transform("twelve", anyField)
	require.ErrorIs(t, err, data.ErrMalformedInput)

	got, err := nf.Transform(nil, anyField)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTransformerErrors(t *testing.T) {
	t.Parallel()

	_, err := transformer.Implode{}.Transform([][]string{{"a"}}, anyField)
	require.ErrorIs(t, err, data.ErrUnsupportedValue)

	_, err = transformer.JSONEncode{}.Transform(func() {}, anyField)
	require.ErrorIs(t, err, data.ErrUnsupportedValue)

	_, err = transformer.HumanBytes{}.Transform(-1, anyField)
	require.ErrorIs(t, err, data.ErrMalformedInput)

	_, err = transformer.DurationFormat{Unit: "weeks"}.Transform(time.Hour, anyField)
	require.ErrorIs(t, err, data.ErrInvalidConfig)
}
