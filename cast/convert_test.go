package cast_test

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"data-casts/cast"
	"data-casts/data"
	"data-casts/internal/numeric"
)

func TestBase64Decode(t *testing.T) {
	t.Parallel()

	got, err := cast.Base64Decode{}.Cast("aGVsbG8=", anyField)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	got, err = cast.Base64Decode{}.Cast("aGVsbG8", anyField)
	require.NoError(t, err)
	assert.Equal(t, "hello", got, "unpadded input is accepted when not strict")

	got, err = cast.Base64Decode{}.Cast("aGVs\nbG8=", data.FieldOf[[]byte]("payload"))
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)

	_, err = cast.Base64Decode{Strict: true}.Cast("aGVsbG8", anyField)
	require.ErrorIs(t, err, data.ErrMalformedInput)

	_, err = cast.Base64Decode{}.Cast("not base64!", anyField)
	require.ErrorIs(t, err, data.ErrMalformedInput)

	got, err = cast.Base64Decode{}.Cast(17, anyField)
	require.NoError(t, err)
	assert.Equal(t, 17, got)
}

func TestBoolean(t *testing.T) {
	t.Parallel()

	b, err := cast.NewBoolean(nil, nil)
	require.NoError(t, err)

	tests := []struct {
		input    any
		expected any
	}{
		{"yes", true},
		{" ON ", true},
		{"1", true},
		{"no", false},
		{"", false},
		{1, true},
		{int64(0), false},
		{2, 2},
		{"maybe", "maybe"},
		{true, true},
		{nil, nil},
	}

	for _, tt := range tests {
		got, err := b.Cast(tt.input, anyField)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, "input %#v", tt.input)
	}

	custom, err := cast.NewBoolean([]string{"ja"}, []string{"nein"})
	require.NoError(t, err)

	got, err := custom.Cast("JA", anyField)
	require.NoError(t, err)
	assert.Equal(t, true, got)

	got, err = custom.Cast("yes", anyField)
	require.NoError(t, err)
	assert.Equal(t, "yes", got)

	_, err = cast.NewBoolean([]string{"x"}, []string{"X"})
	require.ErrorIs(t, err, data.ErrInvalidConfig)
}

func TestExplode(t *testing.T) {
	t.Parallel()

	got, err := cast.NewExplode("").Cast("a,b,,c", anyField)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "", "c"}, got)

	got, err = cast.NewExplode(";", cast.WithTrim(), cast.WithoutEmpty()).Cast(" a ; b ;; ", anyField)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	got, err = cast.NewExplode(",").Cast("", anyField)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got)

	got, err = cast.NewExplode(",").Cast([]string{"x"}, anyField)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, got)
}

func TestNumberCasts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		unit     data.Cast
		input    any
		expected any
	}{
		{"round float", cast.Round{Precision: 2}, 3.14159, 3.14},
		{"round string", cast.Round{Precision: 1}, " 2.25 ", 2.3},
		{"round int", cast.Round{Precision: 2}, 7, 7.0},
		{"round floor", cast.Round{Precision: 0, Mode: numeric.Floor}, 7.9, 7.0},
		{"round passthrough", cast.Round{}, true, true},
		{"integer string", cast.Integer{}, "42", int64(42)},
		{"integer integral float string", cast.Integer{}, "42.0", int64(42)},
		{"integer float", cast.Integer{}, float64(-3), int64(-3)},
		{"integer int32", cast.Integer{}, int32(9), int64(9)},
		{"integer uint", cast.Integer{}, uint(11), int64(11)},
		{"integer uint64", cast.Integer{}, uint64(7), int64(7)},
		{"round huge string", cast.Round{Precision: 2}, "1e307", 1e307},
		{"round near tie", cast.Round{}, 2.4999999999, 2.0},
		{"integer passthrough", cast.Integer{}, []int{1}, []int{1}},
		{"float string", cast.Float{}, "1e3", 1000.0},
		{"float int", cast.Float{}, 4, 4.0},
		{"float passthrough", cast.Float{}, "x" == "y", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.unit.Cast(tt.input, anyField)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNumberCastErrors(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		unit  data.Cast
		input any
	}{
		"round text":       {cast.Round{}, "abc"},
		"integer text":     {cast.Integer{}, "4 apples"},
		"integer fraction": {cast.Integer{}, 4.5},
		"integer overflow": {cast.Integer{}, uint64(math.MaxUint64)},
		"float text":       {cast.Float{}, "one"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := tc.unit.Cast(tc.input, anyField)
			require.ErrorIs(t, err, data.ErrMalformedInput)
		})
	}
}

type address struct {
	Street string `json:"street"`
	Zip    string `json:"zip"`
}

func TestJSONDecode(t *testing.T) {
	t.Parallel()

	got, err := cast.JSONDecode{}.Cast(`{"a":[1,2],"b":null}`, anyField)
	require.NoError(t, err)

	if diff := cmp.Diff(map[string]any{"a": []any{1.0, 2.0}, "b": nil}, got); diff != "" {
		t.Errorf("decoded mismatch (-want +got):\n%s", diff)
	}

	got, err = cast.JSONDecode{}.Cast([]byte(`{"street":"Main","zip":"01"}`), data.FieldOf[address]("address"))
	require.NoError(t, err)
	assert.Equal(t, address{Street: "Main", Zip: "01"}, got)

	got, err = cast.JSONDecode{Lenient: true}.Cast(`{street: "Main", zip: "01",}`, data.FieldOf[*address]("address"))
	require.NoError(t, err)
	assert.Equal(t, &address{Street: "Main", Zip: "01"}, got)

	got, err = cast.JSONDecode{Lenient: true}.Cast(`["a", "b",]`, anyField)
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, got)

	_, err = cast.JSONDecode{}.Cast(`{street: "Main"}`, anyField)
	require.ErrorIs(t, err, data.ErrMalformedInput)

	_, err = cast.JSONDecode{Lenient: true}.Cast(`{"street": 'Main'}`, anyField)
	require.ErrorIs(t, err, data.ErrMalformedInput)

	raw := []byte("keep")
	got, err = cast.JSONDecode{}.Cast(raw, data.FieldOf[[]byte]("raw"))
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestDateTime(t *testing.T) {
	t.Parallel()

	got, err := cast.NewDateTime().Cast("2024-02-29T12:30:00+02:00", anyField)
	require.NoError(t, err)
	assert.True(t, got.(time.Time).Equal(time.Date(2024, 2, 29, 10, 30, 0, 0, time.UTC)))

	got, err = cast.NewDateTime().Cast("2024-02-29", anyField)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got)

	got, err = cast.NewDateTime(cast.WithLayouts("02/01/2006")).Cast("29/02/2024", anyField)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got)

	got, err = cast.NewDateTime(cast.WithUnixSeconds()).Cast(int64(86400), anyField)
	require.NoError(t, err)
	assert.True(t, got.(time.Time).Equal(time.Date(1970, 1, 2, 0, 0, 0, 0, time.UTC)))

	got, err = cast.NewDateTime().Cast(86400, anyField)
	require.NoError(t, err)
	assert.Equal(t, 86400, got)

	_, err = cast.NewDateTime().Cast("yesterday", anyField)
	require.ErrorIs(t, err, data.ErrMalformedInput)
}

func TestDuration(t *testing.T) {
	t.Parallel()

	got, err := cast.Duration{}.Cast("1h30m", anyField)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, got)

	got, err = cast.Duration{}.Cast(int64(1000), anyField)
	require.NoError(t, err)
	assert.Equal(t, time.Microsecond, got)

	_, err = cast.Duration{}.Cast("soon", anyField)
	require.ErrorIs(t, err, data.ErrMalformedInput)
}

func TestUUID(t *testing.T) {
	t.Parallel()

	const text = "f47ac10b-58cc-4372-a567-0e02b2c3d479"

	got, err := cast.UUID{}.Cast(text, anyField)
	require.NoError(t, err)
	assert.Equal(t, uuid.MustParse(text), got)

	id := uuid.MustParse(text)
	got, err = cast.UUID{}.Cast(id[:], anyField)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	got, err = cast.UUID{}.Cast(id, anyField)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = cast.UUID{}.Cast("f47ac10b", anyField)
	require.ErrorIs(t, err, data.ErrMalformedInput)
}
