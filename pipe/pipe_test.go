package pipe_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"data-casts/data"
	"data-casts/pipe"
	"data-casts/primitive"
)

type Role string

type Signup struct {
	Email    string        `json:"email"`
	Age      int           `json:"age"`
	Score    *float64      `json:"score"`
	Active   bool          `json:"active"`
	Role     Role          `json:"role"`
	Timeout  time.Duration `json:"timeout"`
	Nickname *string       `json:"nickname"`
	Tags     []string      `json:"tags"`
	Internal string        `json:"-"`
}

func signupClass(t *testing.T) *data.Class {
	t.Helper()

	class, err := data.ClassFor[Signup]()
	require.NoError(t, err)

	return class
}

func TestCastPrimitives(t *testing.T) {
	t.Parallel()

	class := signupClass(t)

	in := data.Properties{
		"email":   "a@example.com",
		"age":     "42",
		"score":   "9.5",
		"active":  "yes",
		"role":    "admin",
		"timeout": "30s",
		"tags":    "not a list",
		"extra":   "7",
	}

	out, err := pipe.NewCastPrimitives().Handle(in, class)
	require.NoError(t, err)

	score := 9.5
	want := data.Properties{
		"email":   "a@example.com",
		"age":     42,
		"score":   &score,
		"active":  true,
		"role":    Role("admin"),
		"timeout": 30 * time.Second,
		"tags":    "not a list",
		"extra":   "7",
	}

	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("properties mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "42", in["age"], "input properties are not modified")
}

func TestCastPrimitives_LeavesUncoercible(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	class := signupClass(t)

	in := data.Properties{"age": "forty", "active": nil}

	out, err := pipe.NewCastPrimitives(pipe.WithLogger(zap.New(core))).Handle(in, class)
	require.NoError(t, err)
	assert.Equal(t, "forty", out["age"])
	assert.Nil(t, out["active"])
	assert.NotContains(t, out, "email", "absent properties stay absent")

	entries := logs.FilterMessage("property left uncoerced").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "age", entries[0].ContextMap()["property"])
}

func TestCastPrimitives_Strict(t *testing.T) {
	t.Parallel()

	class := signupClass(t)

	_, err := pipe.NewCastPrimitives(pipe.Strict()).Handle(data.Properties{"age": "forty", "active": "perhaps"}, class)
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	require.ErrorIs(t, err, primitive.ErrInvalidText)
}

func TestCastPrimitives_Categories(t *testing.T) {
	t.Parallel()

	class := signupClass(t)

	out, err := pipe.NewCastPrimitives(pipe.WithCategories(primitive.CategoryTextualBool)).
		Handle(data.Properties{"age": "42", "active": "off"}, class)
	require.NoError(t, err)
	assert.Equal(t, "42", out["age"])
	assert.Equal(t, false, out["active"])
}

func TestBlankStringsToNull(t *testing.T) {
	t.Parallel()

	class := signupClass(t)

	in := data.Properties{
		"email":    "  ",
		"nickname": "",
		"role":     Role(" "),
		"age":      0,
		"extra":    "",
	}

	out, err := pipe.NewBlankStringsToNull().Handle(in, class)
	require.NoError(t, err)

	assert.Equal(t, data.Properties{
		"email":    nil,
		"nickname": nil,
		"role":     nil,
		"age":      0,
		"extra":    "",
	}, out)

	limited, err := pipe.NewBlankStringsToNull(pipe.WithFields("email")).Handle(in, class)
	require.NoError(t, err)
	assert.Nil(t, limited["email"])
	assert.Equal(t, "", limited["nickname"])
}

func TestPipeErrors(t *testing.T) {
	t.Parallel()

	_, err := pipe.NewBlankStringsToNull().Handle(data.Properties{}, nil)
	require.ErrorIs(t, err, pipe.ErrNilClass)

	_, err = pipe.NewCastPrimitives(pipe.WithFields("missing")).Handle(data.Properties{}, signupClass(t))
	require.ErrorIs(t, err, data.ErrUnknownField)
}

type Priority int

func (p Priority) IsValid() bool { return p >= 1 && p <= 3 }

type Ticket struct {
	Level    int8      `json:"level"`
	Owner    *Role     `json:"owner"`
	Priority *Priority `json:"priority"`
	Fallback Priority  `json:"fallback"`
	Alias    **string  `json:"alias"`
}

func TestCastPrimitives_PointersAndOverflow(t *testing.T) {
	t.Parallel()

	class, err := data.ClassFor[Ticket]()
	require.NoError(t, err)

	in := data.Properties{
		"level":    "300",
		"owner":    "admin",
		"priority": "2",
		"fallback": "7",
		"alias":    "x",
	}

	out, err := pipe.NewCastPrimitives().Handle(in, class)
	require.NoError(t, err)

	owner := Role("admin")
	priority := Priority(2)
	want := data.Properties{
		"level":    "300",
		"owner":    &owner,
		"priority": &priority,
		"fallback": "7",
		"alias":    "x",
	}

	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("properties mismatch (-want +got):\n%s", diff)
	}

	_, err = pipe.NewCastPrimitives(pipe.Strict()).Handle(data.Properties{"level": "300", "fallback": "7"}, class)
	assert.Len(t, multierr.Errors(err), 2)
	require.ErrorIs(t, err, primitive.ErrInvalidText)
	require.ErrorIs(t, err, primitive.ErrInvalidEnum)
}
