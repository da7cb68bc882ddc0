package profile_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"data-casts/data"
	"data-casts/internal/diagnostic"
	"data-casts/internal/profile"
	"data-casts/internal/registry"
)

func TestLoadFile(t *testing.T) {
	t.Parallel()

	f, err := profile.LoadFile(filepath.Join("testdata", "user.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, []string{"user"}, f.Names())

	p := f.Profile("user")
	require.NotNil(t, p)
	assert.Nil(t, f.Profile("missing"))

	assert.Equal(t, []string{"blank_strings_to_null", "cast_primitives"}, p.Pipes.Names())
	assert.Equal(t, "cast_primitives:fields=age", p.Pipes[1].String())

	require.Len(t, p.Fields, 4)

	email := p.Fields[0]
	assert.Equal(t, []string{"trim", "lowercase"}, email.Cast.Names())
	assert.Equal(t, []string{"lowercase"}, email.Transform.Names())
	assert.Equal(t, profile.StringOrArray{"ascii", "required_without:phone"}, email.Rules)

	balance := p.Fields[1]
	assert.Equal(t, profile.UnitList{{Name: "round", Params: map[string]string{"precision": "2"}}}, balance.Cast)
	assert.Equal(t, profile.StringOrArray{"decimal:0,2"}, balance.Rules)

	assert.Equal(t, profile.StringOrArray{"required_if:type,adult"}, p.Fields[2].Rules)
	assert.Nil(t, p.Fields[2].Cast)

	assert.Equal(t, "default:value=anonymous", p.Fields[3].Cast[1].String())
}

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	f, err := profile.Parse([]byte("profiles: []"))
	require.NoError(t, err)
	assert.Equal(t, profile.CurrentVersion, f.Version)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	for name, doc := range map[string]string{
		"bad yaml":       "profiles: [",
		"bad spec":       "profiles: [{name: a, fields: [{name: x, cast: 'trim:cutset'}]}]",
		"two-key map":    "profiles: [{name: a, fields: [{name: x, cast: {trim: {}, round: {}}}]}]",
		"nested params":  "profiles: [{name: a, fields: [{name: x, cast: {round: {precision: [1]}}}]}]",
		"rules as map":   "profiles: [{name: a, fields: [{name: x, rules: {a: b}}]}]",
		"nested in list": "profiles: [{name: a, pipes: [[trim]]}]",
	} {
		_, err := profile.Parse([]byte(doc))
		assert.Error(t, err, name)
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	t.Parallel()

	f, err := profile.LoadFile(filepath.Join("testdata", "user.yaml"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, profile.WriteFile(f, path))

	again, err := profile.LoadFile(path)
	require.NoError(t, err)

	if diff := cmp.Diff(f, again); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshal_Shapes(t *testing.T) {
	t.Parallel()

	f := &profile.File{
		Version: "1",
		Profiles: []profile.Profile{{
			Name: "p",
			Fields: []profile.Field{{
				Name:      "x",
				Cast:      profile.UnitList{{Name: "trim"}},
				Transform: profile.UnitList{{Name: "round", Params: map[string]string{"precision": "1"}}},
				Rules:     profile.StringOrArray{"ascii", "lowercase"},
			}},
		}},
	}

	out, err := profile.Marshal(f)
	require.NoError(t, err)

	expected := `version: "1"
profiles:
    - name: p
      fields:
        - name: x
          cast: trim
          transform:
            round:
                precision: "1"
          rules:
            - ascii
            - lowercase
`
	assert.Equal(t, expected, string(out))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	doc := `
version: "2"
profiles:
  - name: user
    pipes: [cast_primitivs, blank_strings_to_null, blank_strings_to_null]
    fields:
      - name: email
        cast: lowercse
        transform: "truncate:limit=x"
        rules: "ascii|decimal:3,1"
      - name: email
      - name: code
        rules: [lowercase, "ascii|uppercase"]
      - name: notes
  - name: user
  - name: ""
    fields: [{name: ""}]
`

	f, err := profile.Parse([]byte(doc))
	require.NoError(t, err)

	res := profile.Validate(f, registry.New())
	require.True(t, res.HasErrors())

	codes := map[string]int{}
	for _, d := range res.All() {
		codes[d.Code]++
	}

	assert.Equal(t, map[string]int{
		diagnostic.CodeUnknownVersion:   1,
		diagnostic.CodeUnknownUnit:      2,
		diagnostic.CodeInvalidUnit:      1,
		diagnostic.CodeInvalidRule:      1,
		diagnostic.CodeDuplicateField:   1,
		diagnostic.CodeDuplicateName:    1,
		diagnostic.CodeDuplicatePipe:    1,
		diagnostic.CodeConflictingRules: 1,
		diagnostic.CodeEmptyName:        2,
		diagnostic.CodeEmptyProfile:     1,
		diagnostic.CodeEmptyField:       1,
	}, codes)

	var suggested []string
	for _, d := range res.Errors {
		if d.Code == diagnostic.CodeUnknownUnit {
			suggested = append(suggested, d.Suggestions...)
		}
	}

	assert.Contains(t, suggested, "cast_primitives")
	assert.Contains(t, suggested, "lowercase")

	assert.True(t, profile.Validate(nil, registry.New()).HasErrors())
}

func TestValidate_Clean(t *testing.T) {
	t.Parallel()

	f, err := profile.LoadFile(filepath.Join("testdata", "user.yaml"))
	require.NoError(t, err)

	res := profile.Validate(f, registry.New())
	assert.Empty(t, res.All())
}

type user struct {
	Email    string  `json:"email"`
	Balance  float64 `json:"balance"`
	Age      int     `json:"age"`
	Nickname *string `json:"nickname"`
}

func TestBuild(t *testing.T) {
	t.Parallel()

	f, err := profile.LoadFile(filepath.Join("testdata", "user.yaml"))
	require.NoError(t, err)

	class, err := data.ClassFor[user]()
	require.NoError(t, err)

	b, err := profile.Build(f.Profile("user"), registry.New(), class)
	require.NoError(t, err)

	assert.Equal(t, "user", b.Name())
	assert.Equal(t, []string{"email", "balance", "age", "nickname"}, b.Fields())
	assert.Len(t, b.Pipes(), 2)
	assert.Equal(t, "ascii|required_without:phone", b.Rules("email").String())
	assert.Nil(t, b.Rules("missing"))

	out, err := b.CastField("email", "  Ada@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", out)

	out, err = b.CastField("balance", "12.345")
	require.NoError(t, err)
	assert.InDelta(t, 12.35, out, 1e-9)

	out, err = b.CastField("nickname", " ")
	require.NoError(t, err)
	assert.Equal(t, "anonymous", out)

	out, err = b.CastField("unbound", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, out)

	out, err = b.TransformField("balance", 1234.5)
	require.NoError(t, err)
	assert.Equal(t, "1,234.50", out)

	props := data.Properties{"email": "", "age": "41"}
	for _, p := range b.Pipes() {
		props, err = p.Handle(props, class)
		require.NoError(t, err)
	}

	assert.Equal(t, data.Properties{"email": nil, "age": 41}, props)
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	class, err := data.ClassFor[user]()
	require.NoError(t, err)

	p := &profile.Profile{
		Name:  "user",
		Pipes: profile.UnitList{{Name: "nope"}},
		Fields: []profile.Field{
			{Name: "email", Cast: profile.UnitList{{Name: "lowercse"}}},
			{Name: "phone"},
			{Name: "age", Rules: profile.StringOrArray{"decimal:x"}},
		},
	}

	_, err = profile.Build(p, registry.New(), class)
	require.Error(t, err)
	require.ErrorIs(t, err, registry.ErrUnknownUnit)
	require.ErrorIs(t, err, data.ErrUnknownField)
	assert.Contains(t, err.Error(), "decimal")
}
