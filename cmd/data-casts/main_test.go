package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const profileYAML = `version: "1"
profiles:
  - name: user
    pipes: [blank_strings_to_null]
    fields:
      - name: email
        cast: [trim, lowercase]
        rules: [ascii, "required_without:phone"]
      - name: balance
        rules: "decimal:0,2"
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCmd(&app{logger: zap.NewNop()})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func writeProfile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestCastCommand(t *testing.T) {
	out, err := run(t, "cast", "round:precision=2", "3.14159")
	require.NoError(t, err)
	assert.Equal(t, "3.14\n", out)

	out, err = run(t, "cast", "--null", "default:value=n/a")
	require.NoError(t, err)
	assert.Equal(t, "n/a\n", out)

	out, err = run(t, "--json", "cast", "explode:trim=true", "a, b")
	require.NoError(t, err)

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "explode", res["unit"])
	assert.Equal(t, []any{"a", "b"}, res["output"])

	_, err = run(t, "cast", "integer", "4.5")
	require.Error(t, err)

	out, err = run(t, "cast", "lowercse", "X")
	require.Error(t, err)
	assert.Contains(t, out, "did you mean lowercase")

	_, err = run(t, "cast", "trim")
	require.Error(t, err)
}

func TestTransformCommand(t *testing.T) {
	out, err := run(t, "transform", "number_format:precision=2", "1234.5")
	require.NoError(t, err)
	assert.Equal(t, "1,234.50\n", out)

	out, err = run(t, "transform", "implode:separator=-", `["a", "b",]`)
	require.NoError(t, err)
	assert.Equal(t, "a-b\n", out)

	out, err = run(t, "transform", "date_format:layout=02 Jan 2006", "--as", "datetime", "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, "01 Mar 2024\n", out)

	out, err = run(t, "transform", "uppercase", "plain words")
	require.NoError(t, err)
	assert.Equal(t, "PLAIN WORDS\n", out)
}

func TestCheckCommand(t *testing.T) {
	path := writeProfile(t, profileYAML)

	out, err := run(t, "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ok (1 profiles)")

	bad := writeProfile(t, `profiles: [{name: user, fields: [{name: email, cast: lowercse}]}]`)

	out, err = run(t, "check", bad)
	require.ErrorIs(t, err, errCheckFailed)
	assert.Contains(t, out, "unknown_unit")

	out, err = run(t, "--json", "check", bad)
	require.Error(t, err)
	assert.Contains(t, out, `"suggestions"`)

	_, err = run(t, "check", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestRulesCommand(t *testing.T) {
	path := writeProfile(t, profileYAML)

	out, err := run(t, "rules", path)
	require.NoError(t, err)
	assert.Equal(t, "user.email: ascii|required_without:phone\nuser.balance: decimal:0,2\n", out)

	out, err = run(t, "--json", "rules", path, "user")
	require.NoError(t, err)

	var rows []fieldRules
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"ascii", "required_without:phone"}, rows[0].Rules)

	_, err = run(t, "rules", path, "nobody")
	require.ErrorContains(t, err, "have: user")
}

func TestUnitsCommand(t *testing.T) {
	out, err := run(t, "units")
	require.NoError(t, err)
	assert.Contains(t, out, "number_format")
	assert.Contains(t, out, "cast_primitives")

	out, err = run(t, "--json", "units")
	require.NoError(t, err)

	var infos []unitInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	assert.NotEmpty(t, infos)
}
