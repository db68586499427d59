package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/golinq/errors"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "linq", cmd.Use)
	assert.Contains(t, cmd.Long, "query plans")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"run", "serve", "version"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"config", "log-level"} {
		flag := cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, "", flag.DefValue)
	}
}

// writeFiles writes name/content pairs into a temp dir, plus a quiet config.
func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	files["config.yml"] = "name: linq-test\nlogging:\n  level: error\n  output: stderr\n"
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRun_ArrayResult(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"input.json": `[5, 1, 4, 2, 3]`,
		"plan.yml": `
steps:
  - op: where
    predicate: {cmp: ge, value: 3}
  - op: select
    selector: {fn: negate}
`,
	})

	out, err := execute(t, "",
		"--config", filepath.Join(dir, "config.yml"),
		"run", "--input", filepath.Join(dir, "input.json"), "--plan", filepath.Join(dir, "plan.yml"))
	require.NoError(t, err)

	var res struct {
		Kind  string `json:"kind"`
		Value []int  `json:"value"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res), out)
	assert.Equal(t, "array", res.Kind)
	assert.Equal(t, []int{-5, -4, -3}, res.Value)
}

func TestRun_StdinAndSetMode(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"plan.yml": `{steps: [{op: sequenceEqual, other: [1, 1, 2]}]}`,
	})
	cfg := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(cfg, []byte("name: linq-test\nlogging: {level: error, output: stderr}\nengine: {sequence_equal: set}\n"), 0o600))

	out, err := execute(t, "[2, 1, 1]", "--config", cfg, "run", "--input", "-", "--plan", filepath.Join(dir, "plan.yml"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind": "value", "value": true}`, out)
}

func TestRun_OperatorError(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"input.yml": "- 1\n- 2\n",
		"plan.yml":  "steps:\n  - op: single\n",
	})

	_, err := execute(t, "",
		"--config", filepath.Join(dir, "config.yml"),
		"run", "--input", filepath.Join(dir, "input.yml"), "--plan", filepath.Join(dir, "plan.yml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeNotFoundOrAmbiguous))
}

func TestRun_MissingFlags(t *testing.T) {
	dir := writeFiles(t, map[string]string{})
	_, err := execute(t, "", "--config", filepath.Join(dir, "config.yml"), "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	dir := writeFiles(t, map[string]string{"plan.yml": "steps: []", "input.json": "[]"})
	_, err := execute(t, "",
		"--config", filepath.Join(dir, "config.yml"), "--log-level", "loud",
		"run", "--input", filepath.Join(dir, "input.json"), "--plan", filepath.Join(dir, "plan.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestRoot_MissingConfigFile(t *testing.T) {
	_, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "absent.yml"), "run", "--input", "x", "--plan", "y")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestVersion_SkipsConfig(t *testing.T) {
	out, err := execute(t, "", "--config", "/does/not/exist.yml", "version", "--json")
	require.NoError(t, err)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &info), out)
	assert.NotEmpty(t, info["version"])
}
