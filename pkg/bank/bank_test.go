package bank

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smokeYAML = `version: "1"
name: smoke
description: basic checks
checks:
  - id: greeting
    kind: string
    type: start_with
    actual: ABC
    expected: ABCDEF
  - id: release
    kind: dateonly
    type: be_on_or_after
    actual: 2012-03-10
    expected: 2012-03-01
    because: "releases follow the {0} freeze"
    because_args: [march]
  - id: ratio
    kind: numeric
    type: be_in_range
    actual: 0.5
    values: [0, 1]
`

const smokeJSON = `{
  "version": "1",
  "name": "api",
  "checks": [
    {"id": "status", "kind": "numeric", "type": "be", "actual": 200, "expected": 200},
    {"id": "body", "kind": "object", "type": "be", "actual": {"a": [1, 2]}, "expected": {"a": [1, 2]}}
  ]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestBank_LoadFile_YAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "smoke.yaml", smokeYAML)

	b := New()
	require.NoError(t, b.LoadFile(path))
	assert.Equal(t, 1, b.Count())
	assert.Equal(t, 3, b.CheckCount())

	s, ok := b.Get("smoke")
	require.True(t, ok)
	assert.Equal(t, "basic checks", s.Description)
	assert.Equal(t, path, s.Source)

	release := s.Checks[1]
	assert.Equal(t, "smoke", release.Suite)
	released, ok := release.Actual.(time.Time)
	require.True(t, ok, "unquoted dates decode as time.Time, got %T", release.Actual)
	assert.True(t, released.Equal(time.Date(2012, time.March, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, []any{"march"}, release.BecauseArgs)
	assert.Equal(t, []any{0, 1}, s.Checks[2].Values)
}

func TestBank_LoadFile_JSON(t *testing.T) {
	dir := t.TempDir()

	b := New()
	require.NoError(t, b.LoadFile(writeFile(t, dir, "api.json", smokeJSON)))

	s, ok := b.Get("api")
	require.True(t, ok)
	require.Len(t, s.Checks, 2)
	assert.Equal(t, float64(200), s.Checks[0].Actual)
	assert.Equal(t, map[string]any{"a": []any{1.0, 2.0}}, s.Checks[1].Expected)
}

func TestBank_LoadFile_NameFromFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "unnamed.yml", "version: \"1\"\nchecks:\n  - id: a\n    kind: boolean\n    type: be_true\n    actual: true\n")

	b := New()
	require.NoError(t, b.LoadFile(path))

	_, ok := b.Get("unnamed")
	assert.True(t, ok)
}

func TestBank_LoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		err     string
	}{
		{"invalid yaml", "bad.yaml", "checks: [", "parse suite file"},
		{"invalid json", "bad.json", "{", "parse suite file"},
		{"unknown field", "typo.yaml", "version: \"1\"\nchecks:\n  - id: a\n    kidn: string\n", "field kidn not found"},
		{"missing id", "noid.yaml", "version: \"1\"\nchecks:\n  - kind: string\n", "check at index 0"},
		{"extension", "suite.txt", "x", "unsupported suite file extension"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New().LoadFile(writeFile(t, dir, tt.file, tt.content))
			assert.ErrorContains(t, err, tt.err)
		})
	}

	err := New().LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "read suite file")
}

func TestBank_LoadFile_DuplicateSuite(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "one.yaml", smokeYAML)
	second := writeFile(t, dir, "two.yaml", smokeYAML)

	b := New()
	require.NoError(t, b.LoadFile(first))
	assert.ErrorContains(t, b.LoadFile(second), `suite "smoke"`)
}

func TestBank_Load_DirAndFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "smoke.yaml", smokeYAML)
	writeFile(t, dir, "notes.txt", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))

	other := t.TempDir()
	api := writeFile(t, other, "api.json", smokeJSON)

	b := New()
	require.NoError(t, b.Load(dir, api))

	suites := b.All()
	require.Len(t, suites, 2)
	assert.Equal(t, "api", suites[0].Name)
	assert.Equal(t, "smoke", suites[1].Name)
	assert.Len(t, b.Sources(), 2)
	assert.Len(t, b.ByKind("numeric"), 2)

	assert.ErrorContains(t, b.Load(filepath.Join(dir, "absent")), "stat")
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	b := writeFile(t, dir, "b.yaml", smokeYAML)
	a := writeFile(t, dir, "a.json", smokeJSON)
	writeFile(t, dir, "readme.md", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0755))

	explicit := writeFile(t, t.TempDir(), "suite.txt", smokeYAML)

	files, err := Expand(dir, explicit)
	require.NoError(t, err)
	assert.Equal(t, []string{a, b, explicit}, files)

	_, err = Expand(filepath.Join(dir, "missing"))
	assert.ErrorContains(t, err, "stat")
}
