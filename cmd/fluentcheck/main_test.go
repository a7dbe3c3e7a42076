package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.fluent/pkg/render"
)

const passingSuite = `version: "1"
name: smoke
checks:
  - id: flag
    kind: boolean
    type: be_true
    actual: true
  - id: greeting
    kind: string
    type: start_with
    actual: Hello world
    expected: Hello
  - id: release
    kind: dateonly
    type: be_before
    actual: 2012-03-10
    expected: 2012-03-11
`

const failingSuite = `version: "1"
name: dates
checks:
  - id: day
    kind: dateonly
    type: be
    actual: 2012-03-10
    expected: 2012-03-11
    because: "we want to test the failure {0}"
    because_args: [message]
`

// execute runs the root command with args and returns its
// stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	previous := render.CurrentOptions()
	t.Cleanup(func() { render.SetOptions(previous) })

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeSuite(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun_Passing(t *testing.T) {
	path := writeSuite(t, t.TempDir(), "smoke.yaml", passingSuite)

	out, stderr, err := execute(t, "run", "--no-color", path)
	require.NoError(t, err)
	assert.Contains(t, out, "PASSED smoke: 3 passed, 0 failed, 0 errored, 0 skipped")
	assert.Contains(t, out, "TOTAL 1/1 suites passed, 3/3 checks passed")
	assert.Contains(t, stderr, "suites loaded")
}

func TestRun_Failing(t *testing.T) {
	dir := t.TempDir()
	writeSuite(t, dir, "smoke.yaml", passingSuite)
	writeSuite(t, dir, "dates.yaml", failingSuite)

	out, _, err := execute(t, "run", "--no-color", dir)
	require.EqualError(t, err, "1 of 2 suites did not pass")
	assert.Contains(t, out, "FAIL day (dateonly.be)")
	assert.Contains(t, out,
		"    Expected dateOnly to be <2012-03-11> because we want to test the failure message, but found <2012-03-10>.")
	assert.Contains(t, out, "TOTAL 1/2 suites passed, 3/4 checks passed")
}

func TestRun_WritesOutputs(t *testing.T) {
	dir := t.TempDir()
	suite := writeSuite(t, dir, "dates.yaml", failingSuite)
	out := filepath.Join(dir, "out")

	_, _, err := execute(t, "run", "--no-color",
		"--report-json", filepath.Join(out, "summary.json"),
		"--report-html", filepath.Join(out, "summary.html"),
		"--report-dir", filepath.Join(out, "reports"),
		"--history", filepath.Join(out, "history.jsonl"),
		"--metrics-out", filepath.Join(out, "fluent.prom"),
		suite,
	)
	require.Error(t, err)

	summary, err := os.ReadFile(filepath.Join(out, "summary.json"))
	require.NoError(t, err)
	assert.Contains(t, string(summary), `"failed_checks": 1`)

	assert.FileExists(t, filepath.Join(out, "summary.html"))
	assert.FileExists(t, filepath.Join(out, "reports", "latest_summary.json"))
	assert.FileExists(t, filepath.Join(out, "history.jsonl"))

	prom, err := os.ReadFile(filepath.Join(out, "fluent.prom"))
	require.NoError(t, err)
	assert.Contains(t, string(prom), `fluent_assertions_total{kind="dateonly",operation="be",result="failed"} 1`)
	assert.Contains(t, string(prom), `fluent_suite_checks_total{result="failed",suite="dates"} 1`)
}

func TestRun_FailFastFromConfig(t *testing.T) {
	dir := t.TempDir()
	suite := writeSuite(t, dir, "mixed.yaml", `version: "1"
checks:
  - {id: a, kind: boolean, type: be_false, actual: true}
  - {id: b, kind: boolean, type: be_false, actual: false}
`)
	cfg := writeSuite(t, dir, "fluent.yaml", "runner:\n  fail_fast: true\n")

	out, _, err := execute(t, "run", "--no-color", "--config", cfg, suite)
	require.Error(t, err)
	assert.Contains(t, out, "FAILED mixed: 0 passed, 1 failed, 0 errored, 1 skipped")
}

func TestRun_InvalidConfiguration(t *testing.T) {
	dir := t.TempDir()
	suite := writeSuite(t, dir, "smoke.yaml", passingSuite)
	cfg := writeSuite(t, dir, "fluent.yaml", "log:\n  level: loud\n")

	_, _, err := execute(t, "run", "--config", cfg, suite)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestRun_EnvironmentOverride(t *testing.T) {
	dir := t.TempDir()
	suite := writeSuite(t, dir, "smoke.yaml", passingSuite)
	t.Setenv("FLUENT_RENDER_MAX_ITEMS", "none")

	_, _, err := execute(t, "run", suite)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FLUENT_RENDER_MAX_ITEMS must be an integer")
}

func TestRun_MissingSuite(t *testing.T) {
	_, _, err := execute(t, "run", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stat")
}

func TestRun_RequiresArgs(t *testing.T) {
	_, _, err := execute(t, "run")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	good := writeSuite(t, dir, "good.yaml", passingSuite)
	bad := writeSuite(t, dir, "bad.yaml", `checks:
  - {id: a, kind: string, type: sparkle}
`)

	out, _, err := execute(t, "validate", dir)
	require.EqualError(t, err, "1 of 2 suite files are invalid")
	assert.Contains(t, out, "ok      "+good)
	assert.Contains(t, out, "invalid "+bad)
	assert.Contains(t, out, "    version: version is required")
	assert.Contains(t, out, "    checks[0].type:")
}

func TestList_Operations(t *testing.T) {
	out, _, err := execute(t, "list", "--kind", "boolean")
	require.NoError(t, err)
	assert.Contains(t, out, "boolean.be_true\n")
	assert.Contains(t, out, "boolean.imply\n")
	assert.NotContains(t, out, "string.")
}

func TestList_Suites(t *testing.T) {
	dir := t.TempDir()
	writeSuite(t, dir, "smoke.yaml", passingSuite)
	writeSuite(t, dir, "dates.yaml", failingSuite)

	out, _, err := execute(t, "list", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "dates\t1 checks\t")
	assert.Contains(t, out, "smoke\t3 checks\t")
	assert.Contains(t, out, "2 suites, 4 checks\n")

	out, _, err = execute(t, "list", "--kind", "dateonly", dir)
	require.NoError(t, err)
	assert.Equal(t, "dates/day\tdateonly.be\nsmoke/release\tdateonly.be_before\n", out)
}

func TestEval(t *testing.T) {
	out, _, err := execute(t, "eval", "string.start_with:ab", "--actual", "abc")
	require.NoError(t, err)
	assert.Equal(t, "passed\n", out)

	out, _, err = execute(t, "eval", "numeric.be_positive", "--actual", "-3", "--name", "balance")
	require.EqualError(t, err, "check numeric.be_positive failed")
	assert.Equal(t, "Expected balance to be positive, but found -3.\n", out)

	out, _, err = execute(t, "eval", "boolean.be_true", "--null", "--because", "flags are set")
	require.Error(t, err)
	assert.Contains(t, out, "because flags are set")

	_, _, err = execute(t, "eval", "boolean.sparkle", "--actual", "true")
	require.EqualError(t, err, "unknown assertion type: boolean.sparkle")
}

func TestRun_CompositeChecks(t *testing.T) {
	path := writeSuite(t, t.TempDir(), "ports.yaml", `version: "1"
checks:
  - id: port
    kind: composite
    type: all_pass
    name: port
    actual: 70000
    values:
      - {kind: numeric, type: be_positive}
      - {kind: numeric, type: be_less_than, expected: 65536}
`)

	out, _, err := execute(t, "run", "--no-color", path)
	require.Error(t, err)
	assert.Contains(t, out, "FAIL port (composite.all_pass)")
	assert.Contains(t, out, "Expected port to satisfy all of 2 checks, but check 'port[1]'")

	out, _, err = execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ok      "+path)
}
