package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.fluent/pkg/runner"
)

func TestHTMLReporter_GenerateReport(t *testing.T) {
	data, err := NewHTMLReporter().GenerateReport(failingResult())
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "<title>Suite Report: dates</title>")
	assert.Contains(t, out, "<code>suites/dates.yaml</code>")
	assert.Contains(t, out, "<strong>ERROR</strong>")
	assert.Contains(t, out, "<tr><td>Skipped</td><td>2</td></tr>")
	assert.Contains(t, out, "Expected dateOnly to be &lt;2012-03-11&gt;, but found &lt;2012-03-10&gt;.")
	assert.Contains(t, out, "unknown assertion type: string.sparkle")
	assert.Contains(t, out, "<p><strong>Pass Rate:</strong> 1/3 (33%)</p>")
	assert.Contains(t, out, "</html>")
}

func TestHTMLReporter_EscapesNames(t *testing.T) {
	result := passingResult()
	result.Suite = "<script>"

	var buf bytes.Buffer
	require.NoError(t, NewHTMLReporter().WriteReport(&buf, result))
	assert.NotContains(t, buf.String(), "<script>")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestHTMLReporter_NoChecks(t *testing.T) {
	result := passingResult()
	result.Results = nil
	result.Passed = 0

	data, err := NewHTMLReporter().GenerateReport(result)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "<h2>Checks</h2>")
}

func TestHTMLReporter_GenerateMasterSummary(t *testing.T) {
	data, err := NewHTMLReporter().GenerateMasterSummary(
		[]*runner.SuiteResult{passingResult(), failingResult()},
	)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "<h1>Fluent Checks - Master Summary</h1>")
	assert.Contains(t, out, "<td>smoke</td>")
	assert.Contains(t, out, "<td>2/2</td>")
	assert.Contains(t, out, "<td>1/3</td>")
	assert.Contains(t, out, "<tr><td>Total Suites</td><td>2</td></tr>")
	assert.Contains(t, out, "<tr><td>Check Pass Rate</td><td>60%</td></tr>")
	assert.Contains(t, out, "<tr><td>Total Duration</td><td>3.5ms</td></tr>")
}

func TestHTMLReporter_MasterSummary_Empty(t *testing.T) {
	data, err := NewHTMLReporter().GenerateMasterSummary(nil)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Check Pass Rate")
}
