package report

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"
	"time"

	"digital.vasic.fluent/pkg/runner"
)

// HTMLReporter generates HTML reports from suite results.
type HTMLReporter struct{}

// NewHTMLReporter creates a new HTML reporter.
func NewHTMLReporter() *HTMLReporter {
	return &HTMLReporter{}
}

// GenerateReport creates an HTML report for a single suite
// result.
func (r *HTMLReporter) GenerateReport(
	result *runner.SuiteResult,
) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.WriteReport(&buf, result); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteReport writes an HTML report to the specified writer.
func (r *HTMLReporter) WriteReport(
	w io.Writer,
	result *runner.SuiteResult,
) error {
	r.writeHeader(w, "Suite Report: "+result.Suite)

	fmt.Fprintf(
		w,
		"<h1>Suite Report: %s</h1>\n",
		html.EscapeString(result.Suite),
	)
	if result.Source != "" {
		fmt.Fprintf(
			w,
			"<p><strong>Source:</strong> <code>%s</code></p>\n",
			html.EscapeString(result.Source),
		)
	}
	fmt.Fprintf(
		w,
		"<p><strong>Generated:</strong> %s</p>\n",
		result.EndTime.Format(time.RFC3339),
	)

	r.writeSummaryTable(w, result)
	r.writeChecksSection(w, result)

	r.writeFooter(w)
	return nil
}

func statusClass(ok bool) string {
	if ok {
		return "status-passed"
	}
	return "status-failed"
}

func (r *HTMLReporter) writeSummaryTable(
	w io.Writer,
	result *runner.SuiteResult,
) {
	fmt.Fprintln(w, "<h2>Summary</h2>")
	fmt.Fprintln(w, "<table>")
	fmt.Fprintln(w, "<tr><th>Metric</th><th>Value</th></tr>")
	fmt.Fprintf(
		w,
		"<tr><td>Status</td><td class=\"%s\">"+
			"<strong>%s</strong></td></tr>\n",
		statusClass(result.OK()), strings.ToUpper(result.Status),
	)
	for _, row := range []struct {
		name  string
		value int
	}{
		{"Passed", result.Passed},
		{"Failed", result.Failed},
		{"Errored", result.Errored},
		{"Skipped", result.Skipped},
	} {
		fmt.Fprintf(w, "<tr><td>%s</td><td>%d</td></tr>\n", row.name, row.value)
	}
	fmt.Fprintf(
		w,
		"<tr><td>Duration</td><td>%v</td></tr>\n",
		result.Duration,
	)

	if result.Error != "" {
		fmt.Fprintf(
			w,
			"<tr><td>Error</td>"+
				"<td class=\"status-failed\">%s</td></tr>\n",
			html.EscapeString(result.Error),
		)
	}

	fmt.Fprintln(w, "</table>")
}

func (r *HTMLReporter) writeChecksSection(
	w io.Writer,
	result *runner.SuiteResult,
) {
	if len(result.Results) == 0 {
		return
	}

	fmt.Fprintln(w, "<h2>Checks</h2>")
	fmt.Fprintln(w, "<table>")
	fmt.Fprintln(
		w,
		"<tr><th>ID</th><th>Assertion</th>"+
			"<th>Passed</th><th>Message</th></tr>",
	)

	for _, c := range result.Results {
		passedStr := "No"
		if c.Passed {
			passedStr = "Yes"
		}
		message := c.Message
		if c.Error != "" {
			message = c.Error
		}
		fmt.Fprintf(
			w,
			"<tr><td>%s</td><td><code>%s.%s</code></td>"+
				"<td class=\"%s\">%s</td>"+
				"<td><pre>%s</pre></td></tr>\n",
			html.EscapeString(c.ID),
			html.EscapeString(c.Kind), html.EscapeString(c.Type),
			statusClass(c.Passed), passedStr,
			html.EscapeString(message),
		)
	}

	fmt.Fprintln(w, "</table>")

	total := result.Total()
	pct := float64(result.Passed) / float64(total) * 100
	fmt.Fprintf(
		w,
		"<p><strong>Pass Rate:</strong> %d/%d (%.0f%%)</p>\n",
		result.Passed, total, pct,
	)
}

// GenerateMasterSummary creates an HTML summary of all suite
// results.
func (r *HTMLReporter) GenerateMasterSummary(
	results []*runner.SuiteResult,
) ([]byte, error) {
	var buf bytes.Buffer

	r.writeHeader(&buf, "Fluent Checks - Master Summary")
	fmt.Fprintln(&buf, "<h1>Fluent Checks - Master Summary</h1>")
	fmt.Fprintf(
		&buf,
		"<p><strong>Generated:</strong> %s</p>\n",
		time.Now().Format(time.RFC3339),
	)

	r.writeMasterOverview(&buf, results)
	r.writeMasterStats(&buf, results)
	r.writeFooter(&buf)

	return buf.Bytes(), nil
}

func (r *HTMLReporter) writeMasterOverview(
	w io.Writer,
	results []*runner.SuiteResult,
) {
	fmt.Fprintln(w, "<h2>Overview</h2>")
	fmt.Fprintln(w, "<table>")
	fmt.Fprintln(
		w,
		"<tr><th>Suite</th><th>Status</th>"+
			"<th>Checks</th><th>Duration</th></tr>",
	)

	for _, result := range results {
		fmt.Fprintf(
			w,
			"<tr><td>%s</td>"+
				"<td class=\"%s\">%s</td>"+
				"<td>%d/%d</td><td>%v</td></tr>\n",
			html.EscapeString(result.Suite),
			statusClass(result.OK()), strings.ToUpper(result.Status),
			result.Passed, result.Total(),
			result.Duration,
		)
	}

	fmt.Fprintln(w, "</table>")
}

func (r *HTMLReporter) writeMasterStats(
	w io.Writer,
	results []*runner.SuiteResult,
) {
	t := count(results)
	var totalDuration time.Duration
	for _, res := range results {
		totalDuration += res.Duration
	}

	fmt.Fprintln(w, "<h2>Statistics</h2>")
	fmt.Fprintln(w, "<table>")
	fmt.Fprintln(w, "<tr><th>Metric</th><th>Value</th></tr>")
	fmt.Fprintf(w, "<tr><td>Total Suites</td><td>%d</td></tr>\n", t.suites)
	fmt.Fprintf(w, "<tr><td>Passed Suites</td><td>%d</td></tr>\n", t.passedSuites)
	fmt.Fprintf(w, "<tr><td>Failed Suites</td><td>%d</td></tr>\n", t.suites-t.passedSuites)
	fmt.Fprintf(w, "<tr><td>Total Checks</td><td>%d</td></tr>\n", t.checks)

	if t.checks > 0 {
		pct := float64(t.passed) / float64(t.checks) * 100
		fmt.Fprintf(
			w,
			"<tr><td>Check Pass Rate</td>"+
				"<td>%.0f%%</td></tr>\n",
			pct,
		)
	}

	fmt.Fprintf(
		w,
		"<tr><td>Total Duration</td>"+
			"<td>%v</td></tr>\n",
		totalDuration,
	)
	fmt.Fprintln(w, "</table>")
}

func (r *HTMLReporter) writeHeader(w io.Writer, title string) {
	fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>%s</title>
<style>
body {
  font-family: -apple-system, BlinkMacSystemFont,
    "Segoe UI", Roboto, sans-serif;
  max-width: 960px;
  margin: 0 auto;
  padding: 20px;
  color: #333;
}
table { border-collapse: collapse; width: 100%%; margin: 10px 0; }
th, td { border: 1px solid #ddd; padding: 8px 12px; text-align: left; }
th { background: #34495e; color: #fff; }
pre { margin: 0; white-space: pre-wrap; }
.status-passed { color: #27ae60; font-weight: bold; }
.status-failed { color: #e74c3c; font-weight: bold; }
</style>
</head>
<body>
`, html.EscapeString(title))
}

func (r *HTMLReporter) writeFooter(w io.Writer) {
	fmt.Fprintln(w, "<footer><p>Generated by fluentcheck</p></footer>")
	fmt.Fprintln(w, "</body>")
	fmt.Fprintln(w, "</html>")
}
