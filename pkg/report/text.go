package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"digital.vasic.fluent/pkg/runner"
)

// TextReporter prints suite results for a terminal. Failure
// messages are indented under the failing check.
type TextReporter struct {
	pass *color.Color
	fail *color.Color
}

// NewTextReporter creates a text reporter. Colors follow
// color.NoColor unless colored is false.
func NewTextReporter(colored bool) *TextReporter {
	r := &TextReporter{}
	if colored {
		r.pass = color.New(color.FgGreen, color.Bold)
		r.fail = color.New(color.FgRed, color.Bold)
	}
	return r
}

func (r *TextReporter) paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

func (r *TextReporter) status(ok bool, s string) string {
	if ok {
		return r.paint(r.pass, s)
	}
	return r.paint(r.fail, s)
}

// GenerateReport renders a single suite.
func (r *TextReporter) GenerateReport(result *runner.SuiteResult) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.WriteReport(&buf, result); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteReport writes one line per non-passing check followed by
// the suite verdict.
func (r *TextReporter) WriteReport(w io.Writer, result *runner.SuiteResult) error {
	for _, res := range result.Results {
		if res.Passed {
			continue
		}
		label := checkLabel(res.ID, res.Kind, res.Type)
		message := res.Message
		tag := "FAIL"
		if res.Error != "" {
			tag = "ERROR"
			message = res.Error
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", r.status(false, tag), label); err != nil {
			return err
		}
		for _, line := range strings.Split(message, "\n") {
			if _, err := fmt.Fprintf(w, "    %s\n", line); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "%s %s: %d passed, %d failed, %d errored, %d skipped (%v)\n",
		r.status(result.OK(), strings.ToUpper(result.Status)),
		result.Suite,
		result.Passed, result.Failed, result.Errored, result.Skipped,
		result.Duration.Round(time.Microsecond),
	)
	if err == nil && result.Error != "" {
		_, err = fmt.Fprintf(w, "    %s\n", result.Error)
	}
	return err
}

// GenerateMasterSummary renders every suite followed by totals.
func (r *TextReporter) GenerateMasterSummary(results []*runner.SuiteResult) ([]byte, error) {
	var buf bytes.Buffer
	for _, res := range results {
		if err := r.WriteReport(&buf, res); err != nil {
			return nil, err
		}
	}

	t := count(results)
	fmt.Fprintf(&buf, "\n%s %d/%d suites passed, %d/%d checks passed\n",
		r.status(t.passedSuites == t.suites, "TOTAL"),
		t.passedSuites, t.suites, t.passed, t.checks,
	)
	return buf.Bytes(), nil
}
