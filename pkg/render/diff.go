package render

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Diff returns a unified diff between two multi-line strings, or
// "" when diffs are disabled, the inputs are single-line or the
// diff cannot be computed.
func Diff(expected, actual string) string {
	if !CurrentOptions().Diff {
		return ""
	}
	if !strings.Contains(expected, "\n") && !strings.Contains(actual, "\n") {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  1,
	})
	if err != nil {
		return ""
	}

	return diff
}
