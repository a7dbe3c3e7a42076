package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"digital.vasic.fluent/pkg/runner"
)

// MasterSummary represents an aggregated summary of a run over
// several suites.
type MasterSummary struct {
	ID            string         `json:"id"`
	GeneratedAt   time.Time      `json:"generated_at"`
	Suites        []SuiteSummary `json:"suites"`
	TotalSuites   int            `json:"total_suites"`
	PassedSuites  int            `json:"passed_suites"`
	FailedSuites  int            `json:"failed_suites"`
	TotalChecks   int            `json:"total_checks"`
	PassedChecks  int            `json:"passed_checks"`
	TotalDuration time.Duration  `json:"total_duration_ns"`
	PassRate      float64        `json:"pass_rate"`
}

// SuiteSummary represents a summary of a single suite.
type SuiteSummary struct {
	Name     string        `json:"name"`
	Source   string        `json:"source,omitempty"`
	Status   string        `json:"status"`
	Duration time.Duration `json:"duration_ns"`
	Passed   int           `json:"passed"`
	Total    int           `json:"total"`
	Skipped  int           `json:"skipped"`
	Failures []string      `json:"failures,omitempty"`
}

// BuildMasterSummary creates a master summary from suite
// results. PassRate is the share of evaluated checks that passed.
func BuildMasterSummary(
	results []*runner.SuiteResult,
) *MasterSummary {
	summary := &MasterSummary{
		ID:          "summary_" + uuid.NewString(),
		GeneratedAt: time.Now(),
		Suites:      make([]SuiteSummary, 0, len(results)),
	}

	for _, r := range results {
		ss := SuiteSummary{
			Name:     r.Suite,
			Source:   r.Source,
			Status:   r.Status,
			Duration: r.Duration,
			Passed:   r.Passed,
			Total:    r.Total(),
			Skipped:  r.Skipped,
		}
		for _, f := range r.Failures() {
			ss.Failures = append(ss.Failures, f.ID)
		}

		summary.Suites = append(summary.Suites, ss)
		summary.TotalSuites++
		summary.TotalChecks += ss.Total
		summary.PassedChecks += ss.Passed
		summary.TotalDuration += r.Duration

		if r.OK() {
			summary.PassedSuites++
		} else {
			summary.FailedSuites++
		}
	}

	if summary.TotalChecks > 0 {
		summary.PassRate =
			float64(summary.PassedChecks) /
				float64(summary.TotalChecks)
	}

	return summary
}

// SaveMasterSummary saves the master summary to both JSON and
// Markdown files in the given output directory and points
// latest_summary.{json,md} at them.
func SaveMasterSummary(
	summary *MasterSummary,
	outputDir string,
) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return errors.Wrap(err, "failed to create output directory")
	}

	ts := summary.GeneratedAt.Format("20060102_150405")

	jsonPath := filepath.Join(
		outputDir,
		fmt.Sprintf("master_summary_%s.json", ts),
	)
	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal summary")
	}
	if err := os.WriteFile(jsonPath, jsonData, 0644); err != nil {
		return errors.Wrap(err, "failed to write JSON summary")
	}

	mdPath := filepath.Join(
		outputDir,
		fmt.Sprintf("master_summary_%s.md", ts),
	)
	if err := os.WriteFile(
		mdPath, []byte(generateSummaryMarkdown(summary)), 0644,
	); err != nil {
		return errors.Wrap(err, "failed to write Markdown summary")
	}

	latestJSON := filepath.Join(outputDir, "latest_summary.json")
	latestMD := filepath.Join(outputDir, "latest_summary.md")

	_ = os.Remove(latestJSON)
	_ = os.Remove(latestMD)
	_ = os.Symlink(filepath.Base(jsonPath), latestJSON)
	_ = os.Symlink(filepath.Base(mdPath), latestMD)

	return nil
}

// generateSummaryMarkdown creates markdown from a master
// summary.
func generateSummaryMarkdown(summary *MasterSummary) string {
	var sb strings.Builder

	sb.WriteString("# Fluent Checks - Master Summary\n\n")
	fmt.Fprintf(&sb, "**Summary ID:** %s\n\n", summary.ID)
	fmt.Fprintf(&sb, "**Generated:** %s\n\n",
		summary.GeneratedAt.Format(time.RFC3339))

	sb.WriteString("## Overview\n\n")
	sb.WriteString("| Suite | Status | Duration | Checks |\n")
	sb.WriteString("|-------|--------|----------|--------|\n")

	for _, s := range summary.Suites {
		fmt.Fprintf(&sb, "| %s | %s | %v | %d/%d |\n",
			s.Name, strings.ToUpper(s.Status),
			s.Duration, s.Passed, s.Total)
	}

	var failing []SuiteSummary
	for _, s := range summary.Suites {
		if len(s.Failures) > 0 {
			failing = append(failing, s)
		}
	}
	if len(failing) > 0 {
		sb.WriteString("\n## Failing Checks\n\n")
		for _, s := range failing {
			for _, id := range s.Failures {
				fmt.Fprintf(&sb, "- `%s` / `%s`\n", s.Name, id)
			}
		}
	}

	sb.WriteString("\n## Statistics\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	fmt.Fprintf(&sb, "| Total Suites | %d |\n", summary.TotalSuites)
	fmt.Fprintf(&sb, "| Passed Suites | %d |\n", summary.PassedSuites)
	fmt.Fprintf(&sb, "| Failed Suites | %d |\n", summary.FailedSuites)
	fmt.Fprintf(&sb, "| Total Checks | %d |\n", summary.TotalChecks)
	fmt.Fprintf(&sb, "| Pass Rate | %.0f%% |\n", summary.PassRate*100)
	fmt.Fprintf(&sb, "| Total Duration | %v |\n", summary.TotalDuration)

	sb.WriteString("\n---\n\n")
	sb.WriteString("*Generated by fluentcheck*\n")

	return sb.String()
}
