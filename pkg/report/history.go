package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"digital.vasic.fluent/pkg/runner"
)

// HistoricalEntry represents a single suite run in the
// historical log.
type HistoricalEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Suite     string    `json:"suite"`
	Status    string    `json:"status"`
	Duration  string    `json:"duration"`
	Passed    int       `json:"passed"`
	Total     int       `json:"total"`
	Failures  []string  `json:"failures,omitempty"`
}

// AppendToHistory adds an entry to the historical log stored
// at historyPath. Each entry is a single JSON line.
func AppendToHistory(
	historyPath string,
	result *runner.SuiteResult,
) error {
	entry := HistoricalEntry{
		Timestamp: result.EndTime,
		Suite:     result.Suite,
		Status:    result.Status,
		Duration:  result.Duration.String(),
		Passed:    result.Passed,
		Total:     result.Total(),
	}
	for _, f := range result.Failures() {
		entry.Failures = append(entry.Failures, f.ID)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return errors.Wrap(err, "failed to marshal history entry")
	}

	if err := os.MkdirAll(filepath.Dir(historyPath), 0755); err != nil {
		return errors.Wrap(err, "failed to create history directory")
	}
	file, err := os.OpenFile(
		historyPath,
		os.O_CREATE|os.O_APPEND|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return errors.Wrap(err, "failed to open history file")
	}
	defer func() { _ = file.Close() }()

	_, err = fmt.Fprintln(file, string(data))
	return err
}
