package report

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendToHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history", "runs.jsonl")

	require.NoError(t, AppendToHistory(path, passingResult()))
	require.NoError(t, AppendToHistory(path, failingResult()))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	var entries []HistoricalEntry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var e HistoricalEntry
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		entries = append(entries, e)
	}
	require.NoError(t, scanner.Err())
	require.Len(t, entries, 2)

	assert.Equal(t, "smoke", entries[0].Suite)
	assert.Equal(t, "passed", entries[0].Status)
	assert.Equal(t, "1.5ms", entries[0].Duration)
	assert.Equal(t, 2, entries[0].Total)
	assert.True(t, fixedEnd.Equal(entries[0].Timestamp))

	assert.Equal(t, "dates", entries[1].Suite)
	assert.Equal(t, []string{"day", "typo"}, entries[1].Failures)
}

func TestAppendToHistory_OpenError(t *testing.T) {
	dir := t.TempDir()
	err := AppendToHistory(dir, passingResult())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open history file")
}
