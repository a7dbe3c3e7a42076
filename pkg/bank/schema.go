// Package bank loads suites of declarative checks from YAML and
// JSON files.
package bank

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"digital.vasic.fluent/pkg/engine"
)

// SuiteFile represents the structure of a suite file.
type SuiteFile struct {
	Version     string              `json:"version" yaml:"version"`
	Name        string              `json:"name" yaml:"name"`
	Description string              `json:"description,omitempty" yaml:"description,omitempty"`
	Checks      []engine.Definition `json:"checks" yaml:"checks"`
	Metadata    map[string]any      `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// IsSuiteFile reports whether path has an extension that Decode
// understands.
func IsSuiteFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// Decode parses data as YAML or JSON depending on the extension
// of path. Unknown fields are rejected so that typos in check
// definitions do not pass silently.
func Decode(path string, data []byte) (SuiteFile, error) {
	var file SuiteFile

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil {
			return file, errors.Wrapf(err, "parse suite file %s", path)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil {
			return file, errors.Wrapf(err, "parse suite file %s", path)
		}
	default:
		return file, errors.Errorf("unsupported suite file extension: %s", path)
	}

	return file, nil
}
