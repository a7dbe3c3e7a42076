// Package env reads FLUENT_* settings from the process
// environment and optional .env files.
package env

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Prefix is prepended to every setting name by the Fluent helpers.
const Prefix = "FLUENT_"

// Loader defines the interface for environment variable management.
type Loader interface {
	// Load reads environment variables from a .env file.
	Load(filepath string) error
	// Get retrieves an environment variable value.
	Get(key string) string
	// Lookup retrieves a value and reports whether it was set.
	Lookup(key string) (string, bool)
	// GetRequired retrieves a required environment variable or returns error.
	GetRequired(key string) (string, error)
	// GetWithDefault retrieves an environment variable with a default fallback.
	GetWithDefault(key, defaultValue string) string
	// GetInt parses an integer setting.
	GetInt(key string) (int, bool, error)
	// GetBool parses a boolean setting.
	GetBool(key string) (bool, bool, error)
	// Set sets an environment variable.
	Set(key, value string) error
	// All returns all loaded environment variables.
	All() map[string]string
}

// DefaultLoader implements Loader with .env file support. Values
// in the process environment take precedence over file values.
type DefaultLoader struct {
	mu      sync.RWMutex
	vars    map[string]string
	loaded  bool
	lookup  func(string) (string, bool)
	environ func() []string
}

// NewLoader creates a loader backed by the process environment.
func NewLoader() *DefaultLoader {
	return &DefaultLoader{
		vars:    make(map[string]string),
		lookup:  os.LookupEnv,
		environ: os.Environ,
	}
}

// NewLoaderFrom creates a loader that ignores the process
// environment and reads only the given values.
func NewLoaderFrom(vars map[string]string) *DefaultLoader {
	l := &DefaultLoader{
		vars:    make(map[string]string, len(vars)),
		lookup:  func(string) (string, bool) { return "", false },
		environ: func() []string { return nil },
	}
	for k, v := range vars {
		l.vars[k] = v
	}
	return l
}

// Fluent returns the prefixed setting name, e.g. Fluent("LOG_LEVEL")
// is "FLUENT_LOG_LEVEL".
func Fluent(name string) string {
	return Prefix + strings.ToUpper(name)
}

func (l *DefaultLoader) Load(filepath string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	file, err := os.Open(filepath)
	if err != nil {
		return errors.Wrapf(err, "open env file %s", filepath)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		value = strings.Trim(value, `"'`)
		l.vars[key] = value
	}

	l.loaded = true
	return errors.Wrapf(scanner.Err(), "read env file %s", filepath)
}

func (l *DefaultLoader) Lookup(key string) (string, bool) {
	if v, ok := l.lookup(key); ok && v != "" {
		return v, true
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	v, ok := l.vars[key]
	return v, ok && v != ""
}

func (l *DefaultLoader) Get(key string) string {
	v, _ := l.Lookup(key)
	return v
}

func (l *DefaultLoader) GetRequired(key string) (string, error) {
	v, ok := l.Lookup(key)
	if !ok {
		return "", errors.Errorf("required environment variable %s is not set", key)
	}
	return v, nil
}

func (l *DefaultLoader) GetWithDefault(key, defaultValue string) string {
	if v, ok := l.Lookup(key); ok {
		return v
	}
	return defaultValue
}

// GetInt returns the parsed value and whether the variable was set.
func (l *DefaultLoader) GetInt(key string) (int, bool, error) {
	v, ok := l.Lookup(key)
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, true, errors.Wrapf(err, "%s must be an integer", key)
	}
	return n, true, nil
}

// GetBool accepts the forms strconv.ParseBool does plus yes/no and on/off.
func (l *DefaultLoader) GetBool(key string) (bool, bool, error) {
	v, ok := l.Lookup(key)
	if !ok {
		return false, false, nil
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "on":
		return true, true, nil
	case "no", "off":
		return false, true, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, true, errors.Wrapf(err, "%s must be a boolean", key)
	}
	return b, true, nil
}

func (l *DefaultLoader) Set(key, value string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.vars[key] = value
	return os.Setenv(key, value)
}

func (l *DefaultLoader) All() map[string]string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	result := make(map[string]string, len(l.vars))
	for k, v := range l.vars {
		result[k] = v
	}
	return result
}
