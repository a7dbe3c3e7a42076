// Package config loads fluent.yaml and FLUENT_* environment
// overrides for the suite runner and the renderer.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"digital.vasic.fluent/pkg/env"
	"digital.vasic.fluent/pkg/logging"
	"digital.vasic.fluent/pkg/render"
)

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config is the complete tool configuration.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
	Runner  RunnerConfig  `yaml:"runner"`
}

// RenderConfig mirrors render.Options.
type RenderConfig struct {
	MaxItems int  `yaml:"max_items"`
	MaxDepth int  `yaml:"max_depth"`
	Diff     bool `yaml:"diff"`
}

// LogConfig selects the logger built by NewLogger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// Path is a directory for the JSON format (fluent.log and
	// failures.log) and ignored for console output.
	Path string `yaml:"path"`
}

// MetricsConfig controls the Prometheus recorder.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	// Textfile is written after a run when set.
	Textfile string `yaml:"textfile"`
}

// RunnerConfig controls suite execution.
type RunnerConfig struct {
	Parallel int  `yaml:"parallel"`
	FailFast bool `yaml:"fail_fast"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	opts := render.DefaultOptions()
	return &Config{
		Render: RenderConfig{
			MaxItems: opts.MaxItems,
			MaxDepth: opts.MaxDepth,
			Diff:     opts.Diff,
		},
		Log: LogConfig{
			Level:  "info",
			Format: FormatConsole,
		},
		Runner: RunnerConfig{Parallel: 1},
	}
}

// Load reads a YAML file over the defaults. Keys absent from the
// file keep their default values; unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML config data over the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from FLUENT_* variables. Every
// malformed variable is reported, not only the first.
func (c *Config) ApplyEnv(l env.Loader) error {
	var result *multierror.Error

	if v, ok := l.Lookup(env.Fluent("LOG_LEVEL")); ok {
		c.Log.Level = v
	}
	if v, ok := l.Lookup(env.Fluent("LOG_FORMAT")); ok {
		c.Log.Format = v
	}
	if v, ok := l.Lookup(env.Fluent("LOG_PATH")); ok {
		c.Log.Path = v
	}
	if n, ok, err := l.GetInt(env.Fluent("RENDER_MAX_ITEMS")); err != nil {
		result = multierror.Append(result, err)
	} else if ok {
		c.Render.MaxItems = n
	}
	if n, ok, err := l.GetInt(env.Fluent("RENDER_MAX_DEPTH")); err != nil {
		result = multierror.Append(result, err)
	} else if ok {
		c.Render.MaxDepth = n
	}
	if b, ok, err := l.GetBool(env.Fluent("RENDER_DIFF")); err != nil {
		result = multierror.Append(result, err)
	} else if ok {
		c.Render.Diff = b
	}
	if b, ok, err := l.GetBool(env.Fluent("METRICS")); err != nil {
		result = multierror.Append(result, err)
	} else if ok {
		c.Metrics.Enabled = b
	}
	if n, ok, err := l.GetInt(env.Fluent("PARALLEL")); err != nil {
		result = multierror.Append(result, err)
	} else if ok {
		c.Runner.Parallel = n
	}

	return result.ErrorOrNil()
}

// Validate checks every field and returns all problems found.
func (c *Config) Validate() error {
	var result *multierror.Error

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "log.level"))
	}
	switch strings.ToLower(c.Log.Format) {
	case FormatConsole, FormatJSON:
	default:
		result = multierror.Append(result, errors.Errorf(
			"log.format: must be %q or %q, got %q",
			FormatConsole, FormatJSON, c.Log.Format,
		))
	}
	if c.Render.MaxItems < 1 {
		result = multierror.Append(result, errors.Errorf(
			"render.max_items: must be positive, got %d", c.Render.MaxItems,
		))
	}
	if c.Render.MaxDepth < 1 {
		result = multierror.Append(result, errors.Errorf(
			"render.max_depth: must be positive, got %d", c.Render.MaxDepth,
		))
	}
	if c.Runner.Parallel < 1 {
		result = multierror.Append(result, errors.Errorf(
			"runner.parallel: must be positive, got %d", c.Runner.Parallel,
		))
	}

	return result.ErrorOrNil()
}

// RenderOptions converts the render section.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		MaxItems: c.Render.MaxItems,
		MaxDepth: c.Render.MaxDepth,
		Diff:     c.Render.Diff,
	}
}

// Apply installs the render options process-wide.
func (c *Config) Apply() {
	render.SetOptions(c.RenderOptions())
}

// NewLogger builds the configured logger. verbose forces debug
// level. Non-empty secrets wrap the result in a RedactingLogger.
func (c *Config) NewLogger(out io.Writer, verbose bool, secrets ...string) (logging.Logger, error) {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, errors.Wrap(err, "log.level")
	}
	if verbose {
		level = logging.LevelDebug
	}

	var logger logging.Logger
	switch strings.ToLower(c.Log.Format) {
	case FormatJSON:
		cfg := logging.LoggerConfig{Level: level, Verbose: verbose}
		if c.Log.Path != "" {
			cfg.OutputPath = filepath.Join(c.Log.Path, "fluent.log")
			cfg.FailureLog = filepath.Join(c.Log.Path, "failures.log")
		}
		jl, err := logging.NewJSONLogger(cfg)
		if err != nil {
			return nil, err
		}
		logger = jl
	case FormatConsole:
		logger = logging.NewConsoleLoggerTo(out, level == logging.LevelDebug)
	default:
		return nil, errors.Errorf("unknown log format %q", c.Log.Format)
	}

	if len(secrets) > 0 {
		logger = logging.NewRedactingLogger(logger, secrets...)
	}
	return logger, nil
}
