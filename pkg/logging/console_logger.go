package logging

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// palette holds the colors of one console logger. A nil color
// prints plain text.
type palette struct {
	debug *color.Color
	info  *color.Color
	warn  *color.Color
	err   *color.Color
	muted *color.Color
}

func defaultPalette() *palette {
	return &palette{
		debug: color.New(color.FgHiBlack),
		info:  color.New(color.FgBlue),
		warn:  color.New(color.FgYellow),
		err:   color.New(color.FgRed, color.Bold),
		muted: color.New(color.FgHiBlack),
	}
}

func paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

// ConsoleLogger provides colored console output. Colors are
// dropped automatically when the output is not a terminal or
// NO_COLOR is set.
type ConsoleLogger struct {
	mu      *sync.Mutex
	output  io.Writer
	verbose bool
	fields  map[string]any
	colors  *palette
}

// NewConsoleLogger creates a console logger writing to stdout.
// When verbose is true, debug messages are emitted.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewConsoleLoggerTo(color.Output, verbose)
}

// NewConsoleLoggerTo creates a console logger writing to w.
func NewConsoleLoggerTo(w io.Writer, verbose bool) *ConsoleLogger {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleLogger{
		mu:      &sync.Mutex{},
		output:  w,
		verbose: verbose,
		fields:  make(map[string]any),
		colors:  defaultPalette(),
	}
}

func (c *ConsoleLogger) levelColor(level LogLevel) *color.Color {
	if c.colors == nil {
		return nil
	}
	switch level {
	case LevelDebug:
		return c.colors.debug
	case LevelWarn:
		return c.colors.warn
	case LevelError:
		return c.colors.err
	default:
		return c.colors.info
	}
}

func (c *ConsoleLogger) muted() *color.Color {
	if c.colors == nil {
		return nil
	}
	return c.colors.muted
}

func (c *ConsoleLogger) log(level LogLevel, msg string, fields ...Field) {
	if c.mu != nil {
		c.mu.Lock()
		defer c.mu.Unlock()
	}

	ts := time.Now().Format("15:04:05")

	merged := make(map[string]any, len(c.fields)+len(fields))
	for k, v := range c.fields {
		merged[k] = v
	}
	for _, f := range fields {
		merged[f.Key] = f.Value
	}

	var fieldStr string
	if len(merged) > 0 {
		keys := make([]string, 0, len(merged))
		for k := range merged {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, merged[k]))
		}
		fieldStr = " " + paint(
			c.muted(), "{"+strings.Join(parts, ", ")+"}",
		)
	}

	fmt.Fprintf(
		c.output, "%s [%s] %s%s\n",
		paint(c.muted(), ts),
		paint(c.levelColor(level), fmt.Sprintf("%-5s", level.String())),
		msg, fieldStr,
	)
}

// Info logs an informational message.
func (c *ConsoleLogger) Info(msg string, fields ...Field) {
	c.log(LevelInfo, msg, fields...)
}

// Warn logs a warning message.
func (c *ConsoleLogger) Warn(msg string, fields ...Field) {
	c.log(LevelWarn, msg, fields...)
}

// Error logs an error message.
func (c *ConsoleLogger) Error(msg string, fields ...Field) {
	c.log(LevelError, msg, fields...)
}

// Debug logs a debug message only if verbose is enabled.
func (c *ConsoleLogger) Debug(msg string, fields ...Field) {
	if c.verbose {
		c.log(LevelDebug, msg, fields...)
	}
}

// WithFields returns a new Logger with additional default
// fields.
func (c *ConsoleLogger) WithFields(fields ...Field) Logger {
	newFields := make(map[string]any)
	for k, v := range c.fields {
		newFields[k] = v
	}
	for _, f := range fields {
		newFields[f.Key] = f.Value
	}
	return &ConsoleLogger{
		mu:      c.mu,
		output:  c.output,
		verbose: c.verbose,
		fields:  newFields,
		colors:  c.colors,
	}
}

// LogFailure prints the check header followed by the indented
// failure message.
func (c *ConsoleLogger) LogFailure(record FailureRecord) {
	header := fmt.Sprintf("FAIL %s (%s.%s)", record.CheckID, record.Kind, record.Operation)
	fields := []Field{IntField("duration_ms", int(record.DurationMs))}
	if record.Suite != "" {
		fields = append(fields, StringField("suite", record.Suite))
	}
	c.Error(header, fields...)

	if c.mu != nil {
		c.mu.Lock()
		defer c.mu.Unlock()
	}
	for _, line := range strings.Split(record.Message, "\n") {
		fmt.Fprintf(c.output, "    %s\n", line)
	}
}

// Close is a no-op for ConsoleLogger.
func (c *ConsoleLogger) Close() error {
	return nil
}
