package logging

import "github.com/hashicorp/go-multierror"

// MultiLogger fans every call out to a fixed set of loggers, in
// the order they were given. Nil entries are skipped.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger combines loggers. The CLI uses it to send the
// console stream and the JSON files the same events.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	kept := make([]Logger, 0, len(loggers))
	for _, l := range loggers {
		if l != nil {
			kept = append(kept, l)
		}
	}
	return &MultiLogger{loggers: kept}
}

func (m *MultiLogger) each(fn func(Logger)) {
	for _, l := range m.loggers {
		fn(l)
	}
}

func (m *MultiLogger) Info(msg string, fields ...Field) {
	m.each(func(l Logger) { l.Info(msg, fields...) })
}

func (m *MultiLogger) Warn(msg string, fields ...Field) {
	m.each(func(l Logger) { l.Warn(msg, fields...) })
}

func (m *MultiLogger) Error(msg string, fields ...Field) {
	m.each(func(l Logger) { l.Error(msg, fields...) })
}

func (m *MultiLogger) Debug(msg string, fields ...Field) {
	m.each(func(l Logger) { l.Debug(msg, fields...) })
}

func (m *MultiLogger) LogFailure(record FailureRecord) {
	m.each(func(l Logger) { l.LogFailure(record) })
}

// WithFields derives a child from every inner logger.
func (m *MultiLogger) WithFields(fields ...Field) Logger {
	children := make([]Logger, 0, len(m.loggers))
	m.each(func(l Logger) { children = append(children, l.WithFields(fields...)) })
	return &MultiLogger{loggers: children}
}

// Close closes every logger even when some fail; the failures are
// combined into one error.
func (m *MultiLogger) Close() error {
	var result *multierror.Error
	m.each(func(l Logger) {
		if err := l.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	})
	return result.ErrorOrNil()
}
