package logging

// NullLogger drops everything. Runners and engines default to it
// so that library callers get silence unless they opt in.
type NullLogger struct{}

var _ Logger = NullLogger{}

func (NullLogger) Info(string, ...Field)        {}
func (NullLogger) Warn(string, ...Field)        {}
func (NullLogger) Error(string, ...Field)       {}
func (NullLogger) Debug(string, ...Field)       {}
func (NullLogger) LogFailure(FailureRecord)     {}
func (NullLogger) Close() error                 { return nil }
func (n NullLogger) WithFields(...Field) Logger { return n }
