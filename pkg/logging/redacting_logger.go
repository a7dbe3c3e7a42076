package logging

import (
	"sort"
	"strings"

	"digital.vasic.fluent/pkg/env"
)

// minSecretLen is the shortest secret worth masking. Shorter
// values match too much ordinary text.
const minSecretLen = 5

// RedactingLogger masks known secrets before anything reaches the
// wrapped logger. Failure messages quote subjects and expectations
// verbatim, so a check comparing a token would otherwise leak it.
type RedactingLogger struct {
	inner    Logger
	secrets  []string
	replacer *strings.Replacer
}

// NewRedactingLogger wraps inner. Each secret is replaced by its
// env.RedactValue mask; longer secrets win when two overlap.
func NewRedactingLogger(inner Logger, secrets ...string) *RedactingLogger {
	kept := make([]string, 0, len(secrets))
	for _, s := range secrets {
		if len(s) >= minSecretLen {
			kept = append(kept, s)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return len(kept[i]) > len(kept[j]) })

	pairs := make([]string, 0, 2*len(kept))
	for _, s := range kept {
		pairs = append(pairs, s, env.RedactValue(s))
	}
	return &RedactingLogger{
		inner:    inner,
		secrets:  kept,
		replacer: strings.NewReplacer(pairs...),
	}
}

func (r *RedactingLogger) redact(s string) string {
	if len(r.secrets) == 0 {
		return s
	}
	return r.replacer.Replace(s)
}

// scrub masks string and error values. Other values pass through
// untouched.
func (r *RedactingLogger) scrub(fields []Field) []Field {
	if len(fields) == 0 {
		return fields
	}
	out := make([]Field, len(fields))
	for i, f := range fields {
		switch v := f.Value.(type) {
		case string:
			f.Value = r.redact(v)
		case error:
			f.Value = r.redact(v.Error())
		}
		out[i] = f
	}
	return out
}

func (r *RedactingLogger) Info(msg string, fields ...Field) {
	r.inner.Info(r.redact(msg), r.scrub(fields)...)
}

func (r *RedactingLogger) Warn(msg string, fields ...Field) {
	r.inner.Warn(r.redact(msg), r.scrub(fields)...)
}

func (r *RedactingLogger) Error(msg string, fields ...Field) {
	r.inner.Error(r.redact(msg), r.scrub(fields)...)
}

func (r *RedactingLogger) Debug(msg string, fields ...Field) {
	r.inner.Debug(r.redact(msg), r.scrub(fields)...)
}

// WithFields keeps the same secrets for the child.
func (r *RedactingLogger) WithFields(fields ...Field) Logger {
	return &RedactingLogger{
		inner:    r.inner.WithFields(r.scrub(fields)...),
		secrets:  r.secrets,
		replacer: r.replacer,
	}
}

// LogFailure masks the rendered subject and the message.
func (r *RedactingLogger) LogFailure(record FailureRecord) {
	record.Subject = r.redact(record.Subject)
	record.Message = r.redact(record.Message)
	r.inner.LogFailure(record)
}

func (r *RedactingLogger) Close() error { return r.inner.Close() }
