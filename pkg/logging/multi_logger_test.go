package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mocks(n int) ([]*mockLogger, []Logger) {
	ms := make([]*mockLogger, n)
	ls := make([]Logger, n)
	for i := range ms {
		ms[i] = new(mockLogger)
		ls[i] = ms[i]
	}
	return ms, ls
}

func TestNewMultiLogger(t *testing.T) {
	tests := []struct {
		name    string
		loggers []Logger
		wantLen int
	}{
		{"empty loggers", []Logger{}, 0},
		{"single logger", []Logger{NullLogger{}}, 1},
		{"multiple loggers", []Logger{NullLogger{}, NullLogger{}, NullLogger{}}, 3},
		{"nil slice", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ml := NewMultiLogger(tt.loggers...)
			require.NotNil(t, ml)
			assert.Len(t, ml.loggers, tt.wantLen)
		})
	}
}

func TestMultiLogger_Delegates(t *testing.T) {
	fields := []Field{StringField("check", "c-1")}
	tests := []struct {
		method string
		call   func(ml *MultiLogger)
	}{
		{"Info", func(ml *MultiLogger) { ml.Info("m", fields...) }},
		{"Warn", func(ml *MultiLogger) { ml.Warn("m", fields...) }},
		{"Error", func(ml *MultiLogger) { ml.Error("m", fields...) }},
		{"Debug", func(ml *MultiLogger) { ml.Debug("m", fields...) }},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			ms, ls := mocks(3)
			for _, m := range ms {
				m.On(tt.method, "m", fields).Return()
			}

			tt.call(NewMultiLogger(ls...))

			for _, m := range ms {
				m.AssertExpectations(t)
			}
		})
	}
}

func TestMultiLogger_LogFailure(t *testing.T) {
	record := FailureRecord{
		CheckID:   "c-1",
		Kind:      "numeric",
		Operation: "be_positive",
		Message:   "Expected value to be positive, but found -1.",
	}

	ms, ls := mocks(2)
	for _, m := range ms {
		m.On("LogFailure", record).Return()
	}

	NewMultiLogger(ls...).LogFailure(record)

	for _, m := range ms {
		m.AssertExpectations(t)
	}
}

func TestMultiLogger_WithFields(t *testing.T) {
	fields := []Field{LogField("suite", "smoke")}
	ms, ls := mocks(2)
	for _, m := range ms {
		m.On("WithFields", fields).Return(NullLogger{})
	}

	result := NewMultiLogger(ls...).WithFields(fields...)

	multi, ok := result.(*MultiLogger)
	require.True(t, ok)
	assert.Len(t, multi.loggers, 2)
	for _, m := range ms {
		m.AssertExpectations(t)
	}
}

func TestMultiLogger_Close(t *testing.T) {
	tests := []struct {
		name     string
		errors   []error
		contains []string
	}{
		{"all succeed", []error{nil, nil}, nil},
		{"one fails", []error{errors.New("first error"), nil}, []string{"first error"}},
		{"both fail", []error{errors.New("first"), errors.New("second")}, []string{"first", "second"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms, ls := mocks(len(tt.errors))
			for i, err := range tt.errors {
				ms[i].On("Close").Return(err)
			}

			err := NewMultiLogger(ls...).Close()

			if len(tt.contains) == 0 {
				assert.NoError(t, err)
			}
			for _, want := range tt.contains {
				assert.ErrorContains(t, err, want)
			}
			for _, m := range ms {
				m.AssertExpectations(t)
			}
		})
	}
}

func TestMultiLogger_EmptyLoggers(t *testing.T) {
	ml := NewMultiLogger()

	ml.Info("test")
	ml.Warn("test")
	ml.Error("test")
	ml.Debug("test")
	ml.LogFailure(FailureRecord{})

	require.NotNil(t, ml.WithFields(LogField("k", "v")))
	assert.NoError(t, ml.Close())
}

func TestMultiLogger_SkipsNil(t *testing.T) {
	ms, ls := mocks(1)
	ms[0].On("Warn", "post_hook_warning", []Field(nil)).Return()

	ml := NewMultiLogger(nil, ls[0], nil)
	require.Len(t, ml.loggers, 1)

	ml.Warn("post_hook_warning")
	ms[0].AssertExpectations(t)
}
