package logging

import "time"

// Keys shared by every component that logs about suites and checks.
const (
	KeySuite = "suite"
	KeyCheck = "check"
	KeyKind  = "kind"
	KeyError = "error"
)

// LogField pairs a key with an arbitrary value.
func LogField(key string, value any) Field { return Field{Key: key, Value: value} }

func StringField(key, value string) Field { return LogField(key, value) }

func IntField(key string, value int) Field { return LogField(key, value) }

func BoolField(key string, value bool) Field { return LogField(key, value) }

// DurationField records d in whole milliseconds so that JSON
// consumers see a number rather than a Go duration string.
func DurationField(key string, d time.Duration) Field {
	return LogField(key, d.Milliseconds())
}

// ErrorField stores the error text under KeyError. A nil error is
// written as "<nil>" so the key is always present.
func ErrorField(err error) Field {
	if err == nil {
		return LogField(KeyError, "<nil>")
	}
	return LogField(KeyError, err.Error())
}

// SuiteField names the suite a log line belongs to.
func SuiteField(name string) Field { return LogField(KeySuite, name) }

// CheckField names a check by its identifier.
func CheckField(id string) Field { return LogField(KeyCheck, id) }

// KindField carries the "kind.type" key of a check.
func KindField(key string) Field { return LogField(KeyKind, key) }
