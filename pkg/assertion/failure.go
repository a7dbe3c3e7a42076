package assertion

import (
	"fmt"

	"github.com/pkg/errors"
)

// Failure is raised when an assertion does not hold. It carries
// exactly one rendered message.
type Failure struct {
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

// Catch runs fn and returns the Failure it raised, or nil when it
// completed. Panics that are not failures are re-raised.
func Catch(fn func()) (failure *Failure) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(*Failure)
			if !ok {
				panic(r)
			}
			failure = f
		}
	}()

	fn()
	return nil
}

// ArgumentError reports invalid usage of an assertion, such as a
// missing type or an empty pattern. It is raised before any
// predicate is evaluated.
type ArgumentError struct {
	Param   string
	Message string
	cause   error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s (Parameter '%s')", e.Message, e.Param)
}

// Unwrap exposes the underlying error that carries the stack.
func (e *ArgumentError) Unwrap() error {
	return e.cause
}

// Format prints the stack of the call site with %+v.
func (e *ArgumentError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%s\n%+v", e.Error(), e.cause)
		return
	}
	fmt.Fprint(s, e.Error())
}

// InvalidArgument panics with an *ArgumentError naming param.
func InvalidArgument(param, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	panic(&ArgumentError{
		Param:   param,
		Message: msg,
		cause:   errors.New(msg),
	})
}

// UnsupportedError reports a call to an API that looks like an
// assertion but is not one.
type UnsupportedError struct {
	Message string
}

func (e *UnsupportedError) Error() string {
	return e.Message
}

const (
	// SuggestBe steers object-level Equals calls to Be.
	SuggestBe = "Be()"

	// SuggestBeforeAfter steers Equals calls on range conditions
	// to Before and After.
	SuggestBeforeAfter = "Before() or After()"
)

// EqualsNotSupported panics with an *UnsupportedError pointing
// the caller at the method they most likely meant. Its bool
// result lets assertion types shadow an Equals(any) bool method.
func EqualsNotSupported(suggestion string) bool {
	panic(&UnsupportedError{
		Message: fmt.Sprintf(
			"Equals is not part of Fluent Assertions. Did you mean %s instead?",
			suggestion,
		),
	})
}
