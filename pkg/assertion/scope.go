package assertion

import (
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Scope runs several independent checks and reports all of their
// failures together. Each check still stops at its own first
// failure.
type Scope struct {
	t    T
	errs *multierror.Error
}

// NewScope returns a scope that reports to t when Done is called.
// A nil t makes Done panic with the combined *Failure.
func NewScope(t T) *Scope {
	return &Scope{t: t}
}

// Check runs fn, passing it a reporter whose failures are
// collected by the scope. It reports whether fn passed.
func (s *Scope) Check(fn func(t T)) bool {
	f := Catch(func() { fn(collecting{}) })
	if f == nil {
		return true
	}
	s.errs = multierror.Append(s.errs, f)
	return false
}

// Failures returns the collected failures in the order they
// occurred.
func (s *Scope) Failures() []*Failure {
	if s.errs == nil {
		return nil
	}
	out := make([]*Failure, 0, len(s.errs.Errors))
	for _, err := range s.errs.Errors {
		out = append(out, err.(*Failure))
	}
	return out
}

// Err returns the collected failures as one error, or nil.
func (s *Scope) Err() error {
	if s.errs == nil {
		return nil
	}
	s.errs.ErrorFormat = joinMessages
	return s.errs.ErrorOrNil()
}

// Done raises the combined message of every collected failure,
// one per line. It does nothing when every check passed.
func (s *Scope) Done() {
	err := s.Err()
	if err == nil {
		return
	}
	if s.t != nil {
		s.t.Helper()
	}
	New(s.t, "").Fail(err.Error())
}

func joinMessages(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// collecting is handed to scoped checks. Its Fatal never returns,
// so the execution raises the failure as a panic that Check
// recovers.
type collecting struct{}

func (collecting) Helper() {}

func (collecting) Fatal(...any) {}
