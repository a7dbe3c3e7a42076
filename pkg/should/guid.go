package should

import (
	"github.com/google/uuid"

	"digital.vasic.fluent/pkg/assertion"
	"digital.vasic.fluent/pkg/render"
	"digital.vasic.fluent/pkg/subject"
)

// GUIDAssertions asserts on a UUID that may be missing.
type GUIDAssertions struct {
	core[uuid.UUID]
}

// GUID starts assertions on value.
func GUID(t assertion.T, value uuid.UUID) *GUIDAssertions {
	return &GUIDAssertions{newCore(t, subject.Of(value), "guid", "uuid.UUID")}
}

// NullableGUID starts assertions on the UUID behind value, which
// may be nil.
func NullableGUID(t assertion.T, value *uuid.UUID) *GUIDAssertions {
	return &GUIDAssertions{newCore(t, subject.Nullable(value), "guid", "uuid.UUID")}
}

// Named returns the assertions reporting the subject as name.
func (a *GUIDAssertions) Named(name string) *GUIDAssertions {
	cp := *a
	cp.subject = a.subject.Named(name)
	return &cp
}

// Be asserts that the UUID equals expected.
func (a *GUIDAssertions) Be(expected uuid.UUID, because ...any) assertion.AndConstraint[*GUIDAssertions] {
	a.helper()
	a.equal(expected, equals[uuid.UUID],
		"Expected {subjectName} to be {0}{reason}, but found {1}.", because)
	return assertion.And(a)
}

// BeString parses expected and asserts that the UUID equals it.
// An unparsable expectation is an invalid argument.
func (a *GUIDAssertions) BeString(expected string, because ...any) assertion.AndConstraint[*GUIDAssertions] {
	a.helper()
	parsed, err := uuid.Parse(expected)
	if err != nil {
		assertion.InvalidArgument("expected", "Unable to parse %q as a GUID.", expected)
	}
	return a.Be(parsed, because...)
}

// BeNullable asserts that the UUID equals expected, where nil
// expects a missing value.
func (a *GUIDAssertions) BeNullable(expected *uuid.UUID, because ...any) assertion.AndConstraint[*GUIDAssertions] {
	a.helper()
	a.equalNullable(expected, equals[uuid.UUID],
		"Expected {subjectName} to be {0}{reason}, but found {1}.", because)
	return assertion.And(a)
}

// NotBe asserts that the UUID differs from unexpected.
func (a *GUIDAssertions) NotBe(unexpected uuid.UUID, because ...any) assertion.AndConstraint[*GUIDAssertions] {
	a.helper()
	a.notEqual(unexpected, equals[uuid.UUID],
		"Did not expect {subjectName} to be {0}{reason}.", because)
	return assertion.And(a)
}

// BeEmpty asserts that the UUID is the nil UUID.
func (a *GUIDAssertions) BeEmpty(because ...any) assertion.AndConstraint[*GUIDAssertions] {
	a.helper()
	v, ok := a.value()
	a.exec(because).
		ForCondition(ok && v == uuid.Nil).
		FailWith("Expected {subjectName} to be empty{reason}, but found {0}.", a.actual())
	return assertion.And(a)
}

// NotBeEmpty asserts that the UUID is not the nil UUID. An unnamed
// nil UUID is reported as Guid.Empty.
func (a *GUIDAssertions) NotBeEmpty(because ...any) assertion.AndConstraint[*GUIDAssertions] {
	a.helper()
	v, ok := a.value()
	if ok && v == uuid.Nil && !a.subject.HasName() {
		return a.Named(render.EmptyGUIDName).NotBeEmpty(because...)
	}
	a.exec(because).
		ForCondition(!ok || v != uuid.Nil).
		FailWith("Did not expect {subjectName} to be empty{reason}.")
	return assertion.And(a)
}

// BeOneOf asserts that the UUID equals one of values.
func (a *GUIDAssertions) BeOneOf(values []uuid.UUID, because ...any) assertion.AndConstraint[*GUIDAssertions] {
	a.helper()
	a.oneOf(values, equals[uuid.UUID], because)
	return assertion.And(a)
}

// HaveValue asserts that the UUID is not missing.
func (a *GUIDAssertions) HaveValue(because ...any) assertion.AndConstraint[*GUIDAssertions] {
	a.helper()
	a.haveValue(because)
	return assertion.And(a)
}

// NotBeNull is HaveValue.
func (a *GUIDAssertions) NotBeNull(because ...any) assertion.AndConstraint[*GUIDAssertions] {
	a.helper()
	return a.HaveValue(because...)
}

// NotHaveValue asserts that the UUID is missing.
func (a *GUIDAssertions) NotHaveValue(because ...any) assertion.AndConstraint[*GUIDAssertions] {
	a.helper()
	a.notHaveValue(because)
	return assertion.And(a)
}

// BeNull is NotHaveValue.
func (a *GUIDAssertions) BeNull(because ...any) assertion.AndConstraint[*GUIDAssertions] {
	a.helper()
	return a.NotHaveValue(because...)
}

// Equals is not an assertion. It always panics, pointing at Be.
func (a *GUIDAssertions) Equals(any) bool {
	return assertion.EqualsNotSupported(assertion.SuggestBe)
}
