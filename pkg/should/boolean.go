package should

import (
	"digital.vasic.fluent/pkg/assertion"
	"digital.vasic.fluent/pkg/subject"
)

// BooleanAssertions asserts on a bool that may be missing.
type BooleanAssertions struct {
	core[bool]
}

// Boolean starts assertions on value.
func Boolean(t assertion.T, value bool) *BooleanAssertions {
	return &BooleanAssertions{newCore(t, subject.Of(value), "boolean", "bool")}
}

// NullableBoolean starts assertions on the bool behind value,
// which may be nil.
func NullableBoolean(t assertion.T, value *bool) *BooleanAssertions {
	return &BooleanAssertions{newCore(t, subject.Nullable(value), "boolean", "bool")}
}

// Named returns the assertions reporting the subject as name.
func (a *BooleanAssertions) Named(name string) *BooleanAssertions {
	cp := *a
	cp.subject = a.subject.Named(name)
	return &cp
}

// BeTrue asserts that the value is true.
func (a *BooleanAssertions) BeTrue(because ...any) assertion.AndConstraint[*BooleanAssertions] {
	a.helper()
	return a.Be(true, because...)
}

// BeFalse asserts that the value is false.
func (a *BooleanAssertions) BeFalse(because ...any) assertion.AndConstraint[*BooleanAssertions] {
	a.helper()
	return a.Be(false, because...)
}

// Be asserts that the value equals expected.
func (a *BooleanAssertions) Be(expected bool, because ...any) assertion.AndConstraint[*BooleanAssertions] {
	a.helper()
	a.equal(expected, equals[bool],
		"Expected {subjectName} to be {0}{reason}, but found {1}.", because)
	return assertion.And(a)
}

// BeNullable asserts that the value equals expected, where nil
// expects a missing value.
func (a *BooleanAssertions) BeNullable(expected *bool, because ...any) assertion.AndConstraint[*BooleanAssertions] {
	a.helper()
	a.equalNullable(expected, equals[bool],
		"Expected {subjectName} to be {0}{reason}, but found {1}.", because)
	return assertion.And(a)
}

// NotBe asserts that the value differs from unexpected.
func (a *BooleanAssertions) NotBe(unexpected bool, because ...any) assertion.AndConstraint[*BooleanAssertions] {
	a.helper()
	a.notEqual(unexpected, equals[bool],
		"Expected {subjectName} not to be {0}{reason}, but found {1}.", because)
	return assertion.And(a)
}

// NotBeTrue asserts that the value is false or missing.
func (a *BooleanAssertions) NotBeTrue(because ...any) assertion.AndConstraint[*BooleanAssertions] {
	a.helper()
	return a.NotBe(true, because...)
}

// NotBeFalse asserts that the value is true or missing.
func (a *BooleanAssertions) NotBeFalse(because ...any) assertion.AndConstraint[*BooleanAssertions] {
	a.helper()
	return a.NotBe(false, because...)
}

// Imply asserts that the value, as an antecedent, implies
// consequent: it passes unless the value is true and consequent
// is false.
func (a *BooleanAssertions) Imply(consequent bool, because ...any) assertion.AndConstraint[*BooleanAssertions] {
	a.helper()
	v, ok := a.value()
	e := assertion.New(a.t, a.subject.Name("antecedent"))
	format, args := splitReason(because)
	e.BecauseOf(format, args...)
	if !ok {
		e.ForCondition(false).
			FailWith("Expected {subjectName} <null> to imply consequent {0}{reason}, but found <null>.", consequent)
		return assertion.And(a)
	}
	e.ForCondition(!v || consequent).
		FailWith("Expected {subjectName} ({0}) to imply consequent ({1}){reason}, but it did not.", v, consequent)
	return assertion.And(a)
}

// HaveValue asserts that the value is not missing.
func (a *BooleanAssertions) HaveValue(because ...any) assertion.AndConstraint[*BooleanAssertions] {
	a.helper()
	a.haveValue(because)
	return assertion.And(a)
}

// NotBeNull is HaveValue.
func (a *BooleanAssertions) NotBeNull(because ...any) assertion.AndConstraint[*BooleanAssertions] {
	a.helper()
	return a.HaveValue(because...)
}

// NotHaveValue asserts that the value is missing.
func (a *BooleanAssertions) NotHaveValue(because ...any) assertion.AndConstraint[*BooleanAssertions] {
	a.helper()
	a.notHaveValue(because)
	return assertion.And(a)
}

// BeNull is NotHaveValue.
func (a *BooleanAssertions) BeNull(because ...any) assertion.AndConstraint[*BooleanAssertions] {
	a.helper()
	return a.NotHaveValue(because...)
}

// Equals is not an assertion. It always panics, pointing at Be.
func (a *BooleanAssertions) Equals(any) bool {
	return assertion.EqualsNotSupported(assertion.SuggestBe)
}
