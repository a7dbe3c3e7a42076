package should

import (
	"fmt"
	"reflect"
	"strconv"

	"digital.vasic.fluent/pkg/assertion"
	"digital.vasic.fluent/pkg/render"
	"digital.vasic.fluent/pkg/subject"
)

// EnumType is an integer type whose named constants form an
// enumeration. Names come from a String method, usually one
// generated by stringer.
type EnumType interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// EnumAssertions asserts on an enumeration value that may be
// missing. Values render as Type.Name {value: N}.
type EnumAssertions[E EnumType] struct {
	core[E]
}

// Enum starts assertions on value.
func Enum[E EnumType](t assertion.T, value E) *EnumAssertions[E] {
	return newEnum(t, subject.Of(value))
}

// NullableEnum starts assertions on the value behind value, which
// may be nil.
func NullableEnum[E EnumType](t assertion.T, value *E) *EnumAssertions[E] {
	return newEnum(t, subject.Nullable(value))
}

func newEnum[E EnumType](t assertion.T, s subject.Subject[E]) *EnumAssertions[E] {
	c := newCore(t, s, "enum", typeName[E]())
	c.show = func(v E) any { return render.Raw(enumText(v)) }
	return &EnumAssertions[E]{c}
}

// Named returns the assertions reporting the subject as name.
func (a *EnumAssertions[E]) Named(name string) *EnumAssertions[E] {
	cp := *a
	cp.subject = a.subject.Named(name)
	return &cp
}

// Be asserts that the value equals expected.
func (a *EnumAssertions[E]) Be(expected E, because ...any) assertion.AndConstraint[*EnumAssertions[E]] {
	a.helper()
	a.equal(expected, equals[E],
		"Expected {subjectName} to be {0}{reason}, but found {1}.", because)
	return assertion.And(a)
}

// NotBe asserts that the value differs from unexpected.
func (a *EnumAssertions[E]) NotBe(unexpected E, because ...any) assertion.AndConstraint[*EnumAssertions[E]] {
	a.helper()
	a.notEqual(unexpected, equals[E],
		"Expected {subjectName} not to be {0}{reason}, but it is.", because)
	return assertion.And(a)
}

// BeOneOf asserts that the value equals one of values.
func (a *EnumAssertions[E]) BeOneOf(values []E, because ...any) assertion.AndConstraint[*EnumAssertions[E]] {
	a.helper()
	a.oneOf(values, equals[E], because)
	return assertion.And(a)
}

// HaveUnderlyingValue asserts that the integer value is expected.
func (a *EnumAssertions[E]) HaveUnderlyingValue(expected int64, because ...any) assertion.AndConstraint[*EnumAssertions[E]] {
	a.helper()
	v, ok := a.value()
	a.exec(because).
		ForCondition(ok && underlying(v) == strconv.FormatInt(expected, 10)).
		FailWith("Expected {subjectName} to have value {0}{reason}, but found {1}.", expected, a.actual())
	return assertion.And(a)
}

// NotHaveUnderlyingValue asserts that the integer value is not
// unexpected.
func (a *EnumAssertions[E]) NotHaveUnderlyingValue(unexpected int64, because ...any) assertion.AndConstraint[*EnumAssertions[E]] {
	a.helper()
	v, ok := a.value()
	a.exec(because).
		ForCondition(!ok || underlying(v) != strconv.FormatInt(unexpected, 10)).
		FailWith("Did not expect {subjectName} to have value {0}{reason}, but found {1}.", unexpected, a.actual())
	return assertion.And(a)
}

// HaveSameNameAs asserts that the value has the same name as
// expected, which may belong to another enumeration type.
func (a *EnumAssertions[E]) HaveSameNameAs(expected fmt.Stringer, because ...any) assertion.AndConstraint[*EnumAssertions[E]] {
	a.helper()
	v, ok := a.value()
	a.exec(because).
		ForCondition(ok && expected != nil && enumName(v) == expected.String()).
		FailWith("Expected {subjectName} to have same name as {0}{reason}, but found {1}.",
			otherEnum(expected), a.actual())
	return assertion.And(a)
}

// NotHaveSameNameAs asserts that the value is named differently
// from unexpected.
func (a *EnumAssertions[E]) NotHaveSameNameAs(unexpected fmt.Stringer, because ...any) assertion.AndConstraint[*EnumAssertions[E]] {
	a.helper()
	v, ok := a.value()
	a.exec(because).
		ForCondition(!ok || unexpected == nil || enumName(v) != unexpected.String()).
		FailWith("Did not expect {subjectName} to have same name as {0}{reason}, but found {1}.",
			otherEnum(unexpected), a.actual())
	return assertion.And(a)
}

// HaveFlag asserts that every bit of flag is set in the value.
func (a *EnumAssertions[E]) HaveFlag(flag E, because ...any) assertion.AndConstraint[*EnumAssertions[E]] {
	a.helper()
	v, ok := a.value()
	a.exec(because).
		ForCondition(ok && v&flag == flag).
		FailWith("Expected {subjectName} to have flag {0}{reason}, but found {1}.", a.display(flag), a.actual())
	return assertion.And(a)
}

// NotHaveFlag asserts that not every bit of flag is set in the
// value.
func (a *EnumAssertions[E]) NotHaveFlag(flag E, because ...any) assertion.AndConstraint[*EnumAssertions[E]] {
	a.helper()
	v, ok := a.value()
	a.exec(because).
		ForCondition(!ok || v&flag != flag).
		FailWith("Did not expect {subjectName} to have flag {0}{reason}.", a.display(flag))
	return assertion.And(a)
}

// BeDefined asserts that the value is one of the named constants
// of its type, as reported by its String method.
func (a *EnumAssertions[E]) BeDefined(because ...any) assertion.AndConstraint[*EnumAssertions[E]] {
	a.helper()
	v, ok := a.value()
	e := a.exec(because)
	if !ok {
		e.ForCondition(false).
			FailWith("Expected {subjectName} to be defined in {0}{reason}, but found <null>.",
				render.Raw(a.typeName))
		return assertion.And(a)
	}
	e.ForCondition(defined(v)).
		FailWith("Expected {subjectName} to be defined in {0}{reason}, but it is not.",
			render.Raw(a.typeName))
	return assertion.And(a)
}

// NotBeDefined asserts that the value has no named constant.
func (a *EnumAssertions[E]) NotBeDefined(because ...any) assertion.AndConstraint[*EnumAssertions[E]] {
	a.helper()
	v, ok := a.value()
	e := a.exec(because)
	if !ok {
		e.ForCondition(false).
			FailWith("Did not expect {subjectName} to be defined in {0}{reason}, but found <null>.",
				render.Raw(a.typeName))
		return assertion.And(a)
	}
	e.ForCondition(!defined(v)).
		FailWith("Did not expect {subjectName} to be defined in {0}{reason}, but it is.",
			render.Raw(a.typeName))
	return assertion.And(a)
}

// HaveValue asserts that the value is not missing.
func (a *EnumAssertions[E]) HaveValue(because ...any) assertion.AndConstraint[*EnumAssertions[E]] {
	a.helper()
	a.haveValue(because)
	return assertion.And(a)
}

// NotHaveValue asserts that the value is missing.
func (a *EnumAssertions[E]) NotHaveValue(because ...any) assertion.AndConstraint[*EnumAssertions[E]] {
	a.helper()
	a.notHaveValue(because)
	return assertion.And(a)
}

// Equals is not an assertion. It always panics, pointing at Be.
func (a *EnumAssertions[E]) Equals(any) bool {
	return assertion.EqualsNotSupported(assertion.SuggestBe)
}

// enumName is the constant name of v, or its number when the type
// has no String method.
func enumName[E EnumType](v E) string {
	if s, ok := any(v).(fmt.Stringer); ok {
		return s.String()
	}
	return integerText(reflect.ValueOf(v))
}

// defined reports whether String names v. Generated String methods
// fall back to Type(N) for values without a constant.
func defined[E EnumType](v E) bool {
	s, ok := any(v).(fmt.Stringer)
	if !ok {
		return false
	}
	rv := reflect.ValueOf(v)
	return s.String() != rv.Type().Name()+"("+integerText(rv)+")"
}

func enumText[E EnumType](v E) string {
	rv := reflect.ValueOf(v)
	return rv.Type().Name() + "." + enumName(v) + " {value: " + integerText(rv) + "}"
}

// otherEnum renders a value of any enumeration type.
func otherEnum(v fmt.Stringer) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return render.Raw(rv.Type().Name() + "." + v.String() + " {value: " + integerText(rv) + "}")
	}
	return render.Raw(v.String())
}

// underlying compares in decimal text so uint64 values above
// MaxInt64 never wrap onto negative numbers.
func underlying[E EnumType](v E) string {
	return integerText(reflect.ValueOf(v))
}

func integerText(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	}
	return strconv.FormatInt(rv.Int(), 10)
}
