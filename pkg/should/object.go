package should

import (
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"

	"digital.vasic.fluent/pkg/assertion"
	"digital.vasic.fluent/pkg/render"
	"digital.vasic.fluent/pkg/subject"
)

// ObjectAssertions asserts on an arbitrary value. Equality is
// structural, including unexported fields.
type ObjectAssertions struct {
	core[any]
}

// Object starts assertions on value. A nil value, or a nil pointer,
// map, slice, channel or func inside it, is treated as missing.
func Object(t assertion.T, value any) *ObjectAssertions {
	s := subject.Of(value)
	if isNilValue(value) {
		s = subject.Nullable[any](nil)
	}
	return &ObjectAssertions{newCore(t, s, "object", "object")}
}

// Named returns the assertions reporting the subject as name.
func (a *ObjectAssertions) Named(name string) *ObjectAssertions {
	cp := *a
	cp.subject = a.subject.Named(name)
	return &cp
}

// BeNull asserts that the value is nil.
func (a *ObjectAssertions) BeNull(because ...any) assertion.AndConstraint[*ObjectAssertions] {
	a.helper()
	a.exec(because).
		ForCondition(!a.subject.HasValue()).
		FailWith("Expected {subjectName} to be <null>{reason}, but found {0}.", a.actual())
	return assertion.And(a)
}

// NotBeNull asserts that the value is not nil.
func (a *ObjectAssertions) NotBeNull(because ...any) assertion.AndConstraint[*ObjectAssertions] {
	a.helper()
	a.exec(because).
		ForCondition(a.subject.HasValue()).
		FailWith("Expected {subjectName} not to be <null>{reason}.")
	return assertion.And(a)
}

// Be asserts that the value is structurally equal to expected.
// Failures on composite values carry a diff.
func (a *ObjectAssertions) Be(expected any, because ...any) assertion.AndConstraint[*ObjectAssertions] {
	a.helper()
	actual := a.actual()
	a.exec(because).
		ForCondition(deepEqual(actual, expected)).
		FailWith("Expected {subjectName} to be {0}{reason}, but found {1}.{2}",
			expected, actual, objectDiff(expected, actual))
	return assertion.And(a)
}

// NotBe asserts that the value is not structurally equal to
// unexpected.
func (a *ObjectAssertions) NotBe(unexpected any, because ...any) assertion.AndConstraint[*ObjectAssertions] {
	a.helper()
	a.exec(because).
		ForCondition(!deepEqual(a.actual(), unexpected)).
		FailWith("Did not expect {subjectName} to be equal to {0}{reason}.", unexpected)
	return assertion.And(a)
}

// BeUsing asserts that comparer considers the value equal to
// expected.
func (a *ObjectAssertions) BeUsing(expected any, comparer func(actual, expected any) bool, because ...any) assertion.AndConstraint[*ObjectAssertions] {
	a.helper()
	if comparer == nil {
		assertion.InvalidArgument("comparer", "Cannot compare using a <null> comparer.")
	}
	actual := a.actual()
	a.exec(because).
		ForCondition(comparer(actual, expected)).
		FailWith("Expected {subjectName} to be {0}{reason}, but found {1}.", expected, actual)
	return assertion.And(a)
}

// BeSameAs asserts that the value refers to the same memory as
// expected. Values that are not pointers, maps, slices, channels
// or funcs are never the same.
func (a *ObjectAssertions) BeSameAs(expected any, because ...any) assertion.AndConstraint[*ObjectAssertions] {
	a.helper()
	actual := a.actual()
	a.exec(because).
		ForCondition(sameReference(actual, expected)).
		FailWith("Expected {subjectName} to refer to {0}{reason}, but found {1}.", expected, actual)
	return assertion.And(a)
}

// NotBeSameAs asserts that the value does not refer to the memory
// of unexpected.
func (a *ObjectAssertions) NotBeSameAs(unexpected any, because ...any) assertion.AndConstraint[*ObjectAssertions] {
	a.helper()
	a.exec(because).
		ForCondition(!sameReference(a.actual(), unexpected)).
		FailWith("Did not expect {subjectName} to refer to {0}{reason}.", unexpected)
	return assertion.And(a)
}

// BeOfType asserts that the dynamic type of the value is exactly
// expected. Which holds the value.
func (a *ObjectAssertions) BeOfType(expected reflect.Type, because ...any) assertion.AndWhichConstraint[*ObjectAssertions, any] {
	a.helper()
	if expected == nil {
		assertion.InvalidArgument("expected", "Cannot compare subject's type against a <null> type.")
	}
	actual := a.actual()
	e := a.exec(because)
	if actual == nil {
		e.ForCondition(false).
			FailWith("Expected type to be {0}{reason}, but found <null>.", expected)
		return assertion.AndWhich[*ObjectAssertions, any](a, nil, a.name())
	}
	e.ForCondition(reflect.TypeOf(actual) == expected).
		FailWith("Expected type to be {0}{reason}, but found {1}.", expected, reflect.TypeOf(actual))
	return assertion.AndWhich(a, actual, a.name())
}

// NotBeOfType asserts that the dynamic type of the value is not
// unexpected.
func (a *ObjectAssertions) NotBeOfType(unexpected reflect.Type, because ...any) assertion.AndConstraint[*ObjectAssertions] {
	a.helper()
	if unexpected == nil {
		assertion.InvalidArgument("unexpected", "Cannot compare subject's type against a <null> type.")
	}
	actual := a.actual()
	a.exec(because).
		ForCondition(actual == nil || reflect.TypeOf(actual) != unexpected).
		FailWith("Expected type not to be {0}{reason}, but it is.", unexpected)
	return assertion.And(a)
}

// BeAssignableTo asserts that the value can be assigned to a
// variable of type expected, which may be an interface type.
func (a *ObjectAssertions) BeAssignableTo(expected reflect.Type, because ...any) assertion.AndConstraint[*ObjectAssertions] {
	a.helper()
	if expected == nil {
		assertion.InvalidArgument("expected", "Cannot compare subject's type against a <null> type.")
	}
	actual := a.actual()
	e := a.exec(because)
	if actual == nil {
		e.ForCondition(false).
			FailWith("Expected {subjectName} to be assignable to {0}{reason}, but found <null>.", expected)
		return assertion.And(a)
	}
	e.ForCondition(reflect.TypeOf(actual).AssignableTo(expected)).
		FailWith("Expected {subjectName} to be assignable to {0}{reason}, but {1} is not.",
			expected, reflect.TypeOf(actual))
	return assertion.And(a)
}

// BeOneOf asserts that the value is structurally equal to one of
// values.
func (a *ObjectAssertions) BeOneOf(values []any, because ...any) assertion.AndConstraint[*ObjectAssertions] {
	a.helper()
	actual := a.actual()
	found := false
	for _, v := range values {
		if deepEqual(actual, v) {
			found = true
			break
		}
	}
	a.exec(because).
		ForCondition(found).
		FailWith("Expected {subjectName} to be one of {0}{reason}, but found {1}.",
			render.Raw(render.Values(values...)), actual)
	return assertion.And(a)
}

// Match asserts that predicate holds for the value. description
// names the predicate in the failure message.
func (a *ObjectAssertions) Match(predicate func(any) bool, description string, because ...any) assertion.AndConstraint[*ObjectAssertions] {
	a.helper()
	if predicate == nil {
		assertion.InvalidArgument("predicate", "Cannot match an object against a <null> predicate.")
	}
	actual := a.actual()
	a.exec(because).
		ForCondition(predicate(actual)).
		FailWith("Expected {subjectName} to match {0}{reason}, but found {1}.", render.Raw(description), actual)
	return assertion.And(a)
}

// Equals is not an assertion. It always panics, pointing at Be.
func (a *ObjectAssertions) Equals(any) bool {
	return assertion.EqualsNotSupported(assertion.SuggestBe)
}

// OfType asserts that the value has dynamic type T and returns it,
// typed, as Which.
func OfType[T any](a *ObjectAssertions, because ...any) assertion.AndWhichConstraint[*ObjectAssertions, T] {
	a.helper()
	expected := reflect.TypeOf((*T)(nil)).Elem()
	actual := a.actual()
	typed, ok := actual.(T)
	e := a.exec(because)
	if actual == nil {
		e.ForCondition(false).
			FailWith("Expected type to be {0}{reason}, but found <null>.", expected)
		return assertion.AndWhich(a, typed, a.name())
	}
	e.ForCondition(ok && reflect.TypeOf(actual) == expected).
		FailWith("Expected type to be {0}{reason}, but found {1}.", expected, reflect.TypeOf(actual))
	return assertion.AndWhich(a, typed, a.name())
}

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

func deepEqual(a, b any) bool {
	if isNilValue(a) || isNilValue(b) {
		return isNilValue(a) && isNilValue(b)
	}
	return cmp.Equal(a, b, exportAll)
}

// objectDiff renders a diff below mismatches between composite
// values of the same type.
func objectDiff(expected, actual any) render.Raw {
	if isNilValue(expected) || isNilValue(actual) {
		return ""
	}
	if reflect.TypeOf(expected) != reflect.TypeOf(actual) {
		return ""
	}
	switch reflect.TypeOf(actual).Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array, reflect.Ptr:
	default:
		return ""
	}
	diff := cmp.Diff(expected, actual, exportAll)
	if diff == "" {
		return ""
	}
	return render.Raw("\n(-expected +actual):\n" + strings.TrimRight(diff, "\n"))
}

func sameReference(a, b any) bool {
	if isNilValue(a) || isNilValue(b) {
		return isNilValue(a) && isNilValue(b)
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	case reflect.Slice:
		return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len()
	}
	return false
}

func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Ptr,
		reflect.Interface, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
